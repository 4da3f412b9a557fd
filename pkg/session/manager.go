package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/helpdeskhq/helpdesk-go/pkg/apiclient"
	"github.com/helpdeskhq/helpdesk-go/pkg/helpdesk"
	"github.com/helpdeskhq/helpdesk-go/pkg/retry"
	"github.com/helpdeskhq/helpdesk-go/pkg/sessionstore"
)

// The three durable keys. Absence of the token key means no session; all
// three are cleared together on logout or detected expiry.
const (
	keyToken     = "helpdesk.session.token"
	keyExpiresAt = "helpdesk.session.expires_at"
	keyUser      = "helpdesk.session.user"
)

// Manager is the single source of truth for the login state: it owns the
// token and cached identity, persists them through a sessionstore.Store,
// restores them on startup, and keeps the HTTP client's token accessor
// pointed at the current token.
//
// All mutation goes through login, register, logout and bootstrap; the
// background verification applies its result only if the session it
// verified is still the current one, so a stale result can never resurrect
// a logged-out session.
type Manager struct {
	auth  *helpdesk.AuthService
	store sessionstore.Store
	cfg   Config
	log   *slog.Logger
	now   func() time.Time

	mu         sync.RWMutex
	state      State
	session    Session
	generation uint64
	restoring  bool
	restored   chan struct{}
}

// Option configures the Manager.
type Option func(*Manager)

// WithConfig replaces the default restoration tuning.
func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.cfg = cfg }
}

// WithLogger sets the diagnostics logger; background verification outcomes
// are logged, never surfaced to the user.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithNow injects a time source for tests.
func WithNow(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// New creates a Manager bound to the client and store. It installs the
// token accessor on the client once: the accessor reads the manager's
// current session, so every token change is visible to the next request
// without touching requests already in flight.
func New(client *apiclient.Client, store sessionstore.Store, opts ...Option) *Manager {
	m := &Manager{
		auth:     helpdesk.NewAuthService(client),
		store:    store,
		cfg:      DefaultConfig(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
		state:    StateRestoring,
		restored: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	client.SetTokenProvider(m.Token)

	return m
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Session returns a copy of the current session.
func (m *Manager) Session() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Token returns the current bearer token. It is the token accessor the HTTP
// client polls once per request.
func (m *Manager) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Token, m.session.Token != ""
}

// User returns the last-known identity, possibly stale until the background
// verification concludes, or nil.
func (m *Manager) User() *helpdesk.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.User
}

// Restoring reports whether bootstrap's background verification is still in
// flight. Route guards use it to avoid a flash redirect to the login screen.
func (m *Manager) Restoring() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.restoring
}

// Restored is closed once bootstrap concludes, success or not.
func (m *Manager) Restored() <-chan struct{} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.restored
}

// Bootstrap restores a persisted session. With no persisted token it
// resolves to Anonymous immediately with no network call. With one, it
// checks the stored expiry against the tolerance window, then resolves
// optimistically into Authenticated and verifies the identity in the
// background; only authorization failures (401/403) are retried, and any
// other failure keeps the optimistic session alive rather than forcing a
// logout over a transient backend hiccup.
//
// Bootstrap is meant to run once, at process start.
func (m *Manager) Bootstrap(ctx context.Context) error {
	token, err := m.store.Get(ctx, keyToken)
	if err != nil && !errors.Is(err, sessionstore.ErrKeyNotFound) {
		m.log.Warn("session store unreadable, starting anonymous", "error", err)
	}
	if token == "" {
		m.finishAnonymous()
		return nil
	}

	expiresAt := m.loadExpiry(ctx)
	if !expiresAt.IsZero() {
		if overage := m.now().Sub(expiresAt); overage > m.cfg.ExpiryTolerance {
			m.log.Info("persisted session expired, discarding",
				slog.Duration("overage", overage))
			m.clearPersisted(ctx)
			m.finishAnonymous()
			return nil
		}
	}

	cachedUser := m.loadCachedUser(ctx)

	m.mu.Lock()
	m.generation++
	generation := m.generation
	m.session = Session{Token: token, ExpiresAt: expiresAt, User: cachedUser}
	m.state = StateAuthenticated
	m.restoring = true
	restored := m.restored
	m.mu.Unlock()

	go m.verifyInBackground(ctx, generation, restored)

	return nil
}

// Login exchanges credentials for a fresh session. Failures propagate
// unmodified: this is user-initiated, and immediate visible failure is
// correct.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	res, err := m.auth.Login(ctx, helpdesk.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}
	return m.adopt(ctx, res)
}

// Register creates an account and adopts the returned session, with the
// same contract as Login.
func (m *Manager) Register(ctx context.Context, params helpdesk.RegisterParams) error {
	res, err := m.auth.Register(ctx, params)
	if err != nil {
		return err
	}
	return m.adopt(ctx, res)
}

// Logout clears the session locally: memory first, then all three persisted
// keys. No server round-trip. Safe to call repeatedly.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.generation++
	m.session = Session{}
	m.state = StateAnonymous
	m.mu.Unlock()

	return m.clearPersisted(ctx)
}

// adopt replaces the session wholesale with the auth response, persists
// token and expiry together, and fills in the identity from the response or
// a best-effort fetch. A failed identity fetch leaves the session tokened
// but identity-less; it does not fail the login.
func (m *Manager) adopt(ctx context.Context, res helpdesk.AuthResponse) error {
	expiresAt := parseExpiresAt(res.ExpiresAt)

	m.mu.Lock()
	m.generation++
	generation := m.generation
	m.session = Session{Token: res.Token, ExpiresAt: expiresAt, User: res.User}
	m.state = StateAuthenticated
	m.mu.Unlock()

	if err := m.persistToken(ctx, res.Token, expiresAt); err != nil {
		return err
	}

	if res.User != nil {
		m.persistUser(ctx, res.User)
		return nil
	}

	// The token accessor already serves the new token, so this fetch is
	// authenticated as the fresh session.
	user, err := m.auth.Me(ctx)
	if err != nil {
		m.log.Debug("identity fetch after login failed, continuing without it",
			"error", err)
		return nil
	}
	m.applyVerifiedUser(ctx, generation, user)
	return nil
}

// verifyInBackground reconciles the optimistic session against the server's
// view of identity. Exhaustion or non-auth failures keep what we have; the
// restoring flag clears only here, once the outcome is known.
func (m *Manager) verifyInBackground(ctx context.Context, generation uint64, restored chan struct{}) {
	defer close(restored)
	defer func() {
		m.mu.Lock()
		m.restoring = false
		m.mu.Unlock()
	}()

	policy := retry.Policy{
		MaxAttempts: m.cfg.VerifyAttempts,
		Backoff:     retry.Linear{Step: m.cfg.VerifyBackoffStep},
		RetryIf:     apiclient.IsAuthError,
	}

	attempt := 0
	user, err := retry.Do(ctx, policy, func(ctx context.Context) (*helpdesk.User, error) {
		attempt++
		u, err := m.auth.Me(ctx)
		if err != nil {
			m.log.Debug("identity verification attempt failed",
				slog.Int("attempt", attempt), "error", err)
		}
		return u, err
	})
	if err != nil {
		m.log.Warn("identity verification gave up, keeping optimistic session",
			slog.Int("attempts", attempt), "error", err)
		return
	}

	m.applyVerifiedUser(ctx, generation, user)
}

// applyVerifiedUser installs a freshly fetched identity, unless the session
// it belongs to has been replaced in the meantime.
func (m *Manager) applyVerifiedUser(ctx context.Context, generation uint64, user *helpdesk.User) {
	m.mu.Lock()
	if m.generation != generation || m.session.Token == "" {
		m.mu.Unlock()
		m.log.Debug("discarding stale identity verification result")
		return
	}
	m.session.User = user
	m.mu.Unlock()

	m.persistUser(ctx, user)
}

func (m *Manager) finishAnonymous() {
	m.mu.Lock()
	m.state = StateAnonymous
	m.restoring = false
	restored := m.restored
	m.mu.Unlock()

	close(restored)
}

func (m *Manager) loadExpiry(ctx context.Context) time.Time {
	raw, err := m.store.Get(ctx, keyExpiresAt)
	if err != nil || raw == "" {
		return time.Time{}
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// loadCachedUser tolerates corrupt snapshots: some historical builds
// persisted the literal string "undefined". Anything unparseable is
// discarded, not fatal.
func (m *Manager) loadCachedUser(ctx context.Context) *helpdesk.User {
	raw, err := m.store.Get(ctx, keyUser)
	if err != nil || raw == "" || raw == "undefined" {
		return nil
	}

	var user helpdesk.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		m.log.Debug("discarding corrupt cached identity", "error", err)
		return nil
	}
	return &user
}

// persistToken writes token and expiry together. A non-expiring session has
// no expiry key at all.
func (m *Manager) persistToken(ctx context.Context, token string, expiresAt time.Time) error {
	if err := m.store.Set(ctx, keyToken, token); err != nil {
		return err
	}
	if expiresAt.IsZero() {
		return m.store.Delete(ctx, keyExpiresAt)
	}
	return m.store.Set(ctx, keyExpiresAt, strconv.FormatInt(expiresAt.UnixMilli(), 10))
}

func (m *Manager) persistUser(ctx context.Context, user *helpdesk.User) {
	data, err := json.Marshal(user)
	if err != nil {
		m.log.Warn("cached identity not persisted", "error", err)
		return
	}
	if err := m.store.Set(ctx, keyUser, string(data)); err != nil {
		m.log.Warn("cached identity not persisted", "error", err)
	}
}

func (m *Manager) clearPersisted(ctx context.Context) error {
	return errors.Join(
		m.store.Delete(ctx, keyToken),
		m.store.Delete(ctx, keyExpiresAt),
		m.store.Delete(ctx, keyUser),
	)
}
