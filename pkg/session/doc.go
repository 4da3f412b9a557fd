// Package session owns the client-side authentication lifecycle: token
// acquisition, persistence across restarts, expiry handling and silent
// restoration with bounded retry.
//
// # State machine
//
// A fresh process starts in StateRestoring and resolves into exactly one of
// StateAuthenticated or StateAnonymous. Login and Register replace the
// session wholesale; Logout moves it back to StateAnonymous. The restoring
// phase exists so callers can distinguish "not known yet" from "logged out"
// and avoid bouncing a user with a valid persisted token to the login
// screen.
//
// # Optimistic restoration
//
// Bootstrap trusts a persisted token immediately (within a 30 second expiry
// tolerance for clock skew) and verifies the identity against the server in
// the background, retrying only authorization failures with a short linear
// backoff. Verification failure never destroys the session: a transient
// backend hiccup or an auth-propagation race right after a deployment is
// not a reason to log the user out. A verification result is discarded if
// the session changed while it was in flight.
//
// # Wiring
//
//	client, _ := apiclient.New(cfg.BaseURL)
//	manager := session.New(client, sessionstore.NewFileStore(path), session.WithLogger(log))
//	_ = manager.Bootstrap(ctx)
//	<-manager.Restored()
//
// New installs the manager's token accessor on the client, so every request
// issued after a login or logout sees the current token.
package session
