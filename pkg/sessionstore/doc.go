// Package sessionstore defines the durable key-value port the session
// manager persists tokens, expiry instants and cached identities through.
//
// The port exists so the session manager depends on an interface rather than
// on any concrete storage global: tests inject MemoryStore, the CLI injects
// FileStore under the user config dir, and shared hosts can inject
// RedisStore.
//
// Values are small strings under independent keys; a missing key surfaces as
// ErrKeyNotFound, which callers read as "no session" rather than a failure.
package sessionstore
