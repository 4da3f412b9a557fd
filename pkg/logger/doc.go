// Package logger is a small factory over log/slog with functional options
// and the handful of attribute helpers the rest of the module shares. JSON
// at info level is the default; WithDevelopment switches to readable text at
// debug level for local work.
package logger
