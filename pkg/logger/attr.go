package logger

import "log/slog"

// Error records a single error under the key "error"; nil yields an empty
// attr that slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records a user identifier under the key "user_id".
func UserID(id int) slog.Attr {
	return slog.Int("user_id", id)
}

// TicketID records a ticket identifier under the key "ticket_id".
func TicketID(id int) slog.Attr {
	return slog.Int("ticket_id", id)
}

// Attempt records a retry attempt number under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}
