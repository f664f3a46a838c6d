package entity

import "time"

// PasswordResetToken token de recuperación emitido para un usuario.
type PasswordResetToken struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

// Expired informa si el token venció respecto a now.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
