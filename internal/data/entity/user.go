package entity

import (
	"time"

	"github.com/google/uuid"
)

// User holds an account record. Password is a bcrypt hash, never the
// plaintext.
type User struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Name      string    `db:"name"`
	Password  string    `db:"password"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	IsAdmin   bool      `db:"is_admin"`
	Picture   string    `db:"picture"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
