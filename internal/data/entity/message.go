package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageState string

const (
	MessageStateWait   MessageState = "wait"
	MessageStatePass   MessageState = "pass"
	MessageStateReject MessageState = "reject"
)

// Message is a user post. It stays in the wait state until an admin
// passes or rejects it; only passed messages are publicly visible.
type Message struct {
	ID       uuid.UUID    `db:"id"`
	UserID   uuid.UUID    `db:"user_id"`
	Content  string       `db:"content"`
	State    MessageState `db:"state"`
	PostTime time.Time    `db:"post_time"`
}
