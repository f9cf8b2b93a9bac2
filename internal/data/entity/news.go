package entity

import (
	"time"

	"github.com/google/uuid"
)

type News struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	PublishTime time.Time `db:"publish_time"`
}
