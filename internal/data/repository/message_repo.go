package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Message, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	FindByState(ctx context.Context, state entity.MessageState, limit, offset int) ([]*entity.Message, error)
	CountByState(ctx context.Context, state entity.MessageState) (int64, error)
	Update(ctx context.Context, message *entity.Message) error
	// UpdateStateFrom is a compare-and-swap on the state column, mirroring
	// the order repository so two admins cannot both audit the same post.
	UpdateStateFrom(ctx context.Context, id uuid.UUID, from, to entity.MessageState) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type messageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMessageRepository(db database.PgxIface, log *zap.Logger) MessageRepository {
	return &messageRepository{
		db:  db,
		log: log.With(zap.String("repository", "message")),
	}
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	query := `
		INSERT INTO messages (id, user_id, content, state, post_time)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.UserID,
		message.Content,
		message.State,
		message.PostTime,
	)

	if err != nil {
		r.log.Error("Failed to create message",
			zap.Error(err),
			zap.String("user_id", message.UserID.String()),
		)
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

func (r *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	query := `
		SELECT id, user_id, content, state, post_time
		FROM messages
		WHERE id = $1
	`

	var message entity.Message
	err := r.db.QueryRow(ctx, query, id).Scan(
		&message.ID,
		&message.UserID,
		&message.Content,
		&message.State,
		&message.PostTime,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find message by ID",
			zap.Error(err),
			zap.String("message_id", id.String()),
		)
		return nil, fmt.Errorf("find message by ID %s: %w", id.String(), err)
	}

	return &message, nil
}

func (r *messageRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	query := `
		SELECT id, user_id, content, state, post_time
		FROM messages
		WHERE user_id = $1
		ORDER BY post_time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find messages by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find messages by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

func (r *messageRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM messages WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count messages by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count messages by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *messageRepository) FindByState(ctx context.Context, state entity.MessageState, limit, offset int) ([]*entity.Message, error) {
	// Wait queue drains oldest first; the public pass feed reads newest
	// first. Ordering follows the state being asked for.
	order := "ASC"
	if state == entity.MessageStatePass {
		order = "DESC"
	}
	query := fmt.Sprintf(`
		SELECT id, user_id, content, state, post_time
		FROM messages
		WHERE state = $1
		ORDER BY post_time %s
		LIMIT $2 OFFSET $3
	`, order)

	rows, err := r.db.Query(ctx, query, state, limit, offset)
	if err != nil {
		r.log.Error("Failed to find messages by state",
			zap.Error(err),
			zap.String("state", string(state)),
		)
		return nil, fmt.Errorf("find messages by state %s: %w", string(state), err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

func (r *messageRepository) CountByState(ctx context.Context, state entity.MessageState) (int64, error) {
	query := `SELECT COUNT(*) FROM messages WHERE state = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, state).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count messages by state",
			zap.Error(err),
			zap.String("state", string(state)),
		)
		return 0, fmt.Errorf("count messages by state %s: %w", string(state), err)
	}

	return count, nil
}

func (r *messageRepository) Update(ctx context.Context, message *entity.Message) error {
	query := `
		UPDATE messages
		SET content = $2, state = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		message.ID,
		message.Content,
		message.State,
	)

	if err != nil {
		r.log.Error("Failed to update message",
			zap.Error(err),
			zap.String("message_id", message.ID.String()),
		)
		return fmt.Errorf("update message %s: %w", message.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("message %s: %w", message.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *messageRepository) UpdateStateFrom(ctx context.Context, id uuid.UUID, from, to entity.MessageState) (bool, error) {
	query := `UPDATE messages SET state = $3 WHERE id = $1 AND state = $2`

	result, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		r.log.Error("Failed to update message state",
			zap.Error(err),
			zap.String("message_id", id.String()),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("update message %s state to %s: %w", id.String(), string(to), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM messages WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete message",
			zap.Error(err),
			zap.String("message_id", id.String()),
		)
		return fmt.Errorf("delete message %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("message %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func scanMessages(rows pgx.Rows) ([]*entity.Message, error) {
	var messages []*entity.Message
	for rows.Next() {
		var message entity.Message
		err := rows.Scan(
			&message.ID,
			&message.UserID,
			&message.Content,
			&message.State,
			&message.PostTime,
		)
		if err != nil {
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, &message)
	}

	return messages, rows.Err()
}
