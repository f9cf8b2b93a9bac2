package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type OrderRepository interface {
	// CreateIfFree inserts the order only when no pending/confirmed order
	// at the same venue overlaps its slot. Returns ErrConflict otherwise.
	CreateIfFree(ctx context.Context, order *entity.Order) error
	// UpdateIfFree rewrites venue/slot/total, resets the state to pending
	// and applies the same overlap rule, ignoring the order's own row.
	UpdateIfFree(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	FindPending(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	CountPending(ctx context.Context) (int64, error)
	FindAudited(ctx context.Context) ([]*entity.Order, error)
	FindOverlapping(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]*entity.Order, error)
	// UpdateStateFrom is a compare-and-swap on the state column. It
	// reports false when the row exists but is no longer in `from`.
	UpdateStateFrom(ctx context.Context, id uuid.UUID, from, to entity.OrderState) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderRepository struct {
	db      database.PgxIface
	log     *zap.Logger
	retries int
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger, retries int) OrderRepository {
	if retries < 1 {
		retries = 3
	}
	return &orderRepository{
		db:      db,
		log:     log.With(zap.String("repository", "order")),
		retries: retries,
	}
}

// Both slots are half-open: rows whose [start_time, start_time+hours)
// intersects [$2, $3). Must stay in line with entity.Overlaps.
const overlapQuery = `
	SELECT id FROM orders
	WHERE venue_id = $1
	  AND state IN ('pending', 'confirmed')
	  AND start_time < $3
	  AND start_time + make_interval(hours => hours) > $2
	LIMIT 1
`

func (r *orderRepository) CreateIfFree(ctx context.Context, order *entity.Order) error {
	insert := `
		INSERT INTO orders (id, user_id, venue_id, state, order_time, start_time, hours, total, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for attempt := 0; attempt < r.retries; attempt++ {
		err := r.withSerializableTx(ctx, func(tx pgx.Tx) error {
			var blocking uuid.UUID
			scanErr := tx.QueryRow(ctx, overlapQuery, order.VenueID, order.StartTime, order.EndTime()).Scan(&blocking)
			if scanErr == nil {
				return fmt.Errorf("slot taken by order %s: %w", blocking.String(), ErrConflict)
			}
			if scanErr != pgx.ErrNoRows {
				return fmt.Errorf("check overlap: %w", scanErr)
			}

			_, execErr := tx.Exec(ctx, insert,
				order.ID,
				order.UserID,
				order.VenueID,
				order.State,
				order.OrderTime,
				order.StartTime,
				order.Hours,
				order.Total,
				order.UpdatedAt,
			)
			if execErr != nil {
				return fmt.Errorf("insert order: %w", execErr)
			}
			return nil
		})

		if isSerializationFailure(err) {
			continue
		}
		if err != nil && !errors.Is(err, ErrConflict) {
			r.log.Error("Failed to create order",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
				zap.String("venue_id", order.VenueID.String()),
			)
		}
		return err
	}

	// Serialization retries exhausted: another writer kept winning the slot.
	return fmt.Errorf("create order %s: retries exhausted: %w", order.ID.String(), ErrConflict)
}

func (r *orderRepository) UpdateIfFree(ctx context.Context, order *entity.Order) error {
	// Excludes the order's own row so rescheduling within the current slot
	// does not conflict with itself.
	overlapExcludingSelf := `
		SELECT id FROM orders
		WHERE venue_id = $1
		  AND id <> $4
		  AND state IN ('pending', 'confirmed')
		  AND start_time < $3
		  AND start_time + make_interval(hours => hours) > $2
		LIMIT 1
	`
	update := `
		UPDATE orders
		SET venue_id = $2, state = $3, start_time = $4, hours = $5, total = $6, updated_at = $7
		WHERE id = $1
	`

	for attempt := 0; attempt < r.retries; attempt++ {
		err := r.withSerializableTx(ctx, func(tx pgx.Tx) error {
			var blocking uuid.UUID
			scanErr := tx.QueryRow(ctx, overlapExcludingSelf, order.VenueID, order.StartTime, order.EndTime(), order.ID).Scan(&blocking)
			if scanErr == nil {
				return fmt.Errorf("slot taken by order %s: %w", blocking.String(), ErrConflict)
			}
			if scanErr != pgx.ErrNoRows {
				return fmt.Errorf("check overlap: %w", scanErr)
			}

			result, execErr := tx.Exec(ctx, update,
				order.ID,
				order.VenueID,
				order.State,
				order.StartTime,
				order.Hours,
				order.Total,
				order.UpdatedAt,
			)
			if execErr != nil {
				return fmt.Errorf("update order: %w", execErr)
			}
			if result.RowsAffected() == 0 {
				return fmt.Errorf("order %s: %w", order.ID.String(), ErrNotFound)
			}
			return nil
		})

		if isSerializationFailure(err) {
			continue
		}
		if err != nil && !errors.Is(err, ErrConflict) && !errors.Is(err, ErrNotFound) {
			r.log.Error("Failed to update order",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
			)
		}
		return err
	}

	return fmt.Errorf("update order %s: retries exhausted: %w", order.ID.String(), ErrConflict)
}

func (r *orderRepository) withSerializableTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// isSerializationFailure matches SQLSTATE 40001, raised when two
// serializable transactions race for the same slot.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, user_id, venue_id, state, order_time, start_time, hours, total, updated_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.VenueID,
		&order.State,
		&order.OrderTime,
		&order.StartTime,
		&order.Hours,
		&order.Total,
		&order.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return &order, nil
}

func (r *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, venue_id, state, order_time, start_time, hours, total, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY order_time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find orders by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find orders by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *orderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count orders by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count orders by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *orderRepository) FindPending(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	// Oldest first so the audit queue drains in submission order.
	query := `
		SELECT id, user_id, venue_id, state, order_time, start_time, hours, total, updated_at
		FROM orders
		WHERE state = 'pending'
		ORDER BY order_time ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find pending orders",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find pending orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *orderRepository) CountPending(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE state = 'pending'`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count pending orders", zap.Error(err))
		return 0, fmt.Errorf("count pending orders: %w", err)
	}

	return count, nil
}

func (r *orderRepository) FindAudited(ctx context.Context) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, venue_id, state, order_time, start_time, hours, total, updated_at
		FROM orders
		WHERE state IN ('confirmed', 'rejected', 'finished')
		ORDER BY order_time ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find audited orders", zap.Error(err))
		return nil, fmt.Errorf("find audited orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *orderRepository) FindOverlapping(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, venue_id, state, order_time, start_time, hours, total, updated_at
		FROM orders
		WHERE venue_id = $1
		  AND state IN ('pending', 'confirmed')
		  AND start_time < $3
		  AND start_time + make_interval(hours => hours) > $2
		ORDER BY start_time ASC
	`

	rows, err := r.db.Query(ctx, query, venueID, from, to)
	if err != nil {
		r.log.Error("Failed to find overlapping orders",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
		)
		return nil, fmt.Errorf("find overlapping orders for venue %s: %w", venueID.String(), err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *orderRepository) UpdateStateFrom(ctx context.Context, id uuid.UUID, from, to entity.OrderState) (bool, error) {
	query := `UPDATE orders SET state = $3, updated_at = NOW() WHERE id = $1 AND state = $2`

	result, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		r.log.Error("Failed to update order state",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("update order %s state to %s: %w", id.String(), string(to), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return fmt.Errorf("delete order %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Order deleted", zap.String("order_id", id.String()))
	return nil
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.VenueID,
			&order.State,
			&order.OrderTime,
			&order.StartTime,
			&order.Hours,
			&order.Total,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	return orders, rows.Err()
}
