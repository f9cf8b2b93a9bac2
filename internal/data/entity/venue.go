package entity

import (
	"time"

	"github.com/google/uuid"
)

// Venue is immutable during scheduling; orders reference it by ID only.
// OpenTime and CloseTime are wall-clock strings in "15:04" form describing
// the daily opening window.
type Venue struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	Picture     string    `db:"picture"`
	Address     string    `db:"address"`
	OpenTime    string    `db:"open_time"`
	CloseTime   string    `db:"close_time"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// OpeningWindow resolves the venue's opening hours on the given calendar
// day. The returned instants share the day's location.
func (v *Venue) OpeningWindow(day time.Time) (open, close time.Time, err error) {
	open, err = atClock(day, v.OpenTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	close, err = atClock(day, v.CloseTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return open, close, nil
}

func atClock(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
