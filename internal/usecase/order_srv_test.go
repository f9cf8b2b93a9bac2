package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDay = "2030-05-20"

func seedVenue(t *testing.T, repo *repository.Repository, name string, price float64) *entity.Venue {
	t.Helper()
	venue := &entity.Venue{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		Address:   "1 Main St",
		OpenTime:  "08:00",
		CloseTime: "22:00",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Venue.Create(context.Background(), venue))
	return venue
}

func submitReq(userID uuid.UUID, venueName string, hour, hours int) *request.SubmitOrderRequest {
	return &request.SubmitOrderRequest{
		UserID:    userID.String(),
		VenueName: venueName,
		StartTime: fmt.Sprintf("%s %02d:00", testDay, hour),
		Hours:     hours,
	}
}

func TestSubmitLifecycle(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedVenue(t, repo, "Grand Hall", 100)
	userID := uuid.New()

	// A 10:00 two-hour booking is accepted at the locked-in price.
	first, err := svc.Order.Submit(ctx, submitReq(userID, "Grand Hall", 10, 2))
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatePending, first.State)
	assert.Equal(t, 200.0, first.Total)

	// 11:00 for one hour lands inside the taken slot.
	_, err = svc.Order.Submit(ctx, submitReq(userID, "Grand Hall", 11, 1))
	assert.ErrorIs(t, err, ErrConflict)

	// The conflict holds after confirmation too.
	require.NoError(t, svc.Order.Confirm(ctx, first.ID))
	_, err = svc.Order.Submit(ctx, submitReq(userID, "Grand Hall", 11, 1))
	assert.ErrorIs(t, err, ErrConflict)

	// 12:00 touches the 10:00-12:00 slot only at the boundary.
	second, err := svc.Order.Submit(ctx, submitReq(userID, "Grand Hall", 12, 1))
	require.NoError(t, err)

	// Once the first order is finished its slot frees up.
	require.NoError(t, svc.Order.Finish(ctx, first.ID))
	_, err = svc.Order.Submit(ctx, submitReq(userID, "Grand Hall", 10, 2))
	require.NoError(t, err)

	// A rejected order frees its slot as well.
	require.NoError(t, svc.Order.Reject(ctx, second.ID))
	_, err = svc.Order.Submit(ctx, submitReq(userID, "Grand Hall", 12, 1))
	require.NoError(t, err)
}

func TestSubmitRejectsBadInput(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedVenue(t, repo, "Grand Hall", 100)
	userID := uuid.New()

	t.Run("unknown venue", func(t *testing.T) {
		_, err := svc.Order.Submit(ctx, submitReq(userID, "No Such Hall", 10, 1))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed start time", func(t *testing.T) {
		req := submitReq(userID, "Grand Hall", 10, 1)
		req.StartTime = "next tuesday"
		_, err := svc.Order.Submit(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("before opening", func(t *testing.T) {
		_, err := svc.Order.Submit(ctx, submitReq(userID, "Grand Hall", 7, 1))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("past closing", func(t *testing.T) {
		_, err := svc.Order.Submit(ctx, submitReq(userID, "Grand Hall", 21, 2))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("zero hours", func(t *testing.T) {
		req := submitReq(userID, "Grand Hall", 10, 1)
		req.Hours = 0
		_, err := svc.Order.Submit(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestTransitionTable(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedVenue(t, repo, "Grand Hall", 100)

	type op struct {
		name string
		call func(context.Context, uuid.UUID) error
	}
	ops := []op{
		{"confirm", svc.Order.Confirm},
		{"reject", svc.Order.Reject},
		{"finish", svc.Order.Finish},
	}

	legal := map[entity.OrderState]map[string]bool{
		entity.OrderStatePending:   {"confirm": true, "reject": true},
		entity.OrderStateConfirmed: {"finish": true},
		entity.OrderStateRejected:  {},
		entity.OrderStateFinished:  {},
	}

	hour := 8
	for state, allowed := range legal {
		for _, o := range ops {
			t.Run(string(state)+"/"+o.name, func(t *testing.T) {
				order, err := svc.Order.Submit(ctx, submitReq(uuid.New(), "Grand Hall", hour, 1))
				require.NoError(t, err)
				hour++

				forceState(t, repo, order.ID, state)

				err = o.call(ctx, order.ID)
				after, findErr := svc.Order.GetByID(ctx, order.ID)
				require.NoError(t, findErr)

				if allowed[o.name] {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, ErrIllegalState)
					// A refused transition leaves the state untouched.
					assert.Equal(t, state, after.State)
				}
			})
		}
	}

	t.Run("missing order", func(t *testing.T) {
		err := svc.Order.Confirm(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// forceState walks the order to the wanted state through legal moves.
func forceState(t *testing.T, repo *repository.Repository, id uuid.UUID, state entity.OrderState) {
	t.Helper()
	ctx := context.Background()
	switch state {
	case entity.OrderStatePending:
	case entity.OrderStateConfirmed:
		mustSwap(t, repo, ctx, id, entity.OrderStatePending, entity.OrderStateConfirmed)
	case entity.OrderStateRejected:
		mustSwap(t, repo, ctx, id, entity.OrderStatePending, entity.OrderStateRejected)
	case entity.OrderStateFinished:
		mustSwap(t, repo, ctx, id, entity.OrderStatePending, entity.OrderStateConfirmed)
		mustSwap(t, repo, ctx, id, entity.OrderStateConfirmed, entity.OrderStateFinished)
	}
}

func mustSwap(t *testing.T, repo *repository.Repository, ctx context.Context, id uuid.UUID, from, to entity.OrderState) {
	t.Helper()
	swapped, err := repo.Order.UpdateStateFrom(ctx, id, from, to)
	require.NoError(t, err)
	require.True(t, swapped)
}

func TestNoOverlapInvariant(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	venue := seedVenue(t, repo, "Grand Hall", 50)
	rng := rand.New(rand.NewSource(1))

	// Fire random submissions at one day and verify that whatever was
	// accepted never overlaps pairwise.
	for i := 0; i < 200; i++ {
		hour := 8 + rng.Intn(13)
		hours := 1 + rng.Intn(3)
		if hour+hours > 22 {
			hours = 22 - hour
		}
		_, err := svc.Order.Submit(ctx, submitReq(uuid.New(), "Grand Hall", hour, hours))
		if err != nil {
			require.ErrorIs(t, err, ErrConflict)
		}
	}

	dayStart := time.Date(2030, 5, 20, 0, 0, 0, 0, time.UTC)
	accepted, err := repo.Order.FindOverlapping(ctx, venue.ID, dayStart, dayStart.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.NotEmpty(t, accepted)

	for i := 0; i < len(accepted); i++ {
		for j := i + 1; j < len(accepted); j++ {
			a, b := accepted[i], accepted[j]
			assert.False(t, entity.Overlaps(a.StartTime, a.EndTime(), b.StartTime, b.EndTime()),
				"orders %s and %s overlap", a.ID, b.ID)
		}
	}
}

func TestAuditQueuePagination(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedVenue(t, repo, "Grand Hall", 10)

	// 13 pending orders across two days: pages of 10, then 3.
	for i := 0; i < 13; i++ {
		day := testDay
		hour := 8 + i
		if i >= 7 {
			day = "2030-05-21"
			hour = 8 + i - 7
		}
		_, err := svc.Order.Submit(ctx, &request.SubmitOrderRequest{
			UserID:    uuid.New().String(),
			VenueName: "Grand Hall",
			StartTime: fmt.Sprintf("%s %02d:00", day, hour),
			Hours:     1,
		})
		require.NoError(t, err)
	}

	t.Run("strict rejects page zero", func(t *testing.T) {
		_, err := svc.Order.FindUnauditedOrders(ctx, 0)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("strict rejects negative page", func(t *testing.T) {
		_, err := svc.Order.FindUnauditedOrders(ctx, -3)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("full and partial pages", func(t *testing.T) {
		page1, err := svc.Order.FindUnauditedOrders(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, page1.Items, 10)
		assert.EqualValues(t, 13, page1.Total)

		page2, err := svc.Order.FindUnauditedOrders(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, page2.Items, 3)
	})

	t.Run("page past the end is empty not an error", func(t *testing.T) {
		page, err := svc.Order.FindUnauditedOrders(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.EqualValues(t, 13, page.Total)
	})
}

func TestUserOrdersLenientPagination(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedVenue(t, repo, "Grand Hall", 10)
	userID := uuid.New()

	_, err := svc.Order.Submit(ctx, submitReq(userID, "Grand Hall", 10, 1))
	require.NoError(t, err)

	t.Run("page zero degrades to empty", func(t *testing.T) {
		page, err := svc.Order.FindUserOrders(ctx, userID, 0)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})

	t.Run("negative page degrades to empty", func(t *testing.T) {
		page, err := svc.Order.FindUserOrders(ctx, userID, -1)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})

	t.Run("valid page lists own orders only", func(t *testing.T) {
		_, err := svc.Order.Submit(ctx, submitReq(uuid.New(), "Grand Hall", 12, 1))
		require.NoError(t, err)

		page, err := svc.Order.FindUserOrders(ctx, userID, 1)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, userID, page.Items[0].UserID)
	})
}

func TestUpdateResetsToPending(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedVenue(t, repo, "Grand Hall", 100)
	seedVenue(t, repo, "Small Room", 40)
	userID := uuid.New()

	order, err := svc.Order.Submit(ctx, submitReq(userID, "Grand Hall", 10, 2))
	require.NoError(t, err)
	require.NoError(t, svc.Order.Confirm(ctx, order.ID))

	updated, err := svc.Order.Update(ctx, order.ID, &request.UpdateOrderRequest{
		VenueName: "Small Room",
		StartTime: testDay + " 14:00",
		Hours:     3,
	})
	require.NoError(t, err)

	// The edit re-enters the audit queue and reprices at the new venue.
	assert.Equal(t, entity.OrderStatePending, updated.State)
	assert.Equal(t, 120.0, updated.Total)

	audited, err := svc.Order.FindAuditedOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, audited)

	pending, err := svc.Order.FindUnauditedOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, pending.Items, 1)
	assert.Equal(t, updated.ID, pending.Items[0].ID)
}

func TestUpdateIgnoresOwnSlot(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedVenue(t, repo, "Grand Hall", 100)

	order, err := svc.Order.Submit(ctx, submitReq(uuid.New(), "Grand Hall", 10, 2))
	require.NoError(t, err)

	// Shrinking inside its own slot must not conflict with itself.
	updated, err := svc.Order.Update(ctx, order.ID, &request.UpdateOrderRequest{
		VenueName: "Grand Hall",
		StartTime: testDay + " 10:00",
		Hours:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Hours)

	// But moving onto another order still does.
	_, err = svc.Order.Submit(ctx, submitReq(uuid.New(), "Grand Hall", 14, 2))
	require.NoError(t, err)

	_, err = svc.Order.Update(ctx, order.ID, &request.UpdateOrderRequest{
		VenueName: "Grand Hall",
		StartTime: testDay + " 15:00",
		Hours:     1,
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestFindVenueOrders(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedVenue(t, repo, "Grand Hall", 100)

	first, err := svc.Order.Submit(ctx, submitReq(uuid.New(), "Grand Hall", 10, 1))
	require.NoError(t, err)
	second, err := svc.Order.Submit(ctx, submitReq(uuid.New(), "Grand Hall", 9, 1))
	require.NoError(t, err)

	// A rejected order drops out of the availability view.
	third, err := svc.Order.Submit(ctx, submitReq(uuid.New(), "Grand Hall", 12, 1))
	require.NoError(t, err)
	require.NoError(t, svc.Order.Reject(ctx, third.ID))

	venue, orders, err := svc.Order.FindVenueOrders(ctx, "Grand Hall", testDay)
	require.NoError(t, err)
	assert.Equal(t, "Grand Hall", venue.Name)
	require.Len(t, orders, 2)
	// Ordered by start time.
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	t.Run("other day is empty", func(t *testing.T) {
		_, orders, err := svc.Order.FindVenueOrders(ctx, "Grand Hall", "2030-05-21")
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("bad date", func(t *testing.T) {
		_, _, err := svc.Order.FindVenueOrders(ctx, "Grand Hall", "21/05/2030")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unknown venue", func(t *testing.T) {
		_, _, err := svc.Order.FindVenueOrders(ctx, "No Such Hall", testDay)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetByID(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedVenue(t, repo, "Grand Hall", 100)

	order, err := svc.Order.Submit(ctx, submitReq(uuid.New(), "Grand Hall", 10, 1))
	require.NoError(t, err)

	// Reading is idempotent and side-effect free.
	for i := 0; i < 3; i++ {
		found, err := svc.Order.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, found.ID)
		assert.Equal(t, entity.OrderStatePending, found.State)
	}

	_, err = svc.Order.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTwoVenuesDoNotConflict(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedVenue(t, repo, "Grand Hall", 100)
	seedVenue(t, repo, "Small Room", 40)

	_, err := svc.Order.Submit(ctx, submitReq(uuid.New(), "Grand Hall", 10, 2))
	require.NoError(t, err)

	// Same slot, different venue.
	_, err = svc.Order.Submit(ctx, submitReq(uuid.New(), "Small Room", 10, 2))
	require.NoError(t, err)
}
