package usecase

import (
	"context"
	"testing"

	"venue-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnVoEnrichesVenueName(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedVenue(t, repo, "Grand Hall", 100)

	order, err := svc.Order.Submit(ctx, submitReq(uuid.New(), "Grand Hall", 10, 1))
	require.NoError(t, err)

	vos, err := svc.OrderVo.ReturnVo(ctx, []*entity.Order{order})
	require.NoError(t, err)
	require.Len(t, vos, 1)
	assert.Equal(t, "Grand Hall", vos[0].VenueName)
	assert.Equal(t, order.ID.String(), vos[0].ID)
}

func TestReturnVoDeletedVenue(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	venue := seedVenue(t, repo, "Grand Hall", 100)

	order, err := svc.Order.Submit(ctx, submitReq(uuid.New(), "Grand Hall", 10, 1))
	require.NoError(t, err)

	require.NoError(t, repo.Venue.Delete(ctx, venue.ID))

	// A missing venue blanks the name instead of failing the listing.
	vos, err := svc.OrderVo.ReturnVo(ctx, []*entity.Order{order})
	require.NoError(t, err)
	require.Len(t, vos, 1)
	assert.Empty(t, vos[0].VenueName)
}
