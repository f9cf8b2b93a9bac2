package usecase

import (
	"context"
	"testing"

	"venue-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsLifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	news, err := svc.News.Create(ctx, &request.NewsRequest{
		Title:   "New hall opening",
		Content: "The Grand Hall opens next month.",
	})
	require.NoError(t, err)

	updated, err := svc.News.Update(ctx, news.ID, &request.NewsRequest{
		Title:   "Grand Hall now open",
		Content: "Bookings are live.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Grand Hall now open", updated.Title)

	found, err := svc.News.GetByID(ctx, news.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bookings are live.", found.Content)

	require.NoError(t, svc.News.Delete(ctx, news.ID))
	_, err = svc.News.GetByID(ctx, news.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewsValidationAndListing(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.News.Create(ctx, &request.NewsRequest{Title: "", Content: "body"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.News.Update(ctx, uuid.New(), &request.NewsRequest{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrNotFound)

	for i := 0; i < 3; i++ {
		_, err := svc.News.Create(ctx, &request.NewsRequest{Title: "item", Content: "body"})
		require.NoError(t, err)
	}

	page, err := svc.News.FindAll(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)

	empty, err := svc.News.FindAll(ctx, -1)
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
}
