package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory stores backing the service tests. They enforce the same
// contracts as the SQL repositories: entity.Overlaps for slot conflicts,
// compare-and-swap for state transitions and (nil, nil) for misses.

func testConfig() *utils.Config {
	return &utils.Config{
		Booking: utils.BookingConfig{
			AuditPageSize:   10,
			UserPageSize:    10,
			ConflictRetries: 3,
		},
	}
}

func testRepository() *repository.Repository {
	return &repository.Repository{
		Venue:   newFakeVenueRepo(),
		Order:   newFakeOrderRepo(),
		Message: newFakeMessageRepo(),
		News:    newFakeNewsRepo(),
		User:    newFakeUserRepo(),
	}
}

func newTestService() (*Service, *repository.Repository) {
	repo := testRepository()
	return NewService(repo, testConfig(), zap.NewNop()), repo
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// ---------- venue ----------

type fakeVenueRepo struct {
	mu     sync.Mutex
	venues map[uuid.UUID]*entity.Venue
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{venues: make(map[uuid.UUID]*entity.Venue)}
}

func (f *fakeVenueRepo) Create(_ context.Context, venue *entity.Venue) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *venue
	f.venues[venue.ID] = &copied
	return nil
}

func (f *fakeVenueRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	venue, ok := f.venues[id]
	if !ok {
		return nil, nil
	}
	copied := *venue
	return &copied, nil
}

func (f *fakeVenueRepo) FindByName(_ context.Context, name string) (*entity.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, venue := range f.venues {
		if venue.Name == name {
			copied := *venue
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeVenueRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*entity.Venue, 0, len(f.venues))
	for _, venue := range f.venues {
		copied := *venue
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, limit, offset), nil
}

func (f *fakeVenueRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.venues)), nil
}

func (f *fakeVenueRepo) Update(_ context.Context, venue *entity.Venue) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.venues[venue.ID]; !ok {
		return fmt.Errorf("venue %s: %w", venue.ID.String(), repository.ErrNotFound)
	}
	copied := *venue
	f.venues[venue.ID] = &copied
	return nil
}

func (f *fakeVenueRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.venues[id]; !ok {
		return fmt.Errorf("venue %s: %w", id.String(), repository.ErrNotFound)
	}
	delete(f.venues, id)
	return nil
}

// ---------- order ----------

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (f *fakeOrderRepo) blocking(venueID uuid.UUID, start, end time.Time, exclude uuid.UUID) *entity.Order {
	for _, other := range f.orders {
		if other.ID == exclude || other.VenueID != venueID || !other.State.Blocks() {
			continue
		}
		if entity.Overlaps(other.StartTime, other.EndTime(), start, end) {
			return other
		}
	}
	return nil
}

func (f *fakeOrderRepo) CreateIfFree(_ context.Context, order *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if taken := f.blocking(order.VenueID, order.StartTime, order.EndTime(), uuid.Nil); taken != nil {
		return fmt.Errorf("slot taken by order %s: %w", taken.ID.String(), repository.ErrConflict)
	}
	copied := *order
	f.orders[order.ID] = &copied
	return nil
}

func (f *fakeOrderRepo) UpdateIfFree(_ context.Context, order *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[order.ID]; !ok {
		return fmt.Errorf("order %s: %w", order.ID.String(), repository.ErrNotFound)
	}
	if taken := f.blocking(order.VenueID, order.StartTime, order.EndTime(), order.ID); taken != nil {
		return fmt.Errorf("slot taken by order %s: %w", taken.ID.String(), repository.ErrConflict)
	}
	copied := *order
	f.orders[order.ID] = &copied
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) list(filter func(*entity.Order) bool, newestFirst bool) []*entity.Order {
	var out []*entity.Order
	for _, order := range f.orders {
		if filter(order) {
			copied := *order
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if newestFirst {
			return out[i].OrderTime.After(out[j].OrderTime)
		}
		return out[i].OrderTime.Before(out[j].OrderTime)
	})
	return out
}

func (f *fakeOrderRepo) FindByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.list(func(o *entity.Order) bool { return o.UserID == userID }, true)
	return paginate(all, limit, offset), nil
}

func (f *fakeOrderRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.list(func(o *entity.Order) bool { return o.UserID == userID }, true))), nil
}

func (f *fakeOrderRepo) FindPending(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.list(func(o *entity.Order) bool { return o.State == entity.OrderStatePending }, false)
	return paginate(all, limit, offset), nil
}

func (f *fakeOrderRepo) CountPending(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.list(func(o *entity.Order) bool { return o.State == entity.OrderStatePending }, false))), nil
}

func (f *fakeOrderRepo) FindAudited(_ context.Context) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list(func(o *entity.Order) bool { return o.State != entity.OrderStatePending }, false), nil
}

func (f *fakeOrderRepo) FindOverlapping(_ context.Context, venueID uuid.UUID, from, to time.Time) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.list(func(o *entity.Order) bool {
		return o.VenueID == venueID && o.State.Blocks() && entity.Overlaps(o.StartTime, o.EndTime(), from, to)
	}, false)
	sort.Slice(all, func(i, j int) bool { return all[i].StartTime.Before(all[j].StartTime) })
	return all, nil
}

func (f *fakeOrderRepo) UpdateStateFrom(_ context.Context, id uuid.UUID, from, to entity.OrderState) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok || order.State != from {
		return false, nil
	}
	order.State = to
	order.UpdatedAt = time.Now()
	return true, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[id]; !ok {
		return fmt.Errorf("order %s: %w", id.String(), repository.ErrNotFound)
	}
	delete(f.orders, id)
	return nil
}

// ---------- message ----------

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages map[uuid.UUID]*entity.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[uuid.UUID]*entity.Message)}
}

func (f *fakeMessageRepo) Create(_ context.Context, message *entity.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *message
	f.messages[message.ID] = &copied
	return nil
}

func (f *fakeMessageRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	message, ok := f.messages[id]
	if !ok {
		return nil, nil
	}
	copied := *message
	return &copied, nil
}

func (f *fakeMessageRepo) list(filter func(*entity.Message) bool) []*entity.Message {
	var out []*entity.Message
	for _, message := range f.messages {
		if filter(message) {
			copied := *message
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PostTime.Before(out[j].PostTime) })
	return out
}

func (f *fakeMessageRepo) FindByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.list(func(m *entity.Message) bool { return m.UserID == userID })
	return paginate(all, limit, offset), nil
}

func (f *fakeMessageRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.list(func(m *entity.Message) bool { return m.UserID == userID }))), nil
}

func (f *fakeMessageRepo) FindByState(_ context.Context, state entity.MessageState, limit, offset int) ([]*entity.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.list(func(m *entity.Message) bool { return m.State == state })
	return paginate(all, limit, offset), nil
}

func (f *fakeMessageRepo) CountByState(_ context.Context, state entity.MessageState) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.list(func(m *entity.Message) bool { return m.State == state }))), nil
}

func (f *fakeMessageRepo) Update(_ context.Context, message *entity.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.messages[message.ID]; !ok {
		return fmt.Errorf("message %s: %w", message.ID.String(), repository.ErrNotFound)
	}
	copied := *message
	f.messages[message.ID] = &copied
	return nil
}

func (f *fakeMessageRepo) UpdateStateFrom(_ context.Context, id uuid.UUID, from, to entity.MessageState) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	message, ok := f.messages[id]
	if !ok || message.State != from {
		return false, nil
	}
	message.State = to
	return true, nil
}

func (f *fakeMessageRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.messages[id]; !ok {
		return fmt.Errorf("message %s: %w", id.String(), repository.ErrNotFound)
	}
	delete(f.messages, id)
	return nil
}

// ---------- news ----------

type fakeNewsRepo struct {
	mu   sync.Mutex
	news map[uuid.UUID]*entity.News
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{news: make(map[uuid.UUID]*entity.News)}
}

func (f *fakeNewsRepo) Create(_ context.Context, news *entity.News) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *news
	f.news[news.ID] = &copied
	return nil
}

func (f *fakeNewsRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	news, ok := f.news[id]
	if !ok {
		return nil, nil
	}
	copied := *news
	return &copied, nil
}

func (f *fakeNewsRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*entity.News, 0, len(f.news))
	for _, news := range f.news {
		copied := *news
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].PublishTime.After(all[j].PublishTime) })
	return paginate(all, limit, offset), nil
}

func (f *fakeNewsRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.news)), nil
}

func (f *fakeNewsRepo) Update(_ context.Context, news *entity.News) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.news[news.ID]; !ok {
		return fmt.Errorf("news %s: %w", news.ID.String(), repository.ErrNotFound)
	}
	copied := *news
	f.news[news.ID] = &copied
	return nil
}

func (f *fakeNewsRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.news[id]; !ok {
		return fmt.Errorf("news %s: %w", id.String(), repository.ErrNotFound)
	}
	delete(f.news, id)
	return nil
}

// ---------- user ----------

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CountByUsername(_ context.Context, username string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, user := range f.users {
		if user.Username == username {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*entity.User, 0, len(f.users))
	for _, user := range f.users {
		copied := *user
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user %s: %w", user.ID.String(), repository.ErrNotFound)
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id.String(), repository.ErrNotFound)
	}
	user.Password = hash
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id.String(), repository.ErrNotFound)
	}
	delete(f.users, id)
	return nil
}
