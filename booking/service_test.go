package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agusputra69/pawranger-api/models"
)

type memRepo struct {
	mu              sync.Mutex
	bookings        map[uint]*models.Booking
	nextID          uint
	bookedSlotCalls int
	err             error
}

func newMemRepo() *memRepo {
	return &memRepo{bookings: make(map[uint]*models.Booking)}
}

func (m *memRepo) Create(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.bookings {
		if existing.Date == b.Date && existing.TimeSlot == b.TimeSlot &&
			existing.Status != models.BookingStatusCancelled {
			return ErrSlotTaken
		}
	}
	m.nextID++
	b.ID = m.nextID
	m.bookings[b.ID] = b
	return nil
}

func (m *memRepo) ByID(_ context.Context, id uint) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, assert.AnError
	}
	copied := *b
	return &copied, nil
}

func (m *memRepo) BookedSlots(_ context.Context, date string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookedSlotCalls++
	if m.err != nil {
		return nil, m.err
	}
	var out []string
	for _, b := range m.bookings {
		if b.Date == date && b.Status != models.BookingStatusCancelled {
			out = append(out, b.TimeSlot)
		}
	}
	return out, nil
}

func (m *memRepo) List(_ context.Context, date, status string, limit, offset int) ([]models.Booking, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.bookings {
		if date != "" && b.Date != date {
			continue
		}
		if status != "" && string(b.Status) != status {
			continue
		}
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (m *memRepo) SetStatus(_ context.Context, id uint, to models.BookingStatus) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, assert.AnError
	}
	b.Status = to
	copied := *b
	return &copied, nil
}

// 2026-03-02 is a Monday; 2026-03-08 is a Sunday.
func fixedNow() time.Time {
	return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
}

func newTestService(repo Repo) *Service {
	svc := NewService(repo)
	svc.now = fixedNow
	return svc
}

func validRequest() Request {
	return Request{
		ServiceCode:   "full_grooming",
		Date:          "2026-03-03",
		TimeSlot:      "10:00",
		CustomerName:  "Sari Dewi",
		CustomerPhone: "+62811223344",
		PetName:       "Mochi",
		PetSpecies:    "cat",
	}
}

func TestAvailabilityExcludesBookedSlots(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	for _, slot := range []string{"09:00", "10:00"} {
		req := validRequest()
		req.TimeSlot = slot
		_, err := svc.Book(ctx, req)
		require.NoError(t, err)
	}

	statuses, err := svc.Availability(ctx, "2026-03-03")
	require.NoError(t, err)
	require.Len(t, statuses, len(Slots))

	for _, st := range statuses {
		if st.Time == "09:00" || st.Time == "10:00" {
			assert.False(t, st.Available, st.Time)
		} else {
			assert.True(t, st.Available, st.Time)
		}
	}
}

func TestAvailabilitySundayFullyUnavailable(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	statuses, err := svc.Availability(context.Background(), "2026-03-08")
	require.NoError(t, err)
	require.Len(t, statuses, len(Slots))
	for _, st := range statuses {
		assert.False(t, st.Available)
	}
	assert.Zero(t, repo.bookedSlotCalls, "closed days must not hit the store")
}

func TestAvailabilityPastDateFullyUnavailable(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	statuses, err := svc.Availability(context.Background(), "2026-02-27")
	require.NoError(t, err)
	for _, st := range statuses {
		assert.False(t, st.Available)
	}
	assert.Zero(t, repo.bookedSlotCalls)
}

func TestBookCopiesCatalogPrice(t *testing.T) {
	svc := newTestService(newMemRepo())

	b, err := svc.Book(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Full Grooming & Styling", b.ServiceName)
	assert.Equal(t, 150000.0, b.TotalPrice)
	assert.Equal(t, models.BookingStatusPending, b.Status)
}

func TestBookValidation(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	req := validRequest()
	req.ServiceCode = "unicorn_wash"
	_, err := svc.Book(ctx, req)
	assert.ErrorIs(t, err, ErrUnknownService)

	req = validRequest()
	req.TimeSlot = "09:15"
	_, err = svc.Book(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	req = validRequest()
	req.Date = "03/03/2026"
	_, err = svc.Book(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	req = validRequest()
	req.Date = "2026-03-08" // Sunday
	_, err = svc.Book(ctx, req)
	assert.ErrorIs(t, err, ErrClosedDate)

	req = validRequest()
	req.Date = "2026-02-27" // past
	_, err = svc.Book(ctx, req)
	assert.ErrorIs(t, err, ErrClosedDate)
}

func TestBookSlotCollision(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	_, err := svc.Book(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Book(ctx, validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestStatusTransitions(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	b, err := svc.Book(ctx, validRequest())
	require.NoError(t, err)

	confirmed, err := svc.Confirm(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)

	// confirming twice is rejected
	_, err = svc.Confirm(ctx, b.ID)
	assert.ErrorIs(t, err, ErrBadTransition)

	cancelled, err := svc.Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	// cancelled is final
	_, err = svc.Confirm(ctx, b.ID)
	assert.ErrorIs(t, err, ErrBadTransition)
}
