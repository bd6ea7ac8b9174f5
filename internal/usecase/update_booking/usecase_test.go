package update_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-LessonService/pkg/ptr"
	"github.com/m04kA/SMC-LessonService/pkg/types"
)

// Заглушки

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeStore struct {
	mu       sync.Mutex
	bookings map[int64]*domain.Booking

	// Имитирует RETURNING updated_at: поле проставляется записи при Update
	updateStamp time.Time
}

func newFakeStore(seed ...*domain.Booking) *fakeStore {
	s := &fakeStore{bookings: make(map[int64]*domain.Booking)}
	for _, b := range seed {
		copied := *b
		s.bookings[b.ID] = &copied
	}
	return s
}

func (s *fakeStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *fakeStore) ListForDate(ctx context.Context, coachID, venueID int64, date time.Time) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*domain.Booking
	for _, b := range s.bookings {
		if !b.BookingDate.Equal(date) || !b.IsActive() {
			continue
		}
		if b.CoachID == coachID || b.VenueID == venueID {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *fakeStore) Update(ctx context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[booking.ID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if !s.updateStamp.IsZero() {
		booking.UpdatedAt = s.updateStamp
	}
	copied := *booking
	s.bookings[booking.ID] = &copied
	return nil
}

type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

var ucNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestUseCase(store *fakeStore) *UseCase {
	uc := NewUseCase(store, &fakeTxManager{}, domain.DefaultRules(), noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: ucNow}
	return uc
}

func seedBooking() *domain.Booking {
	return &domain.Booking{
		ID:           42,
		Reference:    "BK20250615A1B2C3",
		StudentID:    10,
		CoachID:      7,
		VenueID:      3,
		LessonTypeID: 1,
		BookingDate:  ucNow.AddDate(0, 0, 1),
		StartTime:    types.TimeString("14:00"),
		EndTime:      types.TimeString("15:00"),
		LessonPrice:  50,
		FacilityFee:  10,
		ServiceFee:   5,
		TotalPrice:   65,
		Status:       domain.StatusPending,
	}
}

func ownerPrincipal() domain.Principal {
	return domain.Principal{UserID: 10, Role: domain.RoleUser, IsActive: true}
}

func TestUseCase_Execute_UpdateNotes(t *testing.T) {
	store := newFakeStore(seedBooking())
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		Principal: ownerPrincipal(),
		Patch:     Patch{Notes: ptr.Ptr("bring rackets")},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "bring rackets", *resp.Notes)

	// Остальные поля не тронуты
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
	assert.Equal(t, 65.0, resp.TotalPrice)

	stored, err := store.GetByID(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, stored.Notes)
	assert.Equal(t, "bring rackets", *stored.Notes)
}

// Ответ несёт updated_at из базы, а не значение до записи
func TestUseCase_Execute_ReturnsFreshUpdatedAt(t *testing.T) {
	store := newFakeStore(seedBooking())
	store.updateStamp = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		Principal: ownerPrincipal(),
		Patch:     Patch{Notes: ptr.Ptr("confirmed by phone")},
	})
	require.NoError(t, err)
	assert.Equal(t, store.updateStamp, resp.UpdatedAt)
}

func TestUseCase_Execute_ConfirmBooking(t *testing.T) {
	store := newFakeStore(seedBooking())
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		Principal: ownerPrincipal(),
		Patch:     Patch{Status: ptr.Ptr(domain.StatusConfirmed)},
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestUseCase_Execute_InvalidTransition(t *testing.T) {
	confirmed := seedBooking()
	confirmed.Status = domain.StatusConfirmed
	store := newFakeStore(confirmed)
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		Principal: ownerPrincipal(),
		Patch:     Patch{Status: ptr.Ptr(domain.StatusPending)},
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUseCase_Execute_CancelledNotUpdatable(t *testing.T) {
	cancelled := seedBooking()
	cancelled.Status = domain.StatusCancelled
	store := newFakeStore(cancelled)
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		Principal: ownerPrincipal(),
		Patch:     Patch{Notes: ptr.Ptr("too late")},
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNotUpdatable)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 404,
		Principal: ownerPrincipal(),
		Patch:     Patch{Notes: ptr.Ptr("x")},
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_Execute_AccessDenied(t *testing.T) {
	store := newFakeStore(seedBooking())
	uc := newTestUseCase(store)

	testCases := []struct {
		name      string
		principal domain.Principal
	}{
		{name: "Unrelated user", principal: domain.Principal{UserID: 11, Role: domain.RoleUser}},
		{name: "Coach of the booking", principal: domain.Principal{UserID: 7, Role: domain.RoleCoach}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{
				BookingID: 42,
				Principal: tc.principal,
				Patch:     Patch{Notes: ptr.Ptr("hijack")},
			})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrAccessDenied)
		})
	}
}

func TestUseCase_Execute_AdminCanUpdate(t *testing.T) {
	store := newFakeStore(seedBooking())
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		Principal: domain.Principal{UserID: 999, Role: domain.RoleAdmin},
		Patch:     Patch{Notes: ptr.Ptr("admin note")},
	})
	require.NoError(t, err)
	assert.NotNil(t, resp)
}

// Перенос на конфликтующий слот отклоняется
func TestUseCase_Execute_RescheduleConflict(t *testing.T) {
	target := seedBooking()
	other := seedBooking()
	other.ID = 43
	other.Reference = "BK20250615D4E5F6"
	other.StartTime = types.TimeString("16:00")
	other.EndTime = types.TimeString("17:00")

	store := newFakeStore(target, other)
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		Principal: ownerPrincipal(),
		Patch: Patch{
			StartTime: ptr.Ptr(types.TimeString("16:30")),
			EndTime:   ptr.Ptr(types.TimeString("17:30")),
		},
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrCoachConflict)

	// Исходная бронь не изменилась
	stored, getErr := store.GetByID(context.Background(), 42)
	require.NoError(t, getErr)
	assert.Equal(t, types.TimeString("14:00"), stored.StartTime)
}

// Перенос внутри собственного слота не конфликтует сам с собой
func TestUseCase_Execute_RescheduleWithinOwnSlot(t *testing.T) {
	store := newFakeStore(seedBooking())
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		Principal: ownerPrincipal(),
		Patch: Patch{
			StartTime: ptr.Ptr(types.TimeString("14:30")),
			EndTime:   ptr.Ptr(types.TimeString("15:30")),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("14:30"), resp.StartTime)
	assert.Equal(t, types.TimeString("15:30"), resp.EndTime)
}

func TestUseCase_Execute_RescheduleValidation(t *testing.T) {
	store := newFakeStore(seedBooking())
	uc := newTestUseCase(store)
	ctx := context.Background()

	testCases := []struct {
		name        string
		patch       Patch
		expectedErr error
	}{
		{
			name: "Inverted interval",
			patch: Patch{
				StartTime: ptr.Ptr(types.TimeString("16:00")),
				EndTime:   ptr.Ptr(types.TimeString("15:00")),
			},
			expectedErr: domain.ErrInvertedInterval,
		},
		{
			name: "Too long after patch",
			patch: Patch{
				EndTime: ptr.Ptr(types.TimeString("17:30")),
			},
			expectedErr: domain.ErrTooLong,
		},
		{
			name: "Past date",
			patch: Patch{
				Date: ptr.Ptr(ucNow.AddDate(0, 0, -2)),
			},
			expectedErr: domain.ErrPastDate,
		},
		{
			name: "Price mismatch after patch",
			patch: Patch{
				LessonPrice: ptr.Ptr(70.0),
			},
			expectedErr: domain.ErrPriceMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := uc.Execute(ctx, &Request{
				BookingID: 42,
				Principal: ownerPrincipal(),
				Patch:     tc.patch,
			})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestPatch_ApplyTo(t *testing.T) {
	base := *seedBooking()

	patch := Patch{
		StartTime:  ptr.Ptr(types.TimeString("16:00")),
		EndTime:    ptr.Ptr(types.TimeString("17:00")),
		TotalPrice: ptr.Ptr(70.0),
		Notes:      ptr.Ptr("moved"),
	}

	updated := patch.applyTo(base)

	assert.Equal(t, types.TimeString("16:00"), updated.StartTime)
	assert.Equal(t, types.TimeString("17:00"), updated.EndTime)
	assert.Equal(t, 70.0, updated.TotalPrice)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "moved", *updated.Notes)

	// Незатронутые поля сохранены, исходная бронь не изменена
	assert.Equal(t, base.CoachID, updated.CoachID)
	assert.Equal(t, types.TimeString("14:00"), base.StartTime)
	assert.Nil(t, base.Notes)
}

func TestPatch_TouchPredicates(t *testing.T) {
	assert.False(t, (&Patch{}).touchesSchedule())
	assert.False(t, (&Patch{}).touchesPrice())
	assert.False(t, (&Patch{Notes: ptr.Ptr("x")}).touchesSchedule())

	assert.True(t, (&Patch{Date: ptr.Ptr(ucNow)}).touchesSchedule())
	assert.True(t, (&Patch{StartTime: ptr.Ptr(types.TimeString("10:00"))}).touchesSchedule())
	assert.True(t, (&Patch{ServiceFee: ptr.Ptr(1.0)}).touchesPrice())
}
