package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-LessonService/pkg/types"
)

var conflictDate = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

func makeBooking(id, coachID, venueID int64, start, end types.TimeString, status BookingStatus) *Booking {
	return &Booking{
		ID:          id,
		CoachID:     coachID,
		VenueID:     venueID,
		BookingDate: conflictDate,
		StartTime:   start,
		EndTime:     end,
		Status:      status,
	}
}

func makeCandidate(coachID, venueID int64, start, end types.TimeString) Candidate {
	return Candidate{
		CoachID:     coachID,
		VenueID:     venueID,
		BookingDate: conflictDate,
		StartTime:   start,
		EndTime:     end,
	}
}

func TestFindConflict_NoExisting(t *testing.T) {
	c := makeCandidate(7, 3, "14:00", "15:00")
	assert.NoError(t, FindConflict(c, nil))
	assert.NoError(t, FindConflict(c, []*Booking{}))
}

func TestFindConflict_CoachOverlap(t *testing.T) {
	existing := []*Booking{
		makeBooking(1, 7, 99, "14:30", "15:30", StatusConfirmed),
	}

	c := makeCandidate(7, 3, "14:00", "15:00")
	err := FindConflict(c, existing)
	assert.ErrorIs(t, err, ErrCoachConflict)
}

func TestFindConflict_VenueOverlap(t *testing.T) {
	existing := []*Booking{
		makeBooking(1, 99, 3, "14:30", "15:30", StatusPending),
	}

	c := makeCandidate(7, 3, "14:00", "15:00")
	err := FindConflict(c, existing)
	assert.ErrorIs(t, err, ErrVenueConflict)
}

// Тренерский конфликт репортится раньше конфликта площадки,
// даже если строка площадки имеет меньший id
func TestFindConflict_CoachReportedBeforeVenue(t *testing.T) {
	existing := []*Booking{
		makeBooking(1, 99, 3, "14:00", "15:00", StatusConfirmed),
		makeBooking(2, 7, 98, "14:00", "15:00", StatusConfirmed),
	}

	c := makeCandidate(7, 3, "14:00", "15:00")
	err := FindConflict(c, existing)
	assert.ErrorIs(t, err, ErrCoachConflict)
}

// Смежные интервалы не конфликтуют: границы полуоткрытые
func TestFindConflict_AdjacentIntervals(t *testing.T) {
	existing := []*Booking{
		makeBooking(1, 7, 3, "13:00", "14:00", StatusConfirmed),
		makeBooking(2, 7, 3, "15:00", "16:00", StatusConfirmed),
	}

	c := makeCandidate(7, 3, "14:00", "15:00")
	assert.NoError(t, FindConflict(c, existing))
}

func TestFindConflict_ContainedInterval(t *testing.T) {
	existing := []*Booking{
		makeBooking(1, 7, 3, "13:00", "17:00", StatusConfirmed),
	}

	c := makeCandidate(7, 3, "14:00", "15:00")
	assert.ErrorIs(t, FindConflict(c, existing), ErrCoachConflict)
}

// Отмененные бронирования слот не блокируют
func TestFindConflict_CancelledDoesNotBlock(t *testing.T) {
	existing := []*Booking{
		makeBooking(1, 7, 3, "14:00", "15:00", StatusCancelled),
	}

	c := makeCandidate(7, 3, "14:00", "15:00")
	assert.NoError(t, FindConflict(c, existing))
}

// Собственная строка исключается при проверке на обновлении
func TestFindConflict_ExcludesOwnBooking(t *testing.T) {
	existing := []*Booking{
		makeBooking(42, 7, 3, "14:00", "15:00", StatusConfirmed),
	}

	c := makeCandidate(7, 3, "14:00", "16:00")
	c.ExcludeBookingID = 42
	assert.NoError(t, FindConflict(c, existing))

	// Без исключения тот же кандидат конфликтует
	c.ExcludeBookingID = 0
	assert.ErrorIs(t, FindConflict(c, existing), ErrCoachConflict)
}

// Первый конфликт детерминирован: строки обходятся по возрастанию id
func TestFindConflict_StableOrder(t *testing.T) {
	existing := []*Booking{
		makeBooking(5, 7, 3, "14:00", "15:00", StatusConfirmed),
		makeBooking(2, 7, 3, "14:30", "15:30", StatusConfirmed),
	}

	c := makeCandidate(7, 3, "14:00", "16:00")
	err := FindConflict(c, existing)
	assert.ErrorIs(t, err, ErrCoachConflict)
	assert.Contains(t, err.Error(), "14:30-15:30")
}

func TestFindConflict_DifferentCoachAndVenue(t *testing.T) {
	existing := []*Booking{
		makeBooking(1, 8, 4, "14:00", "15:00", StatusConfirmed),
	}

	c := makeCandidate(7, 3, "14:00", "15:00")
	assert.NoError(t, FindConflict(c, existing))
}
