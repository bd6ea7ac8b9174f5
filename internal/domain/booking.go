package domain

import (
	"time"

	"github.com/m04kA/SMC-LessonService/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a lesson booking in the system
type Booking struct {
	ID        int64
	Reference string // Уникальный человекочитаемый номер брони (BKYYYYMMDDXXXXXX)

	StudentID int64 // ID ученика (users.id)
	CoachID   int64 // ID тренера (users.id, role=COACH)

	VenueID      int64
	LessonTypeID int64

	BookingDate time.Time // Дата занятия (без времени)
	StartTime   types.TimeString
	EndTime     types.TimeString // Эксклюзивная граница: [start, end)

	LessonPrice float64
	FacilityFee float64
	ServiceFee  float64
	TotalPrice  float64 // Инвариант: lesson + facility + service (допуск PriceTolerance)

	PaymentMethodID *int64
	Notes           *string

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its time slot
// (cancelled bookings never block)
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking can still be updated
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// DurationMinutes returns the lesson duration in minutes
func (b *Booking) DurationMinutes() (int, error) {
	return b.StartTime.MinutesUntil(b.EndTime)
}

// CanTransition проверяет допустимость перехода статуса:
// PENDING -> CONFIRMED, PENDING -> CANCELLED, CONFIRMED -> CANCELLED.
// CANCELLED терминален.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled
	default:
		return false
	}
}

// ParseBookingStatus валидирует строковое представление статуса
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// BookingsFilter фильтр для выборки бронирований ученика
type BookingsFilter struct {
	StudentID int64          // Обязательный параметр
	VenueID   *int64         // Фильтр по площадке (опционально)
	CoachID   *int64         // Фильтр по тренеру (опционально)
	Status    *BookingStatus // Фильтр по статусу (опционально)
	Limit     uint64         // 0 = значение по умолчанию
	Offset    uint64
}
