package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/pkg/types"
)

// BookingResponse представление бронирования для вызывающего слоя
type BookingResponse struct {
	ID        int64
	Reference string

	StudentID    int64
	CoachID      int64
	VenueID      int64
	LessonTypeID int64

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	LessonPrice float64
	FacilityFee float64
	ServiceFee  float64
	TotalPrice  float64

	PaymentMethodID *int64
	Notes           *string

	Status string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// ListBookingsRequest запрос списка бронирований ученика
type ListBookingsRequest struct {
	Principal domain.Principal
	StudentID int64 // Чьи бронирования смотрим (не владелец — только ADMIN)

	VenueID *int64
	CoachID *int64
	Status  *string

	Limit  uint64
	Offset uint64
}

// ToDomainFilter конвертирует запрос в фильтр хранилища
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StudentID: r.StudentID,
		VenueID:   r.VenueID,
		CoachID:   r.CoachID,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus валидирует и конвертирует строковый статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status, ok := domain.ParseBookingStatus(s)
	if !ok {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}

// FromDomainBooking конвертирует доменное бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		Reference:       b.Reference,
		StudentID:       b.StudentID,
		CoachID:         b.CoachID,
		VenueID:         b.VenueID,
		LessonTypeID:    b.LessonTypeID,
		Date:            b.BookingDate,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		LessonPrice:     b.LessonPrice,
		FacilityFee:     b.FacilityFee,
		ServiceFee:      b.ServiceFee,
		TotalPrice:      b.TotalPrice,
		PaymentMethodID: b.PaymentMethodID,
		Notes:           b.Notes,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	responses := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: responses,
		Total:    len(responses),
	}
}
