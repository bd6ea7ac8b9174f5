package create_booking

import (
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/pkg/types"
)

// Request модель запроса на создание бронирования.
// StudentID берётся из аутентифицированного principal, не из тела запроса.
type Request struct {
	StudentID    int64
	CoachID      int64
	VenueID      int64
	LessonTypeID int64

	Date      time.Time // Дата занятия (без времени)
	StartTime types.TimeString
	EndTime   types.TimeString

	LessonPrice float64
	FacilityFee float64
	ServiceFee  float64
	TotalPrice  float64

	PaymentMethodID *int64
	Notes           *string
}

// Response модель ответа с созданным бронированием
type Response struct {
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

// fromDomainBooking конвертирует доменное бронирование в ответ usecase
func fromDomainBooking(b *domain.Booking) *Response {
	return &Response{
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
