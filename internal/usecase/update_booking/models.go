package update_booking

import (
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/pkg/types"
)

// Patch частичное обновление бронирования.
// nil-поле означает "не трогать" — семантика присутствия,
// поэтому все поля указатели.
type Patch struct {
	Date      *time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString

	LessonPrice *float64
	FacilityFee *float64
	ServiceFee  *float64
	TotalPrice  *float64

	PaymentMethodID *int64
	Notes           *string

	Status *domain.BookingStatus
}

// touchesSchedule возвращает true, если патч меняет дату или интервал
func (p *Patch) touchesSchedule() bool {
	return p.Date != nil || p.StartTime != nil || p.EndTime != nil
}

// touchesPrice возвращает true, если патч меняет компоненты цены
func (p *Patch) touchesPrice() bool {
	return p.LessonPrice != nil || p.FacilityFee != nil || p.ServiceFee != nil || p.TotalPrice != nil
}

// applyTo накладывает патч на копию бронирования
func (p *Patch) applyTo(b domain.Booking) domain.Booking {
	if p.Date != nil {
		b.BookingDate = *p.Date
	}
	if p.StartTime != nil {
		b.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		b.EndTime = *p.EndTime
	}
	if p.LessonPrice != nil {
		b.LessonPrice = *p.LessonPrice
	}
	if p.FacilityFee != nil {
		b.FacilityFee = *p.FacilityFee
	}
	if p.ServiceFee != nil {
		b.ServiceFee = *p.ServiceFee
	}
	if p.TotalPrice != nil {
		b.TotalPrice = *p.TotalPrice
	}
	if p.PaymentMethodID != nil {
		b.PaymentMethodID = p.PaymentMethodID
	}
	if p.Notes != nil {
		b.Notes = p.Notes
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	return b
}

// Request модель запроса на обновление бронирования
type Request struct {
	BookingID int64
	Principal domain.Principal
	Patch     Patch
}

// Response модель ответа с обновлённым бронированием
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
