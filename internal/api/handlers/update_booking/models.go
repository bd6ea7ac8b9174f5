package update_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	updateBooking "github.com/m04kA/SMC-LessonService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-LessonService/pkg/types"
)

// UpdateBookingRequest HTTP request model.
// Отсутствующие поля не трогаются (частичное обновление).
type UpdateBookingRequest struct {
	BookingDate *string `json:"bookingDate,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`

	LessonPrice *float64 `json:"lessonPrice,omitempty"`
	FacilityFee *float64 `json:"facilityFee,omitempty"`
	ServiceFee  *float64 `json:"serviceFee,omitempty"`
	TotalPrice  *float64 `json:"totalPrice,omitempty"`

	PaymentMethodID *int64  `json:"paymentMethodId,omitempty"`
	Notes           *string `json:"notes,omitempty"`

	Status *string `json:"status,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"bookingReference"`

	StudentID    int64 `json:"studentId"`
	CoachID      int64 `json:"coachId"`
	VenueID      int64 `json:"venueId"`
	LessonTypeID int64 `json:"lessonTypeId"`

	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`

	LessonPrice float64 `json:"lessonPrice"`
	FacilityFee float64 `json:"facilityFee"`
	ServiceFee  float64 `json:"serviceFee"`
	TotalPrice  float64 `json:"totalPrice"`

	PaymentMethodID *int64  `json:"paymentMethodId,omitempty"`
	Notes           *string `json:"notes,omitempty"`

	Status string `json:"status"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64, principal domain.Principal) (*updateBooking.Request, error) {
	patch := updateBooking.Patch{
		LessonPrice:     r.LessonPrice,
		FacilityFee:     r.FacilityFee,
		ServiceFee:      r.ServiceFee,
		TotalPrice:      r.TotalPrice,
		PaymentMethodID: r.PaymentMethodID,
		Notes:           r.Notes,
	}

	if r.BookingDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.BookingDate)
		if err != nil {
			return nil, err
		}
		patch.Date = &date
	}
	if r.StartTime != nil {
		start, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		patch.StartTime = &start
	}
	if r.EndTime != nil {
		end, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		patch.EndTime = &end
	}
	if r.Status != nil {
		status, ok := domain.ParseBookingStatus(*r.Status)
		if !ok {
			return nil, fmt.Errorf("unknown booking status %q", *r.Status)
		}
		patch.Status = &status
	}

	return &updateBooking.Request{
		BookingID: bookingID,
		Principal: principal,
		Patch:     patch,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		StudentID:       resp.StudentID,
		CoachID:         resp.CoachID,
		VenueID:         resp.VenueID,
		LessonTypeID:    resp.LessonTypeID,
		BookingDate:     resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		LessonPrice:     resp.LessonPrice,
		FacilityFee:     resp.FacilityFee,
		ServiceFee:      resp.ServiceFee,
		TotalPrice:      resp.TotalPrice,
		PaymentMethodID: resp.PaymentMethodID,
		Notes:           resp.Notes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
