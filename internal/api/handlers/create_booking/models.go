package create_booking

import (
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	createBooking "github.com/m04kA/SMC-LessonService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-LessonService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CoachID      int64 `json:"coachId"`
	VenueID      int64 `json:"venueId"`
	LessonTypeID int64 `json:"lessonTypeId"`

	BookingDate string `json:"bookingDate"` // "2026-09-15"
	StartTime   string `json:"startTime"`   // "14:00"
	EndTime     string `json:"endTime"`     // "15:00"

	LessonPrice float64 `json:"lessonPrice"`
	FacilityFee float64 `json:"facilityFee"`
	ServiceFee  float64 `json:"serviceFee"`
	TotalPrice  float64 `json:"totalPrice"`

	PaymentMethodID *int64  `json:"paymentMethodId,omitempty"`
	Notes           *string `json:"notes,omitempty"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// StudentID приходит из аутентифицированного principal.
func (r *CreateBookingRequest) ToUseCaseRequest(studentID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		StudentID:       studentID,
		CoachID:         r.CoachID,
		VenueID:         r.VenueID,
		LessonTypeID:    r.LessonTypeID,
		Date:            bookingDate,
		StartTime:       startTime,
		EndTime:         endTime,
		LessonPrice:     r.LessonPrice,
		FacilityFee:     r.FacilityFee,
		ServiceFee:      r.ServiceFee,
		TotalPrice:      r.TotalPrice,
		PaymentMethodID: r.PaymentMethodID,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
