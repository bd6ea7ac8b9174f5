package get_booking

import (
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/internal/service/bookings/models"
)

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

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
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
