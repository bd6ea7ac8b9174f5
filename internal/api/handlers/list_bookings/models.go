package list_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/internal/service/bookings/models"
)

// BookingJSON элемент списка бронирований
type BookingJSON struct {
	ID        int64  `json:"id"`
	Reference string `json:"bookingReference"`

	StudentID    int64 `json:"studentId"`
	CoachID      int64 `json:"coachId"`
	VenueID      int64 `json:"venueId"`
	LessonTypeID int64 `json:"lessonTypeId"`

	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`

	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`

	CreatedAt string `json:"createdAt"`
}

// ListResponse HTTP ответ со списком бронирований
type ListResponse struct {
	Bookings []*BookingJSON `json:"bookings"`
	Total    int            `json:"total"`
}

// ParseQuery разбирает query-параметры фильтрации списка.
// studentId опционален: по умолчанию — бронирования самого principal.
func ParseQuery(query url.Values, principal domain.Principal) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		Principal: principal,
		StudentID: principal.UserID,
	}

	if raw := query.Get("studentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StudentID = id
	}
	if raw := query.Get("venueId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.VenueID = &id
	}
	if raw := query.Get("coachId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CoachID = &id
	}
	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Offset = offset
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *ListResponse {
	bookings := make([]*BookingJSON, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		bookings = append(bookings, &BookingJSON{
			ID:           b.ID,
			Reference:    b.Reference,
			StudentID:    b.StudentID,
			CoachID:      b.CoachID,
			VenueID:      b.VenueID,
			LessonTypeID: b.LessonTypeID,
			BookingDate:  b.Date.Format(domain.DateFormat),
			StartTime:    b.StartTime.String(),
			EndTime:      b.EndTime.String(),
			TotalPrice:   b.TotalPrice,
			Status:       b.Status,
			CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		})
	}
	return &ListResponse{
		Bookings: bookings,
		Total:    resp.Total,
	}
}
