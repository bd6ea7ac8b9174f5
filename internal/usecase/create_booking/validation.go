package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// validateRequest прогоняет статические проверки кандидата:
// идентификаторы, дата и интервал, сходимость цены.
// Чистая функция, динамические (зависящие от данных) проверки — в транзакции.
func validateRequest(req *Request, now time.Time, rules domain.Rules) error {
	if req.StudentID <= 0 {
		return fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
	}

	if err := domain.ValidateReferences(req.VenueID, req.CoachID, req.LessonTypeID); err != nil {
		return err
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if err := domain.ValidateTime(req.Date, req.StartTime, req.EndTime, now, rules); err != nil {
		return err
	}

	if err := domain.ValidatePrice(req.LessonPrice, req.FacilityFee, req.ServiceFee, req.TotalPrice, rules.PriceTolerance); err != nil {
		return err
	}

	if req.PaymentMethodID != nil && *req.PaymentMethodID <= 0 {
		return fmt.Errorf("%w: paymentMethodID must be positive", ErrInvalidInput)
	}

	return nil
}
