package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/booking"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	rules        domain.Rules
	refAttempts  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	rules domain.Rules,
	refAttempts int,
	logger Logger,
) *UseCase {
	if refAttempts <= 0 {
		refAttempts = domain.DefaultReferenceAttempts
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		rules:        rules,
		refAttempts:  refAttempts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов и вставка идут в одной сериализуемой транзакции:
// выборка существующих бронирований блокируется FOR UPDATE, поэтому две
// конкурирующие заявки на пересекающийся интервал не пройдут обе.
// При любой ошибке валидации или конфликте транзакция откатывается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: student=%d, coach=%d, venue=%d, lessonType=%d, date=%s, time=%s-%s",
		req.StudentID, req.CoachID, req.VenueID, req.LessonTypeID,
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	now := uc.timeProvider.Now()

	// 1. Статическая валидация: идентификаторы, окно дат, интервал, цена
	if err := validateRequest(req, now, uc.rules); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Коллизия номера брони ретраится со свежим суффиксом,
	// ограниченное число попыток
	for attempt := 1; attempt <= uc.refAttempts; attempt++ {
		reference := domain.NewReference(now)

		err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			// 2.1. Активные бронирования тренера и площадки на дату,
			// с блокировкой строк до конца транзакции
			existing, err := uc.bookingRepo.ListForDate(txCtx, req.CoachID, req.VenueID, req.Date)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
				return fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
			}

			// 2.2. Проверка пересечений: сначала тренер, потом площадка
			candidate := domain.Candidate{
				CoachID:     req.CoachID,
				VenueID:     req.VenueID,
				BookingDate: req.Date,
				StartTime:   req.StartTime,
				EndTime:     req.EndTime,
			}
			if err := domain.FindConflict(candidate, existing); err != nil {
				uc.logger.Warn("CreateBooking: conflict detected: %v", err)
				return err
			}

			// 2.3. Вставка в том же снепшоте, что и проверка
			booking := &domain.Booking{
				Reference:       reference,
				StudentID:       req.StudentID,
				CoachID:         req.CoachID,
				VenueID:         req.VenueID,
				LessonTypeID:    req.LessonTypeID,
				BookingDate:     req.Date,
				StartTime:       req.StartTime,
				EndTime:         req.EndTime,
				LessonPrice:     req.LessonPrice,
				FacilityFee:     req.FacilityFee,
				ServiceFee:      req.ServiceFee,
				TotalPrice:      req.TotalPrice,
				PaymentMethodID: req.PaymentMethodID,
				Notes:           req.Notes,
				Status:          domain.StatusPending,
			}

			created, err := uc.bookingRepo.Create(txCtx, booking)
			if err != nil {
				return err
			}

			result = created
			return nil
		})

		if err == nil {
			break
		}

		if errors.Is(err, bookingRepo.ErrDuplicateReference) {
			uc.logger.Warn("CreateBooking: reference %s collided, attempt %d/%d",
				reference, attempt, uc.refAttempts)
			if attempt == uc.refAttempts {
				return nil, ErrDuplicateReference
			}
			continue
		}

		if errors.Is(err, bookingRepo.ErrRelationNotFound) {
			uc.logger.Warn("CreateBooking: relation not found: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrRelationNotFound, err)
		}

		if isClientError(err) {
			return nil, err
		}

		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s",
		result.ID, result.Reference)

	return fromDomainBooking(result), nil
}

// isClientError отличает ошибки, которые должны дойти до клиента как есть
func isClientError(err error) bool {
	return errors.Is(err, domain.ErrCoachConflict) ||
		errors.Is(err, domain.ErrVenueConflict) ||
		errors.Is(err, ErrInvalidInput)
}
