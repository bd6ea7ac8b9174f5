package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LessonService/internal/access"
	"github.com/m04kA/SMC-LessonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/booking"
)

// UseCase use case частичного обновления бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	rules        domain.Rules
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	rules domain.Rules,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		rules:        rules,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute применяет патч к бронированию.
// Полная валидация и проверка конфликтов выполняются только если патч
// трогает расписание или цену; конфликт-проверка исключает собственную
// строку бронирования и идёт в той же сериализуемой транзакции, что и запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d, user=%d", req.BookingID, req.Principal.UserID)

	existing, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	decision := access.CanAccess(req.Principal, existing, access.ActionUpdate)
	if !decision.Allowed {
		uc.logger.Warn("UpdateBooking: access denied for user=%d to booking id=%d, reason=%s",
			req.Principal.UserID, req.BookingID, decision.Reason)
		return nil, fmt.Errorf("%w: %s", ErrAccessDenied, decision.Reason)
	}

	if !existing.CanBeUpdated() {
		uc.logger.Warn("UpdateBooking: booking id=%d is not updatable, status=%s",
			req.BookingID, existing.Status)
		return nil, ErrNotUpdatable
	}

	if req.Patch.Status != nil && !domain.CanTransition(existing.Status, *req.Patch.Status) {
		uc.logger.Warn("UpdateBooking: invalid transition %s -> %s for booking id=%d",
			existing.Status, *req.Patch.Status, req.BookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, existing.Status, *req.Patch.Status)
	}

	updated := req.Patch.applyTo(*existing)

	// Расписание и цена не тронуты — конфликтов быть не может,
	// пишем без повторной валидации
	if !req.Patch.touchesSchedule() && !req.Patch.touchesPrice() {
		if err := uc.bookingRepo.Update(ctx, &updated); err != nil {
			return nil, uc.mapUpdateError(req.BookingID, err)
		}
		uc.logger.Info("UpdateBooking: successfully updated booking id=%d", req.BookingID)
		return fromDomainBooking(&updated), nil
	}

	now := uc.timeProvider.Now()

	if err := domain.ValidateTime(updated.BookingDate, updated.StartTime, updated.EndTime, now, uc.rules); err != nil {
		uc.logger.Warn("UpdateBooking: time validation failed for booking id=%d: %v", req.BookingID, err)
		return nil, err
	}
	if err := domain.ValidatePrice(updated.LessonPrice, updated.FacilityFee, updated.ServiceFee, updated.TotalPrice, uc.rules.PriceTolerance); err != nil {
		uc.logger.Warn("UpdateBooking: price validation failed for booking id=%d: %v", req.BookingID, err)
		return nil, err
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		others, err := uc.bookingRepo.ListForDate(txCtx, updated.CoachID, updated.VenueID, updated.BookingDate)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
		}

		candidate := domain.Candidate{
			CoachID:          updated.CoachID,
			VenueID:          updated.VenueID,
			BookingDate:      updated.BookingDate,
			StartTime:        updated.StartTime,
			EndTime:          updated.EndTime,
			ExcludeBookingID: updated.ID,
		}
		if err := domain.FindConflict(candidate, others); err != nil {
			uc.logger.Warn("UpdateBooking: conflict detected for booking id=%d: %v", req.BookingID, err)
			return err
		}

		return uc.bookingRepo.Update(txCtx, &updated)
	})

	if err != nil {
		if errors.Is(err, domain.ErrCoachConflict) || errors.Is(err, domain.ErrVenueConflict) {
			return nil, err
		}
		return nil, uc.mapUpdateError(req.BookingID, err)
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", req.BookingID)
	return fromDomainBooking(&updated), nil
}

// mapUpdateError переводит ошибки репозитория в ошибки usecase
func (uc *UseCase) mapUpdateError(bookingID int64, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		uc.logger.Warn("UpdateBooking: booking id=%d disappeared during update", bookingID)
		return ErrBookingNotFound
	case errors.Is(err, bookingRepo.ErrRelationNotFound):
		uc.logger.Warn("UpdateBooking: relation not found for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: %v", ErrRelationNotFound, err)
	case errors.Is(err, ErrInternal):
		return err
	default:
		uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
