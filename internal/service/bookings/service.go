package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LessonService/internal/access"
	"github.com/m04kA/SMC-LessonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-LessonService/internal/service/bookings/models"
)

// Service сервис чтения и отмены бронирований.
// Создание и обновление живут в отдельных use cases, здесь операции
// над уже существующей бронью, каждая за проверкой доступа.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Ученик видит только свои бронирования, ADMIN — любые.
func (s *Service) GetByID(ctx context.Context, id int64, principal domain.Principal) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, principal.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	decision := access.CanAccess(principal, booking, access.ActionRead)
	if !decision.Allowed {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d, reason=%s",
			principal.UserID, id, decision.Reason)
		return nil, fmt.Errorf("%w: %s", ErrAccessDenied, decision.Reason)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования ученика с фильтрацией и пагинацией.
// Чужую историю может смотреть только ADMIN.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings of student=%d for user=%d", req.StudentID, req.Principal.UserID)

	if req.StudentID <= 0 {
		return nil, fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
	}
	if req.StudentID != req.Principal.UserID && req.Principal.Role != domain.RoleAdmin {
		s.logger.Warn("List: user=%d is not allowed to list bookings of student=%d",
			req.Principal.UserID, req.StudentID)
		return nil, fmt.Errorf("%w: %s", ErrAccessDenied, access.ReasonNotOwner)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for student=%d: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListByStudent(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for student=%d: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for student=%d", len(bookings), req.StudentID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование (терминальный статус).
// Повторная отмена — явная ошибка ErrAlreadyCancelled, не no-op:
// клиент должен узнать, что его запрос уже неактуален.
func (s *Service) Cancel(ctx context.Context, id int64, principal domain.Principal) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", id, principal.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	decision := access.CanAccess(principal, booking, access.ActionCancel)
	if !decision.Allowed {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d, reason=%s",
			principal.UserID, id, decision.Reason)
		return fmt.Errorf("%w: %s", ErrAccessDenied, decision.Reason)
	}

	if booking.IsCancelled() {
		s.logger.Warn("Cancel: booking id=%d is already cancelled", id)
		return ErrAlreadyCancelled
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}
