package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	"github.com/m04kA/SMC-LessonService/internal/domain"
	createBooking "github.com/m04kA/SMC-LessonService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAccessDenied       = "нет доступа к этому ресурсу"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgPastDate           = "дата занятия уже прошла"
	msgTooFarAhead        = "дата занятия слишком далеко в будущем"
	msgInvertedInterval   = "время начала должно быть раньше времени окончания"
	msgTooShort           = "занятие короче минимальной длительности"
	msgTooLong            = "занятие длиннее максимальной длительности"
	msgInvalidReference   = "некорректный идентификатор площадки, тренера или типа занятия"
	msgNegativePrice      = "компоненты цены не могут быть отрицательными"
	msgPriceMismatch      = "итоговая цена не сходится с суммой компонент"
	msgInvalidInput       = "некорректные данные бронирования"
	msgCoachConflict      = "тренер уже занят в выбранное время"
	msgVenueConflict      = "площадка уже занята в выбранное время"
	msgDuplicateReference = "не удалось сгенерировать номер брони, повторите запрос"
	msgRelationNotFound   = "площадка, тренер или тип занятия не найдены"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(principal.UserID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, domain.ErrTooFarAhead):
			handlers.RespondBadRequest(w, msgTooFarAhead)

		case errors.Is(err, domain.ErrInvertedInterval):
			handlers.RespondBadRequest(w, msgInvertedInterval)

		case errors.Is(err, domain.ErrTooShort):
			handlers.RespondBadRequest(w, msgTooShort)

		case errors.Is(err, domain.ErrTooLong):
			handlers.RespondBadRequest(w, msgTooLong)

		case errors.Is(err, domain.ErrInvalidReference), errors.Is(err, domain.ErrInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidReference)

		case errors.Is(err, domain.ErrNegativePrice):
			handlers.RespondBadRequest(w, msgNegativePrice)

		case errors.Is(err, domain.ErrPriceMismatch):
			handlers.RespondBadRequest(w, msgPriceMismatch)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, domain.ErrCoachConflict):
			h.logger.Warn("POST /bookings - Coach conflict: student=%d, coach=%d", principal.UserID, req.CoachID)
			handlers.RespondConflict(w, msgCoachConflict)

		case errors.Is(err, domain.ErrVenueConflict):
			h.logger.Warn("POST /bookings - Venue conflict: student=%d, venue=%d", principal.UserID, req.VenueID)
			handlers.RespondConflict(w, msgVenueConflict)

		case errors.Is(err, createBooking.ErrDuplicateReference):
			h.logger.Warn("POST /bookings - Reference collisions exhausted: student=%d", principal.UserID)
			handlers.RespondConflict(w, msgDuplicateReference)

		case errors.Is(err, createBooking.ErrRelationNotFound):
			handlers.RespondNotFound(w, msgRelationNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: student=%d, error=%v",
				principal.UserID, err)
			handlers.RespondInternalError(w, middleware.GetRequestID(r.Context()))
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, reference=%s, student=%d",
		result.ID, result.Reference, principal.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
