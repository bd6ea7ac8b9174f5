package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	"github.com/m04kA/SMC-LessonService/internal/domain"
	updateBooking "github.com/m04kA/SMC-LessonService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "нет доступа к этому бронированию"
	msgNotUpdatable       = "отменённое бронирование нельзя изменить"
	msgInvalidTransition  = "недопустимый переход статуса"
	msgValidationFailed   = "некорректные дата, время или цена"
	msgCoachConflict      = "тренер уже занят в выбранное время"
	msgVenueConflict      = "площадка уже занята в выбранное время"
	msgRelationNotFound   = "ссылка на несуществующую сущность"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, principal)
	if err != nil {
		h.logger.Warn("PATCH /bookings/%d - Failed to parse request: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/%d - Access denied for user=%d", bookingID, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, updateBooking.ErrNotUpdatable):
			handlers.RespondConflict(w, msgNotUpdatable)

		case errors.Is(err, updateBooking.ErrInvalidTransition):
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, domain.ErrPastDate),
			errors.Is(err, domain.ErrTooFarAhead),
			errors.Is(err, domain.ErrInvertedInterval),
			errors.Is(err, domain.ErrTooShort),
			errors.Is(err, domain.ErrTooLong),
			errors.Is(err, domain.ErrInvalidTime),
			errors.Is(err, domain.ErrNegativePrice),
			errors.Is(err, domain.ErrPriceMismatch),
			errors.Is(err, updateBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, domain.ErrCoachConflict):
			handlers.RespondConflict(w, msgCoachConflict)

		case errors.Is(err, domain.ErrVenueConflict):
			handlers.RespondConflict(w, msgVenueConflict)

		case errors.Is(err, updateBooking.ErrRelationNotFound):
			handlers.RespondNotFound(w, msgRelationNotFound)

		default:
			h.logger.Error("PATCH /bookings/%d - Failed to update booking: %v", bookingID, err)
			handlers.RespondInternalError(w, middleware.GetRequestID(r.Context()))
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d - Booking updated by user=%d", bookingID, principal.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
