package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied возвращается, когда principal не вправе менять бронирование
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrNotUpdatable возвращается при попытке изменить отменённое бронирование
	ErrNotUpdatable = errors.New("update_booking: booking is not updatable")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("update_booking: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrRelationNotFound возвращается, когда новая ссылка патча не существует
	ErrRelationNotFound = errors.New("update_booking: referenced entity not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
