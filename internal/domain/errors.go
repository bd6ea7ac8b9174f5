package domain

import "errors"

// Ошибки валидации входных данных (исправляются клиентом, не ретраятся)
var (
	// ErrPastDate возвращается, когда дата бронирования уже прошла
	ErrPastDate = errors.New("domain: booking date is in the past")

	// ErrTooFarAhead возвращается, когда дата дальше разрешённого горизонта
	ErrTooFarAhead = errors.New("domain: booking date is too far ahead")

	// ErrInvertedInterval возвращается, когда start >= end
	ErrInvertedInterval = errors.New("domain: start time must be before end time")

	// ErrTooShort возвращается, когда занятие короче минимальной длительности
	ErrTooShort = errors.New("domain: lesson is shorter than the minimum duration")

	// ErrTooLong возвращается, когда занятие длиннее максимальной длительности
	ErrTooLong = errors.New("domain: lesson is longer than the maximum duration")

	// ErrInvalidReference возвращается при некорректном идентификаторе сущности
	ErrInvalidReference = errors.New("domain: invalid entity reference")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("domain: invalid time value")

	// ErrNegativePrice возвращается при отрицательной компоненте цены
	ErrNegativePrice = errors.New("domain: price component is negative")

	// ErrPriceMismatch возвращается, когда total не сходится с суммой компонент
	ErrPriceMismatch = errors.New("domain: total price does not match the sum of components")
)

// Ошибки конфликтов расписания (клиенту нужно выбрать другой слот)
var (
	// ErrCoachConflict возвращается, когда у тренера уже есть занятие в этом интервале
	ErrCoachConflict = errors.New("domain: coach is already booked for this interval")

	// ErrVenueConflict возвращается, когда площадка уже занята в этом интервале
	ErrVenueConflict = errors.New("domain: venue is already booked for this interval")
)
