package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных,
	// не покрытых доменными ошибками валидации
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrRelationNotFound возвращается, когда площадка, тренер,
	// ученик или тип занятия не существуют
	ErrRelationNotFound = errors.New("create_booking: referenced entity not found")

	// ErrDuplicateReference возвращается, когда номер брони не удалось
	// сгенерировать уникальным за отведённое число попыток
	ErrDuplicateReference = errors.New("create_booking: failed to generate unique booking reference")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
