package booking

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("storage/booking: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса.
	// Ошибка драйвера заворачивается через %w: txmanager распознаёт
	// по цепочке сбои сериализации (40001/40P01) и повторяет транзакцию
	ErrExecQuery = errors.New("storage/booking: failed to execute query")

	// ErrScanRow возвращается при ошибке чтения строки результата
	ErrScanRow = errors.New("storage/booking: failed to scan row")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("storage/booking: booking not found")

	// ErrDuplicateReference возвращается при коллизии номера брони
	// (уникальное ограничение на booking_reference)
	ErrDuplicateReference = errors.New("storage/booking: booking reference already exists")

	// ErrRelationNotFound возвращается при нарушении внешнего ключа
	// (площадка, тренер, ученик или тип занятия не существуют)
	ErrRelationNotFound = errors.New("storage/booking: referenced entity not found")
)
