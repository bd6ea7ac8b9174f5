package domain

// Default booking rule values
const (
	DefaultMaxAdvanceDays     = 90  // Бронировать можно не дальше, чем за 90 дней
	DefaultMinDurationMinutes = 30  // Минимальная длительность занятия
	DefaultMaxDurationMinutes = 180 // Максимальная длительность занятия (3 часа)
	DefaultPriceTolerance     = 0.01
	DefaultReferenceAttempts  = 3 // Повторы генерации номера брони при коллизии
)

// Pagination constants
const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, блокирующих слот.
// Используется конфликт-детектором и выборками из хранилища.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// Rules конфигурируемые границы валидации бронирования.
// Загружаются из конфига при старте, а не зашиты в логику.
type Rules struct {
	MaxAdvanceDays     int
	MinDurationMinutes int
	MaxDurationMinutes int
	PriceTolerance     float64
}

// DefaultRules возвращает границы по умолчанию
func DefaultRules() Rules {
	return Rules{
		MaxAdvanceDays:     DefaultMaxAdvanceDays,
		MinDurationMinutes: DefaultMinDurationMinutes,
		MaxDurationMinutes: DefaultMaxDurationMinutes,
		PriceTolerance:     DefaultPriceTolerance,
	}
}
