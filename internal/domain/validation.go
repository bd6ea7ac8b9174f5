package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-LessonService/pkg/types"
)

// ValidateTime проверяет дату и интервал времени кандидата на бронирование.
// Чистая функция: текущее время передаётся явно, I/O не выполняется.
func ValidateTime(date time.Time, start, end types.TimeString, now time.Time, rules Rules) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidTime, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidTime, err)
	}

	today := truncateToDay(now)
	bookingDay := truncateToDay(date)

	if bookingDay.Before(today) {
		return ErrPastDate
	}

	maxDay := today.AddDate(0, 0, rules.MaxAdvanceDays)
	if bookingDay.After(maxDay) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrTooFarAhead, rules.MaxAdvanceDays)
	}

	duration, err := start.MinutesUntil(end)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	if duration <= 0 {
		return ErrInvertedInterval
	}
	if duration < rules.MinDurationMinutes {
		return fmt.Errorf("%w: lesson must be at least %d minutes", ErrTooShort, rules.MinDurationMinutes)
	}
	if duration > rules.MaxDurationMinutes {
		return fmt.Errorf("%w: lesson must be at most %d minutes", ErrTooLong, rules.MaxDurationMinutes)
	}

	return nil
}

// ValidateReferences проверяет идентификаторы связанных сущностей.
// Существование строк проверяет хранилище, это дешёвый предфильтр.
func ValidateReferences(venueID, coachID, lessonTypeID int64) error {
	if venueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidReference)
	}
	if coachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidReference)
	}
	if lessonTypeID <= 0 {
		return fmt.Errorf("%w: lessonTypeID must be positive", ErrInvalidReference)
	}
	return nil
}

// ValidatePrice проверяет компоненты цены и сходимость итога.
// Допуск tolerance покрывает дробное округление.
func ValidatePrice(lessonPrice, facilityFee, serviceFee, totalPrice, tolerance float64) error {
	if lessonPrice < 0 {
		return fmt.Errorf("%w: lessonPrice", ErrNegativePrice)
	}
	if facilityFee < 0 {
		return fmt.Errorf("%w: facilityFee", ErrNegativePrice)
	}
	if serviceFee < 0 {
		return fmt.Errorf("%w: serviceFee", ErrNegativePrice)
	}
	if totalPrice < 0 {
		return fmt.Errorf("%w: totalPrice", ErrNegativePrice)
	}

	expected := lessonPrice + facilityFee + serviceFee
	if math.Abs(totalPrice-expected) > tolerance {
		return fmt.Errorf("%w: expected %.2f, got %.2f", ErrPriceMismatch, expected, totalPrice)
	}

	return nil
}

// truncateToDay обнуляет время, чтобы сравнивать только даты
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
