package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-LessonService/pkg/types"
)

// Candidate кандидат на бронирование для проверки конфликтов
type Candidate struct {
	CoachID     int64
	VenueID     int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString

	// ExcludeBookingID исключает собственную строку бронирования
	// при проверке конфликтов на обновлении (0 = ничего не исключать)
	ExcludeBookingID int64
}

// FindConflict проверяет кандидата против существующих бронирований.
// Интервалы полуоткрытые: [s1,e1) и [s2,e2) пересекаются <=> s1 < e2 && e1 > s2,
// поэтому смежные занятия (14:00-15:00 и 15:00-16:00) не конфликтуют.
//
// Сначала проверяется занятость тренера, затем площадки — вызывающему
// важно знать, что именно занято, чтобы предложить замену.
// Отменённые бронирования слот не блокируют. Обход стабилен (по id),
// возвращается первый найденный конфликт.
func FindConflict(c Candidate, existing []*Booking) error {
	ordered := make([]*Booking, len(existing))
	copy(ordered, existing)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for _, b := range ordered {
		if b.ID == c.ExcludeBookingID || !b.IsActive() || b.CoachID != c.CoachID {
			continue
		}
		if intervalsOverlap(c.StartTime, c.EndTime, b.StartTime, b.EndTime) {
			return fmt.Errorf("%w: coach %d is booked %s-%s", ErrCoachConflict, b.CoachID, b.StartTime, b.EndTime)
		}
	}

	for _, b := range ordered {
		if b.ID == c.ExcludeBookingID || !b.IsActive() || b.VenueID != c.VenueID {
			continue
		}
		if intervalsOverlap(c.StartTime, c.EndTime, b.StartTime, b.EndTime) {
			return fmt.Errorf("%w: venue %d is booked %s-%s", ErrVenueConflict, b.VenueID, b.StartTime, b.EndTime)
		}
	}

	return nil
}

// intervalsOverlap проверяет пересечение двух полуоткрытых интервалов
func intervalsOverlap(s1, e1, s2, e2 types.TimeString) bool {
	return s1.IsBefore(e2) && e1.IsAfter(s2)
}
