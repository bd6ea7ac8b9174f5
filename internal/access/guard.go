package access

import "github.com/m04kA/SMC-LessonService/internal/domain"

// Action действие над бронированием
type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionCancel Action = "cancel"
)

// Reason код отказа в доступе, для логов и метрик
type Reason string

const (
	ReasonNotOwner         Reason = "NOT_OWNER"
	ReasonInsufficientRole Reason = "INSUFFICIENT_ROLE"
)

// Decision результат проверки доступа
type Decision struct {
	Allowed bool
	Reason  Reason // Пустой при Allowed=true
}

// CanAccess решает, может ли principal выполнить action над бронированием.
// Чистая функция без ошибок: транспортный ответ формирует вызывающий.
//
// Правила: владелец (ученик) может всё со своей бронью; ADMIN может всё.
// Тренер брони получает отказ INSUFFICIENT_ROLE, прочие — NOT_OWNER.
func CanAccess(p domain.Principal, b *domain.Booking, action Action) Decision {
	_ = action // Набор правил одинаков для read/update/cancel

	if p.UserID == b.StudentID {
		return Decision{Allowed: true}
	}
	if p.Role == domain.RoleAdmin {
		return Decision{Allowed: true}
	}
	if p.Role == domain.RoleCoach && p.UserID == b.CoachID {
		return Decision{Allowed: false, Reason: ReasonInsufficientRole}
	}
	return Decision{Allowed: false, Reason: ReasonNotOwner}
}
