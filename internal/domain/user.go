package domain

import "time"

// UserRole represents the role of a user
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleCoach UserRole = "COACH"
	RoleAdmin UserRole = "ADMIN"
)

// User represents a student, coach or admin.
// Тренер и ученик живут в одной таблице users и различаются полем role,
// coach_id и student_id бронирования ссылаются на одну и ту же сущность.
type User struct {
	ID       int64
	Username string
	Email    string
	Role     UserRole
	IsActive bool

	// Поля тренера (заполнены только при role=COACH)
	Bio            *string
	Specialization *string
	HourlyRate     *float64
	Rating         *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCoach returns true if the user is a coach
func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}

// IsAdmin returns true if the user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Principal аутентифицированная личность входящего запроса.
// Резолвится из токена коллаборатором auth, ядро токены не разбирает.
type Principal struct {
	UserID   int64
	Role     UserRole
	IsActive bool
}
