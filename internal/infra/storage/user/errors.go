package user

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("storage/user: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("storage/user: failed to execute query")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("storage/user: user not found")
)
