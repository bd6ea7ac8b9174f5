package auth

import "errors"

var (
	// ErrUnauthenticated возвращается при отсутствующем, некорректном
	// или просроченном токене, а также если пользователь не найден
	ErrUnauthenticated = errors.New("auth: unauthenticated")

	// ErrInactiveAccount возвращается для деактивированного аккаунта
	ErrInactiveAccount = errors.New("auth: account is inactive")

	// ErrInternal возвращается при внутренних ошибках резолвера
	ErrInternal = errors.New("auth: internal error")
)
