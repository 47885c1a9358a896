package services

import "errors"

// Общая таксономия ошибок. Хендлеры мапят их на HTTP-статусы.
var (
	// ErrPermissionDenied — у актора нет роли для операции (агент создаёт лида).
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound — ресурса нет либо он вне зоны видимости актора;
	// снаружи эти случаи неразличимы.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken — email уже занят другим пользователем.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidAgent — выбранный агент не входит в организацию актора.
	ErrInvalidAgent = errors.New("agent not available for assignment")

	// ErrInvalidCategory — категория не входит в организацию лида.
	ErrInvalidCategory = errors.New("category not available")

	// ErrInvalidCredentials — логин/пароль не подошли.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
