package services

import "errors"

// Доменные исходы аутентификации. Это ожидаемые ветки нормальной работы,
// а не инфраструктурные сбои: обработчики сравнивают их через errors.Is
// и отдают клиенту фиксированные сообщения.
var (
	// ErrUsernameTaken — имя пользователя уже занято, последовательно
	// или в результате проигранной гонки при вставке.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserNotFound — пользователь с таким именем не зарегистрирован.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials — пароль не совпадает с сохранённым хэшем.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
