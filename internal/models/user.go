// Package models содержит доменную модель пользователя сервиса,
// включающую данные учётной записи и хэш пароля. Структуры используются
// в бизнес-логике и при работе с хранилищем.
package models

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string // Уникальный идентификатор пользователя
	Email        string // Электронная почта для уведомлений
	Username     string // Имя пользователя (уникальное)
	PasswordHash string // Хэш пароля пользователя
}

// WelcomeInfo — данные приветственного письма, публикуемые в очередь
// после успешной регистрации пользователя.
type WelcomeInfo struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}
