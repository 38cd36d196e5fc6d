package repository

import "errors"

// Ошибки уровня хранилища. Сервисы сравнивают их через errors.Is
// и переводят в доменные исходы, не показывая клиенту текст ошибок БД.
var (
	// ErrUserAlreadyExists возвращается при нарушении уникального индекса
	// по username, в том числе когда вставку выиграл конкурентный запрос.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound возвращается, когда пользователь с таким username отсутствует.
	ErrUserNotFound = errors.New("user not found")
	// ErrProductNotFound возвращается, когда товар с таким id отсутствует.
	ErrProductNotFound = errors.New("product not found")
)
