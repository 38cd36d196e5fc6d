// Package models содержит доменные структуры каталога товаров,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// Product представляет товар каталога, используемый
// в бизнес-логике и хранилище.
type Product struct {
	ID    int     // Идентификатор товара
	Title string  // Название товара
	Price float64 // Цена товара
	Image string  // Ссылка на изображение товара
}

// DummyProduct используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Product.
type DummyProduct struct {
	Title string  `json:"title" validate:"required"`      // Название товара
	Price float64 `json:"price" validate:"required,gt=0"` // Цена (>0)
	Image string  `json:"image" validate:"required"`      // Ссылка на изображение
}
