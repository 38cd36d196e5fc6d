// Package services содержит бизнес-логику для управления каталогом товаров и кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// ProductRepository определяет методы для работы с товарами в хранилище.
type ProductRepository interface {
	// CreateProduct добавляет новый товар и возвращает его ID.
	CreateProduct(ctx context.Context, product models.Product) (int, error)
	// ReadProduct возвращает товар по ID.
	ReadProduct(ctx context.Context, id int) (*models.Product, error)
	// ListProducts возвращает список товаров с пагинацией.
	ListProducts(ctx context.Context, limit, offset int) ([]*models.Product, error)
	// UpdateProduct обновляет данные товара и возвращает количество изменённых строк.
	UpdateProduct(ctx context.Context, product models.Product, id int) (int, error)
	// RemoveProduct удаляет товар по ID и возвращает количество удалённых строк.
	RemoveProduct(ctx context.Context, id int) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// ProductService реализует бизнес-логику работы с каталогом, включая кеширование.
type ProductService struct {
	repo  ProductRepository
	cache Cache
	log   *slog.Logger
}

// NewProductService создает новый экземпляр ProductService.
func NewProductService(repo ProductRepository, cache Cache, log *slog.Logger) *ProductService {
	return &ProductService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новый товар, кеширует его и возвращает ID.
func (s *ProductService) Create(ctx context.Context, req models.DummyProduct) (int, error) {
	product := models.Product{
		Title: req.Title,
		Price: req.Price,
		Image: req.Image,
	}

	id, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return 0, err
	}
	product.ID = id
	s.log.Info("created new product", slog.Int("id", id))

	cacheKey := fmt.Sprintf("product:%d", id)
	if err := s.cache.Set(ctx, cacheKey, product, time.Hour); err != nil {
		s.log.Warn("failed to cache product", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return id, nil
}

// Read возвращает товар по ID, используя кеш или репозиторий.
func (s *ProductService) Read(ctx context.Context, id int) (*models.Product, error) {
	var result *models.Product
	cacheKey := fmt.Sprintf("product:%d", id)
	found, err := s.cache.Get(ctx, cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if result != nil {
		if err := s.cache.Set(ctx, cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}
	return result, nil
}

// List возвращает список товаров с пагинацией.
func (s *ProductService) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	return s.repo.ListProducts(ctx, limit, offset)
}

// Update обновляет товар и обновляет кеш, возвращает количество изменённых строк.
func (s *ProductService) Update(ctx context.Context, req models.DummyProduct, id int) (int, error) {
	product := models.Product{
		ID:    id,
		Title: req.Title,
		Price: req.Price,
		Image: req.Image,
	}
	res, err := s.repo.UpdateProduct(ctx, product, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated product in storage", slog.Int("id", id))

	cacheKey := fmt.Sprintf("product:%d", id)
	if res == 0 {
		return res, nil
	}
	if err := s.cache.Set(ctx, cacheKey, product, time.Hour); err != nil {
		s.log.Warn("failed to cache product", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return res, nil
}

// Remove удаляет товар по ID и инвалидирует кеш.
func (s *ProductService) Remove(ctx context.Context, id int) (int, error) {
	cacheKey := fmt.Sprintf("product:%d", id)
	if err := s.cache.Invalidate(ctx, cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.RemoveProduct(ctx, id)
	if err != nil {
		return 0, err
	}

	return count, nil
}
