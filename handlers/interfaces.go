package handlers

import (
	"context"

	"github.com/wolfterm/wolfterm-backend/models"
)

// Provider interfaces consumed by the handlers. The repository package
// satisfies all of them; tests substitute mocks.

type ProductProvider interface {
	List(ctx context.Context, category string, limit int64) []models.Product
	Get(ctx context.Context, id string) (models.Product, error)
	Create(ctx context.Context, payload models.ProductPayload) (models.Product, error)
	Update(ctx context.Context, id string, body map[string]any) (models.Product, error)
	Search(ctx context.Context, q string, limit int64) []models.Product
}

type ReviewProvider interface {
	List(ctx context.Context, limit int64) []models.Review
	Create(ctx context.Context, payload models.ReviewPayload) (models.Review, error)
	Update(ctx context.Context, id string, body map[string]any) (models.Review, error)
	Delete(ctx context.Context, id string) error
}

type CategoryProvider interface {
	List(ctx context.Context) []models.Category
	Create(ctx context.Context, category models.Category) (models.Category, error)
	Update(ctx context.Context, id string, body map[string]any) (models.Category, error)
	Delete(ctx context.Context, id string) error
}

type HeroSlideProvider interface {
	List(ctx context.Context) []models.HeroSlide
	ListAdmin(ctx context.Context) []models.HeroSlide
	Create(ctx context.Context, payload models.HeroSlidePayload) (models.HeroSlide, error)
	Update(ctx context.Context, id string, body map[string]any) (models.HeroSlide, error)
	Delete(ctx context.Context, id string) error
}

type CatalogProvider interface {
	List(ctx context.Context) []models.Catalog
	ListAdmin(ctx context.Context) []models.Catalog
	Get(ctx context.Context, id string) (models.Catalog, error)
	Create(ctx context.Context, payload models.CatalogPayload) (models.Catalog, error)
	Update(ctx context.Context, id string, payload models.CatalogPayload) (models.Catalog, error)
	Delete(ctx context.Context, id string) error
}

type SettingsProvider interface {
	Get(ctx context.Context) models.SiteSettings
	GetAdmin(ctx context.Context) models.SiteSettings
	Update(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error)
}

type ContactProvider interface {
	Create(ctx context.Context, payload models.ContactPayload) (models.ContactSubmission, error)
}

type DashboardProvider interface {
	Stats(ctx context.Context) models.DashboardStats
}

type ImageSaver interface {
	Save(data []byte, originalName string) (string, error)
}
