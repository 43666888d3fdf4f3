package repository

import (
	"context"

	"github.com/wolfterm/wolfterm-backend/models"
)

const recentCount = 5

// DashboardRepo aggregates counts and recent records for the admin
// overview. Any failure degrades the whole response to zeros rather than
// erroring, so the panel stays up during an outage.
type DashboardRepo struct {
	products   *ProductsRepo
	reviews    *ReviewsRepo
	categories *CategoriesRepo
	heroSlides *HeroSlidesRepo
}

func NewDashboardRepo(p *ProductsRepo, r *ReviewsRepo, c *CategoriesRepo, h *HeroSlidesRepo) *DashboardRepo {
	return &DashboardRepo{products: p, reviews: r, categories: c, heroSlides: h}
}

func (d *DashboardRepo) Stats(ctx context.Context) models.DashboardStats {
	zero := models.DashboardStats{
		RecentProducts: []models.Product{},
		RecentReviews:  []models.Review{},
	}

	totalProducts, err := d.products.Count(ctx)
	if err != nil {
		return zero
	}
	totalReviews, err := d.reviews.Count(ctx)
	if err != nil {
		return zero
	}
	totalCategories, err := d.categories.Count(ctx)
	if err != nil {
		return zero
	}
	totalHeroSlides, err := d.heroSlides.Count(ctx)
	if err != nil {
		return zero
	}
	recentProducts, err := d.products.Recent(ctx, recentCount)
	if err != nil {
		return zero
	}
	recentReviews, err := d.reviews.Recent(ctx, recentCount)
	if err != nil {
		return zero
	}

	return models.DashboardStats{
		TotalProducts:   totalProducts,
		TotalReviews:    totalReviews,
		TotalCategories: totalCategories,
		TotalHeroSlides: totalHeroSlides,
		RecentProducts:  recentProducts,
		RecentReviews:   recentReviews,
	}
}
