package repository

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/wolfterm/wolfterm-backend/database"
	"github.com/wolfterm/wolfterm-backend/models"
	"github.com/wolfterm/wolfterm-backend/resolver"
)

const (
	defaultProductLimit = 50
	maxProductLimit     = 100
	defaultSearchLimit  = 20
	maxSearchLimit      = 50
)

var productUpdateFields = []string{
	"name", "category", "images", "description", "models", "price", "image",
}

type ProductsRepo struct {
	col database.Collection
}

func NewProductsRepo(col database.Collection) *ProductsRepo {
	return &ProductsRepo{col: col}
}

// List returns products, optionally filtered by category. When the store
// is unreachable the public sample set is served instead; this is the one
// collection whose listing falls back to non-empty content.
func (r *ProductsRepo) List(ctx context.Context, category string, limit int64) []models.Product {
	limit = clampLimit(limit, defaultProductLimit, maxProductLimit)
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	samples := models.SampleProducts()
	if int64(len(samples)) > limit {
		samples = samples[:limit]
	}
	return resolver.Resolve(ctx, samples, r.findTier(filter, database.FindOptions{Limit: limit}))
}

func (r *ProductsRepo) Get(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	if err := r.col.FindOne(ctx, bson.M{"id": id}, &product); err != nil {
		return models.Product{}, ErrNotFound
	}
	return product, nil
}

func (r *ProductsRepo) Create(ctx context.Context, payload models.ProductPayload) (models.Product, error) {
	product := models.Product{
		ID:          models.NewID(),
		Name:        payload.Name,
		Category:    payload.Category,
		Images:      payload.Images,
		Description: payload.Description,
		Models:      payload.Models,
		Price:       payload.Price,
		Image:       payload.Image,
		CreatedAt:   time.Now().UTC(),
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if product.Models == nil {
		product.Models = []models.ModelVariant{}
	}
	if err := r.col.InsertOne(ctx, product); err != nil {
		return models.Product{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return product, nil
}

// Update applies the caller-supplied fields only; omitted fields keep
// their stored values.
func (r *ProductsRepo) Update(ctx context.Context, id string, body map[string]any) (models.Product, error) {
	var existing models.Product
	if err := r.col.FindOne(ctx, bson.M{"id": id}, &existing); err != nil {
		return models.Product{}, lookupErr(err)
	}

	set := applyFields(body, productUpdateFields...)
	if len(set) > 0 {
		if _, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set}); err != nil {
			return models.Product{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	var updated models.Product
	if err := r.col.FindOne(ctx, bson.M{"id": id}, &updated); err != nil {
		return models.Product{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return updated, nil
}

// Search runs a case-insensitive substring match over name and
// description. Queries shorter than two characters short-circuit to an
// empty result without touching the store.
func (r *ProductsRepo) Search(ctx context.Context, q string, limit int64) []models.Product {
	if utf8.RuneCountInString(q) < 2 {
		return []models.Product{}
	}
	limit = clampLimit(limit, defaultSearchLimit, maxSearchLimit)
	filter := bson.M{"$or": bson.A{
		bson.M{"name": bson.M{"$regex": q, "$options": "i"}},
		bson.M{"description": bson.M{"$regex": q, "$options": "i"}},
	}}
	return resolver.Resolve(ctx, []models.Product{}, r.findTier(filter, database.FindOptions{Limit: limit}))
}

// Count and Recent feed the admin dashboard.
func (r *ProductsRepo) Count(ctx context.Context) (int64, error) {
	return r.col.Count(ctx, bson.M{})
}

func (r *ProductsRepo) Recent(ctx context.Context, n int64) ([]models.Product, error) {
	products := []models.Product{}
	opts := database.FindOptions{Sort: bson.D{{Key: "created_at", Value: -1}}, Limit: n}
	if err := r.col.Find(ctx, bson.M{}, opts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepo) findTier(filter bson.M, opts database.FindOptions) resolver.Tier[[]models.Product] {
	return func(ctx context.Context) ([]models.Product, error) {
		products := []models.Product{}
		if err := r.col.Find(ctx, filter, opts, &products); err != nil {
			return nil, err
		}
		return products, nil
	}
}

func clampLimit(limit, def, max int64) int64 {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
