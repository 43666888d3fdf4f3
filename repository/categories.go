package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/wolfterm/wolfterm-backend/database"
	"github.com/wolfterm/wolfterm-backend/models"
	"github.com/wolfterm/wolfterm-backend/resolver"
)

var categoryUpdateFields = []string{"name", "nameEn", "nameIt", "nameTr", "icon", "image"}

type CategoriesRepo struct {
	col        database.Collection
	uploadsDir string
}

func NewCategoriesRepo(col database.Collection, uploadsDir string) *CategoriesRepo {
	return &CategoriesRepo{col: col, uploadsDir: uploadsDir}
}

// List resolves store, then the categories seed artifact, then the
// hardcoded sample pair.
func (r *CategoriesRepo) List(ctx context.Context) []models.Category {
	tier := func(ctx context.Context) ([]models.Category, error) {
		categories := []models.Category{}
		if err := r.col.Find(ctx, bson.M{}, database.FindOptions{Limit: 20}, &categories); err != nil {
			return nil, err
		}
		return categories, nil
	}
	return resolver.Resolve(ctx, models.SampleCategories(),
		tier,
		resolver.Seed[[]models.Category](r.uploadsDir, seedCategories),
	)
}

// Create stores the category under its caller-chosen id. A colliding
// id silently overwrites the existing document; callers own slug
// uniqueness. TODO: return 409 on collision once the admin UI can
// surface it.
func (r *CategoriesRepo) Create(ctx context.Context, category models.Category) (models.Category, error) {
	if err := r.col.UpsertOne(ctx, bson.M{"id": category.ID}, category); err != nil {
		return models.Category{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return category, nil
}

func (r *CategoriesRepo) Update(ctx context.Context, id string, body map[string]any) (models.Category, error) {
	var existing models.Category
	if err := r.col.FindOne(ctx, bson.M{"id": id}, &existing); err != nil {
		return models.Category{}, lookupErr(err)
	}

	set := applyFields(body, categoryUpdateFields...)
	if len(set) > 0 {
		if _, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set}); err != nil {
			return models.Category{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	var updated models.Category
	if err := r.col.FindOne(ctx, bson.M{"id": id}, &updated); err != nil {
		return models.Category{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return updated, nil
}

func (r *CategoriesRepo) Delete(ctx context.Context, id string) error {
	deleted, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoriesRepo) Count(ctx context.Context) (int64, error) {
	return r.col.Count(ctx, bson.M{})
}
