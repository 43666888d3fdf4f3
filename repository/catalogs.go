package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/wolfterm/wolfterm-backend/database"
	"github.com/wolfterm/wolfterm-backend/models"
	"github.com/wolfterm/wolfterm-backend/resolver"
)

var catalogSort = bson.D{{Key: "order", Value: 1}}

type CatalogsRepo struct {
	col database.Collection
}

func NewCatalogsRepo(col database.Collection) *CatalogsRepo {
	return &CatalogsRepo{col: col}
}

// List serves the one-entry sample catalog when the store is down.
func (r *CatalogsRepo) List(ctx context.Context) []models.Catalog {
	return resolver.Resolve(ctx, models.SampleCatalogs(), r.findTier())
}

// ListAdmin degrades to empty, never to samples.
func (r *CatalogsRepo) ListAdmin(ctx context.Context) []models.Catalog {
	return resolver.Resolve(ctx, []models.Catalog{}, r.findTier())
}

func (r *CatalogsRepo) Get(ctx context.Context, id string) (models.Catalog, error) {
	var catalog models.Catalog
	if err := r.col.FindOne(ctx, bson.M{"id": id}, &catalog); err != nil {
		return models.Catalog{}, ErrNotFound
	}
	return catalog, nil
}

func (r *CatalogsRepo) Create(ctx context.Context, payload models.CatalogPayload) (models.Catalog, error) {
	catalog := models.Catalog{
		ID:          models.NewID(),
		Name:        payload.Name,
		Description: payload.Description,
		FileURL:     payload.FileURL,
		FileSize:    payload.FileSize,
		Thumbnail:   payload.Thumbnail,
		Order:       payload.Order,
		CreatedAt:   time.Now().UTC(),
	}
	if err := r.col.InsertOne(ctx, catalog); err != nil {
		return models.Catalog{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return catalog, nil
}

// Update is a full replace with the id pinned from the path.
func (r *CatalogsRepo) Update(ctx context.Context, id string, payload models.CatalogPayload) (models.Catalog, error) {
	var existing models.Catalog
	if err := r.col.FindOne(ctx, bson.M{"id": id}, &existing); err != nil {
		return models.Catalog{}, lookupErr(err)
	}

	catalog := models.Catalog{
		ID:          id,
		Name:        payload.Name,
		Description: payload.Description,
		FileURL:     payload.FileURL,
		FileSize:    payload.FileSize,
		Thumbnail:   payload.Thumbnail,
		Order:       payload.Order,
		CreatedAt:   existing.CreatedAt,
	}
	matched, err := r.col.ReplaceOne(ctx, bson.M{"id": id}, catalog)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if matched == 0 {
		return models.Catalog{}, ErrNotFound
	}
	return catalog, nil
}

func (r *CatalogsRepo) Delete(ctx context.Context, id string) error {
	deleted, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CatalogsRepo) findTier() resolver.Tier[[]models.Catalog] {
	return func(ctx context.Context) ([]models.Catalog, error) {
		catalogs := []models.Catalog{}
		opts := database.FindOptions{Sort: catalogSort, Limit: 100}
		if err := r.col.Find(ctx, bson.M{}, opts, &catalogs); err != nil {
			return nil, err
		}
		return catalogs, nil
	}
}
