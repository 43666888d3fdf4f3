package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wolfterm/wolfterm-backend/models"
	"github.com/wolfterm/wolfterm-backend/repository"
)

// Context timeout for database operations
const dbTimeout = 5 * time.Second

// PublicHandlers serves the unauthenticated browse endpoints.
type PublicHandlers struct {
	Products   ProductProvider
	Reviews    ReviewProvider
	Categories CategoryProvider
	HeroSlides HeroSlideProvider
	Catalogs   CatalogProvider
	Settings   SettingsProvider
	Contact    ContactProvider
}

// Root godoc
// @Summary Service identity
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *PublicHandlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "WolfTerm API", "version": "1.0.0"})
}

// ListProducts godoc
// @Summary List products, optionally filtered by category
// @Produce json
// @Param category query string false "Category id filter"
// @Param limit query int false "Max results (<=100)"
// @Success 200 {array} models.Product
// @Router /products [get]
func (h *PublicHandlers) ListProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	category := c.Query("category")
	limit := queryLimit(c, 50)
	c.JSON(http.StatusOK, h.Products.List(ctx, category, limit))
}

// GetProduct godoc
// @Summary Get one product by id
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *PublicHandlers) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	product, err := h.Products.Get(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Create a product
// @Accept json
// @Produce json
// @Param product body models.ProductPayload true "Product data"
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /products [post]
func (h *PublicHandlers) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	var payload models.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	product, err := h.Products.Create(ctx, payload)
	if err != nil {
		writeRepoError(c, err, "Product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// ListReviews godoc
// @Summary List reviews, newest first
// @Produce json
// @Param limit query int false "Max results (<=100)"
// @Success 200 {array} models.Review
// @Router /reviews [get]
func (h *PublicHandlers) ListReviews(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.Reviews.List(ctx, queryLimit(c, 20)))
}

// CreateReview godoc
// @Summary Submit a review
// @Accept json
// @Produce json
// @Param review body models.ReviewPayload true "Review data, rating 1-5"
// @Success 201 {object} models.Review
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /reviews [post]
func (h *PublicHandlers) CreateReview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	// Rating bounds are checked by the binding before any store access.
	var payload models.ReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	review, err := h.Reviews.Create(ctx, payload)
	if err != nil {
		writeRepoError(c, err, "Review")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListCategories godoc
// @Summary List categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func (h *PublicHandlers) ListCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.Categories.List(ctx))
}

// ListCatalogs godoc
// @Summary List downloadable catalogs
// @Produce json
// @Success 200 {array} models.Catalog
// @Router /catalogs [get]
func (h *PublicHandlers) ListCatalogs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.Catalogs.List(ctx))
}

// GetCatalog godoc
// @Summary Get one catalog by id
// @Produce json
// @Param id path string true "Catalog id"
// @Success 200 {object} models.Catalog
// @Failure 404 {object} map[string]string
// @Router /catalogs/{id} [get]
func (h *PublicHandlers) GetCatalog(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	catalog, err := h.Catalogs.Get(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catalog not found"})
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// ListHeroSlides godoc
// @Summary List hero slides in display order
// @Produce json
// @Success 200 {array} models.HeroSlide
// @Router /hero-slides [get]
func (h *PublicHandlers) ListHeroSlides(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.HeroSlides.List(ctx))
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Accept json
// @Produce json
// @Param form body models.ContactPayload true "Contact data"
// @Success 201 {object} models.ContactSubmission
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /contact [post]
func (h *PublicHandlers) SubmitContact(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	var payload models.ContactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	submission, err := h.Contact.Create(ctx, payload)
	if err != nil {
		writeRepoError(c, err, "Contact form")
		return
	}
	c.JSON(http.StatusCreated, submission)
}

// Search godoc
// @Summary Case-insensitive product search over name and description
// @Produce json
// @Param q query string true "Query, minimum 2 characters"
// @Param limit query int false "Max results (<=50)"
// @Success 200 {array} models.Product
// @Router /search [get]
func (h *PublicHandlers) Search(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.Products.Search(ctx, c.Query("q"), queryLimit(c, 20)))
}

// GetSettings godoc
// @Summary Public site settings
// @Produce json
// @Success 200 {object} models.SiteSettings
// @Router /settings [get]
func (h *PublicHandlers) GetSettings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.Settings.Get(ctx))
}

func queryLimit(c *gin.Context, def int64) int64 {
	raw := c.Query("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return limit
}

func writeRepoError(c *gin.Context, err error, kind string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": kind + " not found"})
	case errors.Is(err, repository.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
