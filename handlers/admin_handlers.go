package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wolfterm/wolfterm-backend/auth"
	"github.com/wolfterm/wolfterm-backend/models"
	"github.com/wolfterm/wolfterm-backend/repository"
	"github.com/wolfterm/wolfterm-backend/services"
)

// AdminHandlers serves the token-gated management endpoints. Everything
// here except Login sits behind auth.Service.RequireAdmin.
type AdminHandlers struct {
	Auth       *auth.Service
	Products   ProductProvider
	Reviews    ReviewProvider
	Categories CategoryProvider
	HeroSlides HeroSlideProvider
	Catalogs   CatalogProvider
	Settings   SettingsProvider
	Dashboard  DashboardProvider
	Images     ImageSaver
}

// Login exchanges the admin credential for a bearer token.
func (h *AdminHandlers) Login(c *gin.Context) {
	var payload models.LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !h.Auth.Authenticate(payload.Username, payload.Password) {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	token, err := h.Auth.Issue(payload.Username, auth.RoleAdmin, auth.DefaultTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue token"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    payload.Username,
	})
}

// GetDashboard returns aggregate counts plus the five most recent
// products and reviews; it degrades to zeros instead of erroring.
func (h *AdminHandlers) GetDashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.Dashboard.Stats(ctx))
}

// UpdateProduct applies a partial update: only fields present in the
// body overwrite the stored document.
func (h *AdminHandlers) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	body, ok := bindBody(c)
	if !ok {
		return
	}

	product, err := h.Products.Update(ctx, c.Param("id"), body)
	if err != nil {
		writeRepoError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *AdminHandlers) UpdateReview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	body, ok := bindBody(c)
	if !ok {
		return
	}

	review, err := h.Reviews.Update(ctx, c.Param("id"), body)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		writeRepoError(c, err, "Review")
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *AdminHandlers) DeleteReview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if err := h.Reviews.Delete(ctx, c.Param("id")); err != nil {
		writeRepoError(c, err, "Review")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

func (h *AdminHandlers) CreateCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	var payload models.CategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	category, err := h.Categories.Create(ctx, payload.ToCategory())
	if err != nil {
		writeRepoError(c, err, "Category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *AdminHandlers) UpdateCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	body, ok := bindBody(c)
	if !ok {
		return
	}

	category, err := h.Categories.Update(ctx, c.Param("id"), body)
	if err != nil {
		writeRepoError(c, err, "Category")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *AdminHandlers) DeleteCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if err := h.Categories.Delete(ctx, c.Param("id")); err != nil {
		writeRepoError(c, err, "Category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// ListHeroSlides is the admin listing: store failures degrade to an
// empty list, never to seed or sample content.
func (h *AdminHandlers) ListHeroSlides(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.HeroSlides.ListAdmin(ctx))
}

func (h *AdminHandlers) CreateHeroSlide(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	var payload models.HeroSlidePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	slide, err := h.HeroSlides.Create(ctx, payload)
	if err != nil {
		writeRepoError(c, err, "Hero slide")
		return
	}
	c.JSON(http.StatusCreated, slide)
}

func (h *AdminHandlers) UpdateHeroSlide(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	body, ok := bindBody(c)
	if !ok {
		return
	}

	slide, err := h.HeroSlides.Update(ctx, c.Param("id"), body)
	if err != nil {
		writeRepoError(c, err, "Hero slide")
		return
	}
	c.JSON(http.StatusOK, slide)
}

func (h *AdminHandlers) DeleteHeroSlide(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if err := h.HeroSlides.Delete(ctx, c.Param("id")); err != nil {
		writeRepoError(c, err, "Hero slide")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hero slide deleted successfully"})
}

func (h *AdminHandlers) ListCatalogs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.Catalogs.ListAdmin(ctx))
}

func (h *AdminHandlers) GetCatalog(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	catalog, err := h.Catalogs.Get(ctx, c.Param("id"))
	if err != nil {
		writeRepoError(c, err, "Catalog")
		return
	}
	c.JSON(http.StatusOK, catalog)
}

func (h *AdminHandlers) CreateCatalog(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	var payload models.CatalogPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	catalog, err := h.Catalogs.Create(ctx, payload)
	if err != nil {
		writeRepoError(c, err, "Catalog")
		return
	}
	c.JSON(http.StatusCreated, catalog)
}

// UpdateCatalog replaces the whole document; the id always comes from
// the path, never the body.
func (h *AdminHandlers) UpdateCatalog(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	var payload models.CatalogPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	catalog, err := h.Catalogs.Update(ctx, c.Param("id"), payload)
	if err != nil {
		writeRepoError(c, err, "Catalog")
		return
	}
	c.JSON(http.StatusOK, catalog)
}

func (h *AdminHandlers) DeleteCatalog(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if err := h.Catalogs.Delete(ctx, c.Param("id")); err != nil {
		writeRepoError(c, err, "Catalog")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catalog deleted"})
}

func (h *AdminHandlers) GetSettings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.Settings.GetAdmin(ctx))
}

// UpdateSettings succeeds even when the store is down by recording the
// value to the seed artifact; only a seed-write failure surfaces an
// error.
func (h *AdminHandlers) UpdateSettings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	var settings models.SiteSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	updated, err := h.Settings.Update(ctx, settings)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist settings"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UploadImage accepts a multipart file, stores it under a randomized
// name and returns the public URL built from the request's own origin.
func (h *AdminHandlers) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'file' form field or invalid file upload"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	name, err := h.Images.Save(data, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, services.ErrEmptyUpload) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Empty upload"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	url := scheme + "://" + c.Request.Host + "/uploads/" + name

	c.JSON(http.StatusOK, gin.H{"url": url, "filename": name})
}

// bindBody decodes a partial-update body into a field map, writing the
// 400 itself on malformed JSON.
func bindBody(c *gin.Context) (map[string]any, bool) {
	body := map[string]any{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return nil, false
	}
	return body, true
}
