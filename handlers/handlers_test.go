package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfterm/wolfterm-backend/auth"
	"github.com/wolfterm/wolfterm-backend/models"
	"github.com/wolfterm/wolfterm-backend/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mock providers ---

type mockReviews struct {
	ReviewProvider

	createErr   error
	updateErr   error
	lastPayload *models.ReviewPayload
}

func (m *mockReviews) Create(ctx context.Context, payload models.ReviewPayload) (models.Review, error) {
	m.lastPayload = &payload
	if m.createErr != nil {
		return models.Review{}, m.createErr
	}
	return models.Review{ID: "r1", Rating: payload.Rating, Name: payload.Name}, nil
}

func (m *mockReviews) Update(ctx context.Context, id string, body map[string]any) (models.Review, error) {
	if m.updateErr != nil {
		return models.Review{}, m.updateErr
	}
	return models.Review{ID: id}, nil
}

type mockProducts struct {
	ProductProvider

	updateErr error
	getErr    error
	lastBody  map[string]any
}

func (m *mockProducts) Get(ctx context.Context, id string) (models.Product, error) {
	if m.getErr != nil {
		return models.Product{}, m.getErr
	}
	return models.Product{ID: id}, nil
}

func (m *mockProducts) Update(ctx context.Context, id string, body map[string]any) (models.Product, error) {
	m.lastBody = body
	if m.updateErr != nil {
		return models.Product{}, m.updateErr
	}
	return models.Product{ID: id, Category: "updated"}, nil
}

type mockContact struct {
	ContactProvider

	createErr error
}

func (m *mockContact) Create(ctx context.Context, payload models.ContactPayload) (models.ContactSubmission, error) {
	if m.createErr != nil {
		return models.ContactSubmission{}, m.createErr
	}
	return models.ContactSubmission{ID: "c1", Name: payload.Name}, nil
}

type mockSettings struct {
	SettingsProvider

	value models.SiteSettings
}

func (m *mockSettings) Get(ctx context.Context) models.SiteSettings { return m.value }

type mockImages struct {
	saveErr  error
	lastData []byte
	lastName string
}

func (m *mockImages) Save(data []byte, originalName string) (string, error) {
	m.lastData = data
	m.lastName = originalName
	if m.saveErr != nil {
		return "", m.saveErr
	}
	return "abcdef123456.png", nil
}

// --- Tests: POST /api/reviews ---

func TestCreateReviewValidation(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		expectedStatus int
		expectStoreHit bool
	}{
		{
			name:           "valid review",
			body:           `{"name":"Ali","city":"Ankara","rating":5,"text":"Harika"}`,
			expectedStatus: http.StatusCreated,
			expectStoreHit: true,
		},
		{
			name:           "rating too low",
			body:           `{"name":"Ali","city":"Ankara","rating":0,"text":"Harika"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rating too high",
			body:           `{"name":"Ali","city":"Ankara","rating":6,"text":"Harika"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{broken`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reviews := &mockReviews{}
			h := &PublicHandlers{Reviews: reviews}
			router := gin.New()
			router.POST("/api/reviews", h.CreateReview)

			req := httptest.NewRequest("POST", "/api/reviews", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectStoreHit {
				assert.NotNil(t, reviews.lastPayload)
			} else {
				assert.Nil(t, reviews.lastPayload, "invalid input must be rejected before any store access")
			}
		})
	}
}

func TestCreateReviewStoreUnavailable(t *testing.T) {
	h := &PublicHandlers{Reviews: &mockReviews{createErr: repository.ErrUnavailable}}
	router := gin.New()
	router.POST("/api/reviews", h.CreateReview)

	req := httptest.NewRequest("POST", "/api/reviews",
		strings.NewReader(`{"name":"Ali","city":"Ankara","rating":4,"text":"ok"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// --- Tests: POST /api/contact ---

func TestSubmitContact(t *testing.T) {
	testCases := []struct {
		name           string
		mock           *mockContact
		body           string
		expectedStatus int
	}{
		{
			name:           "created",
			mock:           &mockContact{},
			body:           `{"name":"Mehmet","email":"m@example.com","message":"Merhaba"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "store down surfaces 503 instead of fake success",
			mock:           &mockContact{createErr: repository.ErrUnavailable},
			body:           `{"name":"Mehmet","email":"m@example.com","message":"Merhaba"}`,
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "missing email",
			mock:           &mockContact{},
			body:           `{"name":"Mehmet","message":"Merhaba"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := &PublicHandlers{Contact: tc.mock}
			router := gin.New()
			router.POST("/api/contact", h.SubmitContact)

			req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

// --- Tests: GET /api/products/:id ---

func TestGetProductNotFound(t *testing.T) {
	h := &PublicHandlers{Products: &mockProducts{getErr: repository.ErrNotFound}}
	router := gin.New()
	router.GET("/api/products/:id", h.GetProduct)

	req := httptest.NewRequest("GET", "/api/products/missing", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// --- Tests: GET /api/settings ---

func TestGetSettings(t *testing.T) {
	value := models.DefaultSiteSettings()
	value.ContactEmail = "visible@wolfterm.com"
	h := &PublicHandlers{Settings: &mockSettings{value: value}}
	router := gin.New()
	router.GET("/api/settings", h.GetSettings)

	req := httptest.NewRequest("GET", "/api/settings", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "visible@wolfterm.com", resp["contact_email"])
}

// --- Tests: admin product update ---

func TestUpdateProduct(t *testing.T) {
	testCases := []struct {
		name           string
		mock           *mockProducts
		expectedStatus int
	}{
		{"updated", &mockProducts{}, http.StatusOK},
		{"not found", &mockProducts{updateErr: repository.ErrNotFound}, http.StatusNotFound},
		{"store down", &mockProducts{updateErr: repository.ErrUnavailable}, http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := &AdminHandlers{Products: tc.mock}
			router := gin.New()
			router.PUT("/api/admin/products/:id", h.UpdateProduct)

			req := httptest.NewRequest("PUT", "/api/admin/products/p1",
				strings.NewReader(`{"category":"condensing"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if rec.Code == http.StatusOK {
				assert.Equal(t, map[string]any{"category": "condensing"}, tc.mock.lastBody,
					"only caller-supplied fields reach the repository")
			}
		})
	}
}

// --- Tests: admin review update ---

func TestUpdateReviewRatingValidation(t *testing.T) {
	testCases := []struct {
		name           string
		mock           *mockReviews
		expectedStatus int
	}{
		{"updated", &mockReviews{}, http.StatusOK},
		{"invalid rating", &mockReviews{updateErr: repository.ErrInvalidRating}, http.StatusBadRequest},
		{"store down", &mockReviews{updateErr: repository.ErrUnavailable}, http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := &AdminHandlers{Reviews: tc.mock}
			router := gin.New()
			router.PUT("/api/admin/reviews/:id", h.UpdateReview)

			req := httptest.NewRequest("PUT", "/api/admin/reviews/r1",
				strings.NewReader(`{"rating":99}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

// --- Tests: login ---

func TestLogin(t *testing.T) {
	svc, err := auth.NewService("test-secret", "admin", "admin123")
	require.NoError(t, err)
	h := &AdminHandlers{Auth: svc}
	router := gin.New()
	router.POST("/api/admin/login", h.Login)

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/admin/login",
			strings.NewReader(`{"username":"admin","password":"admin123"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.LoginResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, "admin", resp.Username)

		claims, err := svc.Verify(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleAdmin, claims.Role)
	})

	t.Run("bad credentials", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/admin/login",
			strings.NewReader(`{"username":"admin","password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

// --- Tests: image upload ---

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	images := &mockImages{}
	h := &AdminHandlers{Images: images}
	router := gin.New()
	router.POST("/api/admin/upload-image", h.UploadImage)

	body, contentType := multipartBody(t, "file", "boiler.png", []byte("png-bytes"))
	req := httptest.NewRequest("POST", "/api/admin/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	req.Host = "api.wolfterm.com"
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "http://api.wolfterm.com/uploads/abcdef123456.png", resp["url"])
	assert.Equal(t, "abcdef123456.png", resp["filename"])
	assert.Equal(t, []byte("png-bytes"), images.lastData)
	assert.Equal(t, "boiler.png", images.lastName)
}

func TestUploadImageMissingFile(t *testing.T) {
	h := &AdminHandlers{Images: &mockImages{}}
	router := gin.New()
	router.POST("/api/admin/upload-image", h.UploadImage)

	req := httptest.NewRequest("POST", "/api/admin/upload-image", strings.NewReader(""))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
