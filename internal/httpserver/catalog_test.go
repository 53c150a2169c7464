package httpserver

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryHTTP_Lifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Categories not found", decode[ErrorBody](t, rec).Message)

	rec = env.doJSONRequest(http.MethodPost, "/categories", map[string]any{"name": "Books", "description": "paper"})
	require.Equal(t, http.StatusCreated, rec.Code)
	cat := decode[map[string]any](t, rec)
	id := cat["id"].(string)
	assert.Equal(t, "/categories/"+id, rec.Header().Get("Location"))

	rec = env.doJSONRequest(http.MethodPost, "/categories", map[string]any{"name": "bOOKS"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode[ErrorBody](t, rec)
	assert.Equal(t, "Business error", body.Error)
	assert.Equal(t, "Category with name bOOKS already exists", body.Message)

	rec = env.doJSONRequest(http.MethodPost, "/categories", map[string]any{"description": "no name"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid field 'name': must not be blank", decode[ErrorBody](t, rec).Message)

	rec = env.doJSONRequest(http.MethodPut, "/categories/"+id, map[string]any{"name": "E-Books"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "E-Books", decode[map[string]any](t, rec)["name"])

	rec = env.doJSONRequest(http.MethodGet, "/categories/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	env.createProduct(id, "Kindle", "499.00", 3)
	rec = env.doJSONRequest(http.MethodDelete, "/categories/"+id, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = env.doJSONRequest(http.MethodDelete, "/categories/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHTTP_Lifecycle(t *testing.T) {
	env := newTestEnv(t)
	catID := env.createCategory("Electronics")["id"].(string)

	rec := env.doJSONRequest(http.MethodPost, "/products", map[string]any{
		"name": "Phone", "description": "smart", "price": 1999.9, "stock": 4,
		"imageUrl": "https://cdn.example.com/phone.png", "categoryId": catID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	p := decode[map[string]any](t, rec)
	id := p["id"].(string)
	assert.Equal(t, "/products/"+id, rec.Header().Get("Location"))
	assert.Equal(t, "1999.90", p["price"])
	assert.Equal(t, "Electronics", p["categoryName"])
	assert.EqualValues(t, 4, p["stock"])

	rec = env.doJSONRequest(http.MethodPut, "/products/"+id, map[string]any{
		"name": "Phone 2", "price": "2100.00", "stock": 0, "categoryId": catID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	p = decode[map[string]any](t, rec)
	assert.Equal(t, "2100.00", p["price"])
	assert.EqualValues(t, 0, p["stock"])

	rec = env.doJSONRequest(http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	rec = env.doJSONRequest(http.MethodDelete, "/products/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.doJSONRequest(http.MethodGet, "/products/"+id, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", decode[ErrorBody](t, rec).Message)
}

func TestProductHTTP_CreateErrors(t *testing.T) {
	env := newTestEnv(t)
	catID := env.createCategory("Garden")["id"].(string)

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing price",
			body:       map[string]any{"name": "Hose", "stock": 1, "categoryId": catID},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid field 'price': must not be blank",
		},
		{
			name:       "negative price",
			body:       map[string]any{"name": "Hose", "price": "-1", "stock": 1, "categoryId": catID},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid field 'price': must be greater than or equal to 0",
		},
		{
			name:       "negative stock",
			body:       map[string]any{"name": "Hose", "price": "1", "stock": -2, "categoryId": catID},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid field 'stock': must be greater than or equal to 0",
		},
		{
			name:       "bad image url",
			body:       map[string]any{"name": "Hose", "price": "1", "stock": 1, "imageUrl": "not a url", "categoryId": catID},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid field 'imageUrl': must be a valid URL",
		},
		{
			name:       "unknown category",
			body:       map[string]any{"name": "Hose", "price": "1", "stock": 1, "categoryId": uuid.NewString()},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Category not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.doJSONRequest(http.MethodPost, "/products", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantMsg, decode[ErrorBody](t, rec).Message)
		})
	}
}
