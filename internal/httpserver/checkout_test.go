package httpserver

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartOrderPaymentFlow(t *testing.T) {
	env := newTestEnv(t)

	customerID := env.createCustomer("flow@example.com", "52998224725")["id"].(string)
	catID := env.createCategory("Music")["id"].(string)
	guitar := env.createProduct(catID, "Guitar", "50.00", 5)["id"].(string)
	drum := env.createProduct(catID, "Drum", "50.00", 5)["id"].(string)

	path := "/carts/" + customerID + "/items/" + guitar + "?quantity=1"
	rec := env.doJSONRequest(http.MethodPost, path, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, path, rec.Header().Get("Location"))
	item := decode[map[string]any](t, rec)
	assert.Equal(t, "Guitar", item["productName"])
	assert.Equal(t, "50.00", item["unitPrice"])
	assert.EqualValues(t, 1, item["quantity"])

	rec = env.doJSONRequest(http.MethodPost, "/carts/"+customerID+"/items/"+drum+"?quantity=1", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.doJSONRequest(http.MethodGet, "/carts/"+customerID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 2)

	rec = env.doJSONRequest(http.MethodPost, "/orders/"+customerID, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decode[map[string]any](t, rec)
	orderID := order["id"].(string)
	assert.Equal(t, "/orders/"+orderID, rec.Header().Get("Location"))
	assert.Equal(t, "100.00", order["total"])
	assert.Equal(t, "PENDING", order["status"])
	assert.Equal(t, "2026-06-01T09:00:00Z", order["orderDate"])
	assert.Len(t, order["items"], 2)

	rec = env.doJSONRequest(http.MethodPost, "/payments/"+orderID+"?paymentType=credit_card", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	payment := decode[map[string]any](t, rec)
	assert.Equal(t, "APPROVED", payment["status"])
	assert.Equal(t, "CREDIT_CARD", payment["paymentType"])
	assert.Equal(t, "100.00", payment["amount"])
	assert.Equal(t, orderID, payment["orderId"])

	rec = env.doJSONRequest(http.MethodGet, "/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "PAID", decode[map[string]any](t, rec)["status"])

	rec = env.doJSONRequest(http.MethodPost, "/payments/"+orderID+"?paymentType=PIX", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Order already paid", decode[ErrorBody](t, rec).Message)
}

func TestCartHTTP_AddItemErrors(t *testing.T) {
	env := newTestEnv(t)

	customerID := env.createCustomer("cart@example.com", "11144477735")["id"].(string)
	catID := env.createCategory("Tools")["id"].(string)
	product := env.createProduct(catID, "Saw", "10.00", 2)["id"].(string)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantError  string
		wantMsg    string
	}{
		{
			name:       "zero quantity",
			path:       "/carts/" + customerID + "/items/" + product + "?quantity=0",
			wantStatus: http.StatusBadRequest,
			wantError:  "Malformed JSON request",
			wantMsg:    "Quantity must be greater than zero",
		},
		{
			name:       "above stock",
			path:       "/carts/" + customerID + "/items/" + product + "?quantity=3",
			wantStatus: http.StatusBadRequest,
			wantError:  "Malformed JSON request",
			wantMsg:    "Product stock less than quantity",
		},
		{
			name:       "quantity not a number",
			path:       "/carts/" + customerID + "/items/" + product + "?quantity=two",
			wantStatus: http.StatusBadRequest,
			wantError:  "Malformed JSON request",
			wantMsg:    "Query parameter 'quantity' must be an integer",
		},
		{
			name:       "unknown customer",
			path:       "/carts/" + uuid.NewString() + "/items/" + product + "?quantity=1",
			wantStatus: http.StatusNotFound,
			wantError:  "Resource not found",
			wantMsg:    "Customer not found",
		},
		{
			name:       "bad product id",
			path:       "/carts/" + customerID + "/items/xyz?quantity=1",
			wantStatus: http.StatusBadRequest,
			wantError:  "Malformed JSON request",
			wantMsg:    "Invalid UUID in path parameter 'productId'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.doJSONRequest(http.MethodPost, tt.path, nil)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			body := decode[ErrorBody](t, rec)
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}

	rec := env.doJSONRequest(http.MethodGet, "/carts/"+customerID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cart not found", decode[ErrorBody](t, rec).Message)

	rec = env.doJSONRequest(http.MethodPost, "/orders/"+customerID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cart not found", decode[ErrorBody](t, rec).Message)
}

func TestPaymentHTTP_Errors(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodPost, "/payments/"+uuid.NewString()+"?paymentType=CASH", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.doJSONRequest(http.MethodPost, "/payments/"+uuid.NewString()+"?paymentType=PIX", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", decode[ErrorBody](t, rec).Message)

	rec = env.doJSONRequest(http.MethodGet, "/orders/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
