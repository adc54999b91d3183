package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProductRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     ProductRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  ProductRequest{Name: "Cap", Description: "Red cap", Price: 199.5},
		},
		{
			name:    "missing name",
			req:     ProductRequest{Description: "Red cap", Price: 199.5},
			wantErr: "Missing required field: name",
		},
		{
			name:    "missing description",
			req:     ProductRequest{Name: "Cap", Price: 199.5},
			wantErr: "Missing required field: description",
		},
		{
			name:    "missing price",
			req:     ProductRequest{Name: "Cap", Description: "Red cap"},
			wantErr: "Missing required field: price",
		},
		{
			name:    "zero price",
			req:     ProductRequest{Name: "Cap", Description: "Red cap", Price: float64(0)},
			wantErr: "Price must be a positive number",
		},
		{
			name:    "negative price",
			req:     ProductRequest{Name: "Cap", Description: "Red cap", Price: float64(-1)},
			wantErr: "Price must be a positive number",
		},
		{
			name:    "non-numeric price",
			req:     ProductRequest{Name: "Cap", Description: "Red cap", Price: "abc"},
			wantErr: "Price must be a positive number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, appErr := validateProductRequest(&tt.req)
			if tt.wantErr == "" {
				require.Nil(t, appErr)
				assert.Equal(t, 199.5, price)
				return
			}
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}

func TestCreateProductRejectsInvalidPrice(t *testing.T) {
	mock := setupMockDB(t)
	expectMerchantLookup(mock, 42, 7)

	user := models.User{ID: 7, Email: "owner@example.com"}
	c, w := testContext(t, http.MethodPost, "/v1/merchant/products",
		`{"name":"Cap","description":"Red cap","price":-1}`, user)

	CreateProduct(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Price must be a positive number")
	// No insert reached the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProductPersistsValidProduct(t *testing.T) {
	mock := setupMockDB(t)
	expectMerchantLookup(mock, 42, 7)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	user := models.User{ID: 7, Email: "owner@example.com"}
	c, w := testContext(t, http.MethodPost, "/v1/merchant/products",
		`{"name":"Cap","description":"Red cap","price":199.5}`, user)

	CreateProduct(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price":199.5`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductNotOwnedReturnsNotFound(t *testing.T) {
	mock := setupMockDB(t)
	expectMerchantLookup(mock, 42, 7)

	// The row exists under another merchant, so the scoped lookup misses
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 AND merchant_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user := models.User{ID: 7, Email: "owner@example.com"}
	c, w := testContext(t, http.MethodPut, "/v1/merchant/products/9",
		`{"name":"Cap","description":"Red cap","price":199.5}`, user)
	c.Params = gin.Params{{Key: "id", Value: "9"}}

	UpdateProduct(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProductNotOwnedReturnsNotFound(t *testing.T) {
	mock := setupMockDB(t)
	expectMerchantLookup(mock, 42, 7)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 AND merchant_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user := models.User{ID: 7, Email: "owner@example.com"}
	c, w := testContext(t, http.MethodDelete, "/v1/merchant/products/9", "", user)
	c.Params = gin.Params{{Key: "id", Value: "9"}}

	DeleteProduct(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
