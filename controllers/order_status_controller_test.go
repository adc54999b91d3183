package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusUpdateStampsPaidAtOnConfirm(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	updates := orderStatusUpdate(models.OrderStatusConfirmed, "", now)
	assert.Equal(t, models.OrderStatusConfirmed, updates["status"])
	assert.Equal(t, now, updates["paid_at"])
	_, hasTxn := updates["txn_id"]
	assert.False(t, hasTxn)
}

func TestOrderStatusUpdateNullsPaidAtOtherwise(t *testing.T) {
	now := time.Now()

	for _, status := range []string{models.OrderStatusPending, models.OrderStatusFailed} {
		updates := orderStatusUpdate(status, "txn-1", now)
		assert.Equal(t, status, updates["status"])
		assert.Nil(t, updates["paid_at"])
		assert.Equal(t, "txn-1", updates["txn_id"])
	}
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	mock := setupMockDB(t)
	expectMerchantLookup(mock, 42, 7)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 AND merchant_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "merchant_id", "status"}).
			AddRow(5, 42, models.OrderStatusPending))

	user := models.User{ID: 7, Email: "owner@example.com"}
	c, w := testContext(t, http.MethodPut, "/v1/merchant/orders/5",
		`{"status":"SHIPPED"}`, user)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	UpdateOrderStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid order status")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatusNotOwnedReturnsNotFound(t *testing.T) {
	mock := setupMockDB(t)
	expectMerchantLookup(mock, 42, 7)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 AND merchant_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user := models.User{ID: 7, Email: "owner@example.com"}
	c, w := testContext(t, http.MethodPut, "/v1/merchant/orders/5",
		`{"status":"CONFIRMED"}`, user)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	UpdateOrderStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatusConfirmsAndReloads(t *testing.T) {
	mock := setupMockDB(t)
	expectMerchantLookup(mock, 42, 7)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 AND merchant_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "merchant_id", "customer_id", "product_id", "status"}).
			AddRow(5, 42, 11, 3, models.OrderStatusPending))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	paidAt := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE "orders"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "merchant_id", "customer_id", "product_id", "status", "paid_at"}).
			AddRow(5, 42, 11, 3, models.OrderStatusConfirmed, paidAt))
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE "customers"."id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "phone"}).AddRow(11, "+919876543210"))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"."id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "merchant_id", "name", "price"}).
			AddRow(3, 42, "Cap", 199.5))

	user := models.User{ID: 7, Email: "owner@example.com"}
	c, w := testContext(t, http.MethodPut, "/v1/merchant/orders/5",
		`{"status":"CONFIRMED"}`, user)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	UpdateOrderStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"CONFIRMED"`)
	assert.NotContains(t, w.Body.String(), `"paid_at":null`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
