package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteAccountRemovesEverythingScoped(t *testing.T) {
	mock := setupMockDB(t)
	expectMerchantLookup(mock, 42, 7)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "orders" WHERE merchant_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "products" WHERE merchant_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "webhook_events" WHERE merchant_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "merchants" WHERE "merchants"."id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "sessions" WHERE user_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "users" WHERE "users"."id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user := models.User{ID: 7, Email: "owner@example.com"}
	c, w := testContext(t, http.MethodDelete, "/v1/merchant/account", "", user)

	DeleteAccount(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Account deleted successfully")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAccountRollsBackOnFailure(t *testing.T) {
	mock := setupMockDB(t)
	expectMerchantLookup(mock, 42, 7)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "orders" WHERE merchant_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "products" WHERE merchant_id = \$1`).
		WillReturnError(fmt.Errorf("connection reset"))
	mock.ExpectRollback()

	user := models.User{ID: 7, Email: "owner@example.com"}
	c, w := testContext(t, http.MethodDelete, "/v1/merchant/account", "", user)

	DeleteAccount(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
