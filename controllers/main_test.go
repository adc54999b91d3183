package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupMockDB points config.DB at a sqlmock-backed gorm connection. Queries
// are matched by regular expression.
func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	config.DB = gdb
	return mock
}

// testContextNoUser builds a gin context for an unauthenticated request.
func testContextNoUser(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req

	return c, w
}

// testContext builds a gin context carrying an authenticated user.
func testContext(t *testing.T, method, path, body string, user models.User) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	c, w := testContextNoUser(t, method, path, body)
	c.Set("user", user)
	return c, w
}

// merchantRows builds a single-merchant result set in the column layout the
// tests rely on.
func merchantRows(id, userID uint, onboarded bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "api_token", "is_onboarded", "onboarding_step",
	}).AddRow(id, userID, "tok-test", onboarded, 0)
}

func expectMerchantLookup(mock sqlmock.Sqlmock, id, userID uint) {
	mock.ExpectQuery(`SELECT \* FROM "merchants" WHERE user_id = \$1`).
		WillReturnRows(merchantRows(id, userID, true))
}
