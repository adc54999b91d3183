package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onboardingBody(overrides map[string]string) string {
	fields := map[string]string{
		"businessName":        "Tech Gadgets Store",
		"businessDescription": "Premium tech gadgets and accessories",
		"businessAddress":     "123 Tech Street, Bangalore",
		"upiNumber":           "merchant1@upi",
		"phoneNumber":         "+919876543210",
		"businessCategory":    "Electronics",
	}
	for k, v := range overrides {
		if v == "" {
			delete(fields, k)
		} else {
			fields[k] = v
		}
	}
	b, _ := json.Marshal(fields)
	return string(b)
}

func TestCompleteOnboardingRejectsMissingFields(t *testing.T) {
	required := []string{
		"businessName", "businessDescription", "businessAddress",
		"upiNumber", "phoneNumber", "businessCategory",
	}

	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			mock := setupMockDB(t)
			expectMerchantLookup(mock, 42, 7)

			user := models.User{ID: 7, Email: "owner@example.com"}
			c, w := testContext(t, http.MethodPost, "/v1/merchant/onboarding",
				onboardingBody(map[string]string{field: ""}), user)

			CompleteOnboarding(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), fmt.Sprintf("Missing required field: %s", field))
			// No write reached the database
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCompleteOnboardingPersistsAllFields(t *testing.T) {
	mock := setupMockDB(t)
	expectMerchantLookup(mock, 42, 7)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "merchants" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT \* FROM "merchants" WHERE "merchants"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "business_name", "is_onboarded", "onboarding_step",
		}).AddRow(42, 7, "Tech Gadgets Store", true, models.OnboardingStepComplete))

	user := models.User{ID: 7, Email: "owner@example.com"}
	c, w := testContext(t, http.MethodPost, "/v1/merchant/onboarding", onboardingBody(nil), user)

	CompleteOnboarding(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_onboarded":true`)
	assert.Contains(t, w.Body.String(), `"onboarding_step":4`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
