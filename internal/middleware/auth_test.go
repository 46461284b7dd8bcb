package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestGetContractorFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	contractorID := uuid.New()
	c.Set("contractor_id", contractorID)
	c.Set("contractor_email", "jan@example.com")
	c.Set("contractor_name", "Jan Novak")

	gotID, gotEmail, gotName, err := GetContractorFromContext(c)
	if err != nil {
		t.Fatalf("GetContractorFromContext() error = %v", err)
	}
	if gotID != contractorID || gotEmail != "jan@example.com" || gotName != "Jan Novak" {
		t.Errorf("GetContractorFromContext() = %v/%s/%s, want the set identity", gotID, gotEmail, gotName)
	}
}

func TestGetContractorFromContextMissingKeys(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, _, _, err := GetContractorFromContext(c); err == nil {
		t.Error("GetContractorFromContext() on an empty context returned no error")
	}
}

func TestGetContractorFromContextWrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Set("contractor_id", "not-a-uuid")
	c.Set("contractor_email", "jan@example.com")
	c.Set("contractor_name", "Jan Novak")

	if _, _, _, err := GetContractorFromContext(c); err == nil {
		t.Error("GetContractorFromContext() accepted a non-uuid contractor_id")
	}
}
