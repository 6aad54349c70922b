package customersvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gotask_backend/config"
	models "gotask_backend/internal/api/customer/models"
	"gotask_backend/internal/global"
	"gotask_backend/internal/utility"
)

func TestIssueAccessToken(t *testing.T) {
	prev := global.ServerConfig
	global.ServerConfig = &config.Configuration{
		JwtSecret:     "service-test-secret",
		TokenTTLHours: 72,
	}
	defer func() { global.ServerConfig = prev }()

	customer := models.AAACustomer{
		ID:    primitive.NewObjectID(),
		Email: "admin@example.com",
	}

	svc := &CustomerService{}
	signed, err := svc.IssueAccessToken(customer, "admin")
	if err != nil {
		t.Fatalf("IssueAccessToken failed: %v", err)
	}

	claims, err := utility.ParseToken("service-test-secret", signed)
	if err != nil {
		t.Fatalf("issued token did not parse: %v", err)
	}
	if claims.UserID != customer.ID.Hex() {
		t.Errorf("UserID = %q, want %q", claims.UserID, customer.ID.Hex())
	}
	if claims.Email != customer.Email {
		t.Errorf("Email = %q, want %q", claims.Email, customer.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want %q", claims.Role, "admin")
	}
}

func TestIssueAccessTokenWithoutConfig(t *testing.T) {
	prev := global.ServerConfig
	global.ServerConfig = nil
	defer func() { global.ServerConfig = prev }()

	svc := &CustomerService{}
	if _, err := svc.IssueAccessToken(models.AAACustomer{}, "admin"); err == nil {
		t.Error("expected an error when no signing secret is configured")
	}
}
