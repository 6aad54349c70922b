// Package customersvc - business logic for customer accounts.
package customersvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	customerdto "gotask_backend/internal/api/customer/dto"
	models "gotask_backend/internal/api/customer/models"
	basesvc "gotask_backend/internal/api/base/service"
	"gotask_backend/internal/common"
	"gotask_backend/internal/global"
	"gotask_backend/internal/utility"
)

// CustomerService handles signup and login for end customers.
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[models.AAACustomer]
}

// NewCustomerService creates a CustomerService bound to the customers collection.
func NewCustomerService() (*CustomerService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("failed to get customers collection: %v", common.ErrNotFound)
	}
	return &CustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AAACustomer](collection),
	}, nil
}

// Signup hashes the password and creates the customer record.
// New accounts start active with an unfinished profile.
func (s *CustomerService) Signup(ctx context.Context, input *customerdto.SignupInput) (models.AAACustomer, error) {
	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return models.AAACustomer{}, common.NewError(common.ErrCodeInternalServer, "Failed to hash password", common.StatusInternalServerError, err)
	}

	customer := models.AAACustomer{
		Name:             input.Name,
		Password:         hashed,
		MobileNumber:     input.MobileNumber,
		Gender:           input.Gender,
		Email:            input.Email,
		Address:          input.Address,
		IsProfileUpdated: false,
		IsActive:         true,
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, customer)
}

// Login authenticates a customer against the customers collection.
// An unknown email and a wrong password fail differently so the
// handler can keep the historical status codes.
func (s *CustomerService) Login(ctx context.Context, input *customerdto.LoginInput) (models.AAACustomer, error) {
	customer, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"Email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.AAACustomer{}, common.NewError(common.ErrCodeDatabaseQuery, "Email does not exist", common.StatusNotFound, nil)
		}
		return models.AAACustomer{}, err
	}
	if !utility.ComparePassword(customer.Password, input.Password) {
		return models.AAACustomer{}, common.ErrInvalidCredentials
	}
	return customer, nil
}

// IssueAccessToken signs a bearer token for an authenticated account using
// the configured secret and lifetime.
func (s *CustomerService) IssueAccessToken(customer models.AAACustomer, role string) (string, error) {
	cfg := global.ServerConfig
	if cfg == nil || cfg.JwtSecret == "" {
		return "", common.NewError(common.ErrCodeAuthToken, "Token signing is not configured", common.StatusInternalServerError, nil)
	}
	ttl := time.Duration(cfg.TokenTTLHours) * time.Hour
	return utility.CreateToken(cfg.JwtSecret, customer.ID.Hex(), customer.Email, role, ttl)
}
