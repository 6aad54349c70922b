// Package customerhdl - HTTP handlers for the customer domain.
package customerhdl

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	customerdto "gotask_backend/internal/api/customer/dto"
	customersvc "gotask_backend/internal/api/customer/service"
	models "gotask_backend/internal/api/customer/models"
	basehdl "gotask_backend/internal/api/base/handler"
	"gotask_backend/internal/common"
	"gotask_backend/internal/logger"
)

// CustomerHandler serves signup and the two login endpoints.
type CustomerHandler struct {
	*basehdl.BaseHandler[models.AAACustomer, customerdto.SignupInput, customerdto.CustomerUpdateInput]
	customerService *customersvc.CustomerService
	staffService    *customersvc.StaffService
}

// NewCustomerHandler creates a CustomerHandler with its services.
func NewCustomerHandler() (*CustomerHandler, error) {
	customerService, err := customersvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create customer service: %w", err)
	}
	staffService, err := customersvc.NewStaffService()
	if err != nil {
		return nil, fmt.Errorf("failed to create staff service: %w", err)
	}
	return &CustomerHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.AAACustomer, customerdto.SignupInput, customerdto.CustomerUpdateInput](customerService),
		customerService: customerService,
		staffService:    staffService,
	}, nil
}

// HandleSignup registers a new customer account.
func (h *CustomerHandler) HandleSignup(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input customerdto.SignupInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		if err := basehdl.ValidateInput(input); err != nil {
			return basehdl.Failure(c, err)
		}
		customer, err := h.customerService.Signup(c.Context(), &input)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		logger.LogAuth("signup", c, map[string]interface{}{"email": input.Email})
		return basehdl.Success(c, common.StatusCreated, "Signup Successfully", customer)
	})
}

// HandleLogin authenticates a staff member through the public login route.
func (h *CustomerHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input customerdto.LoginInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		if err := basehdl.ValidateInput(input); err != nil {
			return basehdl.Failure(c, err)
		}
		user, err := h.staffService.Login(c.Context(), &input)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return basehdl.Success(c, common.StatusOK, "Login successful", user)
	})
}

// HandleAdminLogin authenticates against the customer accounts. Validation
// failures answer 401 here, not 400.
func (h *CustomerHandler) HandleAdminLogin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input customerdto.LoginInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		if err := basehdl.ValidateInput(input); err != nil {
			var appErr *common.Error
			if errors.As(err, &appErr) {
				return basehdl.FailureMsg(c, common.StatusUnauthorized, appErr.Message)
			}
			return basehdl.FailureMsg(c, common.StatusUnauthorized, err.Error())
		}
		customer, err := h.customerService.Login(c.Context(), &input)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		accessToken, err := h.customerService.IssueAccessToken(customer, "admin")
		if err != nil {
			return basehdl.Failure(c, err)
		}
		logger.LogAuth("admin_login", c, map[string]interface{}{"email": input.Email})
		return basehdl.Success(c, common.StatusOK, "Login successful", fiber.Map{
			"user":        customer,
			"accessToken": accessToken,
		})
	})
}
