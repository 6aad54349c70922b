package customerhdl

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"

	customerdto "gotask_backend/internal/api/customer/dto"
	customersvc "gotask_backend/internal/api/customer/service"
	models "gotask_backend/internal/api/customer/models"
	basehdl "gotask_backend/internal/api/base/handler"
	"gotask_backend/internal/common"
	"gotask_backend/internal/logger"
	"gotask_backend/internal/utility"
)

// StaffHandler serves the staff administration endpoints.
type StaffHandler struct {
	*basehdl.BaseHandler[models.AAAUser, customerdto.SaveUserInput, customerdto.UpdateUserInput]
	staffService *customersvc.StaffService
}

// NewStaffHandler creates a StaffHandler with its service.
func NewStaffHandler() (*StaffHandler, error) {
	staffService, err := customersvc.NewStaffService()
	if err != nil {
		return nil, fmt.Errorf("failed to create staff service: %w", err)
	}
	return &StaffHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.AAAUser, customerdto.SaveUserInput, customerdto.UpdateUserInput](staffService),
		staffService: staffService,
	}, nil
}

// HandleSaveUser creates a staff account, generating a password when the
// body omits one.
func (h *StaffHandler) HandleSaveUser(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input customerdto.SaveUserInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		if err := basehdl.ValidateInput(input); err != nil {
			return basehdl.Failure(c, err)
		}
		user, err := h.staffService.SaveUser(c.Context(), &input)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		logger.LogCRUD("create", "staff_user", user.ID.Hex(), c, nil)
		return basehdl.Success(c, common.StatusCreated, "User created successfully", user)
	})
}

// HandleListUsers lists staff accounts with search, filters, sorting,
// field selection and pagination from the query string.
func (h *StaffHandler) HandleListUsers(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		page, limit := basehdl.ParsePagination(c)
		query := &customerdto.ListUsersQuery{
			Page:      page,
			Limit:     limit,
			SortBy:    c.Query("sortBy", "createdAt"),
			SortOrder: c.Query("sortOrder", "desc"),
			Search:    c.Query("search"),
			Gender:    c.Query("Gender"),
			RoleID:    c.Query("RoleID"),
			City:      c.Query("City"),
			State:     c.Query("State"),
			District:  c.Query("District"),
			From:      c.Query("from"),
			To:        c.Query("to"),
			Fields:    c.Query("fields"),
		}
		if raw := c.Query("isActive"); raw != "" {
			active := utility.ToBool(raw)
			query.IsActive = &active
		}

		items, total, err := h.staffService.ListUsers(c.Context(), query)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		totalPages := customersvc.ListTotalPages(total, limit)
		return basehdl.SuccessPaged(c, common.StatusOK, "Users fetched successfully", items, page, totalPages)
	})
}

// HandleUsersByDepartment lists the non-manager staff of one department.
func (h *StaffHandler) HandleUsersByDepartment(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input customerdto.UsersByDepartmentInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		if input.DepartmenID == "" {
			return basehdl.FailureMsg(c, common.StatusBadRequest, "Department ID is required")
		}
		input.Page, input.Limit = basehdl.ClampPagination(input.Page, input.Limit)

		users, total, err := h.staffService.UsersByDepartment(c.Context(), &input)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		totalPages := int64(0)
		if total > 0 {
			totalPages = (total + input.Limit - 1) / input.Limit
		}
		return basehdl.SuccessPaged(c, common.StatusOK, "Users fetched successfully", users, input.Page, totalPages)
	})
}

// HandleManagersByDepartment lists the managers of one department.
func (h *StaffHandler) HandleManagersByDepartment(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input customerdto.ManagersByDepartmentInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		if err := basehdl.ValidateInput(input); err != nil {
			return basehdl.Failure(c, err)
		}
		managers, err := h.staffService.ManagersByDepartment(c.Context(), &input)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return basehdl.Success(c, common.StatusOK, "Managers fetched successfully", managers)
	})
}

// HandleDeleteUser removes a staff account by its path id.
func (h *StaffHandler) HandleDeleteUser(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c.Params("id"))
		if err != nil {
			return basehdl.FailureMsg(c, common.StatusNotFound, "User not found")
		}
		if err := h.staffService.DeleteUser(c.Context(), id); err != nil {
			return basehdl.Failure(c, err)
		}
		logger.LogCRUD("delete", "staff_user", id.Hex(), c, nil)
		return basehdl.Success(c, common.StatusOK, "User deleted successfully", fiber.Map{})
	})
}

// HandleUpdateUser applies a partial update to a staff account.
func (h *StaffHandler) HandleUpdateUser(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c.Params("id"))
		if err != nil {
			return basehdl.FailureMsg(c, common.StatusNotFound, "User not found")
		}
		var input customerdto.UpdateUserInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		if err := basehdl.ValidateInput(input); err != nil {
			return basehdl.Failure(c, err)
		}
		update, err := partialUpdateMap(input)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		user, err := h.staffService.UpdateUser(c.Context(), id, update)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		logger.LogCRUD("update", "staff_user", id.Hex(), c, nil)
		return basehdl.Success(c, common.StatusOK, "User updated successfully", user)
	})
}

// partialUpdateMap drops the nil pointer fields so untouched fields stay
// out of the $set document.
func partialUpdateMap(input customerdto.UpdateUserInput) (map[string]interface{}, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Invalid update payload", common.StatusBadRequest, err)
	}
	update := make(map[string]interface{})
	if err := json.Unmarshal(raw, &update); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Invalid update payload", common.StatusBadRequest, err)
	}
	return update, nil
}
