// Package filtershdl - HTTP handlers for the filter dashboard endpoints.
package filtershdl

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "gotask_backend/internal/api/base/handler"
	filtersdto "gotask_backend/internal/api/filters/dto"
	filterssvc "gotask_backend/internal/api/filters/service"
	"gotask_backend/internal/common"
)

// FiltersHandler serves the filter dashboard endpoints.
type FiltersHandler struct {
	filtersService *filterssvc.FiltersService
}

// NewFiltersHandler creates a FiltersHandler with its service.
func NewFiltersHandler() (*FiltersHandler, error) {
	filtersService, err := filterssvc.NewFiltersService()
	if err != nil {
		return nil, fmt.Errorf("failed to create filters service: %w", err)
	}
	return &FiltersHandler{filtersService: filtersService}, nil
}

func parseInput(c fiber.Ctx, out interface{}) error {
	if err := basehdl.ParseRequestBody(c, out); err != nil {
		return err
	}
	return basehdl.ValidateInput(out)
}

func pagedSuccess(c fiber.Ctx, message string, result filterssvc.PagedResult) error {
	return basehdl.SuccessPaged(c, common.StatusOK, message, result.Rows, result.CurrentPage, result.TotalPages)
}

// HandleDashboard groups a franchise's requests by area for a date window.
func (h *FiltersHandler) HandleDashboard(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input filtersdto.DashboardInput
		if err := parseInput(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		page, limit := basehdl.ClampPagination(input.Page, input.Limit)
		result, err := h.filtersService.DashboardByArea(c.Context(), input, page, limit)
		if err != nil {
			return h.failDashboard(c, err)
		}
		return pagedSuccess(c, "Dashboard data fetched successfully", result)
	})
}

// failDashboard answers internal failures on the dashboard route with an
// HTTP 404 carrying a 500 body, which is what its clients expect.
func (h *FiltersHandler) failDashboard(c fiber.Ctx, err error) error {
	var appErr *common.Error
	if errors.As(err, &appErr) && appErr.StatusCode < common.StatusInternalServerError {
		return basehdl.Failure(c, err)
	}
	return basehdl.JSONResponse(c, common.StatusNotFound, common.NewFailure(common.StatusInternalServerError, "Internal server error"))
}

// HandleAreaRequests groups a territory's requests by area.
func (h *FiltersHandler) HandleAreaRequests(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input filtersdto.AreaRequestsInput
		if err := parseInput(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		page, limit := basehdl.ClampPagination(input.Page, input.Limit)
		result, err := h.filtersService.AreaRequests(c.Context(), input, page, limit)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return pagedSuccess(c, "Dashboard area-wise requests fetched successfully", result)
	})
}

// HandleCategoryWise groups the date window's requests by category.
func (h *FiltersHandler) HandleCategoryWise(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input filtersdto.CategoryWiseInput
		if err := parseInput(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		page, limit := basehdl.ClampPagination(input.Page, input.Limit)
		result, err := h.filtersService.CategoryWise(c.Context(), input, page, limit)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return pagedSuccess(c, "Dashboard category-wise requests fetched successfully", result)
	})
}

// HandleFranchiseComplaints groups a franchise's complaints by category.
func (h *FiltersHandler) HandleFranchiseComplaints(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input filtersdto.FranchiseComplaintsInput
		if err := parseInput(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		page, limit := basehdl.ClampPagination(input.Page, input.Limit)
		result, err := h.filtersService.FranchiseComplaints(c.Context(), input, page, limit)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return pagedSuccess(c, "Dashboard franchise complaint count fetched successfully", result)
	})
}

// HandleFranchiseCount groups a state's franchises by district.
func (h *FiltersHandler) HandleFranchiseCount(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input filtersdto.FranchiseCountInput
		if err := parseInput(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		page, limit := basehdl.ClampPagination(input.Page, input.Limit)
		result, err := h.filtersService.FranchiseCountByDistrict(c.Context(), input, page, limit)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return pagedSuccess(c, "Dashboard franchise count by district fetched successfully", result)
	})
}

// HandleDistrictFranchisers lists a district's franchise owners.
func (h *FiltersHandler) HandleDistrictFranchisers(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input filtersdto.DistrictFranchisersInput
		if err := parseInput(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		page, limit := basehdl.ClampPagination(input.Page, input.Limit)
		result, err := h.filtersService.DistrictFranchisers(c.Context(), input, page, limit)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return pagedSuccess(c, "Dropdown district franchisers fetched successfully", result)
	})
}

// HandleAreaComplaints totals a territory's complaints per area.
func (h *FiltersHandler) HandleAreaComplaints(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input filtersdto.AreaComplaintsInput
		if err := parseInput(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		page, limit := basehdl.ClampPagination(input.Page, input.Limit)
		result, err := h.filtersService.AreaComplaints(c.Context(), input, page, limit)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return pagedSuccess(c, "Area-wise complaints count fetched successfully", result)
	})
}

// HandleDepartmentByID fetches one department record.
func (h *FiltersHandler) HandleDepartmentByID(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input filtersdto.DepartmentByIDInput
		if err := parseInput(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		page, limit := basehdl.ClampPagination(input.Page, input.Limit)
		result, err := h.filtersService.DepartmentByID(c.Context(), input, page, limit)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return pagedSuccess(c, "Department fetched successfully", result)
	})
}

// HandleDepartmentsByOrg lists an organization's departments.
func (h *FiltersHandler) HandleDepartmentsByOrg(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input filtersdto.DepartmentsByOrgInput
		if err := parseInput(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		page, limit := basehdl.ClampPagination(input.Page, input.Limit)
		result, err := h.filtersService.DepartmentsByOrg(c.Context(), input, page, limit)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return pagedSuccess(c, "Departments by organization fetched successfully", result)
	})
}

// HandleDesignationByID fetches one designation record.
func (h *FiltersHandler) HandleDesignationByID(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input filtersdto.DesignationByIDInput
		if err := parseInput(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		page, limit := basehdl.ClampPagination(input.Page, input.Limit)
		result, err := h.filtersService.DesignationByID(c.Context(), input, page, limit)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return pagedSuccess(c, "Designation fetched successfully", result)
	})
}

// HandleDesignationsByDept lists a department's designations.
func (h *FiltersHandler) HandleDesignationsByDept(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input filtersdto.DesignationsByDeptInput
		if err := parseInput(c, &input); err != nil {
			return basehdl.Failure(c, err)
		}
		page, limit := basehdl.ClampPagination(input.Page, input.Limit)
		result, err := h.filtersService.DesignationsByDept(c.Context(), input, page, limit)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return pagedSuccess(c, "Designations by department fetched successfully", result)
	})
}
