// Package reporthdl - HTTP handlers for the admin dashboards.
package reporthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	reportdto "gotask_backend/internal/api/report/dto"
	reportsvc "gotask_backend/internal/api/report/service"
	basehdl "gotask_backend/internal/api/base/handler"
	"gotask_backend/internal/common"
)

// DashboardHandler serves the admin metric endpoints.
type DashboardHandler struct {
	dashboardService *reportsvc.DashboardService
}

// NewDashboardHandler creates a DashboardHandler with its service.
func NewDashboardHandler() (*DashboardHandler, error) {
	dashboardService, err := reportsvc.NewDashboardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}
	return &DashboardHandler{dashboardService: dashboardService}, nil
}

// HandleDashboard returns the ten overview metric cards.
func (h *DashboardHandler) HandleDashboard(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		metrics, err := h.dashboardService.DashboardCards(c.Context())
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return basehdl.Success(c, common.StatusOK, "Dashboard data retrieved successfully", metrics)
	})
}

// HandleRevenueDashboard returns the six revenue metric cards.
func (h *DashboardHandler) HandleRevenueDashboard(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		metrics, err := h.dashboardService.RevenueMetrics(c.Context())
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return basehdl.Success(c, common.StatusOK, "Revenue dashboard data retrieved successfully", metrics)
	})
}

// HandleRevenueByVendor returns today's car wash revenue per vendor.
func (h *DashboardHandler) HandleRevenueByVendor(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		metrics, err := h.dashboardService.RevenueByVendor(c.Context())
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return basehdl.Success(c, common.StatusOK, "Revenue by vendor dashboard data retrieved successfully", metrics)
	})
}

func (h *DashboardHandler) parseAssignedPerson(c fiber.Ctx) (string, error) {
	var input reportdto.UserDashboardInput
	if len(c.Body()) > 0 {
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return "", err
		}
	}
	if input.AssignedPersonID == "" {
		return "", common.NewError(common.ErrCodeValidationInput, "AssignedPersonID is required", common.StatusBadRequest, nil)
	}
	return input.AssignedPersonID, nil
}

// HandleUserDashboard returns the five ticket cards for one staff member.
func (h *DashboardHandler) HandleUserDashboard(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		assignedPersonID, err := h.parseAssignedPerson(c)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		metrics, err := h.dashboardService.TicketMetrics(c.Context(), assignedPersonID)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return basehdl.Success(c, common.StatusOK, "User dashboard data retrieved successfully", metrics)
	})
}

// HandleUserTicketsByStatus returns the grouped ticket breakdown for one
// staff member.
func (h *DashboardHandler) HandleUserTicketsByStatus(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		assignedPersonID, err := h.parseAssignedPerson(c)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		metrics, err := h.dashboardService.TicketsByStatus(c.Context(), assignedPersonID)
		if err != nil {
			return basehdl.Failure(c, err)
		}
		return basehdl.Success(c, common.StatusOK, "Detailed user ticket breakdown retrieved successfully", metrics)
	})
}
