// Package router registers the filter dashboard routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	filtershdl "gotask_backend/internal/api/filters/handler"
	"gotask_backend/internal/api/middleware"
	apirouter "gotask_backend/internal/api/router"
)

// Register mounts the filter routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := filtershdl.NewFiltersHandler()
	if err != nil {
		return fmt.Errorf("failed to create filters handler: %w", err)
	}

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	routes := []struct {
		path    string
		handler fiber.Handler
	}{
		{"/dashboard", handler.HandleDashboard},
		{"/dashboard/area-requests", handler.HandleAreaRequests},
		{"/dashboard/category-wise", handler.HandleCategoryWise},
		{"/dashboard/franchise-complaints", handler.HandleFranchiseComplaints},
		{"/dashboard/franchise-count", handler.HandleFranchiseCount},
		{"/area-complaints-count", handler.HandleAreaComplaints},
		{"/dropdown/district-franchisers", handler.HandleDistrictFranchisers},
		{"/department/by-id", handler.HandleDepartmentByID},
		{"/departments/by-org", handler.HandleDepartmentsByOrg},
		{"/designation/by-id", handler.HandleDesignationByID},
		{"/designations/by-dept", handler.HandleDesignationsByDept},
	}
	for _, route := range routes {
		if err := apirouter.RegisterRouteWithMiddleware(v1, "/filters", "POST", route.path, auth, route.handler); err != nil {
			return err
		}
	}
	return nil
}
