// Package router registers the admin dashboard routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	reporthdl "gotask_backend/internal/api/report/handler"
	"gotask_backend/internal/api/middleware"
	apirouter "gotask_backend/internal/api/router"
)

// Register mounts the admin dashboard routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := reporthdl.NewDashboardHandler()
	if err != nil {
		return fmt.Errorf("failed to create dashboard handler: %w", err)
	}

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	routes := []struct {
		path    string
		handler fiber.Handler
	}{
		{"/dashboard", handler.HandleDashboard},
		{"/revenue-dashboard", handler.HandleRevenueDashboard},
		{"/revenue-by-vendor-dashboard", handler.HandleRevenueByVendor},
		{"/user-dashboard", handler.HandleUserDashboard},
		{"/user-tickets-by-status", handler.HandleUserTicketsByStatus},
	}
	for _, route := range routes {
		if err := apirouter.RegisterRouteWithMiddleware(v1, "/admin", "POST", route.path, auth, route.handler); err != nil {
			return err
		}
	}
	return nil
}
