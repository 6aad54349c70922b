// Package router registers the customer and staff administration routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	customerhdl "gotask_backend/internal/api/customer/handler"
	"gotask_backend/internal/api/middleware"
	apirouter "gotask_backend/internal/api/router"
)

// Register mounts the customer auth routes and staff admin routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	customerHandler, err := customerhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("failed to create customer handler: %w", err)
	}
	staffHandler, err := customerhdl.NewStaffHandler()
	if err != nil {
		return fmt.Errorf("failed to create staff handler: %w", err)
	}

	v1.Post("/customer/signup", customerHandler.HandleSignup)
	v1.Post("/customer/login", customerHandler.HandleLogin)
	v1.Post("/customer/admin/login", customerHandler.HandleAdminLogin)

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	routes := []struct {
		method  string
		path    string
		handler fiber.Handler
	}{
		{"POST", "/users", staffHandler.HandleSaveUser},
		{"GET", "/users", staffHandler.HandleListUsers},
		{"DELETE", "/users/:id", staffHandler.HandleDeleteUser},
		{"PUT", "/users/:id", staffHandler.HandleUpdateUser},
		{"POST", "/users/by-department", staffHandler.HandleUsersByDepartment},
		{"POST", "/managers/by-department", staffHandler.HandleManagersByDepartment},
	}
	for _, route := range routes {
		if err := apirouter.RegisterRouteWithMiddleware(v1, "/customer/admin", route.method, route.path, auth, route.handler); err != nil {
			return err
		}
	}

	return nil
}
