// Package orghdl - HTTP handlers for department and designation records.
package orghdl

import (
	"fmt"

	orgdto "gotask_backend/internal/api/org/dto"
	orgsvc "gotask_backend/internal/api/org/service"
	models "gotask_backend/internal/api/org/models"
	basehdl "gotask_backend/internal/api/base/handler"
)

// DepartmentHandler exposes the generic CRUD operations for departments.
type DepartmentHandler struct {
	*basehdl.BaseHandler[models.Department, orgdto.DepartmentCreateInput, orgdto.DepartmentUpdateInput]
	departmentService *orgsvc.DepartmentService
}

// NewDepartmentHandler creates a DepartmentHandler with its service.
func NewDepartmentHandler() (*DepartmentHandler, error) {
	departmentService, err := orgsvc.NewDepartmentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create department service: %w", err)
	}
	return &DepartmentHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.Department, orgdto.DepartmentCreateInput, orgdto.DepartmentUpdateInput](departmentService),
		departmentService: departmentService,
	}, nil
}

// DesignationHandler exposes the generic CRUD operations for designations.
type DesignationHandler struct {
	*basehdl.BaseHandler[models.Designation, orgdto.DesignationCreateInput, orgdto.DesignationUpdateInput]
	designationService *orgsvc.DesignationService
}

// NewDesignationHandler creates a DesignationHandler with its service.
func NewDesignationHandler() (*DesignationHandler, error) {
	designationService, err := orgsvc.NewDesignationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create designation service: %w", err)
	}
	return &DesignationHandler{
		BaseHandler:        basehdl.NewBaseHandler[models.Designation, orgdto.DesignationCreateInput, orgdto.DesignationUpdateInput](designationService),
		designationService: designationService,
	}, nil
}
