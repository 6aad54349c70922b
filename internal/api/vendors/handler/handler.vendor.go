// Package vendorhdl - HTTP handlers for vendor records.
package vendorhdl

import (
	"fmt"

	vendordto "gotask_backend/internal/api/vendors/dto"
	vendorsvc "gotask_backend/internal/api/vendors/service"
	models "gotask_backend/internal/api/vendors/models"
	basehdl "gotask_backend/internal/api/base/handler"
)

// VendorHandler exposes the generic CRUD operations for vendors.
type VendorHandler struct {
	*basehdl.BaseHandler[models.Vendor, vendordto.VendorCreateInput, vendordto.VendorUpdateInput]
	vendorService *vendorsvc.VendorService
}

// NewVendorHandler creates a VendorHandler with its service.
func NewVendorHandler() (*VendorHandler, error) {
	vendorService, err := vendorsvc.NewVendorService()
	if err != nil {
		return nil, fmt.Errorf("failed to create vendor service: %w", err)
	}
	return &VendorHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.Vendor, vendordto.VendorCreateInput, vendordto.VendorUpdateInput](vendorService),
		vendorService: vendorService,
	}, nil
}
