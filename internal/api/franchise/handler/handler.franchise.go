// Package franchisehdl - HTTP handlers for franchise records.
package franchisehdl

import (
	"fmt"

	franchisedto "gotask_backend/internal/api/franchise/dto"
	franchisesvc "gotask_backend/internal/api/franchise/service"
	models "gotask_backend/internal/api/franchise/models"
	basehdl "gotask_backend/internal/api/base/handler"
)

// FranchiseHandler exposes the generic CRUD operations for franchises.
type FranchiseHandler struct {
	*basehdl.BaseHandler[models.Franchise, franchisedto.FranchiseCreateInput, franchisedto.FranchiseUpdateInput]
	franchiseService *franchisesvc.FranchiseService
}

// NewFranchiseHandler creates a FranchiseHandler with its service.
func NewFranchiseHandler() (*FranchiseHandler, error) {
	franchiseService, err := franchisesvc.NewFranchiseService()
	if err != nil {
		return nil, fmt.Errorf("failed to create franchise service: %w", err)
	}
	return &FranchiseHandler{
		BaseHandler:      basehdl.NewBaseHandler[models.Franchise, franchisedto.FranchiseCreateInput, franchisedto.FranchiseUpdateInput](franchiseService),
		franchiseService: franchiseService,
	}, nil
}
