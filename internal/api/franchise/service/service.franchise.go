// Package franchisesvc - data access for franchise records.
package franchisesvc

import (
	"fmt"

	models "gotask_backend/internal/api/franchise/models"
	basesvc "gotask_backend/internal/api/base/service"
	"gotask_backend/internal/common"
	"gotask_backend/internal/global"
)

// FranchiseService wraps the generic Mongo service for franchises.
type FranchiseService struct {
	*basesvc.BaseServiceMongoImpl[models.Franchise]
}

// NewFranchiseService creates a FranchiseService bound to the franchises collection.
func NewFranchiseService() (*FranchiseService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Franchises)
	if !exist {
		return nil, fmt.Errorf("failed to get franchises collection: %v", common.ErrNotFound)
	}
	return &FranchiseService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Franchise](collection),
	}, nil
}
