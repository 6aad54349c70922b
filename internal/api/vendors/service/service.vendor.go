// Package vendorsvc - data access for vendor records.
package vendorsvc

import (
	"fmt"

	models "gotask_backend/internal/api/vendors/models"
	basesvc "gotask_backend/internal/api/base/service"
	"gotask_backend/internal/common"
	"gotask_backend/internal/global"
)

// VendorService wraps the generic Mongo service for vendors.
type VendorService struct {
	*basesvc.BaseServiceMongoImpl[models.Vendor]
}

// NewVendorService creates a VendorService bound to the vendors collection.
func NewVendorService() (*VendorService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Vendors)
	if !exist {
		return nil, fmt.Errorf("failed to get vendors collection: %v", common.ErrNotFound)
	}
	return &VendorService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Vendor](collection),
	}, nil
}
