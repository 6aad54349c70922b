// Package requestsvc - data access for service request records.
package requestsvc

import (
	"fmt"

	models "gotask_backend/internal/api/request/models"
	basesvc "gotask_backend/internal/api/base/service"
	"gotask_backend/internal/common"
	"gotask_backend/internal/global"
)

// RequestService wraps the generic Mongo service for service requests.
type RequestService struct {
	*basesvc.BaseServiceMongoImpl[models.ServiceRequest]
}

// NewRequestService creates a RequestService bound to the requests collection.
func NewRequestService() (*RequestService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Requests)
	if !exist {
		return nil, fmt.Errorf("failed to get requests collection: %v", common.ErrNotFound)
	}
	return &RequestService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ServiceRequest](collection),
	}, nil
}
