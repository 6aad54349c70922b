// Package orgsvc - data access for department and designation records.
package orgsvc

import (
	"fmt"

	models "gotask_backend/internal/api/org/models"
	basesvc "gotask_backend/internal/api/base/service"
	"gotask_backend/internal/common"
	"gotask_backend/internal/global"
)

// DepartmentService wraps the generic Mongo service for departments.
type DepartmentService struct {
	*basesvc.BaseServiceMongoImpl[models.Department]
}

// NewDepartmentService creates a DepartmentService bound to the departments collection.
func NewDepartmentService() (*DepartmentService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Departments)
	if !exist {
		return nil, fmt.Errorf("failed to get departments collection: %v", common.ErrNotFound)
	}
	return &DepartmentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Department](collection),
	}, nil
}

// DesignationService wraps the generic Mongo service for designations.
type DesignationService struct {
	*basesvc.BaseServiceMongoImpl[models.Designation]
}

// NewDesignationService creates a DesignationService bound to the designations collection.
func NewDesignationService() (*DesignationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Designations)
	if !exist {
		return nil, fmt.Errorf("failed to get designations collection: %v", common.ErrNotFound)
	}
	return &DesignationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Designation](collection),
	}, nil
}
