package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Designation is a job title inside a department. DepartmenID keeps the
// stored field's historical spelling.
type Designation struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrganizationID   string             `json:"OrganizationID" bson:"OrganizationID"`
	OrganizationName string             `json:"OrganizationName" bson:"OrganizationName"`
	DepartmenID      string             `json:"DepartmenID" bson:"DepartmenID"`
	DepartmentName   string             `json:"DepartmentName" bson:"DepartmentName"`
	DesignationName  string             `json:"DesignationName" bson:"DesignationName"`
	IsActive         bool               `json:"isActive" bson:"isActive"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}
