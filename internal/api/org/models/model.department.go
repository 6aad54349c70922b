// Package models - department and designation lookup documents.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Department is an organizational department.
type Department struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrganizationID   string             `json:"OrganizationID" bson:"OrganizationID"`
	OrganizationName string             `json:"OrganizationName" bson:"OrganizationName"`
	DepartmentName   string             `json:"DepartmentName" bson:"DepartmentName"`
	IsActive         bool               `json:"isActive" bson:"isActive"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}
