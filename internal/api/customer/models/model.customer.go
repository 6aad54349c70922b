// Package models - documents stored for the customer domain.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AAACustomer is a self-registered end customer account.
// Password holds the bcrypt hash and never serializes to JSON.
type AAACustomer struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"Name" bson:"Name"`
	Password         string             `json:"-" bson:"Password,omitempty"`
	MobileNumber     string             `json:"MobileNumber" bson:"MobileNumber"`
	Gender           string             `json:"Gender" bson:"Gender"`
	Email            string             `json:"Email" bson:"Email" index:"unique,sparse"`
	IsProfileUpdated bool               `json:"isProfileUpdated" bson:"isProfileUpdated"`
	Address          string             `json:"Address" bson:"Address"`
	IsActive         bool               `json:"isActive" bson:"isActive"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}
