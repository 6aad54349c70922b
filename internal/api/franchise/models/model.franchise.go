// Package models - franchise documents.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FranchiseEmployee is one employee embedded on a franchise record.
type FranchiseEmployee struct {
	EmployeeName          string    `json:"EmployeeName" bson:"EmployeeName"`
	Age                   string    `json:"Age" bson:"Age"`
	DOB                   string    `json:"DOB" bson:"DOB"`
	Gender                string    `json:"Gender" bson:"Gender"`
	EmployeeContactNumber int64     `json:"EmployeeContactNumber" bson:"EmployeeContactNumber"`
	Address               string    `json:"Address" bson:"Address"`
	City                  string    `json:"City" bson:"City"`
	State                 string    `json:"State" bson:"State"`
	District              string    `json:"District" bson:"District"`
	Town                  string    `json:"Town" bson:"Town"`
	PinCode               int64     `json:"PinCode" bson:"PinCode"`
	RegisteredDate        time.Time `json:"RegisteredDate" bson:"RegisteredDate"`
	Experience            int64     `json:"Experience" bson:"Experience"`
	CategoryId            string    `json:"CategoryId" bson:"CategoryId"`
	CategoryName          string    `json:"CategoryName" bson:"CategoryName"`
	JobRoleName           string    `json:"JobRoleName" bson:"JobRoleName"`
	Status                string    `json:"Status" bson:"Status"`
}

// FranchisePinCode maps one serviced area to its pincode.
type FranchisePinCode struct {
	Area    string `json:"Area" bson:"Area"`
	Pincode int64  `json:"Pincode" bson:"Pincode"`
}

// GeoLocation is a GeoJSON point.
type GeoLocation struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// Franchise is an area franchise with its embedded employees and served
// pincodes.
type Franchise struct {
	ID                 primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	FranchiseOwnerName string              `json:"FranchiseOwnerName" bson:"FranchiseOwnerName"`
	FranchiseName      string              `json:"FranchiseName" bson:"FranchiseName"`
	PrimaryNumber      string              `json:"PrimaryNumber" bson:"PrimaryNumber"`
	SecondaryNumber    string              `json:"SecondaryNumber" bson:"SecondaryNumber"`
	Gender             string              `json:"Gender" bson:"Gender"`
	Email              string              `json:"Email" bson:"Email"`
	StoreLocation      *GeoLocation        `json:"StoreLocation,omitempty" bson:"StoreLocation,omitempty"`
	StoreAddress       string              `json:"StoreAddress" bson:"StoreAddress"`
	FranchiseCode      string              `json:"FranchiseCode" bson:"FranchiseCode"`
	IsActive           bool                `json:"isActive" bson:"isActive"`
	StateID            string              `json:"StateID" bson:"StateID"`
	State              string              `json:"State" bson:"State"`
	DistrictID         string              `json:"DistrictID" bson:"DistrictID"`
	District           string              `json:"District" bson:"District"`
	Town               string              `json:"Town" bson:"Town"`
	Area               string              `json:"Area" bson:"Area"`
	Pin                int64               `json:"Pin" bson:"Pin"`
	Balance            float64             `json:"Balance" bson:"Balance"`
	IsProfileUpdated   bool                `json:"isProfileUpdated" bson:"isProfileUpdated"`
	FranchiseShare     float64             `json:"FranchiseShare" bson:"FranchiseShare"`
	EmployeeData       []FranchiseEmployee `json:"EmployeeData" bson:"EmployeeData"`
	PinCodes           []FranchisePinCode  `json:"PinCodes" bson:"PinCodes"`
	CreatedAt          time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt" bson:"updatedAt"`
}
