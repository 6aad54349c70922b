// Package vendordto - request bodies for vendor records.
package vendordto

import models "gotask_backend/internal/api/vendors/models"

// VendorCreateInput is the insert body for a vendor record.
type VendorCreateInput struct {
	CategoryID           string                 `json:"CategoryID" validate:"required"`
	CategoryName         string                 `json:"CategoryName" validate:"required,oneof=CarWash Towing"`
	CompanyName          string                 `json:"CompanyName" validate:"required"`
	FullName             string                 `json:"FullName" validate:"required"`
	Services             []models.VendorService `json:"Services"`
	PrimaryPhoneNumber   string                 `json:"PrimaryPhoneNumber" validate:"required,mobile_number"`
	SecondaryPhoneNumber string                 `json:"SecondaryPhoneNumber" validate:"omitempty,mobile_number"`
	Address              string                 `json:"Address"`
	PinCode              int64                  `json:"pinCode"`
	City                 string                 `json:"City"`
	State                string                 `json:"State"`
	Latitude             float64                `json:"Latitude"`
	Longitude            float64                `json:"Longitude"`
	IsActive             bool                   `json:"isActive"`
}

// VendorUpdateInput carries the partial-update fields for a vendor.
type VendorUpdateInput struct {
	CategoryID           *string                 `json:"CategoryID,omitempty"`
	CategoryName         *string                 `json:"CategoryName,omitempty" validate:"omitempty,oneof=CarWash Towing"`
	CompanyName          *string                 `json:"CompanyName,omitempty"`
	FullName             *string                 `json:"FullName,omitempty"`
	Services             *[]models.VendorService `json:"Services,omitempty"`
	PrimaryPhoneNumber   *string                 `json:"PrimaryPhoneNumber,omitempty" validate:"omitempty,mobile_number"`
	SecondaryPhoneNumber *string                 `json:"SecondaryPhoneNumber,omitempty" validate:"omitempty,mobile_number"`
	Address              *string                 `json:"Address,omitempty"`
	PinCode              *int64                  `json:"pinCode,omitempty"`
	City                 *string                 `json:"City,omitempty"`
	State                *string                 `json:"State,omitempty"`
	IsActive             *bool                   `json:"isActive,omitempty"`
	IsBankDetailsUpdated *bool                   `json:"isBankDetailsUpdated,omitempty"`
	BankName             *string                 `json:"BankName,omitempty"`
	Branch               *string                 `json:"Branch,omitempty"`
	Ifsccode             *string                 `json:"Ifsccode,omitempty"`
	AccountNumber        *string                 `json:"AccountNumber,omitempty"`
}
