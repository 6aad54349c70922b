// Package franchisedto - request bodies for franchise records.
package franchisedto

import models "gotask_backend/internal/api/franchise/models"

// FranchiseCreateInput is the insert body for a franchise record.
type FranchiseCreateInput struct {
	FranchiseOwnerName string                     `json:"FranchiseOwnerName" validate:"required"`
	FranchiseName      string                     `json:"FranchiseName" validate:"required"`
	PrimaryNumber      string                     `json:"PrimaryNumber" validate:"required,mobile_number"`
	SecondaryNumber    string                     `json:"SecondaryNumber" validate:"omitempty,mobile_number"`
	Gender             string                     `json:"Gender" validate:"omitempty,oneof=Male Female Other"`
	Email              string                     `json:"Email" validate:"omitempty,email"`
	StoreAddress       string                     `json:"StoreAddress"`
	FranchiseCode      string                     `json:"FranchiseCode"`
	StateID            string                     `json:"StateID"`
	State              string                     `json:"State"`
	DistrictID         string                     `json:"DistrictID"`
	District           string                     `json:"District"`
	Town               string                     `json:"Town"`
	Area               string                     `json:"Area"`
	Pin                int64                      `json:"Pin"`
	FranchiseShare     float64                    `json:"FranchiseShare"`
	EmployeeData       []models.FranchiseEmployee `json:"EmployeeData"`
	PinCodes           []models.FranchisePinCode  `json:"PinCodes"`
	IsActive           bool                       `json:"isActive"`
}

// FranchiseUpdateInput carries the partial-update fields for a franchise.
type FranchiseUpdateInput struct {
	FranchiseOwnerName *string                     `json:"FranchiseOwnerName,omitempty"`
	FranchiseName      *string                     `json:"FranchiseName,omitempty"`
	PrimaryNumber      *string                     `json:"PrimaryNumber,omitempty" validate:"omitempty,mobile_number"`
	SecondaryNumber    *string                     `json:"SecondaryNumber,omitempty" validate:"omitempty,mobile_number"`
	Email              *string                     `json:"Email,omitempty" validate:"omitempty,email"`
	StoreAddress       *string                     `json:"StoreAddress,omitempty"`
	StateID            *string                     `json:"StateID,omitempty"`
	State              *string                     `json:"State,omitempty"`
	DistrictID         *string                     `json:"DistrictID,omitempty"`
	District           *string                     `json:"District,omitempty"`
	Town               *string                     `json:"Town,omitempty"`
	Area               *string                     `json:"Area,omitempty"`
	Pin                *int64                      `json:"Pin,omitempty"`
	Balance            *float64                    `json:"Balance,omitempty"`
	IsProfileUpdated   *bool                       `json:"isProfileUpdated,omitempty"`
	FranchiseShare     *float64                    `json:"FranchiseShare,omitempty"`
	EmployeeData       *[]models.FranchiseEmployee `json:"EmployeeData,omitempty"`
	PinCodes           *[]models.FranchisePinCode  `json:"PinCodes,omitempty"`
	IsActive           *bool                       `json:"isActive,omitempty"`
}
