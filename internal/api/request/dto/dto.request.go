// Package requestdto - request bodies for service request records.
package requestdto

import (
	"time"

	models "gotask_backend/internal/api/request/models"
)

// RequestCreateInput is the insert body for a service request.
type RequestCreateInput struct {
	CustomerID                  string                    `json:"CustomerID" validate:"required"`
	CustomerName                string                    `json:"CustomerName" validate:"required"`
	CustomerPhoneNumber         string                    `json:"CustomerPhoneNumber" validate:"omitempty,mobile_number"`
	TicketID                    string                    `json:"TicketID"`
	SourceAddress               string                    `json:"SourceAddress"`
	Price                       float64                   `json:"Price"`
	TotalAmount                 float64                   `json:"TotalAmount"`
	CategoryID                  string                    `json:"CategoryID"`
	CategoryName                string                    `json:"CategoryName" validate:"required"`
	VendorID                    string                    `json:"VendorID"`
	VenodrName                  string                    `json:"VenodrName"`
	Services                    []models.RequestedService `json:"Services"`
	AssignedFranchiseId         string                    `json:"AssignedFranchiseId"`
	AssignedFranchiseName       string                    `json:"AssignedFranchiseName"`
	AssignedFranchiseStateID    string                    `json:"AssignedFranchiseStateID"`
	AssignedFranchiseState      string                    `json:"AssignedFranchiseState"`
	AssignedFranchiseDistrictID string                    `json:"AssignedFranchiseDistrictID"`
	AssignedFranchiseArea       string                    `json:"AssignedFranchiseArea"`
	Date                        time.Time                 `json:"Date"`
	PaymentStatus               string                    `json:"PaymentStatus" validate:"omitempty,oneof=Success Failed"`
	RequestStatus               string                    `json:"RequestStatus"`
	OrderID                     string                    `json:"OrderID"`
	RequestType                 string                    `json:"RequestType"`
	RequestFrom                 string                    `json:"RequestFrom"`
}

// RequestUpdateInput carries the partial-update fields for a request.
type RequestUpdateInput struct {
	PaymentStatus         *string                    `json:"PaymentStatus,omitempty" validate:"omitempty,oneof=Success Failed"`
	RequestStatus         *string                    `json:"RequestStatus,omitempty"`
	Price                 *float64                   `json:"Price,omitempty"`
	TotalAmount           *float64                   `json:"TotalAmount,omitempty"`
	Services              *[]models.RequestedService `json:"Services,omitempty"`
	RaisedComplaint       *bool                      `json:"RaisedComplaint,omitempty"`
	ComplaintRaised       *bool                      `json:"ComplaintRaised,omitempty"`
	RaiseComplaint        *models.RaiseComplaint     `json:"RaiseComplaint,omitempty"`
	TicketStatus          *[]models.TicketAssignment `json:"TicketStatus,omitempty"`
	AssignedFranchiseId   *string                    `json:"AssignedFranchiseId,omitempty"`
	AssignedFranchiseName *string                    `json:"AssignedFranchiseName,omitempty"`
	AssignedFranchiseArea *string                    `json:"AssignedFranchiseArea,omitempty"`
	Note                  *string                    `json:"Note,omitempty"`
}
