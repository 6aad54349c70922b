// Package models - service request documents.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment status values stored on a request.
const (
	PaymentStatusSuccess = "Success"
	PaymentStatusFailed  = "Failed"
)

// Vendor category values used across requests and vendors.
const (
	CategoryCarWash = "CarWash"
	CategoryTowing  = "Towing"
)

// Complaint ticket statuses.
const (
	TicketStatusOpen               = "Open"
	TicketStatusClosed             = "Closed"
	TicketStatusWaitingForApproval = "Waiting For Approval"
	TicketStatusRefundApprovals    = "Refund Approvals"
)

// RequestedService is one line item on a request.
type RequestedService struct {
	TypeID          string  `json:"TypeID" bson:"TypeID"`
	TypeName        string  `json:"TypeName" bson:"TypeName"`
	CategoryID      string  `json:"CategoryID" bson:"CategoryID"`
	CategoryName    string  `json:"CategoryName" bson:"CategoryName"`
	SubCategoryID   string  `json:"SubCategoryID" bson:"SubCategoryID"`
	SubCategoryName string  `json:"SubCategoryName" bson:"SubCategoryName"`
	Price           float64 `json:"Price" bson:"Price"`
	ComplaintID     string  `json:"ComplaintID" bson:"ComplaintID"`
	Complaint       string  `json:"Complaint" bson:"Complaint"`
	NoOfCount       string  `json:"NoOfCount" bson:"NoOfCount"`
}

// RaiseComplaint is the embedded complaint raised against a request.
type RaiseComplaint struct {
	ReasonType                string    `json:"ReasonType" bson:"ReasonType"`
	ReasonTypeID              string    `json:"ReasonTypeID" bson:"ReasonTypeID"`
	ComplaintRaisedPersonID   string    `json:"ComplaintRaisedPersonID" bson:"ComplaintRaisedPersonID"`
	ComplaintRaisedPersonName string    `json:"ComplaintRaisedPersonName" bson:"ComplaintRaisedPersonName"`
	ShortDesc                 string    `json:"ShortDesc" bson:"ShortDesc"`
	Status                    string    `json:"Status" bson:"Status"`
	RaisedDate                time.Time `json:"RaisedDate" bson:"RaisedDate"`
	AssignedPersonID          string    `json:"AssignedPersonID" bson:"AssignedPersonID"`
	AssignedPersonName        string    `json:"AssignedPersonName" bson:"AssignedPersonName"`
	AssignedDeptID            string    `json:"AssignedDeptID" bson:"AssignedDeptID"`
	AssignedDeptName          string    `json:"AssignedDeptName" bson:"AssignedDeptName"`
	TicketID                  string    `json:"TicketID" bson:"TicketID"`
}

// TicketAssignment is one assignment entry in the ticket history.
type TicketAssignment struct {
	AssignedPersonID   string    `json:"AssignedPersonID" bson:"AssignedPersonID"`
	AssignedPersonName string    `json:"AssignedPersonName" bson:"AssignedPersonName"`
	AssignedDeptID     string    `json:"AssignedDeptID" bson:"AssignedDeptID"`
	AssignedDeptName   string    `json:"AssignedDeptName" bson:"AssignedDeptName"`
	AssignedDate       time.Time `json:"AssignedDate" bson:"AssignedDate"`
	Comment            string    `json:"Comment" bson:"Comment"`
	CommentedDate      time.Time `json:"CommentedDate" bson:"CommentedDate"`
	Status             string    `json:"Status" bson:"Status"`
}

// StatusTracking is one status transition on a request.
type StatusTracking struct {
	CurrentStatus    string    `json:"CurrentStatus" bson:"CurrentStatus"`
	DateTime         time.Time `json:"DateTime" bson:"DateTime"`
	Note             string    `json:"Note" bson:"Note"`
	NotificationType string    `json:"NotificationType" bson:"NotificationType"`
	IsActive         bool      `json:"isActive" bson:"isActive"`
}

// ServiceRequest is a customer service request with its payment, franchise
// assignment and complaint state. VenodrName keeps the stored field's
// historical spelling.
type ServiceRequest struct {
	ID                            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerID                    string             `json:"CustomerID" bson:"CustomerID"`
	CustomerName                  string             `json:"CustomerName" bson:"CustomerName"`
	CustomerPhoneNumber           string             `json:"CustomerPhoneNumber" bson:"CustomerPhoneNumber"`
	TicketID                      string             `json:"TicketID" bson:"TicketID"`
	SourceAddress                 string             `json:"SourceAddress" bson:"SourceAddress"`
	Distance                      float64            `json:"Distance" bson:"Distance"`
	ServiceTax                    float64            `json:"ServiceTax" bson:"ServiceTax"`
	GST                           float64            `json:"GST" bson:"GST"`
	Price                         float64            `json:"Price" bson:"Price"`
	TotalAmount                   float64            `json:"TotalAmount" bson:"TotalAmount"`
	Note                          string             `json:"Note" bson:"Note"`
	CategoryID                    string             `json:"CategoryID" bson:"CategoryID"`
	CategoryName                  string             `json:"CategoryName" bson:"CategoryName"`
	VendorID                      string             `json:"VendorID" bson:"VendorID"`
	VenodrName                    string             `json:"VenodrName" bson:"VenodrName"`
	VendorPhoneNumber             string             `json:"VendorPhoneNumber" bson:"VendorPhoneNumber"`
	Services                      []RequestedService `json:"Services" bson:"Services"`
	AssignedFranchiseId           string             `json:"AssignedFranchiseId" bson:"AssignedFranchiseId"`
	AssignedFranchiseName         string             `json:"AssignedFranchiseName" bson:"AssignedFranchiseName"`
	AssignedFranchiseStateID      string             `json:"AssignedFranchiseStateID" bson:"AssignedFranchiseStateID"`
	AssignedFranchiseState        string             `json:"AssignedFranchiseState" bson:"AssignedFranchiseState"`
	AssignedFranchiseDistrictID   string             `json:"AssignedFranchiseDistrictID" bson:"AssignedFranchiseDistrictID"`
	AssignedFranchiseDistrictName string             `json:"AssignedFranchiseDistrictName" bson:"AssignedFranchiseDistrictName"`
	AssignedFranchiseArea         string             `json:"AssignedFranchiseArea" bson:"AssignedFranchiseArea"`
	AssignedFranchisePinCode      string             `json:"AssignedFranchisePinCode" bson:"AssignedFranchisePinCode"`
	RaisedComplaint               bool               `json:"RaisedComplaint" bson:"RaisedComplaint"`
	ComplaintRaised               bool               `json:"ComplaintRaised" bson:"ComplaintRaised"`
	Date                          time.Time          `json:"Date" bson:"Date"`
	PaymentStatus                 string             `json:"PaymentStatus" bson:"PaymentStatus"`
	RequestStatus                 string             `json:"RequestStatus" bson:"RequestStatus"`
	OrderID                       string             `json:"OrderID" bson:"OrderID"`
	StatusTracking                []StatusTracking   `json:"StatusTracking" bson:"StatusTracking"`
	RaiseComplaint                *RaiseComplaint    `json:"RaiseComplaint,omitempty" bson:"RaiseComplaint,omitempty"`
	TicketStatus                  []TicketAssignment `json:"TicketStatus" bson:"TicketStatus"`
	RequestType                   string             `json:"RequestType" bson:"RequestType"`
	RequestFrom                   string             `json:"RequestFrom" bson:"RequestFrom"`
	CreatedAt                     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt                     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
