// Package models - vendor documents.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VendorService is one priced service offered by a vendor.
type VendorService struct {
	ServiceID   string `json:"ServiceID" bson:"ServiceID"`
	ServiceName string `json:"ServiceName" bson:"ServiceName"`
	TypeID      string `json:"TypeID" bson:"TypeID"`
	TypeName    string `json:"TypeName" bson:"TypeName"`
	Price       string `json:"Price" bson:"Price"`
	ImageURL    string `json:"imageURL" bson:"imageURL"`
}

// VendorPayment is one settlement entry on a vendor.
type VendorPayment struct {
	RequestID   string    `json:"RequestID" bson:"RequestID"`
	RequestDate time.Time `json:"RequestDate" bson:"RequestDate"`
	Amount      float64   `json:"Amount" bson:"Amount"`
	OrderID     string    `json:"OrderID" bson:"OrderID"`
	PaymentDate time.Time `json:"PaymentDate" bson:"PaymentDate"`
	Note        string    `json:"Note" bson:"Note"`
}

// Vendor is a service vendor with its category and offered services.
type Vendor struct {
	ID                    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CategoryID            string             `json:"CategoryID" bson:"CategoryID"`
	CategoryName          string             `json:"CategoryName" bson:"CategoryName"`
	CompanyName           string             `json:"CompanyName" bson:"CompanyName"`
	FullName              string             `json:"FullName" bson:"FullName"`
	Services              []VendorService    `json:"Services" bson:"Services"`
	PrimaryPhoneNumber    string             `json:"PrimaryPhoneNumber" bson:"PrimaryPhoneNumber"`
	SecondaryPhoneNumber  string             `json:"SecondaryPhoneNumber" bson:"SecondaryPhoneNumber"`
	Address               string             `json:"Address" bson:"Address"`
	PinCode               int64              `json:"pinCode" bson:"pinCode"`
	City                  string             `json:"City" bson:"City"`
	State                 string             `json:"State" bson:"State"`
	Latitude              float64            `json:"Latitude" bson:"Latitude"`
	Longitude             float64            `json:"Longitude" bson:"Longitude"`
	BussinessOpenHours    string             `json:"BussinessOpenHours" bson:"BussinessOpenHours"`
	BussinessClosingHours string             `json:"BussinessClosingHours" bson:"BussinessClosingHours"`
	Percentage            float64            `json:"Percentage" bson:"Percentage"`
	IsActive              bool               `json:"isActive" bson:"isActive"`
	IsBankDetailsUpdated  bool               `json:"isBankDetailsUpdated" bson:"isBankDetailsUpdated"`
	BankName              string             `json:"BankName" bson:"BankName"`
	Branch                string             `json:"Branch" bson:"Branch"`
	Ifsccode              string             `json:"Ifsccode" bson:"Ifsccode"`
	AccountNumber         string             `json:"AccountNumber" bson:"AccountNumber"`
	Payments              []VendorPayment    `json:"Payments" bson:"Payments"`
	CreatedAt             time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt" bson:"updatedAt"`
}
