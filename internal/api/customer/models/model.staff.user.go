package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamDetail is one team membership embedded on a staff user.
type TeamDetail struct {
	TeamID   string `json:"TeamID" bson:"TeamID"`
	TeamName string `json:"TeamName" bson:"TeamName"`
}

// AAAUser is an internal staff account managed through the admin surface.
// Organization, department, designation and reporting manager are stored
// denormalized as ID+name pairs.
type AAAUser struct {
	ID                         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrganizationID             string             `json:"OrganizationID" bson:"OrganizationID"`
	OrganizationName           string             `json:"OrganizationName" bson:"OrganizationName"`
	DepartmentID               string             `json:"DepartmentID" bson:"DepartmentID"`
	DepartmentName             string             `json:"DepartmentName" bson:"DepartmentName"`
	DesignationID              string             `json:"DesignationID" bson:"DesignationID"`
	DesignationName            string             `json:"DesignationName" bson:"DesignationName"`
	TeamDetails                []TeamDetail       `json:"TeamDetails" bson:"TeamDetails"`
	FirstName                  string             `json:"FirstName" bson:"FirstName"`
	LastName                   string             `json:"LastName" bson:"LastName"`
	PrimaryMobileNumber        string             `json:"PrimaryMobileNumber" bson:"PrimaryMobileNumber"`
	SecondaryMobileNumber      string             `json:"SecondaryMobileNumber" bson:"SecondaryMobileNumber"`
	Gender                     string             `json:"Gender" bson:"Gender"`
	Email                      string             `json:"Email" bson:"Email"`
	DOB                        string             `json:"DOB" bson:"DOB"`
	DOJ                        string             `json:"DOJ" bson:"DOJ"`
	AddressOne                 string             `json:"AddressOne" bson:"AddressOne"`
	AddressTwo                 string             `json:"AddressTwo" bson:"AddressTwo"`
	City                       string             `json:"City" bson:"City"`
	StateID                    string             `json:"StateID" bson:"StateID"`
	State                      string             `json:"State" bson:"State"`
	DistrictID                 string             `json:"DistrictID" bson:"DistrictID"`
	District                   string             `json:"District" bson:"District"`
	ReportingManagerID         string             `json:"ReportingManagerID" bson:"ReportingManagerID"`
	ReportingManagerName       string             `json:"ReportingManagerName" bson:"ReportingManagerName"`
	ProfilePic                 string             `json:"ProfilePic" bson:"ProfilePic"`
	AdharNumber                string             `json:"AdharNumber" bson:"AdharNumber"`
	PanNumber                  string             `json:"PanNumber" bson:"PanNumber"`
	EmergencyContactNumber     int64              `json:"EmergencyContactNumber" bson:"EmergencyContactNumber"`
	EmergencyContactPersonName string             `json:"EmergencyContactPersonName" bson:"EmergencyContactPersonName"`
	RoleID                     string             `json:"RoleID" bson:"RoleID"`
	RoleName                   string             `json:"RoleName" bson:"RoleName"`
	Password                   string             `json:"-" bson:"Password,omitempty"`
	IsActive                   bool               `json:"isActive" bson:"isActive"`
	CreatedAt                  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt                  time.Time          `json:"updatedAt" bson:"updatedAt"`
}
