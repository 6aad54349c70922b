// Package orgdto - request bodies for department and designation records.
package orgdto

// DepartmentCreateInput is the insert body for a department.
type DepartmentCreateInput struct {
	OrganizationID   string `json:"OrganizationID" validate:"required"`
	OrganizationName string `json:"OrganizationName" validate:"required"`
	DepartmentName   string `json:"DepartmentName" validate:"required"`
	IsActive         bool   `json:"isActive"`
}

// DepartmentUpdateInput carries the partial-update fields for a department.
type DepartmentUpdateInput struct {
	OrganizationID   *string `json:"OrganizationID,omitempty"`
	OrganizationName *string `json:"OrganizationName,omitempty"`
	DepartmentName   *string `json:"DepartmentName,omitempty"`
	IsActive         *bool   `json:"isActive,omitempty"`
}

// DesignationCreateInput is the insert body for a designation.
type DesignationCreateInput struct {
	OrganizationID   string `json:"OrganizationID" validate:"required"`
	OrganizationName string `json:"OrganizationName" validate:"required"`
	DepartmenID      string `json:"DepartmenID" validate:"required"`
	DepartmentName   string `json:"DepartmentName"`
	DesignationName  string `json:"DesignationName" validate:"required"`
	IsActive         bool   `json:"isActive"`
}

// DesignationUpdateInput carries the partial-update fields for a designation.
type DesignationUpdateInput struct {
	OrganizationID   *string `json:"OrganizationID,omitempty"`
	OrganizationName *string `json:"OrganizationName,omitempty"`
	DepartmenID      *string `json:"DepartmenID,omitempty"`
	DepartmentName   *string `json:"DepartmentName,omitempty"`
	DesignationName  *string `json:"DesignationName,omitempty"`
	IsActive         *bool   `json:"isActive,omitempty"`
}
