// Package filtersdto - request bodies for the filter dashboard endpoints.
package filtersdto

// Paging carries the body-supplied pagination fields shared by every
// filter endpoint. Values are clamped, never rejected.
type Paging struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

// DashboardInput filters today's requests for one franchise.
type DashboardInput struct {
	AssignedFranchiseId string `json:"AssignedFranchiseId" validate:"required"`
	FromDate            string `json:"fromDate" validate:"required"`
	ToDate              string `json:"toDate" validate:"required"`
	Paging
}

// AreaRequestsInput scopes the area breakdown to one franchise territory.
type AreaRequestsInput struct {
	AssignedFranchiseStateID    string `json:"AssignedFranchiseStateID" validate:"required"`
	AssignedFranchiseDistrictID string `json:"AssignedFranchiseDistrictID" validate:"required"`
	AssignedFranchiseId         string `json:"AssignedFranchiseId" validate:"required"`
	Paging
}

// CategoryWiseInput bounds the category breakdown by date.
type CategoryWiseInput struct {
	FromDate string `json:"fromDate" validate:"required"`
	ToDate   string `json:"toDate" validate:"required"`
	Paging
}

// FranchiseComplaintsInput filters raised complaints for one franchise.
type FranchiseComplaintsInput struct {
	AssignedFranchiseId string `json:"AssignedFranchiseId" validate:"required"`
	FromDate            string `json:"fromDate" validate:"required"`
	ToDate              string `json:"toDate" validate:"required"`
	Paging
}

// FranchiseCountInput selects the state whose districts are counted.
type FranchiseCountInput struct {
	State string `json:"state" validate:"required"`
	Paging
}

// DistrictFranchisersInput scopes the franchiser dropdown to a district.
type DistrictFranchisersInput struct {
	AssignedFranchiseStateID    string `json:"AssignedFranchiseStateID" validate:"required"`
	AssignedFranchiseDistrictID string `json:"AssignedFranchiseDistrictID" validate:"required"`
	Paging
}

// AreaComplaintsInput scopes the complaint counts to one franchise territory.
type AreaComplaintsInput struct {
	AssignedFranchiseId         string `json:"AssignedFranchiseId" validate:"required"`
	AssignedFranchiseStateID    string `json:"AssignedFranchiseStateID" validate:"required"`
	AssignedFranchiseDistrictID string `json:"AssignedFranchiseDistrictID" validate:"required"`
	Paging
}

// DepartmentByIDInput looks up a single department record.
type DepartmentByIDInput struct {
	DepartmentID string `json:"DepartmentID" validate:"required,object_id"`
	Paging
}

// DepartmentsByOrgInput lists the departments of one organization.
type DepartmentsByOrgInput struct {
	OrganizationID string `json:"OrganizationID" validate:"required"`
	Paging
}

// DesignationByIDInput looks up a single designation record.
type DesignationByIDInput struct {
	DesignationID string `json:"DesignationID" validate:"required,object_id"`
	Paging
}

// DesignationsByDeptInput lists the designations of one department.
type DesignationsByDeptInput struct {
	DepartmentID string `json:"DepartmentID" validate:"required"`
	Paging
}
