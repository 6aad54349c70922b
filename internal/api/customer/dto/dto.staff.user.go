package customerdto

// SaveUserInput is the body of POST /customer/admin/users. Password is
// optional; a random one is generated and hashed when absent.
type SaveUserInput struct {
	FirstName             string `json:"FirstName" validate:"required,min=2,max=50"`
	LastName              string `json:"LastName" validate:"required,min=2,max=50"`
	PrimaryMobileNumber   string `json:"PrimaryMobileNumber" validate:"required,mobile_number"`
	SecondaryMobileNumber string `json:"SecondaryMobileNumber" validate:"omitempty,mobile_number"`
	Gender                string `json:"Gender" validate:"required,oneof=Male Female Other"`
	Email                 string `json:"Email" validate:"required,email"`
	Password              string `json:"Password" validate:"omitempty,min=6,max=20"`
	AddressOne            string `json:"AddressOne" validate:"omitempty,max=200"`
	AddressTwo            string `json:"AddressTwo" validate:"omitempty,max=200"`
	City                  string `json:"City" validate:"omitempty,max=100"`
	State                 string `json:"State" validate:"omitempty,max=100"`
	District              string `json:"District" validate:"omitempty,max=100"`
}

// ListUsersQuery is parsed from the query string of GET /customer/admin/users.
type ListUsersQuery struct {
	Page      int64
	Limit     int64
	SortBy    string
	SortOrder string
	Search    string
	IsActive  *bool
	Gender    string
	RoleID    string
	City      string
	State     string
	District  string
	From      string
	To        string
	Fields    string
}

// UpdateUserInput is the body of PUT /customer/admin/users/:id. Only the
// non-nil fields are written.
type UpdateUserInput struct {
	FirstName             *string `json:"FirstName,omitempty"`
	LastName              *string `json:"LastName,omitempty"`
	Email                 *string `json:"Email,omitempty" validate:"omitempty,email"`
	PrimaryMobileNumber   *string `json:"PrimaryMobileNumber,omitempty"`
	SecondaryMobileNumber *string `json:"SecondaryMobileNumber,omitempty"`
	Gender                *string `json:"Gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	DOB                   *string `json:"DOB,omitempty"`
	DOJ                   *string `json:"DOJ,omitempty"`
	AddressOne            *string `json:"AddressOne,omitempty"`
	AddressTwo            *string `json:"AddressTwo,omitempty"`
	City                  *string `json:"City,omitempty"`
	StateID               *string `json:"StateID,omitempty"`
	State                 *string `json:"State,omitempty"`
	DistrictID            *string `json:"DistrictID,omitempty"`
	District              *string `json:"District,omitempty"`
	ReportingManagerID    *string `json:"ReportingManagerID,omitempty"`
	ReportingManagerName  *string `json:"ReportingManagerName,omitempty"`
	RoleID                *string `json:"RoleID,omitempty"`
	RoleName              *string `json:"RoleName,omitempty"`
	IsActive              *bool   `json:"isActive,omitempty"`
}

// UsersByDepartmentInput is the body of POST /customer/admin/users/by-department.
// The request key keeps the historical spelling clients already send.
type UsersByDepartmentInput struct {
	DepartmenID string `json:"DepartmenID" validate:"required"`
	Page        int64  `json:"page"`
	Limit       int64  `json:"limit"`
}

// ManagersByDepartmentInput is the body of POST /customer/admin/managers/by-department.
type ManagersByDepartmentInput struct {
	DepartmenID string `json:"DepartmenID" validate:"required"`
	Fields      string `json:"fields"`
}
