// Package reportdto - request bodies for the admin dashboards.
package reportdto

// UserDashboardInput selects the staff member whose tickets are counted.
type UserDashboardInput struct {
	AssignedPersonID string `json:"AssignedPersonID"`
}
