package model

// UserProfile describes an employee account as returned by the QDryClean API.
// Beyond display the rest of the system treats it as opaque.
type UserProfile struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Login     string `json:"login"`
	UserRole  string `json:"userRole"`
}
