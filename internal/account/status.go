// Package account integrates with the external identity collaborator that
// owns account lifecycle state. Custodia drives status transitions but never
// stores them.
package account

// Status is an account lifecycle state owned by the identity collaborator.
type Status string

const (
	StatusActive              Status = "active"
	StatusDeactivated         Status = "deactivated"
	StatusDeactivationPending Status = "deactivation_pending"
	StatusNoAccount           Status = "no_account"
)

var validStatuses = map[Status]bool{
	StatusActive:              true,
	StatusDeactivated:         true,
	StatusDeactivationPending: true,
	StatusNoAccount:           true,
}

// IsValid checks if the status is one of the supported enum values.
func (s Status) IsValid() bool {
	return validStatuses[s]
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}
