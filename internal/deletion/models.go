// Package deletion holds the domain model for the pending-deletion workflow:
// the open deletion request, the identifying data record it targets, and the
// per-study policy that decides how a deletion may proceed.
package deletion

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// RoleDataProtection is the administrative role required to request or
// confirm a deletion. The role vocabulary is owned by the identity
// collaborator; this is the one value custodia checks.
const RoleDataProtection = "data-protection"

// PendingDeletion is an open, unconfirmed deletion request. At most one open
// request exists per subject; the store enforces that with a unique
// constraint on SubjectID.
type PendingDeletion struct {
	ID           uuid.UUID `json:"id"`
	StudyName    string    `json:"studyName"`
	SubjectID    string    `json:"subjectId"`
	RequestedBy  string    `json:"requestedBy"`
	RequestedFor string    `json:"requestedFor"`
	RequestedAt  time.Time `json:"requestedAt"`
}

// PersonalData is the identifying record for one subject. Every attribute is
// optional; a missing row is a valid state (never collected, or purged).
type PersonalData struct {
	SubjectID   string  `json:"subjectId"`
	StudyName   string  `json:"studyName"`
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Street      *string `json:"street,omitempty"`
	PostalCode  *string `json:"postalCode,omitempty"`
	City        *string `json:"city,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	MobilePhone *string `json:"mobilePhone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Comment     *string `json:"comment,omitempty"`
}

// CreateRequest is the inbound shape for requesting a deletion.
type CreateRequest struct {
	SubjectID    string `json:"subjectId"`
	RequestedFor string `json:"requestedFor"`
}

// StudyPolicy carries the raw deletion flags of a study as published by the
// policy directory.
type StudyPolicy struct {
	AllowsOpposition bool `json:"allowsOpposition"`
	RequiresFourEyes bool `json:"requiresFourEyes"`
}

// Mode is the deletion path derived from a study's policy flags. The flags
// are resolved once here; call sites branch on the mode only.
type Mode string

const (
	// ModeNoOpposition forbids personal-data deletion for the study entirely.
	ModeNoOpposition Mode = "no_opposition"
	// ModeSingleActor purges immediately on request, no confirmation.
	ModeSingleActor Mode = "single_actor"
	// ModeFourEyes requires a second, distinct actor to confirm the purge.
	ModeFourEyes Mode = "four_eyes"
)

// Mode resolves the policy flags into a deletion mode.
func (p StudyPolicy) Mode() Mode {
	switch {
	case !p.AllowsOpposition:
		return ModeNoOpposition
	case p.RequiresFourEyes:
		return ModeFourEyes
	default:
		return ModeSingleActor
	}
}

// Actor is the authenticated caller of the administrative API.
type Actor struct {
	Email   string
	Studies []string
	Role    string
}

// HasStudy reports whether the actor may operate on the given study.
func (a Actor) HasStudy(studyName string) bool {
	return slices.Contains(a.Studies, studyName)
}

// IsParty reports whether the actor is one of the two parties on a request.
func (a Actor) IsParty(pd *PendingDeletion) bool {
	return a.Email == pd.RequestedBy || a.Email == pd.RequestedFor
}
