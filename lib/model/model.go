package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ---------------------------------------------------------------------------
// Registration Status
// ---------------------------------------------------------------------------

// RegistrationStatus describes where a registration request is in its
// processing lifecycle.
type RegistrationStatus string

const (
	StatusReceived   RegistrationStatus = "received"   // Stored, not yet looked at
	StatusProcessing RegistrationStatus = "processing" // Picked up by a reviewer
	StatusApproved   RegistrationStatus = "approved"
	StatusRejected   RegistrationStatus = "rejected"
	StatusCancelled  RegistrationStatus = "cancelled" // Withdrawn by the registrant
)

// Valid reports whether s is one of the defined lifecycle states.
func (s RegistrationStatus) Valid() bool {
	switch s {
	case StatusReceived, StatusProcessing, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// ---------------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------------

// Registration is a single voter registration request as stored by the
// service. The tracking identifier is not part of the record, it is the key
// the record is stored under.
type Registration struct {
	// Registrant
	GivenName   string `json:"given_name"`
	FamilyName  string `json:"family_name"`
	DateOfBirth string `json:"date_of_birth"` // ISO 8601 date (YYYY-MM-DD)
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`

	// Residence address
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`

	// Request
	Party       string             `json:"party,omitempty"`
	Status      RegistrationStatus `json:"status,omitempty"`
	SubmittedAt time.Time          `json:"submitted_at,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at,omitempty"`
}

// Validate checks that the registration carries every field the service
// requires before it is stored, and that the date of birth parses. A zero
// Status is allowed, it is stamped on submission.
func (r *Registration) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"given_name", r.GivenName},
		{"family_name", r.FamilyName},
		{"date_of_birth", r.DateOfBirth},
		{"street", r.Street},
		{"city", r.City},
		{"state", r.State},
		{"postal_code", r.PostalCode},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("registration: missing required field %s", field.name)
		}
	}

	if _, err := time.Parse("2006-01-02", r.DateOfBirth); err != nil {
		return fmt.Errorf("registration: invalid date_of_birth %q (expected YYYY-MM-DD)", r.DateOfBirth)
	}

	if r.Status != "" && !r.Status.Valid() {
		return fmt.Errorf("registration: invalid status %q", r.Status)
	}

	return nil
}

// Encode serializes the registration to the document bytes stored by the
// data service.
func (r *Registration) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// DecodeRegistration parses document bytes produced by Encode.
func DecodeRegistration(data []byte) (*Registration, error) {
	var r Registration
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("registration: failed to decode document: %w", err)
	}
	return &r, nil
}
