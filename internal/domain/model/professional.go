package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ProfessionalStatusApproved is the status of professionals listed in the public directory
const ProfessionalStatusApproved = "approved"

// Professional is a healthcare provider record served by the backend directory.
// The site only reads it; it is never mutated locally.
type Professional struct {
	ID              ID      `json:"id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Speciality      string  `json:"speciality"`
	ExperienceYears *Number `json:"experience_years,omitempty"`
	AreaOfExpertise string  `json:"area_of_expertise,omitempty"`
	ConsultingFees  Number  `json:"consulting_fees"`
	ProfilePhoto    string  `json:"profile_photo,omitempty"`
	Subdomain       string  `json:"subdomain"`
	ThemeColor      string  `json:"theme_color,omitempty"`
	Status          string  `json:"status,omitempty"`
}

// ID accepts both string and numeric identifiers.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid id %s: %w", data, err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

// Number decodes a JSON number or a numeric string such as "500.00".
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("invalid number %s: %w", data, err)
		}
		if raw == "" {
			*n = 0
			return nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", data, err)
	}
	*n = Number(f)
	return nil
}

// Float64 returns the value as a float64.
func (n Number) Float64() float64 {
	return float64(n)
}
