// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/dental-site/models"
)

// defaultSundayHours is written when the Sunday hours field is left empty.
const defaultSundayHours = "Closed"

// Answers are the raw values collected by the form. Every field is
// trimmed before use. The yaml tags name the keys of an answers file.
type Answers struct {
	ClinicName  string `yaml:"clinicName"`
	Tagline     string `yaml:"tagline"`
	LogoInitial string `yaml:"logoInitial"`

	Phone  string `yaml:"phone"`
	Email  string `yaml:"email"`
	Street string `yaml:"street"`
	City   string `yaml:"city"`
	State  string `yaml:"state"`
	Zip    string `yaml:"zip"`

	WeekdayHours  string `yaml:"weekdayHours"`
	SaturdayHours string `yaml:"saturdayHours"`
	SundayHours   string `yaml:"sundayHours"`

	Facebook  string `yaml:"facebook"`
	Instagram string `yaml:"instagram"`
	Twitter   string `yaml:"twitter"`
	Youtube   string `yaml:"youtube"`
}

// ClinicOverride is the subset of models.ClinicConfig the generator
// produces. Its top-level keys replace the matching default blocks when
// the server resolves the inline override.
type ClinicOverride struct {
	Clinic  models.Clinic  `json:"clinic"`
	Contact models.Contact `json:"contact"`
	Social  models.Social  `json:"social"`
}

// Output is a rendered override.
type Output struct {
	// Minified fits a single environment variable (SITE_CLINIC_CONFIG).
	Minified string

	// Indented is suitable for a SITE_CLINIC_CONFIG_FILE.
	Indented string
}

// BuildOverride turns form answers into an override. The logo initial
// defaults to the upper-cased first letter of the clinic name, Sunday
// defaults to "Closed" and empty optional fields are omitted.
func BuildOverride(a Answers) (ClinicOverride, error) {
	a = a.trimmed()
	if a.ClinicName == "" {
		return ClinicOverride{}, ErrClinicNameRequired
	}

	initial := a.LogoInitial
	if initial == "" {
		initial = firstLetterUpper(a.ClinicName)
	}

	sunday := a.SundayHours
	if sunday == "" {
		sunday = defaultSundayHours
	}

	return ClinicOverride{
		Clinic: models.Clinic{
			Name:    a.ClinicName,
			Tagline: a.Tagline,
			Logo:    models.Logo{Initial: initial},
		},
		Contact: models.Contact{
			Phone: a.Phone,
			Email: a.Email,
			Address: models.Address{
				Street: a.Street,
				City:   a.City,
				State:  a.State,
				Zip:    a.Zip,
			},
			Hours: models.Hours{
				Weekdays: a.WeekdayHours,
				Saturday: a.SaturdayHours,
				Sunday:   sunday,
			},
		},
		Social: models.Social{
			Facebook:  a.Facebook,
			Instagram: a.Instagram,
			Twitter:   a.Twitter,
			Youtube:   a.Youtube,
		},
	}, nil
}

// Render encodes o both minified and indented with two spaces.
func Render(o ClinicOverride) (Output, error) {
	minified, err := encode(o, "")
	if err != nil {
		return Output{}, err
	}
	indented, err := encode(o, "  ")
	if err != nil {
		return Output{}, err
	}
	return Output{Minified: minified, Indented: indented}, nil
}

// Generate is BuildOverride followed by Render.
func Generate(a Answers) (Output, error) {
	o, err := BuildOverride(a)
	if err != nil {
		return Output{}, err
	}
	return Render(o)
}

func encode(o ClinicOverride, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(o); err != nil {
		return "", fmt.Errorf("error encoding clinic override: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func firstLetterUpper(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

func (a Answers) trimmed() Answers {
	for _, f := range a.fields() {
		*f = strings.TrimSpace(*f)
	}
	return a
}

// fields lists pointers to every answer in form order.
func (a *Answers) fields() []*string {
	return []*string{
		&a.ClinicName, &a.Tagline, &a.LogoInitial,
		&a.Phone, &a.Email,
		&a.Street, &a.City, &a.State, &a.Zip,
		&a.WeekdayHours, &a.SaturdayHours, &a.SundayHours,
		&a.Facebook, &a.Instagram, &a.Twitter, &a.Youtube,
	}
}
