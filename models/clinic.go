// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ClinicConfig is the root record describing everything the brochure site
// renders for a single clinic: identity, contact data, services, staff,
// testimonials, before/after cases and page copy.
//
// Field values are trusted input from configuration authors; nothing in
// this record is validated. Top-level JSON keys are the unit of override
// merging (see package site).
type ClinicConfig struct {
	Clinic       Clinic            `json:"clinic" yaml:"clinic"`
	Contact      Contact           `json:"contact" yaml:"contact"`
	Social       Social            `json:"social" yaml:"social"`
	Services     []Service         `json:"services" yaml:"services"`
	Doctors      []Doctor          `json:"doctors" yaml:"doctors"`
	Images       Images            `json:"images" yaml:"images"`
	Content      Content           `json:"content" yaml:"content"`
	Testimonials []Testimonial     `json:"testimonials" yaml:"testimonials"`
	BeforeAfter  []BeforeAfterCase `json:"beforeAfter" yaml:"beforeAfter"`

	// SEO is optional page metadata. Nil means the presentation layer
	// derives titles from Clinic.
	SEO *SEO `json:"seo,omitempty" yaml:"seo,omitempty"`
}

// Clinic holds the identity block: display name, tagline and logo.
type Clinic struct {
	Name    string `json:"name" yaml:"name"`
	Tagline string `json:"tagline" yaml:"tagline"`
	Logo    Logo   `json:"logo" yaml:"logo"`
}

// Logo references either a full logo image or a single-letter initial
// used when no image is configured.
type Logo struct {
	// Initial is a single letter rendered inside the logo badge.
	Initial string `json:"initial" yaml:"initial"`

	// Full is an optional image path or URL.
	Full string `json:"full,omitempty" yaml:"full,omitempty"`
}

// Contact groups phone, email, postal address and opening hours.
type Contact struct {
	Phone   string  `json:"phone" yaml:"phone"`
	Email   string  `json:"email" yaml:"email"`
	Address Address `json:"address" yaml:"address"`
	Hours   Hours   `json:"hours" yaml:"hours"`
}

// Address is a postal address. Country is optional.
type Address struct {
	Street  string `json:"street" yaml:"street"`
	City    string `json:"city" yaml:"city"`
	State   string `json:"state" yaml:"state"`
	Zip     string `json:"zip" yaml:"zip"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

// Hours are business hours grouped by day-group. Weekdays is required;
// Saturday and Sunday are optional display strings.
type Hours struct {
	Weekdays string `json:"weekdays" yaml:"weekdays"`
	Saturday string `json:"saturday,omitempty" yaml:"saturday,omitempty"`
	Sunday   string `json:"sunday,omitempty" yaml:"sunday,omitempty"`
}

// Social holds optional per-platform profile links.
type Social struct {
	Facebook  string `json:"facebook,omitempty" yaml:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" yaml:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	Youtube   string `json:"youtube,omitempty" yaml:"youtube,omitempty"`
	Linkedin  string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
}

// Service is a single treatment offered by the clinic. It has no identity
// beyond its position in ClinicConfig.Services.
type Service struct {
	// Icon is a name from the icon registry (e.g. "Sparkles").
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`

	// Price is a display string such as "From $299" or "Complimentary".
	Price   string `json:"price" yaml:"price"`
	Popular bool   `json:"popular" yaml:"popular"`
}

// Doctor is a staff member shown in the about section.
type Doctor struct {
	Image       string `json:"image" yaml:"image"`
	Name        string `json:"name" yaml:"name"`
	Role        string `json:"role" yaml:"role"`
	Credentials string `json:"credentials" yaml:"credentials"`
}

// Images holds the page-level image references.
type Images struct {
	Hero           string `json:"hero" yaml:"hero"`
	ClinicInterior string `json:"clinicInterior" yaml:"clinicInterior"`
}

// Content holds the copy blocks of the hero, about and stats sections.
type Content struct {
	Hero  HeroContent  `json:"hero" yaml:"hero"`
	About AboutContent `json:"about" yaml:"about"`
	Stats StatsContent `json:"stats" yaml:"stats"`
}

// HeroContent is the hero section copy. Badge is optional.
type HeroContent struct {
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Badge    string `json:"badge,omitempty" yaml:"badge,omitempty"`
}

// AboutContent is the about section copy with its bullet features.
type AboutContent struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
}

// StatsContent holds the display strings of the trust bar counters.
type StatsContent struct {
	Patients     string `json:"patients" yaml:"patients"`
	Experience   string `json:"experience" yaml:"experience"`
	Satisfaction string `json:"satisfaction" yaml:"satisfaction"`
}

// Testimonial is a patient review. Rating is expected to be 1–5 but is
// not validated.
type Testimonial struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Location  string `json:"location" yaml:"location"`
	Rating    int    `json:"rating" yaml:"rating"`
	Text      string `json:"text" yaml:"text"`
	Treatment string `json:"treatment" yaml:"treatment"`

	// Avatar holds the reviewer's initials.
	Avatar string `json:"avatar" yaml:"avatar"`
}

// BeforeAfterCase is one entry of the before/after gallery.
type BeforeAfterCase struct {
	ID          int    `json:"id" yaml:"id"`
	Treatment   string `json:"treatment" yaml:"treatment"`
	Duration    string `json:"duration" yaml:"duration"`
	BeforeImage string `json:"beforeImage" yaml:"beforeImage"`
	AfterImage  string `json:"afterImage" yaml:"afterImage"`
	Description string `json:"description" yaml:"description"`
}

// SEO is optional page metadata.
type SEO struct {
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Clone returns a deep copy of c, so callers can hand out the value
// without sharing slice backing arrays.
func (c ClinicConfig) Clone() ClinicConfig {
	out := c
	out.Services = cloneSlice(c.Services)
	out.Doctors = cloneSlice(c.Doctors)
	out.Testimonials = cloneSlice(c.Testimonials)
	out.BeforeAfter = cloneSlice(c.BeforeAfter)
	out.Content.About.Features = cloneSlice(c.Content.About.Features)
	if c.SEO != nil {
		seo := *c.SEO
		seo.Keywords = cloneSlice(c.SEO.Keywords)
		out.SEO = &seo
	}
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
