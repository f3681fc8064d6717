package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dental-site/internal/site"
	"github.com/MKhiriev/dental-site/models"
)

// Section names accepted by SiteService.Section.
const (
	SectionClinic       = "clinic"
	SectionContact      = "contact"
	SectionSocial       = "social"
	SectionServices     = "services"
	SectionDoctors      = "doctors"
	SectionImages       = "images"
	SectionContent      = "content"
	SectionTestimonials = "testimonials"
	SectionBeforeAfter  = "before-after"
	SectionSEO          = "seo"
)

// Sections lists the section names in display order.
var Sections = []string{
	SectionClinic,
	SectionContact,
	SectionSocial,
	SectionServices,
	SectionDoctors,
	SectionImages,
	SectionContent,
	SectionTestimonials,
	SectionBeforeAfter,
	SectionSEO,
}

type siteService struct {
	accessor *site.Accessor
}

// NewSiteService returns a SiteService reading from accessor.
func NewSiteService(accessor *site.Accessor) SiteService {
	return &siteService{accessor: accessor}
}

func (s *siteService) Config(ctx context.Context) models.SiteView {
	return models.SiteView{
		ClinicConfig: s.accessor.Config(),
		Services:     s.accessor.Services(),
	}
}

func (s *siteService) Section(ctx context.Context, name string) (any, error) {
	cfg := s.accessor.Config()

	switch name {
	case SectionClinic:
		return cfg.Clinic, nil
	case SectionContact:
		return cfg.Contact, nil
	case SectionSocial:
		return cfg.Social, nil
	case SectionServices:
		return s.accessor.Services(), nil
	case SectionDoctors:
		return cfg.Doctors, nil
	case SectionImages:
		return cfg.Images, nil
	case SectionContent:
		return cfg.Content, nil
	case SectionTestimonials:
		return cfg.Testimonials, nil
	case SectionBeforeAfter, "beforeAfter":
		return cfg.BeforeAfter, nil
	case SectionSEO:
		if cfg.SEO == nil {
			return nil, fmt.Errorf("%w: %s", ErrSectionNotConfigured, name)
		}
		return cfg.SEO, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
}

func (s *siteService) Source(ctx context.Context) models.SourceInfo {
	return s.accessor.Source()
}

func (s *siteService) Icons(ctx context.Context) []models.IconInfo {
	icons := site.Icons()
	out := make([]models.IconInfo, 0, len(icons))
	for _, icon := range icons {
		out = append(out, models.IconInfo{Name: icon.String(), Default: icon == site.DefaultIcon})
	}
	return out
}
