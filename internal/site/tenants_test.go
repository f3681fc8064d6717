package site

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dental-site/models"
)

func TestLoadRegistry_ExampleTenant(t *testing.T) {
	r, err := LoadRegistry()
	require.NoError(t, err)

	assert.Contains(t, r.IDs(), "example")

	cfg, ok := r.Lookup("example")
	require.True(t, ok)

	assert.Equal(t, "Smith Dental Care", cfg.Clinic.Name)
	assert.Equal(t, "Your Family Dentist", cfg.Clinic.Tagline)
	assert.Equal(t, "S", cfg.Clinic.Logo.Initial)
	assert.Equal(t, "+1 (555) 123-4567", cfg.Contact.Phone)
	assert.Equal(t, "90001", cfg.Contact.Address.Zip)
	assert.Equal(t, "https://facebook.com/smithdental", cfg.Social.Facebook)
	assert.Empty(t, cfg.Social.Twitter)
	require.Len(t, cfg.Services, 1)
	assert.Equal(t, models.Service{
		Icon:        "Sparkles",
		Title:       "Teeth Whitening",
		Description: "Professional whitening treatments for a brighter smile.",
		Price:       "From $299",
		Popular:     true,
	}, cfg.Services[0])
	require.Len(t, cfg.Testimonials, 1)
	assert.Equal(t, "JD", cfg.Testimonials[0].Avatar)
	assert.Equal(t, []string{"Family-friendly environment", "Emergency appointments available", "Insurance accepted"},
		cfg.Content.About.Features)
	assert.Empty(t, cfg.BeforeAfter)
}

func TestLoadRegistry_UnknownFieldRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"tenants/bad.yaml": {Data: []byte("clinic:\n  nmae: Typo Dental\n")},
	}

	_, err := loadRegistry(fsys, "tenants")
	assert.ErrorIs(t, err, ErrInvalidTenantFile)
}

func TestLoadRegistry_SkipsOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"tenants/a.yaml":    {Data: []byte("clinic:\n  name: A\n")},
		"tenants/README.md": {Data: []byte("# tenants")},
	}

	r, err := loadRegistry(fsys, "tenants")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, r.IDs())
}

func TestRegistry_LookupMissing(t *testing.T) {
	r := NewRegistry(nil)
	_, ok := r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry_NilIsEmpty(t *testing.T) {
	var r *Registry
	_, ok := r.Lookup("example")
	assert.False(t, ok)
	assert.Empty(t, r.IDs())
}

func TestNewRegistry_CopiesInput(t *testing.T) {
	in := map[string]models.ClinicConfig{"a": Default()}
	r := NewRegistry(in)

	in["a"].Services[0].Title = "mutated"

	cfg, ok := r.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "Teeth Whitening", cfg.Services[0].Title)
}
