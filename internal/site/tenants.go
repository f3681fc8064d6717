package site

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/dental-site/models"
)

//go:embed tenants/*.yaml
var tenantFiles embed.FS

// Registry maps tenant ids to their full clinic configuration. It is
// populated once and never modified afterwards.
type Registry struct {
	tenants map[string]models.ClinicConfig
}

// NewRegistry builds a Registry from an explicit map. The map is copied.
func NewRegistry(tenants map[string]models.ClinicConfig) *Registry {
	r := &Registry{tenants: make(map[string]models.ClinicConfig, len(tenants))}
	for id, cfg := range tenants {
		r.tenants[id] = cfg.Clone()
	}
	return r
}

// LoadRegistry builds the Registry from the tenant files compiled into the
// binary. The file name without extension is the tenant id.
func LoadRegistry() (*Registry, error) {
	return loadRegistry(tenantFiles, "tenants")
}

func loadRegistry(fsys fs.FS, dir string) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("error listing tenant files: %w", err)
	}

	tenants := make(map[string]models.ClinicConfig, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".yaml" {
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("error reading tenant file %s: %w", name, err)
		}

		var cfg models.ClinicConfig
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrInvalidTenantFile, name, err)
		}

		tenants[strings.TrimSuffix(name, ".yaml")] = cfg
	}

	return &Registry{tenants: tenants}, nil
}

// Lookup returns the configuration registered under id.
func (r *Registry) Lookup(id string) (models.ClinicConfig, bool) {
	if r == nil {
		return models.ClinicConfig{}, false
	}
	cfg, ok := r.tenants[id]
	if !ok {
		return models.ClinicConfig{}, false
	}
	return cfg.Clone(), true
}

// IDs returns the registered tenant ids in sorted order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, 0, len(r.tenants))
	for id := range r.tenants {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
