package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/dental-site/models"
)

var clinicConfigType = reflect.TypeOf(models.ClinicConfig{})

// mergeShallow replaces every top-level block of base that override names.
// A replaced block takes the override's value as is: absent nested fields
// become zero and a null block becomes the zero value. Blocks the override
// does not name keep base's value. Keys are matched exactly against the
// json tags at every depth; anything else in the override is ignored.
func mergeShallow(base models.ClinicConfig, override []byte) (models.ClinicConfig, error) {
	var patch map[string]json.RawMessage
	if err := json.Unmarshal(override, &patch); err != nil {
		return models.ClinicConfig{}, fmt.Errorf("%w: %w", ErrMalformedOverride, err)
	}
	if patch == nil {
		return models.ClinicConfig{}, fmt.Errorf("%w: not a JSON object", ErrMalformedOverride)
	}

	out := base.Clone()
	target := reflect.ValueOf(&out).Elem()

	for key, value := range patch {
		idx, ok := fieldByTag(clinicConfigType, key)
		if !ok {
			continue
		}
		field := target.Field(idx)

		exact, err := exactKeys(value, field.Type())
		if err != nil {
			return models.ClinicConfig{}, fmt.Errorf("%w: %s: %w", ErrMalformedOverride, key, err)
		}

		block := reflect.New(field.Type())
		dec := json.NewDecoder(bytes.NewReader(exact))
		if err := dec.Decode(block.Interface()); err != nil {
			return models.ClinicConfig{}, fmt.Errorf("%w: %s: %w", ErrMalformedOverride, key, err)
		}
		field.Set(block.Elem())
	}

	return out, nil
}

// exactKeys rewrites raw so that every object decoded into a struct keeps
// only the keys equal to one of that struct's json tag names. Values whose
// shape does not match t are returned unchanged for the decoder to reject.
func exactKeys(raw json.RawMessage, t reflect.Type) (json.RawMessage, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
			return raw, nil
		}
		kept := make(map[string]json.RawMessage, len(obj))
		for key, value := range obj {
			idx, ok := fieldByTag(t, key)
			if !ok {
				continue
			}
			v, err := exactKeys(value, t.Field(idx).Type)
			if err != nil {
				return nil, err
			}
			kept[key] = v
		}
		return json.Marshal(kept)

	case reflect.Slice, reflect.Array:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil || items == nil {
			return raw, nil
		}
		for i, item := range items {
			v, err := exactKeys(item, t.Elem())
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return json.Marshal(items)

	default:
		return raw, nil
	}
}

// fieldByTag returns the index of the exported field of t whose json tag
// name is exactly key.
func fieldByTag(t reflect.Type, key string) (int, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			continue
		}
		if name == key {
			return i, true
		}
	}
	return 0, false
}
