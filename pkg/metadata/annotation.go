// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metadata

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/text/language"

	cnserrors "github.com/NVIDIA/unitframe/pkg/errors"
	"github.com/NVIDIA/unitframe/pkg/units"
)

// TagName is the struct tag key holding quantity annotations.
const TagName = "quantity"

// Annotation declares a field as a quantity.
type Annotation struct {
	// Unit is the declared unit. Nil marks a field whose unit is supplied
	// dynamically by a Provider.
	Unit units.Unit

	// Kind optionally names the quantity value type of a custom kind so it
	// can be discovered without prior registration.
	Kind reflect.Type

	// Conversions is the ordered allow-list of target units.
	Conversions []units.Unit

	// DisplayName overrides the generated display name.
	DisplayName string
}

// Schema maps field or getter names to their annotations.
type Schema map[string]Annotation

// SchemaProvider is implemented by types that declare their schema in code.
// QuantitySchema is called on the zero value.
type SchemaProvider interface {
	QuantitySchema() Schema
}

// Provider is implemented by types whose quantity metadata depends on the
// instance or culture. Returning false defers to the static metadata.
type Provider interface {
	QuantityMetadata(field string, culture language.Tag) (Annotation, bool)
}

var (
	schemaProviderType = reflect.TypeFor[SchemaProvider]()
)

// tagSpec is a parsed, not yet resolved, quantity struct tag.
type tagSpec struct {
	unit        string
	kind        string
	conversions []string
	display     string
}

// parseTag parses `<unit>[,kind=<Kind>][,convert=<unit>|<unit>][,display=<text>]`.
// ignore is true for "-".
func parseTag(owner reflect.Type, field, tag string) (spec tagSpec, ignore bool, err error) {
	tag = strings.TrimSpace(tag)
	if tag == "-" {
		return tagSpec{}, true, nil
	}

	parts := strings.Split(tag, ",")
	spec.unit = strings.TrimSpace(parts[0])
	for _, part := range parts[1:] {
		key, value, ok := strings.Cut(part, "=")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if !ok || value == "" {
			return tagSpec{}, false, invalidTag(owner, field, tag, fmt.Sprintf("option %q has no value", key))
		}
		switch key {
		case "kind":
			spec.kind = value
		case "convert":
			for _, name := range strings.Split(value, "|") {
				if name = strings.TrimSpace(name); name != "" {
					spec.conversions = append(spec.conversions, name)
				}
			}
		case "display":
			spec.display = value
		default:
			return tagSpec{}, false, invalidTag(owner, field, tag, fmt.Sprintf("unknown option %q", key))
		}
	}
	return spec, false, nil
}

func invalidTag(owner reflect.Type, field, tag, reason string) error {
	return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
		fmt.Sprintf("invalid quantity annotation on %s.%s: %s", owner.Name(), field, reason),
		map[string]any{"type": owner.String(), "field": field, "tag": tag})
}
