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
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	cnserrors "github.com/NVIDIA/unitframe/pkg/errors"
	"github.com/NVIDIA/unitframe/pkg/registry"
	"github.com/NVIDIA/unitframe/pkg/units"
)

// FieldMetadata is the resolved quantity metadata of one member.
// Published instances are never modified; use Clone to derive a variant.
type FieldMetadata struct {
	// Accessor reads the member.
	Accessor *Accessor

	// Unit is the declared unit, nil when absent.
	Unit *registry.UnitDescriptor

	// Conversions is the ordered allow-list of target units.
	Conversions []*registry.UnitDescriptor

	// Kind is the quantity value type hint carried from the annotation.
	Kind reflect.Type

	// DisplayName is a human readable label.
	DisplayName string

	// Culture is the culture the metadata was resolved for.
	Culture language.Tag
}

// Name returns the member name.
func (f *FieldMetadata) Name() string {
	return f.Accessor.Name
}

// HasUnit reports whether the declared unit resolved.
func (f *FieldMetadata) HasUnit() bool {
	return f.Unit != nil
}

// Validate checks the member's value type can hold a quantity value.
func (f *FieldMetadata) Validate() error {
	if units.IsQuantityValueType(f.Accessor.Type) {
		return nil
	}
	return TypeIncompatible(f.Accessor, f.Accessor.Type)
}

// CanConvertTo returns the allow-list entry matching u by unit identity.
func (f *FieldMetadata) CanConvertTo(u units.Unit) (*registry.UnitDescriptor, bool) {
	if u == nil || !reflect.TypeOf(u).Comparable() {
		return nil, false
	}
	for _, c := range f.Conversions {
		if c.Unit == u {
			return c, true
		}
	}
	return nil, false
}

// CloneOption overrides one property of a cloned FieldMetadata.
type CloneOption func(*FieldMetadata)

// WithAccessor replaces the accessor.
func WithAccessor(a *Accessor) CloneOption {
	return func(f *FieldMetadata) { f.Accessor = a }
}

// WithUnit replaces the declared unit.
func WithUnit(u *registry.UnitDescriptor) CloneOption {
	return func(f *FieldMetadata) { f.Unit = u }
}

// WithConversions replaces the allow-list.
func WithConversions(c ...*registry.UnitDescriptor) CloneOption {
	return func(f *FieldMetadata) { f.Conversions = c }
}

// WithDisplayName replaces the display name.
func WithDisplayName(name string) CloneOption {
	return func(f *FieldMetadata) { f.DisplayName = name }
}

// WithFieldCulture replaces the culture.
func WithFieldCulture(tag language.Tag) CloneOption {
	return func(f *FieldMetadata) { f.Culture = tag }
}

// Clone returns a copy of f with opts applied.
func (f *FieldMetadata) Clone(opts ...CloneOption) *FieldMetadata {
	c := *f
	c.Conversions = append([]*registry.UnitDescriptor(nil), f.Conversions...)
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Annotation converts the metadata back into the annotation it describes.
func (f *FieldMetadata) Annotation() Annotation {
	a := Annotation{Kind: f.Kind, DisplayName: f.DisplayName}
	if f.Unit != nil {
		a.Unit = f.Unit.Unit
	}
	for _, c := range f.Conversions {
		a.Conversions = append(a.Conversions, c.Unit)
	}
	return a
}

type fieldView struct {
	Name          string   `json:"name" yaml:"name"`
	DisplayName   string   `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	DeclaringType string   `json:"declaringType" yaml:"declaringType"`
	ValueType     string   `json:"valueType" yaml:"valueType"`
	Getter        bool     `json:"getter,omitempty" yaml:"getter,omitempty"`
	Kind          string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Unit          string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Abbreviation  string   `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	Conversions   []string `json:"conversions,omitempty" yaml:"conversions,omitempty"`
}

func (f *FieldMetadata) view() fieldView {
	v := fieldView{
		Name:          f.Accessor.Name,
		DisplayName:   f.DisplayName,
		DeclaringType: f.Accessor.DeclaringType.String(),
		ValueType:     f.Accessor.Type.String(),
		Getter:        f.Accessor.method,
	}
	if f.Unit != nil {
		v.Kind = f.Unit.Kind.Name()
		v.Unit = f.Unit.Name()
		v.Abbreviation = f.Unit.Abbreviation()
	}
	for _, c := range f.Conversions {
		v.Conversions = append(v.Conversions, c.Name())
	}
	return v
}

// MarshalJSON encodes a read-only summary of the metadata.
func (f *FieldMetadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.view())
}

// MarshalYAML encodes a read-only summary of the metadata.
func (f *FieldMetadata) MarshalYAML() (any, error) {
	return f.view(), nil
}

// TypeIncompatible returns the error reported when a member of type t cannot
// hold a quantity value.
func TypeIncompatible(a *Accessor, t reflect.Type) error {
	return cnserrors.NewWithContext(cnserrors.ErrCodeTypeIncompatible,
		fmt.Sprintf("%s type of %s is not compatible with units.QuantityValue.", a.Path(), t),
		map[string]any{"type": a.DeclaringType.String(), "field": a.Name, "valueType": t.String()})
}

// DisplayName derives a label from a Go identifier, e.g. "FreeSpace" becomes
// "Free Space".
func DisplayName(name string, culture language.Tag) string {
	return cases.Title(culture, cases.NoLower).String(splitWords(name))
}

func splitWords(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && boundary(runes, i) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func boundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	switch {
	case cur == '_' || prev == '_':
		return false
	case unicode.IsUpper(cur) && unicode.IsLower(prev):
		return true
	case unicode.IsUpper(cur) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		return true
	case unicode.IsDigit(cur) && unicode.IsLetter(prev):
		return true
	default:
		return false
	}
}
