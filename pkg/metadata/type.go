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
	"reflect"

	"golang.org/x/text/language"
)

// TypeMetadata is the ordered set of quantity members of one type.
type TypeMetadata struct {
	// Type is the resolved type.
	Type reflect.Type

	// Culture is the culture the metadata was resolved for.
	Culture language.Tag

	fields []*FieldMetadata
	index  map[string]int
}

func newTypeMetadata(t reflect.Type, culture language.Tag, fields []*FieldMetadata) *TypeMetadata {
	m := &TypeMetadata{
		Type:    t,
		Culture: culture,
		fields:  fields,
		index:   make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		m.index[f.Name()] = i
	}
	return m
}

// Field returns the metadata of the named member.
func (m *TypeMetadata) Field(name string) (*FieldMetadata, bool) {
	i, ok := m.index[name]
	if !ok {
		return nil, false
	}
	return m.fields[i], true
}

// Fields returns the members in order.
func (m *TypeMetadata) Fields() []*FieldMetadata {
	return append([]*FieldMetadata(nil), m.fields...)
}

// Names returns the member names in order.
func (m *TypeMetadata) Names() []string {
	names := make([]string, len(m.fields))
	for i, f := range m.fields {
		names[i] = f.Name()
	}
	return names
}

// Len returns the number of members.
func (m *TypeMetadata) Len() int {
	return len(m.fields)
}

// WithFields returns a copy of m holding fields instead.
func (m *TypeMetadata) WithFields(fields []*FieldMetadata) *TypeMetadata {
	return newTypeMetadata(m.Type, m.Culture, fields)
}

type typeView struct {
	Type    string           `json:"type" yaml:"type"`
	Culture string           `json:"culture" yaml:"culture"`
	Fields  []*FieldMetadata `json:"fields" yaml:"fields"`
}

func (m *TypeMetadata) view() typeView {
	return typeView{Type: m.Type.String(), Culture: m.Culture.String(), Fields: m.fields}
}

// MarshalJSON encodes the metadata as {"type", "culture", "fields"}.
func (m *TypeMetadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.view())
}

// MarshalYAML encodes the metadata as a type/culture/fields mapping.
func (m *TypeMetadata) MarshalYAML() (any, error) {
	return m.view(), nil
}
