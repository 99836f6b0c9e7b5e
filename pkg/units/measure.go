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

package units

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Measure is the quantity representation shared by all built-in kinds.
// The zero value has no kind and no unit.
type Measure struct {
	value float64
	unit  Unit
	kind  *KindInfo
}

// Value returns the numeric value in the measure's unit.
func (m Measure) Value() float64 { return m.value }

// Unit returns the unit the value is expressed in.
func (m Measure) Unit() Unit { return m.unit }

// QuantityInfo returns the measure's kind.
func (m Measure) QuantityInfo() *KindInfo { return m.kind }

// As converts the measure to another unit of the same kind.
func (m Measure) As(to Unit) (Measure, error) {
	if m.kind == nil {
		return Measure{}, UnknownKind(m.unit)
	}
	v, err := m.kind.Convert(m.value, m.unit, to)
	if err != nil {
		return Measure{}, err
	}
	return Measure{value: v, unit: to, kind: m.kind}, nil
}

// String returns the value followed by the unit abbreviation, e.g. "1.5 m".
func (m Measure) String() string {
	return formatPlain(m)
}

type measureView struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
	Kind  string  `json:"kind,omitempty" yaml:"kind,omitempty"`
}

func (m Measure) view() measureView {
	v := measureView{Value: m.value}
	if m.unit != nil {
		v.Unit = m.unit.String()
	}
	if m.kind != nil {
		v.Kind = m.kind.Name
	}
	return v
}

// MarshalJSON encodes the measure as {"value":..., "unit":..., "kind":...}.
func (m Measure) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.view())
}

// MarshalYAML encodes the measure as a value/unit/kind mapping.
func (m Measure) MarshalYAML() (any, error) {
	return m.view(), nil
}

// UnmarshalJSON decodes a measure written by MarshalJSON. The unit must be a
// built-in unit name.
func (m *Measure) UnmarshalJSON(data []byte) error {
	var v measureView
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return m.fromView(v)
}

// UnmarshalYAML decodes a measure written by MarshalYAML.
func (m *Measure) UnmarshalYAML(node *yaml.Node) error {
	var v measureView
	if err := node.Decode(&v); err != nil {
		return err
	}
	return m.fromView(v)
}

func (m *Measure) fromView(v measureView) error {
	name := v.Unit
	if v.Kind != "" {
		name = v.Kind + "." + v.Unit
	}
	u, ok := ParseUnit(name)
	if !ok {
		return unknownUnitName(name)
	}
	k, _, _ := Lookup(u)
	*m = Measure{value: v.Value, unit: u, kind: k}
	return nil
}

func formatPlain(q Quantity) string {
	s := strconv.FormatFloat(q.Value(), 'g', -1, 64)
	if abbr := abbreviation(q); abbr != "" {
		return s + " " + abbr
	}
	return s
}

func abbreviation(q Quantity) string {
	k := q.QuantityInfo()
	if k == nil {
		return ""
	}
	info, ok := k.Unit(q.Unit())
	if !ok {
		return ""
	}
	return info.Abbreviation
}
