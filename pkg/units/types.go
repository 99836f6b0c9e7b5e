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
	"fmt"
	"reflect"

	cnserrors "github.com/NVIDIA/unitframe/pkg/errors"
)

// Unit identifies one unit of measurement.
// Implementations are small comparable enum types, one type per quantity kind,
// so two units are the same unit exactly when they compare equal.
type Unit interface {
	fmt.Stringer
}

// KindProvider is implemented by quantity representations that can describe
// their own kind. The zero value must be usable as a receiver.
type KindProvider interface {
	QuantityInfo() *KindInfo
}

// Quantity is a numeric value tagged with the unit it is expressed in.
type Quantity interface {
	KindProvider
	Value() float64
	Unit() Unit
}

// UnitInfo describes one unit within a kind and how to scale values to and
// from the kind's base unit.
type UnitInfo struct {
	Value        Unit
	Name         string
	PluralName   string
	Abbreviation string

	toBase   func(float64) float64
	fromBase func(float64) float64
}

// ToBase scales v from this unit to the kind's base unit.
func (u UnitInfo) ToBase(v float64) float64 {
	if u.toBase == nil {
		return v
	}
	return u.toBase(v)
}

// FromBase scales v from the kind's base unit to this unit.
func (u UnitInfo) FromBase(v float64) float64 {
	if u.fromBase == nil {
		return v
	}
	return u.fromBase(v)
}

// Linear describes a unit that is a fixed multiple of the base unit:
// base = v * factor.
func Linear(value Unit, plural, abbreviation string, factor float64) UnitInfo {
	return UnitInfo{
		Value:        value,
		Name:         value.String(),
		PluralName:   plural,
		Abbreviation: abbreviation,
		toBase:       func(v float64) float64 { return v * factor },
		fromBase:     func(v float64) float64 { return v / factor },
	}
}

// Affine describes a unit with an offset from the base unit:
// base = v * factor + offset.
func Affine(value Unit, plural, abbreviation string, factor, offset float64) UnitInfo {
	return UnitInfo{
		Value:        value,
		Name:         value.String(),
		PluralName:   plural,
		Abbreviation: abbreviation,
		toBase:       func(v float64) float64 { return v*factor + offset },
		fromBase:     func(v float64) float64 { return (v - offset) / factor },
	}
}

// Inverse describes a unit that is inversely proportional to the base unit:
// base = k / v.
func Inverse(value Unit, plural, abbreviation string, k float64) UnitInfo {
	return UnitInfo{
		Value:        value,
		Name:         value.String(),
		PluralName:   plural,
		Abbreviation: abbreviation,
		toBase:       func(v float64) float64 { return k / v },
		fromBase:     func(v float64) float64 { return k / v },
	}
}

// KindInfo describes a kind of measurement: its units and the Go types used
// for its unit values and quantity instances.
type KindInfo struct {
	// Name is the kind name, e.g. "Length".
	Name string

	// BaseUnit is the unit every other unit scales through.
	BaseUnit Unit

	// UnitType is the enum type of the kind's unit values.
	UnitType reflect.Type

	// ValueType is the type used to represent quantities of this kind.
	ValueType reflect.Type

	// Units lists every unit of the kind, base unit included.
	Units []UnitInfo

	// New optionally constructs a quantity of this kind. Custom kinds that leave
	// it nil are constructed through a method on the ValueType zero value.
	New func(value float64, unit Unit) Quantity
}

// NewKind creates a KindInfo whose unit enum type is the type of base.
func NewKind(name string, base Unit, valueType reflect.Type, units ...UnitInfo) *KindInfo {
	return &KindInfo{
		Name:      name,
		BaseUnit:  base,
		UnitType:  reflect.TypeOf(base),
		ValueType: valueType,
		Units:     units,
	}
}

// Unit returns the UnitInfo for u.
func (k *KindInfo) Unit(u Unit) (UnitInfo, bool) {
	for _, info := range k.Units {
		if info.Value == u {
			return info, true
		}
	}
	return UnitInfo{}, false
}

// UnitByName returns the UnitInfo whose name matches name.
func (k *KindInfo) UnitByName(name string) (UnitInfo, bool) {
	for _, info := range k.Units {
		if info.Name == name {
			return info, true
		}
	}
	return UnitInfo{}, false
}

// UnitValues returns the unit values of the kind in declaration order.
func (k *KindInfo) UnitValues() []Unit {
	values := make([]Unit, len(k.Units))
	for i, info := range k.Units {
		values[i] = info.Value
	}
	return values
}

// Convert converts value from one unit of the kind to another.
// Converting to the same unit returns value unchanged.
func (k *KindInfo) Convert(value float64, from, to Unit) (float64, error) {
	fromInfo, ok := k.Unit(from)
	if !ok {
		return 0, UnknownUnit(from)
	}
	if from == to {
		return value, nil
	}
	toInfo, ok := k.Unit(to)
	if !ok {
		return 0, UnknownUnit(to)
	}
	return toInfo.FromBase(fromInfo.ToBase(value)), nil
}

// Validate checks the kind is internally consistent.
func (k *KindInfo) Validate() error {
	if k.Name == "" {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "quantity kind has no name")
	}
	if k.BaseUnit == nil || k.UnitType == nil {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("quantity kind %s has no base unit", k.Name))
	}
	if len(k.Units) == 0 {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("quantity kind %s has no units", k.Name))
	}
	if _, ok := k.Unit(k.BaseUnit); !ok {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("base unit %v is not a unit of %s", k.BaseUnit, k.Name))
	}
	seen := make(map[Unit]bool, len(k.Units))
	for _, info := range k.Units {
		if info.Value == nil || reflect.TypeOf(info.Value) != k.UnitType {
			return cnserrors.New(cnserrors.ErrCodeInvalidRequest,
				fmt.Sprintf("unit %v of %s is not a %s", info.Value, k.Name, k.UnitType.Name()))
		}
		if seen[info.Value] {
			return cnserrors.New(cnserrors.ErrCodeInvalidRequest,
				fmt.Sprintf("unit %v is declared twice in %s", info.Value, k.Name))
		}
		seen[info.Value] = true
	}
	return nil
}

func (k *KindInfo) String() string {
	return k.Name
}

// UnknownUnit returns the error reported for a unit value its kind does not
// list.
func UnknownUnit(u Unit) error {
	return cnserrors.NewWithContext(cnserrors.ErrCodeUnknownUnit,
		fmt.Sprintf("%s is not a known unit value.", QualifiedName(u)),
		map[string]any{"unit": fmt.Sprint(u)})
}

// QualifiedName returns "<UnitType>.<unit>", e.g. "LengthUnit.Meter".
func QualifiedName(u Unit) string {
	if u == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s.%s", reflect.TypeOf(u).Name(), u)
}
