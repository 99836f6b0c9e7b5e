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

package registry

import (
	"reflect"

	"github.com/NVIDIA/unitframe/pkg/units"
)

// UnitDescriptor identifies one concrete unit and the kind it belongs to.
// Descriptors are immutable once published.
type UnitDescriptor struct {
	// Unit is the unit enum value.
	Unit units.Unit

	// Info carries the unit's names and scale.
	Info units.UnitInfo

	// Kind is the kind the unit belongs to.
	Kind *KindDescriptor
}

// Name returns the unit name, e.g. "Meter".
func (d *UnitDescriptor) Name() string {
	return d.Info.Name
}

// Abbreviation returns the unit abbreviation, e.g. "m".
func (d *UnitDescriptor) Abbreviation() string {
	return d.Info.Abbreviation
}

// QualifiedName returns "<Kind>.<Unit>", e.g. "Length.Meter".
func (d *UnitDescriptor) QualifiedName() string {
	return d.Kind.Name() + "." + d.Info.Name
}

func (d *UnitDescriptor) String() string {
	return d.Info.Name
}

// Same reports whether d and other describe the same unit value.
func (d *UnitDescriptor) Same(other *UnitDescriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Unit == other.Unit
}

// KindDescriptor identifies a kind of measurement and the Go type that
// represents its quantities.
type KindDescriptor struct {
	// Info lists the kind's units and conversions.
	Info *units.KindInfo

	// ValueType is the quantity representation type.
	ValueType reflect.Type

	// BuiltIn is true for kinds from the units catalog.
	BuiltIn bool
}

// Name returns the kind name.
func (k *KindDescriptor) Name() string {
	return k.Info.Name
}

// Contains reports whether u is a unit of the kind.
func (k *KindDescriptor) Contains(u units.Unit) bool {
	if u == nil || reflect.TypeOf(u) != k.Info.UnitType {
		return false
	}
	_, ok := k.Info.Unit(u)
	return ok
}

func (k *KindDescriptor) String() string {
	return k.Info.Name
}
