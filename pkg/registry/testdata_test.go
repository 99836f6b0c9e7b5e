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

type CoolnessUnit int

const (
	Fonzie CoolnessUnit = iota + 1
	MegaFonzie
)

func (u CoolnessUnit) String() string {
	switch u {
	case Fonzie:
		return "Fonzie"
	case MegaFonzie:
		return "MegaFonzie"
	default:
		return "CoolnessUnit(?)"
	}
}

var coolnessInfo = units.NewKind("Coolness", Fonzie, reflect.TypeFor[Coolness](),
	units.Linear(Fonzie, "Fonzies", "F", 1),
	units.Linear(MegaFonzie, "MegaFonzies", "MF", 1e6),
)

// Coolness is discoverable through its zero value.
type Coolness struct {
	value float64
	unit  CoolnessUnit
}

func (c Coolness) Value() float64 { return c.value }
func (c Coolness) Unit() units.Unit { return c.unit }
func (Coolness) QuantityInfo() *units.KindInfo { return coolnessInfo }
func (Coolness) From(v float64, u CoolnessUnit) Coolness { return Coolness{value: v, unit: u} }

type OdorUnit int

const Stinky OdorUnit = 1

func (OdorUnit) String() string { return "Stinky" }

// Odor has a pointer receiver provider.
type Odor struct{}

var odorInfo = units.NewKind("Odor", Stinky, nil, units.Linear(Stinky, "Stinky", "st", 1))

func (*Odor) QuantityInfo() *units.KindInfo { return odorInfo }
