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

package datalog

import (
	"fmt"
	"reflect"

	"golang.org/x/text/language"

	"github.com/NVIDIA/unitframe/pkg/registry"
	"github.com/NVIDIA/unitframe/pkg/units"
)

// AirFuelRatioUnit enumerates units of AirFuelRatio.
type AirFuelRatioUnit int

const (
	// Lambda is the ratio relative to stoichiometric.
	Lambda AirFuelRatioUnit = iota + 1
	// GasolineAirFuelRatio is the mass ratio for gasoline, 14.7 at lambda 1.
	GasolineAirFuelRatio
)

// StoichiometricGasoline is the gasoline air/fuel mass ratio at lambda 1.
const StoichiometricGasoline = 14.7

func (u AirFuelRatioUnit) String() string {
	switch u {
	case Lambda:
		return "Lambda"
	case GasolineAirFuelRatio:
		return "GasolineAirFuelRatio"
	default:
		return fmt.Sprintf("AirFuelRatioUnit(%d)", int(u))
	}
}

var airFuelRatioInfo = units.NewKind("AirFuelRatio", Lambda, reflect.TypeFor[AirFuelRatio](),
	units.Linear(Lambda, "Lambda", "λ", 1),
	units.Linear(GasolineAirFuelRatio, "GasolineAirFuelRatio", "AFR", 1/StoichiometricGasoline),
)

// AirFuelRatio is a quantity of the AirFuelRatio kind.
type AirFuelRatio struct {
	value float64
	unit  AirFuelRatioUnit
}

// NewAirFuelRatio returns value expressed in unit.
func NewAirFuelRatio(value float64, unit AirFuelRatioUnit) AirFuelRatio {
	return AirFuelRatio{value: value, unit: unit}
}

// From constructs an AirFuelRatio. It is found by the quantity engine when
// materializing values of this kind.
func (AirFuelRatio) From(value float64, unit AirFuelRatioUnit) AirFuelRatio {
	return NewAirFuelRatio(value, unit)
}

func (a AirFuelRatio) Value() float64 { return a.value }

func (a AirFuelRatio) Unit() units.Unit { return a.unit }

func (AirFuelRatio) QuantityInfo() *units.KindInfo { return airFuelRatioInfo }

func (a AirFuelRatio) String() string {
	return units.Format(a, language.Und)
}

// Register adds the datalog quantity kinds to reg so that struct tags and
// unit names can refer to them, e.g. "AirFuelRatio.Lambda".
func Register(reg *registry.Registry) error {
	return registry.RegisterKind[AirFuelRatio](reg)
}
