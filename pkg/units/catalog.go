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
	"math"
	"reflect"
	"strings"
	"sync"

	cnserrors "github.com/NVIDIA/unitframe/pkg/errors"
)

var measureType = reflect.TypeFor[Measure]()

// Built-in quantity kinds.
var (
	Length = NewKind("Length", Meter, measureType,
		Linear(Meter, "Meters", "m", 1),
		Linear(Decimeter, "Decimeters", "dm", 1e-1),
		Linear(Centimeter, "Centimeters", "cm", 1e-2),
		Linear(Millimeter, "Millimeters", "mm", 1e-3),
		Linear(Kilometer, "Kilometers", "km", 1e3),
		Linear(Inch, "Inches", "in", 0.0254),
		Linear(Foot, "Feet", "ft", 0.3048),
		Linear(Yard, "Yards", "yd", 0.9144),
		Linear(Mile, "Miles", "mi", 1609.344),
	)

	Mass = NewKind("Mass", Kilogram, measureType,
		Linear(Kilogram, "Kilograms", "kg", 1),
		Linear(Gram, "Grams", "g", 1e-3),
		Linear(Milligram, "Milligrams", "mg", 1e-6),
		Linear(Tonne, "Tonnes", "t", 1e3),
		Linear(Pound, "Pounds", "lb", 0.45359237),
		Linear(Ounce, "Ounces", "oz", 0.028349523125),
	)

	Volume = NewKind("Volume", CubicMeter, measureType,
		Linear(CubicMeter, "CubicMeters", "m³", 1),
		Linear(CubicDecimeter, "CubicDecimeters", "dm³", 1e-3),
		Linear(CubicCentimeter, "CubicCentimeters", "cm³", 1e-6),
		Linear(Liter, "Liters", "l", 1e-3),
		Linear(Milliliter, "Milliliters", "ml", 1e-6),
		Linear(CubicFoot, "CubicFeet", "ft³", 0.028316846592),
		Linear(CubicInch, "CubicInches", "in³", 1.6387064e-5),
		Linear(UsGallon, "UsGallons", "gal (U.S.)", 0.003785411784),
	)

	Information = NewKind("Information", Bit, measureType,
		Linear(Bit, "Bits", "b", 1),
		Linear(Byte, "Bytes", "B", 8),
		Linear(Kilobit, "Kilobits", "kb", 1e3),
		Linear(Kilobyte, "Kilobytes", "kB", 8e3),
		Linear(Megabyte, "Megabytes", "MB", 8e6),
		Linear(Gigabyte, "Gigabytes", "GB", 8e9),
		Linear(Terabyte, "Terabytes", "TB", 8e12),
		Linear(Kibibyte, "Kibibytes", "KiB", 8*1024),
		Linear(Mebibyte, "Mebibytes", "MiB", 8*1024*1024),
		Linear(Gibibyte, "Gibibytes", "GiB", 8*1024*1024*1024),
		Linear(Gibibit, "Gibibits", "Gib", 1024*1024*1024),
	)

	Power = NewKind("Power", Watt, measureType,
		Linear(Watt, "Watts", "W", 1),
		Linear(Kilowatt, "Kilowatts", "kW", 1e3),
		Linear(MechanicalHorsepower, "MechanicalHorsepower", "hp(I)", 745.69987158227022),
		Linear(MetricHorsepower, "MetricHorsepower", "hp(M)", 735.49875),
	)

	Torque = NewKind("Torque", NewtonMeter, measureType,
		Linear(NewtonMeter, "NewtonMeters", "N·m", 1),
		Linear(PoundForceFoot, "PoundForceFeet", "lbf·ft", 1.3558179483314004),
		Linear(KilogramForceMeter, "KilogramForceMeters", "kgf·m", 9.80665),
	)

	RotationalSpeed = NewKind("RotationalSpeed", RadianPerSecond, measureType,
		Linear(RadianPerSecond, "RadiansPerSecond", "rad/s", 1),
		Linear(RevolutionPerMinute, "RevolutionsPerMinute", "rpm", 2*math.Pi/60),
		Linear(RevolutionPerSecond, "RevolutionsPerSecond", "r/s", 2*math.Pi),
		Linear(DegreePerSecond, "DegreesPerSecond", "°/s", math.Pi/180),
	)

	Angle = NewKind("Angle", Radian, measureType,
		Linear(Radian, "Radians", "rad", 1),
		Linear(Degree, "Degrees", "°", math.Pi/180),
		Linear(Gradian, "Gradians", "g", math.Pi/200),
		Linear(Revolution, "Revolutions", "r", 2*math.Pi),
	)

	Speed = NewKind("Speed", MeterPerSecond, measureType,
		Linear(MeterPerSecond, "MetersPerSecond", "m/s", 1),
		Linear(KilometerPerHour, "KilometersPerHour", "km/h", 1/3.6),
		Linear(MilePerHour, "MilesPerHour", "mph", 0.44704),
		Linear(Knot, "Knots", "kn", 1852.0/3600),
		Linear(Mach, "Mach", "M", 340.29),
	)

	Frequency = NewKind("Frequency", Hertz, measureType,
		Linear(Hertz, "Hertz", "Hz", 1),
		Linear(Kilohertz, "Kilohertz", "kHz", 1e3),
		Linear(Megahertz, "Megahertz", "MHz", 1e6),
		Linear(CyclePerMinute, "CyclesPerMinute", "cpm", 1.0/60),
	)

	Temperature = NewKind("Temperature", Kelvin, measureType,
		Linear(Kelvin, "Kelvins", "K", 1),
		Affine(DegreeCelsius, "DegreesCelsius", "°C", 1, 273.15),
		Affine(DegreeFahrenheit, "DegreesFahrenheit", "°F", 5.0/9, 459.67*5/9),
		Linear(DegreeRankine, "DegreesRankine", "°R", 5.0/9),
	)

	Pressure = NewKind("Pressure", Pascal, measureType,
		Linear(Pascal, "Pascals", "Pa", 1),
		Linear(Kilopascal, "Kilopascals", "kPa", 1e3),
		Linear(Bar, "Bars", "bar", 1e5),
		Linear(Millibar, "Millibars", "mbar", 1e2),
		Linear(Atmosphere, "Atmospheres", "atm", 101325),
		Linear(PoundForcePerSquareInch, "PoundsForcePerSquareInch", "psi", 6894.757293168361),
	)

	Ratio = NewKind("Ratio", DecimalFraction, measureType,
		Linear(DecimalFraction, "DecimalFractions", "", 1),
		Linear(Percent, "Percent", "%", 1e-2),
		Linear(PartPerThousand, "PartsPerThousand", "‰", 1e-3),
		Linear(PartPerMillion, "PartsPerMillion", "ppm", 1e-6),
	)

	ElectricPotential = NewKind("ElectricPotential", Volt, measureType,
		Linear(Volt, "Volts", "V", 1),
		Linear(Millivolt, "Millivolts", "mV", 1e-3),
		Linear(Kilovolt, "Kilovolts", "kV", 1e3),
	)

	MassFlow = NewKind("MassFlow", GramPerSecond, measureType,
		Linear(GramPerSecond, "GramsPerSecond", "g/s", 1),
		Linear(KilogramPerSecond, "KilogramsPerSecond", "kg/s", 1e3),
		Linear(KilogramPerHour, "KilogramsPerHour", "kg/h", 1e3/3600),
		Linear(PoundPerHour, "PoundsPerHour", "lb/h", 453.59237/3600),
	)

	Duration = NewKind("Duration", Second, measureType,
		Linear(Second, "Seconds", "s", 1),
		Linear(Millisecond, "Milliseconds", "ms", 1e-3),
		Linear(Microsecond, "Microseconds", "µs", 1e-6),
		Linear(Minute, "Minutes", "min", 60),
		Linear(Hour, "Hours", "h", 3600),
	)

	FuelEfficiency = NewKind("FuelEfficiency", LiterPer100Kilometers, measureType,
		Linear(LiterPer100Kilometers, "LitersPer100Kilometers", "l/100km", 1),
		Inverse(KilometerPerLiter, "KilometersPerLiter", "km/l", 100),
		Inverse(MilePerUsGallon, "MilesPerUsGallon", "mpg (U.S.)", 235.214583),
		Inverse(MilePerUkGallon, "MilesPerUkGallon", "mpg (imp.)", 282.480936),
	)

	Scalar = NewKind("Scalar", Amount, measureType,
		Linear(Amount, "Amount", "", 1),
	)
)

var builtins = []*KindInfo{
	Length,
	Mass,
	Volume,
	Information,
	Power,
	Torque,
	RotationalSpeed,
	Angle,
	Speed,
	Frequency,
	Temperature,
	Pressure,
	Ratio,
	ElectricPotential,
	MassFlow,
	Duration,
	FuelEfficiency,
	Scalar,
}

type catalogIndex struct {
	byUnit     map[Unit]*KindInfo
	byUnitType map[reflect.Type]*KindInfo
	byName     map[string]*KindInfo
	unitByName map[string]Unit
}

var index = sync.OnceValue(func() *catalogIndex {
	idx := &catalogIndex{
		byUnit:     make(map[Unit]*KindInfo),
		byUnitType: make(map[reflect.Type]*KindInfo, len(builtins)),
		byName:     make(map[string]*KindInfo, len(builtins)),
		unitByName: make(map[string]Unit),
	}
	for _, k := range builtins {
		idx.byUnitType[k.UnitType] = k
		idx.byName[k.Name] = k
		for _, u := range k.Units {
			idx.byUnit[u.Value] = k
			idx.unitByName[u.Name] = u.Value
			idx.unitByName[k.Name+"."+u.Name] = u.Value
		}
	}
	return idx
})

// Infos returns the built-in quantity kinds.
func Infos() []*KindInfo {
	infos := make([]*KindInfo, len(builtins))
	copy(infos, builtins)
	return infos
}

// IsBuiltIn reports whether k is one of the built-in kinds.
func IsBuiltIn(k *KindInfo) bool {
	if k == nil {
		return false
	}
	return index().byName[k.Name] == k
}

// Lookup finds the built-in kind and unit info for u.
func Lookup(u Unit) (*KindInfo, UnitInfo, bool) {
	if u == nil || !reflect.TypeOf(u).Comparable() {
		return nil, UnitInfo{}, false
	}
	k, ok := index().byUnit[u]
	if !ok {
		return nil, UnitInfo{}, false
	}
	info, _ := k.Unit(u)
	return k, info, true
}

// KindOf returns the built-in kind whose unit enum type is t.
func KindOf(t reflect.Type) (*KindInfo, bool) {
	k, ok := index().byUnitType[t]
	return k, ok
}

// KindByName returns the built-in kind with the given name.
func KindByName(name string) (*KindInfo, bool) {
	k, ok := index().byName[name]
	return k, ok
}

// ParseUnit resolves a built-in unit by name ("Meter") or kind-qualified
// name ("Length.Meter").
func ParseUnit(name string) (Unit, bool) {
	u, ok := index().unitByName[strings.TrimSpace(name)]
	return u, ok
}

// From creates a built-in quantity of value in unit u.
// It reports false when u is not a built-in unit.
func From(value float64, u Unit) (Quantity, bool) {
	k, _, ok := Lookup(u)
	if !ok {
		return nil, false
	}
	return Measure{value: value, unit: u, kind: k}, true
}

// Convert converts value between two built-in units of the same kind.
func Convert(value float64, from, to Unit) (float64, error) {
	fromKind, _, ok := Lookup(from)
	if !ok {
		return 0, UnknownKind(from)
	}
	toKind, _, ok := Lookup(to)
	if !ok {
		return 0, UnknownKind(to)
	}
	if fromKind != toKind {
		return 0, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("cannot convert %s to %s: units are of different kinds", from, to),
			map[string]any{"unit": from.String(), "target": to.String()})
	}
	return fromKind.Convert(value, from, to)
}

// UnknownKind returns the error reported for a unit value whose type belongs
// to no known kind.
func UnknownKind(u Unit) error {
	name := "<nil>"
	if u != nil {
		name = reflect.TypeOf(u).Name()
	}
	return cnserrors.NewWithContext(cnserrors.ErrCodeUnknownKind,
		fmt.Sprintf("%s is not a known unit type.", name),
		map[string]any{"unit": fmt.Sprint(u)})
}
