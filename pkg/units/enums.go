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

import "fmt"

// Unit enums start at one so the zero value of every enum is not a unit.

// LengthUnit enumerates units of Length.
type LengthUnit int

const (
	Meter LengthUnit = iota + 1
	Decimeter
	Centimeter
	Millimeter
	Kilometer
	Inch
	Foot
	Yard
	Mile
)

var lengthNames = []string{"", "Meter", "Decimeter", "Centimeter", "Millimeter", "Kilometer", "Inch", "Foot", "Yard", "Mile"}

func (u LengthUnit) String() string { return enumName(lengthNames, int(u), "LengthUnit") }

// MassUnit enumerates units of Mass.
type MassUnit int

const (
	Kilogram MassUnit = iota + 1
	Gram
	Milligram
	Tonne
	Pound
	Ounce
)

var massNames = []string{"", "Kilogram", "Gram", "Milligram", "Tonne", "Pound", "Ounce"}

func (u MassUnit) String() string { return enumName(massNames, int(u), "MassUnit") }

// VolumeUnit enumerates units of Volume.
type VolumeUnit int

const (
	CubicMeter VolumeUnit = iota + 1
	CubicDecimeter
	CubicCentimeter
	Liter
	Milliliter
	CubicFoot
	CubicInch
	UsGallon
)

var volumeNames = []string{"", "CubicMeter", "CubicDecimeter", "CubicCentimeter", "Liter", "Milliliter", "CubicFoot", "CubicInch", "UsGallon"}

func (u VolumeUnit) String() string { return enumName(volumeNames, int(u), "VolumeUnit") }

// InformationUnit enumerates units of Information.
type InformationUnit int

const (
	Bit InformationUnit = iota + 1
	Byte
	Kilobit
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Kibibyte
	Mebibyte
	Gibibyte
	Gibibit
)

var informationNames = []string{"", "Bit", "Byte", "Kilobit", "Kilobyte", "Megabyte", "Gigabyte", "Terabyte", "Kibibyte", "Mebibyte", "Gibibyte", "Gibibit"}

func (u InformationUnit) String() string { return enumName(informationNames, int(u), "InformationUnit") }

// PowerUnit enumerates units of Power.
type PowerUnit int

const (
	Watt PowerUnit = iota + 1
	Kilowatt
	MechanicalHorsepower
	MetricHorsepower
)

var powerNames = []string{"", "Watt", "Kilowatt", "MechanicalHorsepower", "MetricHorsepower"}

func (u PowerUnit) String() string { return enumName(powerNames, int(u), "PowerUnit") }

// TorqueUnit enumerates units of Torque.
type TorqueUnit int

const (
	NewtonMeter TorqueUnit = iota + 1
	PoundForceFoot
	KilogramForceMeter
)

var torqueNames = []string{"", "NewtonMeter", "PoundForceFoot", "KilogramForceMeter"}

func (u TorqueUnit) String() string { return enumName(torqueNames, int(u), "TorqueUnit") }

// RotationalSpeedUnit enumerates units of RotationalSpeed.
type RotationalSpeedUnit int

const (
	RadianPerSecond RotationalSpeedUnit = iota + 1
	RevolutionPerMinute
	RevolutionPerSecond
	DegreePerSecond
)

var rotationalSpeedNames = []string{"", "RadianPerSecond", "RevolutionPerMinute", "RevolutionPerSecond", "DegreePerSecond"}

func (u RotationalSpeedUnit) String() string {
	return enumName(rotationalSpeedNames, int(u), "RotationalSpeedUnit")
}

// AngleUnit enumerates units of Angle.
type AngleUnit int

const (
	Radian AngleUnit = iota + 1
	Degree
	Gradian
	Revolution
)

var angleNames = []string{"", "Radian", "Degree", "Gradian", "Revolution"}

func (u AngleUnit) String() string { return enumName(angleNames, int(u), "AngleUnit") }

// SpeedUnit enumerates units of Speed.
type SpeedUnit int

const (
	MeterPerSecond SpeedUnit = iota + 1
	KilometerPerHour
	MilePerHour
	Knot
	Mach
)

var speedNames = []string{"", "MeterPerSecond", "KilometerPerHour", "MilePerHour", "Knot", "Mach"}

func (u SpeedUnit) String() string { return enumName(speedNames, int(u), "SpeedUnit") }

// FrequencyUnit enumerates units of Frequency.
type FrequencyUnit int

const (
	Hertz FrequencyUnit = iota + 1
	Kilohertz
	Megahertz
	CyclePerMinute
)

var frequencyNames = []string{"", "Hertz", "Kilohertz", "Megahertz", "CyclePerMinute"}

func (u FrequencyUnit) String() string { return enumName(frequencyNames, int(u), "FrequencyUnit") }

// TemperatureUnit enumerates units of Temperature.
type TemperatureUnit int

const (
	Kelvin TemperatureUnit = iota + 1
	DegreeCelsius
	DegreeFahrenheit
	DegreeRankine
)

var temperatureNames = []string{"", "Kelvin", "DegreeCelsius", "DegreeFahrenheit", "DegreeRankine"}

func (u TemperatureUnit) String() string { return enumName(temperatureNames, int(u), "TemperatureUnit") }

// PressureUnit enumerates units of Pressure.
type PressureUnit int

const (
	Pascal PressureUnit = iota + 1
	Kilopascal
	Bar
	Millibar
	Atmosphere
	PoundForcePerSquareInch
)

var pressureNames = []string{"", "Pascal", "Kilopascal", "Bar", "Millibar", "Atmosphere", "PoundForcePerSquareInch"}

func (u PressureUnit) String() string { return enumName(pressureNames, int(u), "PressureUnit") }

// RatioUnit enumerates units of Ratio.
type RatioUnit int

const (
	DecimalFraction RatioUnit = iota + 1
	Percent
	PartPerThousand
	PartPerMillion
)

var ratioNames = []string{"", "DecimalFraction", "Percent", "PartPerThousand", "PartPerMillion"}

func (u RatioUnit) String() string { return enumName(ratioNames, int(u), "RatioUnit") }

// ElectricPotentialUnit enumerates units of ElectricPotential.
type ElectricPotentialUnit int

const (
	Volt ElectricPotentialUnit = iota + 1
	Millivolt
	Kilovolt
)

var electricPotentialNames = []string{"", "Volt", "Millivolt", "Kilovolt"}

func (u ElectricPotentialUnit) String() string {
	return enumName(electricPotentialNames, int(u), "ElectricPotentialUnit")
}

// MassFlowUnit enumerates units of MassFlow.
type MassFlowUnit int

const (
	GramPerSecond MassFlowUnit = iota + 1
	KilogramPerSecond
	KilogramPerHour
	PoundPerHour
)

var massFlowNames = []string{"", "GramPerSecond", "KilogramPerSecond", "KilogramPerHour", "PoundPerHour"}

func (u MassFlowUnit) String() string { return enumName(massFlowNames, int(u), "MassFlowUnit") }

// DurationUnit enumerates units of Duration.
type DurationUnit int

const (
	Second DurationUnit = iota + 1
	Millisecond
	Microsecond
	Minute
	Hour
)

var durationNames = []string{"", "Second", "Millisecond", "Microsecond", "Minute", "Hour"}

func (u DurationUnit) String() string { return enumName(durationNames, int(u), "DurationUnit") }

// FuelEfficiencyUnit enumerates units of FuelEfficiency.
type FuelEfficiencyUnit int

const (
	LiterPer100Kilometers FuelEfficiencyUnit = iota + 1
	KilometerPerLiter
	MilePerUsGallon
	MilePerUkGallon
)

var fuelEfficiencyNames = []string{"", "LiterPer100Kilometers", "KilometerPerLiter", "MilePerUsGallon", "MilePerUkGallon"}

func (u FuelEfficiencyUnit) String() string {
	return enumName(fuelEfficiencyNames, int(u), "FuelEfficiencyUnit")
}

// ScalarUnit enumerates units of Scalar, a dimensionless count.
type ScalarUnit int

const (
	Amount ScalarUnit = iota + 1
)

var scalarNames = []string{"", "Amount"}

func (u ScalarUnit) String() string { return enumName(scalarNames, int(u), "ScalarUnit") }

func enumName(names []string, v int, typeName string) string {
	if v > 0 && v < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typeName, v)
}
