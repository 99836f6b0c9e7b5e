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

package dataframe

import (
	"reflect"

	"golang.org/x/text/language"

	"github.com/NVIDIA/unitframe/pkg/metadata"
	"github.com/NVIDIA/unitframe/pkg/units"
)

type Box struct {
	Width        float64 `quantity:"Meter,convert=Decimeter|Centimeter|Inch"`
	Height       float64 `quantity:"Meter,convert=Centimeter|Foot"`
	Depth        float64 `quantity:"Meter,convert=Millimeter|Yard"`
	Weight       float64 `quantity:"Kilogram,convert=Gram|Pound"`
	Items        int     `quantity:"Amount"`
	SerialNumber int
	Priority     int
	Data         string
}

func (b Box) Volume() float64 {
	return b.Width * b.Height * b.Depth
}

func (Box) QuantitySchema() metadata.Schema {
	return metadata.Schema{
		"Volume": {
			Unit:        units.CubicMeter,
			Conversions: []units.Unit{units.CubicDecimeter, units.CubicInch},
		},
	}
}

// BoxCm stores its width in centimeters.
type BoxCm struct {
	Width float64 `quantity:"Centimeter,convert=Meter"`
}

type HardDriveInfo interface {
	Capacity() float64
	FreeSpace() float64
}

var hardDriveSchema = metadata.Schema{
	"Capacity":  {Unit: units.Gigabyte, Conversions: []units.Unit{units.Kilobyte}},
	"FreeSpace": {Unit: units.Gigabyte, Conversions: []units.Unit{units.Kilobyte}},
}

type HardDrive struct {
	capacity  uint32
	freeSpace uint32
}

func (h *HardDrive) Capacity() float64  { return float64(h.capacity) }
func (h *HardDrive) FreeSpace() float64 { return float64(h.freeSpace) }

type CoolnessUnit int

const (
	Fonzie CoolnessUnit = iota + 1
	MegaFonzie
)

func (u CoolnessUnit) String() string {
	if u == MegaFonzie {
		return "MegaFonzie"
	}
	return "Fonzie"
}

var coolnessInfo = units.NewKind("Coolness", Fonzie, reflect.TypeFor[Coolness](),
	units.Linear(Fonzie, "Fonzies", "F", 1),
	units.Linear(MegaFonzie, "MegaFonzies", "MF", 1e6),
)

type Coolness struct {
	value float64
	unit  CoolnessUnit
}

func (c Coolness) Value() float64 { return c.value }
func (c Coolness) Unit() units.Unit { return c.unit }
func (Coolness) QuantityInfo() *units.KindInfo { return coolnessInfo }

func (Coolness) From(value float64, unit CoolnessUnit) Coolness {
	return Coolness{value: value, unit: unit}
}

type Employee struct {
	Name     string
	Coolness float64
}

func (Employee) QuantitySchema() metadata.Schema {
	return metadata.Schema{
		"Coolness": {
			Unit:        MegaFonzie,
			Kind:        reflect.TypeFor[Coolness](),
			Conversions: []units.Unit{Fonzie},
		},
	}
}

type Rubbish struct {
	Coolness float64
}

func (Rubbish) QuantitySchema() metadata.Schema {
	return metadata.Schema{"Coolness": {Unit: Fonzie, Conversions: []units.Unit{MegaFonzie}}}
}

type DynoData struct {
	Horsepower float64 `quantity:"MechanicalHorsepower,convert=Kilowatt,display=Engine Horsepower"`
	Torque     float64 `quantity:"PoundForceFoot,convert=NewtonMeter"`
	Rpm        int     `quantity:"RevolutionPerMinute"`
}

type Blob struct {
	Data string `quantity:"Gibibit"`
}

type Garbage struct {
	Odor float64 `quantity:"MechanicalHorsepower,smell=bad"`
}

// Sensor reports its unit per instance.
type Sensor struct {
	Reading float32 `quantity:",convert=Kelvin"`
	Celsius bool
}

func (s Sensor) QuantityMetadata(field string, _ language.Tag) (metadata.Annotation, bool) {
	if field != "Reading" || !s.Celsius {
		return metadata.Annotation{}, false
	}
	return metadata.Annotation{
		Unit:        units.DegreeCelsius,
		Conversions: []units.Unit{units.Kelvin, units.DegreeFahrenheit},
		DisplayName: "Reading (°C)",
	}, true
}

type SwaggerUnit int

const Strut SwaggerUnit = 1

func (SwaggerUnit) String() string { return "Strut" }

var swaggerInfo = units.NewKind("Swagger", Strut, nil, units.Linear(Strut, "Struts", "st", 1))

// Swagger has no constructor.
type Swagger struct{}

func (Swagger) QuantityInfo() *units.KindInfo { return swaggerInfo }

type ShoeSizeUnit int

func (ShoeSizeUnit) String() string { return "EU" }

type VibeUnit int

const (
	Chill VibeUnit = iota + 1
	Hype
)

func (u VibeUnit) String() string {
	if u == Hype {
		return "Hype"
	}
	return "Chill"
}

type vibe struct {
	value float64
	unit  units.Unit
}

func (v vibe) Value() float64 { return v.value }
func (v vibe) Unit() units.Unit { return v.unit }
func (vibe) QuantityInfo() *units.KindInfo { return vibeInfo }

var vibeInfo = &units.KindInfo{
	Name:      "Vibe",
	BaseUnit:  Chill,
	UnitType:  reflect.TypeFor[VibeUnit](),
	ValueType: reflect.TypeFor[vibe](),
	Units: []units.UnitInfo{
		units.Linear(Chill, "Chills", "c", 1),
		units.Linear(Hype, "Hypes", "h", 10),
	},
	New: func(value float64, unit units.Unit) units.Quantity {
		return vibe{value: value, unit: unit}
	},
}

type Party struct {
	Mood float64
}

func (Party) QuantitySchema() metadata.Schema {
	return metadata.Schema{"Mood": {Unit: Hype, Conversions: []units.Unit{Chill}}}
}
