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
	"reflect"

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
}

func (b Box) Volume() float64 {
	return b.Width * b.Height * b.Depth
}

func (Box) QuantitySchema() Schema {
	return Schema{
		"Volume": {
			Unit:        units.CubicMeter,
			Conversions: []units.Unit{units.CubicDecimeter, units.CubicInch},
		},
	}
}

type HardDriveInfo interface {
	Capacity() float64
	FreeSpace() float64
}

var hardDriveSchema = Schema{
	"Capacity":  {Unit: units.Gigabyte, Conversions: []units.Unit{units.Kilobyte}},
	"FreeSpace": {Unit: units.Gigabyte, Conversions: []units.Unit{units.Kilobyte}},
}

type HardDrive struct {
	capacity  float64
	freeSpace float64
}

func (h HardDrive) Capacity() float64  { return h.capacity }
func (h HardDrive) FreeSpace() float64 { return h.freeSpace }

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

type Employee struct {
	Name     string
	Coolness float64
}

func (Employee) QuantitySchema() Schema {
	return Schema{
		"Coolness": {
			Unit:        MegaFonzie,
			Kind:        reflect.TypeFor[Coolness](),
			Conversions: []units.Unit{Fonzie},
		},
	}
}

// Rubbish declares a custom unit without a way to find its kind.
type Rubbish struct {
	Coolness float64
}

func (Rubbish) QuantitySchema() Schema {
	return Schema{"Coolness": {Unit: Fonzie, Conversions: []units.Unit{MegaFonzie}}}
}

type DynoData struct {
	Horsepower float64 `quantity:"MechanicalHorsepower,convert=Kilowatt,display=Engine Horsepower"`
	Torque     float64 `quantity:"PoundForceFoot,convert=NewtonMeter"`
	Rpm        float64 `quantity:"RevolutionPerMinute"`
}

type Blob struct {
	Data string `quantity:"Gibibit"`
}

type Garbage struct {
	Odor float64 `quantity:"MechanicalHorsepower,smell=bad"`
}

type Crate struct {
	Box
	Label string
}

type Tube struct {
	Box
	Width float64 `quantity:"Centimeter"`
}

type Carton struct {
	Box
	Volume float64 `quantity:"Liter"`
}

type Panel struct {
	Width float64
}

func (Panel) QuantitySchema() Schema {
	return Schema{"Width": {Unit: units.Meter, Conversions: []units.Unit{units.Inch}}}
}

type Veneer struct {
	Panel
	Width float64 `quantity:"Centimeter"`
}

type Slab struct {
	Panel
}

type Plank struct {
	Panel
}

func (Plank) QuantitySchema() Schema {
	return Schema{"Width": {Unit: units.Millimeter}}
}

type Sleeve struct {
	Box
	Height float32
}

type Pallet struct {
	*Box
}

type Shelf struct {
	Width  float64 `quantity:"Meter"`
	Secret float64 `quantity:"-"`
	Notes  float64 `quantity:",convert=Meter"`
}

type Gadget struct{}

func (Gadget) Reading(scale float64) float64 { return scale }
