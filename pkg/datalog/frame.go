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
	"reflect"
	"time"

	"github.com/NVIDIA/unitframe/pkg/metadata"
	"github.com/NVIDIA/unitframe/pkg/units"
)

// FlashProFrame is one sample of a FlashPro datalog. Field order and sizes
// define the on-disk record layout.
type FlashProFrame struct {
	Offset     uint32  `json:"offset" yaml:"offset" quantity:"Millisecond,convert=Second,display=Offset"`
	RPM        float32 `json:"rpm" yaml:"rpm" quantity:"RevolutionPerMinute,convert=RevolutionPerSecond,display=Engine speed"`
	VSS        float32 `json:"vss" yaml:"vss" quantity:"KilometerPerHour,convert=MilePerHour|MeterPerSecond,display=Vehicle speed"`
	Gear       uint8   `json:"gear" yaml:"gear" quantity:"Amount,display=Gear"`
	FuelStatus uint8   `json:"fuelStatus" yaml:"fuelStatus" quantity:"Amount,display=Fuel system status"`
	ACCL       uint8   `json:"accl" yaml:"accl"`
	VTS        uint8   `json:"vts" yaml:"vts"`
	MAP        float32 `json:"map" yaml:"map" quantity:"Bar,convert=Kilopascal|PoundForcePerSquareInch,display=Manifold pressure"`
	TPedal     float32 `json:"tpedal" yaml:"tpedal" quantity:"DecimalFraction,convert=Percent,display=Throttle pedal"`
	TPlate     float32 `json:"tplate" yaml:"tplate" quantity:"DecimalFraction,convert=Percent,display=Throttle plate"`
	AFMv       float32 `json:"afmv" yaml:"afmv" quantity:"Volt,convert=Millivolt,display=Air flow meter voltage"`
	AFM        float32 `json:"afm" yaml:"afm" quantity:"GramPerSecond,convert=KilogramPerHour,display=Air flow meter"`
	INJ        float32 `json:"inj" yaml:"inj" quantity:"Millisecond,convert=Microsecond,display=Injector pulse width"`
	IGN        float32 `json:"ign" yaml:"ign" quantity:"Degree,convert=Radian,display=Ignition advance"`
	IAT        float32 `json:"iat" yaml:"iat" quantity:"DegreeCelsius,convert=DegreeFahrenheit|Kelvin,display=Intake air temperature"`
	ECT        float32 `json:"ect" yaml:"ect" quantity:"DegreeCelsius,convert=DegreeFahrenheit|Kelvin,display=Engine coolant temperature"`
	CAM        float32 `json:"cam" yaml:"cam" quantity:"Degree,display=Actual VTC cam angle"`
	CAMCMD     float32 `json:"camcmd" yaml:"camcmd" quantity:"Degree,display=Commanded VTC cam angle"`
	AF         float32 `json:"af" yaml:"af"`
	AFCMD      float32 `json:"afcmd" yaml:"afcmd"`
	STRIM      float32 `json:"strim" yaml:"strim"`
	LTRIM      float32 `json:"ltrim" yaml:"ltrim"`
	KLevel     float32 `json:"klevel" yaml:"klevel" quantity:"DecimalFraction,convert=Percent,display=Knock level"`
	KRetard    float32 `json:"kretard" yaml:"kretard" quantity:"Degree,display=Knock retard"`
	PA         float32 `json:"pa" yaml:"pa" quantity:"Bar,convert=Kilopascal|PoundForcePerSquareInch,display=Atmospheric pressure"`
	BAT        float32 `json:"bat" yaml:"bat" quantity:"Volt,display=Battery voltage"`
	BrakePress float32 `json:"brakePress" yaml:"brakePress" quantity:"Bar,convert=Millibar|PoundForcePerSquareInch,display=Brake pressure"`
	SteerAng   float32 `json:"steerAng" yaml:"steerAng" quantity:"Degree,convert=Radian,display=Steering wheel angle"`
	SteerTrq   float32 `json:"steerTrq" yaml:"steerTrq" quantity:"NewtonMeter,convert=PoundForceFoot,display=Steering wheel torque"`
	FuelP      float32 `json:"fuelP" yaml:"fuelP" quantity:"DecimalFraction,convert=Percent,display=Fuel pump duty"`
	AFMHz      float32 `json:"afmHz" yaml:"afmHz" quantity:"Hertz,convert=Kilohertz,display=Air flow meter frequency"`
}

// Elapsed returns the frame offset from the start of the log.
func (f FlashProFrame) Elapsed() time.Duration {
	return time.Duration(f.Offset) * time.Millisecond
}

// Duty returns the injector duty cycle as a fraction.
func (f FlashProFrame) Duty() float64 {
	return float64(f.RPM) * float64(f.INJ) / 1200
}

// Trim returns the total fuel trim in lambda.
func (f FlashProFrame) Trim() float64 {
	return float64(f.LTRIM) + float64(f.STRIM)
}

// Accelerating reports the ACCL flag.
func (f FlashProFrame) Accelerating() bool { return f.ACCL > 0 }

// VTEC reports the VTS flag.
func (f FlashProFrame) VTEC() bool { return f.VTS > 0 }

func lambda(display string, conversions ...units.Unit) metadata.Annotation {
	return metadata.Annotation{
		Unit:        Lambda,
		Kind:        reflect.TypeFor[AirFuelRatio](),
		Conversions: conversions,
		DisplayName: display,
	}
}

// QuantitySchema annotates the lambda sensors and the derived readings.
func (FlashProFrame) QuantitySchema() metadata.Schema {
	return metadata.Schema{
		"AF":    lambda("Air / fuel ratio", GasolineAirFuelRatio),
		"AFCMD": lambda("Target air / fuel ratio", GasolineAirFuelRatio),
		"STRIM": lambda("Short term fuel trim"),
		"LTRIM": lambda("Long term fuel trim"),
		"Trim":  lambda("Total fuel trim", GasolineAirFuelRatio),
		"Duty": {
			Unit:        units.DecimalFraction,
			Conversions: []units.Unit{units.Percent},
			DisplayName: "Injector duty cycle",
		},
	}
}
