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

// Package units provides the quantity kinds, unit enums, and conversions that
// unitframe attaches to object fields.
//
// Each kind of measurement (Length, Mass, Power, ...) has its own comparable
// unit enum type and a KindInfo describing every unit of the kind and how it
// scales to the kind's base unit:
//
//	v, err := units.Convert(2, units.Meter, units.Centimeter) // 200
//
//	q, _ := units.From(300, units.MechanicalHorsepower)
//	kw, _ := q.(units.Measure).As(units.Kilowatt) // 223.7 kW
//
// Custom kinds are described the same way: declare an enum type implementing
// Unit, build a KindInfo with NewKind, and register it with the registry
// package. Quantity types for custom kinds implement Quantity; the zero value
// must answer QuantityInfo.
//
// Built-in units can be parsed by name, either bare ("Meter") or qualified by
// kind ("Length.Meter"):
//
//	u, ok := units.ParseUnit("Length.Foot")
//
// Format renders a quantity with the digit grouping and decimal separator of
// a culture:
//
//	units.Format(q, language.German) // "223,7 kW"
package units
