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

// Package metadata resolves which members of a Go type hold physical
// quantities, in which unit, and which units they may be converted to.
//
// # Declaring quantities
//
// Struct fields are annotated with the quantity tag:
//
//	type Box struct {
//	    Width  float64 `quantity:"Meter,convert=Decimeter|Inch"`
//	    Weight float64 `quantity:"Kilogram,convert=Pound,display=Gross Weight"`
//	    Label  string
//	}
//
// The first tag element is the unit name, optionally qualified by kind
// ("Length.Meter"). An empty unit marks a field whose unit is supplied at run
// time by a Provider. The tag "-" excludes a field.
//
// Members that cannot carry tags, such as getter methods, or annotations that
// need typed units of a custom kind, are declared with a Schema. A type can
// return its schema from a QuantitySchema method, or a schema can be
// registered for it:
//
//	func (Box) QuantitySchema() metadata.Schema {
//	    return metadata.Schema{
//	        "Volume": {Unit: units.CubicMeter, Conversions: []units.Unit{units.Liter}},
//	    }
//	}
//
//	err := metadata.Register[Drive](resolver, metadata.Schema{...})
//
// Schemas registered for an interface apply to every implementing type.
//
// # Resolution
//
// Resolver.Resolve merges the annotation layers of a type. Members promoted
// from embedded structs come first, then registered interface schemas, then
// the type's own tags, QuantitySchema and registered schema. A later layer
// replaces an earlier declaration of the same member.
//
// Declared units that do not resolve leave the field without a unit, and
// allow-list entries that do not resolve are dropped. Both are logged at
// debug level. A member whose value type is not numeric fails resolution with
// a TYPE_INCOMPATIBLE error.
//
// Results are cached per type and culture for the lifetime of the Resolver.
package metadata
