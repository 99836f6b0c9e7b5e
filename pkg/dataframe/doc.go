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

// Package dataframe reads numeric members of Go values as unit-tagged
// quantities and converts them between units.
//
// Unit metadata comes from the metadata package: struct tags, a
// QuantitySchema method, schemas registered for a type or an interface it
// implements, and per-instance metadata.Provider annotations. A conversion
// target must be the member's declared unit or one of the units it allows.
//
// Usage:
//
//	type Box struct {
//	    Width float64 `quantity:"Meter,convert=Centimeter|Inch"`
//	}
//
//	q, err := dataframe.ConvertQuantity(Box{Width: 1}, "Width", units.Inch)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(q) // 39.37007874015748 in
//
// Member accessors, quantity constructors and type metadata are memoized per
// Engine. Engines are safe for concurrent use; the package-level functions
// share a single default Engine.
package dataframe
