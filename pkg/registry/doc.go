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

// Package registry maps unit values to the unit and kind descriptors the
// metadata resolver and the quantity engine work with.
//
// Built-in units resolve through the units catalog. Custom kinds are found
// either by explicit registration:
//
//	reg := registry.New()
//	if err := registry.RegisterKind[Coolness](reg); err != nil {
//	    return err
//	}
//
// or lazily, when a lookup carries a quantity value type hint whose zero value
// implements units.KindProvider and whose kind uses the unit's enum type.
//
// Lookups report absence with a boolean and never fail with an error; callers
// decide whether a missing unit is fatal.
package registry
