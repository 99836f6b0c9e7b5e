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

// Package datalog defines ECU datalog records whose sensor members carry unit
// metadata, together with the fixed-layout binary codec for them.
//
// FlashProFrame sensors are annotated with struct tags and a QuantitySchema,
// so any frame can be read or converted with the dataframe package:
//
//	q, err := dataframe.ConvertQuantity(frame, "AF", datalog.GasolineAirFuelRatio)
//
// AirFuelRatio is a custom quantity kind measured in Lambda or in the gasoline
// air/fuel mass ratio. Register adds it to a registry so that unit names such
// as "AirFuelRatio.Lambda" resolve.
//
// Frames and KPro comments are encoded little-endian. A frame is FrameSize
// bytes; a comment is a float64 offset in seconds, an int32 length and the
// ASCII text.
package datalog
