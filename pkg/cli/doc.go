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

// Package cli implements the unitframe command line.
//
// Commands:
//
//	units     list quantity kinds and their units
//	inspect   print the unit metadata of a record type
//	get       read a record member in its declared unit
//	convert   read a record member converted to an allowed unit
//
// Records are loaded from YAML or JSON files, from stdin with --input -, or,
// for FlashPro frames, from a binary datalog with --index selecting the frame.
//
// # Examples
//
// List the Pressure units:
//
//	unitframe units --kind Pressure
//
// Show the metadata of a FlashPro frame with German display names:
//
//	unitframe inspect --type FlashProFrame --culture de-DE --format json
//
// Convert the air/fuel ratio of the 10th frame of a datalog:
//
//	unitframe convert --type FlashProFrame --input log.bin --index 10 \
//	    --field AF --to GasolineAirFuelRatio
//
// Output is a document with kind, apiVersion, metadata and spec, written as
// YAML by default.
//
// # Environment Variables
//
//	UNITFRAME_LOG_LEVEL  logging verbosity (debug, info, warn, error)
//	UNITFRAME_FORMAT     output format (json, yaml, table)
//	UNITFRAME_CULTURE    culture tag, e.g. en-US
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/unitframe/pkg/cli.version=1.0.0'"
package cli
