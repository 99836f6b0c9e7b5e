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

// Package defaults provides centralized configuration values for unitframe.
//
// This package defines the default culture, output document settings, and the
// limits used across the codebase. Centralizing these values keeps the CLI and
// the libraries consistent.
//
// # Usage
//
// Import and use the values directly:
//
//	import "github.com/NVIDIA/unitframe/pkg/defaults"
//
//	resolver := metadata.NewResolver(metadata.WithCulture(defaults.Culture))
//
// # Culture
//
// Metadata resolved without an explicit culture uses Culture (en-US). The
// culture drives generated display names and number formatting of quantities.
package defaults
