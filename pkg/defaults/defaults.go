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

package defaults

import (
	"time"

	"golang.org/x/text/language"
)

// Culture settings.
var (
	// Culture is the culture metadata is resolved for when none is given.
	Culture = language.AmericanEnglish
)

// Output document settings.
const (
	// APIVersion is the apiVersion written into output document headers.
	APIVersion = "unitframe.nvidia.com/v1alpha1"

	// OutputFormat is the default CLI output format.
	OutputFormat = "yaml"

	// EnvPrefix prefixes every environment variable the CLI reads.
	EnvPrefix = "UNITFRAME_"
)

// Datalog limits.
const (
	// MaxCommentLength caps the length of a datalog comment record.
	MaxCommentLength = 64 * 1024

	// ReadTimeout bounds reading one input document in the CLI.
	ReadTimeout = 30 * time.Second
)
