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
	"fmt"
	"time"

	"github.com/NVIDIA/unitframe/pkg/metadata"
	"github.com/NVIDIA/unitframe/pkg/units"
)

// KProComment is a text note attached to a point in a KPro datalog.
type KProComment struct {
	Offset time.Duration `json:"offset" yaml:"offset"`
	Text   string        `json:"text" yaml:"text"`
}

// OffsetSeconds returns the comment offset in seconds.
func (c KProComment) OffsetSeconds() float64 {
	return c.Offset.Seconds()
}

// QuantitySchema annotates the comment offset.
func (KProComment) QuantitySchema() metadata.Schema {
	return metadata.Schema{
		"OffsetSeconds": {
			Unit:        units.Second,
			Conversions: []units.Unit{units.Millisecond, units.Minute},
			DisplayName: "Offset",
		},
	}
}

func (c KProComment) String() string {
	return fmt.Sprintf("KProComment(%s, %q)", c.Offset, c.Text)
}
