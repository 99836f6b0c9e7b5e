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

package units

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format renders q using the number conventions of culture, followed by the
// unit abbreviation. An undetermined culture falls back to plain formatting.
func Format(q Quantity, culture language.Tag) string {
	if q == nil {
		return ""
	}
	if culture == language.Und {
		return formatPlain(q)
	}
	p := message.NewPrinter(culture)
	s := p.Sprint(number.Decimal(q.Value(), number.MaxFractionDigits(6)))
	if abbr := abbreviation(q); abbr != "" {
		return s + " " + abbr
	}
	return s
}
