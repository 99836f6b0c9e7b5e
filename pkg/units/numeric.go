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
	"fmt"
	"reflect"

	cnserrors "github.com/NVIDIA/unitframe/pkg/errors"
)

// Number lists the Go types a quantity value can be read from.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsQuantityValueType reports whether values of t can be widened to a
// quantity value. Named numeric types qualify; bool, string and complex
// types do not.
func IsQuantityValueType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// ToFloat64 widens a numeric reflect.Value to float64.
func ToFloat64(v reflect.Value) (float64, error) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Invalid:
		return 0, cnserrors.New(cnserrors.ErrCodeTypeIncompatible, "invalid value is not a quantity value")
	default:
		return 0, cnserrors.New(cnserrors.ErrCodeTypeIncompatible,
			fmt.Sprintf("%s is not a quantity value type", v.Type()))
	}
}

// FromFloat64 narrows a float64 into a reflect.Value of numeric type t.
func FromFloat64(f float64, t reflect.Type) (reflect.Value, error) {
	if !IsQuantityValueType(t) {
		return reflect.Value{}, cnserrors.New(cnserrors.ErrCodeTypeIncompatible,
			fmt.Sprintf("%s is not a quantity value type", t))
	}
	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(f))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(f))
	default:
		v.SetFloat(f)
	}
	return v, nil
}

func unknownUnitName(name string) error {
	return cnserrors.NewWithContext(cnserrors.ErrCodeUnknownUnit,
		fmt.Sprintf("%s is not a known unit value.", name),
		map[string]any{"unit": name})
}
