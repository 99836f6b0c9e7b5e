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

package dataframe

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"golang.org/x/text/language"

	cnserrors "github.com/NVIDIA/unitframe/pkg/errors"
	"github.com/NVIDIA/unitframe/pkg/metadata"
	"github.com/NVIDIA/unitframe/pkg/registry"
	"github.com/NVIDIA/unitframe/pkg/units"
)

var quantityType = reflect.TypeFor[units.Quantity]()

// AsQuantity constructs a quantity of value in unit. hint is the quantity
// value type of a custom kind and may be nil for built-in units.
func (e *Engine) AsQuantity(value float64, unit units.Unit, hint reflect.Type) (units.Quantity, error) {
	kind, ok := e.registry.ResolveKind(unit, hint)
	if !ok {
		return nil, units.UnknownKind(unit)
	}
	if !kind.Contains(unit) {
		return nil, units.UnknownUnit(unit)
	}
	if kind.BuiltIn {
		q, ok := units.From(value, unit)
		if !ok {
			return nil, units.UnknownUnit(unit)
		}
		return q, nil
	}

	ctor, err := e.ctors.GetOrAdd(kind.ValueType, func(reflect.Type) (constructor, error) {
		return e.findConstructor(kind)
	})
	if err != nil {
		return nil, err
	}
	return ctor(value, unit)
}

// findConstructor prefers KindInfo.New, then the single method on the zero
// value type shaped func(<number>, <UnitType>) <Quantity>.
func (e *Engine) findConstructor(kind *registry.KindDescriptor) (constructor, error) {
	if kind.Info.New != nil {
		return func(value float64, unit units.Unit) (units.Quantity, error) {
			return kind.Info.New(value, unit), nil
		}, nil
	}

	vt := kind.ValueType
	receiver := reflect.New(vt).Elem()
	if vt.Kind() == reflect.Pointer {
		receiver = reflect.New(vt.Elem())
	}

	var found []reflect.Method
	for i := range vt.NumMethod() {
		m := vt.Method(i)
		t := m.Type
		if t.NumIn() == 3 && t.NumOut() == 1 &&
			units.IsQuantityValueType(t.In(1)) &&
			t.In(2) == kind.Info.UnitType &&
			t.Out(0).Implements(quantityType) {
			found = append(found, m)
		}
	}
	if len(found) != 1 {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeAccessorMissing,
			fmt.Sprintf("Unable to create quantity. No constructor found compatible with %s(float64, %s)",
				vt.Name(), kind.Info.UnitType.Name()),
			map[string]any{"kind": kind.Name(), "type": vt.String(), "candidates": len(found)})
	}

	method := receiver.Method(found[0].Index)
	valueType := found[0].Type.In(1)
	e.log.Debug("discovered quantity constructor",
		slog.String("kind", kind.Name()),
		slog.String("method", found[0].Name))

	return func(value float64, unit units.Unit) (units.Quantity, error) {
		arg, err := units.FromFloat64(value, valueType)
		if err != nil {
			return nil, err
		}
		out := method.Call([]reflect.Value{arg, reflect.ValueOf(unit)})
		return out[0].Interface().(units.Quantity), nil
	}, nil
}

// GetQuantityAs returns the value of field as a Q.
func GetQuantityAs[Q units.Quantity](e *Engine, obj any, field string) (Q, error) {
	q, err := e.GetQuantity(obj, field)
	if err != nil {
		var zero Q
		return zero, err
	}
	return as[Q](q)
}

// ConvertQuantityAs returns the value of field converted to unit to as a Q.
func ConvertQuantityAs[Q units.Quantity](e *Engine, obj any, field string, to units.Unit) (Q, error) {
	q, err := e.ConvertQuantity(obj, field, to)
	if err != nil {
		var zero Q
		return zero, err
	}
	return as[Q](q)
}

func as[Q units.Quantity](q units.Quantity) (Q, error) {
	typed, ok := q.(Q)
	if !ok {
		var zero Q
		return zero, cnserrors.NewWithContext(cnserrors.ErrCodeTypeIncompatible,
			fmt.Sprintf("quantity %T is not a %s", q, reflect.TypeFor[Q]()),
			map[string]any{"type": fmt.Sprintf("%T", q)})
	}
	return typed, nil
}

var defaultEngine = sync.OnceValue(func() *Engine {
	return New()
})

// Default returns the process-wide engine used by the package-level functions.
func Default() *Engine {
	return defaultEngine()
}

// Metadata resolves the metadata of obj's type with the default engine.
func Metadata(obj any) (*metadata.TypeMetadata, error) {
	return Default().Metadata(obj)
}

// MetadataFor resolves the metadata of t with the default engine.
func MetadataFor(t reflect.Type, culture language.Tag) (*metadata.TypeMetadata, error) {
	return Default().MetadataFor(t, culture)
}

// GetQuantity reads field of obj with the default engine.
func GetQuantity(obj any, field string) (units.Quantity, error) {
	return Default().GetQuantity(obj, field)
}

// ConvertQuantity converts field of obj with the default engine.
func ConvertQuantity(obj any, field string, to units.Unit) (units.Quantity, error) {
	return Default().ConvertQuantity(obj, field, to)
}
