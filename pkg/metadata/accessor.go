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

package metadata

import (
	"fmt"
	"reflect"

	cnserrors "github.com/NVIDIA/unitframe/pkg/errors"
)

// Accessor reads one member of an object: an exported struct field, possibly
// promoted through embedded structs, or an exported getter method.
type Accessor struct {
	// Name is the member name.
	Name string

	// DeclaringType is the type that declares the member.
	DeclaringType reflect.Type

	// Type is the member's value type.
	Type reflect.Type

	index  []int
	method bool
}

// IsMethod reports whether the accessor calls a getter method.
func (a *Accessor) IsMethod() bool {
	return a.method
}

// Path returns "<DeclaringType>.<Name>".
func (a *Accessor) Path() string {
	return a.DeclaringType.Name() + "." + a.Name
}

// FindAccessor locates member name on t. Pointer types are dereferenced.
func FindAccessor(t reflect.Type, name string) (*Accessor, error) {
	base := t
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}

	if base.Kind() == reflect.Struct {
		if sf, ok := base.FieldByName(name); ok {
			if !sf.IsExported() {
				return nil, accessorMissing(base, name, "has no public getter")
			}
			return &Accessor{
				Name:          name,
				DeclaringType: declaringType(base, sf.Index),
				Type:          sf.Type,
				index:         sf.Index,
			}, nil
		}
	}

	methods := base
	if base.Kind() != reflect.Interface {
		methods = reflect.PointerTo(base)
	}
	if m, ok := methods.MethodByName(name); ok {
		// interface method types carry no receiver
		in := m.Type.NumIn()
		if base.Kind() != reflect.Interface {
			in--
		}
		if in != 0 || m.Type.NumOut() != 1 {
			return nil, accessorMissing(base, name, "is not a getter")
		}
		return &Accessor{
			Name:          name,
			DeclaringType: base,
			Type:          m.Type.Out(m.Type.NumOut() - 1),
			method:        true,
		}, nil
	}

	return nil, cnserrors.NewWithContext(cnserrors.ErrCodeNotFound,
		fmt.Sprintf("%s is not a field of %s", name, base.Name()),
		map[string]any{"type": base.String(), "field": name})
}

// Read returns the member value of obj.
func (a *Accessor) Read(obj reflect.Value) (reflect.Value, error) {
	if a.method {
		return a.call(obj)
	}
	for obj.Kind() == reflect.Pointer || obj.Kind() == reflect.Interface {
		if obj.IsNil() {
			return reflect.Value{}, a.nilReceiver()
		}
		obj = obj.Elem()
	}
	v, err := obj.FieldByIndexErr(a.index)
	if err != nil {
		return reflect.Value{}, cnserrors.WrapWithContext(cnserrors.ErrCodeAccessorMissing,
			fmt.Sprintf("%s cannot be read through a nil embedded pointer", a.Path()), err,
			map[string]any{"type": a.DeclaringType.String(), "field": a.Name})
	}
	return v, nil
}

func (a *Accessor) call(obj reflect.Value) (out reflect.Value, err error) {
	defer func() {
		// promoted through a nil embedded pointer
		if p := recover(); p != nil {
			out = reflect.Value{}
			err = cnserrors.NewWithContext(cnserrors.ErrCodeAccessorMissing,
				fmt.Sprintf("%s cannot be called: %v", a.Path(), p),
				map[string]any{"type": a.DeclaringType.String(), "field": a.Name})
		}
	}()
	if obj.Kind() == reflect.Interface {
		if obj.IsNil() {
			return reflect.Value{}, a.nilReceiver()
		}
		obj = obj.Elem()
	}
	if obj.Kind() == reflect.Pointer && obj.IsNil() {
		return reflect.Value{}, a.nilReceiver()
	}
	m := obj.MethodByName(a.Name)
	if !m.IsValid() && obj.Kind() != reflect.Pointer {
		// pointer receiver on a non-addressable value
		p := reflect.New(obj.Type())
		p.Elem().Set(obj)
		m = p.MethodByName(a.Name)
	}
	if !m.IsValid() {
		return reflect.Value{}, accessorMissing(a.DeclaringType, a.Name, "has no public getter")
	}
	return m.Call(nil)[0], nil
}

func (a *Accessor) nilReceiver() error {
	return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
		fmt.Sprintf("cannot read %s from a nil object", a.Path()),
		map[string]any{"type": a.DeclaringType.String(), "field": a.Name})
}

func accessorMissing(t reflect.Type, name, reason string) error {
	return cnserrors.NewWithContext(cnserrors.ErrCodeAccessorMissing,
		fmt.Sprintf("%s.%s %s", t.Name(), name, reason),
		map[string]any{"type": t.String(), "field": name})
}

// declaringType walks an index path to the struct that declares the field.
func declaringType(t reflect.Type, index []int) reflect.Type {
	for _, i := range index[:len(index)-1] {
		t = t.Field(i).Type
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
	}
	return t
}
