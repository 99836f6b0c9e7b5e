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

	"golang.org/x/text/language"

	"github.com/NVIDIA/unitframe/pkg/cache"
	cnserrors "github.com/NVIDIA/unitframe/pkg/errors"
	"github.com/NVIDIA/unitframe/pkg/metadata"
	"github.com/NVIDIA/unitframe/pkg/registry"
	"github.com/NVIDIA/unitframe/pkg/units"
)

type memberKey struct {
	owner reflect.Type
	name  string
}

// getter reads a member and widens it to float64.
type getter struct {
	acc  *metadata.Accessor
	read func(reflect.Value) (float64, error)
}

// constructor builds a quantity of a custom kind.
type constructor func(value float64, unit units.Unit) (units.Quantity, error)

// Engine materializes and converts quantities stored in object members.
// An Engine is safe for concurrent use.
type Engine struct {
	log      *slog.Logger
	registry *registry.Registry
	resolver *metadata.Resolver
	culture  language.Tag

	getters *cache.Cache[memberKey, *getter]
	ctors   *cache.Cache[reflect.Type, constructor]
}

// Option is a functional option for configuring an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithRegistry sets the unit registry used when no resolver is supplied.
func WithRegistry(reg *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// WithResolver sets the metadata resolver. The engine then uses the
// resolver's registry.
func WithResolver(r *metadata.Resolver) Option {
	return func(e *Engine) {
		e.resolver = r
	}
}

// WithCulture sets the culture metadata is resolved for.
func WithCulture(tag language.Tag) Option {
	return func(e *Engine) {
		e.culture = tag
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:     slog.Default(),
		getters: cache.New[memberKey, *getter]("getter"),
		ctors:   cache.New[reflect.Type, constructor]("constructor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.resolver == nil {
		e.resolver = metadata.NewResolver(
			metadata.WithRegistry(e.registry),
			metadata.WithLogger(e.log),
			metadata.WithCulture(e.culture),
		)
	}
	e.registry = e.resolver.Registry()
	if e.culture == language.Und {
		e.culture = e.resolver.Culture()
	}
	return e
}

// Registry returns the unit registry.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Resolver returns the metadata resolver.
func (e *Engine) Resolver() *metadata.Resolver {
	return e.resolver
}

// Culture returns the culture metadata is resolved for.
func (e *Engine) Culture() language.Tag {
	return e.culture
}

// Metadata returns the static metadata of obj's type.
func (e *Engine) Metadata(obj any) (*metadata.TypeMetadata, error) {
	if obj == nil {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "cannot resolve metadata of a nil object")
	}
	return e.resolver.Resolve(reflect.TypeOf(obj), e.culture)
}

// MetadataFor returns the metadata of t for culture.
func (e *Engine) MetadataFor(t reflect.Type, culture language.Tag) (*metadata.TypeMetadata, error) {
	return e.resolver.Resolve(t, culture)
}

// InstanceMetadata returns the static metadata of obj's type with the
// annotations supplied by obj's metadata.Provider applied.
func (e *Engine) InstanceMetadata(obj any) (*metadata.TypeMetadata, error) {
	m, err := e.Metadata(obj)
	if err != nil {
		return nil, err
	}
	p, ok := obj.(metadata.Provider)
	if !ok {
		return m, nil
	}
	fields := m.Fields()
	for i, f := range fields {
		ann, ok := p.QuantityMetadata(f.Name(), e.culture)
		if !ok {
			continue
		}
		dynamic, err := e.resolver.Field(f.Accessor, ann, e.culture)
		if err != nil {
			return nil, err
		}
		fields[i] = dynamic
	}
	return m.WithFields(fields), nil
}

// GetQuantity returns the value of field in its declared unit.
func (e *Engine) GetQuantity(obj any, field string) (units.Quantity, error) {
	raw, f, err := e.load(obj, field)
	if err != nil {
		return nil, err
	}
	return e.AsQuantity(raw, f.Unit.Unit, f.Unit.Kind.ValueType)
}

// ConvertQuantity returns the value of field converted to unit to. The
// target must be the declared unit or appear in the field's allow-list.
// Converting to the declared unit returns the value exactly as GetQuantity
// does. Quantity values are float64, so integer members beyond 2^53 lose
// precision on both paths.
func (e *Engine) ConvertQuantity(obj any, field string, to units.Unit) (units.Quantity, error) {
	raw, f, err := e.load(obj, field)
	if err != nil {
		return nil, err
	}
	from := f.Unit
	kindName := from.Kind.Name()

	if to != nil && reflect.TypeOf(to).Comparable() && to == from.Unit {
		conversions.WithLabelValues(kindName, resultIdentity).Inc()
		return e.AsQuantity(raw, to, from.Kind.ValueType)
	}

	target, ok := f.CanConvertTo(to)
	if !ok {
		conversions.WithLabelValues(kindName, resultRejected).Inc()
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeConversionNotAllowed,
			fmt.Sprintf("%s (%s) cannot be converted to %v.", f.Accessor.Path(), from.Name(), to),
			map[string]any{"type": f.Accessor.DeclaringType.String(), "field": f.Name(),
				"unit": from.Name(), "target": fmt.Sprint(to)})
	}

	var value float64
	if from.Kind.BuiltIn {
		value, err = units.Convert(raw, from.Unit, target.Unit)
	} else {
		value, err = from.Kind.Info.Convert(raw, from.Unit, target.Unit)
	}
	if err != nil {
		conversions.WithLabelValues(kindName, resultFailed).Inc()
		return nil, err
	}

	q, err := e.AsQuantity(value, target.Unit, from.Kind.ValueType)
	if err != nil {
		conversions.WithLabelValues(kindName, resultFailed).Inc()
		return nil, err
	}
	conversions.WithLabelValues(kindName, resultConverted).Inc()
	return q, nil
}

// load reads field and resolves its metadata, in that order.
func (e *Engine) load(obj any, field string) (float64, *metadata.FieldMetadata, error) {
	v := reflect.ValueOf(obj)
	if !v.IsValid() {
		return 0, nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "cannot read a quantity from a nil object")
	}

	g, err := e.getter(v.Type(), field)
	if err != nil {
		return 0, nil, err
	}
	raw, err := g.read(v)
	if err != nil {
		return 0, nil, err
	}

	f, err := e.fieldMetadata(obj, g.acc)
	if err != nil {
		return 0, nil, err
	}
	if f == nil || !f.HasUnit() {
		return 0, nil, cnserrors.NewWithContext(cnserrors.ErrCodeMetadataMissing,
			fmt.Sprintf("Unit metadata does not exist for %s.", g.acc.Path()),
			map[string]any{"type": g.acc.DeclaringType.String(), "field": field})
	}
	return raw, f, nil
}

// fieldMetadata prefers the instance's own annotation over static metadata.
func (e *Engine) fieldMetadata(obj any, acc *metadata.Accessor) (*metadata.FieldMetadata, error) {
	if p, ok := obj.(metadata.Provider); ok {
		if ann, ok := p.QuantityMetadata(acc.Name, e.culture); ok {
			return e.resolver.Field(acc, ann, e.culture)
		}
	}
	m, err := e.Metadata(obj)
	if err != nil {
		return nil, err
	}
	f, _ := m.Field(acc.Name)
	return f, nil
}

func (e *Engine) getter(owner reflect.Type, name string) (*getter, error) {
	return e.getters.GetOrAdd(memberKey{owner: owner, name: name}, func(k memberKey) (*getter, error) {
		acc, err := metadata.FindAccessor(k.owner, k.name)
		if err != nil {
			return nil, err
		}
		return &getter{acc: acc, read: numericReader(acc)}, nil
	})
}

func numericReader(acc *metadata.Accessor) func(reflect.Value) (float64, error) {
	return func(obj reflect.Value) (float64, error) {
		v, err := acc.Read(obj)
		if err != nil {
			return 0, err
		}
		for v.Kind() == reflect.Interface && !v.IsNil() {
			v = v.Elem()
		}
		if !v.IsValid() {
			return 0, metadata.TypeIncompatible(acc, acc.Type)
		}
		if !units.IsQuantityValueType(v.Type()) {
			return 0, metadata.TypeIncompatible(acc, v.Type())
		}
		return units.ToFloat64(v)
	}
}
