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

package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/NVIDIA/unitframe/pkg/cache"
	cnserrors "github.com/NVIDIA/unitframe/pkg/errors"
	"github.com/NVIDIA/unitframe/pkg/units"
)

// errNotResolved marks a lookup miss so the cache does not retain it.
var errNotResolved = errors.New("not resolved")

var builtinDescriptors = sync.OnceValue(func() map[*units.KindInfo]*KindDescriptor {
	infos := units.Infos()
	m := make(map[*units.KindInfo]*KindDescriptor, len(infos))
	for _, info := range infos {
		m[info] = &KindDescriptor{Info: info, ValueType: info.ValueType, BuiltIn: true}
	}
	return m
})

type kindKey struct {
	unit units.Unit
	hint reflect.Type
}

// Registry resolves unit values to unit and kind descriptors, covering the
// built-in catalog and custom kinds supplied by the host application.
// A Registry is safe for concurrent use.
type Registry struct {
	log *slog.Logger

	units *cache.Cache[units.Unit, *UnitDescriptor]
	kinds *cache.Cache[kindKey, *KindDescriptor]
	gen   atomic.Uint64

	mu          sync.RWMutex
	byValueType map[reflect.Type]*KindDescriptor
	byUnitType  map[reflect.Type]*KindDescriptor
	byName      map[string]*KindDescriptor
	discovered  map[*units.KindInfo]*KindDescriptor
}

// Option is a functional option for configuring a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for discovery diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a Registry with the built-in catalog and no custom kinds.
func New(opts ...Option) *Registry {
	r := &Registry{
		log:         slog.Default(),
		units:       cache.New[units.Unit, *UnitDescriptor]("unit"),
		kinds:       cache.New[kindKey, *KindDescriptor]("kind"),
		byValueType: make(map[reflect.Type]*KindDescriptor),
		byUnitType:  make(map[reflect.Type]*KindDescriptor),
		byName:      make(map[string]*KindDescriptor),
		discovered:  make(map[*units.KindInfo]*KindDescriptor),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterCustomKind registers the kind produced by factory for quantities
// represented by valueType. The kind is validated here so that a broken
// declaration fails at startup rather than on first use.
func (r *Registry) RegisterCustomKind(valueType reflect.Type, factory func() *units.KindInfo) error {
	if valueType == nil {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "custom kind value type is nil")
	}
	if factory == nil {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("custom kind factory for %s is nil", valueType),
			map[string]any{"type": valueType.String()})
	}
	info := factory()
	if info == nil {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("custom kind factory for %s returned no kind", valueType),
			map[string]any{"type": valueType.String()})
	}
	if err := info.Validate(); err != nil {
		return cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid custom kind for %s", valueType), err,
			map[string]any{"type": valueType.String()})
	}
	if info.ValueType != nil && info.ValueType != valueType {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("custom kind %s declares value type %s, registered as %s", info.Name, info.ValueType, valueType),
			map[string]any{"kind": info.Name, "type": valueType.String()})
	}
	if _, ok := units.KindByName(info.Name); ok {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("custom kind %s clashes with a built-in kind", info.Name),
			map[string]any{"kind": info.Name})
	}
	if _, ok := units.KindOf(info.UnitType); ok {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("custom kind %s reuses built-in unit type %s", info.Name, info.UnitType.Name()),
			map[string]any{"kind": info.Name})
	}

	desc := &KindDescriptor{Info: info, ValueType: valueType}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byName[info.Name]; ok && existing.ValueType != valueType {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("custom kind %s is already registered for %s", info.Name, existing.ValueType),
			map[string]any{"kind": info.Name, "type": valueType.String()})
	}
	if existing, ok := r.byUnitType[info.UnitType]; ok && existing.ValueType != valueType {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unit type %s already belongs to custom kind %s", info.UnitType.Name(), existing.Name()),
			map[string]any{"kind": info.Name, "type": valueType.String()})
	}
	r.byValueType[valueType] = desc
	r.byUnitType[info.UnitType] = desc
	r.byName[info.Name] = desc

	// earlier lazy discoveries may have produced a different descriptor
	r.units.Reset()
	r.kinds.Reset()
	r.gen.Add(1)

	r.log.Debug("registered custom quantity kind",
		slog.String("kind", info.Name),
		slog.String("type", valueType.String()),
		slog.Int("units", len(info.Units)))
	return nil
}

// Generation counts successful custom kind registrations. Holders of
// metadata built from earlier lookups compare it to detect staleness.
func (r *Registry) Generation() uint64 {
	return r.gen.Load()
}

// RegisterKind registers the kind reported by the zero value of Q.
func RegisterKind[Q units.KindProvider](r *Registry) error {
	var zero Q
	return r.RegisterCustomKind(reflect.TypeFor[Q](), zero.QuantityInfo)
}

// ResolveKind finds the kind whose unit enum type is the type of unit; the
// value itself need not be listed by the kind. hint is the quantity value
// type to consult when unit is not a built-in unit; it may be nil.
func (r *Registry) ResolveKind(unit units.Unit, hint reflect.Type) (*KindDescriptor, bool) {
	if !usable(unit) {
		return nil, false
	}
	desc, err := r.kinds.GetOrAdd(kindKey{unit: unit, hint: hint}, r.findKind)
	if err != nil {
		return nil, false
	}
	return desc, true
}

// ResolveUnit finds the descriptor of unit. hint is used as in ResolveKind.
func (r *Registry) ResolveUnit(unit units.Unit, hint reflect.Type) (*UnitDescriptor, bool) {
	if !usable(unit) {
		return nil, false
	}
	desc, err := r.units.GetOrAdd(unit, func(u units.Unit) (*UnitDescriptor, error) {
		kind, ok := r.ResolveKind(u, hint)
		if !ok {
			return nil, errNotResolved
		}
		info, ok := kind.Info.Unit(u)
		if !ok {
			return nil, errNotResolved
		}
		return &UnitDescriptor{Unit: u, Info: info, Kind: kind}, nil
	})
	if err != nil {
		return nil, false
	}
	return desc, true
}

func (r *Registry) findKind(key kindKey) (*KindDescriptor, error) {
	if info, _, ok := units.Lookup(key.unit); ok {
		return builtinDescriptors()[info], nil
	}
	unitType := reflect.TypeOf(key.unit)
	if info, ok := units.KindOf(unitType); ok {
		// known kind, unlisted unit value
		return builtinDescriptors()[info], nil
	}

	r.mu.RLock()
	candidates := make([]*KindDescriptor, 0, 2)
	if key.hint != nil {
		if desc, ok := r.byValueType[key.hint]; ok {
			candidates = append(candidates, desc)
		}
	}
	if desc, ok := r.byUnitType[unitType]; ok {
		candidates = append(candidates, desc)
	}
	r.mu.RUnlock()

	for _, desc := range candidates {
		if desc.Info.UnitType == unitType {
			return desc, nil
		}
	}

	if key.hint == nil {
		return nil, errNotResolved
	}
	info := discover(key.hint)
	if info == nil || info.UnitType != unitType {
		r.log.Debug("no quantity kind for unit",
			slog.String("unit", units.QualifiedName(key.unit)),
			slog.String("hint", key.hint.String()))
		return nil, errNotResolved
	}
	valueType := info.ValueType
	if valueType == nil {
		valueType = key.hint
	}

	// one descriptor per discovered kind
	r.mu.Lock()
	defer r.mu.Unlock()
	if desc, ok := r.discovered[info]; ok {
		return desc, nil
	}
	desc := &KindDescriptor{Info: info, ValueType: valueType}
	r.discovered[info] = desc
	r.log.Debug("discovered custom quantity kind",
		slog.String("kind", info.Name),
		slog.String("type", valueType.String()))
	return desc, nil
}

// discover reads the kind from the zero value of t, or of *t.
func discover(t reflect.Type) (info *units.KindInfo) {
	defer func() {
		if recover() != nil {
			info = nil
		}
	}()
	providerType := reflect.TypeFor[units.KindProvider]()
	switch {
	case t.Kind() == reflect.Pointer && t.Elem().Implements(providerType):
		return reflect.New(t.Elem()).Elem().Interface().(units.KindProvider).QuantityInfo()
	case t.Kind() == reflect.Pointer && t.Implements(providerType):
		return reflect.New(t.Elem()).Interface().(units.KindProvider).QuantityInfo()
	case t.Kind() == reflect.Interface:
		return nil
	case t.Implements(providerType):
		return reflect.Zero(t).Interface().(units.KindProvider).QuantityInfo()
	case reflect.PointerTo(t).Implements(providerType):
		return reflect.New(t).Interface().(units.KindProvider).QuantityInfo()
	default:
		return nil
	}
}

// KindType returns the quantity value type of the built-in or registered
// kind called name.
func (r *Registry) KindType(name string) (reflect.Type, bool) {
	if info, ok := units.KindByName(name); ok {
		return info.ValueType, true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if desc, ok := r.byName[name]; ok {
		return desc.ValueType, true
	}
	return nil, false
}

// ParseUnit resolves a unit by name. Names may be qualified by kind
// ("Length.Meter"); kindName, when set, restricts the search to that kind.
func (r *Registry) ParseUnit(name, kindName string) (units.Unit, bool) {
	name = strings.TrimSpace(name)
	if kind, unit, ok := strings.Cut(name, "."); ok {
		if kindName != "" && kindName != kind {
			return nil, false
		}
		kindName, name = kind, unit
	}

	if kindName != "" {
		info := r.kindInfo(kindName)
		if info == nil {
			return nil, false
		}
		u, ok := info.UnitByName(name)
		return u.Value, ok
	}

	if u, ok := units.ParseUnit(name); ok {
		return u, true
	}
	for _, desc := range r.customKinds() {
		if u, ok := desc.Info.UnitByName(name); ok {
			return u.Value, true
		}
	}
	return nil, false
}

func (r *Registry) kindInfo(name string) *units.KindInfo {
	if info, ok := units.KindByName(name); ok {
		return info
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if desc, ok := r.byName[name]; ok {
		return desc.Info
	}
	return nil
}

// Kinds returns the built-in kinds in catalog order followed by the
// registered custom kinds sorted by name.
func (r *Registry) Kinds() []*KindDescriptor {
	builtins := builtinDescriptors()
	infos := units.Infos()
	out := make([]*KindDescriptor, 0, len(infos))
	for _, info := range infos {
		out = append(out, builtins[info])
	}
	return append(out, r.customKinds()...)
}

func (r *Registry) customKinds() []*KindDescriptor {
	r.mu.RLock()
	out := make([]*KindDescriptor, 0, len(r.byName))
	for _, desc := range r.byName {
		out = append(out, desc)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func usable(u units.Unit) bool {
	return u != nil && reflect.TypeOf(u).Comparable()
}
