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
	"log/slog"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"

	"github.com/NVIDIA/unitframe/pkg/cache"
	"github.com/NVIDIA/unitframe/pkg/defaults"
	cnserrors "github.com/NVIDIA/unitframe/pkg/errors"
	"github.com/NVIDIA/unitframe/pkg/registry"
	"github.com/NVIDIA/unitframe/pkg/units"
)

type typeKey struct {
	t       reflect.Type
	culture string
}

// Resolver builds and caches TypeMetadata. It is safe for concurrent use.
type Resolver struct {
	log      *slog.Logger
	registry *registry.Registry
	culture  language.Tag

	types *cache.Cache[typeKey, *TypeMetadata]
	group singleflight.Group
	gen   atomic.Uint64

	mu      sync.RWMutex
	schemas map[reflect.Type]Schema
	ifaces  []reflect.Type
}

// Option is a functional option for configuring a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// WithRegistry sets the unit registry. A new registry is created otherwise.
func WithRegistry(reg *registry.Registry) Option {
	return func(r *Resolver) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// WithCulture sets the culture used when Resolve is given language.Und.
func WithCulture(tag language.Tag) Option {
	return func(r *Resolver) {
		if tag != language.Und {
			r.culture = tag
		}
	}
}

// NewResolver creates a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		log:     slog.Default(),
		culture: defaults.Culture,
		types:   cache.New[typeKey, *TypeMetadata]("type"),
		schemas: make(map[reflect.Type]Schema),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = registry.New(registry.WithLogger(r.log))
	}
	return r
}

// Registry returns the unit registry the resolver resolves against.
func (r *Resolver) Registry() *registry.Registry {
	return r.registry
}

// Culture returns the default culture.
func (r *Resolver) Culture() language.Tag {
	return r.culture
}

// Register attaches schema to t. Interface schemas apply to every type that
// implements the interface, in registration order. Registering clears
// previously resolved type metadata. Registration is a startup activity: a
// Resolve already in flight when the cache is cleared may still store
// metadata built from the previous schemas.
func (r *Resolver) Register(t reflect.Type, schema Schema) error {
	if t == nil {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "cannot register a schema for a nil type")
	}
	t = elem(t)
	for name := range schema {
		if _, err := FindAccessor(t, name); err != nil {
			return cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
				fmt.Sprintf("schema for %s names an unreadable member", t.Name()), err,
				map[string]any{"type": t.String(), "field": name})
		}
	}

	r.mu.Lock()
	if _, exists := r.schemas[t]; !exists && t.Kind() == reflect.Interface {
		r.ifaces = append(r.ifaces, t)
	}
	r.schemas[t] = schema
	r.mu.Unlock()

	r.types.Reset()
	r.log.Debug("registered quantity schema",
		slog.String("type", t.String()),
		slog.Int("fields", len(schema)))
	return nil
}

// Register attaches schema to T.
func Register[T any](r *Resolver, schema Schema) error {
	return r.Register(reflect.TypeFor[T](), schema)
}

// Resolve returns the metadata of t for culture. Pointer, slice and array
// types resolve to their element type. language.Und selects the resolver's
// default culture.
func (r *Resolver) Resolve(t reflect.Type, culture language.Tag) (*TypeMetadata, error) {
	if t == nil {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "cannot resolve metadata of a nil type")
	}
	if culture == language.Und {
		culture = r.culture
	}
	if g := r.registry.Generation(); r.gen.Swap(g) != g {
		// a custom kind registered since metadata was cached
		r.types.Reset()
	}
	key := typeKey{t: elem(t), culture: culture.String()}
	if m, ok := r.types.TryGet(key); ok {
		return m, nil
	}

	flight := fmt.Sprintf("%s/%s|%s", key.t.PkgPath(), key.t.String(), key.culture)
	v, err, _ := r.group.Do(flight, func() (any, error) {
		start := time.Now()
		defer func() { resolveDuration.Observe(time.Since(start).Seconds()) }()
		return r.resolve(key, culture, map[reflect.Type]bool{})
	})
	if err != nil {
		return nil, err
	}
	return v.(*TypeMetadata), nil
}

// Field resolves a single annotation for the member read by acc.
func (r *Resolver) Field(acc *Accessor, ann Annotation, culture language.Tag) (*FieldMetadata, error) {
	if culture == language.Und {
		culture = r.culture
	}
	f := r.field(acc, ann, culture)
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *Resolver) resolve(key typeKey, culture language.Tag, visiting map[reflect.Type]bool) (*TypeMetadata, error) {
	if m, ok := r.types.TryGet(key); ok {
		return m, nil
	}
	if visiting[key.t] {
		return newTypeMetadata(key.t, culture, nil), nil
	}
	visiting[key.t] = true
	defer delete(visiting, key.t)

	m, err := r.build(key.t, culture, visiting)
	if err != nil {
		return nil, err
	}
	return r.types.Add(key, m), nil
}

// source is one layer's declaration for a member: an annotation, or
// metadata inherited from an embedded struct.
type source struct {
	ann       *Annotation
	inherited *FieldMetadata
	embed     []int
}

func (r *Resolver) build(t reflect.Type, culture language.Tag, visiting map[reflect.Type]bool) (*TypeMetadata, error) {
	merged := make(map[string]source)
	ignored := make(map[string]bool)

	// embedded base layer, first embedding wins
	if t.Kind() == reflect.Struct {
		base := make(map[string]source)
		for i := range t.NumField() {
			sf := t.Field(i)
			et := elem(sf.Type)
			if !sf.Anonymous || (et.Kind() != reflect.Struct && et.Kind() != reflect.Interface) {
				continue
			}
			if sf.Tag.Get(TagName) == "-" {
				continue
			}
			inner, err := r.resolve(typeKey{t: et, culture: culture.String()}, culture, visiting)
			if err != nil {
				return nil, err
			}
			for _, f := range inner.fields {
				if _, seen := base[f.Name()]; !seen {
					base[f.Name()] = source{inherited: f, embed: sf.Index}
				}
			}
		}
		for name, s := range base {
			merged[name] = s
		}
	}

	// interface layer, first registered wins
	r.mu.RLock()
	ifaceLayer := make(map[string]source)
	for _, it := range r.ifaces {
		if it == t || !(t.Implements(it) || (t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(it))) {
			continue
		}
		for name, ann := range r.schemas[it] {
			if _, seen := ifaceLayer[name]; !seen {
				ifaceLayer[name] = source{ann: &ann}
			}
		}
	}
	registered, hasRegistered := r.schemas[t]
	r.mu.RUnlock()
	for name, s := range ifaceLayer {
		merged[name] = s
	}

	// own layer: tags, then QuantitySchema, then registered schema
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			sf := t.Field(i)
			tag, ok := sf.Tag.Lookup(TagName)
			if !ok || sf.Anonymous {
				continue
			}
			spec, ignore, err := parseTag(t, sf.Name, tag)
			if err != nil {
				return nil, err
			}
			if ignore {
				ignored[sf.Name] = true
				delete(merged, sf.Name)
				continue
			}
			ann := r.tagAnnotation(t, sf.Name, spec)
			merged[sf.Name] = source{ann: &ann}
		}
	}
	if schema, ok := ownSchema(t); ok {
		for name, ann := range schema {
			merged[name] = source{ann: &ann}
		}
	}
	if hasRegistered {
		for name, ann := range registered {
			merged[name] = source{ann: &ann}
		}
	}

	fields := make([]*FieldMetadata, 0, len(merged))
	for _, name := range memberOrder(t, merged) {
		if ignored[name] {
			continue
		}
		f, err := r.member(t, name, merged[name], culture)
		if err != nil {
			return nil, err
		}
		if f == nil {
			continue
		}
		if err := f.Validate(); err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	r.log.Debug("resolved type metadata",
		slog.String("type", t.String()),
		slog.String("culture", culture.String()),
		slog.Int("fields", len(fields)))
	return newTypeMetadata(t, culture, fields), nil
}

func (r *Resolver) member(t reflect.Type, name string, s source, culture language.Tag) (*FieldMetadata, error) {
	acc, err := FindAccessor(t, name)
	if s.inherited != nil {
		if err != nil {
			acc = promoted(t, s.embed, s.inherited.Accessor)
			if acc == nil {
				r.log.Debug("inherited quantity member is not reachable",
					slog.String("type", t.String()),
					slog.String("field", name))
				return nil, nil
			}
		}
		return s.inherited.Clone(WithAccessor(acc), WithFieldCulture(culture)), nil
	}
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("quantity annotation on %s names an unreadable member", t.Name()), err,
			map[string]any{"type": t.String(), "field": name})
	}
	return r.field(acc, *s.ann, culture), nil
}

// promoted builds the accessor of a field reached through the embedded field
// at embed when plain name lookup on t is ambiguous.
func promoted(t reflect.Type, embed []int, inner *Accessor) *Accessor {
	if inner.method || t.Kind() != reflect.Struct {
		return nil
	}
	index := append(append([]int(nil), embed...), inner.index...)
	return &Accessor{
		Name:          inner.Name,
		DeclaringType: inner.DeclaringType,
		Type:          inner.Type,
		index:         index,
	}
}

// field resolves an annotation. Units that do not resolve are left absent and
// allow-list entries that do not resolve are dropped.
func (r *Resolver) field(acc *Accessor, ann Annotation, culture language.Tag) *FieldMetadata {
	f := &FieldMetadata{
		Accessor:    acc,
		Kind:        ann.Kind,
		DisplayName: ann.DisplayName,
		Culture:     culture,
	}
	if f.DisplayName == "" {
		f.DisplayName = DisplayName(acc.Name, culture)
	}

	if ann.Unit != nil {
		if u, ok := r.registry.ResolveUnit(ann.Unit, ann.Kind); ok {
			f.Unit = u
		} else {
			r.log.Debug("declared unit did not resolve",
				slog.String("field", acc.Path()),
				slog.String("unit", units.QualifiedName(ann.Unit)))
		}
	}

	hint := ann.Kind
	if hint == nil && f.Unit != nil {
		hint = f.Unit.Kind.ValueType
	}
	for _, c := range ann.Conversions {
		u, ok := r.registry.ResolveUnit(c, hint)
		if !ok || (f.Unit != nil && u.Kind.Info != f.Unit.Kind.Info) {
			r.log.Debug("dropped conversion target",
				slog.String("field", acc.Path()),
				slog.String("unit", units.QualifiedName(c)))
			continue
		}
		if _, dup := f.CanConvertTo(u.Unit); dup {
			continue
		}
		f.Conversions = append(f.Conversions, u)
	}
	return f
}

func (r *Resolver) tagAnnotation(t reflect.Type, field string, spec tagSpec) Annotation {
	ann := Annotation{DisplayName: spec.display}
	if spec.kind != "" {
		if kt, ok := r.registry.KindType(spec.kind); ok {
			ann.Kind = kt
		} else {
			r.log.Debug("quantity kind did not resolve",
				slog.String("field", t.Name()+"."+field),
				slog.String("kind", spec.kind))
		}
	}

	kindName := spec.kind
	if spec.unit != "" {
		if u, ok := r.registry.ParseUnit(spec.unit, spec.kind); ok {
			ann.Unit = u
			if kind, ok := r.registry.ResolveKind(u, ann.Kind); ok {
				kindName = kind.Name()
			}
		} else {
			r.log.Debug("declared unit name did not resolve",
				slog.String("field", t.Name()+"."+field),
				slog.String("unit", spec.unit))
		}
	}
	for _, name := range spec.conversions {
		if u, ok := r.registry.ParseUnit(name, kindName); ok {
			ann.Conversions = append(ann.Conversions, u)
		} else {
			r.log.Debug("conversion target name did not resolve",
				slog.String("field", t.Name()+"."+field),
				slog.String("unit", name))
		}
	}
	return ann
}

// staticSchema calls QuantitySchema on the zero value of t or *t.
func staticSchema(t reflect.Type) (schema Schema, ok bool) {
	defer func() {
		// promoted through a nil embedded pointer
		if recover() != nil {
			schema, ok = nil, false
		}
	}()
	switch {
	case t.Kind() == reflect.Interface:
		return nil, false
	case t.Implements(schemaProviderType):
		return reflect.Zero(t).Interface().(SchemaProvider).QuantitySchema(), true
	case reflect.PointerTo(t).Implements(schemaProviderType):
		return reflect.New(t).Interface().(SchemaProvider).QuantitySchema(), true
	default:
		return nil, false
	}
}

// ownSchema returns the QuantitySchema t declares itself. A schema promoted
// from an embedded field is the one that field returns and is already part
// of the embedded base layer.
func ownSchema(t reflect.Type) (Schema, bool) {
	schema, ok := staticSchema(t)
	if !ok || t.Kind() != reflect.Struct {
		return schema, ok
	}
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.Anonymous {
			continue
		}
		if inherited, ok := staticSchema(sf.Type); ok && reflect.DeepEqual(schema, inherited) {
			return nil, false
		}
	}
	return schema, true
}

// memberOrder lists struct fields in declaration order, promoted fields at
// the position of their embedding, then the remaining members by name.
func memberOrder(t reflect.Type, members map[string]source) []string {
	order := make([]string, 0, len(members))
	placed := make(map[string]bool, len(members))
	if t.Kind() == reflect.Struct {
		for _, sf := range reflect.VisibleFields(t) {
			if _, ok := members[sf.Name]; ok && !sf.Anonymous && !placed[sf.Name] {
				order = append(order, sf.Name)
				placed[sf.Name] = true
			}
		}
	}
	rest := make([]string, 0, len(members)-len(order))
	for name := range members {
		if !placed[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

// elem strips pointer, slice and array wrappers.
func elem(t reflect.Type) reflect.Type {
	for {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array:
			t = t.Elem()
		default:
			return t
		}
	}
}
