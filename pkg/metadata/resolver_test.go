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
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	cnserrors "github.com/NVIDIA/unitframe/pkg/errors"
	"github.com/NVIDIA/unitframe/pkg/units"
)

func unitsOf(f *FieldMetadata) []units.Unit {
	out := make([]units.Unit, 0, len(f.Conversions))
	for _, c := range f.Conversions {
		out = append(out, c.Unit)
	}
	return out
}

func TestResolveBox(t *testing.T) {
	r := NewResolver()
	m, err := r.Resolve(reflect.TypeFor[Box](), language.Und)
	require.NoError(t, err)

	assert.Equal(t, []string{"Width", "Height", "Depth", "Weight", "Items", "Volume"}, m.Names())
	assert.Equal(t, 6, m.Len())
	assert.Equal(t, language.AmericanEnglish, m.Culture)

	tests := []struct {
		field       string
		unit        units.Unit
		conversions []units.Unit
		getter      bool
	}{
		{"Width", units.Meter, []units.Unit{units.Decimeter, units.Centimeter, units.Inch}, false},
		{"Height", units.Meter, []units.Unit{units.Centimeter, units.Foot}, false},
		{"Depth", units.Meter, []units.Unit{units.Millimeter, units.Yard}, false},
		{"Weight", units.Kilogram, []units.Unit{units.Gram, units.Pound}, false},
		{"Items", units.Amount, []units.Unit{}, false},
		{"Volume", units.CubicMeter, []units.Unit{units.CubicDecimeter, units.CubicInch}, true},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f, ok := m.Field(tt.field)
			require.True(t, ok)
			require.True(t, f.HasUnit())
			assert.Equal(t, tt.unit, f.Unit.Unit)
			assert.Equal(t, tt.conversions, unitsOf(f))
			assert.Equal(t, tt.getter, f.Accessor.IsMethod())
			assert.Equal(t, reflect.TypeFor[Box](), f.Accessor.DeclaringType)
			assert.Equal(t, tt.field, f.DisplayName)
		})
	}

	_, ok := m.Field("SerialNumber")
	assert.False(t, ok)
	_, ok = m.Field("Priority")
	assert.False(t, ok)
}

func TestResolveIsCached(t *testing.T) {
	r := NewResolver()
	first, err := r.Resolve(reflect.TypeFor[Box](), language.AmericanEnglish)
	require.NoError(t, err)

	for _, typ := range []reflect.Type{
		reflect.TypeFor[Box](),
		reflect.TypeFor[*Box](),
		reflect.TypeFor[[]Box](),
		reflect.TypeFor[[]*Box](),
		reflect.TypeFor[[3]Box](),
	} {
		m, err := r.Resolve(typ, language.Und)
		require.NoError(t, err)
		assert.Same(t, first, m, "%s", typ)
	}

	german, err := r.Resolve(reflect.TypeFor[Box](), language.German)
	require.NoError(t, err)
	assert.NotSame(t, first, german)
	assert.Equal(t, language.German, german.Culture)
	assert.Equal(t, first.Names(), german.Names())
}

func TestResolveInterfaceSchema(t *testing.T) {
	r := NewResolver()
	require.NoError(t, Register[HardDriveInfo](r, hardDriveSchema))

	for _, typ := range []reflect.Type{reflect.TypeFor[HardDrive](), reflect.TypeFor[HardDriveInfo]()} {
		t.Run(typ.String(), func(t *testing.T) {
			m, err := r.Resolve(typ, language.Und)
			require.NoError(t, err)
			assert.Equal(t, []string{"Capacity", "FreeSpace"}, m.Names())
			for _, f := range m.Fields() {
				assert.Equal(t, units.Gigabyte, f.Unit.Unit)
				assert.Equal(t, []units.Unit{units.Kilobyte}, unitsOf(f))
				assert.True(t, f.Accessor.IsMethod())
			}
		})
	}

	f, ok := mustResolve(t, r, HardDrive{}).Field("FreeSpace")
	require.True(t, ok)
	assert.Equal(t, "Free Space", f.DisplayName)

	v, err := f.Accessor.Read(reflect.ValueOf(HardDrive{capacity: 128, freeSpace: 64}))
	require.NoError(t, err)
	assert.Equal(t, 64.0, v.Float())
}

func TestResolveCustomKind(t *testing.T) {
	r := NewResolver()
	m := mustResolve(t, r, Employee{})

	assert.Equal(t, []string{"Coolness"}, m.Names())
	f, _ := m.Field("Coolness")
	require.True(t, f.HasUnit())
	assert.Equal(t, MegaFonzie, f.Unit.Unit)
	assert.Equal(t, "Coolness", f.Unit.Kind.Name())
	assert.False(t, f.Unit.Kind.BuiltIn)
	assert.Equal(t, []units.Unit{Fonzie}, unitsOf(f))
	assert.Equal(t, reflect.TypeFor[Coolness](), f.Kind)
}

func TestResolveSoftAbsence(t *testing.T) {
	r := NewResolver()
	m := mustResolve(t, r, Rubbish{})

	f, ok := m.Field("Coolness")
	require.True(t, ok)
	assert.False(t, f.HasUnit())
	assert.Empty(t, f.Conversions)
}

func TestResolveTagOptions(t *testing.T) {
	r := NewResolver()
	m := mustResolve(t, r, DynoData{})

	hp, _ := m.Field("Horsepower")
	assert.Equal(t, "Engine Horsepower", hp.DisplayName)
	assert.Equal(t, units.MechanicalHorsepower, hp.Unit.Unit)
	assert.Equal(t, []units.Unit{units.Kilowatt}, unitsOf(hp))

	torque, _ := m.Field("Torque")
	assert.Equal(t, "Torque", torque.DisplayName)
	assert.Equal(t, []units.Unit{units.NewtonMeter}, unitsOf(torque))

	shelf := mustResolve(t, r, Shelf{})
	assert.Equal(t, []string{"Width", "Notes"}, shelf.Names())
	notes, _ := shelf.Field("Notes")
	assert.False(t, notes.HasUnit())
	assert.Equal(t, []units.Unit{units.Meter}, unitsOf(notes))
}

func TestResolveErrors(t *testing.T) {
	r := NewResolver()

	_, err := r.Resolve(reflect.TypeFor[Blob](), language.Und)
	require.Error(t, err)
	assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeTypeIncompatible))
	assert.Contains(t, err.Error(), "Blob.Data type of string is not compatible with units.QuantityValue.")

	_, err = r.Resolve(reflect.TypeFor[Garbage](), language.Und)
	require.Error(t, err)
	assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeInvalidRequest))
	assert.Contains(t, err.Error(), "Garbage.Odor")

	_, err = r.Resolve(nil, language.Und)
	assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeInvalidRequest))
}

func TestResolveEmbedded(t *testing.T) {
	r := NewResolver()

	t.Run("inherits", func(t *testing.T) {
		m := mustResolve(t, r, Crate{})
		assert.Equal(t, []string{"Width", "Height", "Depth", "Weight", "Items", "Volume"}, m.Names())
		w, _ := m.Field("Width")
		assert.Equal(t, reflect.TypeFor[Box](), w.Accessor.DeclaringType)

		v, err := w.Accessor.Read(reflect.ValueOf(Crate{Box: Box{Width: 3}}))
		require.NoError(t, err)
		assert.Equal(t, 3.0, v.Float())
	})

	t.Run("overrides", func(t *testing.T) {
		m := mustResolve(t, r, Tube{})
		w, _ := m.Field("Width")
		assert.Equal(t, units.Centimeter, w.Unit.Unit)
		assert.Empty(t, w.Conversions)
		assert.Equal(t, reflect.TypeFor[Tube](), w.Accessor.DeclaringType)
		assert.Equal(t, 6, m.Len())
	})

	t.Run("tag overrides base schema", func(t *testing.T) {
		m := mustResolve(t, r, Veneer{})
		w, ok := m.Field("Width")
		require.True(t, ok)
		assert.Equal(t, units.Centimeter, w.Unit.Unit)
		assert.Empty(t, w.Conversions)
		assert.Equal(t, reflect.TypeFor[Veneer](), w.Accessor.DeclaringType)

		m = mustResolve(t, r, Carton{})
		v, ok := m.Field("Volume")
		require.True(t, ok)
		assert.Equal(t, units.Liter, v.Unit.Unit)
		assert.False(t, v.Accessor.IsMethod())
	})

	t.Run("own schema overrides base schema", func(t *testing.T) {
		m := mustResolve(t, r, Plank{})
		w, ok := m.Field("Width")
		require.True(t, ok)
		assert.Equal(t, units.Millimeter, w.Unit.Unit)
	})

	t.Run("promoted base schema", func(t *testing.T) {
		m := mustResolve(t, r, Slab{})
		w, ok := m.Field("Width")
		require.True(t, ok)
		assert.Equal(t, units.Meter, w.Unit.Unit)
		assert.Equal(t, []units.Unit{units.Inch}, unitsOf(w))
	})

	t.Run("shadows", func(t *testing.T) {
		m := mustResolve(t, r, Sleeve{})
		h, _ := m.Field("Height")
		assert.Equal(t, units.Meter, h.Unit.Unit)
		assert.Equal(t, []units.Unit{units.Centimeter, units.Foot}, unitsOf(h))
		assert.Equal(t, reflect.TypeFor[Sleeve](), h.Accessor.DeclaringType)
		assert.Equal(t, reflect.TypeFor[float32](), h.Accessor.Type)
	})

	t.Run("nil embedded pointer", func(t *testing.T) {
		m := mustResolve(t, r, Pallet{})
		w, ok := m.Field("Width")
		require.True(t, ok)
		_, err := w.Accessor.Read(reflect.ValueOf(Pallet{}))
		assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeAccessorMissing))

		vol, ok := m.Field("Volume")
		require.True(t, ok)
		_, err = vol.Accessor.Read(reflect.ValueOf(Pallet{}))
		assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeAccessorMissing))
	})
}

func TestRegister(t *testing.T) {
	r := NewResolver()

	before := mustResolve(t, r, Rubbish{})
	f, _ := before.Field("Coolness")
	require.False(t, f.HasUnit())

	require.NoError(t, Register[Rubbish](r, Schema{
		"Coolness": {Unit: Fonzie, Kind: reflect.TypeFor[Coolness]()},
	}))

	after := mustResolve(t, r, Rubbish{})
	assert.NotSame(t, before, after)
	f, _ = after.Field("Coolness")
	require.True(t, f.HasUnit())
	assert.Equal(t, Fonzie, f.Unit.Unit)

	err := Register[Box](r, Schema{"Bogus": {Unit: units.Meter}})
	require.Error(t, err)
	assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeInvalidRequest))

	assert.Error(t, r.Register(nil, Schema{}))
}

func TestResolveConcurrent(t *testing.T) {
	r := NewResolver()
	require.NoError(t, Register[HardDriveInfo](r, hardDriveSchema))

	types := []reflect.Type{
		reflect.TypeFor[Box](),
		reflect.TypeFor[HardDrive](),
		reflect.TypeFor[Employee](),
		reflect.TypeFor[DynoData](),
	}
	results := make([]*TypeMetadata, 64)

	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			m, err := r.Resolve(types[i%len(types)], language.Und)
			results[i] = m
			return err
		})
	}
	require.NoError(t, g.Wait())

	for i, m := range results {
		assert.Same(t, results[i%len(types)], m)
	}
}

func TestMetadataEncoding(t *testing.T) {
	m := mustResolve(t, NewResolver(), DynoData{})

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var doc struct {
		Type    string `json:"type"`
		Culture string `json:"culture"`
		Fields  []struct {
			Name        string   `json:"name"`
			DisplayName string   `json:"displayName"`
			Kind        string   `json:"kind"`
			Unit        string   `json:"unit"`
			Conversions []string `json:"conversions"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "en-US", doc.Culture)
	require.Len(t, doc.Fields, 3)
	assert.Equal(t, "Horsepower", doc.Fields[0].Name)
	assert.Equal(t, "Engine Horsepower", doc.Fields[0].DisplayName)
	assert.Equal(t, "Power", doc.Fields[0].Kind)
	assert.Equal(t, "MechanicalHorsepower", doc.Fields[0].Unit)
	assert.Equal(t, []string{"Kilowatt"}, doc.Fields[0].Conversions)

	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), "unit: PoundForceFoot")
}

func mustResolve(t *testing.T, r *Resolver, obj any) *TypeMetadata {
	t.Helper()
	m, err := r.Resolve(reflect.TypeOf(obj), language.Und)
	require.NoError(t, err)
	return m
}
