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
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/unitframe/pkg/dataframe"
	"github.com/NVIDIA/unitframe/pkg/defaults"
	cnserrors "github.com/NVIDIA/unitframe/pkg/errors"
	"github.com/NVIDIA/unitframe/pkg/registry"
	"github.com/NVIDIA/unitframe/pkg/units"
)

func testFrame() FlashProFrame {
	return FlashProFrame{
		Offset: 1500,
		RPM:    1200,
		VSS:    100,
		Gear:   3,
		MAP:    1,
		INJ:    0.5,
		IAT:    20,
		AF:     1,
		STRIM:  0.5,
		LTRIM:  0.25,
		ACCL:   1,
	}
}

func TestFrameQuantities(t *testing.T) {
	e := dataframe.New()
	f := testFrame()

	tests := []struct {
		name  string
		field string
		to    units.Unit
		want  float64
	}{
		{"offset in seconds", "Offset", units.Second, 1.5},
		{"manifold pressure in kPa", "MAP", units.Kilopascal, 100},
		{"intake temperature in F", "IAT", units.DegreeFahrenheit, 68},
		{"duty in percent", "Duty", units.Percent, 50},
		{"air fuel ratio", "AF", GasolineAirFuelRatio, 14.7},
		{"total trim", "Trim", GasolineAirFuelRatio, 11.025},
		{"same unit", "AF", Lambda, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := e.ConvertQuantity(f, tt.field, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, q.Value(), 1e-6)
			assert.Equal(t, tt.to, q.Unit())
		})
	}

	afr, err := dataframe.ConvertQuantityAs[AirFuelRatio](e, f, "AF", GasolineAirFuelRatio)
	require.NoError(t, err)
	assert.Equal(t, GasolineAirFuelRatio, afr.Unit())

	q, err := e.GetQuantity(f, "Gear")
	require.NoError(t, err)
	assert.Equal(t, 3.0, q.Value())
	assert.Equal(t, units.Amount, q.Unit())
}

func TestFrameConversionErrors(t *testing.T) {
	e := dataframe.New()
	f := testFrame()

	_, err := e.ConvertQuantity(f, "STRIM", GasolineAirFuelRatio)
	assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeConversionNotAllowed))

	_, err = e.ConvertQuantity(f, "CAM", units.Radian)
	assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeConversionNotAllowed))

	_, err = e.GetQuantity(f, "ACCL")
	assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeMetadataMissing))

	_, err = e.GetQuantity(f, "Accelerating")
	assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeTypeIncompatible))
}

func TestFrameMetadata(t *testing.T) {
	m, err := dataframe.New().Metadata(FlashProFrame{})
	require.NoError(t, err)

	af, ok := m.Field("AF")
	require.True(t, ok)
	require.True(t, af.HasUnit())
	assert.Equal(t, Lambda, af.Unit.Unit)
	assert.Equal(t, "AirFuelRatio", af.Unit.Kind.Name())
	assert.Equal(t, "Air / fuel ratio", af.DisplayName)
	require.Len(t, af.Conversions, 1)
	assert.Equal(t, GasolineAirFuelRatio, af.Conversions[0].Unit)

	rpm, ok := m.Field("RPM")
	require.True(t, ok)
	assert.Equal(t, "Engine speed", rpm.DisplayName)

	accl, ok := m.Field("ACCL")
	require.True(t, ok)
	assert.False(t, accl.HasUnit())
}

func TestRegister(t *testing.T) {
	reg := registry.New()
	require.NoError(t, Register(reg))
	require.NoError(t, Register(reg))

	u, ok := reg.ParseUnit("AirFuelRatio.GasolineAirFuelRatio", "")
	require.True(t, ok)
	assert.Equal(t, GasolineAirFuelRatio, u)

	kt, ok := reg.KindType("AirFuelRatio")
	require.True(t, ok)
	assert.Equal(t, "AirFuelRatio", kt.Name())
}

func TestAirFuelRatio(t *testing.T) {
	a := NewAirFuelRatio(14.7, GasolineAirFuelRatio)
	assert.Equal(t, "14.7 AFR", a.String())
	assert.Equal(t, "Lambda", Lambda.String())
	assert.Equal(t, "AirFuelRatioUnit(9)", AirFuelRatioUnit(9).String())

	v, err := a.QuantityInfo().Convert(a.Value(), GasolineAirFuelRatio, Lambda)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestFrameDerived(t *testing.T) {
	f := testFrame()
	assert.Equal(t, 1500*time.Millisecond, f.Elapsed())
	assert.InDelta(t, 0.5, f.Duty(), 1e-9)
	assert.InDelta(t, 0.75, f.Trim(), 1e-9)
	assert.True(t, f.Accelerating())
	assert.False(t, f.VTEC())
}

func TestFrameCodec(t *testing.T) {
	first := testFrame()
	second := testFrame()
	second.Offset = 1550
	second.RPM = 1250

	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, first))
	require.NoError(t, WriteFrame(&buf, second))
	assert.Equal(t, 2*FrameSize, buf.Len())

	frames, err := ReadFrames(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []FlashProFrame{first, second}, frames)

	t.Run("little endian offset", func(t *testing.T) {
		assert.Equal(t, uint32(1500), binary.LittleEndian.Uint32(buf.Bytes()[:4]))
	})

	t.Run("empty", func(t *testing.T) {
		frames, err := ReadFrames(bytes.NewReader(nil))
		require.NoError(t, err)
		assert.Empty(t, frames)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := ReadFrames(bytes.NewReader(buf.Bytes()[:FrameSize+3]))
		require.Error(t, err)
		assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeInvalidRequest))
	})
}

func TestCommentCodec(t *testing.T) {
	c := KProComment{Offset: 90 * time.Second, Text: "WOT pull, 3rd gear"}

	var buf bytes.Buffer
	require.NoError(t, WriteComment(&buf, c))

	got, err := ReadComment(&buf)
	require.NoError(t, err)
	assert.Equal(t, c, got)
	assert.Equal(t, `KProComment(1m30s, "WOT pull, 3rd gear")`, got.String())

	t.Run("non ascii", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteComment(&buf, KProComment{Text: "café"}))
		got, err := ReadComment(&buf)
		require.NoError(t, err)
		assert.Equal(t, "caf?", got.Text)
	})

	t.Run("length out of range", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian,
			commentHeader{Offset: 1, Length: int32(defaults.MaxCommentLength + 1)}))
		_, err := ReadComment(&buf)
		assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeInvalidRequest))
	})

	t.Run("truncated text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, commentHeader{Offset: 1, Length: 10}))
		buf.WriteString("short")
		_, err := ReadComment(&buf)
		assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeInvalidRequest))
	})

	t.Run("offset quantity", func(t *testing.T) {
		q, err := dataframe.New().ConvertQuantity(c, "OffsetSeconds", units.Minute)
		require.NoError(t, err)
		assert.InDelta(t, 1.5, q.Value(), 1e-9)
	})
}
