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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/unitframe/pkg/dataframe"
	"github.com/NVIDIA/unitframe/pkg/header"
	"github.com/NVIDIA/unitframe/pkg/units"
)

type quantityView struct {
	Field     string  `json:"field" yaml:"field"`
	Value     float64 `json:"value" yaml:"value"`
	Unit      string  `json:"unit" yaml:"unit"`
	Kind      string  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Formatted string  `json:"formatted" yaml:"formatted"`

	// From is set on conversions and holds the value in its declared unit.
	From *sourceView `json:"from,omitempty" yaml:"from,omitempty"`
}

type sourceView struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

func quantityFlags() []cli.Flag {
	return []cli.Flag{
		typeFlag(),
		inputFlag(),
		indexFlag(),
		fieldFlag(),
		outputFlag(),
		formatFlag(),
	}
}

// loadInput builds the engine and loads the record named by the flags.
func loadInput(ctx context.Context, cmd *cli.Command) (*dataframe.Engine, any, error) {
	rt, err := parseRecordType(cmd)
	if err != nil {
		return nil, nil, err
	}
	e, err := newEngine(cmd)
	if err != nil {
		return nil, nil, err
	}
	path := cmd.String("input")
	obj, err := rt.load(ctx, path, int(cmd.Int("index")))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s from %q: %w", rt.t.Name(), path, err)
	}
	return e, obj, nil
}

func writeQuantity(ctx context.Context, cmd *cli.Command, e *dataframe.Engine, field string, q, from units.Quantity) error {
	v := quantityView{
		Field:     field,
		Value:     q.Value(),
		Unit:      q.Unit().String(),
		Formatted: units.Format(q, e.Culture()),
	}
	if k := q.QuantityInfo(); k != nil {
		v.Kind = k.Name
	}
	if from != nil {
		v.From = ptr.To(sourceView{Value: from.Value(), Unit: from.Unit().String()})
	}
	return writeDocument(ctx, cmd, header.KindQuantity, v)
}

func getCmd() *cli.Command {
	return &cli.Command{
		Name:                  "get",
		EnableShellCompletion: true,
		Usage:                 "Read a record member in its declared unit",
		Description: `Read a numeric member of a record as a quantity in the unit it declares.

  unitframe get --type FlashProFrame --input frame.yaml --field RPM
  unitframe get --type FlashProFrame --input log.bin --index 10 --field AF`,
		Flags: quantityFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, obj, err := loadInput(ctx, cmd)
			if err != nil {
				return err
			}
			field := cmd.String("field")
			q, err := e.GetQuantity(obj, field)
			if err != nil {
				return err
			}
			return writeQuantity(ctx, cmd, e, field, q, nil)
		},
	}
}

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:                  "convert",
		EnableShellCompletion: true,
		Usage:                 "Read a record member converted to another unit",
		Description: `Read a numeric member of a record converted to a unit it allows. Unit names
may be qualified by kind, e.g. Length.Inch or AirFuelRatio.GasolineAirFuelRatio.

  unitframe convert --type FlashProFrame --input frame.yaml --field IAT --to DegreeFahrenheit`,
		Flags: append(quantityFlags(), &cli.StringFlag{
			Name:     "to",
			Usage:    "target unit name",
			Required: true,
		}),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, obj, err := loadInput(ctx, cmd)
			if err != nil {
				return err
			}
			to := cmd.String("to")
			u, ok := e.Registry().ParseUnit(to, "")
			if !ok {
				return fmt.Errorf("to: %q is not a known unit", to)
			}
			field := cmd.String("field")
			slog.Debug("converting quantity", "field", field, "to", units.QualifiedName(u))

			from, err := e.GetQuantity(obj, field)
			if err != nil {
				return err
			}
			q, err := e.ConvertQuantity(obj, field, u)
			if err != nil {
				return err
			}
			return writeQuantity(ctx, cmd, e, field, q, from)
		},
	}
}
