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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/unitframe/pkg/header"
	"github.com/NVIDIA/unitframe/pkg/registry"
)

type unitView struct {
	Name         string `json:"name" yaml:"name"`
	Plural       string `json:"plural" yaml:"plural"`
	Abbreviation string `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
}

type kindView struct {
	Name     string     `json:"name" yaml:"name"`
	BaseUnit string     `json:"baseUnit" yaml:"baseUnit"`
	BuiltIn  bool       `json:"builtIn" yaml:"builtIn"`
	Units    []unitView `json:"units" yaml:"units"`
}

func newKindView(k *registry.KindDescriptor) kindView {
	v := kindView{
		Name:     k.Name(),
		BaseUnit: k.Info.BaseUnit.String(),
		BuiltIn:  k.BuiltIn,
		Units:    make([]unitView, 0, len(k.Info.Units)),
	}
	for _, u := range k.Info.Units {
		v.Units = append(v.Units, unitView{
			Name:         u.Name,
			Plural:       u.PluralName,
			Abbreviation: u.Abbreviation,
		})
	}
	return v
}

func unitsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "units",
		EnableShellCompletion: true,
		Usage:                 "List quantity kinds and their units",
		Description: `List every built-in quantity kind and the custom kinds known to the CLI,
with the name, plural and abbreviation of each unit.

Use --kind to list a single kind:

  unitframe units --kind Length`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "kind",
				Usage: "only list this kind",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := newEngine(cmd)
			if err != nil {
				return err
			}

			want := cmd.String("kind")
			var kinds []kindView
			for _, k := range e.Registry().Kinds() {
				if want != "" && k.Name() != want {
					continue
				}
				kinds = append(kinds, newKindView(k))
			}
			if want != "" && len(kinds) == 0 {
				return fmt.Errorf("kind: %q is not a known quantity kind", want)
			}

			return writeDocument(ctx, cmd, header.KindUnitCatalog, kinds)
		},
	}
}
