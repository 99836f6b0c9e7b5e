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
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "inspect",
		EnableShellCompletion: true,
		Usage:                 "Print the unit metadata of a record type",
		Description: `Print the members of a record type that carry unit metadata: the declared
unit, the units each member may be converted to and its display name.

  unitframe inspect --type FlashProFrame --culture de-DE`,
		Flags: []cli.Flag{
			typeFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rt, err := parseRecordType(cmd)
			if err != nil {
				return err
			}
			e, err := newEngine(cmd)
			if err != nil {
				return err
			}

			m, err := e.MetadataFor(rt.t, e.Culture())
			if err != nil {
				return fmt.Errorf("failed to resolve metadata for %s: %w", rt.t, err)
			}
			return writeDocument(ctx, cmd, header.KindTypeMetadata, m)
		},
	}
}
