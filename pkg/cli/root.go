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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/unitframe/pkg/defaults"
	"github.com/NVIDIA/unitframe/pkg/logging"
)

const (
	name           = "unitframe"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the CLI with os.Args and exits non-zero on failure.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Read and convert unit-annotated quantities in Go records",
		Description: `unitframe reads numeric members of records as quantities in their declared
units and converts them to the units each member allows.

Commands:
  units    lists the unit catalog
  inspect  prints the unit metadata of a record type
  get      reads a member of a record in its declared unit
  convert  reads a member of a record converted to another unit`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   fmt.Sprintf("log level (debug, info, warn, error); defaults to $%s, then info", logging.EnvLogLevel),
				Sources: cli.EnvVars(defaults.EnvPrefix + "LOG_LEVEL"),
			},
			cultureFlag(),
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.IsSet("log-level") {
				logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			} else {
				logging.SetDefaultStructuredLogger(name, version)
			}
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			unitsCmd(),
			inspectCmd(),
			getCmd(),
			convertCmd(),
		},
	}
}
