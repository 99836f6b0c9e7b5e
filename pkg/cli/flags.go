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
	"reflect"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"

	"github.com/NVIDIA/unitframe/pkg/dataframe"
	"github.com/NVIDIA/unitframe/pkg/datalog"
	"github.com/NVIDIA/unitframe/pkg/defaults"
	"github.com/NVIDIA/unitframe/pkg/header"
	"github.com/NVIDIA/unitframe/pkg/metadata"
	"github.com/NVIDIA/unitframe/pkg/registry"
	"github.com/NVIDIA/unitframe/pkg/serializer"
)

// Flags are built per command; urfave flags keep parse state.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Value:   defaults.OutputFormat,
		Sources: cli.EnvVars(defaults.EnvPrefix + "FORMAT"),
	}
}

func cultureFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "culture",
		Usage:   "BCP 47 language tag used for display names and number formatting",
		Value:   defaults.Culture.String(),
		Sources: cli.EnvVars(defaults.EnvPrefix + "CULTURE"),
	}
}

func typeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "type",
		Aliases:  []string{"t"},
		Usage:    fmt.Sprintf("record type (supported values: %s)", strings.Join(recordTypeNames(), ", ")),
		Required: true,
	}
}

func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"f"},
		Usage:    "record file (.yaml, .json, or .bin for FlashPro frames); - reads YAML or JSON from stdin",
		Required: true,
	}
}

func indexFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "index",
		Usage: "frame index within a .bin datalog",
	}
}

func fieldFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "field",
		Usage:    "record member to read",
		Required: true,
	}
}

// recordType describes a record the CLI can load.
type recordType struct {
	t    reflect.Type
	load func(ctx context.Context, path string, index int) (any, error)
}

var recordTypes = map[string]recordType{
	"FlashProFrame": {t: reflect.TypeFor[datalog.FlashProFrame](), load: loadFrame},
	"KProComment":   {t: reflect.TypeFor[datalog.KProComment](), load: loadRecord[datalog.KProComment]},
}

func recordTypeNames() []string {
	names := make([]string, 0, len(recordTypes))
	for n := range recordTypes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func parseRecordType(cmd *cli.Command) (recordType, error) {
	n := cmd.String("type")
	rt, ok := recordTypes[n]
	if !ok {
		return recordType{}, fmt.Errorf("type: %q, supported values: %v", n, recordTypeNames())
	}
	return rt, nil
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

func parseCulture(cmd *cli.Command) (language.Tag, error) {
	s := cmd.String("culture")
	if s == "" {
		return defaults.Culture, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid culture %q: %w", s, err)
	}
	return tag, nil
}

// newEngine builds an engine whose registry knows the datalog kinds.
func newEngine(cmd *cli.Command) (*dataframe.Engine, error) {
	culture, err := parseCulture(cmd)
	if err != nil {
		return nil, err
	}
	log := slog.Default()
	reg := registry.New(registry.WithLogger(log))
	if err := datalog.Register(reg); err != nil {
		return nil, fmt.Errorf("failed to register datalog kinds: %w", err)
	}
	resolver := metadata.NewResolver(
		metadata.WithRegistry(reg),
		metadata.WithLogger(log),
		metadata.WithCulture(culture),
	)
	return dataframe.New(dataframe.WithResolver(resolver), dataframe.WithLogger(log)), nil
}

// writeDocument wraps spec in a document of kind and writes it per the
// output and format flags.
func writeDocument(ctx context.Context, cmd *cli.Command, kind header.Kind, spec any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}
	culture, err := parseCulture(cmd)
	if err != nil {
		return err
	}

	doc := header.NewDocument(kind, spec,
		header.WithMetadata(header.MetadataVersion, version),
		header.WithMetadata(header.MetadataCulture, culture.String()),
	)

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()
	return ser.Serialize(ctx, doc)
}
