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

package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// StdinPath selects standard input in FromFile.
const StdinPath = "-"

// FormatFromPath determines the serialization format from a file extension:
// .json is JSON, .yaml and .yml are YAML, .table and .txt are Table.
// Matching is case-insensitive; other extensions default to JSON.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// Reader decodes JSON or YAML documents.
//
// Close must be called when the reader owns its input, i.e. when it was
// created with NewFileReader or from an io.ReadCloser. Close is idempotent.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader for input. Table is write-only and rejected.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// NewFileReader creates a Reader for the local file at filePath.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Reader{
		format: format,
		input:  file,
		closer: file,
	}, nil
}

// Deserialize decodes the next document into v, which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}
	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases the input when the reader owns it.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile reads path, or stdin for "-", and decodes it into a T. The read
// is abandoned when ctx is done.
func FromFile[T any](ctx context.Context, path string) (*T, error) {
	return FromFileWithStdin[T](ctx, path, os.Stdin)
}

// FromFileWithStdin is FromFile with an explicit stdin.
func FromFileWithStdin[T any](ctx context.Context, path string, stdin io.Reader) (*T, error) {
	format := FormatYAML
	if path != StdinPath {
		format = FormatFromPath(path)
	}
	slog.Debug("determined input format",
		slog.String("path", path),
		slog.String("format", string(format)),
	)

	var reader *Reader
	var err error
	if path == StdinPath {
		// stdin is not ours to close
		reader, err = NewReader(format, io.NopCloser(stdin))
	} else {
		reader, err = NewFileReader(format, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", path, err)
	}

	done := make(chan readResult[T], 1)
	go func() {
		defer func() {
			if err := reader.Close(); err != nil {
				slog.Warn("failed to close reader", slog.String("path", path), slog.Any("error", err))
			}
		}()
		var res readResult[T]
		res.err = reader.Deserialize(&res.value)
		done <- res
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("reading %q: %w", path, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, res.err)
		}
		slog.Debug("loaded object", slog.String("path", path))
		return &res.value, nil
	}
}

type readResult[T any] struct {
	value T
	err   error
}
