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
	"os"
	"strings"

	"github.com/NVIDIA/unitframe/pkg/datalog"
	"github.com/NVIDIA/unitframe/pkg/defaults"
	"github.com/NVIDIA/unitframe/pkg/serializer"
)

func loadRecord[T any](ctx context.Context, path string, _ int) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.ReadTimeout)
	defer cancel()

	v, err := serializer.FromFile[T](ctx, path)
	if err != nil {
		return nil, err
	}
	return *v, nil
}

// loadFrame reads a frame from a YAML or JSON record, or frame index from a
// binary datalog.
func loadFrame(ctx context.Context, path string, index int) (any, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".bin") {
		return loadRecord[datalog.FlashProFrame](ctx, path, index)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open datalog: %w", err)
	}
	defer f.Close()

	frames, err := datalog.ReadFrames(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read datalog %q: %w", path, err)
	}
	if index < 0 || index >= len(frames) {
		return nil, fmt.Errorf("frame index %d out of range, datalog %q has %d frames", index, path, len(frames))
	}
	return frames[index], nil
}
