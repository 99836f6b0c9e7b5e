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

// Package serializer writes command output documents and reads input records
// in JSON or YAML.
//
// Three output formats are supported:
//   - JSON: indented, machine readable
//   - YAML: human readable, the CLI default
//   - Table: flattened FIELD/VALUE rows; values implementing fmt.Stringer,
//     such as quantities, are printed with String
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, doc); err != nil {
//		return err
//	}
//
// Reading a record:
//
//	frame, err := serializer.FromFile[datalog.FlashProFrame](ctx, "frame.yaml")
//
// The input format is derived from the file extension; "-" reads stdin as
// YAML, which also accepts JSON documents.
package serializer
