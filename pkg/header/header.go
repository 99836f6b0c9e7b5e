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

package header

import (
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/unitframe/pkg/defaults"
)

// Kind represents the type of a unitframe output document.
type Kind string

// Valid Kind constants for all output documents.
const (
	KindTypeMetadata Kind = "TypeMetadata"
	KindQuantity     Kind = "Quantity"
	KindUnitCatalog  Kind = "UnitCatalog"
	KindDatalog      Kind = "Datalog"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindTypeMetadata, KindQuantity, KindUnitCatalog, KindDatalog:
		return true
	default:
		return false
	}
}

// Metadata keys set by Init.
const (
	MetadataUID       = "uid"
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
	MetadataCulture   = "culture"
)

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair. Empty values are skipped.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if value == "" {
			return
		}
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind sets the document kind.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion sets the document schema version.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// Header carries the kind, schema version and metadata of a document.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing how the document was produced.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// New creates a Header with a fresh uid and timestamp in the default API
// version, then applies opts.
func New(opts ...Option) *Header {
	h := &Header{}
	h.Init("", defaults.APIVersion, "")
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init resets the header to kind and apiVersion with a new uid, the current
// UTC timestamp and, when set, the tool version.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		MetadataUID:       uuid.NewString(),
		MetadataTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}
}

// UID returns the document uid.
func (h *Header) UID() string {
	return h.Metadata[MetadataUID]
}

// Document is an output document: a header followed by its payload.
type Document struct {
	Header `json:",inline" yaml:",inline"`

	// Spec is the document payload.
	Spec any `json:"spec" yaml:"spec"`
}

// NewDocument wraps spec in a document of kind.
func NewDocument(kind Kind, spec any, opts ...Option) *Document {
	h := New(append([]Option{WithKind(kind)}, opts...)...)
	return &Document{Header: *h, Spec: spec}
}
