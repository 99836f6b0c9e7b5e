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

// Package header provides the envelope written around every unitframe output
// document.
//
// A Document follows the Kubernetes resource convention: kind, apiVersion and
// a metadata map, followed by the payload under spec.
//
//	kind: Quantity
//	apiVersion: unitframe.nvidia.com/v1alpha1
//	metadata:
//	  uid: 5f0c3c1e-6f5e-4a53-9f0e-0d8e3f1b2a77
//	  timestamp: "2025-06-01T12:00:00Z"
//	  version: v0.4.0
//	  culture: en-US
//	spec:
//	  value: 39.37007874015748
//	  unit: Inch
//	  kind: Length
//
// Usage:
//
//	doc := header.NewDocument(header.KindQuantity, q,
//	    header.WithMetadata(header.MetadataVersion, version),
//	    header.WithMetadata(header.MetadataCulture, culture.String()),
//	)
//
// Every header gets a random uid (github.com/google/uuid) so repeated runs of
// the same command produce distinguishable documents.
package header
