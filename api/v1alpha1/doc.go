/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package v1alpha1 defines the API types for the Syndesis Operator.
//
// This package contains the Go type definitions for the syndesis.io API
// group. These types are used by kubebuilder to generate:
//   - CustomResourceDefinitions (CRDs)
//   - DeepCopy methods
//   - Client code
//
// # Custom Resources
//
//   - Syndesis: the declarative desired state for one installation of the
//     integration platform. Administrators author a sparse spec here; every
//     field they leave out keeps the value resolved from the shipped
//     configuration template and the operator environment.
//
// The spec is deliberately a strict subset of the operator's internal
// configuration shape: image references and resource sizing are not part of
// the user-facing API and always come from the template or the environment.
//
// # Versioning
//
// This is the v1alpha1 version, indicating the API is in early development
// and may change in backward-incompatible ways.
package v1alpha1
