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

// Package status provides utilities for managing the Phase and status fields
// of Syndesis Custom Resources.
//
// It defines shared helpers like ComputePhase and Transition to ensure
// consistent lifecycle management across reconciliations.
package status

import (
	syndesisv1alpha1 "github.com/syndesisio/syndesis-operator/api/v1alpha1"
)

// ComputePhase determines the next installation phase from the current phase
// and the outcome of a configuration resolution run. A transient error keeps
// the installation in Installing so the reconciler can retry; a permanent
// error moves it to StartupFailed.
func ComputePhase(current syndesisv1alpha1.SyndesisPhase, err error, transient bool) syndesisv1alpha1.SyndesisPhase {
	if err != nil {
		if transient {
			return syndesisv1alpha1.SyndesisPhaseInstalling
		}
		return syndesisv1alpha1.SyndesisPhaseStartupFailed
	}
	switch current {
	case "", syndesisv1alpha1.SyndesisPhaseNotInstalled,
		syndesisv1alpha1.SyndesisPhaseInstalling,
		syndesisv1alpha1.SyndesisPhaseStartupFailed:
		return syndesisv1alpha1.SyndesisPhaseInstalled
	default:
		return current
	}
}

// Transition updates the status fields in place and reports whether anything
// changed. Callers use the return value to skip redundant status writes.
func Transition(
	status *syndesisv1alpha1.SyndesisStatus,
	phase syndesisv1alpha1.SyndesisPhase,
	reason, description string,
) bool {
	if status.Phase == phase && status.Reason == reason && status.Description == description {
		return false
	}
	status.Phase = phase
	status.Reason = reason
	status.Description = description
	return true
}
