package status

import (
	"errors"
	"testing"

	syndesisv1alpha1 "github.com/syndesisio/syndesis-operator/api/v1alpha1"
)

func TestComputePhase(t *testing.T) {
	resolveErr := errors.New("resolution failed")

	tests := []struct {
		name      string
		current   syndesisv1alpha1.SyndesisPhase
		err       error
		transient bool
		want      syndesisv1alpha1.SyndesisPhase
	}{
		{
			name:    "Empty Phase, Success -> Installed",
			current: "",
			want:    syndesisv1alpha1.SyndesisPhaseInstalled,
		},
		{
			name:    "NotInstalled, Success -> Installed",
			current: syndesisv1alpha1.SyndesisPhaseNotInstalled,
			want:    syndesisv1alpha1.SyndesisPhaseInstalled,
		},
		{
			name:    "Installing, Success -> Installed",
			current: syndesisv1alpha1.SyndesisPhaseInstalling,
			want:    syndesisv1alpha1.SyndesisPhaseInstalled,
		},
		{
			name:    "StartupFailed, Success -> Installed",
			current: syndesisv1alpha1.SyndesisPhaseStartupFailed,
			want:    syndesisv1alpha1.SyndesisPhaseInstalled,
		},
		{
			name:    "Upgrading, Success Keeps Phase",
			current: syndesisv1alpha1.SyndesisPhaseUpgrading,
			want:    syndesisv1alpha1.SyndesisPhaseUpgrading,
		},
		{
			name:    "Permanent Error -> StartupFailed",
			current: syndesisv1alpha1.SyndesisPhaseInstalling,
			err:     resolveErr,
			want:    syndesisv1alpha1.SyndesisPhaseStartupFailed,
		},
		{
			name:      "Transient Error Keeps Installing",
			current:   syndesisv1alpha1.SyndesisPhaseNotInstalled,
			err:       resolveErr,
			transient: true,
			want:      syndesisv1alpha1.SyndesisPhaseInstalling,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputePhase(tt.current, tt.err, tt.transient); got != tt.want {
				t.Errorf("ComputePhase() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransition(t *testing.T) {
	status := &syndesisv1alpha1.SyndesisStatus{}

	changed := Transition(status, syndesisv1alpha1.SyndesisPhaseInstalling, "", "resolving configuration")
	if !changed {
		t.Fatal("expected first transition to report a change")
	}
	if status.Phase != syndesisv1alpha1.SyndesisPhaseInstalling {
		t.Errorf("Phase = %v, want Installing", status.Phase)
	}
	if status.Description != "resolving configuration" {
		t.Errorf("Description = %q, want %q", status.Description, "resolving configuration")
	}

	changed = Transition(status, syndesisv1alpha1.SyndesisPhaseInstalling, "", "resolving configuration")
	if changed {
		t.Error("identical transition should not report a change")
	}

	changed = Transition(status, syndesisv1alpha1.SyndesisPhaseStartupFailed, "DuplicateInstall", "another installation exists")
	if !changed {
		t.Error("expected phase change to report a change")
	}
	if status.Reason != "DuplicateInstall" {
		t.Errorf("Reason = %q, want %q", status.Reason, "DuplicateInstall")
	}
}
