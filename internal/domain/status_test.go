package domain

import (
	"testing"
)

func featuresWithStatuses(statuses ...FeatureStatus) []Feature {
	features := make([]Feature, 0, len(statuses))
	for _, s := range statuses {
		features = append(features, Feature{Status: s})
	}
	return features
}

func TestClassifyProject(t *testing.T) {
	tests := []struct {
		name         string
		features     []Feature
		featureLimit int
		want         ProjectStatus
	}{
		{
			name:         "no features is Planning",
			features:     []Feature{},
			featureLimit: 3,
			want:         ProjectStatusPlanning,
		},
		{
			name:         "nil features is Planning",
			features:     nil,
			featureLimit: 3,
			want:         ProjectStatusPlanning,
		},
		{
			name:         "all features done is Completed",
			features:     featuresWithStatuses(FeatureStatusDone),
			featureLimit: 3,
			want:         ProjectStatusCompleted,
		},
		{
			name:         "all done is Completed even with limit 1",
			features:     featuresWithStatuses(FeatureStatusDone, FeatureStatusDone, FeatureStatusDone),
			featureLimit: 1,
			want:         ProjectStatusCompleted,
		},
		{
			name:         "open count at limit is Blocked",
			features:     featuresWithStatuses(FeatureStatusPlanned),
			featureLimit: 1,
			want:         ProjectStatusBlocked,
		},
		{
			name:         "open count above limit is Blocked",
			features:     featuresWithStatuses(FeatureStatusPlanned, FeatureStatusInProgress, FeatureStatusPlanned),
			featureLimit: 2,
			want:         ProjectStatusBlocked,
		},
		{
			name:         "open count below limit is In Progress",
			features:     featuresWithStatuses(FeatureStatusPlanned, FeatureStatusInProgress),
			featureLimit: 3,
			want:         ProjectStatusInProgress,
		},
		{
			name:         "done features do not count against the limit",
			features:     featuresWithStatuses(FeatureStatusDone, FeatureStatusDone, FeatureStatusPlanned),
			featureLimit: 2,
			want:         ProjectStatusInProgress,
		},
		{
			name:         "one open plus one done with limit 1 is Blocked",
			features:     featuresWithStatuses(FeatureStatusDone, FeatureStatusPlanned),
			featureLimit: 1,
			want:         ProjectStatusBlocked,
		},
		{
			name:         "in_progress features count as open",
			features:     featuresWithStatuses(FeatureStatusInProgress),
			featureLimit: 1,
			want:         ProjectStatusBlocked,
		},
		{
			name:         "zero limit is clamped to 1",
			features:     featuresWithStatuses(FeatureStatusPlanned),
			featureLimit: 0,
			want:         ProjectStatusBlocked,
		},
		{
			name:         "negative limit is clamped to 1",
			features:     featuresWithStatuses(FeatureStatusPlanned),
			featureLimit: -5,
			want:         ProjectStatusBlocked,
		},
		{
			name:         "clamped limit with no features is still Planning",
			features:     nil,
			featureLimit: -1,
			want:         ProjectStatusPlanning,
		},
		{
			name:         "clamped limit with all done is still Completed",
			features:     featuresWithStatuses(FeatureStatusDone),
			featureLimit: 0,
			want:         ProjectStatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyProject(tt.features, tt.featureLimit)
			if got != tt.want {
				t.Errorf("ClassifyProject() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsScopeLocked(t *testing.T) {
	tests := []struct {
		name         string
		features     []Feature
		featureLimit int
		want         bool
	}{
		{
			name:         "no features is not locked",
			features:     nil,
			featureLimit: 1,
			want:         false,
		},
		{
			name:         "open count below limit is not locked",
			features:     featuresWithStatuses(FeatureStatusPlanned),
			featureLimit: 2,
			want:         false,
		},
		{
			name:         "open count at limit is locked",
			features:     featuresWithStatuses(FeatureStatusPlanned, FeatureStatusInProgress),
			featureLimit: 2,
			want:         true,
		},
		{
			name:         "open count above limit is locked",
			features:     featuresWithStatuses(FeatureStatusPlanned, FeatureStatusPlanned, FeatureStatusPlanned),
			featureLimit: 2,
			want:         true,
		},
		{
			name:         "done features do not lock",
			features:     featuresWithStatuses(FeatureStatusDone, FeatureStatusDone),
			featureLimit: 1,
			want:         false,
		},
		{
			name:         "zero limit behaves as limit 1",
			features:     featuresWithStatuses(FeatureStatusPlanned),
			featureLimit: 0,
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsScopeLocked(tt.features, tt.featureLimit)
			if got != tt.want {
				t.Errorf("IsScopeLocked() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProjectStatus_Precedence(t *testing.T) {
	// Blocked sorts first, Completed last
	ordered := []ProjectStatus{
		ProjectStatusBlocked,
		ProjectStatusInProgress,
		ProjectStatusPlanning,
		ProjectStatusCompleted,
	}

	for i := 1; i < len(ordered); i++ {
		prev, curr := ordered[i-1], ordered[i]
		if prev.Precedence() >= curr.Precedence() {
			t.Errorf("expected %v (rank %d) to sort before %v (rank %d)",
				prev, prev.Precedence(), curr, curr.Precedence())
		}
	}

	unknown := ProjectStatus("Archived")
	if unknown.Precedence() <= ProjectStatusCompleted.Precedence() {
		t.Errorf("unknown status should sort after all known statuses, got rank %d", unknown.Precedence())
	}
}

func TestOpenFeatureCount(t *testing.T) {
	features := featuresWithStatuses(
		FeatureStatusPlanned,
		FeatureStatusInProgress,
		FeatureStatusDone,
		FeatureStatusDone,
	)

	if got := OpenFeatureCount(features); got != 2 {
		t.Errorf("OpenFeatureCount() = %d, want 2", got)
	}
	if got := OpenFeatureCount(nil); got != 0 {
		t.Errorf("OpenFeatureCount(nil) = %d, want 0", got)
	}
}

func TestNormalizeFeatureLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{limit: -10, want: 1},
		{limit: 0, want: 1},
		{limit: 1, want: 1},
		{limit: 5, want: 5},
	}

	for _, tt := range tests {
		if got := NormalizeFeatureLimit(tt.limit); got != tt.want {
			t.Errorf("NormalizeFeatureLimit(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestFeatureStatus_IsValid(t *testing.T) {
	valid := []FeatureStatus{FeatureStatusPlanned, FeatureStatusInProgress, FeatureStatusDone}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []FeatureStatus{"", "blocked", "DONE", "completed"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
