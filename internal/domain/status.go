package domain

// ProjectStatus is the derived status of a project. It is recomputed from the
// feature set and the feature limit on every read and is never persisted.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "Planning"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusBlocked    ProjectStatus = "Blocked"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

// Precedence returns the sort rank used when listing projects:
// Blocked(0) < In Progress(1) < Planning(2) < Completed(3).
func (s ProjectStatus) Precedence() int {
	switch s {
	case ProjectStatusBlocked:
		return 0
	case ProjectStatusInProgress:
		return 1
	case ProjectStatusPlanning:
		return 2
	case ProjectStatusCompleted:
		return 3
	default:
		return 4
	}
}

// OpenFeatureCount counts features whose status is not done
func OpenFeatureCount(features []Feature) int {
	open := 0
	for _, f := range features {
		if f.Status.IsOpen() {
			open++
		}
	}
	return open
}

// NormalizeFeatureLimit clamps a feature limit to the valid range (>= 1)
func NormalizeFeatureLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	return limit
}

// ClassifyProject derives the project status from its feature set and limit.
// A nil feature slice is treated as empty and a limit below 1 is clamped to 1,
// so the function always returns a valid status. Precedence:
//
//  1. no features            -> Planning
//  2. all features done      -> Completed
//  3. open count >= limit    -> Blocked (inclusive threshold)
//  4. otherwise              -> In Progress
//
// Completedness is checked before blockage, so a project with every feature
// done is Completed regardless of the limit.
func ClassifyProject(features []Feature, featureLimit int) ProjectStatus {
	limit := NormalizeFeatureLimit(featureLimit)

	total := len(features)
	if total == 0 {
		return ProjectStatusPlanning
	}

	open := OpenFeatureCount(features)
	if open == 0 {
		return ProjectStatusCompleted
	}
	if open >= limit {
		return ProjectStatusBlocked
	}
	return ProjectStatusInProgress
}

// IsScopeLocked reports whether feature creation is gated for the given
// feature set and limit: true once the open-feature count has reached the
// limit. The check is evaluated against the current feature set at submission
// time; it is not backed by a database constraint.
func IsScopeLocked(features []Feature, featureLimit int) bool {
	return OpenFeatureCount(features) >= NormalizeFeatureLimit(featureLimit)
}
