package metrics

// IncrementProjectCreated increments project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.safeExecute("IncrementProjectCreated", func() {
		m.ProjectCreatedTotal.Inc()
	})
}

// IncrementFeatureCreated increments feature creation counter
func (m *Metrics) IncrementFeatureCreated() {
	m.safeExecute("IncrementFeatureCreated", func() {
		m.FeatureCreatedTotal.Inc()
	})
}

// IncrementScopeLockRejected increments the counter of feature creations
// rejected because the project's open-feature limit was reached
func (m *Metrics) IncrementScopeLockRejected() {
	m.safeExecute("IncrementScopeLockRejected", func() {
		m.ScopeLockRejectionsTotal.Inc()
	})
}

// AddPurgedRecords adds to the purge counter for a table
func (m *Metrics) AddPurgedRecords(table string, count int64) {
	m.safeExecute("AddPurgedRecords", func() {
		m.PurgedRecordsTotal.WithLabelValues(table).Add(float64(count))
	})
}

// SetProjectsTotal sets total projects gauge
func (m *Metrics) SetProjectsTotal(count int64) {
	m.safeExecute("SetProjectsTotal", func() {
		m.ProjectsTotal.Set(float64(count))
	})
}

// SetFeaturesTotal sets total features gauge
func (m *Metrics) SetFeaturesTotal(count int64) {
	m.safeExecute("SetFeaturesTotal", func() {
		m.FeaturesTotal.Set(float64(count))
	})
}
