package metrics

// IncrementLikeToggled increments the like toggle counter
func (m *Metrics) IncrementLikeToggled() {
	m.safeExecute("IncrementLikeToggled", func() {
		m.LikeToggledTotal.Inc()
	})
}

// IncrementCommentCreated increments the comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// SetWorkspacesTotal sets total workspaces gauge
func (m *Metrics) SetWorkspacesTotal(count int64) {
	m.safeExecute("SetWorkspacesTotal", func() {
		m.WorkspacesTotal.Set(float64(count))
	})
}

// SetLikesTotal sets total likes gauge
func (m *Metrics) SetLikesTotal(count int64) {
	m.safeExecute("SetLikesTotal", func() {
		m.LikesTotal.Set(float64(count))
	})
}

// SetCommentsTotal sets total comments gauge
func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}
