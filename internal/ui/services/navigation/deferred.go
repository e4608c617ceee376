package navigation

// CloseTimer tracks a single deferred close. Schedule hands out a token that
// the host echoes back through Fire once the grace delay has elapsed; any
// Cancel or later Schedule in between makes that token stale.
type CloseTimer struct {
	generation uint64
	pending    bool
}

// Schedule arms a deferred close and returns its token
func (t *CloseTimer) Schedule() uint64 {
	t.generation++
	t.pending = true
	return t.generation
}

// Cancel drops the pending close, if any
func (t *CloseTimer) Cancel() {
	if !t.pending {
		return
	}
	t.generation++
	t.pending = false
}

// Fire reports whether token belongs to the close that is still pending and
// consumes it
func (t *CloseTimer) Fire(token uint64) bool {
	if !t.pending || token != t.generation {
		return false
	}
	t.pending = false
	return true
}

// Pending reports whether a close is armed
func (t *CloseTimer) Pending() bool {
	return t.pending
}
