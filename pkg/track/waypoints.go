package track

// Waypoints returns the ordered centerline path: starting at section 0,
// next links are followed and each visited center emitted, stopping
// when the chain revisits a section (closed loop, not re-emitted) or
// the link is absent (open chain). Junction links are recorded on the
// sections but never followed here; branch selection belongs to a
// higher-level traversal policy.
//
// The sequence is computed once per Track and shared between callers;
// treat it as read-only.
func (t *Track) Waypoints() []Waypoint {
	t.wpOnce.Do(func() {
		t.waypoints = t.walkCenterline()
	})
	return t.waypoints
}

// walkCenterline walks next links from section 0. The visited set
// terminates any cycle, including a self-loop at the start.
func (t *Track) walkCenterline() []Waypoint {
	if len(t.Sections) == 0 {
		return nil
	}

	visited := make(map[int]bool, len(t.Sections))
	waypoints := make([]Waypoint, 0, len(t.Sections))
	for i := 0; i >= 0 && !visited[i]; i = t.Sections[i].Next {
		visited[i] = true
		waypoints = append(waypoints, Waypoint{Position: t.Sections[i].Center})
	}
	return waypoints
}
