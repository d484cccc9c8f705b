package layout

// DragSession tracks the handle being dragged, if any.
// The zero value is idle.
type DragSession struct {
	handle int
	active bool
}

// Begin starts a session on handle, replacing any session already in progress.
func (s *DragSession) Begin(handle int) {
	s.handle = handle
	s.active = true
}

// End returns the session to idle and reports whether one was active.
func (s *DragSession) End() bool {
	was := s.active
	s.handle = 0
	s.active = false
	return was
}

// Handle returns the dragged handle. ok is false when idle.
func (s DragSession) Handle() (handle int, ok bool) {
	return s.handle, s.active
}

// Active reports whether a drag is in progress.
func (s DragSession) Active() bool {
	return s.active
}
