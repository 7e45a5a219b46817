package trimview

// Advance moves the progress one step forward while it is inside the trim window.
// It reports whether the progress changed. Hosts call it from their own timer.
func Advance(c *Controller) bool {
	if c.Progress() >= c.Trim() {
		return false
	}
	return c.SetProgress(c.Progress()+1) == nil
}
