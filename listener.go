package trimview

// Listener receives the change notifications of a Controller.
// Every hook gets the trim window as it is after the change.
type Listener interface {
	OnDragStarted(trimStart, trim int)
	OnLeftEdgeChanged(trimStart, trim int)
	OnRightEdgeChanged(trimStart, trim int)
	OnRangeChanged(trimStart, trim int)
	OnDragStopped(trimStart, trim int)
}

// NopListener implements Listener with no-op hooks.
// Embed it to implement only the hooks you care about.
type NopListener struct{}

// OnDragStarted does nothing.
func (NopListener) OnDragStarted(trimStart, trim int) {}

// OnLeftEdgeChanged does nothing.
func (NopListener) OnLeftEdgeChanged(trimStart, trim int) {}

// OnRightEdgeChanged does nothing.
func (NopListener) OnRightEdgeChanged(trimStart, trim int) {}

// OnRangeChanged does nothing.
func (NopListener) OnRangeChanged(trimStart, trim int) {}

// OnDragStopped does nothing.
func (NopListener) OnDragStopped(trimStart, trim int) {}

// ListenerFuncs adapts plain functions to the Listener interface. Nil fields are skipped.
type ListenerFuncs struct {
	DragStarted      func(trimStart, trim int)
	LeftEdgeChanged  func(trimStart, trim int)
	RightEdgeChanged func(trimStart, trim int)
	RangeChanged     func(trimStart, trim int)
	DragStopped      func(trimStart, trim int)
}

var _ Listener = ListenerFuncs{}

// OnDragStarted calls f.DragStarted.
func (f ListenerFuncs) OnDragStarted(trimStart, trim int) {
	if f.DragStarted != nil {
		f.DragStarted(trimStart, trim)
	}
}

// OnLeftEdgeChanged calls f.LeftEdgeChanged.
func (f ListenerFuncs) OnLeftEdgeChanged(trimStart, trim int) {
	if f.LeftEdgeChanged != nil {
		f.LeftEdgeChanged(trimStart, trim)
	}
}

// OnRightEdgeChanged calls f.RightEdgeChanged.
func (f ListenerFuncs) OnRightEdgeChanged(trimStart, trim int) {
	if f.RightEdgeChanged != nil {
		f.RightEdgeChanged(trimStart, trim)
	}
}

// OnRangeChanged calls f.RangeChanged.
func (f ListenerFuncs) OnRangeChanged(trimStart, trim int) {
	if f.RangeChanged != nil {
		f.RangeChanged(trimStart, trim)
	}
}

// OnDragStopped calls f.DragStopped.
func (f ListenerFuncs) OnDragStopped(trimStart, trim int) {
	if f.DragStopped != nil {
		f.DragStopped(trimStart, trim)
	}
}

// EdgeChanged returns a ListenerFuncs calling fn on every accepted edge or range change.
// This is what most hosts want: the sample application rewinds the progress with it.
func EdgeChanged(fn func(trimStart, trim int)) ListenerFuncs {
	return ListenerFuncs{
		LeftEdgeChanged:  fn,
		RightEdgeChanged: fn,
		RangeChanged:     fn,
	}
}
