package atrament

// Event is a notification produced by the core. Events carry no reply
// channel; nothing a listener does affects core behavior. Dispatch
// machinery (listener registries, host event loops) lives outside this
// package; the core calls a single Notifier.
type Event interface {
	isEvent()
}

// StrokeStartEvent is emitted when a stroke begins.
type StrokeStartEvent struct {
	X, Y float64
}

// StrokeEndEvent is emitted when a stroke ends.
type StrokeEndEvent struct {
	X, Y float64
}

// StrokeRecordedEvent carries a finished recorded stroke.
type StrokeRecordedEvent struct {
	Stroke RecordedStroke
}

// FillStartEvent is emitted when a fill request is accepted.
type FillStartEvent struct {
	X, Y float64
}

// FillEndEvent is emitted when a fill pass completes, including no-op
// passes.
type FillEndEvent struct{}

// PickEvent carries the color sampled under the pointer in pick mode.
type PickEvent struct {
	X, Y  float64
	Color RGBA
}

func (StrokeStartEvent) isEvent()    {}
func (StrokeEndEvent) isEvent()      {}
func (StrokeRecordedEvent) isEvent() {}
func (FillStartEvent) isEvent()      {}
func (FillEndEvent) isEvent()        {}
func (PickEvent) isEvent()           {}

// Notifier receives core events. A nil Notifier discards them.
type Notifier func(Event)
