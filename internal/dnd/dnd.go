// Package dnd implements the drag-and-drop transition protocol: a
// three-phase state machine per drag gesture, expressed as plain handler
// values so it can be driven (and tested) without a UI toolkit.
//
// A gesture has two participant roles. The source (an item being
// dragged) moves Idle -> Dragging -> Idle. Each target (a board column)
// moves Neutral -> Hovering -> Neutral. Handlers take structured event
// values and return descriptions of the resulting action; applying a
// store mutation is always the caller's job.
package dnd

import (
	"pboard/internal/model"
)

// PayloadKind tags the transfer medium of a gesture payload.
type PayloadKind string

// KindRecordID is the only payload kind the protocol accepts: a plain
// text record ID. The payload never carries the record itself; targets
// look the record up fresh at drop time so a stale copy can't be applied.
const KindRecordID PayloadKind = "text/plain"

// Payload is the data attached to a drag gesture.
type Payload struct {
	Kind PayloadKind
	Data string
}

// Effect describes what a completed drop does with the dragged data.
type Effect string

// EffectMove is the only allowed effect: a drop relocates the record,
// it never copies it.
const EffectMove Effect = "move"

// Gesture tracks one drag from start to end (the source role).
type Gesture struct {
	payload Payload
	effect  Effect
	active  bool
}

// Begin starts a drag gesture for the record with the given ID,
// attaching the ID as a plain text payload and marking the allowed
// effect as move. The source is now Dragging.
func Begin(recordID string) *Gesture {
	return &Gesture{
		payload: Payload{Kind: KindRecordID, Data: recordID},
		effect:  EffectMove,
		active:  true,
	}
}

// Payload returns the gesture's payload for targets to inspect.
func (g *Gesture) Payload() Payload {
	return g.payload
}

// Effect returns the gesture's allowed drop effect.
func (g *Gesture) Effect() Effect {
	return g.effect
}

// Active reports whether the gesture is still in flight.
func (g *Gesture) Active() bool {
	return g.active
}

// End marks the end of the gesture, returning the source to Idle. It is
// purely observational: it fires whether or not a drop succeeded and
// never mutates anything beyond the gesture itself.
func (g *Gesture) End() {
	g.active = false
}

// Move describes a store mutation produced by a completed drop: move the
// record with ID to status To. The caller applies it via
// Store.MoveProject; the protocol itself never touches the store.
type Move struct {
	ID string
	To model.Status
}

// Target is a drop target bound to one board column. Exactly one target
// hovers at a time per gesture; that is the event router's job, and the
// protocol does not assume it (DragLeave is safe from any state).
type Target struct {
	status   model.Status
	hovering bool
}

// NewTarget creates a drop target for the column with the given status.
func NewTarget(status model.Status) *Target {
	return &Target{status: status}
}

// Status returns the column status this target moves dropped records to.
func (t *Target) Status() model.Status {
	return t.status
}

// Hovering reports whether the droppable marker is currently applied.
func (t *Target) Hovering() bool {
	return t.hovering
}

// DragOver inspects the payload kind. If and only if it is the expected
// plain text kind, the target signals acceptance and enters (or
// confirms) Hovering. Any other kind, e.g. a file drag, is not accepted
// and the target stays Neutral with no marker.
func (t *Target) DragOver(p Payload) bool {
	if p.Kind != KindRecordID {
		return false
	}
	t.hovering = true
	return true
}

// DragLeave unconditionally clears the droppable marker and returns the
// target to Neutral, regardless of whether it was Hovering.
func (t *Target) DragLeave() {
	t.hovering = false
}

// Drop extracts the record ID from the payload and returns the move to
// perform. The second return value is false when the payload kind is not
// accepted, in which case no mutation is described.
//
// Drop does not clear the droppable marker; the marker persists until a
// later DragLeave or the next DragOver cycle. Dropping a record onto the
// column it already occupies still describes a move; the store's
// idempotence makes applying it a no-op.
func (t *Target) Drop(p Payload) (Move, bool) {
	if p.Kind != KindRecordID {
		return Move{}, false
	}
	return Move{ID: p.Data, To: t.status}, true
}
