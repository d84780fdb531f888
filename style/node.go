package style

// DirtyState is the tri-state change signal a layout pass consumes:
// unknown until anyone observed the node, clean after a layout pass,
// changed when a style mutation landed since the last pass.
type DirtyState int

const (
	DirtyUnknown DirtyState = iota
	DirtyClean
	DirtyChanged
)

// String returns the lower-case name of the state.
func (d DirtyState) String() string {
	switch d {
	case DirtyClean:
		return "clean"
	case DirtyChanged:
		return "changed"
	default:
		return "unknown"
	}
}

// Node is the slice of a layout node the declaration engine needs: a
// mutable dirty flag and the engine owning the node. Style mutations
// only ever flip the flag to DirtyChanged; clearing it back to
// DirtyClean is the layout pass's job.
type Node interface {
	Dirty() DirtyState
	SetDirty(DirtyState)
	Engine() Engine
}

// Engine is the layout engine collaborator. It consumes dirty signals
// out of band; the declaration core never calls into it and only
// reports which engine owns a bound node.
type Engine interface {
	Reflow(n Node)
}
