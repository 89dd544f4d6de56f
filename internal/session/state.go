package session

// State is a step in the session lifecycle.
//
//	ResolvingInitialState → Staging → Editing → Finalizing → Done
//
// AbortedUnsaved, AbortedCollision and Failed are terminal.
type State int

const (
	StateResolvingInitialState State = iota
	StateStaging
	StateEditing
	StateFinalizing
	StateDone
	StateAbortedUnsaved
	StateAbortedCollision
	StateFailed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateResolvingInitialState:
		return "resolving"
	case StateStaging:
		return "staging"
	case StateEditing:
		return "editing"
	case StateFinalizing:
		return "finalizing"
	case StateDone:
		return "done"
	case StateAbortedUnsaved:
		return "aborted-unsaved"
	case StateAbortedCollision:
		return "aborted-collision"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions can happen.
func (s State) Terminal() bool {
	return s >= StateDone
}

// Origin says where a session's initial content came from.
type Origin int

const (
	// OriginCommented means both files existed; the commented file was loaded.
	OriginCommented Origin = iota
	// OriginCanonical means only the canonical file existed; the commented
	// file is created on the first sync.
	OriginCanonical
	// OriginTemplate means neither file existed; the session is a new file.
	OriginTemplate
)

// String returns a human-readable representation of the origin.
func (o Origin) String() string {
	switch o {
	case OriginCommented:
		return "commented"
	case OriginCanonical:
		return "canonical"
	case OriginTemplate:
		return "template"
	default:
		return "unknown"
	}
}

// Outcome is how a session that did not fail ended.
type Outcome int

const (
	// OutcomeSaved means an existing document was synced.
	OutcomeSaved Outcome = iota
	// OutcomeCreated means a new document was written for the first time.
	OutcomeCreated
	// OutcomeAbandoned means a new document was never saved; nothing was written.
	OutcomeAbandoned
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeCreated:
		return "created"
	case OutcomeAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}
