package transition

// Kind is the transition type discriminator.
type Kind uint8

const (
	KindEnter  Kind = iota // Item newly inserted into the list
	KindAppear             // Item present at initial mount
	KindLeave              // Item about to be removed
)

// String returns the class-name suffix for the kind.
func (k Kind) String() string {
	switch k {
	case KindEnter:
		return "enter"
	case KindAppear:
		return "appear"
	case KindLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// Resolution identifies how a transition completed.
type Resolution uint8

const (
	ResolutionSync    Resolution = iota // No completion signal available; finished immediately
	ResolutionTimeout                   // Configured timeout expired
	ResolutionEvent                     // Native end event fired
)

// String returns the string representation of the Resolution.
func (r Resolution) String() string {
	switch r {
	case ResolutionSync:
		return "sync"
	case ResolutionTimeout:
		return "timeout"
	case ResolutionEvent:
		return "event"
	default:
		return "unknown"
	}
}
