package transition

import "time"

const (
	// DefaultName is the class-name prefix used when none is configured.
	DefaultName = "transition"

	// FlushInterval is the batching window for deferred class
	// application. Roughly one frame at 60Hz; some rendering engines
	// will not start a CSS transition when the base and active classes
	// land in the same paint frame, so the active class is always
	// applied one flush window later.
	FlushInterval = 17 * time.Millisecond
)

// Config is the shared per-group transition configuration.
// It is immutable once a Group is created.
type Config struct {
	// Name is the class-name prefix. A kind k produces classes
	// "<Name>-<k>" and "<Name>-<k>-active".
	Name string

	// EnterTimeout bounds enter and appear transitions. When set, the
	// transition resolves after this duration and no native listeners
	// are attached.
	EnterTimeout time.Duration

	// LeaveTimeout bounds leave transitions, same semantics as
	// EnterTimeout.
	LeaveTimeout time.Duration

	// Enter, Appear, and Leave gate each transition kind. A disabled
	// kind completes synchronously with no classes applied.
	Enter  bool
	Appear bool
	Leave  bool

	// OnTransitionEnd is invoked once per leave transition, after the
	// render commit that follows the item's removal. The host container
	// uses it to learn that the element may actually be dropped.
	OnTransitionEnd func()
}

// DefaultConfig returns the default configuration: enter and leave
// enabled, appear disabled, no timeouts (native-event completion when
// the environment supports it).
func DefaultConfig() Config {
	return Config{
		Name:  DefaultName,
		Enter: true,
		Leave: true,
	}
}

// timeoutFor returns the configured timeout for the kind.
// Enter and appear share EnterTimeout; leave has its own.
func (c *Config) timeoutFor(kind Kind) time.Duration {
	if kind == KindLeave {
		return c.LeaveTimeout
	}
	return c.EnterTimeout
}

// enabledFor returns whether the kind's gate is open.
func (c *Config) enabledFor(kind Kind) bool {
	switch kind {
	case KindEnter:
		return c.Enter
	case KindAppear:
		return c.Appear
	case KindLeave:
		return c.Leave
	default:
		return false
	}
}
