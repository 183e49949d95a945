package transition

// Probe answers whether a style property name exists on a representative
// element of the target environment. A nil Probe means there is no
// usable rendering surface at all (headless or non-interactive), which
// disables native-event completion entirely.
type Probe interface {
	HasStyleProperty(name string) bool
}

// vendorEvent pairs a style property with the end event it implies.
type vendorEvent struct {
	prop  string
	event string
}

// Probe order matters: unprefixed first, then vendor variants.
var (
	transitionEndEvents = []vendorEvent{
		{"transition", "transitionend"},
		{"WebkitTransition", "webkitTransitionEnd"},
		{"MozTransition", "mozTransitionEnd"},
		{"OTransition", "oTransitionEnd"},
	}
	animationEndEvents = []vendorEvent{
		{"animation", "animationend"},
		{"WebkitAnimation", "webkitAnimationEnd"},
		{"MozAnimation", "mozAnimationEnd"},
		{"OAnimation", "oAnimationEnd"},
	}
)

// EventNames is the resolved table of native completion event names for
// the current environment. It is computed once at startup and passed
// down; the engine itself never feature-detects.
type EventNames struct {
	// TransitionEnd holds every usable transition-end event name,
	// vendor-prefixed variants included.
	TransitionEnd []string

	// AnimationEnd holds every usable animation-end event name.
	AnimationEnd []string
}

// DetectEvents computes the event-name table by probing style property
// presence. Call it once at process start. A nil probe yields an empty
// table.
func DetectEvents(p Probe) EventNames {
	var names EventNames
	if p == nil {
		return names
	}
	for _, ve := range transitionEndEvents {
		if p.HasStyleProperty(ve.prop) {
			names.TransitionEnd = append(names.TransitionEnd, ve.event)
		}
	}
	for _, ve := range animationEndEvents {
		if p.HasStyleProperty(ve.prop) {
			names.AnimationEnd = append(names.AnimationEnd, ve.event)
		}
	}
	return names
}

// Supported reports whether any native completion event is usable.
func (e EventNames) Supported() bool {
	return len(e.TransitionEnd) > 0 || len(e.AnimationEnd) > 0
}

// All returns every usable event name. Only one of them will actually
// fire for a given transition, but listeners must be attached to (and
// cleaned up from) all of them.
func (e EventNames) All() []string {
	out := make([]string, 0, len(e.TransitionEnd)+len(e.AnimationEnd))
	out = append(out, e.TransitionEnd...)
	out = append(out, e.AnimationEnd...)
	return out
}
