package camera

import "strings"

// Action is a logical navigation command held active for a frame.
type Action uint16

const (
	ActionPanLeft Action = 1 << iota
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionDollyIn
	ActionDollyOut
	ActionOrbitLeft
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionLookLeft
	ActionLookRight
	ActionLookUp
	ActionLookDown
)

var actionNames = []struct {
	action Action
	name   string
}{
	{ActionPanLeft, "pan-left"},
	{ActionPanRight, "pan-right"},
	{ActionPanUp, "pan-up"},
	{ActionPanDown, "pan-down"},
	{ActionDollyIn, "dolly-in"},
	{ActionDollyOut, "dolly-out"},
	{ActionOrbitLeft, "orbit-left"},
	{ActionOrbitRight, "orbit-right"},
	{ActionOrbitUp, "orbit-up"},
	{ActionOrbitDown, "orbit-down"},
	{ActionLookLeft, "look-left"},
	{ActionLookRight, "look-right"},
	{ActionLookUp, "look-up"},
	{ActionLookDown, "look-down"},
}

// ActionSet is the snapshot of actions active in one frame.
type ActionSet uint16

// With returns s with a added.
func (s ActionSet) With(a Action) ActionSet {
	return s | ActionSet(a)
}

// Without returns s with a removed.
func (s ActionSet) Without(a Action) ActionSet {
	return s &^ ActionSet(a)
}

// Has reports whether a is active.
func (s ActionSet) Has(a Action) bool {
	return s&ActionSet(a) != 0
}

// Empty reports whether no action is active.
func (s ActionSet) Empty() bool {
	return s == 0
}

// String lists the active actions, e.g. "pan-left|orbit-up".
func (s ActionSet) String() string {
	if s.Empty() {
		return "none"
	}
	var names []string
	for _, an := range actionNames {
		if s.Has(an.action) {
			names = append(names, an.name)
		}
	}
	return strings.Join(names, "|")
}

// Navigator turns per-frame action snapshots into Frame operations.
type Navigator struct {
	Frame       *Frame
	MoveSpeed   float64 // pan and dolly step, world units
	RotateSpeed float64 // orbit and look step, radians
	ZoomSpeed   float64 // dolly step per scroll notch
}

// NewNavigator creates a navigator with the default speeds.
func NewNavigator(f *Frame) *Navigator {
	return &Navigator{
		Frame:       f,
		MoveSpeed:   0.1,
		RotateSpeed: 0.02,
		ZoomSpeed:   0.1,
	}
}

// Apply runs every active action once: pans, dolly, orbit, then look.
// Each step recomputes the basis from the frame as left by the previous one.
func (n *Navigator) Apply(actions ActionSet) {
	if actions.Empty() {
		return
	}
	f := n.Frame
	move, rot := n.MoveSpeed, n.RotateSpeed

	if actions.Has(ActionPanLeft) {
		f.Pan(PanRight, -move)
	}
	if actions.Has(ActionPanRight) {
		f.Pan(PanRight, move)
	}
	if actions.Has(ActionPanUp) {
		f.Pan(PanUp, move)
	}
	if actions.Has(ActionPanDown) {
		f.Pan(PanUp, -move)
	}

	if actions.Has(ActionDollyIn) {
		f.Dolly(move)
	}
	if actions.Has(ActionDollyOut) {
		f.Dolly(-move)
	}

	if actions.Has(ActionOrbitLeft) {
		f.Orbit(-rot, 0)
	}
	if actions.Has(ActionOrbitRight) {
		f.Orbit(rot, 0)
	}
	if actions.Has(ActionOrbitUp) {
		f.Orbit(0, rot)
	}
	if actions.Has(ActionOrbitDown) {
		f.Orbit(0, -rot)
	}

	if actions.Has(ActionLookLeft) {
		f.LookAround(-rot, 0)
	}
	if actions.Has(ActionLookRight) {
		f.LookAround(rot, 0)
	}
	if actions.Has(ActionLookUp) {
		f.LookAround(0, rot)
	}
	if actions.Has(ActionLookDown) {
		f.LookAround(0, -rot)
	}
}

// Scroll dollies by delta wheel notches; positive moves toward the target.
func (n *Navigator) Scroll(delta float64) {
	if delta == 0 {
		return
	}
	n.Frame.Dolly(delta * n.ZoomSpeed)
}
