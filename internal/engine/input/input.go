// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/sceneview/internal/engine/camera"
)

// Event types for viewer use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseWheel
	EventCommand
)

// Command is a one-shot viewer request triggered by a key press.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandReload
	CommandFrame
	CommandToggleBounds
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandReload:
		return "reload"
	case CommandFrame:
		return "frame"
	case CommandToggleBounds:
		return "toggle-bounds"
	default:
		return "none"
	}
}

// Event represents a processed input event.
type Event struct {
	Type    EventType
	Key     sdl.Scancode
	Command Command
	Width   int
	Height  int
	WheelY  float64
}

// Bindings maps held keys to navigation actions.
var Bindings = map[sdl.Scancode]camera.Action{
	sdl.SCANCODE_A:     camera.ActionPanLeft,
	sdl.SCANCODE_LEFT:  camera.ActionPanLeft,
	sdl.SCANCODE_D:     camera.ActionPanRight,
	sdl.SCANCODE_RIGHT: camera.ActionPanRight,
	sdl.SCANCODE_W:     camera.ActionPanUp,
	sdl.SCANCODE_UP:    camera.ActionPanUp,
	sdl.SCANCODE_S:     camera.ActionPanDown,
	sdl.SCANCODE_DOWN:  camera.ActionPanDown,

	sdl.SCANCODE_Q: camera.ActionDollyIn,
	sdl.SCANCODE_E: camera.ActionDollyOut,

	sdl.SCANCODE_J: camera.ActionOrbitLeft,
	sdl.SCANCODE_L: camera.ActionOrbitRight,
	sdl.SCANCODE_I: camera.ActionOrbitUp,
	sdl.SCANCODE_K: camera.ActionOrbitDown,

	sdl.SCANCODE_U: camera.ActionLookLeft,
	sdl.SCANCODE_O: camera.ActionLookRight,
	sdl.SCANCODE_Y: camera.ActionLookUp,
	sdl.SCANCODE_H: camera.ActionLookDown,
}

// Commands maps key presses to one-shot commands.
var Commands = map[sdl.Scancode]Command{
	sdl.SCANCODE_ESCAPE: CommandQuit,
	sdl.SCANCODE_R:      CommandReload,
	sdl.SCANCODE_F:      CommandFrame,
	sdl.SCANCODE_B:      CommandToggleBounds,
}

// Input handles all input processing.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				if i.press(e.Keysym.Scancode, e.Repeat != 0) {
					quit = true
				}
			} else if e.Type == sdl.KEYUP {
				i.release(e.Keysym.Scancode)
			}

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseWheel,
				WheelY: float64(e.Y),
			})
		}
	}

	return quit
}

// press records a key going down and reports whether it requested quit.
func (i *Input) press(key sdl.Scancode, repeat bool) bool {
	i.held[key] = true
	i.events = append(i.events, Event{Type: EventKeyDown, Key: key})
	if repeat {
		return false
	}
	cmd, ok := Commands[key]
	if !ok {
		return false
	}
	i.events = append(i.events, Event{Type: EventCommand, Key: key, Command: cmd})
	return cmd == CommandQuit
}

func (i *Input) release(key sdl.Scancode) {
	delete(i.held, key)
	i.events = append(i.events, Event{Type: EventKeyUp, Key: key})
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Actions returns the navigation actions for the keys currently held.
func (i *Input) Actions() camera.ActionSet {
	return ActionsFor(i.held)
}

// ActionsFor folds a held-key set through Bindings.
func ActionsFor(held map[sdl.Scancode]bool) camera.ActionSet {
	var set camera.ActionSet
	for key, down := range held {
		if !down {
			continue
		}
		if a, ok := Bindings[key]; ok {
			set = set.With(a)
		}
	}
	return set
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// Wheel returns the total vertical wheel movement this frame.
func (i *Input) Wheel() float64 {
	var dy float64
	for _, e := range i.events {
		if e.Type == EventMouseWheel {
			dy += e.WheelY
		}
	}
	return dy
}
