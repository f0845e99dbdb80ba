package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/slingshot/internal/domain/geom"
)

// InputSystem reads the mouse and keyboard
type InputSystem struct {
	screenH int
}

// NewInputSystem creates an input system for a screen of height screenH.
// World y points up, so cursor rows are flipped.
func NewInputSystem(screenH int) *InputSystem {
	return &InputSystem{screenH: screenH}
}

// InputState holds the input of one frame in world coordinates
type InputState struct {
	MouseX   float64
	MouseY   float64
	Pressed  bool // left button went down
	Held     bool // left button is down
	Released bool // left button went up
	Ability  bool
	Cancel   bool
	Restart  bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		MouseX:   float64(mx),
		MouseY:   float64(s.screenH - my),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Held:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Ability: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Cancel:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// Point returns the cursor as a world point
func (in InputState) Point() geom.Point2D {
	return geom.Pt(in.MouseX, in.MouseY)
}

// Intents translates one frame of input into player intents, in the order
// they should be applied
func (in InputState) Intents() []Intent {
	var out []Intent
	p := in.Point()
	if in.Pressed {
		out = append(out, PressIntent{Point: p})
	}
	if in.Held && !in.Pressed {
		out = append(out, DragIntent{Point: p})
	}
	if in.Released {
		out = append(out, ReleaseIntent{Point: p})
	}
	if in.Cancel {
		out = append(out, CancelIntent{})
	}
	if in.Ability {
		out = append(out, AbilityIntent{})
	}
	if in.Restart {
		out = append(out, RestartIntent{})
	}
	return out
}
