// Package sixaxis reads a Sony DUALSHOCK3/SIXAXIS controller attached as a
// Linux joystick device. A background goroutine drains the device's binary
// event stream into a shared snapshot of every axis, shoulder and button,
// which callers query at any time without blocking on device I/O.
package sixaxis

// Axis identifies one of the four analog thumb-stick axes.
// Stick values range -32768..32767 with the stick centred near 0.
type Axis uint8

const (
	AxisLX Axis = iota // left stick, left/right
	AxisLY             // left stick, up/down
	AxisRX             // right stick, left/right
	AxisRY             // right stick, up/down
)

func (a Axis) String() string {
	switch a {
	case AxisLX:
		return "LX"
	case AxisLY:
		return "LY"
	case AxisRX:
		return "RX"
	case AxisRY:
		return "RY"
	}
	return "Axis(?)"
}

// Shoulder identifies one of the four analog shoulder triggers.
// Shoulder values range 0..65535 with 0 meaning fully released.
type Shoulder uint8

const (
	ShoulderL1 Shoulder = iota // upper left
	ShoulderL2                 // lower left
	ShoulderR1                 // upper right
	ShoulderR2                 // lower right
)

func (s Shoulder) String() string {
	switch s {
	case ShoulderL1:
		return "L1"
	case ShoulderL2:
		return "L2"
	case ShoulderR1:
		return "R1"
	case ShoulderR2:
		return "R2"
	}
	return "Shoulder(?)"
}

// Button identifies one of the digital buttons. The shoulders appear here a
// second time: the controller reports them both as analog triggers and as
// digital buttons, on independent record indices, and both channels are
// tracked.
type Button uint8

const (
	ButtonSquare Button = iota
	ButtonCircle
	ButtonTriangle
	ButtonCross
	ButtonPS
	ButtonStart
	ButtonSelect
	ButtonLeftStick
	ButtonRightStick
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonL1
	ButtonL2
	ButtonR1
	ButtonR2
)

func (b Button) String() string {
	switch b {
	case ButtonSquare:
		return "Square"
	case ButtonCircle:
		return "Circle"
	case ButtonTriangle:
		return "Triangle"
	case ButtonCross:
		return "Cross"
	case ButtonPS:
		return "PS"
	case ButtonStart:
		return "Start"
	case ButtonSelect:
		return "Select"
	case ButtonLeftStick:
		return "LeftStick"
	case ButtonRightStick:
		return "RightStick"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonL1:
		return "L1"
	case ButtonL2:
		return "L2"
	case ButtonR1:
		return "R1"
	case ButtonR2:
		return "R2"
	}
	return "Button(?)"
}
