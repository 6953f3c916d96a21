package sixaxis

import (
	"encoding/binary"
	"fmt"
)

// recordSize is the fixed length of one joystick event record.
const recordSize = 8

// Record layout (native byte order):
//
//	bytes 0..4  timestamp, milliseconds since device init (not interpreted)
//	bytes 4..6  raw 16-bit value
//	byte  6     event type tag
//	byte  7     control index
//
// The kernel ORs 0x80 into the type tag for the synthetic records it emits
// when the device is first opened; those carry real state and decode the
// same as their live counterparts.
const (
	tagButton     = 0x01
	tagStick      = 0x02
	tagInit       = 0x80
	tagInitButton = tagInit | tagButton
	tagInitStick  = tagInit | tagStick
)

// Stick-record control indices.
const (
	stickIdxLX = 0
	stickIdxLY = 1
	stickIdxRX = 2
	stickIdxRY = 3
	stickIdxL2 = 12
	stickIdxR2 = 13
	stickIdxL1 = 14
	stickIdxR1 = 15
)

// Button-record control indices.
const (
	buttonIdxSelect     = 0
	buttonIdxLeftStick  = 1
	buttonIdxRightStick = 2
	buttonIdxStart      = 3
	buttonIdxUp         = 4
	buttonIdxRight      = 5
	buttonIdxDown       = 6
	buttonIdxLeft       = 7
	buttonIdxL2         = 8
	buttonIdxR2         = 9
	buttonIdxL1         = 10
	buttonIdxR1         = 11
	buttonIdxTriangle   = 12
	buttonIdxCircle     = 13
	buttonIdxCross      = 14
	buttonIdxSquare     = 15
	buttonIdxPS         = 16
)

// event is one decoded state change. Events exist only between decode and
// apply; they are never handed to callers.
type event interface {
	applyTo(s *state)
}

type axisEvent struct {
	axis  Axis
	value int16
}

type shoulderEvent struct {
	shoulder Shoulder
	value    uint16
}

type buttonEvent struct {
	button  Button
	pressed bool
}

// decodeRecord maps one raw record to its event. It is deterministic and
// side-effect free; unknown tags and indices are errors for the caller to
// drop or surface as it sees fit.
func decodeRecord(rec [recordSize]byte) (event, error) {
	value := binary.NativeEndian.Uint16(rec[4:6])
	tag := rec[6]
	idx := rec[7]
	switch tag {
	case tagStick, tagInitStick:
		return decodeStick(idx, value)
	case tagButton, tagInitButton:
		return decodeButton(idx, value)
	}
	return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownEventType, tag)
}

// decodeStick handles analog records. The four thumb-stick axes are signed;
// the conversion must reinterpret the full 16-bit pattern as two's
// complement, which int16(value) does exactly. The shoulder triggers use the
// unsigned value as-is.
func decodeStick(idx uint8, value uint16) (event, error) {
	switch idx {
	case stickIdxLX:
		return axisEvent{AxisLX, int16(value)}, nil
	case stickIdxLY:
		return axisEvent{AxisLY, int16(value)}, nil
	case stickIdxRX:
		return axisEvent{AxisRX, int16(value)}, nil
	case stickIdxRY:
		return axisEvent{AxisRY, int16(value)}, nil
	case stickIdxL2:
		return shoulderEvent{ShoulderL2, value}, nil
	case stickIdxR2:
		return shoulderEvent{ShoulderR2, value}, nil
	case stickIdxL1:
		return shoulderEvent{ShoulderL1, value}, nil
	case stickIdxR1:
		return shoulderEvent{ShoulderR1, value}, nil
	}
	return nil, fmt.Errorf("%w: stick index %d", ErrUnknownControlIndex, idx)
}

// decodeButton handles digital records: any non-zero value means pressed.
func decodeButton(idx uint8, value uint16) (event, error) {
	pressed := value != 0
	switch idx {
	case buttonIdxSelect:
		return buttonEvent{ButtonSelect, pressed}, nil
	case buttonIdxLeftStick:
		return buttonEvent{ButtonLeftStick, pressed}, nil
	case buttonIdxRightStick:
		return buttonEvent{ButtonRightStick, pressed}, nil
	case buttonIdxStart:
		return buttonEvent{ButtonStart, pressed}, nil
	case buttonIdxUp:
		return buttonEvent{ButtonUp, pressed}, nil
	case buttonIdxRight:
		return buttonEvent{ButtonRight, pressed}, nil
	case buttonIdxDown:
		return buttonEvent{ButtonDown, pressed}, nil
	case buttonIdxLeft:
		return buttonEvent{ButtonLeft, pressed}, nil
	case buttonIdxL2:
		return buttonEvent{ButtonL2, pressed}, nil
	case buttonIdxR2:
		return buttonEvent{ButtonR2, pressed}, nil
	case buttonIdxL1:
		return buttonEvent{ButtonL1, pressed}, nil
	case buttonIdxR1:
		return buttonEvent{ButtonR1, pressed}, nil
	case buttonIdxTriangle:
		return buttonEvent{ButtonTriangle, pressed}, nil
	case buttonIdxCircle:
		return buttonEvent{ButtonCircle, pressed}, nil
	case buttonIdxCross:
		return buttonEvent{ButtonCross, pressed}, nil
	case buttonIdxSquare:
		return buttonEvent{ButtonSquare, pressed}, nil
	case buttonIdxPS:
		return buttonEvent{ButtonPS, pressed}, nil
	}
	return nil, fmt.Errorf("%w: button index %d", ErrUnknownControlIndex, idx)
}
