package hub

import "github.com/thejpster/sixaxis"

// Sticks holds the raw thumb-stick axis values, -32768..32767.
type Sticks struct {
	LX int16 `json:"lx"`
	LY int16 `json:"ly"`
	RX int16 `json:"rx"`
	RY int16 `json:"ry"`
}

// Shoulders holds the analog trigger values, 0..65535.
type Shoulders struct {
	L1 uint16 `json:"l1"`
	L2 uint16 `json:"l2"`
	R1 uint16 `json:"r1"`
	R2 uint16 `json:"r2"`
}

// Buttons holds the digital button states.
type Buttons struct {
	Square     bool `json:"square"`
	Circle     bool `json:"circle"`
	Triangle   bool `json:"triangle"`
	Cross      bool `json:"cross"`
	PS         bool `json:"ps"`
	Start      bool `json:"start"`
	Select     bool `json:"select"`
	LeftStick  bool `json:"leftStick"`
	RightStick bool `json:"rightStick"`
	Up         bool `json:"up"`
	Down       bool `json:"down"`
	Left       bool `json:"left"`
	Right      bool `json:"right"`
	L1         bool `json:"l1"`
	L2         bool `json:"l2"`
	R1         bool `json:"r1"`
	R2         bool `json:"r2"`
}

// PadState is one full snapshot of the controller as sent to clients.
type PadState struct {
	Alive     bool      `json:"alive"`
	Sticks    Sticks    `json:"sticks"`
	Shoulders Shoulders `json:"shoulders"`
	Buttons   Buttons   `json:"buttons"`
}

// Delta carries only the groups that changed between two snapshots.
type Delta struct {
	Alive     *bool      `json:"alive,omitempty"`
	Sticks    *Sticks    `json:"sticks,omitempty"`
	Shoulders *Shoulders `json:"shoulders,omitempty"`
	Buttons   *Buttons   `json:"buttons,omitempty"`
}

func (d *Delta) IsEmpty() bool {
	return d.Alive == nil && d.Sticks == nil && d.Shoulders == nil && d.Buttons == nil
}

// ComputeDelta compares two snapshots group by group. Every field is an
// integer or a bool, so plain struct equality is exact.
func ComputeDelta(old, cur PadState) *Delta {
	d := &Delta{}
	if old.Alive != cur.Alive {
		d.Alive = &cur.Alive
	}
	if old.Sticks != cur.Sticks {
		d.Sticks = &cur.Sticks
	}
	if old.Shoulders != cur.Shoulders {
		d.Shoulders = &cur.Shoulders
	}
	if old.Buttons != cur.Buttons {
		d.Buttons = &cur.Buttons
	}
	return d
}

// Snapshot reads every control off the handle into one PadState.
func Snapshot(pad *sixaxis.Controller) PadState {
	return PadState{
		Alive: pad.Alive(),
		Sticks: Sticks{
			LX: pad.ReadAxis(sixaxis.AxisLX),
			LY: pad.ReadAxis(sixaxis.AxisLY),
			RX: pad.ReadAxis(sixaxis.AxisRX),
			RY: pad.ReadAxis(sixaxis.AxisRY),
		},
		Shoulders: Shoulders{
			L1: pad.ReadShoulder(sixaxis.ShoulderL1),
			L2: pad.ReadShoulder(sixaxis.ShoulderL2),
			R1: pad.ReadShoulder(sixaxis.ShoulderR1),
			R2: pad.ReadShoulder(sixaxis.ShoulderR2),
		},
		Buttons: Buttons{
			Square:     pad.ReadButton(sixaxis.ButtonSquare),
			Circle:     pad.ReadButton(sixaxis.ButtonCircle),
			Triangle:   pad.ReadButton(sixaxis.ButtonTriangle),
			Cross:      pad.ReadButton(sixaxis.ButtonCross),
			PS:         pad.ReadButton(sixaxis.ButtonPS),
			Start:      pad.ReadButton(sixaxis.ButtonStart),
			Select:     pad.ReadButton(sixaxis.ButtonSelect),
			LeftStick:  pad.ReadButton(sixaxis.ButtonLeftStick),
			RightStick: pad.ReadButton(sixaxis.ButtonRightStick),
			Up:         pad.ReadButton(sixaxis.ButtonUp),
			Down:       pad.ReadButton(sixaxis.ButtonDown),
			Left:       pad.ReadButton(sixaxis.ButtonLeft),
			Right:      pad.ReadButton(sixaxis.ButtonRight),
			L1:         pad.ReadButton(sixaxis.ButtonL1),
			L2:         pad.ReadButton(sixaxis.ButtonL2),
			R1:         pad.ReadButton(sixaxis.ButtonR1),
			R2:         pad.ReadButton(sixaxis.ButtonR2),
		},
	}
}
