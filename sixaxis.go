package sixaxis

import (
	"fmt"
	"io"
	"sync"
)

// Locator acquires the byte-oriented input source for a controller, for
// example by opening /dev/input/js0. It is invoked on every Open call, so a
// handle can be re-opened after the device comes back.
type Locator func() (io.ReadCloser, error)

// Controller is a handle to a DUALSHOCK3/SIXAXIS controller. Construct one
// with New, call Open to start ingesting events, and query the Read methods
// at any time; they never block on device I/O.
//
// Read methods are safe for concurrent use and work on a handle that was
// never opened, returning rest values throughout.
type Controller struct {
	locate Locator
	state  *state

	mu  sync.Mutex // guards the open/close protocol below
	src io.ReadCloser
	rd  *reader
}

// New constructs a closed handle with an empty state snapshot. No I/O
// happens until Open.
func New(locate Locator) *Controller {
	return &Controller{locate: locate, state: newState()}
}

// Open acquires the input source and starts the background reader. It
// returns ErrNoController if the source cannot be acquired and ErrAlreadyOpen
// if the handle is already open.
func (c *Controller) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rd != nil {
		return ErrAlreadyOpen
	}
	src, err := c.locate()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoController, err)
	}
	c.src = src
	c.rd = startReader(src, c.state)
	return nil
}

// Close stops the background reader and releases the input source. Closing
// the source unblocks the reader's pending read, so Close waits for the read
// loop to exit before returning. Returns ErrNotOpen if the handle is not
// open. The handle may be opened again later; the last reported values
// survive a close.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rd == nil {
		return ErrNotOpen
	}
	err := c.src.Close()
	<-c.rd.done
	c.src = nil
	c.rd = nil
	return err
}

// Alive reports whether the background reader is still ingesting events.
// It turns false when the source errors or reaches end-of-stream, which is
// how a vanished controller shows up: queries keep succeeding but stop
// updating.
func (c *Controller) Alive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rd != nil && c.rd.alive()
}

// ReadAxis returns the most recent value for a thumb-stick axis,
// -32768..32767, or 0 if the axis has never reported.
func (c *Controller) ReadAxis(a Axis) int16 {
	return c.state.axis(a)
}

// ReadShoulder returns the most recent value for an analog shoulder trigger,
// 0..65535, or 0 if the shoulder has never reported.
func (c *Controller) ReadShoulder(s Shoulder) uint16 {
	return c.state.shoulder(s)
}

// ReadButton returns the most recent state of a digital button, or false if
// the button has never reported.
func (c *Controller) ReadButton(b Button) bool {
	return c.state.button(b)
}
