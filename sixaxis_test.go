package sixaxis

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"
)

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

// streamOf concatenates records into one byte stream.
func streamOf(records ...[recordSize]byte) []byte {
	var buf bytes.Buffer
	for _, rec := range records {
		buf.Write(rec[:])
	}
	return buf.Bytes()
}

func TestReaderDropsMalformedRecords(t *testing.T) {
	stream := streamOf(
		record(0, 1, 200, 0),                     // unknown tag, dropped
		record(1, 9, tagStick, 99),               // unknown index, dropped
		record(2, 0x7FFF, tagStick, stickIdxLX),  // applied
		record(3, 1, tagButton, buttonIdxCircle), // applied
	)
	st := newState()
	rd := startReader(io.NopCloser(bytes.NewReader(stream)), st)
	<-rd.done

	if got := st.axis(AxisLX); got != 32767 {
		t.Errorf("LX: got %d, want 32767", got)
	}
	if !st.button(ButtonCircle) {
		t.Error("Circle: got false, want true")
	}
	// Nothing else may have been touched.
	if got := st.axis(AxisLY); got != 0 {
		t.Errorf("LY: got %d, want 0", got)
	}
}

func TestReaderStopsOnShortRead(t *testing.T) {
	stream := append(streamOf(record(0, 5, tagStick, stickIdxRX)), 0xAA, 0xBB)
	st := newState()
	rd := startReader(io.NopCloser(bytes.NewReader(stream)), st)

	select {
	case <-rd.done:
	case <-time.After(2 * time.Second):
		t.Fatal("reader did not stop on truncated stream")
	}
	if got := st.axis(AxisRX); got != 5 {
		t.Errorf("RX: got %d, want 5", got)
	}
	if rd.alive() {
		t.Error("alive: got true after stop")
	}
}

func TestOpenCloseProtocol(t *testing.T) {
	pr, pw := io.Pipe()
	pad := New(func() (io.ReadCloser, error) { return pr, nil })

	if err := pad.Close(); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("Close before Open: got %v, want ErrNotOpen", err)
	}
	if err := pad.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := pad.Open(); !errors.Is(err, ErrAlreadyOpen) {
		t.Fatalf("second Open: got %v, want ErrAlreadyOpen", err)
	}
	if !pad.Alive() {
		t.Error("Alive: got false while open")
	}

	// The running reader must be undisturbed by the failed second Open.
	rec := record(0, 0x8000, tagStick, stickIdxLX)
	if _, err := pw.Write(rec[:]); err != nil {
		t.Fatalf("Write: %v", err)
	}
	waitFor(t, "LX update", func() bool { return pad.ReadAxis(AxisLX) == -32768 })

	if err := pad.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if pad.Alive() {
		t.Error("Alive: got true after Close")
	}
	if err := pad.Close(); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("second Close: got %v, want ErrNotOpen", err)
	}

	// Values survive a close.
	if got := pad.ReadAxis(AxisLX); got != -32768 {
		t.Errorf("LX after Close: got %d, want -32768", got)
	}
}

func TestReopenAfterClose(t *testing.T) {
	opens := 0
	pad := New(func() (io.ReadCloser, error) {
		opens++
		pr, _ := io.Pipe()
		return pr, nil
	})
	for i := 0; i < 2; i++ {
		if err := pad.Open(); err != nil {
			t.Fatalf("Open %d: %v", i, err)
		}
		if err := pad.Close(); err != nil {
			t.Fatalf("Close %d: %v", i, err)
		}
	}
	if opens != 2 {
		t.Errorf("locator calls: got %d, want 2", opens)
	}
}

func TestOpenNoController(t *testing.T) {
	locatorErr := errors.New("device absent")
	pad := New(func() (io.ReadCloser, error) { return nil, locatorErr })

	err := pad.Open()
	if !errors.Is(err, ErrNoController) {
		t.Fatalf("Open: got %v, want ErrNoController", err)
	}
	// The failed Open must leave the handle closed and readable.
	if pad.Alive() {
		t.Error("Alive: got true after failed Open")
	}
	if got := pad.ReadAxis(AxisLX); got != 0 {
		t.Errorf("LX: got %d, want 0", got)
	}
	if err := pad.Open(); !errors.Is(err, ErrNoController) {
		t.Fatalf("retried Open: got %v, want ErrNoController", err)
	}
}

func TestReadsNeverBlockOnSilentSource(t *testing.T) {
	pr, _ := io.Pipe() // nothing will ever be written
	pad := New(func() (io.ReadCloser, error) { return pr, nil })
	if err := pad.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer pad.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			pad.ReadAxis(AxisRY)
			pad.ReadShoulder(ShoulderR2)
			pad.ReadButton(ButtonStart)
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reads blocked while the source was silent")
	}
}

func TestAliveTurnsFalseOnSourceEnd(t *testing.T) {
	stream := streamOf(record(0, 1, tagButton, buttonIdxUp))
	pad := New(func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(stream)), nil
	})
	if err := pad.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	waitFor(t, "reader stop", func() bool { return !pad.Alive() })

	// Connectivity loss is visible only as frozen values, never an error.
	if !pad.ReadButton(ButtonUp) {
		t.Error("Up: got false, want true")
	}
	if err := pad.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
