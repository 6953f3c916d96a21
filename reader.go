package sixaxis

import (
	"io"
	"log"
)

// reader is the background half of a controller session. It owns the input
// source and loops: read one record, decode, apply to the shared state.
// Malformed records are dropped and the loop continues; the only way out is
// an I/O error or end-of-stream from the source, after which done is closed
// and the reader never restarts.
type reader struct {
	src   io.Reader
	state *state
	done  chan struct{}
}

func startReader(src io.Reader, st *state) *reader {
	r := &reader{src: src, state: st, done: make(chan struct{})}
	go r.run()
	return r
}

func (r *reader) run() {
	defer close(r.done)
	var rec [recordSize]byte
	for {
		if _, err := io.ReadFull(r.src, rec[:]); err != nil {
			log.Printf("sixaxis: reader stopped: %v", err)
			return
		}
		ev, err := decodeRecord(rec)
		if err != nil {
			// One corrupt frame must not end the session.
			continue
		}
		r.state.apply(ev)
	}
}

// alive reports whether the read loop is still running.
func (r *reader) alive() bool {
	select {
	case <-r.done:
		return false
	default:
		return true
	}
}
