package testutil

import (
	"io"
	"sync/atomic"
)

// FailOnNthWrite is an io.Writer that injects Err on the Nth Write call. It
// lets export tests simulate I/O failures at a precise point in a file.
//
// Writes are counted starting at 1; writes before FailOn pass through to W
// (or are discarded when W is nil).
type FailOnNthWrite struct {
	W      io.Writer
	FailOn int32
	Err    error

	count atomic.Int32
}

func (f *FailOnNthWrite) Write(p []byte) (int, error) {
	n := f.count.Add(1)
	if n >= f.FailOn {
		return 0, f.Err
	}
	if f.W == nil {
		return len(p), nil
	}
	return f.W.Write(p)
}

// Writes reports how many Write calls were made.
func (f *FailOnNthWrite) Writes() int {
	return int(f.count.Load())
}
