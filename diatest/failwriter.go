package diatest

import "io"

// FailWriter fails every write.
type FailWriter struct{}

func (w *FailWriter) Write(_ []byte) (int, error) {
	return 0, io.ErrClosedPipe
}
