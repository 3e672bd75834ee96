package startup

import (
	"io"
	"iter"

	domain "github.com/berezovskyivalerii/formgateway/internal/domain/startup"
)

// Emit writes lines to sink in order, one write per line. It stops at the
// first failed write; lines written before it are left in place.
func Emit(lines iter.Seq[string], sink io.Writer) error {
	written := 0
	for line := range lines {
		buf := make([]byte, 0, len(line)+1)
		buf = append(append(buf, line...), '\n')

		n, err := sink.Write(buf)
		if err == nil && n < len(buf) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return &domain.EmitError{Written: written, Err: err}
		}
		written++
	}
	return nil
}
