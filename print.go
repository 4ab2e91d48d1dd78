// Package vec: diagnostic text output. Not a serialization format — the
// rendering may change between releases.
package vec

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes the live elements to w, separated by delim, each rendered
// with the fmt %v verb. Returns the first write error encountered.
func (v *Vector[T]) Fprint(w io.Writer, delim string) error {
	for i := 0; i < v.size; i++ {
		if i > 0 {
			if _, err := io.WriteString(w, delim); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%v", v.buf[i]); err != nil {
			return err
		}
	}

	return nil
}

// String renders the live range as "[e0 e1 … eN]" for debugging.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	_ = v.Fprint(&sb, " ")
	sb.WriteByte(']')

	return sb.String()
}
