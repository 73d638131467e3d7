// Package output provides output formatting for the mapcell shell.
package output

import (
	"fmt"
	"io"
	"strings"
)

// PlainFormatter renders data as compact single-line text. It is the
// shell's default format and matches interactive expectations:
// listings come out as {k1:v1, k2:v2}.
type PlainFormatter struct{}

// Format renders data as plain text.
func (f *PlainFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case []Pair:
		var b strings.Builder
		b.WriteString("{")
		for i, p := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Key)
			b.WriteString(":")
			b.WriteString(p.Value)
		}
		b.WriteString("}")
		_, err := fmt.Fprintln(w, b.String())
		return err
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	default:
		_, err := fmt.Fprintf(w, "%v\n", v)
		return err
	}
}
