package maincmd

import (
	"context"
	"fmt"
	"io"

	"github.com/mna/mainer"

	"github.com/rawbytedev/varcell"
	"github.com/rawbytedev/varcell/pkg/wide"
)

func (c *Cmd) Demo(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return printError(stdio, Demo(stdio.Stdout))
}

// Demo prints the reference conversions between the built-in kinds.
func Demo(w io.Writer) error {
	i := varcell.From[[varcell.BuiltinWidth]byte](varcell.Int32, 1234)
	f := varcell.From[[varcell.BuiltinWidth]byte](varcell.Float32, 4.56)
	b := varcell.From[[varcell.BuiltinWidth]byte](varcell.Byte, 78)

	lines := []struct {
		from, to string
		val      any
	}{
		{"int32 1234", "byte", varcell.As(i, varcell.Byte)},
		{"int32 1234", "int32", varcell.As(i, varcell.Int32)},
		{"float32 4.56", "int32", varcell.As(f, varcell.Int32)},
		{"float32 4.56", "float32", varcell.As(f, varcell.Float32)},
		{"byte 78", "int32", varcell.As(b, varcell.Int32)},
		{"byte 78", "float32", varcell.As(b, varcell.Float32)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-13s as %-8s %v\n", l.from, l.to, l.val); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "cell width: builtin %d, with wide %d\n",
		varcell.BuiltinCell{}.Size(), wide.Cell{}.Size())
	return err
}
