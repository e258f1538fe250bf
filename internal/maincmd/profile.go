package maincmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/mna/mainer"

	"github.com/rawbytedev/varcell"
	"github.com/rawbytedev/varcell/pkg/geom"
)

const (
	defaultProfile    = "mem.prof"
	defaultIterations = 10000
)

var (
	sinkInt32 int32
	sinkVec3  geom.Vec3
)

func (c *Cmd) Profile(ctx context.Context, stdio mainer.Stdio, args []string) error {
	out, n := c.Out, c.Iterations
	if out == "" {
		out = defaultProfile
	}
	if n == 0 {
		n = defaultIterations
	}

	prev := runtime.MemProfileRate
	runtime.MemProfileRate = 1
	defer func() { runtime.MemProfileRate = prev }()

	allocs, err := Profile(ctx, n)
	if err != nil {
		return printError(stdio, err)
	}
	if err := writeHeapProfile(out); err != nil {
		return printError(stdio, err)
	}
	log.Infof("heap profile written to %s", out)
	return printError(stdio, writeAllocs(stdio.Stdout, n, allocs))
}

// Profile runs n scalar and n vector round trips through a cell and returns
// the number of heap allocations they caused.
func Profile(ctx context.Context, n int) (uint64, error) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	for i := 0; i < n; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		c := varcell.From[storage](varcell.Float32, float32(i))
		sinkInt32 = varcell.As(c, varcell.Int32)
		c = varcell.From[storage](geom.KindVec3, geom.Vec3{X: float32(i)})
		sinkVec3 = varcell.As(c, geom.KindVec3)
	}
	runtime.ReadMemStats(&after)
	return after.Mallocs - before.Mallocs, nil
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pprof.WriteHeapProfile(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeAllocs(w io.Writer, n int, allocs uint64) error {
	_, err := fmt.Fprintf(w, "%d round trips, %d allocations (%.3f per round trip)\n",
		2*n, allocs, float64(allocs)/float64(2*n))
	return err
}
