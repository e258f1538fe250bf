package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const binName = "varcell"

var log = commonlog.GetLogger(binName)

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<arg>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<arg>...]
       %[1]s -h|--help
       %[1]s -v|--version

Demonstration tool for %[1]s, the overlapping-storage value cell.

The <command> can be one of:
       demo                      Print the reference conversions between
                                 the built-in kinds.
       kinds                     List every linked unit and kind with its
                                 size, and the resulting cell width, as
                                 YAML.
       convert <from> <to> <v>   Write <v> under kind <from> and print it
                                 viewed as kind <to>.
       profile                   Run conversions in a loop, report the
                                 allocations per conversion and write a
                                 heap profile.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --verbose                 Log diagnostics to stderr.

Valid flag options for the <profile> command are:
       -o --out <file>           Heap profile destination (default
                                 mem.prof).
       -n --iterations <n>       Number of conversions (default 10000).

More information on the %[1]s repository:
       https://github.com/rawbytedev/varcell
`, binName)
)

type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`
	Verbose bool `flag:"verbose"`

	Out        string `flag:"o,out"`
	Iterations int    `flag:"n,iterations"`

	args  []string
	flags map[string]bool
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]

	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", c.args[0])
	}

	if cmdName == "convert" && len(c.args[1:]) != 3 {
		return fmt.Errorf("%s: expected <from> <to> <value>", cmdName)
	}

	for _, fl := range []string{"o", "out", "n", "iterations"} {
		if c.flags[fl] && cmdName != "profile" {
			return fmt.Errorf("%s: invalid flag '%s'", cmdName, fl)
		}
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%s: iterations must not be negative", cmdName)
	}

	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   true,
		EnvPrefix: strings.ToUpper(binName) + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	verbosity := 0
	if c.Verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		// each command takes care of printing its errors, just return with an error code
		return mainer.Failure
	}
	return mainer.Success
}

func printError(stdio mainer.Stdio, err error) error {
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
	}
	return err
}

// buildCmds collects the subcommands of the varcell CLI: the exported methods
// of Cmd shaped like Demo, Kinds, Convert and Profile, keyed by their
// lowercased name.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		// must take 4 parameters (including receiver) and return 1
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}

		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
