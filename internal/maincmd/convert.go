package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/rawbytedev/varcell"
)

func (c *Cmd) Convert(ctx context.Context, stdio mainer.Stdio, args []string) error {
	out, err := Convert(args[0], args[1], args[2])
	if err != nil {
		return printError(stdio, err)
	}
	fmt.Fprintln(stdio.Stdout, out)
	return nil
}

// Convert parses value as kind from, stores it in a cell wide enough for every
// linked unit and formats the cell as kind to.
func Convert(from, to, value string) (string, error) {
	cat, err := newCatalog()
	if err != nil {
		return "", err
	}
	if err := varcell.Fits[storage](cat); err != nil {
		return "", err
	}

	src, err := lookupCodec(cat, from)
	if err != nil {
		return "", err
	}
	dst, err := lookupCodec(cat, to)
	if err != nil {
		return "", err
	}

	c, err := src.parse(value)
	if err != nil {
		return "", fmt.Errorf("%s: %w", from, err)
	}
	log.Debugf("%s %q stored as %s", from, value, c)
	return dst.format(c), nil
}

func lookupCodec(cat *varcell.Catalog, name string) (codec, error) {
	if _, err := cat.Lookup(name); err != nil {
		return codec{}, err
	}
	cd, ok := codecs[name]
	if !ok {
		return codec{}, fmt.Errorf("%w: no text form for %s", varcell.ErrUnknownKind, name)
	}
	return cd, nil
}
