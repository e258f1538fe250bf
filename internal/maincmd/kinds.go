package maincmd

import (
	"context"
	"io"

	"github.com/mna/mainer"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/varcell"
)

type kindReport struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
}

type unitReport struct {
	Name  string       `yaml:"name"`
	Width int          `yaml:"width"`
	Kinds []kindReport `yaml:"kinds"`
}

type catalogReport struct {
	Width int          `yaml:"width"`
	Units []unitReport `yaml:"units"`
}

func (c *Cmd) Kinds(ctx context.Context, stdio mainer.Stdio, args []string) error {
	cat, err := newCatalog()
	if err != nil {
		return printError(stdio, err)
	}
	return printError(stdio, WriteCatalog(stdio.Stdout, cat))
}

// WriteCatalog writes the units, kinds and width of cat as YAML.
func WriteCatalog(w io.Writer, cat *varcell.Catalog) error {
	rep := catalogReport{Width: cat.Width()}
	for _, u := range cat.Units() {
		ur := unitReport{Name: u.Name(), Width: u.Width()}
		for _, k := range u.Kinds() {
			ur.Kinds = append(ur.Kinds, kindReport{Name: k.Name(), Size: k.Size()})
		}
		rep.Units = append(rep.Units, ur)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
