package main

import (
	"fmt"
	"tagfacet/internal/catalog"
	assert "tagfacet/internal/util"

	"gopkg.in/yaml.v3"
)

type ExportCmd struct {
	Format string `short:"F" enum:"js,json,yaml" default:"js" help:"Output format (js, json, yaml)"`
}

func (cmd *ExportCmd) Run(g *Globals) error {
	var (
		data []byte
		err  error
	)
	switch cmd.Format {
	case "js":
		data, err = catalog.EncodeScript(g.Cat)
	case "json":
		data, err = catalog.EncodeJSON(g.Cat)
	case "yaml":
		if err = g.Cat.Validate(); err == nil {
			data, err = yaml.Marshal(g.Cat)
		}
	default:
		return fmt.Errorf("unsupported format: %s", cmd.Format)
	}
	if err != nil {
		return fmt.Errorf("failed to export catalog: %w", err)
	}

	assert.Success(g.Out.Write(data))
	return nil
}
