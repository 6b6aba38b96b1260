// Package nist provides catalog of standard Geant4 NIST materials.
package nist

import (
	"bytes"
	_ "embed"

	"github.com/yaptide/materials/pkg/builder"
	"github.com/yaptide/materials/pkg/element"
	"github.com/yaptide/materials/pkg/material"
)

//go:embed materials.yaml
var materialsYAML []byte

// Catalog resolves G4_* material names.
type Catalog struct {
	builder *builder.Builder
}

// NewCatalog ...
func NewCatalog(provider element.Provider) (*Catalog, error) {
	b := builder.New(provider)
	if err := b.LoadDeclarations(bytes.NewReader(materialsYAML)); err != nil {
		return nil, err
	}
	return &Catalog{builder: b}, nil
}

// FindOrBuildMaterial compiles named catalog material.
func (c *Catalog) FindOrBuildMaterial(name string) (*material.Material, error) {
	return c.builder.Compile(name)
}

// Names ...
func (c *Catalog) Names() []string {
	return c.builder.Names()
}
