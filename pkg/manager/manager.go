// Package manager exposes named material lookups over one shared builder.
package manager

import (
	"github.com/yaptide/materials/errors"
	"github.com/yaptide/materials/log"
	"github.com/yaptide/materials/pkg/builder"
	"github.com/yaptide/materials/pkg/material"
)

// StandardLibrary resolves materials of an external standard library, e.g. NIST catalog.
type StandardLibrary interface {
	FindOrBuildMaterial(name string) (*material.Material, error)
}

// Manager is the entry point used by geometry construction.
// Host creates one Manager per process and passes it to every consumer.
type Manager struct {
	builder *builder.Builder
	std     StandardLibrary
}

// New ...
func New(b *builder.Builder, std StandardLibrary) *Manager {
	return &Manager{builder: b, std: std}
}

// Builder returns shared builder.
func (m *Manager) Builder() *builder.Builder {
	return m.builder
}

// StandardMaterial compiles material declared in builder.
func (m *Manager) StandardMaterial(name string) (*material.Material, error) {
	return m.builder.Compile(name)
}

// NISTMaterial delegates to standard library.
func (m *Manager) NISTMaterial(name string) (*material.Material, error) {
	if m.std == nil {
		return nil, errors.MaterialError(name, errors.ErrUnknownMaterialName, "no standard library configured")
	}
	return m.std.FindOrBuildMaterial(name)
}

// PNNLMaterial is not implemented, it always fails.
func (m *Manager) PNNLMaterial(name string) (*material.Material, error) {
	log.Warning("PNNL material %s requested, PNNL materials are not available", name)
	return nil, errors.MaterialError(name, errors.ErrNotImplemented, "PNNL materials are not available")
}

// OpticalMaterial compiles material declared as optical, with its property table attached.
func (m *Manager) OpticalMaterial(name string) (*material.Material, error) {
	decl, found := m.builder.Declaration(name)
	if !found {
		return nil, errors.MaterialError(name, errors.ErrUnknownMaterialName, "material was never declared")
	}
	if !decl.Optical {
		return nil, errors.MaterialError(name, errors.ErrNotOptical, "material has no optical properties")
	}
	return m.builder.Compile(name)
}
