// Package errors error module.
package errors

import (
	"fmt"
)

var (
	// ErrIncompleteDeclaration material declaration has fewer components than declared.
	ErrIncompleteDeclaration = fmt.Errorf("incompletedeclaration")
	// ErrUnresolvedElement element provider has no element for given reference.
	ErrUnresolvedElement = fmt.Errorf("unresolvedelement")
	// ErrUnresolvedIsotope element provider has no atomic mass for (Z, A).
	ErrUnresolvedIsotope = fmt.Errorf("unresolvedisotope")
	// ErrUnknownMaterialName material was never declared.
	ErrUnknownMaterialName = fmt.Errorf("unknownmaterial")
	// ErrUnknownOpticalDataset optical dataset is missing from the static table.
	ErrUnknownOpticalDataset = fmt.Errorf("unknownopticaldataset")
	// ErrNoOpenDeclaration component appended without an open declaration.
	ErrNoOpenDeclaration = fmt.Errorf("noopendeclaration")
	// ErrMixedComponentModes weight and atom-count components in one material.
	ErrMixedComponentModes = fmt.Errorf("mixedcomponentmodes")
	// ErrInvalidComponent malformed component entry.
	ErrInvalidComponent = fmt.Errorf("invalidcomponent")
	// ErrInvalidDeclaration malformed material declaration.
	ErrInvalidDeclaration = fmt.Errorf("invaliddeclaration")
	// ErrDuplicateMaterial material name declared twice.
	ErrDuplicateMaterial = fmt.Errorf("duplicatematerial")
	// ErrMalformedCurve property curve is not usable by a property table.
	ErrMalformedCurve = fmt.Errorf("malformedcurve")
	// ErrNotOptical optical lookup of a non optical material.
	ErrNotOptical = fmt.Errorf("notoptical")
	// ErrExportLimit material set does not fit into exported deck.
	ErrExportLimit = fmt.Errorf("exportlimit")
	// ErrNotImplemented ...
	ErrNotImplemented = fmt.Errorf("notimplemented")
)
