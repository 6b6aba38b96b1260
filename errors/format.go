package errors

import (
	stderrors "errors"
	"fmt"
)

type makeNewGeneralErrorFuncType = func(
	kind error, message string, formatedValues ...interface{},
) error
type makeNewNamedErrorFuncType = func(
	name string, kind error, message string, formatedValues ...interface{},
) error

// GeneralError ...
var GeneralError = makeNewGeneralErrorFunc("library")

// MaterialError ...
var MaterialError = makeNewNamedErrorFunc("Material")

// DatasetError ...
var DatasetError = makeNewNamedErrorFunc("OpticalDataset")

// ElementError ...
var ElementError = makeNewNamedErrorFunc("Element")

// Kind returns taxonomy error wrapped by err, nil if err is not one of them.
func Kind(err error) error {
	for _, kind := range taxonomy {
		if stderrors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

var taxonomy = []error{
	ErrIncompleteDeclaration,
	ErrUnresolvedElement,
	ErrUnresolvedIsotope,
	ErrUnknownMaterialName,
	ErrUnknownOpticalDataset,
	ErrNoOpenDeclaration,
	ErrMixedComponentModes,
	ErrInvalidComponent,
	ErrInvalidDeclaration,
	ErrDuplicateMaterial,
	ErrMalformedCurve,
	ErrNotOptical,
	ErrExportLimit,
	ErrNotImplemented,
}

func makeNewGeneralErrorFunc(scope string) makeNewGeneralErrorFuncType {
	return func(kind error, message string, formatedValues ...interface{}) error {
		header := fmt.Sprintf("[materials] %s: ", scope)
		return fmt.Errorf("%s%s: %w", header, fmt.Sprintf(message, formatedValues...), kind)
	}
}

func makeNewNamedErrorFunc(modelName string) makeNewNamedErrorFuncType {
	return func(name string, kind error, message string, formatedValues ...interface{}) error {
		header := fmt.Sprintf("[materials] %s{Name: %q}: ", modelName, name)
		return fmt.Errorf("%s%s: %w", header, fmt.Sprintf(message, formatedValues...), kind)
	}
}
