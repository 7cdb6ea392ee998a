package convert

import (
	"errors"

	"scene-converter/internal/common"
	"scene-converter/internal/diagnostic"
)

// ErrEmptyMeshFile is matched by errors for mesh primitives whose file is empty.
var ErrEmptyMeshFile = errors.New("mesh primitive has an empty file")

// FieldError is a conversion failure located at one key of the scene.
type FieldError struct {
	// Item is the scene element, e.g. "bsdfs[1]".
	Item string
	// Field is the key within Item.
	Field string
	// Code is the diagnostic code recorded for the failure.
	Code string
	Err  error
}

func (e *FieldError) Error() string {
	loc := common.Join(e.Item, e.Field)
	if loc == "" {
		return e.Err.Error()
	}

	return loc + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// record adds err to diags as an error diagnostic when it carries a location.
func record(diags *diagnostic.Diagnostics, err error) {
	var fe *FieldError
	if errors.As(err, &fe) {
		diags.AddError(fe.Code, fe.Err.Error(), fe.Item, fe.Field)
	}
}
