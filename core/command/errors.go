// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package command

import (
	"errors"
	"fmt"

	"github.com/ibisdb/ibis-go-driver/core/description"
)

// ErrNilFilter indicates that a nil filter document was provided to an
// operation that requires one.
var ErrNilFilter = errors.New("filter document cannot be nil")

// ErrNilReplacement indicates that a nil replacement document was provided.
var ErrNilReplacement = errors.New("replacement document cannot be nil")

// ErrReplacementHasOperators indicates that a replacement document contained
// a top-level update operator key.
var ErrReplacementHasOperators = errors.New("replacement document cannot contain keys beginning with '$'")

// ErrNilUpdate indicates that a nil update document was provided.
var ErrNilUpdate = errors.New("update document cannot be nil")

// ErrUpdateMissingOperators indicates that an update document contained no
// top-level update operator keys.
var ErrUpdateMissingOperators = errors.New("update document must contain at least one key beginning with '$'")

// ErrInvalidSort indicates that a sort specification was not a supported
// shape or contained an invalid direction value.
var ErrInvalidSort = errors.New("sort must be a document or a slice of elements with directions of 1 or -1")

// ErrInvalidHint indicates that a hint was neither an index name nor an
// index key-pattern document.
var ErrInvalidHint = errors.New("hint must be a string or a document")

// CapabilityError is returned when a fully built command requests a feature
// that cannot be used against the selected server or with the resolved write
// concern. The command is discarded; nothing is sent.
type CapabilityError struct {
	Feature string
	Server  description.Addr
	Reason  string
}

func (e CapabilityError) Error() string {
	if e.Server != "" {
		return fmt.Sprintf("%s is unsupported for server %s: %s", e.Feature, e.Server, e.Reason)
	}
	return fmt.Sprintf("%s is unsupported: %s", e.Feature, e.Reason)
}
