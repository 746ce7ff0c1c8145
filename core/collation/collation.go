// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package collation resolves the collation clause of a command against the
// target server and the owning collection's default collation. It decorates
// commands built elsewhere and never performs I/O.
package collation

import (
	"errors"
	"fmt"

	"github.com/tychoish/birch"

	"github.com/ibisdb/ibis-go-driver/core/description"
	opt "github.com/ibisdb/ibis-go-driver/options"
)

// minWireVersion is the first wire version with server-side collation
// support.
const minWireVersion = 5

// ErrCollation is returned when a collation is requested against a server
// that cannot apply one.
var ErrCollation = errors.New("the selected server does not support collation")

// ConflictError indicates that a requested collation cannot be combined with
// the default collation the collection was created with.
type ConflictError struct {
	Requested string
	Default   string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("collation locale %q conflicts with the collection default %q", e.Requested, e.Default)
}

// Resolve produces the collation element for a command, or nil if no
// collation was requested. Requesting a locale other than the collection's
// default is a configuration conflict.
func Resolve(requested, collectionDefault *opt.Collation, desc description.SelectedServer) (*birch.Element, error) {
	if requested == nil {
		return nil, nil
	}

	if desc.WireVersion == nil || desc.WireVersion.Max < minWireVersion {
		return nil, ErrCollation
	}

	if collectionDefault != nil && collectionDefault.Locale != "" && requested.Locale != collectionDefault.Locale {
		return nil, ConflictError{Requested: requested.Locale, Default: collectionDefault.Locale}
	}

	return birch.EC.SubDocument("collation", requested.ToDocument()), nil
}
