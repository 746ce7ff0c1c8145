// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ibis

import (
	"github.com/pkg/errors"
	"github.com/tychoish/birch"
)

// ErrNoDocuments is returned by SingleResult methods when the operation that
// created the SingleResult did not match any documents.
var ErrNoDocuments = errors.New("ibis: no documents in result")

// SingleResult represents a single document returned from an operation. If
// the operation returned an error, the Err method of SingleResult will
// return that error.
type SingleResult struct {
	doc *birch.Document
	err error
}

// Err returns the error from the operation that created this SingleResult,
// or ErrNoDocuments if the operation did not match any documents.
func (sr *SingleResult) Err() error { return sr.err }

// Decode unmarshals the document represented by this SingleResult into v.
// If there was an error from the operation, it is returned instead.
func (sr *SingleResult) Decode(v interface{}) error {
	if sr.err != nil {
		return sr.err
	}
	return errors.Wrap(sr.doc.Unmarshal(v), "problem decoding result document")
}

// DecodeDocument returns the document represented by this SingleResult
// without unmarshalling it.
func (sr *SingleResult) DecodeDocument() (*birch.Document, error) {
	if sr.err != nil {
		return nil, sr.err
	}
	return sr.doc, nil
}
