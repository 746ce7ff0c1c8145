// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package command

import (
	"time"

	"github.com/tychoish/birch"

	"github.com/ibisdb/ibis-go-driver/core/description"
	"github.com/ibisdb/ibis-go-driver/core/result"
	"github.com/ibisdb/ibis-go-driver/core/writeconcern"
	opt "github.com/ibisdb/ibis-go-driver/options"
)

// FindOneAndReplace represents the findOneAndReplace operation.
//
// The findOneAndReplace command replaces a single document that matches a
// query and returns either the original or the replaced document. The
// replacement must be a plain document: top-level update operator keys are
// rejected before anything is built.
type FindOneAndReplace struct {
	NS          Namespace
	Query       *birch.Document
	Replacement *birch.Document

	Sort                     interface{}
	Projection               *birch.Document
	BypassDocumentValidation *bool
	MaxTime                  *time.Duration
	WriteConcern             *writeconcern.WriteConcern
	ReturnDocument           *opt.ReturnDocument
	Upsert                   *bool
	Hint                     interface{}
	Explain                  bool
	Collation                *opt.Collation
	DefaultCollation         *opt.Collation

	result result.FindAndModify
	err    error
}

// Encode builds the wire command for the given server description.
func (f *FindOneAndReplace) Encode(desc description.SelectedServer) (*birch.Document, error) {
	if err := f.NS.Validate(); err != nil {
		return nil, err
	}
	if f.Query == nil {
		return nil, ErrNilFilter
	}
	if err := ensureNoDollarKey(f.Replacement); err != nil {
		return nil, err
	}

	cmd := birch.DC.Elements(
		birch.EC.String("findAndModify", f.NS.Collection),
		birch.EC.SubDocument("query", f.Query),
		birch.EC.Boolean("remove", false),
		birch.EC.Boolean("new", f.ReturnDocument != nil && *f.ReturnDocument == opt.After),
		birch.EC.Boolean("upsert", f.Upsert != nil && *f.Upsert),
		birch.EC.SubDocument("update", f.Replacement),
	)

	mo := modifyOptions{
		sort:             f.Sort,
		projection:       f.Projection,
		bypass:           f.BypassDocumentValidation,
		maxTime:          f.MaxTime,
		writeConcern:     f.WriteConcern,
		hint:             f.Hint,
		explain:          f.Explain,
		collation:        f.Collation,
		defaultCollation: f.DefaultCollation,
	}
	if err := mo.append(cmd, desc); err != nil {
		return nil, err
	}

	return cmd, nil
}

// IsWrite reports that findOneAndReplace mutates data.
func (f *FindOneAndReplace) IsWrite() bool { return true }

// RetryableWrite reports whether an external retry executor may resend the
// built command.
func (f *FindOneAndReplace) RetryableWrite() bool {
	return writeconcern.AckWrite(f.WriteConcern)
}

// Decode interprets a raw server response. Errors during decoding are
// deferred until either the Result or Err methods are called.
func (f *FindOneAndReplace) Decode(rdr *birch.Document) *FindOneAndReplace {
	f.result, f.err = unmarshalFindAndModifyResult(rdr)
	return f
}

// Result returns the result of a decoded response.
func (f *FindOneAndReplace) Result() (result.FindAndModify, error) {
	if f.err != nil {
		return result.FindAndModify{}, f.err
	}
	return f.result, nil
}

// Err returns the error set on this command.
func (f *FindOneAndReplace) Err() error { return f.err }
