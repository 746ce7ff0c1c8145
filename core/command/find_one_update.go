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

// FindOneAndUpdate represents the findOneAndUpdate operation.
//
// The findOneAndUpdate command applies update operators to a single document
// that matches a query and returns either the original or the updated
// document. The update must carry at least one top-level operator key.
type FindOneAndUpdate struct {
	NS     Namespace
	Query  *birch.Document
	Update *birch.Document

	Sort                     interface{}
	Projection               *birch.Document
	BypassDocumentValidation *bool
	ArrayFilters             *opt.ArrayFilters
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
func (f *FindOneAndUpdate) Encode(desc description.SelectedServer) (*birch.Document, error) {
	if err := f.NS.Validate(); err != nil {
		return nil, err
	}
	if f.Query == nil {
		return nil, ErrNilFilter
	}
	if err := ensureDollarKey(f.Update); err != nil {
		return nil, err
	}

	cmd := birch.DC.Elements(
		birch.EC.String("findAndModify", f.NS.Collection),
		birch.EC.SubDocument("query", f.Query),
		birch.EC.Boolean("remove", false),
		birch.EC.Boolean("new", f.ReturnDocument != nil && *f.ReturnDocument == opt.After),
		birch.EC.Boolean("upsert", f.Upsert != nil && *f.Upsert),
		birch.EC.SubDocument("update", f.Update),
	)

	mo := modifyOptions{
		sort:             f.Sort,
		projection:       f.Projection,
		bypass:           f.BypassDocumentValidation,
		arrayFilters:     f.ArrayFilters,
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

// IsWrite reports that findOneAndUpdate mutates data.
func (f *FindOneAndUpdate) IsWrite() bool { return true }

// RetryableWrite reports whether an external retry executor may resend the
// built command.
func (f *FindOneAndUpdate) RetryableWrite() bool {
	return writeconcern.AckWrite(f.WriteConcern)
}

// Decode interprets a raw server response. Errors during decoding are
// deferred until either the Result or Err methods are called.
func (f *FindOneAndUpdate) Decode(rdr *birch.Document) *FindOneAndUpdate {
	f.result, f.err = unmarshalFindAndModifyResult(rdr)
	return f
}

// Result returns the result of a decoded response.
func (f *FindOneAndUpdate) Result() (result.FindAndModify, error) {
	if f.err != nil {
		return result.FindAndModify{}, f.err
	}
	return f.result, nil
}

// Err returns the error set on this command.
func (f *FindOneAndUpdate) Err() error { return f.err }
