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

// FindOneAndDelete represents the findOneAndDelete operation.
//
// The findOneAndDelete command deletes a single document that matches a
// query and returns it.
type FindOneAndDelete struct {
	NS    Namespace
	Query *birch.Document

	Sort             interface{}
	Projection       *birch.Document
	MaxTime          *time.Duration
	WriteConcern     *writeconcern.WriteConcern
	Hint             interface{}
	Explain          bool
	Collation        *opt.Collation
	DefaultCollation *opt.Collation

	result result.FindAndModify
	err    error
}

// Encode builds the wire command for the given server description. The
// returned document is complete and immutable; on any error nothing is
// built.
func (f *FindOneAndDelete) Encode(desc description.SelectedServer) (*birch.Document, error) {
	if err := f.NS.Validate(); err != nil {
		return nil, err
	}
	if f.Query == nil {
		return nil, ErrNilFilter
	}

	cmd := birch.DC.Elements(
		birch.EC.String("findAndModify", f.NS.Collection),
		birch.EC.SubDocument("query", f.Query),
		birch.EC.Boolean("remove", true),
		birch.EC.Boolean("new", false),
		birch.EC.Boolean("upsert", false),
	)

	mo := modifyOptions{
		sort:             f.Sort,
		projection:       f.Projection,
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

// IsWrite reports that findOneAndDelete mutates data.
func (f *FindOneAndDelete) IsWrite() bool { return true }

// RetryableWrite reports whether an external retry executor may resend the
// built command. Rebuilding is deterministic, so a retry reuses the same
// command value.
func (f *FindOneAndDelete) RetryableWrite() bool {
	return writeconcern.AckWrite(f.WriteConcern)
}

// Decode interprets a raw server response. Errors during decoding are
// deferred until either the Result or Err methods are called.
func (f *FindOneAndDelete) Decode(rdr *birch.Document) *FindOneAndDelete {
	f.result, f.err = unmarshalFindAndModifyResult(rdr)
	return f
}

// Result returns the result of a decoded response.
func (f *FindOneAndDelete) Result() (result.FindAndModify, error) {
	if f.err != nil {
		return result.FindAndModify{}, f.err
	}
	return f.result, nil
}

// Err returns the error set on this command.
func (f *FindOneAndDelete) Err() error { return f.err }
