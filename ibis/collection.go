// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ibis

import (
	"context"

	"github.com/tychoish/birch"

	"github.com/ibisdb/ibis-go-driver/core/command"
	"github.com/ibisdb/ibis-go-driver/core/dispatch"
	"github.com/ibisdb/ibis-go-driver/core/writeconcern"
	"github.com/ibisdb/ibis-go-driver/options"
)

// Collection is a handle to a collection. It carries the collection's
// read-only metadata (default write concern, default collation); handles are
// immutable and safe for concurrent use.
type Collection struct {
	db           string
	name         string
	deployment   dispatch.Deployment
	writeConcern *writeconcern.WriteConcern

	// defaultCollation mirrors the collation the collection was created
	// with; requested collations are checked against it before dispatch.
	defaultCollation *options.Collation
}

// CollectionOption configures a Collection handle.
type CollectionOption func(*Collection)

// CollectionWriteConcern sets the default write concern for operations
// through this handle.
func CollectionWriteConcern(wc *writeconcern.WriteConcern) CollectionOption {
	return func(coll *Collection) { coll.writeConcern = wc }
}

// CollectionDefaultCollation records the default collation the collection
// was created with.
func CollectionDefaultCollation(co *options.Collation) CollectionOption {
	return func(coll *Collection) { coll.defaultCollation = co }
}

// Name returns the name of the collection.
func (coll *Collection) Name() string { return coll.name }

// Namespace returns the namespace of the collection.
func (coll *Collection) Namespace() command.Namespace {
	return command.NewNamespace(coll.db, coll.name)
}

// FindOneAndDelete finds a single document matching the filter, deletes it,
// and returns the deleted document.
func (coll *Collection) FindOneAndDelete(ctx context.Context, filter *birch.Document,
	opts ...*options.FindOneAndDeleteOptions) *SingleResult {

	if ctx == nil {
		ctx = context.Background()
	}

	cmd := command.FindOneAndDelete{
		NS:               coll.Namespace(),
		Query:            filter,
		WriteConcern:     coll.writeConcern,
		DefaultCollation: coll.defaultCollation,
	}

	res, err := dispatch.FindOneAndDelete(ctx, cmd, coll.deployment, opts...)
	if err != nil {
		return &SingleResult{err: err}
	}
	if res.Value == nil {
		return &SingleResult{err: ErrNoDocuments}
	}

	return &SingleResult{doc: res.Value}
}

// FindOneAndReplace finds a single document matching the filter and replaces
// it, returning either the original or the replaced document.
func (coll *Collection) FindOneAndReplace(ctx context.Context, filter, replacement *birch.Document,
	opts ...*options.FindOneAndReplaceOptions) *SingleResult {

	if ctx == nil {
		ctx = context.Background()
	}

	cmd := command.FindOneAndReplace{
		NS:               coll.Namespace(),
		Query:            filter,
		Replacement:      replacement,
		WriteConcern:     coll.writeConcern,
		DefaultCollation: coll.defaultCollation,
	}

	res, err := dispatch.FindOneAndReplace(ctx, cmd, coll.deployment, opts...)
	if err != nil {
		return &SingleResult{err: err}
	}
	if res.Value == nil {
		return &SingleResult{err: ErrNoDocuments}
	}

	return &SingleResult{doc: res.Value}
}

// FindOneAndUpdate finds a single document matching the filter and applies
// the update operators to it, returning either the original or the updated
// document.
func (coll *Collection) FindOneAndUpdate(ctx context.Context, filter, update *birch.Document,
	opts ...*options.FindOneAndUpdateOptions) *SingleResult {

	if ctx == nil {
		ctx = context.Background()
	}

	cmd := command.FindOneAndUpdate{
		NS:               coll.Namespace(),
		Query:            filter,
		Update:           update,
		WriteConcern:     coll.writeConcern,
		DefaultCollation: coll.defaultCollation,
	}

	res, err := dispatch.FindOneAndUpdate(ctx, cmd, coll.deployment, opts...)
	if err != nil {
		return &SingleResult{err: err}
	}
	if res.Value == nil {
		return &SingleResult{err: ErrNoDocuments}
	}

	return &SingleResult{doc: res.Value}
}
