// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package ibis is the public API of the IbisDB driver's command construction
// layer. A Collection builds, validates, and dispatches commands; the
// network round trip itself is performed by the Deployment the handle was
// opened with.
package ibis

import (
	"github.com/ibisdb/ibis-go-driver/core/dispatch"
	"github.com/ibisdb/ibis-go-driver/core/writeconcern"
)

// Database is a handle to a database on a deployment. It is safe for
// concurrent use.
type Database struct {
	name         string
	deployment   dispatch.Deployment
	writeConcern *writeconcern.WriteConcern
}

// DatabaseOption configures a Database handle.
type DatabaseOption func(*Database)

// DatabaseWriteConcern sets the default write concern for operations through
// this handle.
func DatabaseWriteConcern(wc *writeconcern.WriteConcern) DatabaseOption {
	return func(db *Database) { db.writeConcern = wc }
}

// NewDatabase returns a handle to the named database on the given
// deployment.
func NewDatabase(name string, depl dispatch.Deployment, opts ...DatabaseOption) *Database {
	db := &Database{name: name, deployment: depl}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Name returns the name of the database.
func (db *Database) Name() string { return db.name }

// Collection returns a handle to a collection in this database.
func (db *Database) Collection(name string, opts ...CollectionOption) *Collection {
	coll := &Collection{
		db:           db.name,
		name:         name,
		deployment:   db.deployment,
		writeConcern: db.writeConcern,
	}
	for _, opt := range opts {
		opt(coll)
	}
	return coll
}
