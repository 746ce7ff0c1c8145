// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package writeconcern defines the write concerns for IbisDB write
// operations: the level of acknowledgement the caller requests from the
// server before a write is considered complete.
package writeconcern

import (
	"errors"
	"time"

	"github.com/tychoish/birch"
)

// ErrInconsistent indicates that an inconsistent write concern was specified.
var ErrInconsistent = errors.New("a write concern cannot have both w=0 and j=true")

// ErrNegativeW indicates that a negative integer `w` field was specified.
var ErrNegativeW = errors.New("write concern `w` field cannot be a negative number")

// ErrNegativeWTimeout indicates that a negative WTimeout was specified.
var ErrNegativeWTimeout = errors.New("write concern `wtimeout` field cannot be negative")

// WriteConcern describes the level of acknowledgement requested from IbisDB
// for write operations.
type WriteConcern struct {
	w        interface{}
	j        bool
	wTimeout time.Duration
}

// Option is an option to provide when creating a WriteConcern.
type Option func(concern *WriteConcern)

// New constructs a new WriteConcern.
func New(options ...Option) *WriteConcern {
	concern := &WriteConcern{}

	for _, option := range options {
		option(concern)
	}

	return concern
}

// W requests acknowledgement that write operations propagate to the
// specified number of server instances.
func W(w int) Option {
	return func(concern *WriteConcern) {
		concern.w = w
	}
}

// WMajority requests acknowledgement that write operations propagate to the
// majority of server instances.
func WMajority() Option {
	return func(concern *WriteConcern) {
		concern.w = "majority"
	}
}

// WTagSet requests acknowledgement that write operations propagate to the
// server instances with the specified tag.
func WTagSet(tag string) Option {
	return func(concern *WriteConcern) {
		concern.w = tag
	}
}

// J requests acknowledgement from the server that write operations are
// written to the journal.
func J(j bool) Option {
	return func(concern *WriteConcern) {
		concern.j = j
	}
}

// WTimeout specifies a time limit for the write concern.
func WTimeout(d time.Duration) Option {
	return func(concern *WriteConcern) {
		concern.wTimeout = d
	}
}

// MarshalBSONDocument marshals the write concern into a document suitable
// for inclusion in a command. Zero-valued fields are omitted.
func (wc *WriteConcern) MarshalBSONDocument() (*birch.Document, error) {
	if !wc.IsValid() {
		return nil, ErrInconsistent
	}

	doc := birch.DC.Make(3)

	if wc.w != nil {
		switch t := wc.w.(type) {
		case int:
			if t < 0 {
				return nil, ErrNegativeW
			}

			doc.Append(birch.EC.Int32("w", int32(t)))
		case string:
			doc.Append(birch.EC.String("w", t))
		}
	}

	if wc.j {
		doc.Append(birch.EC.Boolean("j", wc.j))
	}

	if wc.wTimeout < 0 {
		return nil, ErrNegativeWTimeout
	}

	if wc.wTimeout != 0 {
		doc.Append(birch.EC.Int64("wtimeout", int64(wc.wTimeout/time.Millisecond)))
	}

	return doc, nil
}

// Acknowledged indicates whether or not a write with the given write concern
// will be acknowledged.
func (wc *WriteConcern) Acknowledged() bool {
	if wc == nil || wc.j {
		return true
	}

	switch v := wc.w.(type) {
	case int:
		if v == 0 {
			return false
		}
	}

	return true
}

// IsValid checks whether the write concern is invalid.
func (wc *WriteConcern) IsValid() bool {
	if !wc.j {
		return true
	}

	switch v := wc.w.(type) {
	case int:
		if v == 0 {
			return false
		}
	}

	return true
}

// AckWrite returns true if a write concern represents an acknowledged write.
func AckWrite(wc *WriteConcern) bool {
	return wc == nil || wc.Acknowledged()
}
