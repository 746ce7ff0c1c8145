// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package description holds read-only descriptions of servers as reported by
// the topology layer. The command layer consults these to decide whether a
// feature can be used against a given server before anything is sent.
package description

import "fmt"

// Addr is a network address of a server, in host:port form.
type Addr string

// String implements the fmt.Stringer interface.
func (a Addr) String() string { return string(a) }

// VersionRange represents a range of wire protocol versions supported by a
// server.
type VersionRange struct {
	Min int32
	Max int32
}

// NewVersionRange creates a new VersionRange given a min and a max.
func NewVersionRange(min, max int32) VersionRange {
	return VersionRange{Min: min, Max: max}
}

// Includes returns a bool indicating whether the supplied integer is included
// in the range.
func (vr VersionRange) Includes(v int32) bool {
	return v >= vr.Min && v <= vr.Max
}

// String implements the fmt.Stringer interface.
func (vr VersionRange) String() string {
	return fmt.Sprintf("[%d, %d]", vr.Min, vr.Max)
}

// Server represents a description of a server. The command layer treats it
// as immutable input; it is produced by the monitoring machinery elsewhere.
type Server struct {
	Addr Addr

	MaxDocumentSize uint32
	MaxMessageSize  uint32
	WireVersion     *VersionRange
}

// SelectedServer represents a server that has been selected as the target
// for an operation.
type SelectedServer struct {
	Server
}
