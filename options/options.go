// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package options defines the optional behaviors that callers can request
// for individual operations. Options are plain structs with chainable
// setters; nil fields mean "not requested" and are never encoded into a
// command.
package options

import (
	"github.com/tychoish/birch"
)

// Collation allows users to specify language-specific rules for string
// comparison, such as rules for lettercase and accent marks.
type Collation struct {
	Locale          string
	CaseLevel       bool
	CaseFirst       string
	Strength        int
	NumericOrdering bool
	Alternate       string
	MaxVariable     string
	Backwards       bool
}

// ToDocument converts the Collation to a document for inclusion in a
// command. Zero-valued fields are omitted.
func (co *Collation) ToDocument() *birch.Document {
	doc := birch.DC.Make(8)
	if co.Locale != "" {
		doc.Append(birch.EC.String("locale", co.Locale))
	}
	if co.CaseLevel {
		doc.Append(birch.EC.Boolean("caseLevel", true))
	}
	if co.CaseFirst != "" {
		doc.Append(birch.EC.String("caseFirst", co.CaseFirst))
	}
	if co.Strength != 0 {
		doc.Append(birch.EC.Int32("strength", int32(co.Strength)))
	}
	if co.NumericOrdering {
		doc.Append(birch.EC.Boolean("numericOrdering", true))
	}
	if co.Alternate != "" {
		doc.Append(birch.EC.String("alternate", co.Alternate))
	}
	if co.MaxVariable != "" {
		doc.Append(birch.EC.String("maxVariable", co.MaxVariable))
	}
	if co.Backwards {
		doc.Append(birch.EC.Boolean("backwards", true))
	}
	return doc
}

// ReturnDocument specifies whether a find-and-modify operation should return
// the document as it was before the modification or as it is after.
type ReturnDocument int8

const (
	// Before specifies that the operation should return the document as it
	// was before the modification.
	Before ReturnDocument = iota
	// After specifies that the operation should return the document as it is
	// after the modification.
	After
)

// ArrayFilters is a set of filters specifying to which array elements an
// update should apply.
type ArrayFilters struct {
	Filters []*birch.Document
}

// ToArray converts the filters to an array for inclusion in an update
// command.
func (af *ArrayFilters) ToArray() *birch.Array {
	arr := birch.MakeArray(len(af.Filters))
	for _, filter := range af.Filters {
		arr.Append(birch.VC.Document(filter))
	}
	return arr
}
