// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tychoish/birch"
	"github.com/tychoish/birch/bsontype"

	"github.com/ibisdb/ibis-go-driver/core/collation"
	"github.com/ibisdb/ibis-go-driver/core/description"
	"github.com/ibisdb/ibis-go-driver/core/result"
	"github.com/ibisdb/ibis-go-driver/core/writeconcern"
	opt "github.com/ibisdb/ibis-go-driver/options"
)

const (
	// minHintWireVersion is the first wire version that accepts an index
	// hint on findAndModify.
	minHintWireVersion = 8
	// minExplainWireVersion is the first wire version that can explain a
	// findAndModify command.
	minExplainWireVersion = 4
)

// ensureDollarKey verifies that an update document contains at least one
// top-level key beginning with '$'.
func ensureDollarKey(update *birch.Document) error {
	if update == nil {
		return ErrNilUpdate
	}

	for i := 0; i < update.Len(); i++ {
		elem, ok := update.ElementAtOK(uint(i))
		if ok && strings.HasPrefix(elem.Key(), "$") {
			return nil
		}
	}

	return ErrUpdateMissingOperators
}

// ensureNoDollarKey verifies that a replacement document contains no
// top-level keys beginning with '$'.
func ensureNoDollarKey(replacement *birch.Document) error {
	if replacement == nil {
		return ErrNilReplacement
	}

	for i := 0; i < replacement.Len(); i++ {
		elem, ok := replacement.ElementAtOK(uint(i))
		if ok && strings.HasPrefix(elem.Key(), "$") {
			return ErrReplacementHasOperators
		}
	}

	return nil
}

// formatSort normalizes a sort specification into its command encoding,
// preserving the caller's field order. Directions are encoded as int32;
// sub-document values (such as metadata sorts) pass through unchanged.
func formatSort(sort interface{}) (*birch.Document, error) {
	switch s := sort.(type) {
	case *birch.Document:
		return normalizeSortDocument(s)
	case []*birch.Element:
		return normalizeSortDocument(birch.DC.Elements(s...))
	default:
		return nil, ErrInvalidSort
	}
}

func normalizeSortDocument(in *birch.Document) (*birch.Document, error) {
	out := birch.DC.Make(in.Len())

	for i := 0; i < in.Len(); i++ {
		elem, ok := in.ElementAtOK(uint(i))
		if !ok {
			break
		}

		if doc, ok := elem.Value().MutableDocumentOK(); ok {
			out.Append(birch.EC.SubDocument(elem.Key(), doc))
			continue
		}

		dir, ok := elem.Value().IntOK()
		if !ok || (dir != 1 && dir != -1) {
			return nil, ErrInvalidSort
		}
		out.Append(birch.EC.Int32(elem.Key(), int32(dir)))
	}

	return out, nil
}

// hintElement converts a hint into its command encoding. A hint is either
// the name of an index or a document describing its key pattern.
func hintElement(hint interface{}) (*birch.Element, error) {
	switch h := hint.(type) {
	case string:
		return birch.EC.String("hint", h), nil
	case *birch.Document:
		return birch.EC.SubDocument("hint", h), nil
	default:
		return nil, ErrInvalidHint
	}
}

// modifyOptions carries the option fields shared by the find-and-modify
// variants while a command document is assembled.
type modifyOptions struct {
	sort             interface{}
	projection       *birch.Document
	bypass           *bool
	arrayFilters     *opt.ArrayFilters
	maxTime          *time.Duration
	writeConcern     *writeconcern.WriteConcern
	hint             interface{}
	explain          bool
	collation        *opt.Collation
	defaultCollation *opt.Collation
}

// append finishes assembling cmd: optional fields first, then the capability
// gate, then the gated hint field and the collation clause. A gate or
// decoration failure discards the command.
func (mo modifyOptions) append(cmd *birch.Document, desc description.SelectedServer) error {
	if mo.sort != nil {
		sortDoc, err := formatSort(mo.sort)
		if err != nil {
			return err
		}
		cmd.Append(birch.EC.SubDocument("sort", sortDoc))
	}
	if mo.projection != nil {
		cmd.Append(birch.EC.SubDocument("fields", mo.projection))
	}
	if mo.bypass != nil && *mo.bypass {
		cmd.Append(birch.EC.Boolean("bypassDocumentValidation", true))
	}
	if mo.arrayFilters != nil {
		cmd.Append(birch.EC.Array("arrayFilters", mo.arrayFilters.ToArray()))
	}
	if mo.maxTime != nil {
		cmd.Append(birch.EC.Int64("maxTimeMS", int64(*mo.maxTime/time.Millisecond)))
	}
	if mo.writeConcern != nil {
		wcDoc, err := mo.writeConcern.MarshalBSONDocument()
		if err != nil {
			return err
		}
		cmd.Append(birch.EC.SubDocument("writeConcern", wcDoc))
	}

	collationElem, err := collation.Resolve(mo.collation, mo.defaultCollation, desc)
	if err != nil {
		return err
	}

	if err := mo.checkCapability(desc); err != nil {
		return err
	}

	if mo.hint != nil {
		hintElem, err := hintElement(mo.hint)
		if err != nil {
			return err
		}
		cmd.Append(hintElem)
	}
	if collationElem != nil {
		cmd.Append(collationElem)
	}

	return nil
}

// checkCapability rejects hint and explain usage the selected server or the
// resolved write concern cannot support. The unacknowledged-write condition
// disables hint at every wire version; this is a compatibility rule rather
// than a protocol invariant.
func (mo modifyOptions) checkCapability(desc description.SelectedServer) error {
	if mo.hint != nil {
		if !writeconcern.AckWrite(mo.writeConcern) {
			return CapabilityError{
				Feature: "hint",
				Server:  desc.Addr,
				Reason:  "hint cannot be used with an unacknowledged write concern",
			}
		}
		if desc.WireVersion == nil || desc.WireVersion.Max < minHintWireVersion {
			return CapabilityError{
				Feature: "hint",
				Server:  desc.Addr,
				Reason:  fmt.Sprintf("requires wire version %d", minHintWireVersion),
			}
		}
	}

	if mo.explain {
		if desc.WireVersion == nil || desc.WireVersion.Max < minExplainWireVersion {
			return CapabilityError{
				Feature: "explain",
				Server:  desc.Addr,
				Reason:  fmt.Sprintf("requires wire version %d", minExplainWireVersion),
			}
		}
	}

	return nil
}

// unmarshalFindAndModifyResult turns a raw server response into a
// findAndModify result.
func unmarshalFindAndModifyResult(rdr *birch.Document) (result.FindAndModify, error) {
	var res result.FindAndModify

	elem, err := rdr.Search("value")
	if err != nil {
		return result.FindAndModify{}, errors.New("invalid response from server, no value field")
	}

	switch elem.Value().Type() {
	case bsontype.Null:
	case bsontype.EmbeddedDocument:
		doc, ok := elem.Value().MutableDocumentOK()
		if !ok {
			return result.FindAndModify{}, errors.New("invalid response from server, 'value' field is not a document")
		}
		res.Value = doc
	default:
		return result.FindAndModify{}, errors.New("invalid response from server, 'value' field is not a document")
	}

	if elem, err := rdr.Search("lastErrorObject", "updatedExisting"); err == nil {
		if b, ok := elem.Value().BooleanOK(); ok {
			res.LastErrorObject.UpdatedExisting = b
		}
	}

	if elem, err := rdr.Search("lastErrorObject", "upserted"); err == nil {
		res.LastErrorObject.Upserted = elem.Value().Interface()
	}

	return res, nil
}
