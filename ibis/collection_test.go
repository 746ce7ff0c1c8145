// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ibis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tychoish/birch"

	"github.com/ibisdb/ibis-go-driver/core/collation"
	"github.com/ibisdb/ibis-go-driver/core/command"
	"github.com/ibisdb/ibis-go-driver/core/description"
	"github.com/ibisdb/ibis-go-driver/options"
)

type mockDeployment struct {
	server   description.SelectedServer
	response *birch.Document
	runErr   error

	ran     bool
	lastCmd *birch.Document
}

func (m *mockDeployment) SelectServer(context.Context) (description.SelectedServer, error) {
	return m.server, nil
}

func (m *mockDeployment) RunCommand(_ context.Context, _ description.SelectedServer, _ string, cmd *birch.Document) (*birch.Document, error) {
	m.ran = true
	m.lastCmd = cmd
	if m.runErr != nil {
		return nil, m.runErr
	}
	return m.response, nil
}

func newMock(max int32) *mockDeployment {
	return &mockDeployment{
		server: description.SelectedServer{
			Server: description.Server{
				Addr:        "localhost:27017",
				WireVersion: &description.VersionRange{Min: 0, Max: max},
			},
		},
		response: birch.DC.Elements(
			birch.EC.SubDocumentFromElements("value",
				birch.EC.Int32("_id", 1),
				birch.EC.String("status", "pending"),
			),
		),
	}
}

func TestCollectionFindOneAndDelete(t *testing.T) {
	t.Run("returns_deleted_document", func(t *testing.T) {
		depl := newMock(8)
		coll := NewDatabase("db", depl).Collection("coll")

		res := coll.FindOneAndDelete(context.Background(),
			birch.DC.Elements(birch.EC.String("status", "pending")))
		require.NoError(t, res.Err())

		doc, err := res.DecodeDocument()
		require.NoError(t, err)
		elem, err := doc.Search("status")
		require.NoError(t, err)
		status, ok := elem.Value().StringValueOK()
		require.True(t, ok)
		assert.Equal(t, "pending", status)
	})
	t.Run("no_match_returns_err_no_documents", func(t *testing.T) {
		depl := newMock(8)
		depl.response = birch.DC.Elements(birch.EC.Null("value"))
		coll := NewDatabase("db", depl).Collection("coll")

		res := coll.FindOneAndDelete(context.Background(),
			birch.DC.Elements(birch.EC.Int32("_id", 1)))
		assert.Equal(t, ErrNoDocuments, res.Err())
	})
	t.Run("nil_filter_fails_fast", func(t *testing.T) {
		depl := newMock(8)
		coll := NewDatabase("db", depl).Collection("coll")

		res := coll.FindOneAndDelete(context.Background(), nil)
		assert.Equal(t, command.ErrNilFilter, res.Err())
		assert.False(t, depl.ran)
	})
	t.Run("nil_context", func(t *testing.T) {
		depl := newMock(8)
		coll := NewDatabase("db", depl).Collection("coll")

		res := coll.FindOneAndDelete(nil,
			birch.DC.Elements(birch.EC.Int32("_id", 1)))
		assert.NoError(t, res.Err())
	})
}

func TestCollectionFindOneAndReplace(t *testing.T) {
	t.Run("replacement_with_operators_fails_fast", func(t *testing.T) {
		depl := newMock(8)
		coll := NewDatabase("db", depl).Collection("coll")

		res := coll.FindOneAndReplace(context.Background(),
			birch.DC.Elements(birch.EC.Int32("_id", 1)),
			birch.DC.Elements(birch.EC.SubDocumentFromElements("$set", birch.EC.Int32("a", 1))))
		assert.Equal(t, command.ErrReplacementHasOperators, res.Err())
		assert.False(t, depl.ran)
	})
	t.Run("collation_conflict", func(t *testing.T) {
		depl := newMock(8)
		coll := NewDatabase("db", depl).Collection("coll",
			CollectionDefaultCollation(&options.Collation{Locale: "en_US"}))

		res := coll.FindOneAndReplace(context.Background(),
			birch.DC.Elements(birch.EC.Int32("_id", 1)),
			birch.DC.Elements(birch.EC.String("name", "x")),
			options.FindOneAndReplace().SetCollation(&options.Collation{Locale: "fr"}))
		require.Error(t, res.Err())
		_, ok := res.Err().(collation.ConflictError)
		assert.True(t, ok)
		assert.False(t, depl.ran)
	})
}

func TestCollectionFindOneAndUpdate(t *testing.T) {
	t.Run("decodes_into_map", func(t *testing.T) {
		depl := newMock(8)
		coll := NewDatabase("db", depl).Collection("coll")

		res := coll.FindOneAndUpdate(context.Background(),
			birch.DC.Elements(birch.EC.Int32("_id", 1)),
			birch.DC.Elements(birch.EC.SubDocumentFromElements("$set",
				birch.EC.String("status", "done"))))
		require.NoError(t, res.Err())

		out := map[string]string{}
		require.NoError(t, res.Decode(out))
		assert.Equal(t, "pending", out["status"])
	})
	t.Run("update_without_operators_fails_fast", func(t *testing.T) {
		depl := newMock(8)
		coll := NewDatabase("db", depl).Collection("coll")

		res := coll.FindOneAndUpdate(context.Background(),
			birch.DC.Elements(birch.EC.Int32("_id", 1)),
			birch.DC.Elements(birch.EC.Int32("a", 1)))
		assert.Equal(t, command.ErrUpdateMissingOperators, res.Err())
		assert.False(t, depl.ran)
	})
}
