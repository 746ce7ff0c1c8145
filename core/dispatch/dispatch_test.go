// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tychoish/birch"

	"github.com/ibisdb/ibis-go-driver/core/command"
	"github.com/ibisdb/ibis-go-driver/core/description"
	"github.com/ibisdb/ibis-go-driver/options"
)

type mockDeployment struct {
	server    description.SelectedServer
	selectErr error
	response  *birch.Document
	runErr    error

	ran     bool
	lastDB  string
	lastCmd *birch.Document
}

func (m *mockDeployment) SelectServer(context.Context) (description.SelectedServer, error) {
	return m.server, m.selectErr
}

func (m *mockDeployment) RunCommand(_ context.Context, _ description.SelectedServer, db string, cmd *birch.Document) (*birch.Document, error) {
	m.ran = true
	m.lastDB = db
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
			birch.EC.SubDocumentFromElements("value", birch.EC.Int32("a", 1)),
		),
	}
}

func deleteCmd() command.FindOneAndDelete {
	return command.FindOneAndDelete{
		NS:    command.NewNamespace("db", "coll"),
		Query: birch.DC.Elements(birch.EC.String("status", "pending")),
	}
}

func TestFindOneAndDeleteDispatch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		depl := newMock(8)
		res, err := FindOneAndDelete(context.Background(), deleteCmd(), depl)
		require.NoError(t, err)
		require.NotNil(t, res.Value)
		assert.Equal(t, "db", depl.lastDB)

		elem, err := depl.lastCmd.Search("findAndModify")
		require.NoError(t, err)
		coll, ok := elem.Value().StringValueOK()
		require.True(t, ok)
		assert.Equal(t, "coll", coll)
	})
	t.Run("rejected_command_sends_nothing", func(t *testing.T) {
		depl := newMock(8)
		cmd := deleteCmd()
		cmd.Query = nil

		_, err := FindOneAndDelete(context.Background(), cmd, depl)
		assert.Equal(t, command.ErrNilFilter, err)
		assert.False(t, depl.ran)
	})
	t.Run("gate_failure_sends_nothing", func(t *testing.T) {
		depl := newMock(7)
		_, err := FindOneAndDelete(context.Background(), deleteCmd(), depl,
			options.FindOneAndDelete().SetHint("idx"))
		require.Error(t, err)
		_, ok := err.(command.CapabilityError)
		assert.True(t, ok)
		assert.False(t, depl.ran)
	})
	t.Run("execution_error_passes_through", func(t *testing.T) {
		depl := newMock(8)
		depl.runErr = errors.New("socket closed")

		_, err := FindOneAndDelete(context.Background(), deleteCmd(), depl)
		assert.Equal(t, depl.runErr, err)
	})
	t.Run("server_selection_error", func(t *testing.T) {
		depl := newMock(8)
		depl.selectErr = errors.New("no server available")

		_, err := FindOneAndDelete(context.Background(), deleteCmd(), depl)
		assert.Equal(t, depl.selectErr, err)
		assert.False(t, depl.ran)
	})
	t.Run("options_populate_command", func(t *testing.T) {
		depl := newMock(8)
		_, err := FindOneAndDelete(context.Background(), deleteCmd(), depl,
			options.FindOneAndDelete().
				SetMaxTime(time.Second).
				SetSort(birch.DC.Elements(birch.EC.Int32("a", 1))))
		require.NoError(t, err)

		_, serr := depl.lastCmd.Search("maxTimeMS")
		assert.NoError(t, serr)
		_, serr = depl.lastCmd.Search("sort")
		assert.NoError(t, serr)
	})
	t.Run("merge_is_last_one_wins", func(t *testing.T) {
		depl := newMock(8)
		_, err := FindOneAndDelete(context.Background(), deleteCmd(), depl,
			options.FindOneAndDelete().SetMaxTime(time.Second),
			options.FindOneAndDelete().SetMaxTime(2*time.Second))
		require.NoError(t, err)

		elem, serr := depl.lastCmd.Search("maxTimeMS")
		require.NoError(t, serr)
		ms, ok := elem.Value().Int64OK()
		require.True(t, ok)
		assert.Equal(t, int64(2000), ms)
	})
}

func TestFindOneAndReplaceDispatch(t *testing.T) {
	t.Run("success_with_options", func(t *testing.T) {
		depl := newMock(8)
		cmd := command.FindOneAndReplace{
			NS:          command.NewNamespace("db", "coll"),
			Query:       birch.DC.Elements(birch.EC.Int32("_id", 1)),
			Replacement: birch.DC.Elements(birch.EC.String("name", "x")),
		}

		_, err := FindOneAndReplace(context.Background(), cmd, depl,
			options.FindOneAndReplace().
				SetReturnDocument(options.After).
				SetUpsert(true))
		require.NoError(t, err)

		elem, serr := depl.lastCmd.Search("new")
		require.NoError(t, serr)
		b, ok := elem.Value().BooleanOK()
		require.True(t, ok)
		assert.True(t, b)

		elem, serr = depl.lastCmd.Search("upsert")
		require.NoError(t, serr)
		b, ok = elem.Value().BooleanOK()
		require.True(t, ok)
		assert.True(t, b)
	})
	t.Run("validation_failure_sends_nothing", func(t *testing.T) {
		depl := newMock(8)
		cmd := command.FindOneAndReplace{
			NS:    command.NewNamespace("db", "coll"),
			Query: birch.DC.Elements(birch.EC.Int32("_id", 1)),
			Replacement: birch.DC.Elements(
				birch.EC.SubDocumentFromElements("$set", birch.EC.Int32("a", 1)),
			),
		}

		_, err := FindOneAndReplace(context.Background(), cmd, depl)
		assert.Equal(t, command.ErrReplacementHasOperators, err)
		assert.False(t, depl.ran)
	})
}

func TestFindOneAndUpdateDispatch(t *testing.T) {
	t.Run("array_filters_from_options", func(t *testing.T) {
		depl := newMock(8)
		cmd := command.FindOneAndUpdate{
			NS:    command.NewNamespace("db", "coll"),
			Query: birch.DC.Elements(birch.EC.Int32("_id", 1)),
			Update: birch.DC.Elements(
				birch.EC.SubDocumentFromElements("$set", birch.EC.Int32("a", 1)),
			),
		}

		_, err := FindOneAndUpdate(context.Background(), cmd, depl,
			options.FindOneAndUpdate().SetArrayFilters(options.ArrayFilters{
				Filters: []*birch.Document{
					birch.DC.Elements(birch.EC.Int32("x.y", 1)),
				},
			}))
		require.NoError(t, err)

		_, serr := depl.lastCmd.Search("arrayFilters")
		assert.NoError(t, serr)
	})
	t.Run("missing_operators_sends_nothing", func(t *testing.T) {
		depl := newMock(8)
		cmd := command.FindOneAndUpdate{
			NS:     command.NewNamespace("db", "coll"),
			Query:  birch.DC.Elements(birch.EC.Int32("_id", 1)),
			Update: birch.DC.Elements(birch.EC.Int32("a", 1)),
		}

		_, err := FindOneAndUpdate(context.Background(), cmd, depl)
		assert.Equal(t, command.ErrUpdateMissingOperators, err)
		assert.False(t, depl.ran)
	})
}
