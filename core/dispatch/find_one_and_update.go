// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package dispatch

import (
	"context"

	"github.com/tychoish/grip"
	"github.com/tychoish/grip/message"

	"github.com/ibisdb/ibis-go-driver/core/command"
	"github.com/ibisdb/ibis-go-driver/core/result"
	"github.com/ibisdb/ibis-go-driver/options"
)

// FindOneAndUpdate handles the full cycle dispatch and execution of a
// findOneAndUpdate command against the provided deployment.
func FindOneAndUpdate(
	ctx context.Context,
	cmd command.FindOneAndUpdate,
	depl Deployment,
	opts ...*options.FindOneAndUpdateOptions,
) (result.FindAndModify, error) {

	server, err := depl.SelectServer(ctx)
	if err != nil {
		return result.FindAndModify{}, err
	}

	uo := options.MergeFindOneAndUpdateOptions(opts...)
	if uo.ArrayFilters != nil {
		cmd.ArrayFilters = uo.ArrayFilters
	}
	if uo.BypassDocumentValidation != nil {
		cmd.BypassDocumentValidation = uo.BypassDocumentValidation
	}
	if uo.Collation != nil {
		cmd.Collation = uo.Collation
	}
	if uo.Hint != nil {
		cmd.Hint = uo.Hint
	}
	if uo.MaxTime != nil {
		cmd.MaxTime = uo.MaxTime
	}
	if uo.Projection != nil {
		cmd.Projection = uo.Projection
	}
	if uo.ReturnDocument != nil {
		cmd.ReturnDocument = uo.ReturnDocument
	}
	if uo.Sort != nil {
		cmd.Sort = uo.Sort
	}
	if uo.Upsert != nil {
		cmd.Upsert = uo.Upsert
	}
	if uo.WriteConcern != nil {
		cmd.WriteConcern = uo.WriteConcern
	}

	doc, err := cmd.Encode(server)
	if err != nil {
		return result.FindAndModify{}, err
	}

	grip.Debug(message.Fields{
		"op":     "findOneAndUpdate",
		"ns":     cmd.NS.FullName(),
		"server": server.Addr,
	})

	rdr, err := depl.RunCommand(ctx, server, cmd.NS.DB, doc)
	if err != nil {
		return result.FindAndModify{}, err
	}

	return cmd.Decode(rdr).Result()
}
