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

// FindOneAndReplace handles the full cycle dispatch and execution of a
// findOneAndReplace command against the provided deployment.
func FindOneAndReplace(
	ctx context.Context,
	cmd command.FindOneAndReplace,
	depl Deployment,
	opts ...*options.FindOneAndReplaceOptions,
) (result.FindAndModify, error) {

	server, err := depl.SelectServer(ctx)
	if err != nil {
		return result.FindAndModify{}, err
	}

	ro := options.MergeFindOneAndReplaceOptions(opts...)
	if ro.BypassDocumentValidation != nil {
		cmd.BypassDocumentValidation = ro.BypassDocumentValidation
	}
	if ro.Collation != nil {
		cmd.Collation = ro.Collation
	}
	if ro.Hint != nil {
		cmd.Hint = ro.Hint
	}
	if ro.MaxTime != nil {
		cmd.MaxTime = ro.MaxTime
	}
	if ro.Projection != nil {
		cmd.Projection = ro.Projection
	}
	if ro.ReturnDocument != nil {
		cmd.ReturnDocument = ro.ReturnDocument
	}
	if ro.Sort != nil {
		cmd.Sort = ro.Sort
	}
	if ro.Upsert != nil {
		cmd.Upsert = ro.Upsert
	}
	if ro.WriteConcern != nil {
		cmd.WriteConcern = ro.WriteConcern
	}

	doc, err := cmd.Encode(server)
	if err != nil {
		return result.FindAndModify{}, err
	}

	grip.Debug(message.Fields{
		"op":     "findOneAndReplace",
		"ns":     cmd.NS.FullName(),
		"server": server.Addr,
	})

	rdr, err := depl.RunCommand(ctx, server, cmd.NS.DB, doc)
	if err != nil {
		return result.FindAndModify{}, err
	}

	return cmd.Decode(rdr).Result()
}
