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

// FindOneAndDelete handles the full cycle dispatch and execution of a
// findOneAndDelete command against the provided deployment.
func FindOneAndDelete(
	ctx context.Context,
	cmd command.FindOneAndDelete,
	depl Deployment,
	opts ...*options.FindOneAndDeleteOptions,
) (result.FindAndModify, error) {

	server, err := depl.SelectServer(ctx)
	if err != nil {
		return result.FindAndModify{}, err
	}

	do := options.MergeFindOneAndDeleteOptions(opts...)
	if do.Collation != nil {
		cmd.Collation = do.Collation
	}
	if do.Hint != nil {
		cmd.Hint = do.Hint
	}
	if do.MaxTime != nil {
		cmd.MaxTime = do.MaxTime
	}
	if do.Projection != nil {
		cmd.Projection = do.Projection
	}
	if do.Sort != nil {
		cmd.Sort = do.Sort
	}
	if do.WriteConcern != nil {
		cmd.WriteConcern = do.WriteConcern
	}

	doc, err := cmd.Encode(server)
	if err != nil {
		return result.FindAndModify{}, err
	}

	grip.Debug(message.Fields{
		"op":     "findOneAndDelete",
		"ns":     cmd.NS.FullName(),
		"server": server.Addr,
	})

	rdr, err := depl.RunCommand(ctx, server, cmd.NS.DB, doc)
	if err != nil {
		return result.FindAndModify{}, err
	}

	return cmd.Decode(rdr).Result()
}
