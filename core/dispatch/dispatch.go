// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package dispatch merges operation options into commands, finishes
// assembling them, and hands the built command to the execution adapter.
// Errors from the adapter are returned to the caller unmodified.
package dispatch

import (
	"context"

	"github.com/tychoish/birch"

	"github.com/ibisdb/ibis-go-driver/core/description"
)

// Deployment is the execution adapter boundary. Implementations perform
// server selection and the network round trip; everything on this side of
// the boundary is synchronous and CPU-only. A command handed to RunCommand
// is never mutated afterwards, and this package never retries: callers that
// want retry semantics resend the same deterministically built command.
type Deployment interface {
	SelectServer(ctx context.Context) (description.SelectedServer, error)
	RunCommand(ctx context.Context, server description.SelectedServer, db string, cmd *birch.Document) (*birch.Document, error)
}
