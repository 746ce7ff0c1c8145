// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package result contains the results from various operations.
package result

import "github.com/tychoish/birch"

// FindAndModify is a result from a findAndModify command.
type FindAndModify struct {
	Value           *birch.Document
	LastErrorObject struct {
		UpdatedExisting bool
		Upserted        interface{}
	}
}
