// Copyright (C) IbisDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"time"

	"github.com/tychoish/birch"

	"github.com/ibisdb/ibis-go-driver/core/writeconcern"
)

// FindOneAndDeleteOptions represents options that can be used to configure a
// FindOneAndDelete operation.
type FindOneAndDeleteOptions struct {
	// Specifies a collation to use for string comparisons during the operation. The default value is nil, which
	// means the default collation of the collection will be used.
	Collation *Collation

	// The index to use for the operation. This may be a string naming the index or a document describing the
	// index's key pattern. The default value is nil, which means the server will select an index itself.
	Hint interface{}

	// The maximum amount of time that the query can run on the server. The default value is nil, meaning that
	// there is no time limit for query execution.
	MaxTime *time.Duration

	// A document describing which fields will be included in the document returned by the operation. The default
	// value is nil, which means all fields will be included.
	Projection *birch.Document

	// A document specifying which document should be deleted if the filter matches multiple documents. If set, the
	// first document in the sorted order will be deleted. The default value is nil.
	Sort interface{}

	// The write concern for the operation. The default value is nil, which means the collection's write concern
	// will be used.
	WriteConcern *writeconcern.WriteConcern
}

// FindOneAndDelete creates a new FindOneAndDeleteOptions instance.
func FindOneAndDelete() *FindOneAndDeleteOptions {
	return &FindOneAndDeleteOptions{}
}

// SetCollation sets the value for the Collation field.
func (f *FindOneAndDeleteOptions) SetCollation(collation *Collation) *FindOneAndDeleteOptions {
	f.Collation = collation
	return f
}

// SetHint sets the value for the Hint field.
func (f *FindOneAndDeleteOptions) SetHint(hint interface{}) *FindOneAndDeleteOptions {
	f.Hint = hint
	return f
}

// SetMaxTime sets the value for the MaxTime field.
func (f *FindOneAndDeleteOptions) SetMaxTime(d time.Duration) *FindOneAndDeleteOptions {
	f.MaxTime = &d
	return f
}

// SetProjection sets the value for the Projection field.
func (f *FindOneAndDeleteOptions) SetProjection(projection *birch.Document) *FindOneAndDeleteOptions {
	f.Projection = projection
	return f
}

// SetSort sets the value for the Sort field.
func (f *FindOneAndDeleteOptions) SetSort(sort interface{}) *FindOneAndDeleteOptions {
	f.Sort = sort
	return f
}

// SetWriteConcern sets the value for the WriteConcern field.
func (f *FindOneAndDeleteOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *FindOneAndDeleteOptions {
	f.WriteConcern = wc
	return f
}

// MergeFindOneAndDeleteOptions combines the given FindOneAndDeleteOptions
// instances into a single FindOneAndDeleteOptions in a last-one-wins fashion.
func MergeFindOneAndDeleteOptions(opts ...*FindOneAndDeleteOptions) *FindOneAndDeleteOptions {
	fo := FindOneAndDelete()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.Collation != nil {
			fo.Collation = opt.Collation
		}
		if opt.Hint != nil {
			fo.Hint = opt.Hint
		}
		if opt.MaxTime != nil {
			fo.MaxTime = opt.MaxTime
		}
		if opt.Projection != nil {
			fo.Projection = opt.Projection
		}
		if opt.Sort != nil {
			fo.Sort = opt.Sort
		}
		if opt.WriteConcern != nil {
			fo.WriteConcern = opt.WriteConcern
		}
	}

	return fo
}

// FindOneAndReplaceOptions represents options that can be used to configure a
// FindOneAndReplace operation.
type FindOneAndReplaceOptions struct {
	// If true, writes executed as part of the operation will opt out of document-level validation on the server.
	// The default value is false.
	BypassDocumentValidation *bool

	// Specifies a collation to use for string comparisons during the operation. The default value is nil, which
	// means the default collation of the collection will be used.
	Collation *Collation

	// The index to use for the operation. This may be a string naming the index or a document describing the
	// index's key pattern. The default value is nil, which means the server will select an index itself.
	Hint interface{}

	// The maximum amount of time that the query can run on the server. The default value is nil, meaning that
	// there is no time limit for query execution.
	MaxTime *time.Duration

	// A document describing which fields will be included in the document returned by the operation. The default
	// value is nil, which means all fields will be included.
	Projection *birch.Document

	// Specifies whether the original or replaced document should be returned by the operation. The default value
	// is Before, which means the original document will be returned.
	ReturnDocument *ReturnDocument

	// A document specifying which document should be replaced if the filter matches multiple documents. If set,
	// the first document in the sorted order will be replaced. The default value is nil.
	Sort interface{}

	// If true, a new document will be inserted if the filter does not match any documents in the collection. The
	// default value is false.
	Upsert *bool

	// The write concern for the operation. The default value is nil, which means the collection's write concern
	// will be used.
	WriteConcern *writeconcern.WriteConcern
}

// FindOneAndReplace creates a new FindOneAndReplaceOptions instance.
func FindOneAndReplace() *FindOneAndReplaceOptions {
	return &FindOneAndReplaceOptions{}
}

// SetBypassDocumentValidation sets the value for the BypassDocumentValidation field.
func (f *FindOneAndReplaceOptions) SetBypassDocumentValidation(b bool) *FindOneAndReplaceOptions {
	f.BypassDocumentValidation = &b
	return f
}

// SetCollation sets the value for the Collation field.
func (f *FindOneAndReplaceOptions) SetCollation(collation *Collation) *FindOneAndReplaceOptions {
	f.Collation = collation
	return f
}

// SetHint sets the value for the Hint field.
func (f *FindOneAndReplaceOptions) SetHint(hint interface{}) *FindOneAndReplaceOptions {
	f.Hint = hint
	return f
}

// SetMaxTime sets the value for the MaxTime field.
func (f *FindOneAndReplaceOptions) SetMaxTime(d time.Duration) *FindOneAndReplaceOptions {
	f.MaxTime = &d
	return f
}

// SetProjection sets the value for the Projection field.
func (f *FindOneAndReplaceOptions) SetProjection(projection *birch.Document) *FindOneAndReplaceOptions {
	f.Projection = projection
	return f
}

// SetReturnDocument sets the value for the ReturnDocument field.
func (f *FindOneAndReplaceOptions) SetReturnDocument(rd ReturnDocument) *FindOneAndReplaceOptions {
	f.ReturnDocument = &rd
	return f
}

// SetSort sets the value for the Sort field.
func (f *FindOneAndReplaceOptions) SetSort(sort interface{}) *FindOneAndReplaceOptions {
	f.Sort = sort
	return f
}

// SetUpsert sets the value for the Upsert field.
func (f *FindOneAndReplaceOptions) SetUpsert(b bool) *FindOneAndReplaceOptions {
	f.Upsert = &b
	return f
}

// SetWriteConcern sets the value for the WriteConcern field.
func (f *FindOneAndReplaceOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *FindOneAndReplaceOptions {
	f.WriteConcern = wc
	return f
}

// MergeFindOneAndReplaceOptions combines the given FindOneAndReplaceOptions
// instances into a single FindOneAndReplaceOptions in a last-one-wins
// fashion.
func MergeFindOneAndReplaceOptions(opts ...*FindOneAndReplaceOptions) *FindOneAndReplaceOptions {
	fo := FindOneAndReplace()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.BypassDocumentValidation != nil {
			fo.BypassDocumentValidation = opt.BypassDocumentValidation
		}
		if opt.Collation != nil {
			fo.Collation = opt.Collation
		}
		if opt.Hint != nil {
			fo.Hint = opt.Hint
		}
		if opt.MaxTime != nil {
			fo.MaxTime = opt.MaxTime
		}
		if opt.Projection != nil {
			fo.Projection = opt.Projection
		}
		if opt.ReturnDocument != nil {
			fo.ReturnDocument = opt.ReturnDocument
		}
		if opt.Sort != nil {
			fo.Sort = opt.Sort
		}
		if opt.Upsert != nil {
			fo.Upsert = opt.Upsert
		}
		if opt.WriteConcern != nil {
			fo.WriteConcern = opt.WriteConcern
		}
	}

	return fo
}

// FindOneAndUpdateOptions represents options that can be used to configure a
// FindOneAndUpdate operation.
type FindOneAndUpdateOptions struct {
	// A set of filters specifying to which array elements an update should apply. The default value is nil, which
	// means the update will apply to all array elements.
	ArrayFilters *ArrayFilters

	// If true, writes executed as part of the operation will opt out of document-level validation on the server.
	// The default value is false.
	BypassDocumentValidation *bool

	// Specifies a collation to use for string comparisons during the operation. The default value is nil, which
	// means the default collation of the collection will be used.
	Collation *Collation

	// The index to use for the operation. This may be a string naming the index or a document describing the
	// index's key pattern. The default value is nil, which means the server will select an index itself.
	Hint interface{}

	// The maximum amount of time that the query can run on the server. The default value is nil, meaning that
	// there is no time limit for query execution.
	MaxTime *time.Duration

	// A document describing which fields will be included in the document returned by the operation. The default
	// value is nil, which means all fields will be included.
	Projection *birch.Document

	// Specifies whether the original or updated document should be returned by the operation. The default value
	// is Before, which means the original document will be returned.
	ReturnDocument *ReturnDocument

	// A document specifying which document should be updated if the filter matches multiple documents. If set,
	// the first document in the sorted order will be updated. The default value is nil.
	Sort interface{}

	// If true, a new document will be inserted if the filter does not match any documents in the collection. The
	// default value is false.
	Upsert *bool

	// The write concern for the operation. The default value is nil, which means the collection's write concern
	// will be used.
	WriteConcern *writeconcern.WriteConcern
}

// FindOneAndUpdate creates a new FindOneAndUpdateOptions instance.
func FindOneAndUpdate() *FindOneAndUpdateOptions {
	return &FindOneAndUpdateOptions{}
}

// SetArrayFilters sets the value for the ArrayFilters field.
func (f *FindOneAndUpdateOptions) SetArrayFilters(filters ArrayFilters) *FindOneAndUpdateOptions {
	f.ArrayFilters = &filters
	return f
}

// SetBypassDocumentValidation sets the value for the BypassDocumentValidation field.
func (f *FindOneAndUpdateOptions) SetBypassDocumentValidation(b bool) *FindOneAndUpdateOptions {
	f.BypassDocumentValidation = &b
	return f
}

// SetCollation sets the value for the Collation field.
func (f *FindOneAndUpdateOptions) SetCollation(collation *Collation) *FindOneAndUpdateOptions {
	f.Collation = collation
	return f
}

// SetHint sets the value for the Hint field.
func (f *FindOneAndUpdateOptions) SetHint(hint interface{}) *FindOneAndUpdateOptions {
	f.Hint = hint
	return f
}

// SetMaxTime sets the value for the MaxTime field.
func (f *FindOneAndUpdateOptions) SetMaxTime(d time.Duration) *FindOneAndUpdateOptions {
	f.MaxTime = &d
	return f
}

// SetProjection sets the value for the Projection field.
func (f *FindOneAndUpdateOptions) SetProjection(projection *birch.Document) *FindOneAndUpdateOptions {
	f.Projection = projection
	return f
}

// SetReturnDocument sets the value for the ReturnDocument field.
func (f *FindOneAndUpdateOptions) SetReturnDocument(rd ReturnDocument) *FindOneAndUpdateOptions {
	f.ReturnDocument = &rd
	return f
}

// SetSort sets the value for the Sort field.
func (f *FindOneAndUpdateOptions) SetSort(sort interface{}) *FindOneAndUpdateOptions {
	f.Sort = sort
	return f
}

// SetUpsert sets the value for the Upsert field.
func (f *FindOneAndUpdateOptions) SetUpsert(b bool) *FindOneAndUpdateOptions {
	f.Upsert = &b
	return f
}

// SetWriteConcern sets the value for the WriteConcern field.
func (f *FindOneAndUpdateOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *FindOneAndUpdateOptions {
	f.WriteConcern = wc
	return f
}

// MergeFindOneAndUpdateOptions combines the given FindOneAndUpdateOptions
// instances into a single FindOneAndUpdateOptions in a last-one-wins fashion.
func MergeFindOneAndUpdateOptions(opts ...*FindOneAndUpdateOptions) *FindOneAndUpdateOptions {
	fo := FindOneAndUpdate()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.ArrayFilters != nil {
			fo.ArrayFilters = opt.ArrayFilters
		}
		if opt.BypassDocumentValidation != nil {
			fo.BypassDocumentValidation = opt.BypassDocumentValidation
		}
		if opt.Collation != nil {
			fo.Collation = opt.Collation
		}
		if opt.Hint != nil {
			fo.Hint = opt.Hint
		}
		if opt.MaxTime != nil {
			fo.MaxTime = opt.MaxTime
		}
		if opt.Projection != nil {
			fo.Projection = opt.Projection
		}
		if opt.ReturnDocument != nil {
			fo.ReturnDocument = opt.ReturnDocument
		}
		if opt.Sort != nil {
			fo.Sort = opt.Sort
		}
		if opt.Upsert != nil {
			fo.Upsert = opt.Upsert
		}
		if opt.WriteConcern != nil {
			fo.WriteConcern = opt.WriteConcern
		}
	}

	return fo
}
