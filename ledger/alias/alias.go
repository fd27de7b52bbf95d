// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package alias implements the alias transaction payloads.
package alias

import (
	"fmt"
	"strings"

	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

// AliasAssignment creates or updates an alias
type AliasAssignment struct {
	Alias string
	Uri   string
}

func (a *AliasAssignment) Name() string {
	return "AliasAssignment"
}

func (a *AliasAssignment) Version() uint8 {
	return 1
}

func (a *AliasAssignment) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.String8(a.Alias)
	w.String16(a.Uri)
}

func (a *AliasAssignment) Json() json.Object {
	return json.Object{
		"version.AliasAssignment": int64(a.Version()),
		"alias":                   a.Alias,
		"uri":                     a.Uri,
	}
}

func (a *AliasAssignment) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Alias:  %s\n", a.Alias)
	fmt.Fprintf(&sb, "  URI:  %s\n", a.Uri)
	return sb.String()
}

// AliasSell offers an alias for sale
type AliasSell struct {
	Alias string
	Price int64
}

func (a *AliasSell) Name() string {
	return "AliasSell"
}

func (a *AliasSell) Version() uint8 {
	return 1
}

func (a *AliasSell) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.String8(a.Alias)
	w.Int64(a.Price)
}

func (a *AliasSell) Json() json.Object {
	return json.Object{
		"version.AliasSell": int64(a.Version()),
		"alias":             a.Alias,
		"priceNQT":          a.Price,
	}
}

func (a *AliasSell) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Alias:  %s\n", a.Alias)
	fmt.Fprintf(&sb, "  Price:  %d\n", a.Price)
	return sb.String()
}

// AliasBuy accepts an alias sale offer
type AliasBuy struct {
	Alias string
}

func (a *AliasBuy) Name() string {
	return "AliasBuy"
}

func (a *AliasBuy) Version() uint8 {
	return 1
}

func (a *AliasBuy) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.String8(a.Alias)
}

func (a *AliasBuy) Json() json.Object {
	return json.Object{
		"version.AliasBuy": int64(a.Version()),
		"alias":            a.Alias,
	}
}

func (a *AliasBuy) Describe(reg *common.Registry) string {
	return fmt.Sprintf("  Alias:  %s\n", a.Alias)
}

// AliasDelete deletes an alias
type AliasDelete struct {
	Alias string
}

func (a *AliasDelete) Name() string {
	return "AliasDelete"
}

func (a *AliasDelete) Version() uint8 {
	return 1
}

func (a *AliasDelete) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.String8(a.Alias)
}

func (a *AliasDelete) Json() json.Object {
	return json.Object{
		"version.AliasDelete": int64(a.Version()),
		"alias":               a.Alias,
	}
}

func (a *AliasDelete) Describe(reg *common.Registry) string {
	return fmt.Sprintf("  Alias:  %s\n", a.Alias)
}

var AliasAssignmentCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &AliasAssignment{
			Alias: r.String8(),
			Uri:   r.String16(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		return &AliasAssignment{
			Alias: obj.String("alias"),
			Uri:   obj.String("uri"),
		}, nil
	},
}

var AliasSellCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &AliasSell{
			Alias: r.String8(),
			Price: r.Int64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		return &AliasSell{
			Alias: obj.String("alias"),
			Price: obj.Int64("priceNQT"),
		}, nil
	},
}

var AliasBuyCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &AliasBuy{
			Alias: r.String8(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		return &AliasBuy{Alias: obj.String("alias")}, nil
	},
}

var AliasDeleteCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &AliasDelete{
			Alias: r.String8(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		return &AliasDelete{Alias: obj.String("alias")}, nil
	},
}
