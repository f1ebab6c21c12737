/*
Copyright 2025 Gravitational, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package arn

import "strings"

// Resource is the trailing free-form section of an ARN.
//
// The verbatim text is authoritative: String returns exactly the text the
// Resource was created with, and ARN formatting and equality are defined
// over it. Type, ID, and Qualifier are a best-effort decomposition for
// resources of the common "type:id", "type/id", and "type:id:qualifier"
// shapes. Resources nesting several ":" or "/" separators do not have a
// unique decomposition; callers needing exact semantics for such resources
// should interpret String themselves.
type Resource struct {
	raw       string
	typ       string
	id        string
	qualifier string
}

// makeResource decomposes raw once, at construction. The first ":" or "/"
// (whichever comes first) separates the type from the rest. A qualifier is
// split off only for ":"-separated resources, where the text after the
// last ":" is a version-like suffix, e.g. "function:name:1". Empty pieces
// cancel the split.
func makeResource(raw string) Resource {
	r := Resource{raw: raw, id: raw}

	sep := strings.IndexAny(raw, ":/")
	if sep <= 0 || sep == len(raw)-1 {
		return r
	}
	r.typ = raw[:sep]
	r.id = raw[sep+1:]

	if raw[sep] != ':' {
		return r
	}
	if last := strings.LastIndexByte(r.id, ':'); last > 0 && last < len(r.id)-1 {
		r.qualifier = r.id[last+1:]
		r.id = r.id[:last]
	}
	return r
}

// Type returns the resource type and true, e.g. "bucket" for
// "bucket/foobar", or false when the resource has no type prefix.
func (r Resource) Type() (string, bool) { return r.typ, r.typ != "" }

// ID returns the resource ID: the text remaining after the type prefix
// and qualifier suffix, or the whole resource text when there is neither.
func (r Resource) ID() string { return r.id }

// Qualifier returns the qualifier and true, e.g. "1" for
// "function:name:1", or false when the resource has no qualifier.
func (r Resource) Qualifier() (string, bool) { return r.qualifier, r.qualifier != "" }

// String returns the verbatim resource text.
func (r Resource) String() string { return r.raw }
