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

// Builder accumulates ARN fields and validates them once, at Build.
//
// Setters perform no validation, may be called in any order, and the last
// write wins. A Builder belongs to a single goroutine; the ARN values it
// produces are immutable and safe to share.
type Builder struct {
	partition string
	service   string
	region    string
	accountID string
	resource  string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Partition sets the partition.
func (b *Builder) Partition(partition string) *Builder {
	b.partition = partition
	return b
}

// Service sets the service namespace.
func (b *Builder) Service(service string) *Builder {
	b.service = service
	return b
}

// Region sets the region. An empty region means the ARN names a global
// resource.
func (b *Builder) Region(region string) *Builder {
	b.region = region
	return b
}

// AccountID sets the account ID. An empty account ID means the ARN has no
// account section.
func (b *Builder) AccountID(accountID string) *Builder {
	b.accountID = accountID
	return b
}

// Resource sets the verbatim resource text, which may contain ":" or "/".
func (b *Builder) Resource(resource string) *Builder {
	b.resource = resource
	return b
}

// Build validates the staged fields and returns the immutable ARN.
// Partition, service, and resource must be non-blank; on failure the
// returned error is a *BlankFieldError naming the first offending field.
// The Builder is left untouched and may be corrected and reused.
func (b *Builder) Build() (ARN, error) {
	if strings.TrimSpace(b.partition) == "" {
		return ARN{}, &BlankFieldError{Field: "partition"}
	}
	if strings.TrimSpace(b.service) == "" {
		return ARN{}, &BlankFieldError{Field: "service"}
	}
	if strings.TrimSpace(b.resource) == "" {
		return ARN{}, &BlankFieldError{Field: "resource"}
	}
	return ARN{
		partition: b.partition,
		service:   b.service,
		region:    b.region,
		accountID: b.accountID,
		resource:  makeResource(b.resource),
	}, nil
}
