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

// Package arn parses, builds, and formats Amazon Resource Names.
//
// An ARN names a resource within a partition/service/region/account
// namespace:
//
//	arn:partition:service:region:account-id:resource
//
// The resource section is free-form and may itself contain ":" or "/"
// characters. The parser keeps it verbatim, so formatting an ARN always
// reproduces the exact string it was parsed from:
//
//	a, err := arn.Parse("arn:aws:s3:us-east-1:123456789012:bucket/foobar")
//	// a.String() == "arn:aws:s3:us-east-1:123456789012:bucket/foobar"
//
// ARNs can also be assembled field by field with a Builder.
package arn

import "strings"

// Prefix is the literal prefix of every ARN.
const Prefix = "arn:"

// ARN is an immutable Amazon Resource Name.
//
// ARN is comparable: two ARNs compare equal, and hash equal as map keys,
// exactly when their partition, service, region, account ID, and verbatim
// resource text are all equal, regardless of whether they were parsed or
// built. The zero ARN is not a valid ARN; obtain one from Parse or from
// Builder.Build.
type ARN struct {
	partition string
	service   string
	region    string
	accountID string
	resource  Resource
}

// Parse parses s as an ARN.
//
// Field values are kept verbatim, so String on the result returns s
// exactly. Parse fails with a *MalformedError when s lacks the "arn:"
// prefix, one of the five sections, or the resource text, and with a
// *BlankFieldError when the partition or service section is blank.
func Parse(s string) (ARN, error) {
	rest, ok := strings.CutPrefix(s, Prefix)
	if !ok {
		return ARN{}, &MalformedError{Input: s, Reason: `missing "arn:" prefix`}
	}

	// The first four ":" are outer delimiters; everything after the
	// fourth is the resource section no matter how many ":" it contains.
	sections := strings.SplitN(rest, ":", 5)
	if len(sections) < 5 {
		missing := [...]string{"service", "region", "account ID", "resource"}
		return ARN{}, &MalformedError{Input: s, Reason: "no " + missing[len(sections)-1] + " section"}
	}

	partition, service := sections[0], sections[1]
	if strings.TrimSpace(partition) == "" {
		return ARN{}, &BlankFieldError{Field: "partition"}
	}
	if strings.TrimSpace(service) == "" {
		return ARN{}, &BlankFieldError{Field: "service"}
	}
	if strings.TrimSpace(sections[4]) == "" {
		return ARN{}, &MalformedError{Input: s, Reason: "no resource specified"}
	}

	return ARN{
		partition: partition,
		service:   service,
		region:    sections[2],
		accountID: sections[3],
		resource:  makeResource(sections[4]),
	}, nil
}

// MustParse parses s as an ARN and panics on failure. It is intended for
// ARNs known to be valid, such as literals in tests.
func MustParse(s string) ARN {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// IsARN reports whether s parses as an ARN.
func IsARN(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Partition returns the partition the resource lives in, e.g. "aws" or
// "aws-cn".
func (a ARN) Partition() string { return a.partition }

// Service returns the service namespace, e.g. "s3" or "iam".
func (a ARN) Service() string { return a.service }

// Region returns the region and true, or false when the ARN names a
// global resource with no region.
func (a ARN) Region() (string, bool) { return a.region, a.region != "" }

// AccountID returns the account ID and true, or false when the ARN has
// no account section.
func (a ARN) AccountID() (string, bool) { return a.accountID, a.accountID != "" }

// Resource returns the resource section.
func (a ARN) Resource() Resource { return a.resource }

// ResourceString returns the verbatim text of the resource section.
func (a ARN) ResourceString() string { return a.resource.String() }

// String returns the canonical string form of the ARN. It is the exact
// inverse of Parse: for any s accepted by Parse, Parse(s).String() == s.
func (a ARN) String() string {
	return Prefix + a.partition + ":" + a.service + ":" + a.region + ":" + a.accountID + ":" + a.resource.raw
}

// ToBuilder returns a new Builder pre-populated with the ARN's fields,
// for copy-with-override construction:
//
//	b, err := a.ToBuilder().Region("us-west-2").Build()
func (a ARN) ToBuilder() *Builder {
	return &Builder{
		partition: a.partition,
		service:   a.service,
		region:    a.region,
		accountID: a.accountID,
		resource:  a.resource.raw,
	}
}
