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

import (
	"errors"
	"fmt"
)

// MalformedError reports input that does not have the minimal
// "arn:partition:service:region:account-id:resource" shape: the prefix is
// missing, a section is missing entirely, or the resource text is blank.
type MalformedError struct {
	// Input is the full string that failed to parse.
	Input string
	// Reason describes what is missing.
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed ARN %q: %s", e.Input, e.Reason)
}

// BlankFieldError reports a required ARN field that is empty or only
// whitespace. Field is "partition", "service", or "resource".
type BlankFieldError struct {
	Field string
}

func (e *BlankFieldError) Error() string {
	return e.Field + " must not be blank or empty"
}

// IsMalformed reports whether err is, or wraps, a *MalformedError.
func IsMalformed(err error) bool {
	var malformed *MalformedError
	return errors.As(err, &malformed)
}

// IsBlankField reports whether err is, or wraps, a *BlankFieldError.
func IsBlankField(err error) bool {
	var blank *BlankFieldError
	return errors.As(err, &blank)
}
