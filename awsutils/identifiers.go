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

// Package awsutils validates AWS identifiers and works with IAM role ARNs
// on top of the arn package.
package awsutils

import (
	"regexp"

	"github.com/gravitational/trace"
)

const (
	// accountIDLength is the required length of an AWS account ID.
	accountIDLength = 12

	// iamRoleNameMaxLength is the maximum length of an IAM role name.
	// https://docs.aws.amazon.com/IAM/latest/APIReference/API_CreateRole.html
	iamRoleNameMaxLength = 64
)

// matchIAMRoleName matches the characters AWS allows in IAM role names.
var matchIAMRoleName = regexp.MustCompile(`^[\w+=,.@-]+$`).MatchString

// matchRegion matches the region shape AWS uses, e.g. "us-east-1" or
// "us-gov-west-1". It intentionally does not pin the list of known
// regions, which grows over time.
var matchRegion = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-[0-9]+$`).MatchString

// matchPartition matches the partition shape AWS uses, e.g. "aws",
// "aws-cn", or "aws-us-gov".
var matchPartition = regexp.MustCompile(`^aws(-[a-z]+)*$`).MatchString

// IsValidAccountID checks whether the accountID is a valid AWS account ID:
// exactly 12 ASCII digits.
func IsValidAccountID(accountID string) error {
	if len(accountID) != accountIDLength {
		return trace.BadParameter("must be %d-digit", accountIDLength)
	}
	for _, d := range accountID {
		if d < '0' || d > '9' {
			return trace.BadParameter("must only contain digits")
		}
	}
	return nil
}

// IsValidIAMRoleName checks whether the roleName is a valid AWS IAM role
// name.
func IsValidIAMRoleName(roleName string) error {
	if roleName == "" || len(roleName) > iamRoleNameMaxLength || !matchIAMRoleName(roleName) {
		return trace.BadParameter("%q is not a valid AWS IAM role name", roleName)
	}
	return nil
}

// IsValidRegion checks whether the region looks like an AWS region.
func IsValidRegion(region string) error {
	if !matchRegion(region) {
		return trace.BadParameter("%q is not a valid AWS region", region)
	}
	return nil
}

// IsValidPartition checks whether the partition looks like an AWS
// partition.
func IsValidPartition(partition string) error {
	if !matchPartition(partition) {
		return trace.BadParameter("%q is not a valid AWS partition", partition)
	}
	return nil
}
