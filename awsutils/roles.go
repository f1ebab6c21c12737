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

package awsutils

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gravitational/trace"

	"github.com/gravitational/arnkit/arn"
)

const (
	// iamServiceName is the service namespace of AWS IAM.
	iamServiceName = "iam"
	// roleResourceType is the ARN resource type of IAM roles.
	roleResourceType = "role"
)

// ParseRoleARN parses an IAM role ARN, e.g.
// "arn:aws:iam::123456789012:role/EC2FullAccess", and checks that it names
// a role in a valid account.
func ParseRoleARN(roleARN string) (arn.ARN, error) {
	parsed, err := arn.Parse(roleARN)
	if err != nil {
		return arn.ARN{}, trace.BadParameter("%q is not an AWS IAM role ARN: %v", roleARN, err)
	}
	if err := checkRoleARN(parsed); err != nil {
		return arn.ARN{}, trace.Wrap(err)
	}
	return parsed, nil
}

// CheckRoleARN returns an error if the provided ARN is not a valid IAM
// role ARN.
func CheckRoleARN(roleARN string) error {
	_, err := ParseRoleARN(roleARN)
	return trace.Wrap(err)
}

func checkRoleARN(a arn.ARN) error {
	if a.Service() != iamServiceName {
		return trace.BadParameter("%q is not an AWS IAM role ARN", a)
	}
	if region, ok := a.Region(); ok {
		return trace.BadParameter("IAM role ARN %q must not have a region, found %q", a, region)
	}
	accountID, ok := a.AccountID()
	if !ok {
		return trace.BadParameter("IAM role ARN %q is missing the account ID", a)
	}
	if err := IsValidAccountID(accountID); err != nil {
		return trace.BadParameter("IAM role ARN %q has an invalid account ID: %v", a, err)
	}
	resourceType, ok := a.Resource().Type()
	if !ok || resourceType != roleResourceType {
		return trace.BadParameter("%q is not an AWS IAM role ARN", a)
	}
	if a.Resource().ID() == "" {
		return trace.BadParameter("IAM role ARN %q is missing the role name", a)
	}
	return nil
}

// RoleARN returns the canonical ARN of an IAM role in the given partition
// and account.
func RoleARN(partition, accountID, roleName string) (string, error) {
	a, err := arn.NewBuilder().
		Partition(partition).
		Service(iamServiceName).
		AccountID(accountID).
		Resource(roleResourceType + "/" + roleName).
		Build()
	if err != nil {
		return "", trace.Wrap(err)
	}
	return a.String(), nil
}

// Role describes an IAM role for AWS console access.
type Role struct {
	// Name is the full role name with the entire path.
	Name string `json:"name"`
	// Display is the role display name.
	Display string `json:"display"`
	// ARN is the full role ARN.
	ARN string `json:"arn"`
}

// Roles is a slice of roles.
type Roles []Role

// FilterRoles returns the role ARNs from the provided list that belong to
// the specified AWS account ID.
//
// If accountID is empty, roles from all accounts are returned.
func FilterRoles(arns []string, accountID string) (result Roles) {
	for _, roleARN := range arns {
		parsed, err := arn.Parse(roleARN)
		if err != nil {
			continue
		}
		if parsedAccountID, _ := parsed.AccountID(); accountID != "" && parsedAccountID != accountID {
			continue
		}

		// In AWS convention, the display of the role is the last
		// /-delineated substring.
		//
		// Example ARNs:
		// arn:aws:iam::1234567890:role/EC2FullAccess      (display: EC2FullAccess)
		// arn:aws:iam::1234567890:role/path/to/customrole (display: customrole)
		parts := strings.Split(parsed.ResourceString(), "/")
		numParts := len(parts)
		if numParts < 2 || parts[0] != roleResourceType {
			continue
		}
		result = append(result, Role{
			Name:    strings.Join(parts[1:], "/"),
			Display: parts[numParts-1],
			ARN:     roleARN,
		})
	}
	return result
}

// Sort sorts the roles by their display names.
func (roles Roles) Sort() {
	sort.SliceStable(roles, func(x, y int) bool {
		return strings.ToLower(roles[x].Display) < strings.ToLower(roles[y].Display)
	})
}

// FindRoleByARN finds the role with the provided ARN.
func (roles Roles) FindRoleByARN(roleARN string) (Role, bool) {
	for _, role := range roles {
		if role.ARN == roleARN {
			return role, true
		}
	}
	return Role{}, false
}

// FindRolesByName finds all roles matching the provided name.
func (roles Roles) FindRolesByName(name string) (result Roles) {
	for _, role := range roles {
		// Match either full name or the display name.
		if role.Display == name || role.Name == name {
			result = append(result, role)
		}
	}
	return
}

// MatchRoleARN returns true if the provided role ARN matches one of the
// selectors.
func MatchRoleARN(selectors []string, roleARN string) (bool, string) {
	for _, selector := range selectors {
		if selector == roleARN {
			return true, "matched"
		}
	}
	return false, fmt.Sprintf("no match, role selectors %v, role ARN: %v", selectors, roleARN)
}
