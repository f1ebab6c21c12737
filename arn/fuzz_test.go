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
	"testing"

	"github.com/stretchr/testify/require"
)

func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("arn:")
	f.Add("arn:aws:s3:us-east-1:12345678910:myresource")
	f.Add("arn:aws:foobar:::myresource")
	f.Add("arn:aws:s3:us-east-1:12345678910:bucket/foobar")
	f.Add("arn:aws:s3:us-east-1:12345678910:myresource:foobar:1")
	f.Add("arn::::::::")
	f.Add("arn:a:b:c:d:e/f:g")

	f.Fuzz(func(t *testing.T, input string) {
		a, err := Parse(input)
		if err != nil {
			return
		}

		// Every accepted input round-trips exactly and survives a trip
		// through the builder unchanged.
		require.Equal(t, input, a.String())

		again, err := Parse(a.String())
		require.NoError(t, err)
		require.Equal(t, a, again)

		rebuilt, err := a.ToBuilder().Build()
		require.NoError(t, err)
		require.Equal(t, a, rebuilt)
	})
}
