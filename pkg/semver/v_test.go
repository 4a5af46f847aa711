package semver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestV_String(test *testing.T) {
	cases := map[string]V{
		"0.0.0":           {},
		"1.2.0":           {Major: 1, Minor: 2},
		"0.0.0-alfa":      {PreRelease: "alfa"},
		"0.0.0+tag1.tag2": {BuildMetadata: []string{"tag1", "tag2"}},
		"1.2.3-beta+x64":  {Major: 1, Minor: 2, Patch: 3, PreRelease: "beta", BuildMetadata: []string{"x64"}},
	}
	for expected, v := range cases {
		assert.Equal(test, expected, v.String())
	}
}

func TestParse(test *testing.T) {
	cases := map[string]V{
		"0.0.0":                {},
		"v1.2.3":               {Major: 1, Minor: 2, Patch: 3},
		"1.2.3-beta":           {Major: 1, Minor: 2, Patch: 3, PreRelease: "beta"},
		"1.2.3-beta+x64.linux": {Major: 1, Minor: 2, Patch: 3, PreRelease: "beta", BuildMetadata: []string{"x64", "linux"}},
	}
	for s, expected := range cases {
		test.Run(s, func(test *testing.T) {
			actual, err := Parse(s)
			require.NoError(test, err)
			assert.Equal(test, expected, actual)
			assert.Equal(test, strings.TrimPrefix(s, "v"), actual.String())
		})
	}
}

func TestParse_Invalid(test *testing.T) {
	for _, s := range []string{"", "1.2", "1.2.x", "1.2.3-", "1.2.3+", "-1.2.3"} {
		_, err := Parse(s)
		assert.Error(test, err, s)
	}
}
