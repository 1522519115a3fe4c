package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromLocation(t *testing.T) {
	cases := map[string]int{
		"http://localhost:8080/products/7":   7,
		"https://api.example.org/records/42": 42,
		"/products/113/":                     113,
	}
	for location, want := range cases {
		t.Run(location, func(t *testing.T) {
			id, err := IDFromLocation(location)
			require.NoError(t, err)
			assert.Equal(t, want, id)
		})
	}

	for _, bad := range []string{"", "http://localhost/products", "http://localhost/products/abc"} {
		_, err := IDFromLocation(bad)
		assert.Error(t, err, bad)
	}
}

func TestResolveKeepsBasePath(t *testing.T) {
	b, err := newBase("http://localhost:8080/api/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/products/3", b.resolve(itemPath(productsPath, 3), nil))
}
