//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaultOwnerID ensures the owner id joins a non-empty username and hostname.
func TestDefaultOwnerID(t *testing.T) {
	t.Parallel()

	owner, err := DefaultOwnerID()
	require.NoError(t, err)

	username, hostname, found := strings.Cut(owner, "@")
	require.True(t, found)
	require.NotEmpty(t, username)
	require.NotEmpty(t, hostname)
}
