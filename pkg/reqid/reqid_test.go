package reqid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/buildmart/buildmart/pkg/reqid"
)

func TestNewProducesValidIDs(t *testing.T) {
	id := reqid.New()
	require.NotEmpty(t, id)
	require.True(t, reqid.Valid(id))
}

func TestIDsAreMonotonicWithinProcess(t *testing.T) {
	a := reqid.New()
	b := reqid.New()
	require.Less(t, a, b)
}

func TestValidRejectsMalformedIDs(t *testing.T) {
	require.False(t, reqid.Valid(""))
	require.False(t, reqid.Valid("not-a-ulid"))
}
