package storesdk

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	t.Run("detail shape", func(t *testing.T) {
		err := parseAPIError(401, []byte(`{"detail":"token not valid"}`))
		require.Equal(t, 401, err.StatusCode)
		require.Equal(t, "token not valid", err.Detail)
		require.True(t, err.IsAuthorization())
		require.Equal(t, "HTTP 401: token not valid", err.Error())
	})

	t.Run("normalized envelope shape", func(t *testing.T) {
		body := `{"ok":false,"errors":["qty: must be >= 1","material: required"],"status_code":400}`
		err := parseAPIError(400, []byte(body))
		require.Equal(t, "qty: must be >= 1; material: required", err.Detail)
	})

	t.Run("envelope with single error", func(t *testing.T) {
		err := parseAPIError(404, []byte(`{"ok":false,"error":"Not found"}`))
		require.Equal(t, "Not found", err.Detail)
	})

	t.Run("field validation shape", func(t *testing.T) {
		body := `{"username":["This field is required."],"password":["Too short.","Too common."]}`
		err := parseAPIError(400, []byte(body))
		require.True(t, err.IsValidation())
		require.Equal(t, []string{"This field is required."}, err.Fields["username"])
		require.Len(t, err.Fields["password"], 2)
		require.Contains(t, err.Error(), "password: Too short.; Too common.")
	})

	t.Run("unparseable body falls back to status text", func(t *testing.T) {
		err := parseAPIError(http.StatusBadGateway, []byte("<html>nginx</html>"))
		require.Equal(t, "Bad Gateway", err.Detail)
		require.True(t, err.IsServer())
	})

	t.Run("empty body", func(t *testing.T) {
		err := parseAPIError(http.StatusForbidden, nil)
		require.Equal(t, "Forbidden", err.Detail)
		require.True(t, err.IsForbidden())
	})
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	require.False(t, IsAuthorizationError(nil))
	require.False(t, IsNetworkError(nil))

	apiErr := &APIError{StatusCode: 401, Detail: "nope"}
	require.True(t, IsAuthorizationError(apiErr))
	require.False(t, IsNetworkError(apiErr))
}
