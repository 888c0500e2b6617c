package storesdk

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestDecodeAccessClaims(t *testing.T) {
	t.Parallel()

	now := time.Now().Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"token_type": "access",
		"user_id":    float64(42),
		"jti":        "abc123",
		"iat":        now.Unix(),
		"exp":        now.Add(5 * time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	claims, err := DecodeAccessClaims(signed)
	require.NoError(t, err)
	require.EqualValues(t, 42, claims.UserID)
	require.Equal(t, "access", claims.TokenType)
	require.Equal(t, "abc123", claims.JTI)
	require.True(t, claims.IssuedAt.Equal(now))
	require.True(t, claims.ExpiresAt.Equal(now.Add(5*time.Minute)))
}

func TestDecodeAccessClaimsRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := DecodeAccessClaims("not-a-jwt")
	require.Error(t, err)
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "ADMIN", want: RoleAdmin},
		{in: "admin", want: RoleAdmin},
		{in: " Wholesaler ", want: RoleWholesaler},
		{in: "customer", want: RoleCustomer},
		{in: "supplier", want: RoleSupplier},
		{in: "retailer", want: RoleRetailer},
		{in: "root", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		require.Equal(t, tt.want, got)
	}
}

func TestRoleIs(t *testing.T) {
	t.Parallel()

	require.True(t, RoleAdmin.Is(Role("admin")))
	require.True(t, Role("Admin").Is(RoleAdmin))
	require.False(t, RoleAdmin.Is(RoleSupplier))
}
