package utils_test

import (
	"strings"
	"testing"

	"github.com/profileiq/profileiq-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-admin-pw")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-admin-pw", hash)

	assert.True(t, utils.CheckPasswordHash("s3cret-admin-pw", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-password", hash))
}

func TestGenerateAPIKey(t *testing.T) {
	key, err := utils.GenerateAPIKey()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "profileiq_"))
	assert.Len(t, strings.TrimPrefix(key, "profileiq_"), 18)

	other, err := utils.GenerateAPIKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestGenerateSecureRandomStringRejectsNonPositiveLength(t *testing.T) {
	_, err := utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Acme Talent", want: "acme-talent"},
		{name: "punctuation collapsed", in: "Acme & Co.  (Brasil)", want: "acme-co-brasil"},
		{name: "trimmed", in: "  spaced out  ", want: "spaced-out"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.Slugify(tt.in))
		})
	}
}
