package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"streamhub/internal/domain"
)

type sampleRequest struct {
	Username  string `validate:"required,min=3,max=100"`
	Email     string `validate:"required,email"`
	YoutubeID string `validate:"required,len=11"`
	Category  string `validate:"required,oneof=sport entertainment kids knowledge gaming"`
}

func TestStructValid(t *testing.T) {
	v := New()

	err := v.Struct(sampleRequest{
		Username:  "ayse",
		Email:     "ayse@example.com",
		YoutubeID: "dQw4w9WgXcQ",
		Category:  "gaming",
	})
	require.NoError(t, err)
}

func TestStructReturnsValidationKind(t *testing.T) {
	v := New()

	err := v.Struct(sampleRequest{})
	require.Error(t, err)
	require.True(t, domain.IsKind(err, domain.KindValidation))

	domainErr, ok := domain.AsError(err)
	require.True(t, ok)
	require.Contains(t, domainErr.Message, "Username is required")
	require.Contains(t, domainErr.Message, "Email is required")
}

func TestStructFieldMessages(t *testing.T) {
	v := New()

	err := v.Struct(sampleRequest{
		Username:  "ab",
		Email:     "not-an-email",
		YoutubeID: "too-short",
		Category:  "music",
	})
	require.Error(t, err)

	domainErr, ok := domain.AsError(err)
	require.True(t, ok)
	require.Contains(t, domainErr.Message, "Username must be at least 3 characters long")
	require.Contains(t, domainErr.Message, "Email must be a valid email address")
	require.Contains(t, domainErr.Message, "YoutubeID must be exactly 11 characters long")
	require.Contains(t, domainErr.Message, "Category must be one of: sport entertainment kids knowledge gaming")
}
