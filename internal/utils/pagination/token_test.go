package pagination_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyaparbooks/billing_app/internal/utils/pagination"
)

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	docDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 1, 5, 12, 34, 56, 789000000, time.UTC)

	token := pagination.EncodeToken(docDate, createdAt)
	gotDate, gotCreated, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, docDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	// Valid base64 but no "|" separated pair inside.
	_, _, err := pagination.DecodeToken("MjAyNC0wMS0wNQ==")
	assert.Error(t, err)
}
