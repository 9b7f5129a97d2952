package websummary_test

import (
	"testing"

	"github.com/DS123-ally/websummary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL_Valid(t *testing.T) {
	t.Parallel()

	valid := []string{
		"https://example.com",
		"http://example.com",
		"https://example.com/path/to/page?q=1#section",
		"  https://example.com  ",
		"https://sub.example.co.uk/article",
		"http://localhost:8080/page",
	}

	for _, raw := range valid {
		require.NoError(t, websummary.ValidateURL(raw), "expected %q to be valid", raw)
	}
}

func TestValidateURL_Invalid(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"",
		"   ",
		"not a url",
		"example.com",            // no scheme
		"ftp://example.com/file", // unsupported scheme
		"https://",               // no host
		"//example.com",          // no scheme
		"http://",
	}

	for _, raw := range invalid {
		err := websummary.ValidateURL(raw)
		require.Error(t, err, "expected %q to be rejected", raw)
		assert.Equal(t, websummary.EINVALID, websummary.ErrorCode(err))
	}
}
