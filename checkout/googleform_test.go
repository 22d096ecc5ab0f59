package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		FormURL: "https://docs.google.com/forms/d/e/TESTFORM/viewform",
		Fields: FormFields{
			JerseyName:    "entry.1234567890",
			JerseyPrice:   "entry.0987654321",
			CustomerName:  "entry.1122334455",
			CustomerEmail: "entry.2233445566",
			CustomerPhone: "entry.3344556677",
			Size:          "entry.4455667788",
		},
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹2,499", FormatPrice(249900))
	assert.Equal(t, "₹1,799", FormatPrice(179900))
	assert.Equal(t, "₹2,899", FormatPrice(289900))
	assert.Equal(t, "₹999", FormatPrice(99900))
	assert.Equal(t, "₹0", FormatPrice(0))
}

func TestBuildFormURL(t *testing.T) {
	link := BuildFormURL(testConfig(), FormData{
		JerseyName:  "Barcelona Home 2024",
		JerseyPrice: FormatPrice(249900),
	})

	assert.True(t, strings.HasPrefix(link, "https://docs.google.com/forms/d/e/TESTFORM/viewform?"))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	params := parsed.Query()

	assert.Equal(t, "Barcelona Home 2024", params.Get("entry.1234567890"))
	assert.Equal(t, "₹2,499", params.Get("entry.0987654321"))
}

func TestBuildFormURLOmitsEmptyCustomerFields(t *testing.T) {
	link := BuildFormURL(testConfig(), FormData{
		JerseyName:  "Liverpool Home 2024",
		JerseyPrice: FormatPrice(239900),
	})

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	params := parsed.Query()

	assert.False(t, params.Has("entry.1122334455"))
	assert.False(t, params.Has("entry.2233445566"))
	assert.False(t, params.Has("entry.3344556677"))
	assert.False(t, params.Has("entry.4455667788"))
}

func TestBuildFormURLIncludesCustomerFields(t *testing.T) {
	link := BuildFormURL(testConfig(), FormData{
		JerseyName:    "PSG Home 2024",
		JerseyPrice:   FormatPrice(289900),
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "+91 98765 43210",
		Size:          "M",
	})

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	params := parsed.Query()

	assert.Equal(t, "Asha Rao", params.Get("entry.1122334455"))
	assert.Equal(t, "asha@example.com", params.Get("entry.2233445566"))
	assert.Equal(t, "+91 98765 43210", params.Get("entry.3344556677"))
	assert.Equal(t, "M", params.Get("entry.4455667788"))
}
