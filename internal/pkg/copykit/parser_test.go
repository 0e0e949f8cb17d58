//go:build unit
// +build unit

package copykit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head>
<title>CopyKit - High-Converting Copy Templates</title>
<meta name="description" content="Battle-tested copy templates for founders.">
<script>
window.__manus__global_env = {"CHECKOUT_URL": "https://buy.stripe.com/test_123", "PRICE": "47"};
</script>
</head>
<body><h1>CopyKit</h1></body>
</html>`

	data, err := Parse(html)
	require.NoError(t, err)

	assert.Equal(t, "CopyKit - High-Converting Copy Templates", data.Title)
	assert.Equal(t, "Battle-tested copy templates for founders.", data.MetaDescription)
	assert.Equal(t, len(html), data.ContentLength)
	assert.Equal(t, "https://buy.stripe.com/test_123", data.GlobalEnv["CHECKOUT_URL"])
	assert.Equal(t, "47", data.GlobalEnv["PRICE"])
}

func TestParseWithoutGlobalEnv(t *testing.T) {
	html := `<html><head><title>Plain page</title></head><body></body></html>`

	data, err := Parse(html)
	require.NoError(t, err)

	assert.Equal(t, "Plain page", data.Title)
	assert.Empty(t, data.MetaDescription)
	assert.Empty(t, data.GlobalEnv)
}

func TestParseSkipsMalformedEnv(t *testing.T) {
	html := `<html><head>
<script>window.__manus__global_env = {not valid json};</script>
<script>window.__manus__global_env = {"PLAN": "starter"};</script>
</head><body></body></html>`

	data, err := Parse(html)
	require.NoError(t, err)

	assert.Equal(t, "starter", data.GlobalEnv["PLAN"])
}
