package oauth

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState_BindsUserAgent(t *testing.T) {
	c := NewGoogleClient("client-id", "client-secret", "http://localhost/callback")

	state := c.NewState("Mozilla/5.0")
	require.NotEmpty(t, state)

	decoded, err := base64.URLEncoding.DecodeString(state)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(decoded), ".Mozilla/5.0"))
}

func TestNewState_Uniqueness(t *testing.T) {
	c := NewGoogleClient("client-id", "client-secret", "http://localhost/callback")

	first := c.NewState("agent")
	second := c.NewState("agent")
	assert.NotEqual(t, first, second)
}

func TestAuthCodeURL_CarriesStateAndScopes(t *testing.T) {
	c := NewGoogleClient("client-id", "client-secret", "http://localhost/callback")

	raw := c.AuthCodeURL("state-value")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "state-value", q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Contains(t, q.Get("scope"), "userinfo.email")
	assert.Contains(t, q.Get("scope"), "userinfo.profile")
}
