package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKList(t *testing.T) {
	t.Run("nil list is encoded as empty array", func(t *testing.T) {
		resp := OKList[Project](nil)

		b, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"data":[],"count":0}`, string(b))
	})

	t.Run("count follows length", func(t *testing.T) {
		resp := OKList([]string{"all", "web"})
		require.NotNil(t, resp.Count)
		assert.Equal(t, 2, *resp.Count)
	})
}

func TestFail(t *testing.T) {
	b, err := json.Marshal(Fail("Validation failed", map[string]string{"email": "Invalid email format"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Validation failed","errors":{"email":"Invalid email format"}}`, string(b))
}

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "", "abc123")

	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, NotAvailable, info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}
