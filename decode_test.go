// FILE: lixenwraith/apacheconf/decode_test.go
package apacheconf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const decodeConfig = `ServerName www.example.com
Listen 80
listen 8080
KeepAlive Off
Timeout 300
KeepAliveTimeout 1m30s
ServerSignature
# dropped
<VirtualHost *:80>
    ServerName a.example.com
    ServerAlias a1.example.com a2.example.com
</VirtualHost>
<VirtualHost *:443>
    ServerName b.example.com
</VirtualHost>`

type decodedHost struct {
	Address     []string `apache:"_args"`
	ServerName  string   `apache:"ServerName"`
	ServerAlias []string `apache:"ServerAlias"`
}

type decodedConfig struct {
	ServerName       string
	Listen           []int
	KeepAlive        bool
	Timeout          time.Duration
	KeepAliveTimeout time.Duration
	ServerSignature  bool
	VirtualHost      []decodedHost
}

// TestNodeMap tests conversion of a subtree into nested maps
func TestNodeMap(t *testing.T) {
	tree := MustParse(decodeConfig)
	m := tree.Root().Map()

	assert.Equal(t, "www.example.com", m["ServerName"])
	assert.Equal(t, []any{"80", "8080"}, m["Listen"], "repeated names collect under the first spelling")
	assert.NotContains(t, m, "listen")
	assert.Equal(t, true, m["ServerSignature"])
	assert.NotContains(t, m, "dropped")

	hosts, ok := m["VirtualHost"].([]any)
	require.True(t, ok)
	require.Len(t, hosts, 2)

	first, ok := hosts[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{"*:80"}, first[ArgumentsKey])
	assert.Equal(t, []string{"a1.example.com", "a2.example.com"}, first["ServerAlias"])

	t.Run("SectionWithoutArguments", func(t *testing.T) {
		m := MustParse("<IfModule>\nFoo\n</IfModule>").Select("IfModule")[0].Map()
		assert.NotContains(t, m, ArgumentsKey)
		assert.Equal(t, true, m["Foo"])
	})
}

// TestDecode tests struct decoding with Apache value conventions
func TestDecode(t *testing.T) {
	tree := MustParse(decodeConfig)

	var cfg decodedConfig
	require.NoError(t, tree.Decode(&cfg))

	assert.Equal(t, "www.example.com", cfg.ServerName)
	assert.Equal(t, []int{80, 8080}, cfg.Listen)
	assert.False(t, cfg.KeepAlive)
	assert.Equal(t, 300*time.Second, cfg.Timeout)
	assert.Equal(t, 90*time.Second, cfg.KeepAliveTimeout)
	assert.True(t, cfg.ServerSignature)

	require.Len(t, cfg.VirtualHost, 2)
	assert.Equal(t, decodedHost{
		Address:     []string{"*:80"},
		ServerName:  "a.example.com",
		ServerAlias: []string{"a1.example.com", "a2.example.com"},
	}, cfg.VirtualHost[0])
	assert.Equal(t, []string{"*:443"}, cfg.VirtualHost[1].Address)
	assert.Nil(t, cfg.VirtualHost[1].ServerAlias)

	t.Run("Subtree", func(t *testing.T) {
		var host decodedHost
		vhost := tree.Select("VirtualHost", "*:443")[0]
		require.NoError(t, vhost.Decode(&host))
		assert.Equal(t, "b.example.com", host.ServerName)
	})

	t.Run("IntoMap", func(t *testing.T) {
		var m map[string]any
		require.NoError(t, tree.Decode(&m))
		assert.Equal(t, "www.example.com", m["ServerName"])
	})
}

// TestDecodeInvalidTargets tests target and node validation
func TestDecodeInvalidTargets(t *testing.T) {
	tree := MustParse(decodeConfig)

	var cfg decodedConfig
	assert.Error(t, tree.Decode(cfg), "non-pointer")
	assert.Error(t, tree.Decode((*decodedConfig)(nil)), "nil pointer")

	stmt := tree.Select("Timeout")[0]
	assert.ErrorIs(t, stmt.Decode(&cfg), ErrNotContainer)

	t.Run("ConversionFailure", func(t *testing.T) {
		var bad struct {
			KeepAlive int
		}
		err := MustParse("KeepAlive sometimes").Decode(&bad)
		assert.Error(t, err)
	})
}
