/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	grpc2 "github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/grpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Endpoint       grpc2.Endpoint
	KeepAlive      *grpc2.ClientKeepAliveConfig
	MaxRecvMsgSize int
	AccessToken    string
	Parties        []string
}

func TestReadFile(t *testing.T) {
	p, err := NewProvider("./testdata")
	require.NoError(t, err)

	assert.Equal(t, "info", p.GetString("logging.spec"))
	assert.Equal(t, "localhost:6865", p.GetString(Join("ledger", "endpoint", "address")))
	assert.Equal(t, 5*time.Second, p.GetDuration("ledger.endpoint.connectionTimeout"))
	assert.True(t, p.IsSet("ledger.metrics.enabled"))

	path, _ := filepath.Abs("testdata/certs/ca.pem")
	assert.Equal(t, path, p.GetPath("ledger.endpoint.tlsRootCertFile"))
	assert.Equal(t, "/abs/ca.pem", p.TranslatePath("/abs/ca.pem"))

	var c testConfig
	require.NoError(t, p.UnmarshalKey("ledger", &c))
	assert.Equal(t, "localhost:6865", c.Endpoint.Address)
	assert.Equal(t, 5*time.Second, c.Endpoint.ConnectionTimeout)
	require.NotNil(t, c.KeepAlive)
	assert.Equal(t, time.Minute, c.KeepAlive.Time)
	assert.Equal(t, 4*1024*1024, c.MaxRecvMsgSize)
	assert.Equal(t, "eyJhbGciOi.token", c.AccessToken)
	assert.Equal(t, []string{"Alice", "Bob"}, c.Parties)
}

func TestEnvSubstitution(t *testing.T) {
	t.Setenv("LEDGER_LEDGER_ENDPOINT_ADDRESS", "ledger.example.com:443")
	t.Setenv("LEDGER_LEDGER_ENDPOINT_TLSENABLED", "true")
	t.Setenv("LEDGER_LOGGING_SPEC", "debug")
	t.Setenv("LEDGER_LEDGER_KEEPALIVE", "cannot replace a map")
	t.Setenv("LEDGER_NON_EXISTENT_KEY", "new")
	t.Setenv("LEDGER_LEDGER_PARTIES", "")

	p, err := NewProvider("./testdata")
	require.NoError(t, err)

	assert.Equal(t, "debug", p.GetString("logging.spec"))
	assert.Equal(t, "new", p.GetString("non.existent.key"))

	var c testConfig
	require.NoError(t, p.UnmarshalKey("ledger", &c))
	assert.Equal(t, "ledger.example.com:443", c.Endpoint.Address)
	assert.True(t, c.Endpoint.TLSEnabled)
	assert.Equal(t, time.Minute, c.KeepAlive.Time)
	assert.Equal(t, []string{"Alice", "Bob"}, c.Parties)
}

func TestMergeConfig(t *testing.T) {
	p, err := NewProvider("./testdata")
	require.NoError(t, err)

	require.NoError(t, p.MergeConfig([]byte("ledger:\n  endpoint:\n    address: other:6865\n")))
	assert.Equal(t, "other:6865", p.GetString("ledger.endpoint.address"))
	assert.Equal(t, 5*time.Second, p.GetDuration("ledger.endpoint.connectionTimeout"))
}

func TestMissingConfig(t *testing.T) {
	t.Setenv(PathEnv, t.TempDir())
	_, err := NewProvider("")
	assert.ErrorContains(t, err, "ledger.yaml")

	t.Setenv(PathEnv, "/does/not/exist")
	_, err = NewProvider("")
	assert.ErrorContains(t, err, "does not exist")
}

func TestMalformedLoggingSpec(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ledger.yaml"), []byte("logging:\n  spec: dlg.ledger=debug=info\n"), 0o600))

	_, err := NewProvider(dir)
	assert.ErrorContains(t, err, "invalid logging configuration")

	// the valid configuration is applied again for the other tests
	_, err = NewProvider("./testdata")
	require.NoError(t, err)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "ledger.endpoint.address", Join("ledger", ".endpoint.", " address "))
	assert.Equal(t, "ledger", Join("", "ledger", ""))
}
