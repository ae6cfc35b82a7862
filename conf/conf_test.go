package conf

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/copernet/briskcoin/errcode"
	"github.com/copernet/briskcoin/model/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var confData = []byte(`
network: regtest
log:
  level: error
  dir: /var/log/brisk
  modules:
    - consensus
    - conf
`)

func writeConfig(t *testing.T, data []byte) string {
	dir, err := ioutil.TempDir("", "conftest")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	filename := filepath.Join(dir, "conf.yml")
	require.NoError(t, ioutil.WriteFile(filename, data, 0664))
	return filename
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, confData))
	require.NoError(t, err)

	assert.Equal(t, "regtest", config.Network)
	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "/var/log/brisk", config.Log.Dir)
	assert.Equal(t, []string{"consensus", "conf"}, config.Log.Modules)
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "main", config.Network)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "", config.Log.Dir)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	os.Setenv("BRISKCOIN_NETWORK", "signet")
	os.Setenv("BRISKCOIN_LOG_LEVEL", "debug")
	defer os.Unsetenv("BRISKCOIN_NETWORK")
	defer os.Unsetenv("BRISKCOIN_LOG_LEVEL")

	config, err := LoadConfig(writeConfig(t, confData))
	require.NoError(t, err)
	assert.Equal(t, "signet", config.Network)
	assert.Equal(t, "debug", config.Log.Level)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(os.TempDir(), "no-such-dir", "conf.yml"))
	assert.Error(t, err)
}

func TestSampleConfig(t *testing.T) {
	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok)

	config, err := LoadConfig(filepath.Join(filepath.Dir(filename), "conf.yml"))
	require.NoError(t, err)
	net, err := ResolveNetwork(&Opts{}, config)
	require.NoError(t, err)
	assert.Equal(t, network.Mainnet, net)
}

func TestResolveNetwork(t *testing.T) {
	config := &Configuration{Network: "test"}

	tests := []struct {
		opts Opts
		want network.Network
	}{
		{Opts{}, network.Testnet},
		{Opts{Network: "signet"}, network.Signet},
		{Opts{RegTest: true}, network.Regtest},
		{Opts{SigNet: true, Network: "main"}, network.Signet},
		{Opts{TestNet: true}, network.Testnet},
	}

	for i, test := range tests {
		opts := test.opts
		net, err := ResolveNetwork(&opts, config)
		assert.NoError(t, err, "#%d", i)
		assert.Equal(t, test.want, net, "#%d", i)
	}
}

func TestResolveNetworkErrors(t *testing.T) {
	_, err := ResolveNetwork(&Opts{RegTest: true, TestNet: true}, &Configuration{})
	assert.True(t, errcode.IsErrorCode(err, errcode.ErrorConflictingNetworks))

	_, err = ResolveNetwork(&Opts{Network: "simnet"}, &Configuration{Network: "main"})
	assert.True(t, errcode.IsErrorCode(err, errcode.ErrorUnknownNetwork))

	_, err = ResolveNetwork(&Opts{}, &Configuration{Network: "nope"})
	assert.True(t, errcode.IsErrorCode(err, errcode.ErrorUnknownNetwork))
}

func TestLogSettings(t *testing.T) {
	config := &Configuration{}
	config.Log.Level = "info"

	assert.Equal(t, "info", LogLevel(&Opts{}, config))
	assert.Equal(t, "warn", LogLevel(&Opts{LogLevel: "warn"}, config))

	assert.Equal(t, "/data", LogDir(&Opts{DataDir: "/data"}, config))
	config.Log.Dir = "/logs"
	assert.Equal(t, "/logs", LogDir(&Opts{DataDir: "/data"}, config))
}
