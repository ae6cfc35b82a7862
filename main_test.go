package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/copernet/briskcoin/errcode"
	"github.com/copernet/briskcoin/model/consensus"
	"github.com/copernet/briskcoin/model/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBriskMain(t *testing.T) {
	dir, err := ioutil.TempDir("", "brisktest")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	confFile := filepath.Join(dir, "conf.yml")
	require.NoError(t, ioutil.WriteFile(confFile, []byte("network: signet\nlog:\n  level: debug\n"), 0664))

	params, err := briskMain([]string{"--datadir=" + dir, "-C", confFile})
	require.NoError(t, err)
	assert.Equal(t, consensus.New(network.Signet), *params)

	params, err = briskMain([]string{"--datadir=" + dir, "-C", confFile, "--regtest"})
	require.NoError(t, err)
	assert.Equal(t, network.Regtest, params.Network)

	_, err = os.Stat(filepath.Join(dir, "debug.log"))
	assert.NoError(t, err)
}

func TestBriskMainErrors(t *testing.T) {
	_, err := briskMain([]string{"--testnet", "--signet"})
	assert.True(t, errcode.IsErrorCode(err, errcode.ErrorConflictingNetworks))

	_, err = briskMain([]string{"--loglevel=loud"})
	assert.True(t, errcode.IsErrorCode(err, errcode.ErrorInvalidLogLevel))

	_, err = briskMain([]string{"-C", filepath.Join(os.TempDir(), "missing", "conf.yml")})
	assert.Error(t, err)
}

func TestRunFlushesLogOnError(t *testing.T) {
	dir, err := ioutil.TempDir("", "brisktest")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	code := run([]string{"--datadir=" + dir, "--loglevel=debug", "--testnet", "--signet"})
	assert.Equal(t, 1, code)

	content, err := ioutil.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "opts: datadir:"+dir)
}

func TestRunSuccess(t *testing.T) {
	dir, err := ioutil.TempDir("", "brisktest")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	assert.Equal(t, 0, run([]string{"--datadir=" + dir, "--regtest"}))
}
