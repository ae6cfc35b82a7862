package conf

import (
	"github.com/copernet/briskcoin/errcode"
	"github.com/copernet/briskcoin/model/network"
	"github.com/pkg/errors"
)

// ResolveNetwork picks the active network. A network switch on the command
// line wins over --network, which wins over the configuration file.
func ResolveNetwork(opts *Opts, config *Configuration) (network.Network, error) {
	selected := make([]network.Network, 0, 1)
	if opts.TestNet {
		selected = append(selected, network.Testnet)
	}
	if opts.RegTest {
		selected = append(selected, network.Regtest)
	}
	if opts.SigNet {
		selected = append(selected, network.Signet)
	}

	switch {
	case len(selected) > 1:
		return 0, errcode.New(errcode.ErrorConflictingNetworks)
	case len(selected) == 1:
		return selected[0], nil
	case opts.Network != "":
		net, err := network.Parse(opts.Network)
		return net, errors.Wrap(err, "parse --network")
	}

	net, err := network.Parse(config.Network)
	return net, errors.Wrap(err, "parse configured network")
}

// LogLevel returns the level from the command line, falling back to the file.
func LogLevel(opts *Opts, config *Configuration) string {
	if opts.LogLevel != "" {
		return opts.LogLevel
	}
	return config.Log.Level
}

// LogDir returns the configured log directory, falling back to the data dir.
func LogDir(opts *Opts, config *Configuration) string {
	if config.Log.Dir != "" {
		return config.Log.Dir
	}
	return opts.DataDir
}
