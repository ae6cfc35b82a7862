package main

import (
	"fmt"
	"os"

	"github.com/copernet/briskcoin/conf"
	"github.com/copernet/briskcoin/log"
	"github.com/copernet/briskcoin/model/consensus"
	"github.com/pkg/errors"
)

// briskMain loads options and configuration, sets up logging and returns the
// consensus parameters of the selected network.
func briskMain(args []string) (*consensus.Params, error) {
	opts, err := conf.InitArgs(args)
	if err != nil {
		return nil, err
	}

	config, err := conf.LoadConfig(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	if err := log.InitLogger(conf.LogDir(opts, config), conf.LogLevel(opts, config)); err != nil {
		return nil, errors.Wrap(err, "init logger")
	}
	log.SetModules(config.Log.Modules)
	log.Debug("opts: %s", opts)

	net, err := conf.ResolveNetwork(opts, config)
	if err != nil {
		return nil, err
	}

	params := consensus.Lookup(net)
	log.Info("active network %s, magic 0x%08x, retarget every %d blocks",
		net, net.Magic(), params.DifficultyAdjustmentInterval())
	log.Print("consensus", "debug", "params: %v", log.InitLogClosure(params.String))
	return params, nil
}

// run returns the process exit code. Logs are flushed on every path.
func run(args []string) int {
	_, err := briskMain(args)
	log.GetLogger().Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
