package conf

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

type Opts struct {
	DataDir    string `long:"datadir" description:"specified program data dir"`
	ConfigFile string `short:"C" long:"conf" description:"path to the yaml configuration file"`
	Network    string `long:"network" description:"network to use: main, test, signet or regtest"`
	RegTest    bool   `long:"regtest" description:"initiate regtest"`
	TestNet    bool   `long:"testnet" description:"initiate testnet"`
	SigNet     bool   `long:"signet" description:"initiate signet"`
	LogLevel   string `long:"loglevel" description:"log level: emergency, alert, critical, error, warn, notice, info or debug"`
}

// InitArgs parses command line arguments. Unknown flags are tolerated on
// regtest so test harnesses can pass through their own options.
func InitArgs(args []string) (*Opts, error) {
	opts := new(Opts)
	_, err := flags.ParseArgs(opts, args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			if flagsErr.Type == flags.ErrUnknownFlag && opts.RegTest {
				return opts, nil
			}
		}
		return nil, err
	}

	return opts, nil
}

func (opts *Opts) String() string {
	return fmt.Sprintf("datadir:%s regtest:%v testnet:%v signet:%v",
		opts.DataDir, opts.RegTest, opts.TestNet, opts.SigNet)
}
