package errcode

import "fmt"

type ConfigErr int

const (
	ErrorConflictingNetworks ConfigErr = ConfigErrorBase + iota
	ErrorInvalidLogLevel
	ErrorNotExistsInConfigMap
)

var ConfigErrString = map[ConfigErr]string{
	ErrorConflictingNetworks: "Only one of --testnet, --regtest and --signet may be set",
	ErrorInvalidLogLevel:     "Invalid log level",
}

func (ce ConfigErr) String() string {
	if s, ok := ConfigErrString[ce]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", ce)
}
