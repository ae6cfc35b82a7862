package errcode

import "fmt"

type NetworkErr int

const (
	ErrorUnknownNetwork NetworkErr = NetworkErrorBase + iota
	ErrorUnknownNetworkMagic
	ErrorNotExistsInNetworkMap
)

var NetworkErrString = map[NetworkErr]string{
	ErrorUnknownNetwork:      "Unknown network",
	ErrorUnknownNetworkMagic: "Unknown network magic",
}

func (ne NetworkErr) String() string {
	if s, ok := NetworkErrString[ne]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", ne)
}
