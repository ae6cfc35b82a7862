package errcode

import "fmt"

type ConsensusErr int

const (
	ErrorMissingParams ConsensusErr = ConsensusErrorBase + iota
	ErrorParamsNetworkMismatch
	ErrorInexactRetargetTimespan
	ErrorUnattainableTarget
	ErrorNotExistsInConsensusMap
)

var ConsensusErrString = map[ConsensusErr]string{
	ErrorMissingParams:           "No consensus params for network",
	ErrorParamsNetworkMismatch:   "Consensus params registered under another network",
	ErrorInexactRetargetTimespan: "Target timespan is not a multiple of target spacing",
	ErrorUnattainableTarget:      "Max attainable target is not expressible in compact form",
}

func (ce ConsensusErr) String() string {
	if s, ok := ConsensusErrString[ce]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", ce)
}
