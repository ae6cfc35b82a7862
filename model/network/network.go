package network

import (
	"fmt"
	"strings"

	"github.com/copernet/briskcoin/errcode"
)

// Network identifies which chain a node is running on.
type Network uint8

const (
	Mainnet Network = iota
	Testnet
	Signet
	Regtest

	// networkCount must stay last. Tables indexed by Network are sized by it.
	networkCount
)

// Count is the number of supported networks.
const Count = int(networkCount)

var netNames = [networkCount]string{
	Mainnet: "main",
	Testnet: "test",
	Signet:  "signet",
	Regtest: "regtest",
}

// netMagics are the message start bytes, read as a little-endian uint32.
var netMagics = [networkCount]uint32{
	Mainnet: 0xd9b4bef9,
	Testnet: 0x0709110b,
	Signet:  0x40cf030a,
	Regtest: 0xdab5bffa,
}

var netAliases = map[string]Network{
	"main":     Mainnet,
	"mainnet":  Mainnet,
	"bitcoin":  Mainnet,
	"test":     Testnet,
	"testnet":  Testnet,
	"testnet3": Testnet,
	"signet":   Signet,
	"regtest":  Regtest,
}

func (n Network) IsValid() bool {
	return n < networkCount
}

func (n Network) String() string {
	if !n.IsValid() {
		return fmt.Sprintf("Unknown Network %d", uint8(n))
	}
	return netNames[n]
}

// Magic returns the wire magic of the network. It panics on an invalid value.
func (n Network) Magic() uint32 {
	if !n.IsValid() {
		panic(errcode.New(errcode.ErrorUnknownNetwork))
	}
	return netMagics[n]
}

// All returns every supported network in declaration order.
func All() []Network {
	nets := make([]Network, 0, networkCount)
	for n := Mainnet; n < networkCount; n++ {
		nets = append(nets, n)
	}
	return nets
}

// Parse maps a network name such as "main", "testnet" or "regtest" to its
// Network. Matching ignores case and surrounding spaces.
func Parse(name string) (Network, error) {
	n, ok := netAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errcode.NewWithDesc(errcode.ErrorUnknownNetwork, name)
	}
	return n, nil
}

func FromMagic(magic uint32) (Network, error) {
	for n, m := range netMagics {
		if m == magic {
			return Network(n), nil
		}
	}
	return 0, errcode.NewWithDesc(errcode.ErrorUnknownNetworkMagic, fmt.Sprintf("0x%08x", magic))
}
