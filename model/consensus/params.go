// Package consensus holds the consensus parameters of every supported
// network. The rows are private and callers only ever receive copies.
//
// Every network.Network must have a row. row switches over the enumeration
// without a default case and the exhaustive linter (.golangci.yml) rejects a
// missing case at lint time; init and TestEveryNetworkHasParams reject it at
// start-up and test time.
package consensus

import (
	"fmt"

	"github.com/copernet/briskcoin/errcode"
	"github.com/copernet/briskcoin/model/network"
	"github.com/copernet/briskcoin/model/pow"
)

// Params holds the parameters that influence chain consensus. Values
// obtained from New, Lookup or Resolve are private copies; changing one never
// reaches the table. More fields may be added, so build Params with keyed
// literals only.
type Params struct {
	// Network for which the parameters are valid.
	Network network.Network
	// Time when BIP16 becomes active.
	BIP16Time uint32
	// Block height at which BIP34 becomes active
	BIP34Height uint32
	// Block height at which BIP65 becomes active
	BIP65Height uint32
	// Block height at which BIP66 becomes active
	BIP66Height uint32

	// Minimum blocks including miner confirmation of the total of
	// MinerConfirmationWindow blocks, which is also used for BIP9 deployments.
	// Examples: 1916 for 95%, 1512 for testchains.
	RuleChangeActivationThreshold uint32
	// Number of blocks with the same set of rules.
	MinerConfirmationWindow uint32

	// The loosest target a block can be mined at. Targets travel in compact
	// form, so only compact-expressible values are attainable and this is the
	// largest of them.
	MaxAttainableTarget pow.Target

	// Proof of work parameters, in seconds
	PowTargetSpacing  uint64
	PowTargetTimespan uint64

	AllowMinDifficultyBlocks bool
	NoPowRetargeting         bool
}

// Provider is implemented by anything that can hand out consensus parameters.
type Provider interface {
	ConsensusParams() *Params
}

// Source is the set of types Resolve accepts.
type Source interface {
	network.Network | Params | *Params
}

var mainNetParams = Params{
	Network:   network.Mainnet,
	BIP16Time: 1333238400, // Apr 1 2012
	// 000000000000024b89b42a942fe0d9fea3bb44ab7bd1b19115dd6a759c0808b8
	BIP34Height: 227931,
	// 000000000000000004c2b624ed5d7756c508d90fd0da2c7c679febfa6c4735f0
	BIP65Height: 388381,
	// 00000000000000000379eaa19dce8c9b722d46ae6a57c2f1a988119488b50931
	BIP66Height:                   363725,
	RuleChangeActivationThreshold: 95,  // 95% of 120 blocks
	MinerConfirmationWindow:       120, // 1 hour of 30 second blocks
	MaxAttainableTarget:           pow.MaxAttainableMainnet(),
	PowTargetSpacing:              30,      // 30 seconds
	PowTargetTimespan:             60 * 60, // 1 hour
	AllowMinDifficultyBlocks:      false,
	NoPowRetargeting:              false,
}

var testNetParams = Params{
	Network:   network.Testnet,
	BIP16Time: 1333238400, // Apr 1 2012
	// 0000000023b3a96d3484e5abb3755c413e7d41500f8e2a5c3f0dd01299cd8ef8
	BIP34Height: 21111,
	// 00000000007f6655f22f98e72ed80d8b06dc761d5da09df0fa1dc4be4f861eb6
	BIP65Height: 581885,
	// 000000002104c8c45e99a8853285a3b592602a3ccde2b832481da85e9e4ba182
	BIP66Height:                   330776,
	RuleChangeActivationThreshold: 1512, // 75%
	MinerConfirmationWindow:       2016,
	MaxAttainableTarget:           pow.MaxAttainableTestnet(),
	PowTargetSpacing:              10 * 60,           // 10 minutes
	PowTargetTimespan:             14 * 24 * 60 * 60, // 2 weeks
	AllowMinDifficultyBlocks:      true,
	NoPowRetargeting:              false,
}

var sigNetParams = Params{
	Network:                       network.Signet,
	BIP16Time:                     1333238400, // Apr 1 2012
	BIP34Height:                   1,
	BIP65Height:                   1,
	BIP66Height:                   1,
	RuleChangeActivationThreshold: 1916, // 95%
	MinerConfirmationWindow:       2016,
	MaxAttainableTarget:           pow.MaxAttainableSignet(),
	PowTargetSpacing:              10 * 60,
	PowTargetTimespan:             14 * 24 * 60 * 60,
	AllowMinDifficultyBlocks:      false,
	NoPowRetargeting:              false,
}

var regTestParams = Params{
	Network:                       network.Regtest,
	BIP16Time:                     1333238400, // Apr 1 2012
	BIP34Height:                   100000000,  // not activated on regtest
	BIP65Height:                   1351,
	BIP66Height:                   1251, // used only in rpc tests
	RuleChangeActivationThreshold: 108,  // 75%
	MinerConfirmationWindow:       144,
	MaxAttainableTarget:           pow.MaxAttainableRegtest(),
	PowTargetSpacing:              10 * 60,
	PowTargetTimespan:             14 * 24 * 60 * 60,
	AllowMinDifficultyBlocks:      true,
	NoPowRetargeting:              true,
}

// row returns the table entry for net, or nil for a value outside the
// enumeration.
func row(net network.Network) *Params {
	switch net {
	case network.Mainnet:
		return &mainNetParams
	case network.Testnet:
		return &testNetParams
	case network.Signet:
		return &sigNetParams
	case network.Regtest:
		return &regTestParams
	}
	return nil
}

func init() {
	for _, net := range network.All() {
		mustRegister(net, row(net))
	}
}

func mustRegister(net network.Network, p *Params) {
	if err := validate(net, p); err != nil {
		panic("failed to register consensus params :" + err.Error())
	}
}

func validate(net network.Network, p *Params) error {
	switch {
	case p == nil:
		return errcode.NewWithDesc(errcode.ErrorMissingParams, net.String())
	case p.Network != net:
		return errcode.NewWithDesc(errcode.ErrorParamsNetworkMismatch,
			fmt.Sprintf("%s registered as %s", p.Network, net))
	case p.PowTargetSpacing == 0 || p.PowTargetTimespan%p.PowTargetSpacing != 0:
		return errcode.NewWithDesc(errcode.ErrorInexactRetargetTimespan, net.String())
	case !p.MaxAttainableTarget.IsAttainable():
		return errcode.NewWithDesc(errcode.ErrorUnattainableTarget, net.String())
	}
	return nil
}

// New returns a copy of the parameters for net.
func New(net network.Network) Params {
	p := row(net)
	if p == nil {
		panic(errcode.NewWithDesc(errcode.ErrorMissingParams, net.String()))
	}
	return *p
}

// NewFromRef is New for callers holding a *network.Network.
func NewFromRef(net *network.Network) Params {
	return New(*net)
}

// Lookup returns the parameters for net behind a pointer. Every call gets its
// own copy, so writes through the result never reach the table.
func Lookup(net network.Network) *Params {
	p := New(net)
	return &p
}

// LookupRef is Lookup for callers holding a *network.Network.
func LookupRef(net *network.Network) *Params {
	return Lookup(*net)
}

// Resolve turns a network or an already resolved Params into *Params. A
// network resolves through Lookup and a *Params is returned as is.
func Resolve[S Source](s S) *Params {
	switch v := any(s).(type) {
	case network.Network:
		return Lookup(v)
	case Params:
		return &v
	case *Params:
		return v
	}
	panic("consensus: unhandled params source")
}

func (p *Params) ConsensusParams() *Params {
	return p
}

// PowLimit returns the proof of work limit.
//
// Deprecated: renamed to MaxAttainableTarget.
func (p *Params) PowLimit() pow.Target {
	return p.MaxAttainableTarget
}

// DifficultyAdjustmentInterval is the number of blocks between difficulty
// adjustments, rounded down.
func (p *Params) DifficultyAdjustmentInterval() uint64 {
	return p.PowTargetTimespan / p.PowTargetSpacing
}

func (p *Params) String() string {
	return fmt.Sprintf("network:%s bip16time:%d bip34:%d bip65:%d bip66:%d "+
		"threshold:%d/%d maxtarget:%s spacing:%ds timespan:%ds interval:%d "+
		"mindifficulty:%v noretargeting:%v",
		p.Network, p.BIP16Time, p.BIP34Height, p.BIP65Height, p.BIP66Height,
		p.RuleChangeActivationThreshold, p.MinerConfirmationWindow,
		p.MaxAttainableTarget.ToCompact().String(), p.PowTargetSpacing, p.PowTargetTimespan,
		p.DifficultyAdjustmentInterval(), p.AllowMinDifficultyBlocks, p.NoPowRetargeting)
}
