// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package genesis

import (
	"math/big"
	"sort"
	"time"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/config"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
	"github.com/iotexproject/iotex-worldsale/test/identityset"
)

// Default contains the default genesis config
var Default = defaultConfig()

// TestDefault returns the default genesis with every test identity funded
func TestDefault() Genesis {
	g := defaultConfig()
	for i := 0; i < identityset.Size(); i++ {
		g.InitBalanceMap[identityset.Address(i).String()] = "100000000"
	}
	g.SecondsPerEra = 5
	g.IterLimit = 10
	return g
}

func defaultConfig() Genesis {
	return Genesis{
		Blockchain: Blockchain{
			Timestamp:     1546329600,
			BlockInterval: 10 * time.Second,
		},
		Account: Account{
			InitBalanceMap:        make(map[string]string),
			ExistentialDepositStr: "1",
		},
		NftSale: NftSale{
			SecondsPerEra:                  86400,
			IterLimit:                      1000,
			MinBalanceToClaimSpiritStr:     "10",
			LegendaryOriginOfShellPriceStr: "1000000",
			MagicOriginOfShellPriceStr:     "100000",
			PrimeOriginOfShellPriceStr:     "1000",
			StatusMap:                      make(map[string]bool),
		},
	}
}

type (
	// Genesis is the root level of genesis config. Genesis config is the network-wide blockchain config. All the nodes
	// participating into the same network should use EXACTLY SAME genesis config.
	Genesis struct {
		Blockchain `yaml:"blockchain"`
		Account    `yaml:"account"`
		NftSale    `yaml:"nftSale"`
	}
	// Blockchain contains blockchain level configs
	Blockchain struct {
		// Timestamp is the timestamp of the genesis block
		Timestamp int64
		// BlockInterval is the interval between two blocks
		BlockInterval time.Duration `yaml:"blockInterval"`
	}
	// Account contains the configs for account protocol
	Account struct {
		// InitBalanceMap is the address and initial balance mapping before the first block.
		InitBalanceMap map[string]string `yaml:"initBalances"`
		// ExistentialDepositStr is the minimum free balance a keep-alive transfer must leave behind
		ExistentialDepositStr string `yaml:"existentialDeposit"`
	}
	// NftSale contains the configs for the world sale protocol. Zero day, era, overlord, statuses and collection ids
	// seed the initial state, the rest are runtime constants.
	NftSale struct {
		SecondsPerEra                  uint64 `yaml:"secondsPerEra"`
		IterLimit                      uint32 `yaml:"iterLimit"`
		MinBalanceToClaimSpiritStr     string `yaml:"minBalanceToClaimSpirit"`
		LegendaryOriginOfShellPriceStr string `yaml:"legendaryOriginOfShellPrice"`
		MagicOriginOfShellPriceStr     string `yaml:"magicOriginOfShellPrice"`
		PrimeOriginOfShellPriceStr     string `yaml:"primeOriginOfShellPrice"`
		OverlordAddrStr                string `yaml:"overlord"`
		// ZeroDay is the world clock start in unix seconds, nil if the clock has not started
		ZeroDay *uint64 `yaml:"zeroDay"`
		Era     uint64  `yaml:"era"`
		// StatusMap maps a status type name to its initial switch
		StatusMap                    map[string]bool      `yaml:"status"`
		SpiritCollectionID           *action.CollectionID `yaml:"spiritCollectionId"`
		OriginOfShellCollectionID    *action.CollectionID `yaml:"originOfShellCollectionId"`
		IsOriginOfShellsInventorySet bool                 `yaml:"isOriginOfShellsInventorySet"`
	}
)

// New constructs a genesis config. It loads the default values, and could be overwritten by values defined in the yaml
// config files
func New(genesisPath string) (Genesis, error) {
	def := defaultConfig()

	opts := make([]config.YAMLOption, 0)
	opts = append(opts, config.Static(def))
	if genesisPath != "" {
		opts = append(opts, config.File(genesisPath))
	}
	yaml, err := config.NewYAML(opts...)
	if err != nil {
		return Genesis{}, errors.Wrap(err, "error when constructing a genesis in yaml")
	}

	var genesis Genesis
	if err := yaml.Get(config.Root).Populate(&genesis); err != nil {
		return Genesis{}, errors.Wrap(err, "failed to unmarshal yaml genesis to struct")
	}
	return genesis, nil
}

// Validate checks every string encoded value of the genesis can be decoded
func (g *Genesis) Validate() error {
	for addrStr, amount := range g.InitBalanceMap {
		if _, err := address.FromString(addrStr); err != nil {
			return errors.Wrapf(err, "invalid init balance address %s", addrStr)
		}
		if _, err := parseAmount(amount); err != nil {
			return err
		}
	}
	for _, s := range []string{
		g.ExistentialDepositStr,
		g.MinBalanceToClaimSpiritStr,
		g.LegendaryOriginOfShellPriceStr,
		g.MagicOriginOfShellPriceStr,
		g.PrimeOriginOfShellPriceStr,
	} {
		if _, err := parseAmount(s); err != nil {
			return err
		}
	}
	if g.SecondsPerEra == 0 {
		return errors.New("seconds per era must be positive")
	}
	if g.IterLimit == 0 {
		return errors.New("iter limit must be positive")
	}
	if g.OverlordAddrStr != "" {
		if _, err := address.FromString(g.OverlordAddrStr); err != nil {
			return errors.Wrapf(err, "invalid overlord address %s", g.OverlordAddrStr)
		}
	}
	for name := range g.StatusMap {
		if _, err := action.ParseStatusType(name); err != nil {
			return err
		}
	}
	return nil
}

// GenesisTime returns the genesis block time
func (g *Blockchain) GenesisTime() time.Time {
	return time.Unix(g.Timestamp, 0)
}

// InitBalances returns the address that have initial balances and the corresponding amounts. The i-th amount is the
// i-th address' balance.
func (a *Account) InitBalances() ([]address.Address, []*big.Int) {
	// Make the list always be ordered
	addrStrs := make([]string, 0)
	for addrStr := range a.InitBalanceMap {
		addrStrs = append(addrStrs, addrStr)
	}
	sort.Strings(addrStrs)
	addrs := make([]address.Address, 0)
	amounts := make([]*big.Int, 0)
	for _, addrStr := range addrStrs {
		addr, err := address.FromString(addrStr)
		if err != nil {
			log.L().Panic("Error when decoding the account protocol init balance address from string.", zap.Error(err))
		}
		addrs = append(addrs, addr)
		amounts = append(amounts, mustParseAmount(a.InitBalanceMap[addrStr]))
	}
	return addrs, amounts
}

// ExistentialDeposit returns the minimum balance kept alive by keep-alive transfers
func (a *Account) ExistentialDeposit() *big.Int {
	return mustParseAmount(a.ExistentialDepositStr)
}

// MinBalanceToClaimSpirit returns the free balance required to claim a spirit
func (n *NftSale) MinBalanceToClaimSpirit() *big.Int {
	return mustParseAmount(n.MinBalanceToClaimSpiritStr)
}

// LegendaryOriginOfShellPrice returns the price of a legendary origin of shell
func (n *NftSale) LegendaryOriginOfShellPrice() *big.Int {
	return mustParseAmount(n.LegendaryOriginOfShellPriceStr)
}

// MagicOriginOfShellPrice returns the price of a magic origin of shell
func (n *NftSale) MagicOriginOfShellPrice() *big.Int {
	return mustParseAmount(n.MagicOriginOfShellPriceStr)
}

// PrimeOriginOfShellPrice returns the price of a prime origin of shell
func (n *NftSale) PrimeOriginOfShellPrice() *big.Int {
	return mustParseAmount(n.PrimeOriginOfShellPriceStr)
}

// Overlord returns the initial overlord, which is allowed to be nil
func (n *NftSale) Overlord() address.Address {
	if n.OverlordAddrStr == "" {
		return nil
	}
	addr, err := address.FromString(n.OverlordAddrStr)
	if err != nil {
		log.L().Panic("Error when decoding the overlord address from string.", zap.Error(err))
	}
	return addr
}

// Statuses returns the initial status switches
func (n *NftSale) Statuses() map[action.StatusType]bool {
	statuses := make(map[action.StatusType]bool, len(n.StatusMap))
	for name, on := range n.StatusMap {
		st, err := action.ParseStatusType(name)
		if err != nil {
			log.L().Panic("Error when decoding the status type.", zap.String("status", name), zap.Error(err))
		}
		statuses[st] = on
	}
	return statuses
}

func parseAmount(s string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok || amount.Sign() < 0 {
		return nil, errors.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

func mustParseAmount(s string) *big.Int {
	amount, err := parseAmount(s)
	if err != nil {
		log.S().Panicf("Error when casting amount string %s into big int", s)
	}
	return amount
}
