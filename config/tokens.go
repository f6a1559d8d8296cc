package config

import (
	"fmt"
	"math/big"
	"os"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"gopkg.in/yaml.v3"

	"github.com/kava-labs/collateral-monitor/types"
)

// TokenMetadata describes one denom of the lending market
type TokenMetadata struct {
	Denom    string  `yaml:"denom"`
	Decimals *uint32 `yaml:"decimals"`
	// Price is a decimal string, e.g. "0.75"
	Price string `yaml:"price"`
}

// TokenMetadataFile is the layout of the file at TOKEN_METADATA_PATH
type TokenMetadataFile struct {
	Tokens []TokenMetadata `yaml:"tokens"`
}

// TokenTable holds per-denom decimals and prices
type TokenTable struct {
	Decimals map[string]uint32
	Prices   map[string]types.DecimalRatio
}

// LoadTokenTable reads and validates a token metadata yaml file
func LoadTokenTable(path string) (TokenTable, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return TokenTable{}, err
	}
	return ParseTokenTable(bz)
}

// ParseTokenTable parses token metadata yaml
func ParseTokenTable(bz []byte) (TokenTable, error) {
	var file TokenMetadataFile
	if err := yaml.Unmarshal(bz, &file); err != nil {
		return TokenTable{}, fmt.Errorf("failed to parse token metadata: %w", err)
	}

	table := TokenTable{
		Decimals: make(map[string]uint32),
		Prices:   make(map[string]types.DecimalRatio),
	}

	seen := make(map[string]bool)
	for i, token := range file.Tokens {
		if token.Denom == "" {
			return TokenTable{}, fmt.Errorf("token %d: denom not set", i)
		}
		if seen[token.Denom] {
			return TokenTable{}, fmt.Errorf("token %s listed twice", token.Denom)
		}
		seen[token.Denom] = true

		if token.Decimals != nil {
			table.Decimals[token.Denom] = *token.Decimals
		}

		if token.Price != "" {
			price, err := parsePrice(token.Price)
			if err != nil {
				return TokenTable{}, fmt.Errorf("token %s: %w", token.Denom, err)
			}
			table.Prices[token.Denom] = price
		}
	}

	return table, nil
}

// parsePrice converts a decimal string into an exact ratio
func parsePrice(s string) (types.DecimalRatio, error) {
	dec, err := sdk.NewDecFromStr(s)
	if err != nil {
		return types.DecimalRatio{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if dec.IsNegative() {
		return types.DecimalRatio{}, fmt.Errorf("invalid price %q: negative", s)
	}

	num, err := types.ParseUint128(dec.BigInt().String())
	if err != nil {
		return types.DecimalRatio{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(sdk.Precision), nil)

	return types.NewDecimalRatio(num, types.MustParseUint128(den.String()))
}
