package node

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// TokenConfig describes an external token contract the node should
// bind at startup. The dev node backs each entry with a memory
// token and mints the supply to the issuer account.
type TokenConfig struct {
	// ID of the token contract
	ID string
	// display name
	Name string
	// ticker symbol
	Symbol string
	// decimal precision of display units
	Decimals uint32
	// total supply in smallest units
	Supply int64
	// account receiving the minted supply
	Issuer string
}

type Config struct {
	// listen port of the http server
	Port string
	// database backend
	DBBackend string
	// database file path
	DBPath string
	// custody account of the exchange at the token contracts
	CustodyAccount string
	// receiver of the percentage fee on filled orders
	FeeAccount string
	// whole percentage points of the buy amount
	FeePercent int64
	// token contracts to bind
	Tokens []TokenConfig
}

func NewConfig(v *viper.Viper) (*Config, error) {
	if v.GetString("port") == "" {
		return nil, errors.New("network port is missing")
	}
	if v.GetString("db_backend") == "" {
		return nil, errors.New("db backend is empty")
	}
	if v.GetString("db_path") == "" {
		return nil, errors.New("db path is empty")
	}
	if v.GetString("custody_account") == "" {
		return nil, errors.New("custody account is empty")
	}
	if v.GetString("fee_account") == "" {
		return nil, errors.New("fee account is empty")
	}
	if !v.IsSet("fee_percent") {
		return nil, errors.New("fee percent is missing")
	}

	tokens, err := parseTokens(v.Get("tokens"))
	if err != nil {
		return nil, fmt.Errorf("parse tokens failed: %v", err)
	}

	c := Config{
		Port:           v.GetString("port"),
		DBBackend:      v.GetString("db_backend"),
		DBPath:         v.GetString("db_path"),
		CustodyAccount: v.GetString("custody_account"),
		FeeAccount:     v.GetString("fee_account"),
		FeePercent:     v.GetInt64("fee_percent"),
		Tokens:         tokens,
	}

	return &c, nil
}

func parseTokens(ts interface{}) ([]TokenConfig, error) {
	if ts == nil {
		return nil, nil
	}

	entries, ok := ts.([]interface{})
	if !ok {
		return nil, errors.New("tokens is not a list")
	}

	var tokens []TokenConfig
	for _, e := range entries {
		entry := make(map[string]interface{})
		switch ea := e.(type) {
		case map[interface{}]interface{}:
			for k, val := range ea {
				ks, ok := k.(string)
				if !ok {
					return nil, errors.New("token entry key is not a string")
				}
				entry[ks] = val
			}
		case map[string]interface{}:
			for k, val := range ea {
				entry[k] = val
			}
		default:
			return nil, errors.New("token entry is not a map")
		}

		tv := viper.New()
		for k, val := range entry {
			tv.Set(k, val)
		}
		if tv.GetString("id") == "" {
			return nil, errors.New("token ID is empty")
		}
		if tv.GetString("issuer") == "" {
			return nil, errors.New("token issuer is empty")
		}
		tokens = append(tokens, TokenConfig{
			ID:       tv.GetString("id"),
			Name:     tv.GetString("name"),
			Symbol:   tv.GetString("symbol"),
			Decimals: uint32(tv.GetInt("decimals")),
			Supply:   tv.GetInt64("supply"),
			Issuer:   tv.GetString("issuer"),
		})
	}

	return tokens, nil
}
