package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// currencyAllowList is the on-disk format of CURRENCY_ALLOWLIST_FILE:
//
//	currencies:
//	  - EUR
//	  - GBP
type currencyAllowList struct {
	Currencies []string `yaml:"currencies"`
}

// LoadCurrencyAllowList reads the ISO 4217 codes enabled for conversion.
// Codes are upper-cased and deduplicated in file order.
func LoadCurrencyAllowList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read currency allow-list: %w", err)
	}

	var parsed currencyAllowList
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse currency allow-list: %w", err)
	}

	seen := make(map[string]bool, len(parsed.Currencies))
	codes := make([]string, 0, len(parsed.Currencies))
	for _, raw := range parsed.Currencies {
		code := strings.ToUpper(strings.TrimSpace(raw))
		if len(code) != 3 {
			return nil, fmt.Errorf("parse currency allow-list: invalid code %q", raw)
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}

	if len(codes) == 0 {
		return nil, fmt.Errorf("parse currency allow-list: %s lists no currencies", path)
	}

	return codes, nil
}
