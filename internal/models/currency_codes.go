package models

import (
	"sync"

	"golang.org/x/text/currency"
)

var (
	tenderOnce  sync.Once
	tenderCodes map[string]struct{}
)

// IsISOCurrency reports whether code is an ISO 4217 currency that is legal
// tender somewhere today. Metals, fund units and the XTS/XXX codes are not.
// code must already be upper-cased.
func IsISOCurrency(code string) bool {
	tenderOnce.Do(func() {
		tenderCodes = make(map[string]struct{})
		for it := currency.Query(); it.Next(); {
			tenderCodes[it.Unit().String()] = struct{}{}
		}
	})

	_, ok := tenderCodes[code]
	return ok
}
