package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConvertQuery holds the query parameters of the conversion endpoint
type ConvertQuery struct {
	Amount string `query:"amount" validate:"required,positive_amount"`
	From   string `query:"from" validate:"required,currency_code"`
	To     string `query:"to" validate:"required,currency_code"`
}

// RatesResponse exposes the rate table in use
type RatesResponse struct {
	Base       string                     `json:"base"`
	FetchedAt  time.Time                  `json:"fetched_at"`
	AgeSeconds int64                      `json:"age_seconds"`
	Rates      map[string]decimal.Decimal `json:"rates"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
