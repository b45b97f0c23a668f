package mercado

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Value is a loosely typed scalar from the API kept in its textual form.
// Strings are unquoted, numbers and booleans keep their literal, null is empty.
type Value string

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*v = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Value(s)
	case b[0] == '{', b[0] == '[':
		return fmt.Errorf("mercado: cannot use %s as scalar value", b)
	default:
		*v = Value(b)
	}
	return nil
}

func (v Value) String() string { return string(v) }

// Bool reports the value as a flag; anything that is not a recognised true
// literal is false.
func (v Value) Bool() bool {
	b, err := strconv.ParseBool(strings.TrimSpace(string(v)))
	return err == nil && b
}

// Ticker is one point-in-time quote for a pair.
type Ticker struct {
	Pair string `json:"pair"`
	Buy  Value  `json:"buy"`
	Sell Value  `json:"sell"`
	High Value  `json:"high"`
	Low  Value  `json:"low"`
	Open Value  `json:"open"`
	Last Value  `json:"last"`
	Vol  Value  `json:"vol"`
	Date Value  `json:"date"`
}

// SymbolInfo is one row of the symbol catalog. Numeric fields keep the text
// sent by the API; the repository decides how to coerce them.
type SymbolInfo struct {
	Symbol          string
	BaseCurrency    string
	Currency        string
	Description     string
	ExchangeListed  bool
	ExchangeTraded  bool
	MinMovement     Value
	PriceScale      Value
	SessionRegular  string
	Timezone        string
	Type            string
	DepositMinimum  Value
	WithdrawMinimum Value
	WithdrawalFee   Value
}

// catalogColumns mirrors the columnar /symbols payload: every key maps to an
// array and index i of every array describes the same pair.
type catalogColumns struct {
	Symbol          []Value `json:"symbol"`
	BaseCurrency    []Value `json:"base-currency"`
	Currency        []Value `json:"currency"`
	Description     []Value `json:"description"`
	ExchangeListed  []Value `json:"exchange-listed"`
	ExchangeTraded  []Value `json:"exchange-traded"`
	MinMovement     []Value `json:"minmovement"`
	PriceScale      []Value `json:"pricescale"`
	SessionRegular  []Value `json:"session-regular"`
	Timezone        []Value `json:"timezone"`
	Type            []Value `json:"type"`
	DepositMinimum  []Value `json:"deposit-minimum"`
	WithdrawMinimum []Value `json:"withdraw-minimum"`
	WithdrawalFee   []Value `json:"withdrawal-fee"`
}

func (c catalogColumns) rows() ([]SymbolInfo, error) {
	n := len(c.Symbol)
	cols := []struct {
		name string
		vals []Value
	}{
		{"base-currency", c.BaseCurrency},
		{"currency", c.Currency},
		{"description", c.Description},
		{"exchange-listed", c.ExchangeListed},
		{"exchange-traded", c.ExchangeTraded},
		{"minmovement", c.MinMovement},
		{"pricescale", c.PriceScale},
		{"session-regular", c.SessionRegular},
		{"timezone", c.Timezone},
		{"type", c.Type},
		{"deposit-minimum", c.DepositMinimum},
		{"withdraw-minimum", c.WithdrawMinimum},
		{"withdrawal-fee", c.WithdrawalFee},
	}
	// Absent columns are allowed, misaligned ones are not.
	for _, col := range cols {
		if len(col.vals) != 0 && len(col.vals) != n {
			return nil, fmt.Errorf("catalog column %q has %d entries, want %d", col.name, len(col.vals), n)
		}
	}

	out := make([]SymbolInfo, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, SymbolInfo{
			Symbol:          c.Symbol[i].String(),
			BaseCurrency:    at(c.BaseCurrency, i).String(),
			Currency:        at(c.Currency, i).String(),
			Description:     at(c.Description, i).String(),
			ExchangeListed:  at(c.ExchangeListed, i).Bool(),
			ExchangeTraded:  at(c.ExchangeTraded, i).Bool(),
			MinMovement:     at(c.MinMovement, i),
			PriceScale:      at(c.PriceScale, i),
			SessionRegular:  at(c.SessionRegular, i).String(),
			Timezone:        at(c.Timezone, i).String(),
			Type:            at(c.Type, i).String(),
			DepositMinimum:  at(c.DepositMinimum, i),
			WithdrawMinimum: at(c.WithdrawMinimum, i),
			WithdrawalFee:   at(c.WithdrawalFee, i),
		})
	}
	return out, nil
}

func at(vals []Value, i int) Value {
	if i < len(vals) {
		return vals[i]
	}
	return ""
}
