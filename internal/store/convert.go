package store

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"mbfeed/internal/mercado"
)

// ConversionError reports a field that could not be coerced to its column
// type. Only fields without a safe default produce it.
type ConversionError struct {
	Pair  string
	Field string
	Value any
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s of %s (%v): %v", e.Field, e.Pair, e.Value, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// SafeParseFloat never fails: anything that is not a finite number is 0.
func SafeParseFloat(s any) float64 {
	var f float64
	switch v := s.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case int16:
		return float64(v)
	case int8:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case uint32:
		return float64(v)
	case uint16:
		return float64(v)
	case uint8:
		return float64(v)
	case json.Number:
		return SafeParseFloat(string(v))
	case mercado.Value:
		return SafeParseFloat(string(v))
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseTimestamp converts an upstream epoch value to an integer. Unlike
// prices there is no default: a bad timestamp fails the whole batch.
func ParseTimestamp(s any) (int64, error) {
	switch v := s.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, fmt.Errorf("not an integer: %v", v)
		}
		return int64(v), nil
	case json.Number:
		return ParseTimestamp(string(v))
	case mercado.Value:
		return ParseTimestamp(string(v))
	case string:
		v = strings.TrimSpace(v)
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n, nil
		}
		// Integral numbers may still arrive in exponent form.
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, err
		}
		return ParseTimestamp(f)
	default:
		return 0, fmt.Errorf("unsupported type %T", s)
	}
}

func symbolFromInfo(in mercado.SymbolInfo) Symbol {
	return Symbol{
		BaseCurrency:    in.BaseCurrency,
		Currency:        in.Currency,
		Symbol:          in.Symbol,
		Description:     in.Description,
		ExchangeListed:  in.ExchangeListed,
		ExchangeTraded:  in.ExchangeTraded,
		MinMovement:     in.MinMovement.String(),
		PriceScale:      SafeParseFloat(in.PriceScale),
		SessionRegular:  in.SessionRegular,
		Timezone:        in.Timezone,
		Type:            in.Type,
		DepositMinimum:  SafeParseFloat(in.DepositMinimum),
		WithdrawMinimum: SafeParseFloat(in.WithdrawMinimum),
		WithdrawalFee:   SafeParseFloat(in.WithdrawalFee),
	}
}

func tickFromTicker(in mercado.Ticker) (Tick, error) {
	date, err := ParseTimestamp(in.Date)
	if err != nil {
		return Tick{}, &ConversionError{Pair: in.Pair, Field: "date", Value: in.Date, Err: err}
	}
	return Tick{
		Symbol: in.Pair,
		Buy:    SafeParseFloat(in.Buy),
		Sell:   SafeParseFloat(in.Sell),
		High:   SafeParseFloat(in.High),
		Low:    SafeParseFloat(in.Low),
		Open:   SafeParseFloat(in.Open),
		Last:   SafeParseFloat(in.Last),
		Volume: SafeParseFloat(in.Vol),
		Date:   date,
	}, nil
}
