package store

type Symbol struct {
	ID              int64   `json:"id" db:"id"`
	BaseCurrency    string  `json:"base_currency" db:"base_currency"`
	Currency        string  `json:"currency" db:"currency"`
	Symbol          string  `json:"symbol" db:"symbol"`
	Description     string  `json:"description" db:"description"`
	ExchangeListed  bool    `json:"exchange_listed" db:"exchange_listed"`
	ExchangeTraded  bool    `json:"exchange_traded" db:"exchange_traded"`
	MinMovement     string  `json:"min_movement" db:"min_movement"`
	PriceScale      float64 `json:"price_scale" db:"price_scale"`
	SessionRegular  string  `json:"session_regular" db:"session_regular"`
	Timezone        string  `json:"timezone" db:"timezone"`
	Type            string  `json:"type" db:"type"`
	DepositMinimum  float64 `json:"deposit_minimum" db:"deposit_minimum"`
	WithdrawMinimum float64 `json:"withdraw_minimum" db:"withdraw_minimum"`
	WithdrawalFee   float64 `json:"withdrawal_fee" db:"withdrawal_fee"`
}

// Tick is one stored market-data observation. Date is the upstream epoch
// value, stored without unit conversion.
type Tick struct {
	ID     int64   `json:"id" db:"id"`
	Symbol string  `json:"symbol" db:"symbol"`
	Buy    float64 `json:"buy" db:"buy"`
	Sell   float64 `json:"sell" db:"sell"`
	High   float64 `json:"high" db:"high"`
	Low    float64 `json:"low" db:"low"`
	Open   float64 `json:"open" db:"open"`
	Last   float64 `json:"last" db:"last"`
	Volume float64 `json:"volume" db:"volume"`
	Date   int64   `json:"date" db:"date"`
}
