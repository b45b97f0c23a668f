package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"mbfeed/internal/mercado"
	"mbfeed/internal/store"
)

const header = "Symbol     | Buy        | Sell       | High       | Low        | Open       | Last       | Volume     | Date"

// Rule is the separator printed under table headers.
var Rule = strings.Repeat("-", 90)

func WriteHeader(w io.Writer) {
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, Rule)
}

// WriteTicker prints the values exactly as the API sent them.
func WriteTicker(w io.Writer, t mercado.Ticker) {
	writeRow(w, t.Pair,
		t.Buy.String(), t.Sell.String(), t.High.String(), t.Low.String(),
		t.Open.String(), t.Last.String(), t.Vol.String(), t.Date.String())
}

func WriteTick(w io.Writer, t store.Tick) {
	writeRow(w, t.Symbol,
		formatFloat(t.Buy), formatFloat(t.Sell), formatFloat(t.High), formatFloat(t.Low),
		formatFloat(t.Open), formatFloat(t.Last), formatFloat(t.Volume), strconv.FormatInt(t.Date, 10))
}

func writeRow(w io.Writer, pair, buy, sell, high, low, open, last, vol, date string) {
	fmt.Fprintf(w, "%-10s | %-10s | %-10s | %-10s | %-10s | %-10s | %-10s | %-10s | %s\n",
		pair, buy, sell, high, low, open, last, vol, date)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
