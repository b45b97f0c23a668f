package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"mbfeed/internal/ingest"
	"mbfeed/internal/mercado"
	"mbfeed/internal/store"
)

const menuText = `
Main Menu
1. Consult and view available symbols
2. Subscribe to market data. Press CTRL + C to stop the subscription.
3. View stored market data
4. Exit
`

type Catalog interface {
	FetchSymbolCatalog(ctx context.Context) ([]mercado.SymbolInfo, error)
}

type Repository interface {
	UpsertSymbols(ctx context.Context, catalog []mercado.SymbolInfo) (int, error)
	ListSymbols(ctx context.Context) ([]store.Symbol, error)
	ListTicks(ctx context.Context) ([]store.Tick, error)
}

// Subscription is the control surface of the ingestion loop.
type Subscription interface {
	Start(ctx context.Context, pair string) error
	Cancel()
	Wait()
	Done() <-chan struct{}
}

type Menu struct {
	catalog Catalog
	repo    Repository
	sub     Subscription

	in         io.Reader
	out        io.Writer
	interrupts <-chan os.Signal
	log        *slog.Logger

	lines chan string
}

type Option func(*Menu)

func WithInput(r io.Reader) Option {
	return func(m *Menu) { m.in = r }
}

func WithOutput(w io.Writer) Option {
	return func(m *Menu) { m.out = w }
}

// WithInterrupts sets the channel that stops a running subscription, or the
// menu itself when no subscription is running.
func WithInterrupts(ch <-chan os.Signal) Option {
	return func(m *Menu) { m.interrupts = ch }
}

func WithLogger(log *slog.Logger) Option {
	return func(m *Menu) { m.log = log }
}

func New(catalog Catalog, repo Repository, sub Subscription, opts ...Option) *Menu {
	m := &Menu{
		catalog: catalog,
		repo:    repo,
		sub:     sub,
		in:      os.Stdin,
		out:     os.Stdout,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu until the user exits, input ends or an interrupt
// arrives at the prompt. It returns ctx.Err() when ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	m.lines = make(chan string)
	go m.scan(stop)

	for {
		fmt.Fprint(m.out, menuText)
		fmt.Fprint(m.out, "Enter your choice: ")
		choice, ok, err := m.readLine(ctx)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(m.out)
			return nil
		}
		switch strings.TrimSpace(choice) {
		case "1":
			m.viewSymbols(ctx)
		case "2":
			if err := m.subscribe(ctx); err != nil {
				return err
			}
		case "3":
			m.viewMarketData(ctx)
		case "4":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

// scan feeds input lines to the menu so that prompts can also watch for
// interrupts.
func (m *Menu) scan(stop <-chan struct{}) {
	defer close(m.lines)
	sc := bufio.NewScanner(m.in)
	for sc.Scan() {
		select {
		case m.lines <- sc.Text():
		case <-stop:
			return
		}
	}
	if err := sc.Err(); err != nil {
		m.log.Error("read input error", "err", err)
	}
}

// readLine reports ok=false on end of input or an interrupt.
func (m *Menu) readLine(ctx context.Context) (string, bool, error) {
	select {
	case line, ok := <-m.lines:
		return line, ok, nil
	case <-m.interrupts:
		return "", false, nil
	case <-ctx.Done():
		return "", false, ctx.Err()
	}
}

func (m *Menu) viewSymbols(ctx context.Context) {
	fmt.Fprintln(m.out, "\nFetching and storing symbols...")
	catalog, err := m.catalog.FetchSymbolCatalog(ctx)
	if err != nil {
		m.log.Error("fetch symbols error", "err", err)
		fmt.Fprintf(m.out, "Error fetching symbols: %v\n", err)
	} else {
		n, err := m.repo.UpsertSymbols(ctx, catalog)
		if err != nil {
			fmt.Fprintf(m.out, "Error storing symbols: %v\n", err)
		} else {
			fmt.Fprintf(m.out, "Stored %d symbols.\n", n)
		}
	}

	symbols, err := m.repo.ListSymbols(ctx)
	if err != nil {
		m.log.Error("list symbols error", "err", err)
		fmt.Fprintf(m.out, "Error reading symbols: %v\n", err)
		return
	}
	WriteSymbols(m.out, symbols)
}

func (m *Menu) subscribe(ctx context.Context) error {
	fmt.Fprint(m.out, "Enter the symbol to subscribe for market data: ")
	pair, ok, err := m.readLine(ctx)
	if err != nil || !ok {
		fmt.Fprintln(m.out)
		return err
	}
	pair = strings.TrimSpace(pair)
	fmt.Fprintf(m.out, "Subscribing to market data for symbol: %s\n", pair)
	fmt.Fprintln(m.out, ingest.Rule)

	if err := m.sub.Start(ctx, pair); err != nil {
		fmt.Fprintf(m.out, "Could not subscribe: %v\n", err)
		return nil
	}
	select {
	case <-m.interrupts:
		m.sub.Cancel()
		m.sub.Wait()
		fmt.Fprintln(m.out, "\nMarket data subscription stopped.")
		return nil
	case <-m.sub.Done():
		return nil
	case <-ctx.Done():
		m.sub.Cancel()
		m.sub.Wait()
		return ctx.Err()
	}
}

func (m *Menu) viewMarketData(ctx context.Context) {
	fmt.Fprintln(m.out, "\nDisplaying stored market data...")
	ticks, err := m.repo.ListTicks(ctx)
	if err != nil {
		m.log.Error("list market data error", "err", err)
		fmt.Fprintf(m.out, "Error reading market data: %v\n", err)
		return
	}
	WriteTicks(m.out, ticks)
}

func WriteSymbols(w io.Writer, symbols []store.Symbol) {
	if len(symbols) == 0 {
		fmt.Fprintln(w, "No symbols available.")
		return
	}
	fmt.Fprintf(w, "%-10s | %-40s\n", "Symbol", "Description")
	fmt.Fprintln(w, strings.Repeat("-", 51))
	for _, s := range symbols {
		fmt.Fprintf(w, "%-10s | %-40s\n", s.Symbol, s.Description)
	}
}

func WriteTicks(w io.Writer, ticks []store.Tick) {
	if len(ticks) == 0 {
		fmt.Fprintln(w, "No market data available.")
		return
	}
	ingest.WriteHeader(w)
	for _, t := range ticks {
		ingest.WriteTick(w, t)
	}
}
