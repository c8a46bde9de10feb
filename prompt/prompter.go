package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/shopspring/decimal"
)

// Prompter asks for bounded numbers on a Console.
// A Prompter owns its console and must not be shared between goroutines.
type Prompter struct {
	console Console
	logger  *slog.Logger
}

// Option customizes a Prompter.
type Option func(*Prompter)

// WithLogger routes rejected-attempt diagnostics to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prompter) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func New(console Console, opts ...Option) *Prompter {
	if console == nil {
		console = NewConsole(nil, nil)
	}
	p := &Prompter{
		console: console,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Integer prompts until a whole number in [cfg.Min, cfg.Max] is supplied.
func (p *Prompter) Integer(ctx context.Context, text string, cfg IntegerConfig) (int32, error) {
	return ask(ctx, p, request[int32]{
		kind:    KindInteger,
		text:    text,
		verbose: cfg.Verbose,
		min:     strconv.FormatInt(int64(cfg.Min), 10),
		max:     strconv.FormatInt(int64(cfg.Max), 10),
		parse:   ParseInteger,
		inRange: func(v int32) bool {
			return v >= cfg.Min && v <= cfg.Max
		},
	})
}

// Decimal prompts until a decimal in [cfg.Min, cfg.Max] is supplied.
func (p *Prompter) Decimal(ctx context.Context, text string, cfg DecimalConfig) (decimal.Decimal, error) {
	return ask(ctx, p, request[decimal.Decimal]{
		kind:    KindDecimal,
		text:    text,
		verbose: cfg.Verbose,
		min:     cfg.Min.String(),
		max:     cfg.Max.String(),
		parse:   ParseDecimal,
		inRange: func(v decimal.Decimal) bool {
			return v.GreaterThanOrEqual(cfg.Min) && v.LessThanOrEqual(cfg.Max)
		},
	})
}

// Advisory renders the range reminder shown after a rejected response.
func Advisory(kind Kind, lower, upper string) string {
	return fmt.Sprintf("Please supply a %s between %s and %s.", kind.Unit(), lower, upper)
}

type request[T any] struct {
	kind    Kind
	text    string
	verbose bool
	min     string
	max     string
	parse   func(string) (T, error)
	inRange func(T) bool
}

func ask[T any](ctx context.Context, p *Prompter, req request[T]) (T, error) {
	var zero T
	if ctx == nil {
		ctx = context.Background()
	}

	showMessage := false
	for attempt := 1; ; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, ctxErr
		}

		if showMessage {
			if err := p.console.Write(Advisory(req.kind, req.min, req.max) + "\n"); err != nil {
				return zero, fmt.Errorf("write advisory: %w", err)
			}
		}
		if err := p.console.Write(req.text + " "); err != nil {
			return zero, fmt.Errorf("write prompt: %w", err)
		}

		line, err := p.console.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return zero, fmt.Errorf("%s prompt: %w", req.kind, ErrInputClosed)
			}
			return zero, fmt.Errorf("read response: %w", err)
		}

		value, err := req.parse(line)
		if err == nil && !req.inRange(value) {
			err = fmt.Errorf("%w: %q not in [%s, %s]", errOutOfRange, line, req.min, req.max)
		}
		if err != nil {
			p.logger.DebugContext(ctx, "prompt response rejected",
				slog.String("kind", req.kind.String()),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)
			showMessage = req.verbose
			continue
		}
		return value, nil
	}
}
