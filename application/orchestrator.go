package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/luca-patrignani/bridge/domain/bridge"
	"github.com/luca-patrignani/bridge/domain/criterion"
	"github.com/luca-patrignani/bridge/domain/deck"
	"github.com/luca-patrignani/bridge/domain/strategy"
	"github.com/luca-patrignani/bridge/ledger"
	"github.com/luca-patrignani/bridge/metrics"
)

// MaxCalls bounds the length of an auction. No legal auction ending in four
// passes is longer.
const MaxCalls = 319

// passesToEnd is the number of consecutive passes that closes an auction.
const passesToEnd = 4

// Bidder chooses calls and explains them.
type Bidder interface {
	Decide(h bridge.History, hand bridge.Hand) (strategy.Rule, error)
	InterpretBid(h bridge.History) (criterion.Criterion, error)
}

// Orchestrator runs auctions over dealt boards, asking the bidder for each
// call in turn.
type Orchestrator struct {
	bidder    Bidder
	logger    *slog.Logger
	metrics   *metrics.Collector
	dealer    bridge.Seat
	workers   int
	maxCalls  int
	interpret bool
	keyring   *ledger.Keyring
}

type orchestratorOption func(Orchestrator) Orchestrator

// NewOrchestrator returns an orchestrator that bids with the uncached
// strategy, dealer North and one worker unless opts say otherwise.
func NewOrchestrator(opts ...orchestratorOption) Orchestrator {
	o := Orchestrator{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		dealer:   bridge.North,
		workers:  1,
		maxCalls: MaxCalls,
	}
	for _, opt := range opts {
		o = opt(o)
	}
	if o.bidder == nil {
		s, _ := strategy.New()
		o.bidder = s
	}
	return o
}

func WithBidder(b Bidder) orchestratorOption {
	return func(o Orchestrator) Orchestrator {
		o.bidder = b
		return o
	}
}

func WithLogger(logger *slog.Logger) orchestratorOption {
	return func(o Orchestrator) Orchestrator {
		if logger != nil {
			o.logger = logger
		}
		return o
	}
}

func WithMetrics(m *metrics.Collector) orchestratorOption {
	return func(o Orchestrator) Orchestrator {
		o.metrics = m
		return o
	}
}

// WithDealer sets the seat that calls first.
func WithDealer(s bridge.Seat) orchestratorOption {
	return func(o Orchestrator) Orchestrator {
		o.dealer = s
		return o
	}
}

// WithWorkers sets how many auctions RunBatch runs at once.
func WithWorkers(n int) orchestratorOption {
	return func(o Orchestrator) Orchestrator {
		if n > 0 {
			o.workers = n
		}
		return o
	}
}

// WithMaxCalls lowers the number of calls after which an auction is
// abandoned with ErrAuctionTooLong.
func WithMaxCalls(n int) orchestratorOption {
	return func(o Orchestrator) Orchestrator {
		if n > 0 && n < MaxCalls {
			o.maxCalls = n
		}
		return o
	}
}

// WithKeyring makes every seat sign its calls with its key from k.
func WithKeyring(k *ledger.Keyring) orchestratorOption {
	return func(o Orchestrator) Orchestrator {
		o.keyring = k
		return o
	}
}

// WithInterpretation makes Run describe the hands shown by every call.
func WithInterpretation(enabled bool) orchestratorOption {
	return func(o Orchestrator) Orchestrator {
		o.interpret = enabled
		return o
	}
}

// Result is the outcome of one auction. Transcript holds every call made
// before the auction ended or failed.
type Result struct {
	AuctionID  string
	Dealer     bridge.Seat
	Deal       deck.Deal
	Transcript *ledger.Transcript
	// Meanings has one entry per call when interpretation is enabled. An
	// entry is nil when the call could not be interpreted.
	Meanings []criterion.Criterion
	Err      error
}

// History returns the calls of the auction.
func (r Result) History() bridge.History {
	return r.Transcript.History()
}

// Calls returns the calls of the auction with the seats that made them.
func (r Result) Calls() []ledger.Call {
	return r.Transcript.Calls()
}

// Contract returns the final bid and the seat that made it. ok is false
// when the board was passed out or the auction did not complete.
func (r Result) Contract() (bid bridge.Bid, by bridge.Seat, ok bool) {
	if r.Err != nil {
		return bridge.Pass, 0, false
	}
	calls := r.Transcript.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if !calls[i].Bid.IsPass() {
			return calls[i].Bid, calls[i].Seat, true
		}
	}
	return bridge.Pass, 0, false
}

// Run bids deal to completion, starting from the dealer and rotating
// clockwise, until four consecutive passes. A strategy error, an illegal
// call or a runaway auction stops it with an *AuctionError, which is also
// stored in the returned Result.
func (o Orchestrator) Run(ctx context.Context, deal deck.Deal) (Result, error) {
	id := uuid.NewString()
	res := Result{
		AuctionID:  id,
		Dealer:     o.dealer,
		Deal:       deal,
		Transcript: ledger.NewTranscript(id, map[string]string{"dealer": o.dealer.String()}),
	}
	logger := o.logger.With("auction", id)
	logger.Debug("auction started", "dealer", o.dealer.String())

	history := bridge.History{}
	seat := o.dealer
	for turn := 0; ; turn++ {
		if err := ctx.Err(); err != nil {
			return o.fail(logger, res, seat, turn, err, metrics.OutcomeCanceled)
		}
		if turn >= o.maxCalls {
			return o.fail(logger, res, seat, turn, ErrAuctionTooLong, metrics.OutcomeTooLong)
		}

		rule, err := o.bidder.Decide(history, deal.Hand(seat))
		if err != nil {
			return o.fail(logger, res, seat, turn, err, metrics.OutcomeGap)
		}
		if !history.IsLegal(rule.Bid) {
			err := fmt.Errorf("%w: %s over %s", ErrIllegalCall, rule.Bid, history.Highest())
			return o.fail(logger, res, seat, turn, err, metrics.OutcomeIllegal)
		}

		history = history.With(rule.Bid)
		if err := o.record(res.Transcript, ledger.Call{Seat: seat, Bid: rule.Bid, Rule: rule.String()}); err != nil {
			return res, fmt.Errorf("failed to record call: %w", err)
		}
		logger.Debug("call", "seat", seat.String(), "turn", turn, "bid", rule.Bid.String())

		if o.interpret {
			res.Meanings = append(res.Meanings, o.meaning(logger, history))
		}

		if history.ConsecutivePasses() == passesToEnd {
			break
		}
		seat = seat.Next()
	}

	o.metrics.RecordAuction(metrics.OutcomeCompleted, len(history))
	logger.Debug("auction completed", "calls", len(history), "history", history.String())
	return res, nil
}

func (o Orchestrator) record(t *ledger.Transcript, call ledger.Call) error {
	if o.keyring != nil {
		signed, err := o.keyring.Sign(t.AuctionID(), call)
		if err != nil {
			return err
		}
		call = signed
	}
	return t.Append(call)
}

func (o Orchestrator) meaning(logger *slog.Logger, h bridge.History) criterion.Criterion {
	c, err := o.bidder.InterpretBid(h)
	if err != nil {
		logger.Debug("call not interpreted", "history", h.String(), "error", err)
		return nil
	}
	return c
}

func (o Orchestrator) fail(logger *slog.Logger, res Result, seat bridge.Seat, turn int, err error, outcome string) (Result, error) {
	res.Err = &AuctionError{Seat: seat, Turn: turn, Err: err}
	o.metrics.RecordAuction(outcome, turn)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Debug("auction canceled", "seat", seat.String(), "turn", turn)
	} else {
		logger.Warn("auction stopped", "seat", seat.String(), "turn", turn, "error", err)
	}
	return res, res.Err
}
