package notify

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type EventType string

const (
	InvestmentMade   EventType = "investment_made"
	DepositConfirmed EventType = "deposit_confirmed"
)

type Event struct {
	Type         EventType
	UserID       string
	Amount       decimal.Decimal
	ProjectID    string
	ProjectTitle string
}

// Sender delivers one notification. Email, SMS and push senders plug in here;
// delivery failures are logged, never propagated to the caller.
type Sender interface {
	Send(ctx context.Context, event Event) error
}

// LogSender is the default Sender: it only records the event.
type LogSender struct{}

func (LogSender) Send(_ context.Context, event Event) error {
	zap.L().Info("notification",
		zap.String("type", string(event.Type)),
		zap.String("user_id", event.UserID),
		zap.String("amount", event.Amount.String()))
	return nil
}

// Dispatcher fans events out to a bounded set of workers. Notify never blocks
// the financial operation that produced the event: when the queue is full the
// event is dropped with a warning.
type Dispatcher struct {
	sender Sender
	events chan Event
}

func NewDispatcher(sender Sender, queueSize int) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		events: make(chan Event, queueSize),
	}
}

func (d *Dispatcher) Start(ctx context.Context, workers int) {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case event := <-d.events:
					if err := d.sender.Send(ctx, event); err != nil {
						zap.L().Error("notification delivery failed", zap.Error(err))
					}
				}
			}
		})
	}
	go func() {
		if err := g.Wait(); err != nil {
			zap.L().Error("notification dispatcher stopped", zap.Error(err))
		}
	}()
}

func (d *Dispatcher) Notify(event Event) {
	select {
	case d.events <- event:
	default:
		zap.L().Warn("notification queue full, event dropped", zap.String("type", string(event.Type)))
	}
}
