// Package bus is a request/reply client for the backend service reached over Redis Pub/Sub.
//
// A request is published on a subject channel together with a one-shot inbox channel; the
// backend answers with a single Message on that inbox.
package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/auctionpulse/internal/logger"
	"github.com/guttosm/auctionpulse/internal/metrics"
)

// Subjects served by the backend.
const (
	SubjectRegions          = "regions"
	SubjectStatus           = "status"
	SubjectAuctions         = "auctions"
	SubjectOwners           = "owners"
	SubjectItemsQuery       = "items-query"
	SubjectItems            = "items"
	SubjectPriceList        = "price-list"
	SubjectPriceListHistory = "price-list-history"
)

const inboxPrefix = "_INBOX."

// Requester is what services depend on.
type Requester interface {
	Request(ctx context.Context, subject string, body any) (Message, error)
}

// Client issues requests over a Transport.
type Client struct {
	transport Transport
	timeout   time.Duration
	newInbox  func() string
}

// NewClient builds a Client. A timeout of zero leaves the deadline to the caller's context.
func NewClient(transport Transport, timeout time.Duration) *Client {
	return &Client{
		transport: transport,
		timeout:   timeout,
		newInbox:  func() string { return inboxPrefix + uuid.NewString() },
	}
}

// Request sends body as JSON on subject and waits for the first reply.
//
// A reply with a non-ok code is returned together with its *Error. Expiry of the request
// timeout yields ErrTimeout; a reply that is not a Message yields ErrMalformedReply.
func (c *Client) Request(ctx context.Context, subject string, body any) (Message, error) {
	start := time.Now()
	msg, err := c.request(ctx, subject, body)

	metrics.BusRequestDuration.WithLabelValues(subject).Observe(time.Since(start).Seconds())
	metrics.BusRequestsTotal.WithLabelValues(subject, resultLabel(err)).Inc()

	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("subject", subject).Msg("bus request failed")
	}
	return msg, err
}

// Ping checks the underlying transport.
func (c *Client) Ping(ctx context.Context) error {
	return c.transport.Ping(ctx)
}

func (c *Client) request(ctx context.Context, subject string, body any) (Message, error) {
	var data string
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Message{}, fmt.Errorf("bus: encode %s request: %w", subject, err)
		}
		data = string(b)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	// the subscription lives until this request returns
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inbox := c.newInbox()
	replies, err := c.transport.Subscribe(ctx, inbox)
	if err != nil {
		return Message{}, c.ctxErr(ctx, subject, err)
	}

	payload, err := json.Marshal(envelope{ReplyTo: inbox, Data: data})
	if err != nil {
		return Message{}, fmt.Errorf("bus: encode envelope: %w", err)
	}
	if err := c.transport.Publish(ctx, subject, payload); err != nil {
		return Message{}, c.ctxErr(ctx, subject, err)
	}

	select {
	case <-ctx.Done():
		return Message{}, c.ctxErr(ctx, subject, ctx.Err())
	case raw, ok := <-replies:
		if !ok {
			return Message{}, c.ctxErr(ctx, subject, errors.New("bus: inbox closed"))
		}
		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			return Message{}, fmt.Errorf("%w: %s: %v", ErrMalformedReply, subject, err)
		}
		return msg, msg.Err()
	}
}

// ctxErr reports ErrTimeout when the deadline caused err, err otherwise.
func (c *Client) ctxErr(ctx context.Context, subject string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTimeout, subject)
	}
	return err
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUserError):
		return "user_error"
	default:
		return "error"
	}
}
