//go:build unix

package clip

import (
	"io"
	"sync"

	"github.com/labi-le/wrclip/pkg/mime"
	"github.com/rs/zerolog"
)

type pasteState int

const (
	stateIdle pasteState = iota
	stateEnumerating
	stateFinalizing
	stateCompleted
)

func (s pasteState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateEnumerating:
		return "enumerating"
	case stateFinalizing:
		return "finalizing"
	case stateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Outcome describes a finished paste. MimeType is empty when the selection
// offered nothing wanted.
type Outcome struct {
	Offered  []string
	MimeType string
	Transfer Transfer
}

func (o Outcome) MarshalZerologObject(e *zerolog.Event) {
	e.Strs("offered", o.Offered)
	if o.MimeType == "" {
		e.Bool("matched", false)
		return
	}
	e.Object("transfer", o.Transfer)
	e.Stringer("kind", mime.Classify(o.MimeType))
}

// Paster negotiates the current selection and copies it to a sink.
//
// DataOffer, Offered and Selection must be called from the dispatch
// goroutine; the matcher and offer state are never touched elsewhere.
type Paster struct {
	sink    io.Writer
	matcher *mime.Matcher
	logger  zerolog.Logger

	state   pasteState
	current Offer
	outcome Outcome

	done     chan struct{}
	doneOnce sync.Once
}

func NewPaster(sink io.Writer, opts Options) *Paster {
	return &Paster{
		sink:    sink,
		matcher: mime.NewMatcher(opts.Types),
		logger:  opts.Logger.With().Str("component", "paster").Logger(),
		done:    make(chan struct{}),
	}
}

// DataOffer starts enumerating a new offer, dropping whatever was
// gathered for the previous one.
func (p *Paster) DataOffer(o Offer) {
	if p.state >= stateFinalizing {
		o.Destroy()
		return
	}

	if p.current != nil {
		p.logger.Trace().
			Uint32("offer_id", p.current.ID()).
			Stringer("state", p.state).
			Msg("offer superseded")
		p.current.Destroy()
	}

	p.current = o
	p.matcher.Reset()
	p.outcome.Offered = nil
	p.state = stateEnumerating

	p.logger.Trace().
		Uint32("offer_id", o.ID()).
		Msg("enumerating offer")
}

// Offered records one type advertised by o. Types of superseded offers are
// ignored.
func (p *Paster) Offered(o Offer, mimeType string) {
	if p.state != stateEnumerating || o != p.current {
		return
	}

	p.outcome.Offered = append(p.outcome.Offered, mimeType)

	if p.matcher.Observe(mimeType) {
		p.logger.Trace().
			Uint32("offer_id", o.ID()).
			Str("mime", mimeType).
			Msg("best match improved")
	}
}

// Selection finalizes the negotiation. A nil offer means no client owns
// the selection.
func (p *Paster) Selection(o Offer) {
	if p.state >= stateFinalizing {
		return
	}

	if o == nil {
		p.logger.Debug().Msg("selection is empty")
		p.state = stateCompleted
		p.complete(nil)
		return
	}

	if o != p.current {
		p.logger.Debug().
			Uint32("offer_id", o.ID()).
			Msg("selection refers to an offer that was never enumerated")
		p.state = stateCompleted
		p.complete(nil)
		return
	}

	mimeType, ok := p.matcher.Best()
	if !ok {
		p.logger.Debug().
			Uint32("offer_id", o.ID()).
			Strs("available_mimes", p.outcome.Offered).
			Msg("no compatible type offered")
		p.state = stateCompleted
		p.complete(nil)
		return
	}

	p.state = stateFinalizing
	p.outcome.MimeType = mimeType

	p.logger.Trace().
		Uint32("offer_id", o.ID()).
		Str("mime", mimeType).
		Msg("selected MIME type")

	result := StartTransfer(o, mimeType, p.sink)
	go func() {
		t := <-result
		p.complete(&t)
	}()
}

func (p *Paster) complete(t *Transfer) {
	p.doneOnce.Do(func() {
		if t != nil {
			p.outcome.Transfer = *t
		}
		close(p.done)
	})
}

// Done is closed once the paste has finished, with or without output.
func (p *Paster) Done() <-chan struct{} {
	return p.done
}

// Outcome is valid after Done is closed.
func (p *Paster) Outcome() Outcome {
	return p.outcome
}
