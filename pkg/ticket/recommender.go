package ticket

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/internal/logger"
	"github.com/porter-dev/ams-assistant/internal/repository"
	"github.com/porter-dev/ams-assistant/pkg/textgen"
)

// RecommendationFailedMessage replaces the recommendation whenever the
// text-generation call fails for any reason.
const RecommendationFailedMessage = "Failed to generate AI recommendation. Please try again."

// ErrSuperseded is returned by Analyze when a newer analysis for the same
// session cancelled this one.
var ErrSuperseded = errors.New("analysis superseded by a newer request")

const DefaultTimeout = 30 * time.Second

type RecommenderOptions struct {
	// Timeout bounds the text-generation call. Defaults to DefaultTimeout.
	Timeout time.Duration
	Logger  *logger.Logger
}

type Recommender struct {
	tickets   repository.TicketRepository
	incidents repository.PastIncidentRepository
	generator textgen.Generator

	timeout  time.Duration
	logger   *logger.Logger
	inflight *inflight
}

func NewRecommender(
	tickets repository.TicketRepository,
	incidents repository.PastIncidentRepository,
	generator textgen.Generator,
	opts RecommenderOptions,
) *Recommender {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}

	return &Recommender{
		tickets:   tickets,
		incidents: incidents,
		generator: generator,
		timeout:   opts.Timeout,
		logger:    opts.Logger,
		inflight:  newInflight(),
	}
}

// Search looks a ticket up by ID or title. It returns ErrTicketNotFound on a
// miss.
func (r *Recommender) Search(ctx context.Context, query string) (*types.Ticket, error) {
	tickets, err := r.tickets.ListTickets(ctx)

	if err != nil {
		return nil, fmt.Errorf("error listing tickets: %w", err)
	}

	return Lookup(tickets, query)
}

// Analyze looks the ticket up, matches it against the knowledge base and asks
// the generator for recommended actions. A failed generation is reported in
// the analysis, never as an error. sessionID scopes supersession: a second
// call with the same non-empty sessionID cancels the first, which then
// returns ErrSuperseded.
func (r *Recommender) Analyze(ctx context.Context, sessionID, query string) (*types.TicketAnalysis, error) {
	ticket, err := r.Search(ctx, query)

	if err != nil {
		return nil, err
	}

	kb, err := r.incidents.ListPastIncidents(ctx)

	if err != nil {
		return nil, fmt.Errorf("error listing past incidents: %w", err)
	}

	similar := MatchIncidents(ticket.Description, kb)

	res := &types.TicketAnalysis{
		Ticket:           ticket,
		SimilarIncidents: similar,
		Prompt:           BuildPrompt(ticket, similar),
	}

	callCtx, c := r.inflight.begin(ctx, sessionID)
	defer r.inflight.end(sessionID, c)

	callCtx, cancel := context.WithTimeout(callCtx, r.timeout)
	defer cancel()

	text, err := r.generator.Generate(callCtx, res.Prompt)

	if err != nil {
		if r.inflight.wasSuperseded(c) {
			return nil, ErrSuperseded
		}

		r.logger.Warn().Caller().Msgf("recommendation for ticket %s failed: %v", ticket.ID, err)

		res.Recommendation = RecommendationFailedMessage
		res.RecommendationFailed = true

		return res, nil
	}

	res.Recommendation = text

	return res, nil
}
