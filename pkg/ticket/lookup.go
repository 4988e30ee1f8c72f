package ticket

import (
	"errors"
	"strings"

	"github.com/porter-dev/ams-assistant/api/server/types"
)

var ErrTicketNotFound = errors.New("ticket not found")

// Lookup returns the first ticket, in list order, whose ID equals query or
// whose title contains query, both compared case-insensitively. A blank query
// never matches.
func Lookup(tickets []*types.Ticket, query string) (*types.Ticket, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	if q == "" {
		return nil, ErrTicketNotFound
	}

	for _, t := range tickets {
		if strings.ToLower(t.ID) == q || strings.Contains(strings.ToLower(t.Title), q) {
			return t, nil
		}
	}

	return nil, ErrTicketNotFound
}

// MatchIncidents returns the knowledge-base entries with at least one keyword
// contained in description, case-insensitively, in knowledge-base order.
func MatchIncidents(description string, kb []*types.PastIncident) []*types.PastIncident {
	desc := strings.ToLower(description)
	res := make([]*types.PastIncident, 0)

	for _, entry := range kb {
		for _, kw := range entry.Keywords {
			if kw != "" && strings.Contains(desc, strings.ToLower(kw)) {
				res = append(res, entry)
				break
			}
		}
	}

	return res
}
