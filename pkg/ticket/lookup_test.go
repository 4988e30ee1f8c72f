package ticket

import (
	"strings"
	"testing"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupByIDIsCaseInsensitive(t *testing.T) {
	tickets := seed.Tickets()

	for _, want := range tickets {
		for _, q := range []string{want.ID, strings.ToLower(want.ID), strings.ToUpper(want.ID)} {
			got, err := Lookup(tickets, q)
			require.NoError(t, err, "query %q", q)
			assert.Equal(t, want.ID, got.ID, "query %q", q)
		}
	}
}

func TestLookupByTitleSubstring(t *testing.T) {
	tickets := seed.Tickets()

	cases := map[string]string{
		"login":             "INC002",
		"LOGIN":             "INC002",
		"payment gateway":   "INC001",
		"report generation": "INC003",
		"Timeout":           "INC003",
	}

	for q, want := range cases {
		got, err := Lookup(tickets, q)
		require.NoError(t, err, "query %q", q)
		assert.Equal(t, want, got.ID, "query %q", q)
	}
}

func TestLookupFirstMatchWins(t *testing.T) {
	tickets := []*types.Ticket{
		{ID: "A1", Title: "Disk full on node"},
		{ID: "A2", Title: "Disk full on database"},
	}

	got, err := Lookup(tickets, "disk full")
	require.NoError(t, err)
	assert.Equal(t, "A1", got.ID)

	// an id match later in the list does not beat an earlier title match
	tickets = []*types.Ticket{
		{ID: "X1", Title: "Problem with a2 cluster"},
		{ID: "A2", Title: "Unrelated"},
	}

	got, err = Lookup(tickets, "a2")
	require.NoError(t, err)
	assert.Equal(t, "X1", got.ID)
}

func TestLookupMiss(t *testing.T) {
	tickets := seed.Tickets()

	for _, q := range []string{"INC999", "kubernetes", "", "   "} {
		_, err := Lookup(tickets, q)
		assert.ErrorIs(t, err, ErrTicketNotFound, "query %q", q)
	}
}

func TestMatchIncidentsForSeedTickets(t *testing.T) {
	kb := seed.PastIncidents()
	tickets := seed.Tickets()

	ids := func(incidents []*types.PastIncident) []string {
		res := []string{}
		for _, i := range incidents {
			res = append(res, i.ID)
		}
		return res
	}

	assert.Equal(t, []string{"PI001"}, ids(MatchIncidents(tickets[0].Description, kb)))
	assert.Equal(t, []string{"PI002"}, ids(MatchIncidents(tickets[1].Description, kb)))
	assert.Equal(t, []string{"PI03"}, ids(MatchIncidents(tickets[2].Description, kb)))
	assert.Empty(t, MatchIncidents("nothing relevant here", kb))
}

func TestMatchIncidentsKeywordCaseInsensitive(t *testing.T) {
	kb := []*types.PastIncident{
		{ID: "K1", Keywords: []string{"BI"}},
	}

	assert.Len(t, MatchIncidents("the BI reports are late", kb), 1)
	assert.Len(t, MatchIncidents("the bi reports are late", kb), 1)
	assert.Empty(t, MatchIncidents("business intelligence", kb))
}

func TestMatchIncidentsIsMonotonic(t *testing.T) {
	description := seed.Tickets()[0].Description

	kb := seed.PastIncidents()
	before := MatchIncidents(description, kb)

	// PI002 gains a keyword present in the description
	extended := seed.PastIncidents()
	extended[1].Keywords = append(extended[1].Keywords, "pending status")

	after := MatchIncidents(description, extended)

	afterIDs := map[string]bool{}
	for _, i := range after {
		afterIDs[i.ID] = true
	}

	for _, i := range before {
		assert.True(t, afterIDs[i.ID], "%s must still match", i.ID)
	}

	assert.True(t, afterIDs["PI002"])
	assert.Len(t, after, len(before)+1)
}
