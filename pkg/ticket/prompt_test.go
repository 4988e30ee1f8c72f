package ticket

import (
	"strings"
	"testing"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/internal/seed"
	"github.com/stretchr/testify/assert"
)

func TestBuildPromptWithIncidents(t *testing.T) {
	ticket := seed.Tickets()[0]
	incident := seed.PastIncidents()[0]

	prompt := BuildPrompt(ticket, []*types.PastIncident{incident})

	assert.True(t, strings.HasPrefix(prompt, promptHeader+"\n\nCurrent High-Priority Ticket:\nID: INC001\n"))
	assert.Contains(t, prompt, "Title: Payment Gateway Integration Failure\n")
	assert.Contains(t, prompt, "Severity: Critical\n")
	assert.Contains(t, prompt, "Affected Service: Checkout Service\n")
	assert.Contains(t, prompt, "Status: Open\n\nPast Similar Incidents (for context):\n")
	assert.Contains(t, prompt, "\nIncident 1 (ID: PI001):\nSummary: "+incident.Summary+"\n")
	assert.Contains(t, prompt, "Past Recommended Actions: Check payment gateway API logs for specific error codes.; Verify API credentials")
	assert.NotContains(t, prompt, noSimilarIncidents)
	assert.True(t, strings.HasSuffix(prompt, "\n\n"+promptFooter))
}

func TestBuildPromptNumbersIncidents(t *testing.T) {
	prompt := BuildPrompt(seed.Tickets()[0], seed.PastIncidents())

	assert.Contains(t, prompt, "Incident 1 (ID: PI001):")
	assert.Contains(t, prompt, "Incident 2 (ID: PI002):")
	assert.Contains(t, prompt, "Incident 3 (ID: PI03):")
}

func TestBuildPromptWithoutIncidents(t *testing.T) {
	prompt := BuildPrompt(seed.Tickets()[2], nil)

	assert.Contains(t, prompt, "Past Similar Incidents (for context):\n\n"+noSimilarIncidents+"\n\n"+promptFooter)
	assert.NotContains(t, prompt, "Incident 1")
}
