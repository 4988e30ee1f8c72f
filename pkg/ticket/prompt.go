package ticket

import (
	"fmt"
	"strings"

	"github.com/porter-dev/ams-assistant/api/server/types"
)

const (
	promptHeader = "Analyze the following high-priority AMS ticket and provide recommended actions, considering the context of past similar incidents."

	noSimilarIncidents = "No directly similar past incidents found in the knowledge base."

	promptFooter = "Based on this information, provide a concise list of recommended immediate actions and a brief explanation for each. Also, suggest any potential long-term solutions or preventive measures."
)

// BuildPrompt renders the single user message sent to the text-generation
// service for ticket t.
func BuildPrompt(t *types.Ticket, incidents []*types.PastIncident) string {
	var b strings.Builder

	b.WriteString(promptHeader)
	b.WriteString("\n\nCurrent High-Priority Ticket:\n")
	fmt.Fprintf(&b, "ID: %s\n", t.ID)
	fmt.Fprintf(&b, "Title: %s\n", t.Title)
	fmt.Fprintf(&b, "Description: %s\n", t.Description)
	fmt.Fprintf(&b, "Severity: %s\n", t.Severity)
	fmt.Fprintf(&b, "Affected Service: %s\n", t.AffectedService)
	fmt.Fprintf(&b, "Status: %s\n", t.Status)
	b.WriteString("\nPast Similar Incidents (for context):\n")

	if len(incidents) > 0 {
		for i, inc := range incidents {
			fmt.Fprintf(&b, "\nIncident %d (ID: %s):\n", i+1, inc.ID)
			fmt.Fprintf(&b, "Summary: %s\n", inc.Summary)
			fmt.Fprintf(&b, "Past Recommended Actions: %s\n", inc.JoinedActions())
		}
	} else {
		b.WriteString("\n")
		b.WriteString(noSimilarIncidents)
	}

	b.WriteString("\n\n")
	b.WriteString(promptFooter)

	return b.String()
}
