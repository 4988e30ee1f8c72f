// Package seed holds the reference data the dashboard ships with. Every
// accessor returns fresh copies, so callers may not mutate the seed.
package seed

import (
	"time"

	"github.com/porter-dev/ams-assistant/api/server/types"
)

// Data groups every seeded collection.
type Data struct {
	Tickets       []*types.Ticket
	PastIncidents []*types.PastIncident
	Instances     []*types.Instance
	LogAlerts     []*types.LogAlert
}

func Default() *Data {
	return &Data{
		Tickets:       Tickets(),
		PastIncidents: PastIncidents(),
		Instances:     Instances(),
		LogAlerts:     LogAlerts(),
	}
}

func Tickets() []*types.Ticket {
	return []*types.Ticket{
		{
			ID:              "INC001",
			Priority:        types.TicketPriorityHigh,
			Title:           "Payment Gateway Integration Failure",
			Description:     "Customers are unable to complete purchases due to a payment gateway integration failure. Orders are stuck in pending status. Impact: High revenue loss.",
			Status:          types.TicketStatusOpen,
			AssignedTo:      "John Doe",
			CreatedAt:       time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC),
			Severity:        types.SeverityCritical,
			AffectedService: "Checkout Service",
		},
		{
			ID:              "INC002",
			Priority:        types.TicketPriorityHigh,
			Title:           "User Login Errors on Production",
			Description:     `Users are reporting "Invalid Credentials" errors even with correct passwords. Affects a significant portion of the user base. Impact: Customer dissatisfaction, potential loss of active users.`,
			Status:          types.TicketStatusOpen,
			AssignedTo:      "Jane Smith",
			CreatedAt:       time.Date(2025, 7, 8, 11, 30, 0, 0, time.UTC),
			Severity:        types.SeverityHigh,
			AffectedService: "Authentication Service",
		},
		{
			ID:              "INC003",
			Priority:        types.TicketPriorityMedium,
			Title:           "Report Generation Timeout",
			Description:     "Daily sales reports are timing out during generation. Affects business intelligence dashboards. Impact: Delayed decision-making.",
			Status:          types.TicketStatusOpen,
			AssignedTo:      "Team A",
			CreatedAt:       time.Date(2025, 7, 7, 15, 0, 0, 0, time.UTC),
			Severity:        types.SeverityMedium,
			AffectedService: "Reporting Service",
		},
	}
}

func PastIncidents() []*types.PastIncident {
	return []*types.PastIncident{
		{
			ID:       "PI001",
			Keywords: []string{"payment gateway", "integration failure", "checkout", "pending orders"},
			Summary:  "Past incident where third-party payment gateway API rate limits were exceeded, causing transaction failures. Resolution involved increasing rate limit, implementing retry logic, and monitoring API usage.",
			RecommendedActions: []string{
				"Check payment gateway API logs for specific error codes.",
				"Verify API credentials and network connectivity to the payment gateway.",
				"Review recent code deployments related to payment integration.",
				"Implement circuit breaker pattern for external API calls.",
				"Escalate to payment gateway provider if external issue confirmed.",
			},
		},
		{
			ID:       "PI002",
			Keywords: []string{"login errors", "authentication", "invalid credentials", "user access"},
			Summary:  "Previous issue with authentication service due to a recent patch update causing session token invalidation. Resolution involved rolling back the patch and applying a hotfix.",
			RecommendedActions: []string{
				"Check authentication service logs for specific error messages (e.g., token validation failures).",
				"Verify recent deployments or configuration changes to the authentication service.",
				"Inspect database for user account lockouts or corruption.",
				"Consider a phased rollback if a recent deployment is suspected.",
				"Monitor user login success rates in real-time.",
			},
		},
		{
			ID:       "PI03",
			Keywords: []string{"report generation", "timeout", "BI", "dashboard"},
			Summary:  "Report generation timeouts were previously caused by large data queries without proper indexing. Resolution involved optimizing database queries and adding necessary indexes.",
			RecommendedActions: []string{
				"Analyze database query performance for the affected reports.",
				"Check database server load and resource utilization.",
				"Review data volume for the reports and consider pagination or aggregation strategies.",
				"Optimize SQL queries and ensure proper indexing.",
			},
		},
	}
}

func Instances() []*types.Instance {
	return []*types.Instance{
		{
			ID:       "Prod-US-East-1",
			Status:   types.InstanceStatusHealthy,
			Jobs:     []string{"OrderSync", "InventoryUpdate"},
			Services: []string{"Frontend", "Backend", "Database"},
			Flows:    []string{"Checkout", "Login"},
		},
		{
			ID:       "Prod-EU-West-1",
			Status:   types.InstanceStatusDegraded,
			Jobs:     []string{"OrderSync"},
			Services: []string{"Frontend", "Backend"},
			Flows:    []string{"Checkout", "Login"},
		},
		{
			ID:       "Prod-Asia-SE-1",
			Status:   types.InstanceStatusHealthy,
			Jobs:     []string{"OrderSync", "InventoryUpdate"},
			Services: []string{"Frontend", "Backend", "Database"},
			Flows:    []string{"Checkout", "Login"},
		},
	}
}

func LogAlerts() []*types.LogAlert {
	return []*types.LogAlert{
		{
			ID:         "LCE001",
			InstanceID: "Prod-US-East-1",
			Type:       types.AlertTypeCritical,
			Message:    "Database connection pool exhaustion on Backend Service.",
			Timestamp:  time.Date(2025, 7, 8, 12, 5, 0, 0, time.UTC),
		},
		{
			ID:         "LCE002",
			InstanceID: "Prod-EU-West-1",
			Type:       types.AlertTypeError,
			Message:    "Failed to process 100+ orders in OrderSync job.",
			Timestamp:  time.Date(2025, 7, 8, 12, 15, 0, 0, time.UTC),
		},
		{
			ID:         "LCE003",
			InstanceID: "Prod-US-East-1",
			Type:       types.AlertTypeWarning,
			Message:    "High CPU utilization on Frontend Service.",
			Timestamp:  time.Date(2025, 7, 8, 12, 20, 0, 0, time.UTC),
		},
	}
}
