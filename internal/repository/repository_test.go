package repository

import (
	"context"
	"testing"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/internal/models"
	"github.com/porter-dev/ams-assistant/internal/seed"
	"github.com/porter-dev/ams-assistant/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTickets(t *testing.T) {
	tester := &tester{
		dbFileName: "./ticket_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	tickets, err := tester.repo.Ticket.ListTickets(context.Background())
	require.NoError(t, err)

	assert.Equal(t, seed.Tickets(), tickets, "tickets should round-trip through the database in seed order")
}

func TestListTicketsDescending(t *testing.T) {
	tester := &tester{
		dbFileName: "./ticket_desc_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	tickets, err := tester.repo.Ticket.ListTickets(
		context.Background(),
		utils.WithOrder(utils.OrderDesc),
		utils.WithLimit(1),
	)
	require.NoError(t, err)

	require.Len(t, tickets, 1)
	assert.Equal(t, "INC003", tickets[0].ID)
}

func TestListPastIncidents(t *testing.T) {
	tester := &tester{
		dbFileName: "./past_incident_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	incidents, err := tester.repo.PastIncident.ListPastIncidents(context.Background())
	require.NoError(t, err)

	assert.Equal(t, seed.PastIncidents(), incidents, "keywords and actions should keep their order")
}

func TestListInstances(t *testing.T) {
	tester := &tester{
		dbFileName: "./instance_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	instances, err := tester.repo.Instance.ListInstances(context.Background())
	require.NoError(t, err)

	assert.Equal(t, seed.Instances(), instances)
}

func TestListLogAlertsWithFilter(t *testing.T) {
	tester := &tester{
		dbFileName: "./log_alert_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	alerts, err := tester.repo.LogAlert.ListLogAlerts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, seed.LogAlerts(), alerts)

	instance := "Prod-US-East-1"

	alerts, err = tester.repo.LogAlert.ListLogAlerts(context.Background(), &utils.ListLogAlertsFilter{
		InstanceID: &instance,
	})
	require.NoError(t, err)

	require.Len(t, alerts, 2)
	assert.Equal(t, "LCE001", alerts[0].ID)
	assert.Equal(t, "LCE003", alerts[1].ID)

	warning := types.AlertTypeWarning

	alerts, err = tester.repo.LogAlert.ListLogAlerts(context.Background(), &utils.ListLogAlertsFilter{
		InstanceID: &instance,
		Type:       &warning,
	})
	require.NoError(t, err)

	require.Len(t, alerts, 1)
	assert.Equal(t, "LCE003", alerts[0].ID)
}

func TestSeedIfEmptyDoesNotDuplicate(t *testing.T) {
	tester := &tester{
		dbFileName: "./seed_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	err := SeedIfEmpty(context.Background(), tester.db, seed.Default())
	require.NoError(t, err)

	var count int64

	err = tester.db.Model(&models.Ticket{}).Count(&count).Error
	require.NoError(t, err)

	assert.EqualValues(t, len(seed.Tickets()), count)
}
