package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joeshaw/envdecode"
	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/internal/envconf"
	"github.com/porter-dev/ams-assistant/internal/logger"
	"github.com/porter-dev/ams-assistant/internal/utils"
	"github.com/porter-dev/ams-assistant/pkg/ticket"
	flag "github.com/spf13/pflag"
)

func main() {
	envDecoderConf := &envconf.EnvDecoderConf{}

	if err := envdecode.StrictDecode(envDecoderConf); err != nil {
		logger.NewErrorConsole(true).Fatal().Caller().Msgf("could not decode env conf: %v", err)
		os.Exit(1)
	}

	l := logger.NewErrorConsole(envDecoderConf.Debug)

	var analyze string
	var healthcheck bool
	var alerts bool
	var instance string
	var asJSON bool

	flag.StringVarP(&analyze, "analyze", "a", "", "ticket ID or title keywords to analyze")
	flag.BoolVar(&healthcheck, "healthcheck", false, "run a health check over all production instances")
	flag.BoolVar(&alerts, "alerts", false, "list log alerts")
	flag.StringVar(&instance, "instance", "", "only list alerts for this instance")
	flag.BoolVar(&asJSON, "json", false, "print results as JSON")

	flag.Parse()

	if analyze == "" && !healthcheck && !alerts {
		l.Fatal().Caller().Msg("one of --analyze, --healthcheck or --alerts must be provided")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := config.NewRepository(ctx, &envDecoderConf.DBConf, l)

	if err != nil {
		l.Fatal().Caller().Msgf("repository setup failed: %v", err)
	}

	generator, err := config.NewGenerator(ctx, &envDecoderConf.GeneratorConf, l)

	if err != nil {
		l.Fatal().Caller().Msgf("text generator setup failed: %v", err)
	}

	conf, err := config.GetConfig(envDecoderConf, repo, generator, l)

	if err != nil {
		l.Fatal().Caller().Msgf("config loading failed: %v", err)
	}

	out := os.Stdout

	if analyze != "" {
		analysis, err := conf.Recommender.Analyze(ctx, "", analyze)

		if errors.Is(err, ticket.ErrTicketNotFound) {
			fmt.Fprintln(out, "Ticket not found. Please try a different ID or description.")
			os.Exit(1)
		} else if err != nil {
			l.Fatal().Caller().Msgf("could not analyze ticket: %v", err)
		}

		writeResult(out, asJSON, analysis, printAnalysis)
	}

	if healthcheck {
		report, err := conf.HealthChecker.Run(ctx)

		if err != nil {
			l.Fatal().Caller().Msgf("health check failed: %v", err)
		}

		writeResult(out, asJSON, report, printHealthReport)
	}

	if alerts {
		filter := &utils.ListLogAlertsFilter{}

		if instance != "" {
			filter.InstanceID = &instance
		}

		res, err := conf.Repository.LogAlert.ListLogAlerts(ctx, filter)

		if err != nil {
			l.Fatal().Caller().Msgf("could not list alerts: %v", err)
		}

		writeResult(out, asJSON, res, printAlerts)
	}
}

func writeResult[T any](w io.Writer, asJSON bool, v T, human func(io.Writer, T)) {
	if !asJSON {
		human(w, v)
		return
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

func printAnalysis(w io.Writer, a *types.TicketAnalysis) {
	t := a.Ticket

	fmt.Fprintf(w, "Ticket Details: %s\n", t.ID)
	fmt.Fprintf(w, "  Title: %s\n", t.Title)
	fmt.Fprintf(w, "  Priority: %s  Severity: %s  Status: %s\n", t.Priority, t.Severity, t.Status)
	fmt.Fprintf(w, "  Affected Service: %s\n", t.AffectedService)

	if len(a.SimilarIncidents) > 0 {
		fmt.Fprintln(w, "\nSimilar Past Incidents Found:")

		for _, inc := range a.SimilarIncidents {
			fmt.Fprintf(w, "  %s: %s\n", inc.ID, inc.Summary)
		}
	}

	fmt.Fprintf(w, "\nAI Agent's Recommended Actions:\n%s\n", a.Recommendation)
}

func printHealthReport(w io.Writer, r *types.HealthReport) {
	for _, res := range r.Results {
		fmt.Fprintf(w, "%-16s %s\n", res.InstanceID, res.Status)

		for _, issue := range res.Issues {
			fmt.Fprintf(w, "  - %s\n", issue)
		}
	}

	if len(r.TicketRecommendations) > 0 {
		fmt.Fprintf(w, "\nSupport Ticket Recommendations:\n  %s\n", strings.Join(r.TicketRecommendations, "\n  "))
	}
}

func printAlerts(w io.Writer, alerts []*types.LogAlert) {
	if len(alerts) == 0 {
		fmt.Fprintln(w, "No critical alerts detected at this time.")
		return
	}

	for _, a := range alerts {
		fmt.Fprintf(w, "%s  %-8s %-16s %s\n", a.Timestamp.Format("2006-01-02 15:04:05"), a.Type, a.InstanceID, a.Message)
	}
}
