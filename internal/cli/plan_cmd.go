package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/yatri/internal/cli/formatter"
	"github.com/alexanderramin/yatri/internal/contract"
	"github.com/alexanderramin/yatri/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		destination string
		budget      int64
		party       int
		days        int
		archetype   string
		interests   []string
		start       string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a day-wise itinerary within budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			trip := domain.TripParams{
				Destination:     destination,
				BudgetPerPerson: domain.Money(budget),
				PartySize:       party,
				Archetype:       domain.Archetype(archetype),
				Interests:       interests,
				DurationDays:    days,
			}
			if start != "" {
				t, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("parsing --start: %w", err)
				}
				trip.StartDate = t
			} else {
				trip.StartDate = time.Now().AddDate(0, 0, 1)
			}

			// Launch the wizard when no destination was supplied
			// and we are attached to a terminal.
			if destination == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--destination is required in non-interactive mode")
				}
				if err := runPlanWizard(&trip); err != nil {
					return err
				}
			}

			req := contract.NewPlanRequest(trip)
			resp, err := app.Planner.Plan(context.Background(), req)
			if err != nil {
				return err
			}

			if asJSON {
				out, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding response: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			for _, w := range resp.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("warning: "+w))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItinerary(&resp.Itinerary))
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "Destination city")
	cmd.Flags().Int64Var(&budget, "budget", 5000, "Budget per person in rupees")
	cmd.Flags().IntVar(&party, "party", 1, "Number of travellers")
	cmd.Flags().IntVar(&days, "days", 3, "Trip duration in days")
	cmd.Flags().StringVar(&archetype, "archetype", "solo", "Trip archetype (family, solo, couple, friends, adventure, business)")
	cmd.Flags().StringSliceVar(&interests, "interests", nil, "Interest tags, e.g. beaches,nightlife")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default tomorrow)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the full plan response as JSON")

	return cmd
}
