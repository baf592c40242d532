package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/yatri/internal/cli/formatter"
	"github.com/alexanderramin/yatri/internal/domain"
	"github.com/spf13/cobra"
)

// seedFile is the on-disk shape of a destination data file.
type seedFile struct {
	Destination string            `json:"destination"`
	Activities  []domain.Activity `json:"activities"`
	Events      []domain.Event    `json:"events"`
}

func newSeedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed <file.json>",
		Short: "Load destination activities and events from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading seed file: %w", err)
			}

			var sf seedFile
			if err := json.Unmarshal(raw, &sf); err != nil {
				return fmt.Errorf("parsing seed file: %w", err)
			}
			if sf.Destination == "" {
				return fmt.Errorf("seed file is missing a destination")
			}

			ctx := context.Background()
			if err := app.Activities.Seed(ctx, sf.Destination, sf.Activities); err != nil {
				return fmt.Errorf("seeding activities: %w", err)
			}
			if err := app.Events.Seed(ctx, sf.Destination, sf.Events); err != nil {
				return fmt.Errorf("seeding events: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s: %s activities, %s events\n",
				formatter.Bold(sf.Destination),
				formatter.Bold(fmt.Sprintf("%d", len(sf.Activities))),
				formatter.Bold(fmt.Sprintf("%d", len(sf.Events))))
			return nil
		},
	}

	return cmd
}
