package cli

import (
	"github.com/alexanderramin/yatri/internal/repository"
	"github.com/alexanderramin/yatri/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and repositories used by CLI commands.
type App struct {
	Planner    service.PlannerService
	Activities repository.ActivityRepo
	Events     repository.EventRepo

	// IsInteractive reports whether stdin is a terminal; it gates the wizard.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "yatri" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "yatri",
		Short: "Budget-aware trip itinerary planner",
	}

	root.AddCommand(
		newPlanCmd(app),
		newSeedCmd(app),
	)

	return root
}
