package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/yatri/internal/cli/formatter"
	"github.com/alexanderramin/yatri/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// yatriHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func yatriHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runPlanWizard walks the user through the trip parameters and fills them
// into trip. Values already present become the wizard defaults.
func runPlanWizard(trip *domain.TripParams) error {
	budget := strconv.FormatInt(int64(trip.BudgetPerPerson), 10)
	party := strconv.Itoa(trip.PartySize)
	days := strconv.Itoa(trip.DurationDays)
	start := trip.StartDate.Format("2006-01-02")
	interests := strings.Join(trip.Interests, ", ")
	archetype := string(trip.Archetype)

	archOptions := make([]huh.Option[string], 0, len(domain.ValidArchetypes))
	for _, a := range []domain.Archetype{
		domain.TripFamily, domain.TripSolo, domain.TripCouple,
		domain.TripFriends, domain.TripAdventure, domain.TripBusiness,
	} {
		archOptions = append(archOptions, huh.NewOption(string(a), string(a)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where To?").
				Placeholder("Goa").
				Value(&trip.Destination).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("destination is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Budget Per Person (₹)").
				Value(&budget).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Party Size").
				Value(&party).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("How Many Days?").
				Value(&days).
				Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Trip Style").
				Options(archOptions...).
				Value(&archetype),
			huh.NewInput().
				Title("Interests").
				Description("Comma-separated, e.g. beaches, nightlife, local cuisine").
				Value(&interests),
			huh.NewInput().
				Title("Start Date").
				Description("YYYY-MM-DD").
				Value(&start).
				Validate(func(s string) error {
					_, err := time.Parse("2006-01-02", s)
					return err
				}),
		),
	).WithTheme(yatriHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	b, _ := strconv.ParseInt(budget, 10, 64)
	trip.BudgetPerPerson = domain.Money(b)
	trip.PartySize, _ = strconv.Atoi(party)
	trip.DurationDays, _ = strconv.Atoi(days)
	trip.Archetype = domain.Archetype(archetype)
	trip.StartDate, _ = time.Parse("2006-01-02", start)

	trip.Interests = trip.Interests[:0]
	for _, tag := range strings.Split(interests, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			trip.Interests = append(trip.Interests, tag)
		}
	}

	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}
