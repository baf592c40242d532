package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/yatri/internal/domain"
)

// Rupees renders a money amount with the rupee sign.
func Rupees(m domain.Money) string {
	return fmt.Sprintf("₹%d", int64(m))
}

// FormatItinerary renders a full itinerary: summary box, one table per day,
// and alternatives when the plan runs over budget.
func FormatItinerary(it *domain.Itinerary) string {
	var b strings.Builder

	b.WriteString(formatSummary(it))
	b.WriteString("\n\n")

	for i := range it.Days {
		b.WriteString(formatDay(&it.Days[i]))
		b.WriteString("\n")
	}

	if len(it.Alternatives) > 0 {
		b.WriteString(formatAlternatives(it.Alternatives))
		b.WriteString("\n")
	}

	b.WriteString(formatScore(it.Score))
	b.WriteString("\n")

	return b.String()
}

func formatSummary(it *domain.Itinerary) string {
	lines := []string{
		fmt.Sprintf("%s  %s", Bold(it.Destination), BudgetIndicator(it.BudgetStatus)),
		"",
		fmt.Sprintf("Total cost   %s", Bold(Rupees(it.TotalCost))),
		fmt.Sprintf("Budget       %s", Rupees(it.BudgetLimit)),
	}
	if it.BudgetStatus == domain.OverBudget {
		over := it.TotalCost - it.BudgetLimit
		lines = append(lines, BudgetColor(it.BudgetStatus).Render(fmt.Sprintf("Over by      ₹%d", int64(over))))
	}
	return RenderBox(fmt.Sprintf("%d-day itinerary", len(it.Days)), strings.Join(lines, "\n"))
}

func formatDay(day *domain.DayPlan) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Day %d — %s", day.DayIndex, day.Date.Format("Mon, 02 Jan"))))
	b.WriteString("\n")

	headers := []string{"Time", "Slot", "Activity", "Category", "Cost", "Travel"}
	rows := make([][]string, 0, len(day.Stops))
	for _, stop := range day.Stops {
		travel := ""
		if stop.TravelMin > 0 {
			travel = fmt.Sprintf("%d min (%.1f km)", stop.TravelMin, stop.TravelKm)
		}
		name := stop.Name
		if stop.Kind == domain.StopEvent {
			name = StylePurple.Render(name)
		}
		rows = append(rows, []string{
			stop.StartTime.Format("15:04"),
			string(stop.Slot),
			name,
			Dim(string(stop.Category)),
			Rupees(stop.Cost),
			Dim(travel),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString(fmt.Sprintf("Day cost %s", Bold(Rupees(day.EstimatedCost))))
	if day.TransportCost > 0 {
		b.WriteString(Dim(fmt.Sprintf("  (incl. ₹%d transport)", int64(day.TransportCost))))
	}
	b.WriteString("\n")
	if day.WeatherNote != "" {
		b.WriteString(Dim(day.WeatherNote))
		b.WriteString("\n")
	}
	if day.Tip != "" {
		b.WriteString(StyleBlue.Render("Tip: " + day.Tip))
		b.WriteString("\n")
	}

	return b.String()
}

func formatAlternatives(alts []domain.Alternative) string {
	var b strings.Builder

	b.WriteString(Header("Budget alternatives"))
	b.WriteString("\n")

	headers := []string{"Strategy", "Description", "Total", "Savings"}
	rows := make([][]string, 0, len(alts))
	for _, alt := range alts {
		rows = append(rows, []string{
			string(alt.Strategy),
			alt.Description,
			Rupees(alt.TotalCost),
			StyleGreen.Render(Rupees(alt.Savings)),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return b.String()
}

func formatScore(score domain.ScoreBreakdown) string {
	parts := []string{
		fmt.Sprintf("budget %.0f", score.BudgetAdherence),
		fmt.Sprintf("variety %.0f", score.Variety),
		fmt.Sprintf("preference %.0f", score.Preference),
		fmt.Sprintf("weather %.0f", score.Weather),
	}
	return fmt.Sprintf("%s %s  %s",
		Bold(fmt.Sprintf("Score %.0f/100", score.Total)),
		Dim("·"),
		Dim(strings.Join(parts, " · ")))
}
