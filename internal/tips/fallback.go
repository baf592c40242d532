package tips

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/yatri/internal/domain"
)

// categoryTip is the fixed per-category advice used by the fallback.
var categoryTip = map[domain.Category]string{
	domain.CategoryBeach:         "carry sunscreen and reach beaches before noon for calmer water",
	domain.CategoryHistorical:    "hire a local guide at the entrance, the stories beat the plaques",
	domain.CategoryReligious:     "dress modestly and check closing hours for afternoon rituals",
	domain.CategoryNature:        "wear closed shoes and keep some buffer for trail time",
	domain.CategoryAdventure:     "book adventure slots in advance and keep ID proof handy",
	domain.CategoryEntertainment: "evening shows fill up fast, reserve ahead",
	domain.CategoryMarket:        "carry cash for the markets and bargain politely",
	domain.CategoryOther:         "keep the schedule loose and ask locals for the best nearby stop",
}

// FallbackTip composes a deterministic tip from the day's first category and
// the weather note. Same input, same tip.
func FallbackTip(req TipRequest) string {
	advice := categoryTip[domain.CategoryOther]
	if len(req.Categories) > 0 {
		if t, ok := categoryTip[req.Categories[0]]; ok {
			advice = t
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Day in %s: %s.", req.Destination, advice)
	if req.WeatherNote != "" {
		b.WriteString(" " + req.WeatherNote + ".")
	}
	return b.String()
}
