package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"git.fiblab.net/sim/tripplanner/router"
	"git.fiblab.net/sim/tripplanner/router/algo"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)
	legStyle     = lipgloss.NewStyle().MarginLeft(2)
	modeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Width(20)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	metricsStyle = lipgloss.NewStyle().Bold(true).MarginLeft(2)
	rejectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// writePlan 打印排序后的行程：每条边一行，随后为用时、费用与麻烦度
func writePlan(w io.Writer, q router.Query, plan *router.Plan) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf(
		"%s -> %s: %d trips by %s (%s), %d paths explored",
		q.Origin, q.Destination, len(plan.Trips), plan.Strategy, q.Sort, plan.Explored,
	)))
	for i, trip := range plan.Trips {
		fmt.Fprintln(w, formatTrip(i+1, q.Origin, trip))
	}
	if len(plan.Rejections) > 0 {
		reasons := lo.Keys(plan.Rejections)
		sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })
		parts := lo.Map(reasons, func(r algo.Reason, _ int) string {
			return fmt.Sprintf("%s=%d", r, plan.Rejections[r])
		})
		fmt.Fprintln(w, rejectStyle.Render("rejected: "+strings.Join(parts, ", ")))
	}
}

func formatTrip(n int, origin algo.Location, trip algo.Trip) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d\n", n)
	locs := trip.Path.Locations(origin)
	for i, e := range trip.Path {
		line := modeStyle.Render(e.Mode().String()) +
			fmt.Sprintf("%s -> %s ", locs[i], e.To()) +
			subtleStyle.Render(fmt.Sprintf("(travel %d, wait %d, cost %.2f, hassle %d)",
				e.TravelTime(), e.WaitTime(), e.Cost(), e.HassleUnits()))
		b.WriteString(legStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(metricsStyle.Render(fmt.Sprintf("Time: %d  Cost: %.2f  Hassle Units: %d",
		trip.Metrics.Time, trip.Metrics.Cost, trip.Metrics.HassleUnits)))
	b.WriteString("\n")
	return b.String()
}
