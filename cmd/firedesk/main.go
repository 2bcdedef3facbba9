// Command firedesk is an offline estimation helper: it prices, schedules and
// plans projects straight from the built-in template catalog without a
// running server.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"

	"github.com/firedeskhq/firedesk/internal/budget"
	"github.com/firedeskhq/firedesk/internal/planning"
	"github.com/firedeskhq/firedesk/internal/pricing"
	"github.com/firedeskhq/firedesk/internal/template"
	"github.com/firedeskhq/firedesk/internal/timeline"
)

var (
	app = kingpin.New("firedesk", "Fire protection project estimation toolkit")

	templatesCmd = app.Command("templates", "List the built-in project templates")

	quoteCmd        = app.Command("quote", "Generate a quote for a template")
	quoteTemplateID = quoteCmd.Arg("template-id", "Template ID").Required().String()
	quoteComplexity = quoteCmd.Flag("complexity", "Complexity tier (standard, complex, highly-complex)").Default("standard").String()

	timelineCmd        = app.Command("timeline", "Generate a task timeline for a template")
	timelineTemplateID = timelineCmd.Arg("template-id", "Template ID").Required().String()
	timelineStart      = timelineCmd.Flag("start", "Start date (YYYY-MM-DD)").String()

	planCmd  = app.Command("plan", "Show the standard phase plan for a project type")
	planType = planCmd.Arg("type", "Project type (e.g. sprinkler_system)").Required().String()

	savingsCmd  = app.Command("savings", "List cost saving suggestions for a project type")
	savingsType = savingsCmd.Arg("type", "Project type (e.g. sprinkler_system, fire_alarm)").Required().String()

	subsCmd    = app.Command("subs", "Suggest subcontractors for required skills")
	subsSkills = subsCmd.Arg("skill", "Required skill, e.g. 'sprinkler'").Strings()
)

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case templatesCmd.FullCommand():
		listTemplates()
	case quoteCmd.FullCommand():
		printQuote(*quoteTemplateID, *quoteComplexity)
	case timelineCmd.FullCommand():
		printTimeline(*timelineTemplateID, *timelineStart)
	case planCmd.FullCommand():
		printPlan(*planType)
	case savingsCmd.FullCommand():
		printSavings(*savingsType)
	case subsCmd.FullCommand():
		printSubcontractors(*subsSkills)
	}
}

func mustFindTemplate(id string) template.ProjectTemplate {
	tmpl := template.Find(id)
	if tmpl == nil {
		fmt.Fprintf(os.Stderr, "unknown template %q, run 'firedesk templates' for the list\n", id)
		os.Exit(1)
	}
	return *tmpl
}

func listTemplates() {
	bold := color.New(color.Bold)
	for _, tmpl := range template.Catalog() {
		bold.Printf("%s\n", tmpl.ID)
		fmt.Printf("  %s (%s)\n", tmpl.Name, tmpl.Category)
		fmt.Printf("  %g hours, R%.0f, %d default tasks\n", tmpl.EstimatedHours, tmpl.EstimatedCost, len(tmpl.DefaultTasks))
	}
}

func printQuote(id, complexity string) {
	tmpl := mustFindTemplate(id)
	fmt.Print(pricing.GenerateQuote(tmpl, time.Now()))

	if c := pricing.Complexity(complexity); c != pricing.ComplexityStandard {
		est := pricing.EstimateProjectCost(tmpl, c)
		fmt.Printf("\nAt %s complexity the total rises to R%.2f.\n", c, est.TotalCost)
	}
}

func printTimeline(id, start string) {
	tmpl := mustFindTemplate(id)

	from := time.Now()
	if start != "" {
		parsed, err := time.Parse("2006-01-02", start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid start date %q: %v\n", start, err)
			os.Exit(1)
		}
		from = parsed
	}

	bold := color.New(color.Bold)
	for _, entry := range timeline.Generate(tmpl, from) {
		bold.Printf("%-35s", entry.TaskName)
		fmt.Printf(" %s -> %s  (%gh, %s)\n",
			entry.Start.Format("2006-01-02 15:04"),
			entry.End.Format("2006-01-02 15:04"),
			entry.DurationHours,
			entry.Phase,
		)
	}
}

func printPlan(projectType string) {
	phases := planning.PhasesForProjectType(projectType)
	if len(phases) == 0 {
		fmt.Fprintf(os.Stderr, "no phase plan available for project type %q\n", projectType)
		os.Exit(1)
	}

	bold := color.New(color.Bold)
	var total float64
	for _, phase := range phases {
		bold.Printf("Phase %s: %s\n", phase.ID, phase.Name)
		fmt.Printf("  %s\n", phase.Description)
		if len(phase.Dependencies) > 0 {
			fmt.Printf("  depends on phase %s\n", strings.Join(phase.Dependencies, ", "))
		}
		for _, t := range phase.Tasks {
			fmt.Printf("  - %-35s %3gh  R%.0f\n", t.Name, t.EstimatedHours, t.EstimatedCost)
		}
		fmt.Printf("  phase total: R%.0f\n", phase.EstimatedCost)
		total += phase.EstimatedCost
	}
	bold.Printf("Project total: R%.0f\n", total)
}

func printSavings(projectType string) {
	suggestions := budget.SuggestCostSavings(projectType)
	if len(suggestions) == 0 {
		fmt.Fprintf(os.Stderr, "no suggestions for project type %q\n", projectType)
		os.Exit(1)
	}
	for _, s := range suggestions {
		fmt.Printf("- %s\n", s)
	}
}

func printSubcontractors(skills []string) {
	subs := template.DefaultSubcontractors()
	if len(skills) > 0 {
		subs = template.SuggestSubcontractors(skills, subs)
	}
	if len(subs) == 0 {
		fmt.Println("no matching subcontractors")
		return
	}
	for _, sub := range subs {
		fmt.Printf("%-20s %-30s R%.0f/h\n", sub.Name, sub.Trade, sub.HourlyRate)
	}
}
