package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/newsynth"
	"github.com/fwojciec/newsynth/research"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
)

const ruleWidth = 60

var rule = strings.Repeat("=", ruleWidth)

func printBanner(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, titleStyle.Render("Newsynth - AI Research Assistant"))
	fmt.Fprintln(w, rule)
}

// runTopic runs the agent for topic and prints its report.
func runTopic(deps *Dependencies, topic string) *research.Report {
	printBanner(deps.Stdout)
	fmt.Fprintf(deps.Stdout, "Searching for news about: %s\n", topic)

	report := deps.Agent.Run(deps.Ctx, topic)
	printReport(deps.Stdout, report)
	return report
}

// printReport writes the search status, summary and sources of report.
func printReport(w io.Writer, report *research.Report) {
	if report.SearchErr != nil {
		fmt.Fprintln(w, errorStyle.Render("Error searching for news: "+report.SearchErr.Error()))
	}
	if len(report.Articles) == 0 {
		fmt.Fprintln(w, errorStyle.Render("No articles found for this topic."))
		return
	}

	fmt.Fprintln(w, statusStyle.Render(fmt.Sprintf("Found %d articles", len(report.Articles))))

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, titleStyle.Render("NEWS SUMMARY: "+strings.ToUpper(report.Topic)))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, report.Summary)
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Sources:"))
	fmt.Fprint(w, newsynth.FormatSources(report.Articles))
}
