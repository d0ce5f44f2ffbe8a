package console

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
	"github.com/devpulse-team/devpulse/pkg/github"
	"github.com/devpulse-team/devpulse/pkg/jira"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	sectionColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

func printBanner() {
	headerColor.Println("═══════════════════════════════════════")
	headerColor.Println("  DevPulse - team development console")
	headerColor.Println("═══════════════════════════════════════")
}

func printMenu(options []menuOption) {
	fmt.Println()
	sectionColor.Println("MENU")
	for i, opt := range options {
		fmt.Printf("  %d. %s\n", i+1, opt.label)
	}
	fmt.Println("  0. Exit")
}

func printInfo(msg string) {
	infoColor.Printf("ℹ️  %s\n", msg)
}

func printWarn(msg string) {
	warnColor.Printf("⚠️  %s\n", msg)
}

func printError(msg string, err error) {
	errorColor.Printf("❌ %s: %v\n", msg, err)
}

func printAnalysis(r *entities.MeetingAnalysisResult) {
	fmt.Println()
	sectionColor.Printf("📋 ANALYSIS - %s\n", r.Transcript.Title)
	dimColor.Printf("confidence %d/100, quality %d/100, sentiment %s, took %s\n",
		r.ConfidenceScore, r.TranscriptQuality, r.Sentiment, r.ProcessingDuration.Round(time.Millisecond))

	if r.Summary != "" {
		fmt.Printf("\n%s\n", r.Summary)
	}

	if len(r.Participants) > 0 {
		sectionColor.Println("\nPARTICIPANTS")
		for _, p := range r.Participants {
			role := ""
			if p.IsOrganizer {
				role += " 🎤 organizer"
			}
			if p.IsPresenter {
				role += " 🖥 presenter"
			}
			fmt.Printf("  • %s (%d turns, %s)%s\n", p.Name, p.SpeakingTurns, p.Level, role)
		}
	}

	if len(r.KeyTopics) > 0 {
		sectionColor.Println("\nKEY TOPICS")
		for _, t := range r.KeyTopics {
			fmt.Printf("  • %s\n", t)
		}
	}

	if len(r.Decisions) > 0 {
		sectionColor.Println("\nDECISIONS")
		for _, d := range r.Decisions {
			fmt.Printf("  ✔ %s\n", d)
		}
	}

	if len(r.ActionItems) > 0 {
		sectionColor.Println("\nACTION ITEMS")
		for _, item := range r.ActionItems {
			assignee := item.AssignedTo
			if assignee == "" {
				assignee = "unassigned"
			}
			fmt.Printf("  ☐ [%s] %s → %s\n", item.Priority, item.Description, assignee)
		}
	}

	if len(r.OpenQuestions) > 0 {
		sectionColor.Println("\nOPEN QUESTIONS")
		for _, q := range r.OpenQuestions {
			fmt.Printf("  ? %s\n", q)
		}
	}

	if len(r.Quotes) > 0 {
		sectionColor.Println("\nQUOTES")
		for _, q := range r.Quotes {
			fmt.Printf("  “%s”\n", q)
		}
	}

	if len(r.Warnings) > 0 {
		warnColor.Println("\nWARNINGS")
		for _, w := range r.Warnings {
			warnColor.Printf("  ⚠ %s\n", w)
		}
	}
}

func printCommits(commits []github.Commit) {
	sectionColor.Println("\nRECENT COMMITS")
	for _, c := range commits {
		sha := c.SHA
		if len(sha) > 8 {
			sha = sha[:8]
		}
		fmt.Printf("  %s %s (%s)\n", sha, firstLine(c.Message), c.Author)
	}
}

func printTickets(tickets []*jira.Ticket) {
	if len(tickets) == 0 {
		printInfo("No tickets were created")
		return
	}
	sectionColor.Println("\nCREATED TICKETS")
	for _, t := range tickets {
		fmt.Printf("  🎫 %s - %s\n     %s\n", t.Key, t.Summary, t.URL)
	}
}

func printCorrelation(result *entities.CrossReferenceResult) {
	if result == nil || len(result.Connections) == 0 {
		return
	}
	sectionColor.Println("CROSS-REFERENCE")
	dimColor.Printf("  %s (confidence %.2f)\n", result.Summary, result.ConfidenceScore)
	for _, insight := range result.Insights {
		fmt.Printf("  💡 %s\n", insight)
	}
	for _, pattern := range result.Patterns {
		fmt.Printf("  🔁 %s (×%d)\n", pattern.Name, pattern.Frequency)
	}
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
