package console

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
	"github.com/devpulse-team/devpulse/internal/infrastructure/storage"
	"github.com/devpulse-team/devpulse/internal/infrastructure/transcriptdir"
	"github.com/devpulse-team/devpulse/internal/usecase/meeting"
	"github.com/devpulse-team/devpulse/internal/usecase/report"
	"github.com/devpulse-team/devpulse/internal/usecase/workflow"
	"github.com/devpulse-team/devpulse/pkg/config"
	"github.com/devpulse-team/devpulse/pkg/github"
	"github.com/devpulse-team/devpulse/pkg/jira"
)

// Console is the interactive menu loop. Optional collaborators are nil when
// their integration is not configured; the menu only offers what is wired.
type Console struct {
	cfg          *config.Config
	analyzer     *meeting.Service
	orchestrator *workflow.Orchestrator
	store        *transcriptdir.Store
	github       *github.Client
	jira         *jira.Client
	mirror       *storage.ArchiveMirror
	publish      func(*entities.DevelopmentSummary)
	logger       *zap.Logger

	in *bufio.Scanner

	lastResult  *entities.MeetingAnalysisResult
	lastSummary *entities.DevelopmentSummary
	meetings    []*entities.MeetingAnalysisResult
}

// Options carries the optional collaborators for the console
type Options struct {
	GitHub  *github.Client
	Jira    *jira.Client
	Mirror  *storage.ArchiveMirror
	Publish func(*entities.DevelopmentSummary)
}

// New creates the console loop
func New(
	cfg *config.Config,
	analyzer *meeting.Service,
	orchestrator *workflow.Orchestrator,
	store *transcriptdir.Store,
	opts Options,
	logger *zap.Logger,
) *Console {
	return &Console{
		cfg:          cfg,
		analyzer:     analyzer,
		orchestrator: orchestrator,
		store:        store,
		github:       opts.GitHub,
		jira:         opts.Jira,
		mirror:       opts.Mirror,
		publish:      opts.Publish,
		logger:       logger,
		in:           bufio.NewScanner(os.Stdin),
	}
}

type menuOption struct {
	label  string
	action func(ctx context.Context)
}

// Run drives the menu loop until the user exits or the context is cancelled
func (c *Console) Run(ctx context.Context) {
	printBanner()
	c.printModes()

	options := c.buildMenu()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		printMenu(options)
		choice, ok := c.readChoice(len(options))
		if !ok {
			return
		}
		if choice == 0 {
			printInfo("Goodbye! 👋")
			return
		}
		options[choice-1].action(ctx)
	}
}

// buildMenu assembles the numbered options for this session's feature set
func (c *Console) buildMenu() []menuOption {
	options := []menuOption{
		{label: "📝 Analyze a pending transcript", action: c.analyzePending},
		{label: "📂 List pending transcripts", action: c.listPending},
		{label: "📄 Show transcript templates", action: c.showTemplates},
		{label: "📊 Generate development summary", action: c.generateSummary},
		{label: "🎯 Focused executive summary", action: c.focusedSummary},
	}

	if c.github != nil {
		options = append(options, menuOption{label: "🐙 Show recent commits", action: c.showCommits})
	}
	if c.jira != nil {
		options = append(options,
			menuOption{label: "🎫 Create Jira tickets from last analysis", action: c.createTickets},
			menuOption{label: "🔎 Search Jira tickets", action: c.searchTickets},
		)
	}

	return options
}

func (c *Console) printModes() {
	if c.github == nil {
		printWarn("GitHub integration not configured: commit analysis disabled for this session")
	}
	if c.jira == nil {
		printWarn("Jira integration not configured: ticket creation disabled for this session")
	}
	if c.mirror == nil {
		printInfo("Object-storage mirror not configured: archives stay local only")
	}
}

func (c *Console) readChoice(max int) (int, bool) {
	for {
		fmt.Print("Choose an option: ")
		if !c.in.Scan() {
			return 0, false
		}
		choice, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
		if err != nil || choice < 0 || choice > max {
			printWarn("Invalid choice")
			continue
		}
		return choice, true
	}
}

func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Print(prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) analyzePending(ctx context.Context) {
	pending, err := c.store.ListPending()
	if err != nil {
		printError("Could not list pending transcripts", err)
		return
	}
	if len(pending) == 0 {
		printInfo("No pending transcripts in the incoming directory")
		return
	}

	for i, name := range pending {
		fmt.Printf("  %d. %s\n", i+1, name)
	}
	line, ok := c.readLine("Pick a file number: ")
	if !ok {
		return
	}
	idx, err := strconv.Atoi(line)
	if err != nil || idx < 1 || idx > len(pending) {
		printWarn("Invalid file number")
		return
	}
	filename := pending[idx-1]

	content, err := c.store.Read(filename)
	if err != nil {
		printError("Could not read transcript", err)
		return
	}
	if err := c.store.MoveToProcessing(filename); err != nil {
		printError("Could not move transcript to processing", err)
		return
	}

	transcript := entities.NewTranscript(strings.TrimSuffix(filename, "."+extOf(filename)), content)
	result := c.analyzer.AnalyzeTranscript(ctx, transcript)

	c.lastResult = result
	c.meetings = append(c.meetings, result)
	printAnalysis(result)

	if err := c.store.MoveToArchive(filename); err != nil {
		printError("Could not archive transcript", err)
		return
	}
	if c.mirror != nil {
		if err := c.mirror.MirrorTranscript(ctx, filename, content); err != nil {
			printWarn("Archive mirror upload failed: " + err.Error())
		}
	}
}

func (c *Console) listPending(context.Context) {
	pending, err := c.store.ListPending()
	if err != nil {
		printError("Could not list pending transcripts", err)
		return
	}
	if len(pending) == 0 {
		printInfo("No pending transcripts")
		return
	}
	for _, name := range pending {
		fmt.Printf("  • %s\n", name)
	}
}

func (c *Console) showTemplates(context.Context) {
	templates, err := c.store.ListTemplates()
	if err != nil {
		printError("Could not list templates", err)
		return
	}
	if len(templates) == 0 {
		printInfo("No templates available")
		return
	}
	for _, name := range templates {
		fmt.Printf("  • %s\n", name)
	}
}

func (c *Console) generateSummary(ctx context.Context) {
	input := workflow.PeriodInput{
		PeriodStart: time.Now().AddDate(0, 0, -14),
		PeriodEnd:   time.Now(),
		Meetings:    c.meetings,
	}

	if c.github != nil {
		commits, err := c.github.ListRecentCommits(ctx, 30)
		if err != nil {
			printWarn("Could not fetch commits, summary will exclude code activity: " + err.Error())
		} else {
			input.Commits = commits
		}
		prs, err := c.github.ListRecentPullRequests(ctx, 30)
		if err != nil {
			printWarn("Could not fetch pull requests, summary will exclude review activity: " + err.Error())
		} else {
			input.PullRequests = prs
		}
	}
	if c.jira != nil {
		tickets, err := c.jira.SearchTickets(ctx, "", 30)
		if err != nil {
			printWarn("Could not fetch tickets, summary will exclude ticket activity: " + err.Error())
		} else {
			input.Tickets = tickets
		}
	}

	summary, correlation := c.orchestrator.BuildSummary(ctx, input)
	c.lastSummary = summary
	if c.publish != nil {
		c.publish(summary)
	}

	fmt.Println(report.Render(summary))
	printCorrelation(correlation)

	if c.mirror != nil {
		name := fmt.Sprintf("summary-%s.txt", time.Now().Format("2006-01-02-150405"))
		if err := c.mirror.MirrorReport(ctx, name, report.Render(summary)); err != nil {
			printWarn("Report mirror upload failed: " + err.Error())
		}
	}
}

func (c *Console) focusedSummary(ctx context.Context) {
	if c.lastSummary == nil {
		printInfo("Generate a development summary first")
		return
	}
	area, ok := c.readLine("Focus area (Security/Performance/Risks): ")
	if !ok || area == "" {
		return
	}

	focused, err := report.RenderFocused(ctx, c.analyzer, c.lastSummary, area)
	if err != nil {
		printError("Could not generate focused summary", err)
		return
	}
	fmt.Println(focused)
}

func (c *Console) showCommits(ctx context.Context) {
	commits, err := c.github.ListRecentCommits(ctx, 10)
	if err != nil {
		printError("Could not fetch commits", err)
		return
	}
	printCommits(commits)
}

func (c *Console) createTickets(ctx context.Context) {
	if c.lastResult == nil || len(c.lastResult.ActionItems) == 0 {
		printInfo("No action items available: analyze a transcript first")
		return
	}

	tickets, err := c.jira.CreateTicketsFromActionItems(ctx, c.lastResult.ActionItems)
	if err != nil {
		printError("Ticket creation stopped early", err)
	}
	printTickets(tickets)
}

func (c *Console) searchTickets(ctx context.Context) {
	keyword, ok := c.readLine("Search keyword: ")
	if !ok || keyword == "" {
		return
	}

	tickets, err := c.jira.SearchTickets(ctx, keyword, 10)
	if err != nil {
		printError("Ticket search failed", err)
		return
	}
	if len(tickets) == 0 {
		printInfo("No matching tickets")
		return
	}
	for _, t := range tickets {
		fmt.Printf("  %s [%s] %s\n", t.Key, t.Status, t.Summary)
	}
}

func extOf(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}
