package meeting

import (
	"strings"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

// Parser turns delimited LLM text responses back into typed records.
// Parsing is best effort throughout: malformed blocks are dropped and
// unrecognized values degrade to defaults, never to errors.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseActionItems splits a delimited response into action items. Blocks are
// separated by --- lines; each block carries ITEM:/ASSIGNED:/PRIORITY:/NOTES:
// lines matched case-insensitively. Blocks without a non-empty ITEM line are
// discarded without error. The sentinel token yields an empty, non-nil list.
func (p *Parser) ParseActionItems(response string) []*entities.ActionItem {
	items := make([]*entities.ActionItem, 0)

	response = stripCodeFences(response)
	if response == "" || strings.Contains(response, SentinelNoActionItems) {
		return items
	}

	for _, block := range strings.Split(response, "---") {
		item := p.parseActionItemBlock(block)
		if item != nil {
			items = append(items, item)
		}
	}
	return items
}

func (p *Parser) parseActionItemBlock(block string) *entities.ActionItem {
	var description, assigned, priority, notes string

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case hasPrefixFold(line, "ITEM:"):
			description = strings.TrimSpace(line[len("ITEM:"):])
		case hasPrefixFold(line, "ASSIGNED:"):
			assigned = strings.TrimSpace(line[len("ASSIGNED:"):])
		case hasPrefixFold(line, "PRIORITY:"):
			priority = strings.TrimSpace(line[len("PRIORITY:"):])
		case hasPrefixFold(line, "NOTES:"):
			notes = strings.TrimSpace(line[len("NOTES:"):])
		}
	}

	if description == "" {
		return nil
	}

	item := entities.NewActionItem(description)
	if !strings.EqualFold(assigned, "unassigned") {
		item.AssignedTo = assigned
	}
	item.Priority = entities.ParseActionItemPriority(priority)
	item.Notes = notes
	return item
}

// ParseList splits a newline-separated response into entries, stripping
// bullet and dash prefixes. The sentinel token (when given) and any empty
// response yield an empty list. Results are capped at maxEntries.
func (p *Parser) ParseList(response, sentinel string, maxEntries int) []string {
	entries := make([]string, 0)

	response = stripCodeFences(response)
	if response == "" {
		return entries
	}
	if sentinel != "" && strings.Contains(response, sentinel) {
		return entries
	}

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, line)
		if len(entries) >= maxEntries {
			break
		}
	}
	return entries
}

// ParseSentiment maps a sentiment token response to the enum; anything
// unrecognized falls back to neutral.
func (p *Parser) ParseSentiment(response string) entities.Sentiment {
	return entities.ParseSentiment(stripCodeFences(response))
}

// stripCodeFences removes markdown code fences some models wrap output in
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		// Drop a language tag on the opening fence
		if idx := strings.Index(content, "\n"); idx != -1 && !strings.Contains(content[:idx], " ") {
			content = content[idx+1:]
		}
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
