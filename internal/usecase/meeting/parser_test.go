package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

func TestParseActionItems_Sentinel(t *testing.T) {
	p := NewParser()

	items := p.ParseActionItems("NO_ACTION_ITEMS")

	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestParseActionItems_Blocks(t *testing.T) {
	p := NewParser()
	response := `ITEM: Fix the login bug
ASSIGNED: Alice
PRIORITY: High
NOTES: reported by support
---
ITEM: Update the deployment docs
ASSIGNED: Unassigned
PRIORITY: low
NOTES:`

	items := p.ParseActionItems(response)

	require.Len(t, items, 2)
	assert.Equal(t, "Fix the login bug", items[0].Description)
	assert.Equal(t, "Alice", items[0].AssignedTo)
	assert.Equal(t, entities.ActionItemPriorityHigh, items[0].Priority)
	assert.Equal(t, "reported by support", items[0].Notes)

	assert.Equal(t, "Update the deployment docs", items[1].Description)
	assert.Empty(t, items[1].AssignedTo, "Unassigned maps to empty assignee")
	assert.Equal(t, entities.ActionItemPriorityLow, items[1].Priority)
}

func TestParseActionItems_CaseInsensitivePrefixes(t *testing.T) {
	p := NewParser()
	response := "item: Review the PR\nassigned: Bob\npriority: urgent"

	items := p.ParseActionItems(response)

	require.Len(t, items, 1)
	assert.Equal(t, "Review the PR", items[0].Description)
	assert.Equal(t, entities.ActionItemPriorityUrgent, items[0].Priority)
}

func TestParseActionItems_DropsBlocksWithoutItem(t *testing.T) {
	p := NewParser()
	response := `ASSIGNED: Alice
PRIORITY: High
---
ITEM: The only valid one`

	items := p.ParseActionItems(response)

	require.Len(t, items, 1)
	assert.Equal(t, "The only valid one", items[0].Description)
}

func TestParseActionItems_UnparseablePriorityDefaultsToMedium(t *testing.T) {
	p := NewParser()
	response := "ITEM: Do the thing\nPRIORITY: whenever"

	items := p.ParseActionItems(response)

	require.Len(t, items, 1)
	assert.Equal(t, entities.ActionItemPriorityMedium, items[0].Priority)
}

func TestParseList_StripsBullets(t *testing.T) {
	p := NewParser()
	response := "- release planning\n* budget review\n• hiring\n\nplain entry"

	entries := p.ParseList(response, "", 10)

	assert.Equal(t, []string{"release planning", "budget review", "hiring", "plain entry"}, entries)
}

func TestParseList_SentinelMeansEmpty(t *testing.T) {
	p := NewParser()

	entries := p.ParseList("NO_DECISIONS", SentinelNoDecisions, 10)

	require.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestParseList_CapsEntries(t *testing.T) {
	p := NewParser()
	response := "a\nb\nc\nd\ne"

	entries := p.ParseList(response, "", 3)

	assert.Len(t, entries, 3)
}

func TestParseList_StripsCodeFences(t *testing.T) {
	p := NewParser()
	response := "```\nfirst topic\nsecond topic\n```"

	entries := p.ParseList(response, "", 10)

	assert.Equal(t, []string{"first topic", "second topic"}, entries)
}

func TestParseSentiment_FailSafe(t *testing.T) {
	p := NewParser()

	assert.Equal(t, entities.SentimentVeryPositive, p.ParseSentiment("Very_Positive"))
	assert.Equal(t, entities.SentimentNeutral, p.ParseSentiment("banana"))
	assert.Equal(t, entities.SentimentNeutral, p.ParseSentiment(""))
}
