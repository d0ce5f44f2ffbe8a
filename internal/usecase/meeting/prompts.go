package meeting

// Sentinel tokens the prompts instruct the model to emit for empty results.
// A sentinel is an explicit "nothing found" signal, distinct from a parse
// failure.
const (
	SentinelNoActionItems = "NO_ACTION_ITEMS"
	SentinelNoDecisions   = "NO_DECISIONS"
	SentinelNoQuestions   = "NO_QUESTIONS"
	SentinelNoQuotes      = "NO_QUOTES"
)

const summaryPrompt = `You are an assistant summarizing an engineering team meeting.
Write a concise summary (3-5 sentences) of the following transcript.
Focus on what was discussed, what was decided, and what happens next.
Respond with the summary text only, no headings or preamble.

Transcript:
%s`

const actionItemsPrompt = `Extract action items from the following meeting transcript.

For each action item, emit a block in EXACTLY this format:
ITEM: <short description of the task>
ASSIGNED: <person name, or Unassigned>
PRIORITY: <Low, Medium, High or Urgent>
NOTES: <any context, or leave empty>

Separate blocks with a line containing only ---
If there are no action items, respond with exactly: NO_ACTION_ITEMS

Transcript:
%s`

const keyTopicsPrompt = `List the main topics discussed in the following meeting transcript.
Respond with one topic per line, at most 10 lines, no numbering or bullets.

Transcript:
%s`

const decisionsPrompt = `List the decisions that were made in the following meeting transcript.
Respond with one decision per line, at most 10 lines, no numbering or bullets.
If no decisions were made, respond with exactly: NO_DECISIONS

Transcript:
%s`

const openQuestionsPrompt = `List the questions that were raised but left unanswered in the
following meeting transcript.
Respond with one question per line, at most 10 lines, no numbering or bullets.
If there are no open questions, respond with exactly: NO_QUESTIONS

Transcript:
%s`

const quotesPrompt = `Pick the most notable verbatim quotes from the following meeting
transcript. Respond with one quote per line, at most 5 lines, prefixed with
the speaker name and a colon. If nothing stands out, respond with exactly: NO_QUOTES

Transcript:
%s`

const sentimentPrompt = `Assess the overall sentiment of the following meeting transcript.
Respond with EXACTLY ONE of these tokens and nothing else:
very_negative
negative
neutral
positive
very_positive

Transcript:
%s`

const focusSummaryPrompt = `You are preparing a short executive summary for engineering
leadership focused on the area: %s.

Using only the metrics snapshot below, write 2-4 sentences highlighting what
leadership should know about this area. Respond with the summary text only.

Metrics:
%s`
