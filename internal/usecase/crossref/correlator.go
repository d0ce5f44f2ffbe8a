package crossref

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

// DefaultStrengthThreshold is the minimum connection strength emitted by the
// all-pairs scan. Pairs scoring below it produce no connection at all.
const DefaultStrengthThreshold = 0.15

// timeCorrelationWindow is how close two entity timestamps must be before
// temporal proximity counts as connection evidence.
const timeCorrelationWindow = 48 * time.Hour

// Correlator computes scored connections between entities of different types.
// Strength is continuous keyword-overlap similarity over title and
// description text, not a fixed constant.
type Correlator struct {
	threshold float64
	logger    *zap.Logger
}

// NewCorrelator creates a correlator with the default strength threshold
func NewCorrelator(logger *zap.Logger) *Correlator {
	return &Correlator{
		threshold: DefaultStrengthThreshold,
		logger:    logger,
	}
}

// AnalyzeAll runs the all-pairs scan over the complete entity list. Entities
// sharing a type tag are never connected, and an entity is never connected
// to itself.
func (c *Correlator) AnalyzeAll(ents []entities.CrossReferenceEntity) *entities.CrossReferenceResult {
	return c.analyze("WholeSystem", ents)
}

// AnalyzeCodeToMeeting restricts the scan to code-review and meeting entities
func (c *Correlator) AnalyzeCodeToMeeting(ents []entities.CrossReferenceEntity) *entities.CrossReferenceResult {
	return c.analyze("CodeToMeeting", filterByTypes(ents, entities.EntityTypeCodeReview, entities.EntityTypeMeeting))
}

// AnalyzeMeetingToJira restricts the scan to meeting and ticket entities
func (c *Correlator) AnalyzeMeetingToJira(ents []entities.CrossReferenceEntity) *entities.CrossReferenceResult {
	return c.analyze("MeetingToJira", filterByTypes(ents, entities.EntityTypeMeeting, entities.EntityTypeJiraTicket))
}

// AnalyzeCodeToJira restricts the scan to code-review and ticket entities
func (c *Correlator) AnalyzeCodeToJira(ents []entities.CrossReferenceEntity) *entities.CrossReferenceResult {
	return c.analyze("CodeToJira", filterByTypes(ents, entities.EntityTypeCodeReview, entities.EntityTypeJiraTicket))
}

func (c *Correlator) analyze(analysisType string, ents []entities.CrossReferenceEntity) *entities.CrossReferenceResult {
	result := &entities.CrossReferenceResult{
		AnalysisType: analysisType,
		Entities:     ents,
		Connections:  make([]entities.EntityConnection, 0),
	}

	for i := 0; i < len(ents); i++ {
		for j := i + 1; j < len(ents); j++ {
			if ents[i].EntityType == ents[j].EntityType {
				continue
			}
			if conn, ok := c.connect(ents[i], ents[j]); ok {
				result.Connections = append(result.Connections, conn)
			}
		}
	}

	result.ConfidenceScore = meanConfidence(result.Connections)
	result.Insights = generateInsights(result.Connections)
	result.Patterns = generatePatterns(result.Connections)
	result.Summary = fmt.Sprintf("%s analysis: %d entities, %d connections, %d patterns",
		analysisType, len(ents), len(result.Connections), len(result.Patterns))

	if c.logger != nil {
		c.logger.Info("🔗 Cross-reference analysis complete",
			zap.String("analysis_type", analysisType),
			zap.Int("entities", len(ents)),
			zap.Int("connections", len(result.Connections)),
			zap.Float64("confidence", result.ConfidenceScore),
		)
	}

	return result
}

// connect scores one candidate pair. The connection type follows the
// strongest evidence found: a shared owner beats temporal proximity, which
// beats plain text similarity.
func (c *Correlator) connect(a, b entities.CrossReferenceEntity) (entities.EntityConnection, bool) {
	strength := textSimilarity(a, b)
	evidence := make([]string, 0, 3)
	connType := entities.ConnectionTopicSimilarity
	description := "Related topics identified"

	if shared := sharedKeywords(a, b); len(shared) > 0 {
		evidence = append(evidence, fmt.Sprintf("shared terms: %s", strings.Join(shared, ", ")))
	}

	if within(a.CreatedAt, b.CreatedAt, timeCorrelationWindow) {
		strength += 0.1
		connType = entities.ConnectionTimeCorrelation
		description = "Activity within the same time window"
		evidence = append(evidence, fmt.Sprintf("created %s apart", a.CreatedAt.Sub(b.CreatedAt).Abs().Round(time.Hour)))
	}

	if a.Owner != "" && strings.EqualFold(a.Owner, b.Owner) {
		strength += 0.2
		connType = entities.ConnectionPersonInvolved
		description = fmt.Sprintf("Same person involved: %s", a.Owner)
		evidence = append(evidence, fmt.Sprintf("common owner %s", a.Owner))
	}

	if strength > 1.0 {
		strength = 1.0
	}
	if strength < c.threshold {
		return entities.EntityConnection{}, false
	}

	return entities.EntityConnection{
		SourceEntityID: a.ID,
		TargetEntityID: b.ID,
		Type:           connType,
		Strength:       strength,
		Confidence:     (a.RelevanceScore + b.RelevanceScore) / 2,
		Direction:      entities.DirectionBidirectional,
		Description:    description,
		Evidence:       evidence,
	}, true
}

var wordPattern = regexp.MustCompile(`[a-z0-9][a-z0-9-]{2,}`)

// stopwords excluded from similarity tokens
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "that": {}, "this": {},
	"from": {}, "are": {}, "was": {}, "were": {}, "will": {}, "have": {},
	"has": {}, "had": {}, "not": {}, "but": {}, "all": {}, "its": {},
	"our": {}, "their": {}, "into": {}, "about": {}, "when": {}, "what": {},
	"need": {}, "needs": {}, "should": {}, "update": {}, "updated": {},
}

func tokenize(e entities.CrossReferenceEntity) map[string]struct{} {
	tokens := make(map[string]struct{})
	text := strings.ToLower(e.Title + " " + e.Description)
	for _, w := range wordPattern.FindAllString(text, -1) {
		if _, skip := stopwords[w]; skip {
			continue
		}
		tokens[w] = struct{}{}
	}
	return tokens
}

// textSimilarity is the Jaccard index of the two entities' token sets
func textSimilarity(a, b entities.CrossReferenceEntity) float64 {
	ta, tb := tokenize(a), tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	intersection := 0
	for w := range ta {
		if _, ok := tb[w]; ok {
			intersection++
		}
	}
	union := len(ta) + len(tb) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// sharedKeywords returns up to five tokens common to both entities, sorted
// for stable output.
func sharedKeywords(a, b entities.CrossReferenceEntity) []string {
	ta, tb := tokenize(a), tokenize(b)
	shared := make([]string, 0)
	for w := range ta {
		if _, ok := tb[w]; ok {
			shared = append(shared, w)
		}
	}
	sort.Strings(shared)
	if len(shared) > 5 {
		shared = shared[:5]
	}
	return shared
}

func within(a, b time.Time, window time.Duration) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return math.Abs(float64(a.Sub(b))) <= float64(window)
}

func filterByTypes(ents []entities.CrossReferenceEntity, types ...string) []entities.CrossReferenceEntity {
	allowed := make(map[string]struct{}, len(types))
	for _, t := range types {
		allowed[t] = struct{}{}
	}

	filtered := make([]entities.CrossReferenceEntity, 0, len(ents))
	for _, e := range ents {
		if _, ok := allowed[e.EntityType]; ok {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func meanConfidence(conns []entities.EntityConnection) float64 {
	if len(conns) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range conns {
		total += c.Confidence
	}
	return total / float64(len(conns))
}
