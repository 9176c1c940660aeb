package classify

import (
	"strings"
	"unicode/utf8"
)

// Kind is the type of a classified section.
type Kind int

// Section kinds.
const (
	Text Kind = iota
	Subtitle
	Image
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Subtitle:
		return "subtitle"
	case Image:
		return "image"
	default:
		return "unknown"
	}
}

// Subtitle heuristic length limits, in characters.
const (
	maxSubtitleLength = 30
	maxFollowUpLength = 20
)

// Section is one classified paragraph.
// For images, Content is the caption (the raw paragraph text).
type Section struct {
	Kind    Kind
	Content string
	Rule    string // name of the rule that decided the kind
}

// Classifier classifies paragraphs. The zero value is ready to use.
type Classifier struct{}

// New returns a Classifier.
func New() *Classifier {
	return &Classifier{}
}

// Classify returns one section per paragraph, in input order.
// Paragraphs are expected to be trimmed and non-empty; the title line must
// already be removed.
func (c *Classifier) Classify(paragraphs []string) []Section {
	return Classify(paragraphs)
}

// Classify is the package-level form of Classifier.Classify.
func Classify(paragraphs []string) []Section {
	sections := make([]Section, 0, len(paragraphs))

	var prev *Section
	for _, p := range paragraphs {
		s := classifyOne(p, prev)
		sections = append(sections, s)
		prev = &sections[len(sections)-1]
	}
	return sections
}

// classifyOne applies the rule table to p given the previously emitted section.
func classifyOne(p string, prev *Section) Section {
	for _, rule := range imageRules {
		if rule.match(p) {
			return Section{Kind: Image, Content: p, Rule: rule.name}
		}
	}

	if rule, ok := subtitleRule(p, prev); ok {
		return Section{Kind: Subtitle, Content: p, Rule: rule}
	}

	return Section{Kind: Text, Content: p, Rule: RuleText}
}

// subtitleRule evaluates the subtitle heuristic and returns the name of the
// first criterion that matched.
func subtitleRule(p string, prev *Section) (string, bool) {
	length := utf8.RuneCountInString(p)
	if length > maxSubtitleLength || endsWithAny(p, sentenceEndings) {
		return "", false
	}

	lower := strings.ToLower(p)

	switch {
	case containsAny(lower, subtitleKeywords):
		return RuleSubtitleKeyword, true
	case matchesAny(p, topicHighlightPatterns):
		return RuleTopicHighlight, true
	case endsWithAny(p, colonMarks):
		return RuleColonEnding, true
	case endsWithAny(p, closingMarks):
		return RuleClosingMark, true
	case matchesAny(p, chapterPrefixPatterns):
		return RuleChapterPrefix, true
	case prev != nil && prev.Kind == Subtitle && !hasPrefixAny(lower, bodyOpeners) && length <= maxFollowUpLength:
		return RuleSubtitleFollowUp, true
	case strings.ContainsAny(p, "，,、") && containsAny(p, activityWords):
		return RuleParallelActivity, true
	}
	return "", false
}
