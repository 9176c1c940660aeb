package article

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/alnah/go-article/internal/registry"
)

// SectionType is the type of an article section.
type SectionType string

// Section types.
const (
	SectionText     SectionType = "text"
	SectionSubtitle SectionType = "subtitle"
	SectionImage    SectionType = "image"
)

// Valid reports whether t is one of the three section types.
func (t SectionType) Valid() bool {
	switch t {
	case SectionText, SectionSubtitle, SectionImage:
		return true
	}
	return false
}

// Section is one unit of article content. For images, Content is the
// caption and may be empty.
type Section struct {
	Type       SectionType `json:"type"`
	Content    string      `json:"content"`
	Position   int         `json:"position"`   // 1-based, contiguous in document order
	ManualEdit bool        `json:"manualEdit"` // supplied by the author, not read from a file
}

// validate checks a manually supplied section. Text and subtitle sections
// need content; image captions may be empty.
func (s Section) validate(index int) error {
	if !s.Type.Valid() {
		return fmt.Errorf("%w: sections[%d]: unknown type %q", ErrInvalidSection, index, s.Type)
	}
	if s.Type != SectionImage && strings.TrimSpace(s.Content) == "" {
		return fmt.Errorf("%w: sections[%d]: %s content cannot be empty", ErrInvalidSection, index, s.Type)
	}
	return nil
}

// DocumentInput is a document upload.
type DocumentInput struct {
	Data       []byte // .docx, Markdown, HTML or UTF-8 text (required)
	Filename   string // format hint, may be empty
	TemplateID string // empty = default template
}

// ManualInput is an article written by hand. Either Sections or Content
// must be set. Sections take precedence; Content is then ignored.
type ManualInput struct {
	Title      string
	Sections   []Section // typed sections; positions are reassigned
	Content    string    // pasted prose, one paragraph per line
	TemplateID string    // empty = default template
}

// Result is an assembled article.
type Result struct {
	Title      string    `json:"title"`
	Sections   []Section `json:"sections"`
	Markup     string    `json:"renderedMarkup"`
	TemplateID string    `json:"templateId"`
	Variant    string    `json:"variant"`
}

// ImageCount returns the number of image sections.
func (r *Result) ImageCount() int {
	n := 0
	for _, s := range r.Sections {
		if s.Type == SectionImage {
			n++
		}
	}
	return n
}

// clone returns a copy that shares no slice with r.
func (r *Result) clone() *Result {
	c := *r
	c.Sections = append([]Section(nil), r.Sections...)
	return &c
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout   time.Duration
	protected map[string]bool
}

// defaultTimeout bounds PDF export when the context has no deadline.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF export timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("article: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithRegistry makes the service use reg instead of a fresh registry.
// Services sharing a registry see each other's template changes.
func WithRegistry(reg *Registry) Option {
	return func(s *Service) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithExtractor replaces the built-in document reader.
func WithExtractor(e ParagraphExtractor) Option {
	return func(s *Service) {
		if e != nil {
			s.extractor = e
		}
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithResultCache caches FromDocument results for ttl, keyed by document
// content, file name, template and registry revision. The cache is created
// once per option value, so services built from the same option share it.
// A ttl <= 0 disables caching.
func WithResultCache(ttl time.Duration) Option {
	if ttl <= 0 {
		return func(s *Service) { s.cache = nil }
	}
	c := cache.New(ttl, 2*ttl)
	return func(s *Service) {
		s.cache = c
	}
}

// WithProtectedTemplates replaces the set of template ids RemoveTemplate
// refuses to delete. The default protects the four built-in templates.
// Calling it with no ids disables protection.
func WithProtectedTemplates(ids ...string) Option {
	return func(s *Service) {
		s.cfg.protected = make(map[string]bool, len(ids))
		for _, id := range ids {
			s.cfg.protected[id] = true
		}
	}
}

func defaultProtected() map[string]bool {
	out := make(map[string]bool)
	for _, t := range registry.BuiltIns() {
		out[t.ID] = true
	}
	return out
}
