package article

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/alnah/go-article/internal/assets"
	"github.com/alnah/go-article/internal/classify"
	"github.com/alnah/go-article/internal/extract"
	"github.com/alnah/go-article/internal/layout"
	"github.com/alnah/go-article/internal/registry"
)

// ParagraphExtractor turns document bytes into ordered, trimmed, non-empty
// paragraph lines. The first line is used as the article title.
type ParagraphExtractor interface {
	Extract(ctx context.Context, data []byte, filename string) ([]string, error)
}

// sectionClassifier types raw paragraphs in order.
type sectionClassifier interface {
	Classify(paragraphs []string) []classify.Section
}

// markupRenderer lays a document out with a template.
type markupRenderer interface {
	Render(doc layout.Document, tmpl registry.Template) string
}

// Compile-time interface checks.
var (
	_ ParagraphExtractor = (*extract.Extractor)(nil)
	_ sectionClassifier  = (*classify.Classifier)(nil)
	_ markupRenderer     = (*layout.Renderer)(nil)
)

// Service assembles articles: it extracts paragraphs, classifies them,
// resolves the template and renders the markup. It is safe for concurrent
// use; Close releases the browser used by ExportPDF.
type Service struct {
	cfg        serviceConfig
	registry   *registry.Registry
	extractor  ParagraphExtractor
	normalizer *extract.Extractor
	classifier sectionClassifier
	renderer   markupRenderer
	page       *template.Template
	cache      *cache.Cache
	logger     *slog.Logger
	pdf        pdfConverter
}

// New creates a Service with the built-in templates, the built-in document
// reader and a discarding logger. Returns an error if the embedded layout
// fragments cannot be loaded.
func New(opts ...Option) (*Service, error) {
	normalizer := extract.New()
	s := &Service{
		cfg:        serviceConfig{timeout: defaultTimeout, protected: defaultProtected()},
		registry:   registry.New(),
		extractor:  normalizer,
		normalizer: normalizer,
		classifier: classify.New(),
		logger:     slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	loader := assets.NewEmbeddedLoader()
	if s.renderer == nil {
		r, err := layout.New(loader)
		if err != nil {
			return nil, fmt.Errorf("creating renderer: %w", err)
		}
		s.renderer = r
	}

	page, err := loadPageTemplate(loader)
	if err != nil {
		return nil, err
	}
	s.page = page

	// Created lazily on first export; tests inject a mock.
	if s.pdf == nil {
		s.pdf = newRodConverter(s.cfg.timeout)
	}

	return s, nil
}

// Close releases the headless browser, if one was started.
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}

// Registry returns the template registry used by the service.
func (s *Service) Registry() *Registry {
	return s.registry
}

// FromDocument builds an article from an uploaded document. The first
// extracted line is the title; the remaining lines are classified.
func (s *Service) FromDocument(ctx context.Context, in DocumentInput) (res *Result, err error) {
	defer s.recoverPanic("FromDocument", &res, &err)

	if len(in.Data) == 0 {
		return nil, fmt.Errorf("%w: no document data", ErrEmptyDocument)
	}

	tmpl, err := s.resolveTemplate(in.TemplateID)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey(in, tmpl.ID)
	if cached, ok := s.cached(key); ok {
		s.logger.Debug("result cache hit", "template", tmpl.ID, "bytes", len(in.Data))
		return cached, nil
	}

	lines, err := s.extractor.Extract(ctx, in.Data, in.Filename)
	if err != nil {
		return nil, fmt.Errorf("extracting paragraphs: %w", convertExtractError(err))
	}
	if len(lines) == 0 {
		return nil, ErrEmptyDocument
	}
	s.logger.Debug("document extracted",
		"format", extract.Detect(in.Data, in.Filename),
		"paragraphs", len(lines))

	sections := fromClassified(s.classifier.Classify(lines[1:]))
	res = s.assemble(lines[0], sections, tmpl)

	if key != "" {
		s.cache.Set(key, res.clone(), cache.DefaultExpiration)
	}
	return res, nil
}

// FromManual builds an article from hand-written input. Every section of
// the result is marked ManualEdit.
//
// With Sections, each section is validated and positions are reassigned in
// order. With Content only, the text is split into lines and classified;
// when Title is empty the first line becomes the title.
func (s *Service) FromManual(ctx context.Context, in ManualInput) (res *Result, err error) {
	defer s.recoverPanic("FromManual", &res, &err)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)

	var sections []Section
	switch {
	case len(in.Sections) > 0:
		sections = make([]Section, len(in.Sections))
		for i, sec := range in.Sections {
			if err := sec.validate(i); err != nil {
				return nil, err
			}
			sections[i] = Section{Type: sec.Type, Content: strings.TrimSpace(sec.Content)}
		}
	case strings.TrimSpace(in.Content) != "":
		lines := s.normalizer.Normalize(in.Content)
		if title == "" && len(lines) > 0 {
			title, lines = lines[0], lines[1:]
		}
		sections = fromClassified(s.classifier.Classify(lines))
	default:
		return nil, ErrMissingContent
	}

	tmpl, err := s.resolveTemplate(in.TemplateID)
	if err != nil {
		return nil, err
	}

	for i := range sections {
		sections[i].ManualEdit = true
	}
	return s.assemble(title, sections, tmpl), nil
}

// assemble numbers the sections and renders them.
func (s *Service) assemble(title string, sections []Section, tmpl registry.Template) *Result {
	doc := layout.Document{Title: title, Blocks: make([]layout.Block, len(sections))}
	for i := range sections {
		sections[i].Position = i + 1
		doc.Blocks[i] = layout.Block{Kind: blockKind(sections[i].Type), Content: sections[i].Content}
	}

	images := doc.ImageCount()
	variant := tmpl.SelectVariant(images)
	s.logger.Debug("template selected",
		"template", tmpl.ID,
		"images", images,
		"variant", variant.String())

	return &Result{
		Title:      title,
		Sections:   sections,
		Markup:     s.renderer.Render(doc, tmpl),
		TemplateID: tmpl.ID,
		Variant:    variant.String(),
	}
}

// resolveTemplate returns the template for id, or the default for "".
func (s *Service) resolveTemplate(id string) (registry.Template, error) {
	var (
		t   registry.Template
		err error
	)
	if id == "" {
		t, err = s.registry.Default()
	} else {
		t, err = s.registry.Get(id)
	}
	if err != nil {
		return registry.Template{}, convertRegistryError(err)
	}
	return t, nil
}

// cacheKey returns "" when caching is disabled.
func (s *Service) cacheKey(in DocumentInput, templateID string) string {
	if s.cache == nil {
		return ""
	}
	sum := sha256.Sum256(in.Data)
	return fmt.Sprintf("%s|%s|%s|%d", hex.EncodeToString(sum[:]), in.Filename, templateID, s.registry.Revision())
}

func (s *Service) cached(key string) (*Result, bool) {
	if key == "" {
		return nil, false
	}
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	res, ok := v.(*Result)
	if !ok {
		return nil, false
	}
	return res.clone(), true
}

// recoverPanic turns a panic in the pipeline into an ErrInternal error.
func (s *Service) recoverPanic(op string, res **Result, err *error) {
	if r := recover(); r != nil {
		s.logger.Error("pipeline panic", "op", op, "panic", r)
		*res = nil
		*err = panicError(r)
	}
}

// ListTemplates returns all templates in registration order.
func (s *Service) ListTemplates() []Template {
	return s.registry.List()
}

// Template returns the template registered under id.
func (s *Service) Template(id string) (Template, error) {
	t, err := s.registry.Get(id)
	return t, convertRegistryError(err)
}

// DefaultTemplate returns the current default template.
func (s *Service) DefaultTemplate() (Template, error) {
	t, err := s.registry.Default()
	return t, convertRegistryError(err)
}

// AddTemplate registers a fully specified template.
func (s *Service) AddTemplate(t Template) error {
	t.BuiltIn = false
	return convertRegistryError(s.registry.Add(t))
}

// CreateTemplate registers a custom template derived from cfg.BaseID.
func (s *Service) CreateTemplate(cfg TemplateConfig) (Template, error) {
	t, err := s.registry.CreateCustom(cfg)
	if err != nil {
		return Template{}, convertRegistryError(err)
	}
	s.logger.Debug("template created", "template", t.ID, "policy", t.Policy.String(), "style", t.Style)
	return t, nil
}

// RemoveTemplate deletes a template. Protected templates (the built-ins
// unless WithProtectedTemplates says otherwise) are refused with
// ErrProtectedTemplate.
func (s *Service) RemoveTemplate(id string) error {
	if s.cfg.protected[id] {
		return fmt.Errorf("%w: %w: %q", ErrRegistryInvariant, ErrProtectedTemplate, id)
	}
	return convertRegistryError(s.registry.Remove(id))
}

// SetDefaultTemplate makes id the default template.
func (s *Service) SetDefaultTemplate(id string) error {
	return convertRegistryError(s.registry.SetDefault(id))
}

// IsProtected reports whether RemoveTemplate refuses id.
func (s *Service) IsProtected(id string) bool {
	return s.cfg.protected[id]
}

func fromClassified(in []classify.Section) []Section {
	out := make([]Section, len(in))
	for i, c := range in {
		out[i] = Section{Type: sectionType(c.Kind), Content: c.Content}
	}
	return out
}

func sectionType(k classify.Kind) SectionType {
	switch k {
	case classify.Subtitle:
		return SectionSubtitle
	case classify.Image:
		return SectionImage
	default:
		return SectionText
	}
}

func blockKind(t SectionType) layout.BlockKind {
	switch t {
	case SectionSubtitle:
		return layout.BlockSubtitle
	case SectionImage:
		return layout.BlockImage
	case SectionText:
		return layout.BlockText
	default:
		return layout.BlockKind(-1)
	}
}

// errPageTemplate wraps failures to parse the embedded page fragment.
var errPageTemplate = errors.New("page template")

func loadPageTemplate(loader assets.FragmentLoader) (*template.Template, error) {
	src, err := loader.LoadFragment(assets.Page)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errPageTemplate, err)
	}
	tmpl, err := template.New(assets.Page).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errPageTemplate, err)
	}
	return tmpl, nil
}
