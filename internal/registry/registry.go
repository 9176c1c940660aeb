package registry

import (
	"fmt"
	"sync"
)

// Built-in template ids.
const (
	Business  = "business"
	Simple    = "simple"
	Education = "education"
	Creative  = "creative"
)

// Template is a named layout policy.
type Template struct {
	ID          string
	Name        string
	Description string
	BuiltIn     bool
	Policy      Policy

	// Style names the visual style used by the renderer. Built-ins use their
	// own id; custom templates inherit the style of their base template.
	Style string
}

// SelectVariant returns the layout variant for a document with imageCount images.
func (t Template) SelectVariant(imageCount int) Variant {
	return t.Policy.Select(imageCount)
}

// Config describes a custom template built by CreateCustom.
type Config struct {
	ID          string
	Name        string
	Description string
	BaseID      string      // inherit policy and style from this template (default if empty or unknown)
	ImageRules  *ImageRules // explicit thresholds; overrides the inherited policy
}

// Registry stores templates by id and tracks the default template.
// Templates keep their registration order for listing.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
	order     []string
	defaultID string
	revision  uint64
}

// New creates a registry seeded with the four built-in templates.
// The default template is "business".
func New() *Registry {
	r := NewEmpty()
	for _, t := range BuiltIns() {
		r.templates[t.ID] = t
		r.order = append(r.order, t.ID)
	}
	r.defaultID = Business
	return r
}

// NewEmpty creates a registry with no templates. The first template added
// becomes the default.
func NewEmpty() *Registry {
	return &Registry{templates: make(map[string]Template)}
}

// BuiltIns returns the built-in templates in registration order.
func BuiltIns() []Template {
	return []Template{
		{
			ID:          Business,
			Name:        "Business",
			Description: "Clean corporate layout; captioned image pairs, galleries above two images",
			BuiltIn:     true,
			Policy:      Policy{Kind: PolicyBusiness},
			Style:       Business,
		},
		{
			ID:          Simple,
			Name:        "Simple",
			Description: "Minimal layout with single images only",
			BuiltIn:     true,
			Policy:      Policy{Kind: PolicySimple},
			Style:       Simple,
		},
		{
			ID:          Education,
			Name:        "Education",
			Description: "Teaching material layout; captioned pairs from two images",
			BuiltIn:     true,
			Policy:      Policy{Kind: PolicyEducation},
			Style:       Education,
		},
		{
			ID:          Creative,
			Name:        "Creative",
			Description: "Colourful layout with gradient background",
			BuiltIn:     true,
			Policy:      Policy{Kind: PolicyCreative},
			Style:       Creative,
		},
	}
}

// IsBuiltIn reports whether id names one of the built-in templates.
func IsBuiltIn(id string) bool {
	switch id {
	case Business, Simple, Education, Creative:
		return true
	}
	return false
}

// Get returns the template registered under id.
func (r *Registry) Get(id string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.templates[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return t, nil
}

// Default returns the default template.
// Returns ErrNotFound only when the registry is empty.
func (r *Registry) Default() (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.templates[r.defaultID]
	if !ok {
		return Template{}, fmt.Errorf("%w: registry is empty", ErrNotFound)
	}
	return t, nil
}

// DefaultID returns the id of the default template.
func (r *Registry) DefaultID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultID
}

// SetDefault makes id the default template.
func (r *Registry) SetDefault(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[id]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if r.defaultID != id {
		r.defaultID = id
		r.revision++
	}
	return nil
}

// Add registers t. An empty Style defaults to the template id.
func (r *Registry) Add(t Template) error {
	if t.ID == "" || t.Name == "" || !t.Policy.Valid() {
		return fmt.Errorf("%w: id, name and policy are required", ErrInvalidDefinition)
	}
	if t.Style == "" {
		t.Style = t.ID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addLocked(t)
}

func (r *Registry) addLocked(t Template) error {
	if _, exists := r.templates[t.ID]; exists {
		return fmt.Errorf("%w: %w: %q", ErrInvariant, ErrDuplicateID, t.ID)
	}

	r.templates[t.ID] = t
	r.order = append(r.order, t.ID)
	if r.defaultID == "" {
		r.defaultID = t.ID
	}
	r.revision++
	return nil
}

// Remove deletes the template registered under id. If it was the default,
// the first remaining template in registration order becomes the default.
// The last remaining template can never be removed.
func (r *Registry) Remove(id string) error {
	if id == "" {
		return ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[id]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if len(r.templates) == 1 {
		return fmt.Errorf("%w: %w: %q", ErrInvariant, ErrLastTemplate, id)
	}

	delete(r.templates, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.defaultID == id {
		r.defaultID = r.order[0]
	}
	r.revision++
	return nil
}

// CreateCustom builds a template from cfg and registers it.
// With ImageRules the template uses a threshold policy; without, it
// inherits the policy of BaseID, or of the default template when BaseID is
// empty or unknown. The style is always inherited the same way.
func (r *Registry) CreateCustom(cfg Config) (Template, error) {
	if cfg.ID == "" || cfg.Name == "" {
		return Template{}, ErrMissingIDOrName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[cfg.ID]; exists {
		return Template{}, fmt.Errorf("%w: %w: %q", ErrInvariant, ErrDuplicateID, cfg.ID)
	}

	base, ok := r.templates[cfg.BaseID]
	if !ok {
		base, ok = r.templates[r.defaultID]
	}
	if !ok {
		return Template{}, fmt.Errorf("%w: no base template for %q", ErrNotFound, cfg.ID)
	}

	t := Template{
		ID:          cfg.ID,
		Name:        cfg.Name,
		Description: cfg.Description,
		Policy:      base.Policy,
		Style:       base.Style,
	}
	if cfg.ImageRules != nil {
		t.Policy = ThresholdPolicy(*cfg.ImageRules)
	}

	if err := r.addLocked(t); err != nil {
		return Template{}, err
	}
	return t, nil
}

// List returns all templates in registration order.
func (r *Registry) List() []Template {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Template, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.templates[id])
	}
	return out
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// Revision returns a counter incremented by every successful mutation.
func (r *Registry) Revision() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}
