package article

import "github.com/alnah/go-article/internal/registry"

// Template registry types.
type (
	// Registry holds the templates a Service can render with.
	Registry = registry.Registry

	// Template is a named layout policy plus a visual style.
	Template = registry.Template

	// TemplateConfig describes a custom template derived from a base.
	TemplateConfig = registry.Config

	// ImageRules are the thresholds of a custom layout policy.
	ImageRules = registry.ImageRules

	// Policy maps an image count to a layout variant.
	Policy = registry.Policy

	// PolicyKind names one of the closed set of policies.
	PolicyKind = registry.PolicyKind

	// Variant is one of the three image layouts.
	Variant = registry.Variant
)

// Layout variants.
const (
	SingleImage            = registry.SingleImage
	DoubleImageWithCaption = registry.DoubleImageWithCaption
	DoubleImageNoCaption   = registry.DoubleImageNoCaption
)

// Policy kinds. PolicyThreshold is used by templates created with
// ImageRules.
const (
	PolicyBusiness  = registry.PolicyBusiness
	PolicySimple    = registry.PolicySimple
	PolicyEducation = registry.PolicyEducation
	PolicyCreative  = registry.PolicyCreative
	PolicyThreshold = registry.PolicyThreshold
)

// Built-in template ids.
const (
	TemplateBusiness  = registry.Business
	TemplateSimple    = registry.Simple
	TemplateEducation = registry.Education
	TemplateCreative  = registry.Creative
)

// NewRegistry returns a registry seeded with the built-in templates.
func NewRegistry() *Registry {
	return registry.New()
}

// ThresholdPolicy returns the policy used by templates created with
// ImageRules.
func ThresholdPolicy(rules ImageRules) Policy {
	return registry.ThresholdPolicy(rules)
}
