package registry

import "fmt"

// Variant is the layout strategy chosen from a document's image count.
type Variant int

// Layout variants.
const (
	SingleImage Variant = iota
	DoubleImageWithCaption
	DoubleImageNoCaption
)

// String returns the variant name used in logs and listings.
func (v Variant) String() string {
	switch v {
	case SingleImage:
		return "single-image"
	case DoubleImageWithCaption:
		return "double-image-with-caption"
	case DoubleImageNoCaption:
		return "double-image-no-caption"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// PolicyKind enumerates the closed set of variant selection policies.
type PolicyKind int

// Policy kinds. PolicyNone is the zero value and is rejected by Add.
const (
	PolicyNone PolicyKind = iota
	PolicyBusiness
	PolicySimple
	PolicyEducation
	PolicyCreative
	PolicyThreshold
)

var policyNames = map[PolicyKind]string{
	PolicyNone:      "none",
	PolicyBusiness:  "business",
	PolicySimple:    "simple",
	PolicyEducation: "education",
	PolicyCreative:  "creative",
	PolicyThreshold: "threshold",
}

// String returns the policy name.
func (k PolicyKind) String() string {
	if name, ok := policyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(k))
}

// ImageRules are the thresholds of a custom policy.
// A document with at least MinDoubleNoCaption images gets the no-caption
// double layout; otherwise at least MinDoubleWithCaption images gets the
// captioned double layout; anything less renders single images.
type ImageRules struct {
	MinDoubleNoCaption   int `yaml:"minDoubleNoCaption" json:"minDoubleNoCaption"`
	MinDoubleWithCaption int `yaml:"minDoubleWithCaption" json:"minDoubleWithCaption"`
}

// Policy selects a layout variant from an image count.
type Policy struct {
	Kind  PolicyKind
	Rules ImageRules // only read when Kind is PolicyThreshold
}

// ThresholdPolicy builds a custom policy from image rules.
func ThresholdPolicy(rules ImageRules) Policy {
	return Policy{Kind: PolicyThreshold, Rules: rules}
}

// Valid reports whether the policy is one of the known kinds.
func (p Policy) Valid() bool {
	return p.Kind > PolicyNone && p.Kind <= PolicyThreshold
}

// Select returns the variant for imageCount. Negative counts are treated as zero.
func (p Policy) Select(imageCount int) Variant {
	if imageCount < 0 {
		imageCount = 0
	}

	switch p.Kind {
	case PolicyBusiness, PolicyCreative:
		switch {
		case imageCount >= 3:
			return DoubleImageNoCaption
		case imageCount >= 1:
			return DoubleImageWithCaption
		}
		return SingleImage

	case PolicyEducation:
		if imageCount >= 2 {
			return DoubleImageWithCaption
		}
		return SingleImage

	case PolicyThreshold:
		switch {
		case imageCount >= p.Rules.MinDoubleNoCaption:
			return DoubleImageNoCaption
		case imageCount >= p.Rules.MinDoubleWithCaption:
			return DoubleImageWithCaption
		}
		return SingleImage

	default:
		return SingleImage
	}
}

// String describes the policy, e.g. "business" or "threshold(3,1)".
func (p Policy) String() string {
	if p.Kind == PolicyThreshold {
		return fmt.Sprintf("threshold(%d,%d)", p.Rules.MinDoubleNoCaption, p.Rules.MinDoubleWithCaption)
	}
	return p.Kind.String()
}
