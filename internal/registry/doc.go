// Package registry holds the named template definitions used to pick a
// layout variant for an article.
//
// A template is a pure function of the number of image sections in a
// document. Instead of storing arbitrary callables, every template carries a
// Policy: either one of the fixed built-in threshold tables or a custom
// threshold pair supplied when the template is created. Policies are plain
// values, so templates can be listed, compared and serialized.
//
// The Registry is safe for concurrent use. Lookups take a read lock;
// Add, Remove and SetDefault are serialized by a single write lock so that
// the template map and the default id never disagree.
package registry
