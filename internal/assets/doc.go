// Package assets provides the fixed HTML fragments that frame every article.
//
// Fragments are embedded at compile time and are not configurable:
//
//	fragments/
//	├── header.html   # banner emitted before the article container
//	├── footer.html   # closing block emitted after the container
//	└── page.html     # html/template wrapper used for PDF export
//
// Fragment names are validated before lookup so callers cannot reach
// outside the fragments directory.
package assets
