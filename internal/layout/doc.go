// Package layout renders a classified article into styled HTML markup.
//
// The output is a flat sequence of inline-styled blocks suitable for
// pasting into rich-text editors that strip <style> elements:
//
//	header fragment
//	<section container>      styled per template style
//	  <h1 title>             omitted when the title is empty
//	  divider
//	  section blocks ...
//	</section>
//	footer fragment
//
// Image sections are laid out by the variant the template picks from the
// document's image count. Under the captioned double layout each image
// section consumes two captions from a cursor over all image captions and
// advances an independent asset index used for numbering and image
// rotation. The other two layouts emit a fixed decorative block per image
// section and touch neither counter.
package layout
