// Package classify turns raw paragraph text into typed article sections.
//
// Each paragraph is tested against an ordered table of image rules, then
// against the subtitle heuristic; anything left over is body text. The
// first matching rule wins. All keyword lists and phrase patterns live in
// rules.go as data so the priority order can be read and tested on its own.
//
// Classification is a left fold: the subtitle heuristic looks at the kind
// of the previously emitted section, so paragraphs must be processed in
// order. Classify is otherwise pure and safe for concurrent use.
package classify
