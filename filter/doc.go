// Package filter provides the stateless string transforms consumed by the scrub
// engine's sanitization pipeline.
//
// The functions are grouped conceptually into several areas:
//
//   - Whitespace and shape – trimming, whitespace normalisation, single-line
//     collapsing and rune-aware truncation.
//
//   - Markup – HTML entity escaping/unescaping, tag stripping and the combined
//     Text helper that reduces arbitrary markup to plain text.
//
//   - Transliteration – Unicode normalisation of diacritics to their ASCII
//     equivalents and URL-safe slug generation.
//
//   - Conversion – the canonical Stringify contract (numbers in decimal form,
//     booleans as "true"/"false", nil as the empty string, composites as their
//     JSON form) and the shared ToNumeric normalisation that decides int vs.
//     float by the presence of a decimal point or exponent marker.
//
// Every helper is a pure function of its input. None of them returns an error –
// they always fall back to a safe result (usually the original input or an
// empty value) if a transformation cannot be applied. Because there is no
// global state the helpers are safe for concurrent use.
//
// # Usage
//
//	import "github.com/dmitrymomot/scrub/filter"
//
//	clean := filter.Trim(filter.StripTags("  <b>hello</b> ")) // "hello"
//	slug  := filter.Slug("Café au Lait!")                     // "cafe-au-lait"
//	n     := filter.ToNumeric("42")                           // int(42)
//
// The scrub engine addresses these transforms by name through its filter
// registry; applications may also use them directly.
package filter
