// Package check provides the stateless format predicates consumed by the scrub
// engine's validation pipeline.
//
// Every exported function reports whether a value satisfies one well-known
// format or constraint and nothing else: no error values, no state, no I/O.
// The predicates are grouped by concern:
//
//   - Network and contact formats – Email, URL, IP, MAC, Phone, Domain.
//   - Identifiers – UUID, Base64, Semver, Slug.
//   - Content – Alpha, Alphanumeric, Palindrome, HasEmoji, JSON, HexColor,
//     BitcoinAddress.
//   - Temporal – Date and DateLayout.
//   - Numbers – Numeric and Integer, the acceptance checks behind the engine's
//     numeric types (genuine numbers and numeric-looking strings).
//   - Security – StrongPassword.
//
// All helpers are safe for concurrent use. The scrub engine addresses them by
// name through its check registry; applications may also call them directly:
//
//	import "github.com/dmitrymomot/scrub/check"
//
//	check.Email("john@example.com") // true
//	check.Numeric("77.3")           // true
//	check.HexColor("#a1b2c3")       // true
package check
