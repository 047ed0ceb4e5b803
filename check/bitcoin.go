package check

import "regexp"

var (
	// Legacy (P2PKH/P2SH) addresses use the base58 alphabet, which excludes
	// 0, O, I and l.
	btcLegacyRe = regexp.MustCompile(`^[13][a-km-zA-HJ-NP-Z1-9]{25,34}$`)

	// Bech32 (segwit) addresses are lowercase with the bc1 prefix.
	btcBech32Re = regexp.MustCompile(`^bc1[02-9ac-hj-np-z]{11,87}$`)
)

// BitcoinAddress reports whether the value has the shape of a Bitcoin address,
// either legacy base58 or bech32. Checksum verification is out of scope.
func BitcoinAddress(s string) bool {
	return btcLegacyRe.MatchString(s) || btcBech32Re.MatchString(s)
}
