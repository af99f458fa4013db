// Package domain contains the music value model for tabgen.
//
// The domain is persistence- and presentation-agnostic: it does not depend on YAML parsing,
// the filesystem or any output format. Values are built once (by a loader or by transposition)
// and never mutated afterwards; infra/adapters map into/from these types.
package domain
