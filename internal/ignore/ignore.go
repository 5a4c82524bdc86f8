// Package ignore decides which files under a root directory are excluded
//
// Rules come from a single gitignore-syntax file at the top level of the
// root. Matching itself is delegated to an Engine, so the walker and the
// printer never see pattern syntax. It uses the functional options pattern
// for configuration.
package ignore
