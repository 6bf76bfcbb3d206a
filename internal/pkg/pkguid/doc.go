// Package pkguid provides helpers for generating unique identifiers.
//
// The codebase depends on the StringID interface instead of a concrete UID
// strategy, so request correlation IDs can be swapped out in tests.
package pkguid
