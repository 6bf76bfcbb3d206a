// Package pkgroutine runs named background tasks under a concurrency limit
// and reports their errors and panics through Manager.Wait.
package pkgroutine
