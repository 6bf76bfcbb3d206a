// Package pkgerror holds the error type handlers return.
//
// An *Error pairs the message a client sees with the cause that only reaches
// the logs. The router renders it as {"error": msg} with StatusCode().
package pkgerror
