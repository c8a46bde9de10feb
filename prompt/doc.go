// Package prompt asks an operator for a number on a line-oriented console and
// keeps asking until the response parses and falls inside an inclusive range.
//
// Malformed and out-of-range responses never reach the caller; they are
// absorbed by reprompting, optionally preceded by a one-line advisory that
// restates the accepted range. Only host-boundary failures (closed input,
// failed writes, a done context) are returned as errors.
package prompt
