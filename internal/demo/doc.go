// Package demo provides a small simulated machine for the devmon CLI and the
// end-to-end tests: a bus with a UART, an LED, a register bank and a host
// terminal.
package demo
