// Package errors defines the error condition type shared by all errkit
// packages. A Condition carries a machine-readable Kind, a human-readable
// message, optional structured details, and an optional cause preserved for
// errors.Is / errors.As.
//
// Conditions are raised by application logic and translated into client
// responses by the translate package; the Kind decides which registered
// handler applies there.
package errors
