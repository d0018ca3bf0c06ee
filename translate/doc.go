// Package translate maps raised error conditions to structured client
// responses. It is the centralized error-handling layer of errkit.
//
// A Registry is built once at process start and is read-only afterward, so
// concurrent request handlers can translate without locking:
//
//	reg, err := translate.NewBuilder().
//	    RegisterDefaults().
//	    Register("order.expired", http.StatusGone).
//	    Derive("order.payment_declined", errors.KindConflict).
//	    WithLogger(log).
//	    Build()
//
//	resp := reg.Translate(ctx, errors.NotFound("post", "42"))
//
// Kinds may form a hierarchy via Derive; a condition whose kind has no direct
// registration is handled by its most specific registered ancestor, resolved
// at build time into a flat lookup table. Anything still unmatched falls
// through to the default handler (status 500, generic message).
//
// Translate never fails: a panicking body builder is recovered and replaced
// with the default response, and the failure is reported through the
// configured logger. Every translated condition is logged exactly once.
package translate
