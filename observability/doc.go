// Package observability records translated error conditions on OpenTelemetry
// spans. Wire it into a registry as a translation hook:
//
//	reg := translate.NewBuilder().
//	    RegisterDefaults().
//	    WithHook(observability.Hook()).
//	    MustBuild()
//
// The tracer provider itself belongs to the host service; this package only
// consumes the active span from the request context.
package observability
