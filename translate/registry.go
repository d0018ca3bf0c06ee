package translate

import (
	"context"
	"net/http"
	"time"

	"github.com/kbukum/errkit/errors"
	"github.com/kbukum/errkit/logger"
	"github.com/kbukum/errkit/util"
)

type entry struct {
	// kind is the registered kind the lookup resolved to (the condition's
	// own kind, or its nearest registered ancestor).
	kind   errors.Kind
	status int
	body   BodyBuilder
}

// Registry is the immutable kind-to-handler table. It is built once via
// Builder.Build and safe for concurrent use without locking.
type Registry struct {
	table         map[errors.Kind]entry
	defaultStatus int
	defaultPrefix string
	exposeDetails bool
	log           *logger.Logger
	now           func() time.Time
	hooks         []Hook
}

// Translate maps a condition to a structured response. It never fails: an
// unregistered kind or a panicking body builder yields the default response
// instead. Every call emits exactly one log record through the configured
// logger (error level for 5xx responses, info otherwise).
func (r *Registry) Translate(ctx context.Context, cond *errors.Condition) Response {
	if cond == nil {
		cond = &errors.Condition{Kind: errors.KindInternal, Message: genericMessage}
	}

	resp, builderErr := r.build(cond)
	r.logOnce(ctx, cond, resp, builderErr)

	for _, h := range r.hooks {
		r.runHook(ctx, h, cond, resp)
	}
	return resp
}

// TranslateError adapts an arbitrary error before translating it. Plain
// errors become internal-kind conditions.
func (r *Registry) TranslateError(ctx context.Context, err error) Response {
	return r.Translate(ctx, errors.Wrap(err))
}

// Kinds returns the kinds with a resolved handler, for introspection.
func (r *Registry) Kinds() []errors.Kind {
	kinds := make([]errors.Kind, 0, len(r.table))
	for k := range r.table {
		kinds = append(kinds, k)
	}
	return kinds
}

// build computes the response. The returned error is non-nil only when a
// body builder failed and the default response was substituted.
func (r *Registry) build(cond *errors.Condition) (resp Response, builderErr error) {
	e, ok := r.table[cond.Kind]
	if !ok {
		return r.fallback(cond), nil
	}

	defer func() {
		if rec := recover(); rec != nil {
			builderErr = errors.Newf(errors.KindInternal, "response builder for kind %q panicked: %v", e.kind, rec)
			resp = r.fallback(cond)
		}
	}()

	fields := map[string]any{}
	if r.exposeDetails {
		for k, v := range cond.Details {
			fields[k] = v
		}
	}
	if e.body != nil {
		for k, v := range e.body(cond) {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		fields = nil
	}

	msg := util.SanitizeString(cond.Message)
	if msg == "" {
		msg = genericMessage
	}

	return Response{
		Kind:      cond.Kind,
		Status:    e.status,
		Message:   msg,
		Retryable: errors.IsRetryableKind(cond.Kind),
		Fields:    fields,
		Timestamp: r.now().UTC(),
	}, nil
}

// fallback is the handler of last resort.
func (r *Registry) fallback(cond *errors.Condition) Response {
	msg := util.SanitizeString(cond.Message)
	if msg == "" {
		msg = genericMessage
	} else {
		msg = r.defaultPrefix + msg
	}
	return Response{
		Kind:      errors.KindInternal,
		Status:    r.defaultStatus,
		Message:   msg,
		Retryable: false,
		Timestamp: r.now().UTC(),
	}
}

func (r *Registry) logOnce(ctx context.Context, cond *errors.Condition, resp Response, builderErr error) {
	log := r.log.WithContext(ctx)
	fields := logger.Fields(
		logger.FieldKind, string(cond.Kind),
		logger.FieldStatus, resp.Status,
		"message", cond.Message,
	)
	if cond.Cause != nil {
		fields[logger.FieldCause] = cond.Cause.Error()
	}

	switch {
	case builderErr != nil:
		fields[logger.FieldError] = builderErr.Error()
		log.Error("response builder failed, served default response", fields)
	case resp.Status >= http.StatusInternalServerError:
		log.Error("condition translated", fields)
	default:
		log.Info("condition translated", fields)
	}
}

func (r *Registry) runHook(ctx context.Context, h Hook, cond *errors.Condition, resp Response) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("translation hook panicked", logger.Fields(
				logger.FieldKind, string(cond.Kind),
				logger.FieldError, rec,
			))
		}
	}()
	h(ctx, cond, resp)
}
