package translate

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/kbukum/errkit/errors"
	"github.com/kbukum/errkit/logger"
)

// BodyBuilder produces the structured fields for a response from a condition.
// Builders must be deterministic; translation is idempotent modulo timestamp.
type BodyBuilder func(cond *errors.Condition) map[string]any

// Hook observes a completed translation. Hooks run after the response is
// built; a panicking hook is recovered and logged, never propagated.
type Hook func(ctx context.Context, cond *errors.Condition, resp Response)

// DefaultMessagePrefix prefixes the condition message on the fallback path.
const DefaultMessagePrefix = "An error occurred: "

// genericMessage is used when a condition carries no usable message.
const genericMessage = "An error occurred."

type registration struct {
	kind   errors.Kind
	status int
	body   BodyBuilder
}

// RegisterOption customizes a single handler registration.
type RegisterOption func(*registration)

// WithBody attaches a response-body builder to the registration.
func WithBody(b BodyBuilder) RegisterOption {
	return func(r *registration) { r.body = b }
}

// Builder assembles an immutable Registry. It is not safe for concurrent
// use; build the registry during startup, before serving requests.
type Builder struct {
	regs    []registration
	index   map[errors.Kind]int
	parents map[errors.Kind]errors.Kind

	defaultStatus int
	defaultPrefix string
	exposeDetails bool

	log   *logger.Logger
	now   func() time.Time
	hooks []Hook
}

// NewBuilder creates a Builder with the catch-all defaults in place:
// status 500, message "An error occurred: <condition message>", details
// exposed, nop logger.
func NewBuilder() *Builder {
	return &Builder{
		index:         make(map[errors.Kind]int),
		parents:       make(map[errors.Kind]errors.Kind),
		defaultStatus: http.StatusInternalServerError,
		defaultPrefix: DefaultMessagePrefix,
		exposeDetails: true,
		log:           logger.Nop(),
		now:           time.Now,
	}
}

// Register associates a kind with a status code and optional body builder.
// Registering the same kind twice keeps the first registration.
func (b *Builder) Register(kind errors.Kind, status int, opts ...RegisterOption) *Builder {
	if _, dup := b.index[kind]; dup {
		return b
	}
	reg := registration{kind: kind, status: status}
	for _, opt := range opts {
		opt(&reg)
	}
	b.index[kind] = len(b.regs)
	b.regs = append(b.regs, reg)
	return b
}

// Derive declares kind as a subtype of parent. A condition of a derived kind
// with no direct registration is handled by its most specific registered
// ancestor. The first declared parent for a kind wins.
func (b *Builder) Derive(kind, parent errors.Kind) *Builder {
	if _, dup := b.parents[kind]; dup {
		return b
	}
	b.parents[kind] = parent
	return b
}

// RegisterDefaults registers the built-in taxonomy with conventional HTTP
// statuses. already_exists is derived from conflict rather than registered
// directly.
func (b *Builder) RegisterDefaults() *Builder {
	b.Register(errors.KindInternal, http.StatusInternalServerError)
	b.Register(errors.KindNotFound, http.StatusNotFound)
	b.Register(errors.KindValidation, http.StatusBadRequest)
	b.Register(errors.KindUnauthorized, http.StatusUnauthorized)
	b.Register(errors.KindForbidden, http.StatusForbidden)
	b.Register(errors.KindConflict, http.StatusConflict)
	b.Register(errors.KindTimeout, http.StatusGatewayTimeout)
	b.Register(errors.KindUnavailable, http.StatusServiceUnavailable)
	b.Register(errors.KindRateLimited, http.StatusTooManyRequests)
	b.Derive(errors.KindAlreadyExists, errors.KindConflict)
	return b
}

// Default overrides the catch-all handler. prefix is prepended to the
// condition message; pass "" to keep the standard prefix.
func (b *Builder) Default(status int, prefix string) *Builder {
	b.defaultStatus = status
	if prefix != "" {
		b.defaultPrefix = prefix
	}
	return b
}

// ExposeDetails controls whether condition details are copied into response
// fields. Enabled by default.
func (b *Builder) ExposeDetails(expose bool) *Builder {
	b.exposeDetails = expose
	return b
}

// WithLogger sets the logging collaborator used for translated conditions.
func (b *Builder) WithLogger(log *logger.Logger) *Builder {
	if log != nil {
		b.log = log
	}
	return b
}

// WithClock overrides the timestamp source. Intended for tests.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// WithHook appends a translation hook.
func (b *Builder) WithHook(h Hook) *Builder {
	if h != nil {
		b.hooks = append(b.hooks, h)
	}
	return b
}

// FromConfig applies declarative registry configuration. Explicit Register
// and Derive calls made before FromConfig win over config entries for the
// same kind.
func (b *Builder) FromConfig(cfg Config) *Builder {
	cfg.ApplyDefaults()
	b.Default(cfg.DefaultStatus, cfg.DefaultPrefix)
	b.exposeDetails = !cfg.HideDetails

	// Sorted for deterministic registration order.
	kinds := make([]string, 0, len(cfg.Kinds))
	for k := range cfg.Kinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	for _, k := range kinds {
		kc := cfg.Kinds[k]
		if kc.Parent != "" {
			b.Derive(errors.Kind(k), errors.Kind(kc.Parent))
		}
		if kc.Status != 0 {
			b.Register(errors.Kind(k), kc.Status)
		}
	}
	return b
}

// Build resolves the kind hierarchy into a flat lookup table and returns the
// immutable Registry. It fails on cycles in the declared hierarchy.
func (b *Builder) Build() (*Registry, error) {
	if err := b.checkCycles(); err != nil {
		return nil, err
	}

	table := make(map[errors.Kind]entry, len(b.index)+len(b.parents))

	// Direct registrations map to themselves.
	for kind, i := range b.index {
		reg := b.regs[i]
		table[kind] = entry{kind: kind, status: reg.status, body: reg.body}
	}

	// Derived kinds resolve to the nearest registered ancestor. Kinds whose
	// whole ancestry is unregistered are left out and fall through to the
	// default handler at translation time.
	for kind := range b.parents {
		if _, ok := table[kind]; ok {
			continue
		}
		ancestor := b.parents[kind]
		for {
			if i, ok := b.index[ancestor]; ok {
				reg := b.regs[i]
				table[kind] = entry{kind: ancestor, status: reg.status, body: reg.body}
				break
			}
			next, ok := b.parents[ancestor]
			if !ok {
				break
			}
			ancestor = next
		}
	}

	return &Registry{
		table:         table,
		defaultStatus: b.defaultStatus,
		defaultPrefix: b.defaultPrefix,
		exposeDetails: b.exposeDetails,
		log:           b.log.WithComponent("translate"),
		now:           b.now,
		hooks:         b.hooks,
	}, nil
}

// MustBuild is Build, panicking on error. For startup wiring where a broken
// hierarchy declaration is a programming error.
func (b *Builder) MustBuild() *Registry {
	reg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return reg
}

func (b *Builder) checkCycles() error {
	for start := range b.parents {
		seen := map[errors.Kind]bool{start: true}
		cur := start
		for {
			next, ok := b.parents[cur]
			if !ok {
				break
			}
			if seen[next] {
				return fmt.Errorf("kind hierarchy cycle involving %q", next)
			}
			seen[next] = true
			cur = next
		}
	}
	return nil
}
