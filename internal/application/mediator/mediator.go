package mediator

import (
	"context"
	"fmt"
	"reflect"
)

// Handler processes one message type. Implementations are registered through
// the typed Register helper rather than implementing this directly.
type Handler interface {
	Handle(ctx context.Context, msg any) (any, error)
}

// Dispatcher routes a command or query value to exactly one registered
// handler. Dispatch is a pure type-keyed lookup: no retries, no timeouts, no
// transformation of the handler's result or failure.
//
// The dispatcher is built once at composition time and passed by reference;
// registering two handlers for the same message type is a configuration error
// surfaced at startup, not at dispatch time.
type Dispatcher struct {
	handlers map[reflect.Type]Handler
}

func New() *Dispatcher {
	return &Dispatcher{handlers: make(map[reflect.Type]Handler)}
}

func (d *Dispatcher) register(t reflect.Type, h Handler) error {
	if _, exists := d.handlers[t]; exists {
		return fmt.Errorf("mediator: handler already registered for %s", t)
	}
	d.handlers[t] = h
	return nil
}

// Dispatch resolves the handler for msg's runtime type and invokes it.
func (d *Dispatcher) Dispatch(ctx context.Context, msg any) (any, error) {
	h, ok := d.handlers[reflect.TypeOf(msg)]
	if !ok {
		return nil, fmt.Errorf("mediator: no handler registered for %T", msg)
	}
	return h.Handle(ctx, msg)
}

type typedHandler[M any, R any] struct {
	fn func(ctx context.Context, msg M) (R, error)
}

func (h typedHandler[M, R]) Handle(ctx context.Context, msg any) (any, error) {
	m, ok := msg.(M)
	if !ok {
		return nil, fmt.Errorf("mediator: message %T does not match registered type", msg)
	}
	return h.fn(ctx, m)
}

// Register binds a typed handler function to the message type M.
func Register[M any, R any](d *Dispatcher, fn func(ctx context.Context, msg M) (R, error)) error {
	var m M
	return d.register(reflect.TypeOf(m), typedHandler[M, R]{fn: fn})
}

// MustRegister is Register for composition roots, where a duplicate
// registration must abort startup.
func MustRegister[M any, R any](d *Dispatcher, fn func(ctx context.Context, msg M) (R, error)) {
	if err := Register(d, fn); err != nil {
		panic(err)
	}
}

// Send dispatches msg and asserts the result to R.
func Send[R any, M any](ctx context.Context, d *Dispatcher, msg M) (R, error) {
	var zero R
	res, err := d.Dispatch(ctx, msg)
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}
	r, ok := res.(R)
	if !ok {
		return zero, fmt.Errorf("mediator: handler for %T returned %T", msg, res)
	}
	return r, nil
}
