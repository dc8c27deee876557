package xcontext

import (
	"context"
	"net/http"
)

type (
	stateKey   struct{}
	requestKey struct{}
)

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, requestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	r, _ := ctx.Value(requestKey{}).(*http.Request)
	return r
}

// requestState is filled in by the router while a request is handled, so
// closers running after the handler can observe its outcome.
type requestState struct {
	err      error
	response any
}

func WithRequestState(ctx context.Context) context.Context {
	return context.WithValue(ctx, stateKey{}, &requestState{})
}

func SetError(ctx context.Context, err error) {
	if s, ok := ctx.Value(stateKey{}).(*requestState); ok {
		s.err = err
	}
}

func GetError(ctx context.Context) error {
	if s, ok := ctx.Value(stateKey{}).(*requestState); ok {
		return s.err
	}

	return nil
}

func SetResponse(ctx context.Context, resp any) {
	if s, ok := ctx.Value(stateKey{}).(*requestState); ok {
		s.response = resp
	}
}

func GetResponse(ctx context.Context) any {
	if s, ok := ctx.Value(stateKey{}).(*requestState); ok {
		return s.response
	}

	return nil
}
