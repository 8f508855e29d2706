// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyAsset ctxKey = "asset"
)

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, asset string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if asset != "" {
		ctx = context.WithValue(ctx, keyAsset, asset)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// Asset returns the asset scope on the context if present
func Asset(ctx context.Context) string {
	if v, ok := ctx.Value(keyAsset).(string); ok {
		return v
	}
	return ""
}
