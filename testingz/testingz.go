// Package testingz provides helpers to write concise code in tests.
package testingz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// OKResult wraps the (value, ok) pair returned by lookup-style calls.
type OKResult[T any] struct {
	t  *testing.T
	v  T
	ok bool
}

// OK wraps the two return values of a lookup-style call.
func OK[T any](v T, ok bool) *OKResult[T] {
	return &OKResult[T]{
		v:  v,
		ok: ok,
	}
}

func (r *OKResult[T]) V() T {
	return r.v
}

func (r *OKResult[T]) True(t *testing.T, msgf ...any) *OKResult[T] {
	require.True(t, r.ok, msgf...)
	r.t = t
	return r
}

func (r *OKResult[T]) False(t *testing.T, msgf ...any) *OKResult[T] {
	require.False(t, r.ok, msgf...)
	r.t = t
	return r
}

func (r *OKResult[T]) Equal(v T, msgf ...any) *OKResult[T] {
	require.Equal(r.t, v, r.v, msgf...)
	return r
}

func (r *OKResult[T]) Zero(msgf ...any) *OKResult[T] {
	require.Zero(r.t, r.v, msgf...)
	return r
}

func (r *OKResult[T]) Log() *OKResult[T] {
	r.t.Log(r.v)
	return r
}

func (r *OKResult[T]) Do(f func(t *testing.T, it T)) *OKResult[T] {
	f(r.t, r.v)
	return r
}
