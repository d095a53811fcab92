package resource

import (
	"context"
	"net/url"

	"github.com/google/uuid"
)

// Endpoint is the type-erased view of a Service used by transport code that
// serves every resource through one handler.
type Endpoint interface {
	Definition() Definition
	Meta() *Meta
	Model() any
	List(ctx context.Context, params url.Values) (*Page[any], error)
	Get(ctx context.Context, id uuid.UUID) (any, error)
	Create(ctx context.Context, body []byte) (any, error)
	Update(ctx context.Context, id uuid.UUID, body []byte, partial bool) (any, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Endpoint returns the type-erased view of s.
func (s *Service[T]) Endpoint() Endpoint {
	return endpoint[T]{s: s}
}

type endpoint[T any] struct {
	s *Service[T]
}

func (e endpoint[T]) Definition() Definition { return e.s.def }

func (e endpoint[T]) Meta() *Meta { return e.s.meta }

func (e endpoint[T]) Model() any { return new(T) }

func (e endpoint[T]) List(ctx context.Context, params url.Values) (*Page[any], error) {
	page, err := e.s.List(ctx, params)
	if err != nil {
		return nil, err
	}
	results := make([]any, len(page.Results))
	for i := range page.Results {
		results[i] = &page.Results[i]
	}
	return &Page[any]{
		Count:    page.Count,
		Page:     page.Page,
		PageSize: page.PageSize,
		NumPages: page.NumPages,
		Results:  results,
	}, nil
}

func (e endpoint[T]) Get(ctx context.Context, id uuid.UUID) (any, error) {
	return e.s.Get(ctx, id)
}

func (e endpoint[T]) Create(ctx context.Context, body []byte) (any, error) {
	return e.s.Create(ctx, body)
}

func (e endpoint[T]) Update(ctx context.Context, id uuid.UUID, body []byte, partial bool) (any, error) {
	return e.s.Update(ctx, id, body, partial)
}

func (e endpoint[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return e.s.Delete(ctx, id)
}
