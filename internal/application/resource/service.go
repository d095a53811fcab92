package resource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"reflect"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Deps are the collaborators shared by every resource service.
type Deps struct {
	Validator  *Validator
	References shared.ReferenceChecker
	Auditor    Auditor
	Observer   Observer
	Pagination Pagination
	Logger     *zap.Logger
}

// Service implements list, retrieve, create, update and delete for one
// entity type. *T must implement shared.Entity.
type Service[T any] struct {
	def  Definition
	meta *Meta
	repo shared.Repository[T]
	deps Deps
}

// NewService creates the service for def backed by repo.
func NewService[T any](def Definition, repo shared.Repository[T], deps Deps) *Service[T] {
	var zero T
	if _, ok := any(&zero).(shared.Entity); !ok {
		panic(fmt.Sprintf("resource: *%T does not implement shared.Entity", zero))
	}
	if deps.Validator == nil {
		deps.Validator = NewValidator()
	}
	if deps.Pagination.DefaultPageSize <= 0 || deps.Pagination.MaxPageSize <= 0 {
		deps.Pagination = DefaultPagination
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Service[T]{
		def:  def,
		meta: newMeta(reflect.TypeOf(zero), def),
		repo: repo,
		deps: deps,
	}
}

// Definition returns the resource definition.
func (s *Service[T]) Definition() Definition { return s.def }

// Meta returns the reflected field list.
func (s *Service[T]) Meta() *Meta { return s.meta }

// Repository exposes the underlying store to module services.
func (s *Service[T]) Repository() shared.Repository[T] { return s.repo }

// Page is one window of a list result.
type Page[T any] struct {
	Count    int64
	Page     int
	PageSize int
	NumPages int
	Results  []T
}

// HasNext reports whether a later page exists.
func (p *Page[T]) HasNext() bool { return p.Page < p.NumPages }

// HasPrevious reports whether an earlier page exists.
func (p *Page[T]) HasPrevious() bool { return p.Page > 1 }

// List returns the page selected by params.
func (s *Service[T]) List(ctx context.Context, params url.Values) (*Page[T], error) {
	conds, err := filterConditions(s.def, s.meta, params)
	if err != nil {
		return nil, err
	}
	q := shared.Query{Conditions: conds, Search: searchTerms(s.def, params)}

	count, err := s.repo.Count(ctx, q)
	if err != nil {
		return nil, err
	}
	size := s.deps.Pagination.PageSize(params)
	page, pages, err := pageNumber(params, count, size)
	if err != nil {
		return nil, err
	}

	q.Order = ordering(s.def, s.meta, params)
	q.Offset = (page - 1) * size
	q.Limit = size
	rows, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		redact(&rows[i])
	}
	return &Page[T]{Count: count, Page: page, PageSize: size, NumPages: pages, Results: rows}, nil
}

// Get returns one entity.
func (s *Service[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.output(entity), nil
}

// Create validates body and stores a new entity.
func (s *Service[T]) Create(ctx context.Context, body []byte) (*T, error) {
	obj, err := parseObject(body)
	if err != nil {
		return nil, err
	}

	entity := new(T)
	if d, ok := any(entity).(shared.Defaulter); ok {
		d.ApplyDefaults()
	}
	if err := s.apply(ctx, entity, obj, true, uuid.Nil); err != nil {
		return nil, err
	}
	if err := prepare(entity); err != nil {
		return nil, err
	}

	id := uuid.New()
	any(entity).(shared.Entity).AssignID(id)
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	out := s.output(entity)
	s.written(ctx, ActionCreate, id, nil, out)
	return out, nil
}

// Update replaces (partial false) or patches (partial true) an entity.
func (s *Service[T]) Update(ctx context.Context, id uuid.UUID, body []byte, partial bool) (*T, error) {
	if s.def.AppendOnly {
		return nil, shared.NewMethodNotAllowedError(lo.Ternary(partial, http.MethodPatch, http.MethodPut))
	}
	obj, err := parseObject(body)
	if err != nil {
		return nil, err
	}
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := s.output(entity)

	if err := s.apply(ctx, entity, obj, !partial, id); err != nil {
		return nil, err
	}
	return s.save(ctx, id, entity, before)
}

// Modify loads an entity, applies fn and stores the result after
// re-validating every field. Module actions mutate records through it.
func (s *Service[T]) Modify(ctx context.Context, id uuid.UUID, fn func(*T) error) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := s.output(entity)

	if err := fn(entity); err != nil {
		return nil, err
	}
	verr := s.deps.Validator.Struct(s.meta, entity)
	if err := s.checkReferences(ctx, entity, verr, func(string) bool { return true }); err != nil {
		return nil, err
	}
	if !verr.Empty() {
		return nil, verr
	}
	return s.save(ctx, id, entity, before)
}

// Input decodes the fields present in body into a new T without storing
// it. Fields named in required must be present.
func (s *Service[T]) Input(body []byte, required ...string) (*T, error) {
	obj, err := parseObject(body)
	if err != nil {
		return nil, err
	}
	entity := new(T)
	dec := newDecoder(s.meta, entity)
	dec.decode(obj, false)
	for _, name := range required {
		if _, ok := obj[name]; !ok && !dec.errs.Has(name) {
			dec.errs.Add(name, msgRequired)
		}
	}
	if err := dec.errs.OrNil(); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service[T]) save(ctx context.Context, id uuid.UUID, entity, before *T) (*T, error) {
	if err := prepare(entity); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}
	out := s.output(entity)
	s.written(ctx, ActionUpdate, id, before, out)
	return out, nil
}

// Delete removes an entity, applying the delete policy of every reference
// pointing at it.
func (s *Service[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if s.def.AppendOnly {
		return shared.NewMethodNotAllowedError(http.MethodDelete)
	}
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	before := s.output(entity)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.written(ctx, ActionDelete, id, before, nil)
	return nil
}

func (s *Service[T]) written(ctx context.Context, action string, id uuid.UUID, before, after *T) {
	if s.deps.Observer != nil {
		s.deps.Observer.ResourceWritten(ctx, s.def, action)
	}
	if !s.def.Audited || s.deps.Auditor == nil {
		return
	}

	event := AuditEvent{
		Action:     action,
		EntityType: s.def.Name,
		EntityID:   id.String(),
		Actor:      ActorFrom(ctx),
	}
	if before != nil {
		event.Old = before
	}
	if after != nil {
		event.New = after
	}
	if err := s.deps.Auditor.Record(ctx, event); err != nil {
		s.deps.Logger.Error("Failed to record audit event",
			zap.String("entity_type", s.def.Name),
			zap.String("entity_id", event.EntityID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

// output returns a copy of entity safe to hand to clients.
func (s *Service[T]) output(entity *T) *T {
	out := *entity
	redact(&out)
	return &out
}

func redact[T any](entity *T) {
	if r, ok := any(entity).(shared.Redactor); ok {
		r.Redact()
	}
}

func prepare[T any](entity *T) error {
	if p, ok := any(entity).(shared.Preparer); ok {
		if err := p.Prepare(); err != nil {
			return fmt.Errorf("prepare %T: %w", entity, err)
		}
	}
	return nil
}
