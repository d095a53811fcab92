package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
)

// apply decodes obj into entity and runs the field, reference and
// uniqueness checks. full requires every required field to be present;
// self is excluded from uniqueness checks.
func (s *Service[T]) apply(ctx context.Context, entity *T, obj map[string]json.RawMessage, full bool, self uuid.UUID) error {
	dec := newDecoder(s.meta, entity)
	dec.decode(obj, full)
	verr := dec.errs
	touched := func(name string) bool { return full || dec.seen[name] }

	target := reflect.ValueOf(entity)
	for _, f := range s.meta.Fields {
		if f.ReadOnly || verr.Has(f.Name) {
			continue
		}
		if msg := s.deps.Validator.Field(f, f.value(target).Interface()); msg != "" {
			verr.Add(f.Name, msg)
		}
	}

	if err := s.checkReferences(ctx, entity, verr, touched); err != nil {
		return err
	}
	if err := s.checkUnique(ctx, entity, self, verr, touched); err != nil {
		return err
	}
	if verr.Empty() {
		if err := s.checkUniqueTogether(ctx, entity, self, verr); err != nil {
			return err
		}
	}
	return verr.OrNil()
}

func (s *Service[T]) checkReferences(ctx context.Context, entity *T, verr *shared.ValidationError, touched func(string) bool) error {
	if s.deps.References == nil {
		return nil
	}
	for _, ref := range s.def.References {
		if verr.Has(ref.Field) || !touched(ref.Field) {
			continue
		}
		f, ok := s.meta.Field(ref.Field)
		if !ok {
			continue
		}
		id, ok := f.Interface(entity).(uuid.UUID)
		if !ok {
			continue
		}
		if id == uuid.Nil {
			if f.Required {
				verr.Add(ref.Field, msgRequired)
			}
			continue
		}
		exists, err := s.deps.References.ReferenceExists(ctx, ref.Target, id)
		if err != nil {
			return fmt.Errorf("check %s reference: %w", ref.Field, err)
		}
		if !exists {
			verr.Add(ref.Field, fmt.Sprintf("Invalid pk %q - object does not exist.", id.String()))
		}
	}
	return nil
}

func (s *Service[T]) checkUnique(ctx context.Context, entity *T, self uuid.UUID, verr *shared.ValidationError, touched func(string) bool) error {
	for _, name := range s.def.Unique {
		if verr.Has(name) || !touched(name) {
			continue
		}
		f, ok := s.meta.Field(name)
		if !ok {
			continue
		}
		value := f.Interface(entity)
		if value == nil {
			continue
		}
		exists, err := s.repo.Exists(ctx, map[string]any{name: value}, self)
		if err != nil {
			return fmt.Errorf("check unique %s: %w", name, err)
		}
		if exists {
			verr.Add(name, fmt.Sprintf("%s with this %s already exists.", s.def.Verbose(), fieldWords(name)))
		}
	}
	return nil
}

func (s *Service[T]) checkUniqueTogether(ctx context.Context, entity *T, self uuid.UUID, verr *shared.ValidationError) error {
	for _, group := range s.def.UniqueTogether {
		conds := make(map[string]any, len(group))
		for _, name := range group {
			f, ok := s.meta.Field(name)
			if !ok {
				continue
			}
			conds[name] = f.Interface(entity)
		}
		exists, err := s.repo.Exists(ctx, conds, self)
		if err != nil {
			return fmt.Errorf("check unique together %v: %w", group, err)
		}
		if exists {
			verr.Add(shared.NonFieldErrors, fmt.Sprintf("The fields %s must make a unique set.", strings.Join(group, ", ")))
		}
	}
	return nil
}
