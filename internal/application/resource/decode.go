package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	msgRequired = "This field is required."
	msgNull     = "This field may not be null."
)

// parseObject decodes a request body that must be a JSON object.
func parseObject(body []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	if !json.Valid(trimmed) {
		var v any
		err := json.Unmarshal(trimmed, &v)
		return nil, shared.FieldError(shared.NonFieldErrors, fmt.Sprintf("JSON parse error - %v", err))
	}
	if trimmed[0] != '{' {
		return nil, shared.FieldError(shared.NonFieldErrors,
			fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", jsonTypeName(trimmed)))
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, shared.FieldError(shared.NonFieldErrors, fmt.Sprintf("JSON parse error - %v", err))
	}
	return obj, nil
}

func jsonTypeName(raw json.RawMessage) string {
	switch raw[0] {
	case '[':
		return "list"
	case '"':
		return "str"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	}
	return "int"
}

// decoder writes request values into an entity field by field, collecting
// one message per failing field.
type decoder struct {
	meta   *Meta
	target reflect.Value // pointer to the entity
	errs   *shared.ValidationError
	seen   map[string]bool
}

func newDecoder(meta *Meta, entity any) *decoder {
	return &decoder{
		meta:   meta,
		target: reflect.ValueOf(entity),
		errs:   shared.NewValidationError(),
		seen:   make(map[string]bool),
	}
}

// decode applies every writable field present in obj. When full is set,
// required fields missing from obj are reported.
func (d *decoder) decode(obj map[string]json.RawMessage, full bool) {
	for _, f := range d.meta.Fields {
		if f.ReadOnly {
			continue
		}
		raw, ok := obj[f.Name]
		if !ok {
			if full && f.Required {
				d.errs.Add(f.Name, msgRequired)
			}
			continue
		}
		d.seen[f.Name] = true
		if msg := d.assign(f, raw); msg != "" {
			d.errs.Add(f.Name, msg)
		}
	}
}

func (d *decoder) assign(f Field, raw json.RawMessage) string {
	fv := f.value(d.target)
	if isNull(raw) {
		if !f.Nullable {
			if f.Kind == KindJSON {
				fv.Set(reflect.Zero(fv.Type()))
				return ""
			}
			return msgNull
		}
		fv.Set(reflect.Zero(fv.Type()))
		return ""
	}

	ptr := reflect.New(f.typ)
	if msg := decodeValue(f, raw, ptr.Interface()); msg != "" {
		return msg
	}
	if f.Kind == KindString {
		trimmed := strings.TrimSpace(ptr.Elem().String())
		ptr.Elem().SetString(trimmed)
	}
	if f.Nullable {
		fv.Set(ptr)
	} else {
		fv.Set(ptr.Elem())
	}
	return ""
}

func decodeValue(f Field, raw json.RawMessage, dst any) string {
	switch f.Kind {
	case KindInteger:
		if s, ok := quoted(raw); ok {
			raw = json.RawMessage(strings.TrimSpace(s))
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return "A valid integer is required."
		}
	case KindBoolean:
		if s, ok := quoted(raw); ok {
			b, valid := parseBool(s)
			if !valid {
				return "Must be a valid boolean."
			}
			reflect.ValueOf(dst).Elem().SetBool(b)
			return ""
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return "Must be a valid boolean."
		}
	case KindString:
		if err := json.Unmarshal(raw, dst); err != nil {
			if len(f.Choices) > 0 {
				return fmt.Sprintf("%q is not a valid choice.", strings.Trim(string(raw), `"`))
			}
			return "Not a valid string."
		}
	case KindDecimal, KindNumber:
		if err := json.Unmarshal(raw, dst); err != nil {
			return "A valid number is required."
		}
	case KindDate:
		if err := json.Unmarshal(raw, dst); err != nil {
			return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
		}
	case KindTime:
		if err := json.Unmarshal(raw, dst); err != nil {
			return "Time has wrong format. Use one of these formats instead: hh:mm[:ss[.uuuuuu]]."
		}
	case KindDateTime:
		if err := json.Unmarshal(raw, dst); err != nil {
			return "Datetime has wrong format. Use one of these formats instead: YYYY-MM-DDThh:mm[:ss[.uuuuuu]][+HH:MM|-HH:MM|Z]."
		}
	case KindUUID:
		s, ok := quoted(raw)
		if !ok {
			return fmt.Sprintf("Incorrect type. Expected pk value, received %s.", jsonTypeName(raw))
		}
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return fmt.Sprintf("Invalid pk %q - object does not exist.", s)
		}
		reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(id))
	case KindJSON:
		if err := json.Unmarshal(raw, dst); err != nil {
			return "Value must be valid JSON."
		}
	default:
		if err := json.Unmarshal(raw, dst); err != nil {
			return "Invalid value."
		}
	}
	return ""
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func quoted(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "t", "y":
		return true, true
	case "false", "0", "no", "off", "f", "n":
		return false, true
	}
	b, err := strconv.ParseBool(s)
	return b, err == nil
}
