package usecase

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"mangopay_billable/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// remoteIDField is the MangoPay key carrying the remote user id on updates.
const remoteIDField = "Id"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report MangoPay (json) names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// mergeUserData overlays overrides on the entity base data. Only top-level
// keys are merged: a nested map in overrides replaces the base one whole.
func mergeUserData(base, overrides map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// buildUserPayload decodes the merged data into the NATURAL or LEGAL body,
// validates it and returns the JSON to send to the provider.
func buildUserPayload(personType entities.PersonType, data map[string]any) (json.RawMessage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, &ValidationError{Field: "*", Rule: "json"}
	}

	var payload any
	switch personType {
	case entities.PersonTypeNatural:
		var p entities.NaturalUserPayload
		if err := decodeUserData(raw, &p); err != nil {
			return nil, err
		}
		p.PersonType = entities.PersonTypeNatural
		payload = p
	default:
		var p entities.LegalUserPayload
		if err := decodeUserData(raw, &p); err != nil {
			return nil, err
		}
		p.PersonType = entities.PersonTypeLegal
		if strings.TrimSpace(p.LegalPersonType) == "" {
			p.LegalPersonType = entities.LegalPersonTypeBusiness
		}
		payload = p
	}

	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	return json.Marshal(payload)
}

func decodeUserData(raw []byte, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ValidationError{Field: typeErr.Field, Rule: "type"}
		}
		return &ValidationError{Field: "*", Rule: "json"}
	}
	return nil
}

// validatePayload runs the struct rules and reports the first violation.
func validatePayload(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: trimNamespace(fe.Namespace()), Rule: fe.Tag()}
	}
	return err
}

// trimNamespace drops the Go struct name validator puts first
// ("LegalUserPayload.HeadquartersAddress.City" -> "HeadquartersAddress.City").
func trimNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
