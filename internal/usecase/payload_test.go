package usecase

import (
	"encoding/json"
	"errors"
	"testing"

	"mangopay_billable/internal/domain/entities"
)

func TestMergeUserData(t *testing.T) {
	base := map[string]any{"Name": "Acme", "Email": "a@acme.test", "HeadquartersAddress": map[string]any{"City": "Paris"}}
	out := mergeUserData(base, map[string]any{"Email": "b@acme.test", "HeadquartersAddress": map[string]any{"Country": "FR"}})

	if out["Name"] != "Acme" || out["Email"] != "b@acme.test" {
		t.Fatalf("unexpected merge %v", out)
	}
	addr := out["HeadquartersAddress"].(map[string]any)
	if _, ok := addr["City"]; ok {
		t.Fatalf("nested maps are replaced, not merged: %v", addr)
	}
	if base["Email"] != "a@acme.test" {
		t.Fatalf("base must not be mutated")
	}

	if got := mergeUserData(nil, nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestBuildUserPayload(t *testing.T) {
	t.Run("legal defaults", func(t *testing.T) {
		raw, err := buildUserPayload(entities.PersonTypeLegal, legalData())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["PersonType"] != "LEGAL" || body["LegalPersonType"] != "BUSINESS" {
			t.Fatalf("unexpected body %s", raw)
		}
		if _, ok := body["Id"]; ok {
			t.Fatalf("empty Id must be omitted: %s", raw)
		}
	})

	t.Run("legal person type kept", func(t *testing.T) {
		data := legalData()
		data["LegalPersonType"] = "ORGANIZATION"
		raw, err := buildUserPayload(entities.PersonTypeLegal, data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		if body["LegalPersonType"] != "ORGANIZATION" {
			t.Fatalf("unexpected body %s", raw)
		}
	})

	tests := []struct {
		name  string
		edit  func(map[string]any)
		field string
		rule  string
	}{
		{"missing name", func(d map[string]any) { delete(d, "Name") }, "Name", "required"},
		{"bad email", func(d map[string]any) { d["Email"] = "nope" }, "Email", "email"},
		{"missing headquarters", func(d map[string]any) { delete(d, "HeadquartersAddress") }, "HeadquartersAddress", "required"},
		{"nested address field", func(d map[string]any) {
			d["HeadquartersAddress"] = map[string]any{"AddressLine1": "x", "PostalCode": "1", "Country": "FR"}
		}, "HeadquartersAddress.City", "required"},
		{"country length", func(d map[string]any) { d["LegalRepresentativeNationality"] = "FRA" }, "LegalRepresentativeNationality", "len"},
		{"wrong type", func(d map[string]any) { d["Name"] = 12 }, "Name", "type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := legalData()
			tt.edit(data)
			_, err := buildUserPayload(entities.PersonTypeLegal, data)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field || ve.Rule != tt.rule {
				t.Fatalf("expected %s/%s, got %s/%s", tt.field, tt.rule, ve.Field, ve.Rule)
			}
		})
	}

	t.Run("natural requires names", func(t *testing.T) {
		_, err := buildUserPayload(entities.PersonTypeNatural, map[string]any{"Email": "ada@example.test"})
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "FirstName" {
			t.Fatalf("expected FirstName validation error, got %v", err)
		}
	})
}
