package models

import (
	"errors"
	"reflect"
	"testing"
)

// The generic import decoder keeps embedded secrets as raw mappings —
// current wire behavior, asserted deliberately.
func TestImportGenericDecodeRetainsRawSecrets(t *testing.T) {
	m := map[string]any{
		"secretPath":  "/",
		"environment": "dev",
		"secrets":     []any{minimalSecretMap()},
	}
	im, err := ImportFromMap(m)
	if err != nil {
		t.Fatalf("ImportFromMap failed: %v", err)
	}
	raw, ok := im.Secrets[0].(map[string]any)
	if !ok {
		t.Fatalf("secrets[0] = %T, want raw map[string]any", im.Secrets[0])
	}
	if raw["secretKey"] != "K" {
		t.Errorf("raw secret not retained: %v", raw)
	}

	secrets, err := im.TypedSecrets()
	if err != nil {
		t.Fatalf("TypedSecrets failed: %v", err)
	}
	if len(secrets) != 1 || secrets[0].SecretKey != "K" {
		t.Errorf("TypedSecrets = %+v", secrets)
	}
	if _, ok := im.Secrets[0].(map[string]any); !ok {
		t.Error("TypedSecrets mutated the stored record")
	}
}

func TestImportRoundTrip(t *testing.T) {
	im := Import{
		SecretPath:  "/shared",
		Environment: "staging",
		FolderID:    strptr("f1"),
		Secrets:     []any{},
	}
	got, err := ImportFromMap(im.ToMap())
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if !reflect.DeepEqual(got, im) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, im)
	}

	noFolder := Import{SecretPath: "/", Environment: "dev", Secrets: []any{}}
	m := noFolder.ToMap()
	if _, present := m["folderId"]; present {
		t.Error("unset folderId must be omitted")
	}
	if v, ok := m["secrets"].([]any); !ok || len(v) != 0 {
		t.Errorf("secrets = %v, want empty list", m["secrets"])
	}
}

func TestImportToMapConvertsTypedSecrets(t *testing.T) {
	s, err := BaseSecretFromMap(minimalSecretMap())
	if err != nil {
		t.Fatalf("BaseSecretFromMap failed: %v", err)
	}
	im := Import{SecretPath: "/", Environment: "dev", Secrets: []any{s}}
	m := im.ToMap()
	list := m["secrets"].([]any)
	sm, ok := list[0].(map[string]any)
	if !ok {
		t.Fatalf("secrets[0] = %T, want map from ToMap", list[0])
	}
	if sm["secretKey"] != "K" {
		t.Errorf("typed secret not encoded: %v", sm)
	}
}

func TestImportShapeErrors(t *testing.T) {
	cases := []struct {
		name string
		m    map[string]any
		want error
	}{
		{"missing secretPath", map[string]any{"environment": "dev"}, ErrMissingField},
		{"unknown key", map[string]any{"secretPath": "/", "environment": "dev", "owner": "x"}, ErrUnknownField},
		{"secrets not list", map[string]any{"secretPath": "/", "environment": "dev", "secrets": 1}, ErrWrongType},
	}
	for _, tc := range cases {
		if _, err := ImportFromMap(tc.m); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}
