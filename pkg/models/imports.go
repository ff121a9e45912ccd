package models

import (
	"encoding/json"
	"fmt"
)

// Import references secrets pulled into a folder from another location.
// It owns its embedded secret list by value.
//
// Secrets holds raw map[string]any elements when decoded from the wire:
// ImportFromMap does not promote them to BaseSecret records, and the
// list envelope funnels imports through it, so decoded imports always
// carry raw elements. This mirrors server-side handling; TypedSecrets
// promotes on demand.
type Import struct {
	SecretPath  string
	Environment string
	FolderID    *string
	Secrets     []any
}

var importSchema = []fieldSpec{
	{"secretPath", true, kindString},
	{"environment", true, kindString},
	{"folderId", false, kindString},
	{"secrets", false, kindList},
}

// ToMap converts the import to its wire mapping. An unset folderId is
// omitted; the secret list is always emitted.
func (im Import) ToMap() map[string]any {
	m := map[string]any{
		"secretPath":  im.SecretPath,
		"environment": im.Environment,
		"secrets":     encodeList(im.Secrets),
	}
	if im.FolderID != nil {
		m["folderId"] = *im.FolderID
	}
	return m
}

// ImportFromMap constructs an import from a wire mapping. Nested
// "secrets" elements are retained as-is.
func ImportFromMap(m map[string]any) (Import, error) {
	if err := checkKeys("Import", m, importSchema); err != nil {
		return Import{}, err
	}
	var im Import
	var err error
	if im.SecretPath, err = stringField("Import", m, "secretPath"); err != nil {
		return Import{}, err
	}
	if im.Environment, err = stringField("Import", m, "environment"); err != nil {
		return Import{}, err
	}
	if im.FolderID, err = optStringField("Import", m, "folderId"); err != nil {
		return Import{}, err
	}
	if im.Secrets, err = listField("Import", m, "secrets"); err != nil {
		return Import{}, err
	}
	return im, nil
}

// ToJSON renders the import as JSON text.
func (im Import) ToJSON() ([]byte, error) { return json.Marshal(im.ToMap()) }

// ImportFromJSON constructs an import from JSON text.
func ImportFromJSON(data []byte) (Import, error) {
	m, err := decodeObject(data)
	if err != nil {
		return Import{}, err
	}
	return ImportFromMap(m)
}

// TypedSecrets promotes the Secrets elements to BaseSecret records. Raw
// wire mappings are decoded; already-typed values pass through. The
// stored record is not modified.
func (im Import) TypedSecrets() ([]BaseSecret, error) {
	out := make([]BaseSecret, 0, len(im.Secrets))
	for i, item := range im.Secrets {
		switch v := item.(type) {
		case BaseSecret:
			out = append(out, v)
		case map[string]any:
			s, err := BaseSecretFromMap(v)
			if err != nil {
				return nil, fmt.Errorf("secrets[%d]: %w", i, err)
			}
			out = append(out, s)
		default:
			return nil, fmt.Errorf("secrets[%d]: %w: got %T", i, ErrWrongType, item)
		}
	}
	return out, nil
}
