package models

import (
	"encoding/json"
	"fmt"
)

// SecretTag labels a secret. Immutable once constructed.
type SecretTag struct {
	ID    string
	Slug  string
	Name  string
	Color *string
}

var secretTagSchema = []fieldSpec{
	{"id", true, kindString},
	{"slug", true, kindString},
	{"name", true, kindString},
	{"color", false, kindString},
}

// ToMap converts the tag to its wire mapping. An unset color is omitted,
// not emitted as null.
func (t SecretTag) ToMap() map[string]any {
	m := map[string]any{
		"id":   t.ID,
		"slug": t.Slug,
		"name": t.Name,
	}
	if t.Color != nil {
		m["color"] = *t.Color
	}
	return m
}

// Equal reports whether two tags carry identical identity and color.
func (t SecretTag) Equal(o SecretTag) bool {
	if t.ID != o.ID || t.Slug != o.Slug || t.Name != o.Name {
		return false
	}
	if (t.Color == nil) != (o.Color == nil) {
		return false
	}
	return t.Color == nil || *t.Color == *o.Color
}

// SecretTagFromMap constructs a tag from a wire mapping.
func SecretTagFromMap(m map[string]any) (SecretTag, error) {
	if err := checkKeys("SecretTag", m, secretTagSchema); err != nil {
		return SecretTag{}, err
	}
	var t SecretTag
	var err error
	if t.ID, err = stringField("SecretTag", m, "id"); err != nil {
		return SecretTag{}, err
	}
	if t.Slug, err = stringField("SecretTag", m, "slug"); err != nil {
		return SecretTag{}, err
	}
	if t.Name, err = stringField("SecretTag", m, "name"); err != nil {
		return SecretTag{}, err
	}
	if t.Color, err = optStringField("SecretTag", m, "color"); err != nil {
		return SecretTag{}, err
	}
	return t, nil
}

// ToJSON renders the tag as JSON text.
func (t SecretTag) ToJSON() ([]byte, error) { return json.Marshal(t.ToMap()) }

// SecretTagFromJSON constructs a tag from JSON text.
func SecretTagFromJSON(data []byte) (SecretTag, error) {
	m, err := decodeObject(data)
	if err != nil {
		return SecretTag{}, err
	}
	return SecretTagFromMap(m)
}

// SecretMetadata is a single free-form key/value annotation on a secret.
type SecretMetadata struct {
	Key   string
	Value string
}

var secretMetadataSchema = []fieldSpec{
	{"key", true, kindString},
	{"value", true, kindString},
}

func (sm SecretMetadata) ToMap() map[string]any {
	return map[string]any{"key": sm.Key, "value": sm.Value}
}

func SecretMetadataFromMap(m map[string]any) (SecretMetadata, error) {
	if err := checkKeys("SecretMetadata", m, secretMetadataSchema); err != nil {
		return SecretMetadata{}, err
	}
	var sm SecretMetadata
	var err error
	if sm.Key, err = stringField("SecretMetadata", m, "key"); err != nil {
		return SecretMetadata{}, err
	}
	if sm.Value, err = stringField("SecretMetadata", m, "value"); err != nil {
		return SecretMetadata{}, err
	}
	return sm, nil
}

func (sm SecretMetadata) ToJSON() ([]byte, error) { return json.Marshal(sm.ToMap()) }

func SecretMetadataFromJSON(data []byte) (SecretMetadata, error) {
	m, err := decodeObject(data)
	if err != nil {
		return SecretMetadata{}, err
	}
	return SecretMetadataFromMap(m)
}

// BaseSecret is one secret record as returned by the API. ID and LegacyID
// (wire key "_id") identify the same record; the dual field is a wire
// compatibility artifact. CreatedAt and UpdatedAt are opaque server
// timestamps and are never parsed. No validation is performed beyond
// shape: the record trusts server-provided data.
//
// Tags and SecretMetadata hold either typed SecretTag/SecretMetadata
// values (programmatic construction) or raw map[string]any elements:
// BaseSecretFromMap does not promote nested lists, and it is the only
// wire decode path for secrets, so decoded records always carry raw
// elements. TypedTags and TypedSecretMetadata promote on demand.
type BaseSecret struct {
	ID                       string
	LegacyID                 string
	Workspace                string
	Environment              string
	Version                  int
	Type                     string
	SecretKey                string
	SecretValue              string
	SecretComment            string
	CreatedAt                string
	UpdatedAt                string
	SecretReminderNote       *string
	SecretReminderRepeatDays *int
	SkipMultilineEncoding    bool
	Metadata                 any
	SecretMetadata           []any
	SecretPath               *string
	Tags                     []any
}

var baseSecretSchema = []fieldSpec{
	{"id", true, kindString},
	{"_id", true, kindString},
	{"workspace", true, kindString},
	{"environment", true, kindString},
	{"version", true, kindInt},
	{"type", true, kindString},
	{"secretKey", true, kindString},
	{"secretValue", true, kindString},
	{"secretComment", true, kindString},
	{"createdAt", true, kindString},
	{"updatedAt", true, kindString},
	{"secretReminderNote", false, kindString},
	{"secretReminderRepeatDays", false, kindInt},
	{"skipMultilineEncoding", false, kindBool},
	{"metadata", false, kindAny},
	{"secretMetadata", false, kindList},
	{"secretPath", false, kindString},
	{"tags", false, kindList},
}

// ToMap converts the secret to its wire mapping. Unset optionals are
// omitted entirely; SkipMultilineEncoding and the two lists are always
// emitted, matching server output for defaulted fields.
func (s BaseSecret) ToMap() map[string]any {
	m := map[string]any{
		"id":                    s.ID,
		"_id":                   s.LegacyID,
		"workspace":             s.Workspace,
		"environment":           s.Environment,
		"version":               s.Version,
		"type":                  s.Type,
		"secretKey":             s.SecretKey,
		"secretValue":           s.SecretValue,
		"secretComment":         s.SecretComment,
		"createdAt":             s.CreatedAt,
		"updatedAt":             s.UpdatedAt,
		"skipMultilineEncoding": s.SkipMultilineEncoding,
		"secretMetadata":        encodeList(s.SecretMetadata),
		"tags":                  encodeList(s.Tags),
	}
	if s.SecretReminderNote != nil {
		m["secretReminderNote"] = *s.SecretReminderNote
	}
	if s.SecretReminderRepeatDays != nil {
		m["secretReminderRepeatDays"] = *s.SecretReminderRepeatDays
	}
	if s.Metadata != nil {
		m["metadata"] = s.Metadata
	}
	if s.SecretPath != nil {
		m["secretPath"] = *s.SecretPath
	}
	return m
}

// BaseSecretFromMap constructs a secret from a wire mapping. Nested
// "tags" and "secretMetadata" elements are retained as-is and are not
// promoted to typed records.
func BaseSecretFromMap(m map[string]any) (BaseSecret, error) {
	if err := checkKeys("BaseSecret", m, baseSecretSchema); err != nil {
		return BaseSecret{}, err
	}
	var s BaseSecret
	var err error
	if s.ID, err = stringField("BaseSecret", m, "id"); err != nil {
		return BaseSecret{}, err
	}
	if s.LegacyID, err = stringField("BaseSecret", m, "_id"); err != nil {
		return BaseSecret{}, err
	}
	if s.Workspace, err = stringField("BaseSecret", m, "workspace"); err != nil {
		return BaseSecret{}, err
	}
	if s.Environment, err = stringField("BaseSecret", m, "environment"); err != nil {
		return BaseSecret{}, err
	}
	if s.Version, err = intField("BaseSecret", m, "version"); err != nil {
		return BaseSecret{}, err
	}
	if s.Type, err = stringField("BaseSecret", m, "type"); err != nil {
		return BaseSecret{}, err
	}
	if s.SecretKey, err = stringField("BaseSecret", m, "secretKey"); err != nil {
		return BaseSecret{}, err
	}
	if s.SecretValue, err = stringField("BaseSecret", m, "secretValue"); err != nil {
		return BaseSecret{}, err
	}
	if s.SecretComment, err = stringField("BaseSecret", m, "secretComment"); err != nil {
		return BaseSecret{}, err
	}
	if s.CreatedAt, err = stringField("BaseSecret", m, "createdAt"); err != nil {
		return BaseSecret{}, err
	}
	if s.UpdatedAt, err = stringField("BaseSecret", m, "updatedAt"); err != nil {
		return BaseSecret{}, err
	}
	if s.SecretReminderNote, err = optStringField("BaseSecret", m, "secretReminderNote"); err != nil {
		return BaseSecret{}, err
	}
	if s.SecretReminderRepeatDays, err = optIntField("BaseSecret", m, "secretReminderRepeatDays"); err != nil {
		return BaseSecret{}, err
	}
	if s.SkipMultilineEncoding, err = boolField("BaseSecret", m, "skipMultilineEncoding", false); err != nil {
		return BaseSecret{}, err
	}
	s.Metadata = m["metadata"]
	if s.SecretMetadata, err = listField("BaseSecret", m, "secretMetadata"); err != nil {
		return BaseSecret{}, err
	}
	if s.SecretPath, err = optStringField("BaseSecret", m, "secretPath"); err != nil {
		return BaseSecret{}, err
	}
	if s.Tags, err = listField("BaseSecret", m, "tags"); err != nil {
		return BaseSecret{}, err
	}
	return s, nil
}

// ToJSON renders the secret as JSON text.
func (s BaseSecret) ToJSON() ([]byte, error) { return json.Marshal(s.ToMap()) }

// BaseSecretFromJSON constructs a secret from JSON text.
func BaseSecretFromJSON(data []byte) (BaseSecret, error) {
	m, err := decodeObject(data)
	if err != nil {
		return BaseSecret{}, err
	}
	return BaseSecretFromMap(m)
}

// TypedTags promotes the Tags elements to SecretTag values. Raw wire
// mappings are decoded; already-typed values pass through. The stored
// record is not modified.
func (s BaseSecret) TypedTags() ([]SecretTag, error) {
	out := make([]SecretTag, 0, len(s.Tags))
	for i, item := range s.Tags {
		switch v := item.(type) {
		case SecretTag:
			out = append(out, v)
		case map[string]any:
			t, err := SecretTagFromMap(v)
			if err != nil {
				return nil, fmt.Errorf("tags[%d]: %w", i, err)
			}
			out = append(out, t)
		default:
			return nil, fmt.Errorf("tags[%d]: %w: got %T", i, ErrWrongType, item)
		}
	}
	return out, nil
}

// TypedSecretMetadata promotes the SecretMetadata elements, same rules
// as TypedTags.
func (s BaseSecret) TypedSecretMetadata() ([]SecretMetadata, error) {
	out := make([]SecretMetadata, 0, len(s.SecretMetadata))
	for i, item := range s.SecretMetadata {
		switch v := item.(type) {
		case SecretMetadata:
			out = append(out, v)
		case map[string]any:
			sm, err := SecretMetadataFromMap(v)
			if err != nil {
				return nil, fmt.Errorf("secretMetadata[%d]: %w", i, err)
			}
			out = append(out, sm)
		default:
			return nil, fmt.Errorf("secretMetadata[%d]: %w: got %T", i, ErrWrongType, item)
		}
	}
	return out, nil
}
