package models

import (
	"encoding/json"
	"fmt"
)

// ListSecretsResponse is the envelope for the list-secrets endpoint.
// Imports is non-nil after any construction path, even when the key was
// absent on the wire.
type ListSecretsResponse struct {
	Secrets []BaseSecret
	Imports []Import
}

var listSecretsResponseSchema = []fieldSpec{
	{"secrets", true, kindList},
	{"imports", false, kindList},
}

func (r ListSecretsResponse) ToMap() map[string]any {
	secrets := make([]any, len(r.Secrets))
	for i := range r.Secrets {
		secrets[i] = r.Secrets[i].ToMap()
	}
	imports := make([]any, len(r.Imports))
	for i := range r.Imports {
		imports[i] = r.Imports[i].ToMap()
	}
	return map[string]any{
		"secrets": secrets,
		"imports": imports,
	}
}

// ListSecretsResponseFromMap constructs the envelope with explicit
// nested construction: each secret goes through BaseSecretFromMap and
// each import through ImportFromMap. A missing "imports" key yields an
// empty list.
func ListSecretsResponseFromMap(m map[string]any) (ListSecretsResponse, error) {
	if err := checkKeys("ListSecretsResponse", m, listSecretsResponseSchema); err != nil {
		return ListSecretsResponse{}, err
	}
	rawSecrets, err := listField("ListSecretsResponse", m, "secrets")
	if err != nil {
		return ListSecretsResponse{}, err
	}
	rawImports, err := listField("ListSecretsResponse", m, "imports")
	if err != nil {
		return ListSecretsResponse{}, err
	}

	r := ListSecretsResponse{
		Secrets: make([]BaseSecret, 0, len(rawSecrets)),
		Imports: make([]Import, 0, len(rawImports)),
	}
	for i, item := range rawSecrets {
		obj, ok := item.(map[string]any)
		if !ok {
			return ListSecretsResponse{}, fmt.Errorf("secrets[%d]: %w: expected object, got %T", i, ErrWrongType, item)
		}
		s, err := BaseSecretFromMap(obj)
		if err != nil {
			return ListSecretsResponse{}, fmt.Errorf("secrets[%d]: %w", i, err)
		}
		r.Secrets = append(r.Secrets, s)
	}
	for i, item := range rawImports {
		obj, ok := item.(map[string]any)
		if !ok {
			return ListSecretsResponse{}, fmt.Errorf("imports[%d]: %w: expected object, got %T", i, ErrWrongType, item)
		}
		im, err := ImportFromMap(obj)
		if err != nil {
			return ListSecretsResponse{}, fmt.Errorf("imports[%d]: %w", i, err)
		}
		r.Imports = append(r.Imports, im)
	}
	return r, nil
}

func (r ListSecretsResponse) ToJSON() ([]byte, error) { return json.Marshal(r.ToMap()) }

func ListSecretsResponseFromJSON(data []byte) (ListSecretsResponse, error) {
	m, err := decodeObject(data)
	if err != nil {
		return ListSecretsResponse{}, err
	}
	return ListSecretsResponseFromMap(m)
}

// SingleSecretResponse is the envelope for the get-secret endpoint.
type SingleSecretResponse struct {
	Secret BaseSecret
}

var singleSecretResponseSchema = []fieldSpec{
	{"secret", true, kindObject},
}

func (r SingleSecretResponse) ToMap() map[string]any {
	return map[string]any{"secret": r.Secret.ToMap()}
}

// SingleSecretResponseFromMap constructs the envelope, routing the
// required "secret" object through BaseSecretFromMap.
func SingleSecretResponseFromMap(m map[string]any) (SingleSecretResponse, error) {
	if err := checkKeys("SingleSecretResponse", m, singleSecretResponseSchema); err != nil {
		return SingleSecretResponse{}, err
	}
	obj, err := objectField("SingleSecretResponse", m, "secret")
	if err != nil {
		return SingleSecretResponse{}, err
	}
	s, err := BaseSecretFromMap(obj)
	if err != nil {
		return SingleSecretResponse{}, fmt.Errorf("secret: %w", err)
	}
	return SingleSecretResponse{Secret: s}, nil
}

func (r SingleSecretResponse) ToJSON() ([]byte, error) { return json.Marshal(r.ToMap()) }

func SingleSecretResponseFromJSON(data []byte) (SingleSecretResponse, error) {
	m, err := decodeObject(data)
	if err != nil {
		return SingleSecretResponse{}, err
	}
	return SingleSecretResponseFromMap(m)
}

// MachineIdentityLoginResponse is the envelope for machine identity
// login. There is no refresh token: callers re-authenticate after
// ExpiresIn seconds.
type MachineIdentityLoginResponse struct {
	AccessToken       string
	ExpiresIn         int
	AccessTokenMaxTTL int
	TokenType         string
}

var machineIdentityLoginResponseSchema = []fieldSpec{
	{"accessToken", true, kindString},
	{"expiresIn", true, kindInt},
	{"accessTokenMaxTTL", true, kindInt},
	{"tokenType", true, kindString},
}

func (r MachineIdentityLoginResponse) ToMap() map[string]any {
	return map[string]any{
		"accessToken":       r.AccessToken,
		"expiresIn":         r.ExpiresIn,
		"accessTokenMaxTTL": r.AccessTokenMaxTTL,
		"tokenType":         r.TokenType,
	}
}

func MachineIdentityLoginResponseFromMap(m map[string]any) (MachineIdentityLoginResponse, error) {
	if err := checkKeys("MachineIdentityLoginResponse", m, machineIdentityLoginResponseSchema); err != nil {
		return MachineIdentityLoginResponse{}, err
	}
	var r MachineIdentityLoginResponse
	var err error
	if r.AccessToken, err = stringField("MachineIdentityLoginResponse", m, "accessToken"); err != nil {
		return MachineIdentityLoginResponse{}, err
	}
	if r.ExpiresIn, err = intField("MachineIdentityLoginResponse", m, "expiresIn"); err != nil {
		return MachineIdentityLoginResponse{}, err
	}
	if r.AccessTokenMaxTTL, err = intField("MachineIdentityLoginResponse", m, "accessTokenMaxTTL"); err != nil {
		return MachineIdentityLoginResponse{}, err
	}
	if r.TokenType, err = stringField("MachineIdentityLoginResponse", m, "tokenType"); err != nil {
		return MachineIdentityLoginResponse{}, err
	}
	return r, nil
}

func (r MachineIdentityLoginResponse) ToJSON() ([]byte, error) { return json.Marshal(r.ToMap()) }

func MachineIdentityLoginResponseFromJSON(data []byte) (MachineIdentityLoginResponse, error) {
	m, err := decodeObject(data)
	if err != nil {
		return MachineIdentityLoginResponse{}, err
	}
	return MachineIdentityLoginResponseFromMap(m)
}
