// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/geo-waqf/geowaqf/internal/config"
	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenURI = "https://oauth2.googleapis.com/token"

// ServiceAccount is a parsed Google service-account key document.
type ServiceAccount struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	TokenURI     string `json:"token_uri"`

	// Source names where the key came from, for logs.
	Source string `json:"-"`

	key      *rsa.PrivateKey
	tempPath string
}

// LoadServiceAccount reads the key from the first configured source:
// GEE_SERVICE_ACCOUNT_JSON, then GEE_SERVICE_ACCOUNT_JSON_BASE64, then
// GEE_SERVICE_ACCOUNT_FILE. A base64 key is also written to
// cfg.CredentialsTempPath when set; Close removes that file again.
func LoadServiceAccount(cfg config.Engine) (*ServiceAccount, error) {
	switch {
	case strings.TrimSpace(cfg.ServiceAccountJSON) != "":
		sa, err := ParseServiceAccount([]byte(cfg.ServiceAccountJSON))
		if err != nil {
			return nil, err
		}
		sa.Source = "env:GEE_SERVICE_ACCOUNT_JSON"
		return sa, nil

	case strings.TrimSpace(cfg.ServiceAccountJSONBase64) != "":
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(cfg.ServiceAccountJSONBase64))
		if err != nil {
			return nil, fmt.Errorf("%w: decode base64: %v", ErrMalformedCredentials, err)
		}

		sa, err := ParseServiceAccount(data)
		if err != nil {
			return nil, err
		}
		sa.Source = "env:GEE_SERVICE_ACCOUNT_JSON_BASE64"

		if cfg.CredentialsTempPath != "" {
			if err := os.WriteFile(cfg.CredentialsTempPath, data, 0o600); err != nil {
				return nil, fmt.Errorf("write credentials file: %w", err)
			}
			sa.tempPath = cfg.CredentialsTempPath
		}
		return sa, nil

	case cfg.ServiceAccountFile != "":
		data, err := os.ReadFile(cfg.ServiceAccountFile)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s does not exist", ErrNoCredentials, cfg.ServiceAccountFile)
			}
			return nil, fmt.Errorf("read credentials file: %w", err)
		}

		sa, err := ParseServiceAccount(data)
		if err != nil {
			return nil, err
		}
		sa.Source = "file:" + cfg.ServiceAccountFile
		return sa, nil
	}

	return nil, ErrNoCredentials
}

// ParseServiceAccount decodes a key document and its RSA private key.
func ParseServiceAccount(data []byte) (*ServiceAccount, error) {
	var sa ServiceAccount
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCredentials, err)
	}

	if sa.ClientEmail == "" {
		return nil, fmt.Errorf("%w: client_email is missing", ErrMalformedCredentials)
	}
	if sa.PrivateKey == "" {
		return nil, fmt.Errorf("%w: private_key is missing", ErrMalformedCredentials)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(sa.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("%w: private_key: %v", ErrMalformedCredentials, err)
	}
	sa.key = key

	if sa.TokenURI == "" {
		sa.TokenURI = defaultTokenURI
	}

	return &sa, nil
}

// Close removes the temporary key file, if one was written.
func (sa *ServiceAccount) Close() error {
	if sa == nil || sa.tempPath == "" {
		return nil
	}

	path := sa.tempPath
	sa.tempPath = ""
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials file: %w", err)
	}
	return nil
}
