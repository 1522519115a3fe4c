package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Login exchanges credentials for a bearer token usable with WithBearerToken.
func Login(ctx context.Context, baseURL, username, password string, opts ...Option) (string, error) {
	b, err := newBase(baseURL, opts...)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return "", err
	}

	resp, err := b.do(ctx, request{method: http.MethodPost, path: "/login", body: body, contentType: mediaJSON, accept: mediaJSON})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("client: decode login result: %w", err)
	}
	return result.Token, nil
}
