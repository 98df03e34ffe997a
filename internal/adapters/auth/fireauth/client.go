package fireauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"birrieria-admin/internal/platform/httpclient"
	"birrieria-admin/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("fireauth client not configured")
	ErrUnauthorized  = errors.New("fireauth unauthorized")
	ErrUpstream      = errors.New("fireauth upstream error")
)

// Config del cliente del proveedor de identidad hospedado.
// BaseURL y APIKey normalmente vendrán de env vars en el servicio que lo instancie.
type Config struct {
	BaseURL string
	APIKey  string

	Timeout time.Duration
}

type Client struct {
	baseURL string
	apiKey  string
	http    *httpclient.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		http:    httpclient.New(timeout),
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.baseURL != "" && c.apiKey != ""
}

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
	} `json:"users"`
}

// VerifyToken valida un ID token contra el endpoint accounts:lookup y
// trae los claims del usuario.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	url := fmt.Sprintf("%s/v1/accounts:lookup?key=%s", c.baseURL, c.apiKey)

	var out lookupResponse
	err := c.http.DoJSON(ctx, "POST", url, nil, lookupRequest{IDToken: token}, &out)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.StatusCode {
			case 400, 401, 403:
				// el lookup regresa 400 con token inválido o expirado
				return auth.Claims{}, ErrUnauthorized
			}
			return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(out.Users) == 0 || strings.TrimSpace(out.Users[0].LocalID) == "" {
		return auth.Claims{}, errors.New("fireauth response missing user")
	}

	return auth.Claims{
		UserID: strings.TrimSpace(out.Users[0].LocalID),
		Email:  strings.TrimSpace(out.Users[0].Email),
	}, nil
}
