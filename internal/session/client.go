package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jbglogistica/logistica-api/internal/domain"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
)

// API contrato remoto que necesita el store de sesión.
type API interface {
	Login(ctx context.Context, email, password string) (token string, user *entity.User, err error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

// Client implementación HTTP de API contra el backend. baseURL apunta al grupo
// de auth del servidor (p. ej. https://host/api/auth).
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient construye el cliente. httpc puede ser nil (default con timeout de 15s).
func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, httpc: httpc}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Login POST /login. 401 se traduce a ErrUnauthorized (credenciales inválidas).
func (c *Client) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	body, err := json.Marshal(loginPayload{Email: email, Password: password})
	if err != nil {
		return "", nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", nil, domain.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", nil, fmt.Errorf("login: status %d", resp.StatusCode)
	}

	var out loginResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", nil, fmt.Errorf("login: respuesta malformada: %w", err)
	}
	if out.Token == "" {
		return "", nil, fmt.Errorf("login: respuesta sin token")
	}
	return out.Token, out.User, nil
}

// Logout POST /logout con bearer. El caller decide si el error importa.
func (c *Client) Logout(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("logout: status %d", resp.StatusCode)
	}
	return nil
}

// CurrentUser GET /me con bearer.
func (c *Client) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("current user: status %d", resp.StatusCode)
	}

	var user entity.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("current user: respuesta malformada: %w", err)
	}
	return &user, nil
}
