package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

// Prefix é fixo; só a base do backend é configurável.
const Prefix = "/api"

var ErrMissingBaseURL = errors.New("apiclient: base url is required")

// APIError é devolvido para qualquer resposta fora da faixa 2xx.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Detail)
}

type Client struct {
	base string
	http *http.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{base: baseURL + Prefix, http: &http.Client{Timeout: timeout}}, nil
}

// List lê a coleção inteira de kind e decodifica em dst (ponteiro para slice).
func (c *Client) List(ctx context.Context, kind models.Kind, dst any) error {
	return c.do(ctx, http.MethodGet, kind.Path(), nil, dst)
}

// Create envia payload para a coleção; o registro criado vai para dst (pode ser nil).
func (c *Client) Create(ctx context.Context, kind models.Kind, payload any, dst any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	return c.do(ctx, http.MethodPost, kind.Path(), body, dst)
}

func (c *Client) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	var out models.DashboardStats
	err := c.do(ctx, http.MethodGet, "/dashboard", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, dst any) error {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{Status: res.StatusCode, Detail: readDetail(res.Body)}
	}
	if dst == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// readDetail aceita {"error": "..."} e {"detail": ...}; senão devolve o corpo cru.
func readDetail(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, 4096))
	var body struct {
		Error  string          `json:"error"`
		Detail json.RawMessage `json:"detail"`
	}
	if json.Unmarshal(raw, &body) == nil {
		if body.Error != "" {
			return body.Error
		}
		if len(body.Detail) > 0 {
			var s string
			if json.Unmarshal(body.Detail, &s) == nil {
				return s
			}
			return string(body.Detail)
		}
	}
	return strings.TrimSpace(string(raw))
}
