// Package api es el cliente de la API HTTP del inventario (subcomando list).
package api

import (
	"context"
	"net/url"
	"time"

	"pet-inventory/internal/platform/httpclient"
)

// PetSummary es lo que el cliente necesita de cada mascota.
type PetSummary struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Summary string `json:"summary"`
}

type Client struct {
	http *httpclient.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	c, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: c}, nil
}

// ListPets aplica el mismo filtro que la consola; kind vacío = All.
func (c *Client) ListPets(ctx context.Context, kind, sessionID string) ([]PetSummary, error) {
	q := url.Values{}
	if kind != "" {
		q.Set("kind", kind)
	}
	if sessionID != "" {
		q.Set("session_id", sessionID)
	}

	var out []PetSummary
	if err := c.http.GetJSON(ctx, "/pets", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
