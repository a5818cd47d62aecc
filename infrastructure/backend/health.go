package backend

import (
	"context"
	"net/http"
)

// Ping consulta o endpoint de saúde; qualquer 2xx significa online
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, c.HealthPath, nil, nil, nil)
	return err
}
