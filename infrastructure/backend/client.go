// Package backend é o cliente da API REST hospedada (marketing, incidentes e health).
package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wedsync-venue-api/internal/config"
	"github.com/vfg2006/wedsync-venue-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxErrorBody limita o corpo de erro copiado para a mensagem
const maxErrorBody = 512

// ErrorResponse é o corpo de erro padrão da API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatusError é retornado quando a API responde fora da faixa 2xx
type StatusError struct {
	StatusCode int
	Path       string
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend: %s retornou %d: %s", e.Path, e.StatusCode, e.Message)
}

// Temporary indica falhas que podem passar sozinhas (5xx, 429)
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

type Client struct {
	BaseURL    string
	APIKey     string
	HealthPath string
	HTTPClient *http.Client
}

func NewClient(cfg config.Backend) *Client {
	return &Client{
		BaseURL:    cfg.URL,
		APIKey:     cfg.APIKey,
		HealthPath: cfg.HealthPath,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// do executa a requisição e decodifica a resposta em out (se não for nil)
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) (int, error) {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, errors.Wrap(err, "backend: erro ao serializar corpo")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, errors.Wrap(err, "backend: erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "backend: erro ao chamar %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		message := string(raw)

		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.WithFields(logrus.Fields{
				"path":        path,
				"status_code": resp.StatusCode,
			}).Debugf("backend: error response\n%s", utils.PrettyJson(raw))
		}

		var errResp ErrorResponse
		if json.Unmarshal(raw, &errResp) == nil {
			if errResp.Message != "" {
				message = errResp.Message
			} else if errResp.Error != "" {
				message = errResp.Error
			}
		}

		return resp.StatusCode, &StatusError{StatusCode: resp.StatusCode, Path: path, Message: message}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, errors.Wrapf(err, "backend: resposta inválida de %s", path)
	}

	return resp.StatusCode, nil
}
