// Package backend implementa el gateway HTTP hacia el API de negocio Algatrack.
//
// Es el único punto de salida de red de la consola: resuelve el origen del API,
// fija las cabeceras, reenvía la cookie de sesión del backend y normaliza los
// errores a *Error. Sin reintentos, sin caché, sin deduplicación: cada llamada
// es independiente y at-most-once.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/algatrack/console/pkg/config"
)

// Client gateway concreto sobre net/http. Implementa ports.Gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New construye el gateway. baseURL vacío cae al origen local por defecto.
func New(cfg config.BackendConfig) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = config.DefaultBackendURL
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Do ejecuta method endpoint contra el API. body se serializa solo en verbos
// que llevan cuerpo (GET y DELETE nunca, aunque se pase uno). Un 2xx se
// decodifica en out; un 204 es éxito sin tocar el cuerpo.
func (c *Client) Do(ctx context.Context, cookie, method, endpoint string, body, out any) error {
	resp, err := c.send(ctx, cookie, method, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decode(resp, out)
}

// DoLogin ejecuta el POST de login sin cookie previa y captura la cookie de
// sesión que emite el API para reenviarla en las peticiones siguientes.
func (c *Client) DoLogin(ctx context.Context, endpoint string, body, out any) (string, error) {
	resp, err := c.send(ctx, "", http.MethodPost, endpoint, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var sessionCookie string
	for _, ck := range resp.Cookies() {
		if ck.Name != "" {
			sessionCookie = ck.Name + "=" + ck.Value
			break
		}
	}
	if err := decode(resp, out); err != nil {
		return "", err
	}
	return sessionCookie, nil
}

func (c *Client) send(ctx context.Context, cookie, method, endpoint string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil && llevaCuerpo(method) {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindNetwork, Message: "no se pudo serializar el cuerpo", cause: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: "no se pudo conectar con el servidor", cause: err}
	}
	return resp, nil
}

// llevaCuerpo indica si el verbo transporta cuerpo JSON.
func llevaCuerpo(method string) bool {
	switch method {
	case http.MethodGet, http.MethodDelete, http.MethodHead:
		return false
	}
	return true
}

// decode interpreta la respuesta: 2xx decodifica en out (204 no intenta parsear),
// fuera de 2xx arma el *Error con el mensaje del cuerpo o el status text.
func decode(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorDesdeRespuesta(resp)
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{
			Kind:    KindHTTP,
			Status:  resp.StatusCode,
			Message: "respuesta del API no es JSON válido",
			cause:   err,
		}
	}
	return nil
}

func errorDesdeRespuesta(resp *http.Response) *Error {
	e := &Error{
		Kind:    KindHTTP,
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil || len(raw) == 0 {
		return e
	}
	var payload map[string]any
	if json.Unmarshal(raw, &payload) != nil {
		// Cuerpo no-JSON: conservar el status text
		return e
	}
	e.Payload = payload
	if msg, ok := payload["message"].(string); ok && msg != "" {
		e.Message = msg
	} else if msg, ok := payload["error"].(string); ok && msg != "" {
		e.Message = msg
	}
	if code, ok := payload["code"].(string); ok {
		e.Code = code
	}
	return e
}
