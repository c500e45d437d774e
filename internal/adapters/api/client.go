package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/partners-cli/internal/domain"
	"github.com/bnema/partners-cli/internal/ports"
	"github.com/google/uuid"
	"pkt.systems/pslog"
)

const (
	DefaultBaseURL = "http://localhost:8000"

	maxResponseBytes      = 1 << 20
	maxLoggedBodyBytes    = 256
	defaultRequestTimeout = 30 * time.Second
	requestIDHeader       = "X-Request-Id"
)

// Client talks JSON to the partners service. The zero value is not usable; BaseURL is required.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.PartnersAPI = Client{}

type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
	// sessionScoped calls map 401/403 to NotAuthenticated.
	sessionScoped bool
}

func (c Client) do(ctx context.Context, req call, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, req.path)
	if err != nil {
		return domain.NetworkFailure(req.op, err)
	}
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", req.op, err)
		}
		body = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, req.method, endpoint, body)
	if err != nil {
		return domain.NetworkFailure(req.op, fmt.Errorf("create request: %w", err))
	}
	requestID := newRequestID()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	log := pslog.Ctx(ctx).With("op", req.op, "request_id", requestID)
	started := time.Now()
	log.Debug("partners request", "method", req.method, "path", req.path)

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		log.Debug("partners request failed", "err", err)
		return domain.NetworkFailure(req.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.NetworkFailure(req.op, fmt.Errorf("read response: %w", err))
	}
	log.Debug("partners response", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		mapped := mapStatusError(req, resp.StatusCode, payload)
		if errors.Is(mapped, domain.ErrProtocol) {
			log.Debug("partners response body", "body", truncate(payload))
		}
		return mapped
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		log.Debug("partners response body", "body", truncate(payload))
		return domain.ProtocolFailure(req.op, "decode response with status %d: %w", resp.StatusCode, err)
	}

	return nil
}

type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

type validationIssue struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// mapStatusError converts a non-2xx response into the domain error taxonomy.
// Raw bodies never reach the returned message.
func mapStatusError(req call, status int, payload []byte) error {
	var parsed errorResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return domain.ProtocolFailure(req.op, "status %d with non-JSON body", status)
	}
	field, message := parsed.describe()
	if message == "" {
		message = http.StatusText(status)
	}
	cause := fmt.Errorf("status %d: %s", status, message)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if req.sessionScoped {
			return domain.NotAuthenticated(req.op, cause)
		}
		return domain.ValidationFailed(req.op, field, message)
	case status == http.StatusBadRequest,
		status == http.StatusNotFound,
		status == http.StatusConflict,
		status == http.StatusUnprocessableEntity:
		return domain.ValidationFailed(req.op, field, message)
	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return domain.NetworkFailure(req.op, cause)
	default:
		return domain.ProtocolFailure(req.op, "unexpected status %d", status)
	}
}

// describe handles both a plain string detail and the list form used for request validation.
func (r errorResponse) describe() (field string, message string) {
	if len(r.Detail) == 0 {
		return "", ""
	}

	var text string
	if err := json.Unmarshal(r.Detail, &text); err == nil {
		return "", text
	}

	var issues []validationIssue
	if err := json.Unmarshal(r.Detail, &issues); err == nil && len(issues) > 0 {
		first := issues[0]
		if len(first.Loc) > 0 {
			if name, ok := first.Loc[len(first.Loc)-1].(string); ok {
				field = name
			}
		}
		return field, first.Msg
	}

	return "", ""
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	// Resolve relative to the base so a base URL with a path prefix is kept.
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}
	endpoint, err := parsed.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func truncate(payload []byte) string {
	text := strings.ToValidUTF8(string(payload), "")
	if len(text) <= maxLoggedBodyBytes {
		return text
	}
	return text[:maxLoggedBodyBytes] + "..."
}
