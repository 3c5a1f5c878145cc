package backendclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/app/models"
	"doorspital-service/internal/app/services/shared/loader"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type doorspitalBackendClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Tracker    *loader.Tracker
	Audit      contracts.AuditRepository
	Log        *zap.Logger
}

func NewDoorspitalBackendClient(baseUrl string, tracker *loader.Tracker, audit contracts.AuditRepository, logger *zap.Logger) contracts.BackendClient {
	return &doorspitalBackendClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{},
		Tracker:    tracker,
		Audit:      audit,
		Log:        logger,
	}
}

func (c *doorspitalBackendClient) Do(ctx context.Context, method, path string, body interface{}, opts *contracts.BackendOptions) (interface{}, error) {
	if opts == nil {
		opts = &contracts.BackendOptions{}
	}

	reader, contentType, err := encodeBody(body, opts.ContentType)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, reader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	if opts.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+opts.Token)
	}

	if !opts.SkipTracker && c.Tracker != nil {
		c.Tracker.Show()
		defer c.Tracker.Hide()
	}

	startedAt := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.recordCall(ctx, method, path, 0, startedAt, true)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordCall(ctx, method, path, resp.StatusCode, startedAt, true)
		return nil, exceptions.ErrReadBackendResponse(err)
	}

	succeeded := resp.StatusCode >= constvars.StatusOK && resp.StatusCode < 300
	c.recordCall(ctx, method, path, resp.StatusCode, startedAt, !succeeded)
	c.logCall(ctx, method, path, resp.StatusCode, startedAt)

	payload := decodePayload(rawBody)
	if !succeeded {
		return nil, exceptions.ErrBackendRejected(resp.StatusCode, rejectionMessage(payload, resp.StatusCode))
	}
	return payload, nil
}

func encodeBody(body interface{}, requestedContentType string) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}

	switch typedBody := body.(type) {
	case url.Values:
		contentType := requestedContentType
		if contentType == "" {
			contentType = constvars.MIMEApplicationForm
		}
		return strings.NewReader(typedBody.Encode()), contentType, nil
	case []byte:
		contentType := requestedContentType
		if contentType == "" {
			contentType = constvars.MIMEApplicationJSON
		}
		return bytes.NewReader(typedBody), contentType, nil
	default:
		requestJSON, err := json.Marshal(body)
		if err != nil {
			return nil, "", exceptions.ErrCannotMarshalJSON(err)
		}
		contentType := requestedContentType
		if contentType == "" {
			contentType = constvars.MIMEApplicationJSON
		}
		return bytes.NewBuffer(requestJSON), contentType, nil
	}
}

// decodePayload never fails. An empty body becomes an empty object so callers
// can treat every success uniformly, and a non-JSON body is kept verbatim as
// a string payload.
func decodePayload(rawBody []byte) interface{} {
	trimmed := bytes.TrimSpace(rawBody)
	if len(trimmed) == 0 {
		return map[string]interface{}{}
	}

	var payload interface{}
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return string(trimmed)
	}
	return payload
}

// rejectionMessage prefers the backend's own wording. Callers depend on the
// message arriving verbatim, the pending-verification branch in particular.
func rejectionMessage(payload interface{}, statusCode int) string {
	switch typedPayload := payload.(type) {
	case map[string]interface{}:
		if message, ok := typedPayload["message"].(string); ok && message != "" {
			return message
		}
		if message, ok := typedPayload["error"].(string); ok && message != "" {
			return message
		}
	case string:
		if trimmed := strings.TrimSpace(typedPayload); trimmed != "" {
			return trimmed
		}
	}
	return http.StatusText(statusCode)
}

func (c *doorspitalBackendClient) recordCall(ctx context.Context, method, path string, statusCode int, startedAt time.Time, failed bool) {
	if c.Audit == nil {
		return
	}

	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
	call := &models.BackendCall{
		RequestID:  requestID,
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		DurationMS: time.Since(startedAt).Milliseconds(),
		Failed:     failed,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	// Best effort. The request must never wait on, or fail because of,
	// diagnostics.
	go func() {
		recordCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = c.Audit.Record(recordCtx, call)
	}()
}

func (c *doorspitalBackendClient) logCall(ctx context.Context, method, path string, statusCode int, startedAt time.Time) {
	if c.Log == nil {
		return
	}
	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
	c.Log.Debug("backend call finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingUpstreamPathKey, path),
		zap.Int(constvars.LoggingStatusCodeKey, statusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(startedAt)),
	)
}
