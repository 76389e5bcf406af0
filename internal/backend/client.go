package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/angelmondragon/hotelsuite/pkg/config"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
	"github.com/angelmondragon/hotelsuite/pkg/metrics"
	"github.com/angelmondragon/hotelsuite/pkg/types"
	"github.com/go-resty/resty/v2"
)

// Doer is the request surface the resource façades depend on.
type Doer interface {
	Get(ctx context.Context, resource, path string, out any) error
	Post(ctx context.Context, resource, path string, body, out any) error
	Put(ctx context.Context, resource, path string, body, out any) error
	Patch(ctx context.Context, resource, path string, body, out any) error
	Delete(ctx context.Context, resource, path string) error
}

// ClientParams groups the dependencies of the shared fetch wrapper.
type ClientParams struct {
	Config    config.APIConfig
	Tokens    TokenStore
	Navigator Navigator
	Logger    *logger.Logger
	Metrics   *metrics.BackendMetrics
	// HTTPClient overrides the underlying transport (tests).
	HTTPClient *http.Client
}

// Client attaches the bearer token, unwraps the {message, data} envelope and
// intercepts authentication failures for every façade call.
type Client struct {
	http      *resty.Client
	tokens    TokenStore
	nav       Navigator
	loginPath string
	logg      *logger.Logger
	metrics   *metrics.BackendMetrics
}

func NewClient(params ClientParams) (*Client, error) {
	if strings.TrimSpace(params.Config.BaseURL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "api base url is required")
	}
	if params.Tokens == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "token store is required")
	}
	if params.Navigator == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "navigator is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}

	var rc *resty.Client
	if params.HTTPClient != nil {
		rc = resty.NewWithClient(params.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(strings.TrimRight(params.Config.BaseURL, "/")).
		SetRetryCount(params.Config.RetryCount).
		SetHeader("Accept", "application/json")
	if params.Config.Timeout > 0 {
		rc.SetTimeout(params.Config.Timeout)
	}

	loginPath := params.Config.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}

	return &Client{
		http:      rc,
		tokens:    params.Tokens,
		nav:       params.Navigator,
		loginPath: loginPath,
		logg:      params.Logger,
		metrics:   params.Metrics,
	}, nil
}

func (c *Client) Get(ctx context.Context, resource, path string, out any) error {
	return c.do(ctx, http.MethodGet, resource, path, nil, out)
}

func (c *Client) Post(ctx context.Context, resource, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, resource, path, body, out)
}

func (c *Client) Put(ctx context.Context, resource, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, resource, path, body, out)
}

func (c *Client) Patch(ctx context.Context, resource, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, resource, path, body, out)
}

func (c *Client) Delete(ctx context.Context, resource, path string) error {
	return c.do(ctx, http.MethodDelete, resource, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, resource, path string, body, out any) error {
	started := time.Now()
	ctx = c.logg.WithFields(ctx, map[string]any{"resource": resource, "method": method, "path": path})

	req := c.http.R().SetContext(ctx)
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logg.Warn(ctx, "reading auth token failed")
	}
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.metrics.Observe(resource, metrics.OutcomeError, time.Since(started))
		c.logg.Error(ctx, "backend request failed", err)
		return &Error{Message: fallbackTransportMessage, Err: err}
	}

	status := resp.StatusCode()
	payload := resp.Body()
	if status < 200 || status >= 300 {
		if isAuthFailure(status, payload) {
			c.metrics.Observe(resource, metrics.OutcomeAuth, time.Since(started))
			return c.expireSession(ctx)
		}
		c.metrics.Observe(resource, metrics.OutcomeError, time.Since(started))
		translated := translate(status, payload)
		c.logg.Warn(c.logg.WithField(ctx, "status", status), translated.Message)
		return translated
	}

	c.metrics.Observe(resource, metrics.OutcomeSuccess, time.Since(started))
	if err := decodeEnvelope(payload, out); err != nil {
		c.logg.Error(ctx, "decoding backend payload failed", err)
		return &Error{Status: status, Message: fallbackDecodeMessage, Err: err}
	}
	return nil
}

func (c *Client) expireSession(ctx context.Context) error {
	if err := c.tokens.ClearToken(ctx); err != nil {
		c.logg.Error(ctx, "clearing auth token failed", err)
	}
	c.nav.Redirect(ctx, c.loginPath)
	return ErrSessionExpired
}

func wantsList(out any) bool {
	v := reflect.ValueOf(out)
	return v.Kind() == reflect.Pointer && v.Elem().Kind() == reflect.Slice && v.Elem().Type() != reflect.TypeOf(json.RawMessage(nil))
}

// decodeEnvelope unwraps {message, data} bodies. Bodies without a data field are
// decoded as-is. An empty body, null data, or non-array data where a list is
// expected leaves out untouched.
func decodeEnvelope(body []byte, out any) error {
	if out == nil {
		return nil
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}
	if trimmed[0] == '{' {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return err
		}
		if _, ok := probe["data"]; ok {
			var env types.BackendEnvelope
			if err := json.Unmarshal(trimmed, &env); err != nil {
				return err
			}
			if !env.HasData() {
				return nil
			}
			if data := bytes.TrimSpace(env.Data); wantsList(out) && (len(data) == 0 || data[0] != '[') {
				// data present but not an array: no list to show
				return nil
			}
			return json.Unmarshal(env.Data, out)
		}
		if _, ok := probe["message"]; ok && len(probe) == 1 {
			return nil
		}
		if wantsList(out) {
			// an object where a list was expected carries no array field: no data
			return nil
		}
	}
	return json.Unmarshal(trimmed, out)
}
