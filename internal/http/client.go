// Package http provides the HTTP transport for the GitLab API client. It
// builds request URLs from path, query and page descriptors, injects the
// configured credential, and maps non-2xx responses to typed errors.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/labforge-io/gitlab-client/internal/auth"
	"github.com/labforge-io/gitlab-client/internal/constants"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// apiNamespace is prepended to every resource path. Versioning lives here
// and nowhere else.
const apiNamespace = "/api/v4"

// Attachment is a file to send as a multipart upload.
type Attachment struct {
	// FieldName is the multipart field, "file" for GitLab uploads.
	FieldName string
	FileName  string
	Content   []byte
}

// Request describes one API request. Exactly one of Form or File may be
// set; both empty yields a bodyless request.
type Request struct {
	Method  string
	Path    string
	Query   *gitlab.Query
	Page    *gitlab.PageOptions
	Form    url.Values
	File    *Attachment
	Headers map[string]string
}

// Response is the outcome of a successfully delivered request. Body holds
// the raw bytes; decoding is the caller's concern.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client sends API requests. Each Do performs exactly one round trip
// unless retries are explicitly configured.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	tokenType    gitlab.TokenType
	authMethod   gitlab.AuthMethod
	userAgent    string
	debug        bool
	logger       gitlab.Logger
	cache        gitlab.Cache
	cacheTTL     time.Duration
	interceptors *gitlab.InterceptorChain
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger gitlab.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables verbose request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTokenType sets how the credential is labelled.
func WithTokenType(tokenType gitlab.TokenType) Option {
	return func(c *Client) {
		c.tokenType = tokenType
	}
}

// WithAuthMethod sets how the credential is delivered.
func WithAuthMethod(method gitlab.AuthMethod) Option {
	return func(c *Client) {
		c.authMethod = method
	}
}

// WithRetryConfig enables transport-level retries.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithSkipTLSVerify disables certificate validation.
func WithSkipTLSVerify(skip bool) Option {
	return func(c *Client) {
		if !skip {
			return
		}

		transport, ok := c.httpClient.HTTPClient.Transport.(*http.Transport)
		if !ok {
			transport = http.DefaultTransport.(*http.Transport).Clone()
		}

		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}

		transport.TLSClientConfig.InsecureSkipVerify = true
		c.httpClient.HTTPClient.Transport = transport
	}
}

// WithProxy routes requests through the given proxy URL.
func WithProxy(proxyURL string) Option {
	return func(c *Client) {
		parsed, err := url.Parse(proxyURL)
		if err != nil {
			return
		}

		transport, ok := c.httpClient.HTTPClient.Transport.(*http.Transport)
		if !ok {
			transport = http.DefaultTransport.(*http.Transport).Clone()
		}

		transport.Proxy = http.ProxyURL(parsed)
		c.httpClient.HTTPClient.Transport = transport
	}
}

// WithCache enables a read-through cache for GET responses.
func WithCache(cache gitlab.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithInterceptors sets the interceptor chain.
func WithInterceptors(chain *gitlab.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new HTTP client for the given base URL. A nil token
// manager sends unauthenticated requests. Retries are disabled unless
// WithRetryConfig is applied.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	// Hand back the final response instead of swallowing it once retries
	// are exhausted, so status errors keep their bodies.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   retryClient,
		tokenManager: tokenManager,
		tokenType:    gitlab.PrivateToken,
		authMethod:   gitlab.AuthHeader,
		userAgent:    "gitlab-client-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do sends the request and returns the response. Non-2xx statuses are
// returned as *gitlab.HTTPError with the raw body preserved.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.buildURL(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.cache != nil && req.Method == http.MethodGet {
		if resp, ok := c.cachedResponse(ctx, fullURL); ok {
			return resp, nil
		}
	}

	// The same struct is handed to both interceptor phases so metadata set
	// on the request side (e.g. timing) is visible on the response side.
	interceptReq := &gitlab.Request{Method: req.Method, Path: req.Path}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
		if err != nil {
			return nil, err
		}

		if req.Headers == nil && len(interceptReq.Headers) > 0 {
			req.Headers = make(map[string]string)
		}

		for key := range interceptReq.Headers {
			req.Headers[key] = interceptReq.Headers.Get(key)
		}
	}

	body, contentType, err := buildBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	err = c.applyAuthHeader(ctx, httpReq)
	if err != nil {
		return nil, err
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API response", map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
		})
	}

	var respErr error
	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		respErr = gitlab.NewHTTPError(httpResp.StatusCode, respBody)
	}

	if c.interceptors != nil {
		interceptResp := &gitlab.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
			Error:      respErr,
		}

		interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp)
		if interceptErr != nil {
			// The status error outranks the interceptor's: callers need the
			// typed error with the body intact.
			if respErr != nil {
				return resp, respErr
			}

			return resp, interceptErr
		}
	}

	if respErr != nil {
		return resp, respErr
	}

	if c.cache != nil && req.Method == http.MethodGet {
		c.storeResponse(ctx, fullURL, resp)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query *gitlab.Query) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// GetPage performs a GET request with a page descriptor.
func (c *Client) GetPage(ctx context.Context, path string, query *gitlab.Query, page *gitlab.PageOptions) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query, Page: page})
}

// Post performs a POST request. Parameters travel in the query string the
// way the API expects them; form carries an optional urlencoded body.
func (c *Client) Post(ctx context.Context, path string, query *gitlab.Query) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Query: query})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, query *gitlab.Query) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Query: query})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query *gitlab.Query) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Query: query})
}

// buildURL assembles base URL, API namespace, path, query, page descriptor
// and, for URL-parameter auth, the credential.
func (c *Client) buildURL(ctx context.Context, req *Request) (string, error) {
	query := gitlab.NewQuery()
	query.Merge(req.Query)

	if req.Page != nil {
		query.Merge(req.Page.ToQuery())
	}

	if c.tokenManager != nil && c.authMethod == gitlab.AuthURLParameter {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return "", fmt.Errorf("getting token: %w", err)
		}

		query.Add(c.tokenType.ParamName(), token)
	}

	return c.baseURL + apiNamespace + req.Path + query.Encode(), nil
}

func (c *Client) applyAuthHeader(ctx context.Context, httpReq *retryablehttp.Request) error {
	if c.tokenManager == nil || c.authMethod != gitlab.AuthHeader {
		return nil
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("getting token: %w", err)
	}

	if c.tokenType == gitlab.OAuthToken {
		httpReq.Header.Set(c.tokenType.HeaderName(), "Bearer "+token)
	} else {
		httpReq.Header.Set(c.tokenType.HeaderName(), token)
	}

	return nil
}

// buildBody renders the request body: multipart for file attachments,
// urlencoded for forms, nil otherwise.
func buildBody(req *Request) (io.Reader, string, error) {
	if req.File != nil {
		var buffer bytes.Buffer

		writer := multipart.NewWriter(&buffer)

		fieldName := req.File.FieldName
		if fieldName == "" {
			fieldName = "file"
		}

		part, err := writer.CreateFormFile(fieldName, req.File.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("creating multipart field: %w", err)
		}

		_, err = part.Write(req.File.Content)
		if err != nil {
			return nil, "", fmt.Errorf("writing multipart content: %w", err)
		}

		err = writer.Close()
		if err != nil {
			return nil, "", fmt.Errorf("closing multipart writer: %w", err)
		}

		return &buffer, writer.FormDataContentType(), nil
	}

	if len(req.Form) > 0 {
		return strings.NewReader(req.Form.Encode()), "application/x-www-form-urlencoded", nil
	}

	return nil, "", nil
}

func (c *Client) cachedResponse(ctx context.Context, fullURL string) (*Response, bool) {
	entry, err := c.cache.Get(ctx, gitlab.CacheKey(http.MethodGet, fullURL))
	if err != nil {
		return nil, false
	}

	return &Response{StatusCode: http.StatusOK, Body: entry.Data}, true
}

func (c *Client) storeResponse(ctx context.Context, fullURL string, resp *Response) {
	ttl := c.cacheTTL
	if ttl == 0 {
		ttl = gitlab.DefaultCacheOptions().TTL
	}

	entry := &gitlab.CacheEntry{
		Data:      resp.Body,
		ExpiresAt: time.Now().Add(ttl),
		ETag:      resp.Headers.Get("ETag"),
	}

	err := c.cache.Set(ctx, gitlab.CacheKey(http.MethodGet, fullURL), entry)
	if err != nil && c.logger != nil {
		c.logger.Warn("caching response failed", map[string]interface{}{"error": err.Error()})
	}
}
