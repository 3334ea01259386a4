// Package client sends endpoint requests to the GitHub REST API. It does not
// paginate, retry or wait out rate limits.
package client

import (
	"context"
	"ghrest/pkg/endpoint"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL   = "https://api.github.com"
	DefaultAccept    = "application/vnd.github.v3+json"
	DefaultUserAgent = "ghrest"
	DefaultTimeout   = 30 * time.Second

	DiffAccept = "application/vnd.github.v3.diff"
)

var ErrZeroEndpoint = errors.New("endpoint is not set")

type Options struct {
	BaseURL   string
	Token     string
	Accept    string
	UserAgent string
	Timeout   time.Duration
	Logger    *log.Logger
}

type Client struct {
	baseURL string
	accept  string
	rc      *resty.Client
	log     *log.Logger
}

func New(o *Options) *Client {
	if o == nil {
		o = &Options{}
	}

	baseURL := strings.TrimRight(o.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	accept := o.Accept
	if accept == "" {
		accept = DefaultAccept
	}
	userAgent := o.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	timeout := o.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	logger := o.Logger
	if logger == nil {
		logger = log.New()
		logger.SetLevel(log.WarnLevel)
	}

	rc := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)
	if o.Token != "" {
		rc.SetAuthToken(o.Token)
	}

	return &Client{
		baseURL: baseURL,
		accept:  accept,
		rc:      rc,
		log:     logger,
	}
}

type clientConfiguration struct {
	baseURL   string
	token     string
	accept    string
	userAgent string
	timeout   time.Duration
	level     log.Level
}

func getDefaultConfiguration() (*clientConfiguration, error) {
	level := log.WarnLevel
	if l := viper.GetString("log.level"); l != "" {
		parsed, err := log.ParseLevel(l)
		if err != nil {
			return nil, errors.Wrap(err, "log.level")
		}
		level = parsed
	}

	timeout := DefaultTimeout
	if viper.IsSet("github.timeout") {
		timeout = viper.GetDuration("github.timeout")
	}

	return &clientConfiguration{
		baseURL:   viper.GetString("github.base_url"),
		token:     viper.GetString("github.token"),
		accept:    viper.GetString("github.accept"),
		userAgent: viper.GetString("github.user_agent"),
		timeout:   timeout,
		level:     level,
	}, nil
}

// DefaultClient builds a client from the loaded configuration.
func DefaultClient() (*Client, error) {
	config, err := getDefaultConfiguration()
	if err != nil {
		return nil, err
	}

	logger := log.New()
	logger.SetLevel(config.level)

	return New(&Options{
		BaseURL:   config.baseURL,
		Token:     config.token,
		Accept:    config.accept,
		UserAgent: config.userAgent,
		Timeout:   config.timeout,
		Logger:    logger,
	}), nil
}

type RequestOptions struct {
	Query map[string]string
	// Body is encoded as JSON unless it is a string or []byte, which are
	// sent as given.
	Body interface{}
	// ContentType defaults to application/json.
	ContentType string
	Accept      string
	// Escape sends the escaped path of the endpoint.
	Escape bool
}

// URL is the absolute URL a request for e is sent to.
func (c *Client) URL(e endpoint.Endpoint, escape bool) string {
	if escape {
		return c.baseURL + e.EscapedPath()
	}
	return c.baseURL + e.Path()
}

// Do sends one request for e. A response outside the 2xx range is returned
// together with an *Error.
func (c *Client) Do(ctx context.Context, e endpoint.Endpoint, o *RequestOptions) (*Response, error) {
	if e.IsZero() {
		return nil, ErrZeroEndpoint
	}
	if o == nil {
		o = &RequestOptions{}
	}

	accept := o.Accept
	if accept == "" {
		accept = c.accept
	}

	r := c.rc.R().
		SetContext(ctx).
		SetHeader("Accept", accept)
	if len(o.Query) > 0 {
		r.SetQueryParams(o.Query)
	}
	if o.Body != nil {
		contentType := o.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		r.SetHeader("Content-Type", contentType).SetBody(o.Body)
	}

	start := time.Now()
	resp, err := r.Execute(string(e.Method()), c.URL(e, o.Escape))
	if err != nil {
		c.log.WithFields(log.Fields{
			"method": e.Method(),
			"path":   e.Path(),
		}).WithError(err).Warn("request failed")
		return nil, errors.Wrapf(err, "%s", e)
	}

	c.log.WithFields(log.Fields{
		"method":   e.Method(),
		"path":     e.Path(),
		"status":   resp.StatusCode(),
		"duration": time.Since(start),
	}).Debug("request done")

	response := &Response{
		Endpoint:   e,
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}
	if resp.IsError() {
		return response, newError(response)
	}

	return response, nil
}
