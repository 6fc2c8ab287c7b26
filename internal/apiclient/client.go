// Package apiclient is the HTTP client for the league backend REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"basketball-league-admin/internal/models"
	"basketball-league-admin/internal/validation"

	"github.com/google/uuid"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client

	Clubs     *Resource[models.Club]
	Leagues   *Resource[models.League]
	Teams     *Resource[models.Team]
	Players   *Resource[models.Player]
	Games     *Resource[models.Game]
	GameStats *Resource[models.GameStat]
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Clubs = &Resource[models.Club]{client: c, path: "/clubs"}
	c.Leagues = &Resource[models.League]{client: c, path: "/leagues"}
	c.Teams = &Resource[models.Team]{client: c, path: "/teams"}
	c.Players = &Resource[models.Player]{client: c, path: "/players"}
	c.Games = &Resource[models.Game]{client: c, path: "/games", validate: validation.Game}
	c.GameStats = &Resource[models.GameStat]{client: c, path: "/game-stats", validate: validation.GameStat}
	return c
}

// Error is returned for any non-2xx response.
type Error struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
	Fields     map[string][]string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

// FirstField returns one field error in a stable order, if the backend sent any.
func (e *Error) FirstField() (string, string) {
	field := ""
	for name := range e.Fields {
		if field == "" || name < field {
			field = name
		}
	}
	if field == "" || len(e.Fields[field]) == 0 {
		return "", ""
	}
	return field, e.Fields[field][0]
}

func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

type envelope[T any] struct {
	Data T `json:"data"`
}

type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

type messageBody struct {
	Message string `json:"message"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// send performs the request and returns the raw body of a 2xx response.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode, Method: method, Path: path}
		var parsed errorBody
		if json.Unmarshal(data, &parsed) == nil {
			apiErr.Message = parsed.Message
			apiErr.Fields = parsed.Errors
		}
		return nil, apiErr
	}
	return data, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	data, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func getData[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var out envelope[T]
	err := c.do(ctx, method, path, query, body, &out)
	return out.Data, err
}

func listQuery(opts models.ListOptions) url.Values {
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	for key, value := range opts.Filters {
		query.Set(key, value)
	}
	return query
}

// Resource is the uniform CRUD surface shared by every collection endpoint.
type Resource[T any] struct {
	client   *Client
	path     string
	validate func(T) error
}

func (r *Resource[T]) List(ctx context.Context, opts models.ListOptions) (models.Page[T], error) {
	var page models.Page[T]
	err := r.client.do(ctx, http.MethodGet, r.path, listQuery(opts), nil, &page)
	return page, err
}

func (r *Resource[T]) Get(ctx context.Context, id int) (T, error) {
	return getData[T](ctx, r.client, http.MethodGet, r.itemPath(id), nil, nil)
}

func (r *Resource[T]) Create(ctx context.Context, item T) (T, error) {
	if err := r.check(item); err != nil {
		var zero T
		return zero, err
	}
	return getData[T](ctx, r.client, http.MethodPost, r.path, nil, item)
}

func (r *Resource[T]) Update(ctx context.Context, id int, item T) (T, error) {
	if err := r.check(item); err != nil {
		var zero T
		return zero, err
	}
	return getData[T](ctx, r.client, http.MethodPut, r.itemPath(id), nil, item)
}

func (r *Resource[T]) Delete(ctx context.Context, id int) error {
	return r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil, nil)
}

func (r *Resource[T]) check(item T) error {
	if r.validate == nil {
		return nil
	}
	return r.validate(item)
}

func (r *Resource[T]) itemPath(id int) string {
	return r.path + "/" + strconv.Itoa(id)
}
