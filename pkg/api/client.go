// Package api is the HTTP client for the book backend. Every response is
// decoded through the success/message envelope exactly once; application
// failures (success:false) come back as *Error, transport and decode problems
// as plain wrapped errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
)

// Error is a failure reported by the backend itself, carrying the
// server-provided message.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Client talks to one backend instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the backend at baseURL (e.g. "http://localhost:5000").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewWithHTTPClient creates a client with a caller-supplied http.Client,
// mainly for tests.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	c := New(baseURL)
	if hc != nil {
		c.http = hc
	}
	return c
}

// envelope is the wire shape shared by every JSON endpoint.
type envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       json.RawMessage   `json:"data"`
	Pagination *model.Pagination `json:"pagination"`
}

// do sends the request and decodes the envelope. A decodable body with
// success:false wins over the HTTP status so the server's message survives.
func (c *Client) do(req *http.Request) (*envelope, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &Error{StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("decode response from %s: %w", req.URL.Path, err)
	}
	if !env.Success {
		return nil, &Error{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// Statistics fetches the aggregate catalog snapshot.
func (c *Client) Statistics(ctx context.Context) (model.Statistics, error) {
	env, err := c.get(ctx, "/api/statistics", nil)
	if err != nil {
		return model.Statistics{}, err
	}
	var stats model.Statistics
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		return model.Statistics{}, fmt.Errorf("decode statistics: %w", err)
	}
	return stats, nil
}

// ListBooks fetches one page via the plain paginated endpoint.
func (c *Client) ListBooks(ctx context.Context, q model.ListQuery) (model.BookPage, error) {
	vals := url.Values{}
	vals.Set("page", strconv.Itoa(q.Page))
	vals.Set("per_page", strconv.Itoa(q.PerPage))
	vals.Set("search", q.Search)
	vals.Set("sort_by", q.SortBy)
	vals.Set("sort_order", string(q.SortOrder))

	env, err := c.get(ctx, "/api/books/paginated", vals)
	if err != nil {
		return model.BookPage{}, err
	}
	return decodePage(env)
}

// FilterBooks fetches one page via the advanced-filter endpoint.
func (c *Client) FilterBooks(ctx context.Context, filter model.AdvancedFilter, q model.ListQuery) (model.BookPage, error) {
	body := struct {
		Filters   model.AdvancedFilter `json:"filters"`
		Page      int                  `json:"page"`
		PerPage   int                  `json:"per_page"`
		SortBy    string               `json:"sort_by"`
		SortOrder model.SortOrder      `json:"sort_order"`
	}{
		Filters:   filter.Normalize(),
		Page:      q.Page,
		PerPage:   q.PerPage,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}

	env, err := c.sendJSON(ctx, http.MethodPost, "/api/books/filter", body)
	if err != nil {
		return model.BookPage{}, err
	}
	return decodePage(env)
}

func decodePage(env *envelope) (model.BookPage, error) {
	var books []model.Book
	if err := json.Unmarshal(env.Data, &books); err != nil {
		return model.BookPage{}, fmt.Errorf("decode book list: %w", err)
	}
	page := model.BookPage{Books: books}
	if env.Pagination != nil {
		page.Pagination = *env.Pagination
	}
	return page, nil
}

// Book fetches a single book by id.
func (c *Client) Book(ctx context.Context, id string) (model.Book, error) {
	env, err := c.get(ctx, "/api/books/"+url.PathEscape(id), nil)
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := json.Unmarshal(env.Data, &book); err != nil {
		return model.Book{}, fmt.Errorf("decode book: %w", err)
	}
	return book, nil
}

// DeleteBook deletes one book and returns the server's confirmation message.
func (c *Client) DeleteBook(ctx context.Context, id string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/books/"+url.PathEscape(id), nil)
	if err != nil {
		return "", err
	}
	env, err := c.do(req)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// DeleteBatch deletes the given ids in one request.
func (c *Client) DeleteBatch(ctx context.Context, ids []string) (string, error) {
	body := struct {
		BookIDs []string `json:"book_ids"`
	}{BookIDs: ids}

	env, err := c.sendJSON(ctx, http.MethodDelete, "/api/books/batch", body)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// ImportCSV uploads a CSV file as multipart field "file" and returns the
// import report plus the server's summary message.
func (c *Client) ImportCSV(ctx context.Context, filename string, r io.Reader) (model.ImportReport, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return model.ImportReport{}, "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return model.ImportReport{}, "", fmt.Errorf("read import file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return model.ImportReport{}, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/import/csv", &buf)
	if err != nil {
		return model.ImportReport{}, "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	env, err := c.do(req)
	if err != nil {
		return model.ImportReport{}, "", err
	}
	var report model.ImportReport
	if err := json.Unmarshal(env.Data, &report); err != nil {
		return model.ImportReport{}, "", fmt.Errorf("decode import report: %w", err)
	}
	return report, env.Message, nil
}

// ExportCSV streams the server's CSV export into w. The export endpoint
// returns a file, not the JSON envelope.
func (c *Client) ExportCSV(ctx context.Context, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/export/csv", nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, &Error{StatusCode: resp.StatusCode}
	}
	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("stream export: %w", err)
	}
	return n, nil
}
