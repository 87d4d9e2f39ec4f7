package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
)

const listBody = `{
	"success": true,
	"data": [
		{"book_id":"B001","book_name":"Go in Action","book_author":"Kennedy","book_publisher":"Manning","book_isbn":"9781617291784","book_price":39.99,"interview_times":3}
	],
	"pagination": {"page":2,"per_page":12,"total":30,"pages":3}
}`

func TestListBooksQueryAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/books/paginated" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("per_page") != "12" {
			t.Errorf("paging params = %v", q)
		}
		if q.Get("search") != "go" || q.Get("sort_by") != "book_price" || q.Get("sort_order") != "DESC" {
			t.Errorf("query params = %v", q)
		}
		io.WriteString(w, listBody)
	}))
	defer srv.Close()

	c := New(srv.URL)
	page, err := c.ListBooks(context.Background(), model.ListQuery{
		Page: 2, PerPage: 12, Search: "go",
		SortBy: "book_price", SortOrder: model.SortDesc,
	})
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if len(page.Books) != 1 || page.Books[0].ID != "B001" {
		t.Errorf("books = %+v", page.Books)
	}
	if page.Pagination.Pages != 3 || page.Pagination.Total != 30 {
		t.Errorf("pagination = %+v", page.Pagination)
	}
}

func TestServerFailureBecomesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"success": false, "message": "图书不存在"}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Book(context.Background(), "B404")
	if err == nil {
		t.Fatal("expected an error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Message != "图书不存在" {
		t.Errorf("message = %q, the server message must survive", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
}

func TestSuccessFalseWinsOver200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success": false, "message": "delete failed"}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.DeleteBook(context.Background(), "B001")
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message != "delete failed" {
		t.Fatalf("err = %v", err)
	}
}

func TestUndecodableErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html>bad gateway</html>")
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Statistics(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T (%v)", err, err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
}

func TestDeleteBatchSendsBookIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/books/batch" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var body struct {
			BookIDs []string `json:"book_ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(body.BookIDs) != 2 || body.BookIDs[0] != "B001" {
			t.Errorf("book_ids = %v", body.BookIDs)
		}
		io.WriteString(w, `{"success": true, "message": "成功删除 2 本图书"}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	msg, err := c.DeleteBatch(context.Background(), []string{"B001", "B002"})
	if err != nil {
		t.Fatalf("DeleteBatch: %v", err)
	}
	if !strings.Contains(msg, "2") {
		t.Errorf("msg = %q", msg)
	}
}

func TestFilterBooksPostsNormalizedFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/books/filter" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Filters model.AdvancedFilter `json:"filters"`
			Page    int                  `json:"page"`
			PerPage int                  `json:"per_page"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Filters.Publisher != "Manning" {
			t.Errorf("publisher = %q, whitespace should be trimmed", body.Filters.Publisher)
		}
		if body.Page != 1 || body.PerPage != 12 {
			t.Errorf("paging = %d/%d", body.Page, body.PerPage)
		}
		io.WriteString(w, listBody)
	}))
	defer srv.Close()

	c := New(srv.URL)
	filter := model.AdvancedFilter{Publisher: "  Manning  "}
	if _, err := c.FilterBooks(context.Background(), filter, model.ListQuery{Page: 1, PerPage: 12}); err != nil {
		t.Fatalf("FilterBooks: %v", err)
	}
}

func TestImportCSVUploadsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "books.csv" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		data, _ := io.ReadAll(f)
		if !strings.Contains(string(data), "B001") {
			t.Errorf("upload body = %q", data)
		}
		io.WriteString(w, `{"success":true,"message":"done","data":{"success_count":5,"error_count":1,"errors":["row 3: bad price"]}}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	csv := "book_id,book_name\nB001,x\n"
	report, msg, err := c.ImportCSV(context.Background(), "books.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if report.SuccessCount != 5 || report.ErrorCount != 1 {
		t.Errorf("report = %+v", report)
	}
	if msg != "done" {
		t.Errorf("msg = %q", msg)
	}
}

func TestExportCSVStreamsRawFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		io.WriteString(w, "图书ID,图书名称\nB001,x\n")
	}))
	defer srv.Close()

	c := New(srv.URL)
	var buf bytes.Buffer
	n, err := c.ExportCSV(context.Background(), &buf)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if n == 0 || !strings.Contains(buf.String(), "B001") {
		t.Errorf("exported %d bytes: %q", n, buf.String())
	}
}
