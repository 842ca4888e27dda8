package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	apimw "github.com/quicklist/todo-api/internal/api/middleware"
	"github.com/quicklist/todo-api/internal/core/domain"
	"github.com/quicklist/todo-api/internal/core/ports"
)

const validID = "64b2f0b2a3c4d5e6f7081920"

type stubTodoService struct {
	calls    int
	listFn   func(ctx context.Context, ownerID string) ([]*domain.Todo, error)
	createFn func(ctx context.Context, input ports.CreateTodoInput) (*domain.Todo, error)
	getFn    func(ctx context.Context, id, ownerID string) (*domain.Todo, error)
	updateFn func(ctx context.Context, id, ownerID string, input ports.UpdateTodoInput) (*domain.Todo, error)
	deleteFn func(ctx context.Context, id, ownerID string) (*domain.Todo, error)
}

func (s *stubTodoService) List(ctx context.Context, ownerID string) ([]*domain.Todo, error) {
	s.calls++
	return s.listFn(ctx, ownerID)
}

func (s *stubTodoService) Create(ctx context.Context, input ports.CreateTodoInput) (*domain.Todo, error) {
	s.calls++
	return s.createFn(ctx, input)
}

func (s *stubTodoService) Get(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
	s.calls++
	return s.getFn(ctx, id, ownerID)
}

func (s *stubTodoService) Update(ctx context.Context, id, ownerID string, input ports.UpdateTodoInput) (*domain.Todo, error) {
	s.calls++
	return s.updateFn(ctx, id, ownerID, input)
}

func (s *stubTodoService) Delete(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
	s.calls++
	return s.deleteFn(ctx, id, ownerID)
}

// newAuthedContext builds an echo context carrying the user id the Auth
// middleware would have injected.
func newAuthedContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(apimw.UserIDKey, "user123")
	return c, rec
}

func TestTodoHandler_List_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		listFn: func(ctx context.Context, ownerID string) ([]*domain.Todo, error) {
			if ownerID != "user123" {
				t.Fatalf("expected owner user123, got %s", ownerID)
			}
			return []*domain.Todo{
				{ID: "b", UserID: ownerID, Title: "newer", Status: domain.StatusPending},
				{ID: "a", UserID: ownerID, Title: "older", Status: domain.StatusCompleted},
			}, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec := newAuthedContext(e, http.MethodGet, "/todo", "")
	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data []todoResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0].Title != "newer" || resp.Data[1].Title != "older" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}

func TestTodoHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		createFn: func(ctx context.Context, input ports.CreateTodoInput) (*domain.Todo, error) {
			if input.OwnerID != "user123" || input.Title != "Buy milk" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Todo{ID: validID, UserID: input.OwnerID, Title: input.Title, Status: domain.StatusPending}, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec := newAuthedContext(e, http.MethodPost, "/todo", `{"title":"Buy milk"}`)
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Data todoResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data.Status != "pending" || resp.Data.Title != "Buy milk" || resp.Data.Description != "" {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}

func TestTodoHandler_Create_EmptyTitle(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		createFn: func(ctx context.Context, input ports.CreateTodoInput) (*domain.Todo, error) {
			t.Fatalf("store must not be called")
			return nil, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec := newAuthedContext(e, http.MethodPost, "/todo", `{"title":""}`)
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Error  string              `json:"error"`
		Issues []domain.FieldIssue `json:"issues"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Issues) != 1 || resp.Issues[0].Field != "title" {
		t.Fatalf("expected an issue on title, got %+v", resp.Issues)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no store call, got %d", stub.calls)
	}
}

func TestTodoHandler_Get_InvalidID(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		getFn: func(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
			t.Fatalf("store must not be called")
			return nil, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec := newAuthedContext(e, http.MethodGet, "/todo/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := h.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "invalid ID" {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no store call, got %d", stub.calls)
	}
}

func TestTodoHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		getFn: func(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
			return nil, domain.ErrTodoNotFound
		},
	}
	h := NewTodoHandler(stub)

	c, rec := newAuthedContext(e, http.MethodGet, "/todo/"+validID, "")
	c.SetParamNames("id")
	c.SetParamValues(validID)

	if err := h.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTodoHandler_Update_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		updateFn: func(ctx context.Context, id, ownerID string, input ports.UpdateTodoInput) (*domain.Todo, error) {
			if id != validID || ownerID != "user123" {
				t.Fatalf("unexpected args: %s %s", id, ownerID)
			}
			if input.Title != nil {
				t.Fatalf("title must stay absent, got %q", *input.Title)
			}
			if input.Status == nil || *input.Status != domain.StatusCompleted {
				t.Fatalf("expected status completed, got %+v", input.Status)
			}
			return &domain.Todo{ID: id, UserID: ownerID, Title: "Buy milk", Status: domain.StatusCompleted}, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec := newAuthedContext(e, http.MethodPut, "/todo/"+validID, `{"status":"completed"}`)
	c.SetParamNames("id")
	c.SetParamValues(validID)

	if err := h.Update(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTodoHandler_Update_BadStatus(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		updateFn: func(ctx context.Context, id, ownerID string, input ports.UpdateTodoInput) (*domain.Todo, error) {
			t.Fatalf("store must not be called")
			return nil, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec := newAuthedContext(e, http.MethodPut, "/todo/"+validID, `{"status":"done"}`)
	c.SetParamNames("id")
	c.SetParamValues(validID)

	if err := h.Update(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no store call, got %d", stub.calls)
	}
}

func TestTodoHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		deleteFn: func(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
			return &domain.Todo{ID: id, UserID: ownerID, Title: "gone"}, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec := newAuthedContext(e, http.MethodDelete, "/todo/"+validID, "")
	c.SetParamNames("id")
	c.SetParamValues(validID)

	if err := h.Delete(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message == "" {
		t.Fatalf("expected confirmation message")
	}
}

func TestTodoHandler_Delete_AlreadyDeleted(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		deleteFn: func(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
			return nil, domain.ErrTodoNotFound
		},
	}
	h := NewTodoHandler(stub)

	// Repeat deletes must return 404 every time, never a different status.
	for i := 0; i < 2; i++ {
		c, rec := newAuthedContext(e, http.MethodDelete, "/todo/"+validID, "")
		c.SetParamNames("id")
		c.SetParamValues(validID)

		if err := h.Delete(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("call %d: expected 404, got %d", i+1, rec.Code)
		}
	}
}
