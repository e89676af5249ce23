package handler_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"contactbook/internal/domain"
	"contactbook/internal/transport/http/handler"
	"contactbook/internal/usecase"
	"github.com/gin-gonic/gin"
)

type fakeContactUsecase struct {
	createContact func(ctx context.Context, in usecase.CreateContactInput) (*domain.Contact, error)
	listContacts  func(ctx context.Context, userID string) ([]domain.Contact, error)
	deleteContact func(ctx context.Context, id, userID string) error
}

func (f *fakeContactUsecase) CreateContact(ctx context.Context, in usecase.CreateContactInput) (*domain.Contact, error) {
	return f.createContact(ctx, in)
}

func (f *fakeContactUsecase) ListContacts(ctx context.Context, userID string) ([]domain.Contact, error) {
	return f.listContacts(ctx, userID)
}

func (f *fakeContactUsecase) DeleteContact(ctx context.Context, id, userID string) error {
	return f.deleteContact(ctx, id, userID)
}

// newContactEngine wires the handler behind a stub auth step that sets
// userID when the test supplies one, mimicking the real middleware pair.
func newContactEngine(uc *fakeContactUsecase, userID string) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := handler.NewContactHandler(uc, logger)

	setUser := func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	}

	r := gin.New()
	r.GET("/contacts", setUser, h.List)
	r.POST("/contacts", setUser, h.Create)
	r.DELETE("/contacts/:id", setUser, h.Delete)
	return r
}

func TestListContacts_Anonymous_EmptySuccess(t *testing.T) {
	// No usecase call should happen for a guest; a nil method would panic.
	uc := &fakeContactUsecase{}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	newContactEngine(uc, "").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Success bool              `json:"success"`
		Count   int               `json:"count"`
		Data    []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Count != 0 || resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("resp = %+v, want empty successful list", resp)
	}
}

func TestListContacts_Authenticated_ReturnsOwnedContacts(t *testing.T) {
	now := time.Now()
	uc := &fakeContactUsecase{
		listContacts: func(_ context.Context, userID string) ([]domain.Contact, error) {
			if userID != "user-1" {
				t.Errorf("userID = %q, want user-1", userID)
			}
			return []domain.Contact{
				{ID: "c2", UserID: userID, Name: "Bob", Phone: "+1-555-0102", CreatedAt: now},
				{ID: "c1", UserID: userID, Name: "Alice", Phone: "+1-555-0101", CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	newContactEngine(uc, "user-1").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Count int `json:"count"`
		Data  []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 2 || len(resp.Data) != 2 || resp.Data[0].ID != "c2" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestCreateContact_MissingFields_Returns400(t *testing.T) {
	uc := &fakeContactUsecase{
		createContact: func(_ context.Context, _ usecase.CreateContactInput) (*domain.Contact, error) {
			return nil, domain.ErrInvalidContact
		},
	}
	w := postJSON(newContactEngine(uc, "user-1"), "/contacts", `{"name":"Bob"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Name and phone are required") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestCreateContact_BadEmail_Returns400(t *testing.T) {
	uc := &fakeContactUsecase{
		createContact: func(_ context.Context, _ usecase.CreateContactInput) (*domain.Contact, error) {
			return nil, domain.ErrInvalidContact
		},
	}
	w := postJSON(newContactEngine(uc, "user-1"), "/contacts",
		`{"name":"Bob","phone":"+1-555-0100","email":"nope"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid email format") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestCreateContact_Duplicate_Returns400(t *testing.T) {
	uc := &fakeContactUsecase{
		createContact: func(_ context.Context, _ usecase.CreateContactInput) (*domain.Contact, error) {
			return nil, domain.ErrDuplicateContact
		},
	}
	w := postJSON(newContactEngine(uc, "user-1"), "/contacts",
		`{"name":"Bob","phone":"+1-555-0100","email":"bob@example.com"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateContact_Success_Returns201(t *testing.T) {
	uc := &fakeContactUsecase{
		createContact: func(_ context.Context, in usecase.CreateContactInput) (*domain.Contact, error) {
			if in.UserID != "user-1" {
				t.Errorf("UserID = %q, want user-1", in.UserID)
			}
			return &domain.Contact{ID: "c1", UserID: in.UserID, Name: in.Name, Phone: in.Phone}, nil
		},
	}
	w := postJSON(newContactEngine(uc, "user-1"), "/contacts",
		`{"name":"Bob","phone":"+1-555-0100"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
}

func TestDeleteContact_NotFound_Returns404(t *testing.T) {
	uc := &fakeContactUsecase{
		deleteContact: func(_ context.Context, _, _ string) error {
			return domain.ErrContactNotFound
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/contacts/c-missing", nil)
	newContactEngine(uc, "user-1").ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDeleteContact_Success_Returns200(t *testing.T) {
	var gotID, gotUser string
	uc := &fakeContactUsecase{
		deleteContact: func(_ context.Context, id, userID string) error {
			gotID, gotUser = id, userID
			return nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/contacts/c1", nil)
	newContactEngine(uc, "user-1").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotID != "c1" || gotUser != "user-1" {
		t.Errorf("delete called with (%q, %q)", gotID, gotUser)
	}
}
