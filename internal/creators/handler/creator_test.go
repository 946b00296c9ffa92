package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"creatorverse/internal/creators/validator"
	apperrors "creatorverse/pkg/errors"
	"creatorverse/pkg/logger"
	"creatorverse/pkg/model"
)

type mockCreatorService struct {
	createFunc   func(ctx context.Context, c *model.Creator) error
	getByIDFunc  func(ctx context.Context, id string) (*model.Creator, error)
	listFunc     func(ctx context.Context, q model.ListQuery) ([]*model.Creator, int64, error)
	updateFunc   func(ctx context.Context, id string, c *model.Creator) (*model.Creator, error)
	deleteFunc   func(ctx context.Context, id string) error
	validateFunc func(c *model.Creator) validator.FieldErrors
}

func (m *mockCreatorService) Create(ctx context.Context, c *model.Creator) error {
	return m.createFunc(ctx, c)
}

func (m *mockCreatorService) GetByID(ctx context.Context, id string) (*model.Creator, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockCreatorService) List(ctx context.Context, q model.ListQuery) ([]*model.Creator, int64, error) {
	return m.listFunc(ctx, q)
}

func (m *mockCreatorService) Update(ctx context.Context, id string, c *model.Creator) (*model.Creator, error) {
	return m.updateFunc(ctx, id, c)
}

func (m *mockCreatorService) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockCreatorService) Validate(c *model.Creator) validator.FieldErrors {
	return m.validateFunc(c)
}

func (m *mockCreatorService) DrainEvents(ctx context.Context) error {
	return nil
}

func newRouter(svc *mockCreatorService) *httprouter.Router {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	router := httprouter.New()
	NewCreatorHandler(svc, log).RegisterRoutes(router)
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCreate(t *testing.T) {
	svc := &mockCreatorService{
		createFunc: func(ctx context.Context, c *model.Creator) error {
			c.ID = "abc"
			c.Twitter = "Foo"
			return nil
		},
	}

	rr := serve(newRouter(svc), http.MethodPost, "/api/v1/creators", `{"name":"Ada","twitter":"@Foo"}`)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var body struct {
		Data model.Creator `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.ID != "abc" || body.Data.Twitter != "Foo" {
		t.Errorf("unexpected body %+v", body.Data)
	}
}

func TestCreate_BadBody(t *testing.T) {
	svc := &mockCreatorService{}
	rr := serve(newRouter(svc), http.MethodPost, "/api/v1/creators", `{"name":`)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}

func TestCreate_ValidationErrorCarriesFields(t *testing.T) {
	svc := &mockCreatorService{
		createFunc: func(ctx context.Context, c *model.Creator) error {
			return apperrors.Validation("Creator validation failed", map[string]string{"name": "Name is required"})
		},
	}

	rr := serve(newRouter(svc), http.MethodPost, "/api/v1/creators", `{}`)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
	var body struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != apperrors.CodeValidation || body.Details["name"] != "Name is required" {
		t.Errorf("unexpected error body %+v", body)
	}
}

func TestGetByID_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"found", nil, http.StatusOK},
		{"not found", apperrors.NotFoundWithID("Creator", "x"), http.StatusNotFound},
		{"bad id", apperrors.InvalidInput("Invalid creator ID format"), http.StatusBadRequest},
		{"internal", apperrors.Internal("Failed", errors.New("db")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCreatorService{
				getByIDFunc: func(ctx context.Context, id string) (*model.Creator, error) {
					if id != "507f1f77bcf86cd799439011" {
						t.Errorf("unexpected id %q", id)
					}
					if tt.err != nil {
						return nil, tt.err
					}
					return &model.Creator{ID: id, Name: "Ada"}, nil
				},
			}

			rr := serve(newRouter(svc), http.MethodGet, "/api/v1/creators/id/507f1f77bcf86cd799439011", "")
			if rr.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rr.Code)
			}
			if tt.want == http.StatusInternalServerError && strings.Contains(rr.Body.String(), "db") {
				t.Errorf("internal cause leaked: %s", rr.Body.String())
			}
		})
	}
}

func TestList_PassesQuery(t *testing.T) {
	var got model.ListQuery
	svc := &mockCreatorService{
		listFunc: func(ctx context.Context, q model.ListQuery) ([]*model.Creator, int64, error) {
			got = q
			return []*model.Creator{{ID: "1"}}, 7, nil
		},
	}

	rr := serve(newRouter(svc), http.MethodGet, "/api/v1/creators?q=+ada+&sort=name_asc&limit=5&offset=10", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	want := model.ListQuery{Search: "ada", Sort: model.SortNameAsc, Limit: 5, Offset: 10}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	var body struct {
		TotalCount int64 `json:"total_count"`
		Limit      int   `json:"limit"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.TotalCount != 7 || body.Limit != 5 {
		t.Errorf("unexpected pagination %+v", body)
	}
}

func TestList_BadParams(t *testing.T) {
	svc := &mockCreatorService{}
	router := newRouter(svc)

	for _, target := range []string{
		"/api/v1/creators?sort=random",
		"/api/v1/creators?limit=ten",
		"/api/v1/creators?offset=x",
	} {
		if rr := serve(router, http.MethodGet, target, ""); rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rr.Code)
		}
	}
}

func TestUpdate(t *testing.T) {
	svc := &mockCreatorService{
		updateFunc: func(ctx context.Context, id string, c *model.Creator) (*model.Creator, error) {
			c.ID = id
			return c, nil
		},
	}

	rr := serve(newRouter(svc), http.MethodPut, "/api/v1/creators/id/abc", `{"name":"New"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"name":"New"`) {
		t.Errorf("expected updated record, got %s", rr.Body.String())
	}
}

func TestDelete(t *testing.T) {
	deleted := ""
	svc := &mockCreatorService{
		deleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	rr := serve(newRouter(svc), http.MethodDelete, "/api/v1/creators/id/abc", "")
	if rr.Code != http.StatusNoContent || deleted != "abc" {
		t.Errorf("expected 204 for abc, got %d (%q)", rr.Code, deleted)
	}
}

func TestValidateEndpoint(t *testing.T) {
	svc := &mockCreatorService{
		validateFunc: func(c *model.Creator) validator.FieldErrors {
			if c.Name == "" {
				return validator.FieldErrors{"name": "Name is required"}
			}
			return validator.FieldErrors{}
		},
	}
	router := newRouter(svc)

	rr := serve(router, http.MethodPost, "/api/v1/creators/validate", `{}`)
	var resp ValidateResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Valid || resp.Errors["name"] != "Name is required" {
		t.Errorf("unexpected response %+v", resp)
	}

	rr = serve(router, http.MethodPost, "/api/v1/creators/validate", `{"name":"Ada"}`)
	resp = ValidateResponse{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Valid {
		t.Errorf("expected valid, got %+v", resp)
	}
}

func TestPreviewHandle(t *testing.T) {
	router := newRouter(&mockCreatorService{})

	tests := []struct {
		target     string
		wantStatus int
		wantHandle string
		wantValid  bool
		wantURL    string
	}{
		{"/api/v1/handles/youtube?input=https%3A%2F%2Fwww.youtube.com%2F%40Ada", http.StatusOK, "Ada", true, "https://youtube.com/@Ada"},
		{"/api/v1/handles/twitter?input=%40Foo", http.StatusOK, "Foo", true, "https://twitter.com/Foo"},
		{"/api/v1/handles/instagram?input=https%3A%2F%2Fexample.com%2Fx", http.StatusOK, "", false, ""},
		{"/api/v1/handles/myspace?input=tom", http.StatusBadRequest, "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rr := serve(router, http.MethodGet, tt.target, "")
			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rr.Code)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var p HandlePreview
			if err := json.NewDecoder(rr.Body).Decode(&p); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if p.Handle != tt.wantHandle || p.Valid != tt.wantValid || p.ProfileURL != tt.wantURL {
				t.Errorf("unexpected preview %+v", p)
			}
		})
	}
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context, rp *readpref.ReadPref) error { return f.err }

func TestHealthHandler(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})

	for _, tt := range []struct {
		name string
		err  error
		want int
	}{
		{"ready", nil, http.StatusOK},
		{"db down", errors.New("no primary"), http.StatusServiceUnavailable},
	} {
		t.Run(tt.name, func(t *testing.T) {
			router := httprouter.New()
			NewHealthHandler(fakePinger{err: tt.err}, log).RegisterRoutes(router)

			if rr := serve(router, http.MethodGet, "/health", ""); rr.Code != http.StatusOK {
				t.Errorf("/health: expected 200, got %d", rr.Code)
			}
			if rr := serve(router, http.MethodGet, "/ready", ""); rr.Code != tt.want {
				t.Errorf("/ready: expected %d, got %d", tt.want, rr.Code)
			}
		})
	}
}
