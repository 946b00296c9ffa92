package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	apperrors "creatorverse/pkg/errors"
	"creatorverse/pkg/model"
)

const (
	creatorsPath  = "/api/v1/creators"
	creatorByID   = "/api/v1/creators/id/"
	handlesPath   = "/api/v1/handles/"
	idempotencyHd = "Idempotency-Key"
)

// APIError is a non-2xx answer from the creators API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// FieldErrors returns the per-field messages of a validation failure, or nil
// for any other error.
func (e *APIError) FieldErrors() map[string]string {
	if e.Code != apperrors.CodeValidation {
		return nil
	}
	out := make(map[string]string, len(e.Details))
	for k, v := range e.Details {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

type CreatorClient struct {
	http *HttpClient
}

func NewCreatorClient(baseURL string) *CreatorClient {
	return &CreatorClient{http: NewHttpClient(baseURL)}
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

type pageEnvelope struct {
	Data       []*model.Creator `json:"data"`
	TotalCount int64            `json:"total_count"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

type HandlePreview struct {
	Platform   model.Platform `json:"platform"`
	Input      string         `json:"input"`
	Handle     string         `json:"handle"`
	Valid      bool           `json:"valid"`
	ProfileURL string         `json:"profile_url"`
}

func decodeAPIError(resp *Response) error {
	var body struct {
		Error   string         `json:"error"`
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	}
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := resp.DecodeJSON(&body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Error
		apiErr.Details = body.Details
	}
	return apiErr
}

func decodeData[T any](resp *Response, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if !resp.OK() {
		return zero, decodeAPIError(resp)
	}
	var env dataEnvelope[T]
	if err := resp.DecodeJSON(&env); err != nil {
		return zero, fmt.Errorf("failed to decode response: %w", err)
	}
	return env.Data, nil
}

// Insert creates a record. Each call carries a fresh idempotency key so a
// transport-level retry cannot create a duplicate.
func (c *CreatorClient) Insert(ctx context.Context, creator *model.Creator) (*model.Creator, error) {
	resp, err := c.http.Post(ctx, creatorsPath, creator, map[string]string{
		idempotencyHd: uuid.NewString(),
	})
	return decodeData[*model.Creator](resp, err)
}

func (c *CreatorClient) Get(ctx context.Context, id string) (*model.Creator, error) {
	resp, err := c.http.Get(ctx, creatorByID+url.PathEscape(id))
	return decodeData[*model.Creator](resp, err)
}

func (c *CreatorClient) Update(ctx context.Context, id string, creator *model.Creator) (*model.Creator, error) {
	resp, err := c.http.Put(ctx, creatorByID+url.PathEscape(id), creator)
	return decodeData[*model.Creator](resp, err)
}

func (c *CreatorClient) DeleteByID(ctx context.Context, id string) error {
	resp, err := c.http.Delete(ctx, creatorByID+url.PathEscape(id))
	if err != nil {
		return err
	}
	if !resp.OK() {
		return decodeAPIError(resp)
	}
	return nil
}

func (c *CreatorClient) List(ctx context.Context, q model.ListQuery) ([]*model.Creator, int64, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("q", q.Search)
	}
	if q.Sort != "" {
		params.Set("sort", string(q.Sort))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		params.Set("offset", strconv.FormatInt(q.Offset, 10))
	}

	path := creatorsPath
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.http.Get(ctx, path)
	if err != nil {
		return nil, 0, err
	}
	if !resp.OK() {
		return nil, 0, decodeAPIError(resp)
	}
	var page pageEnvelope
	if err := resp.DecodeJSON(&page); err != nil {
		return nil, 0, fmt.Errorf("failed to decode response: %w", err)
	}
	return page.Data, page.TotalCount, nil
}

func (c *CreatorClient) Validate(ctx context.Context, creator *model.Creator) (*ValidationResult, error) {
	resp, err := c.http.Post(ctx, creatorsPath+"/validate", creator, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, decodeAPIError(resp)
	}
	var result ValidationResult
	if err := resp.DecodeJSON(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

func (c *CreatorClient) PreviewHandle(ctx context.Context, platform model.Platform, input string) (*HandlePreview, error) {
	resp, err := c.http.Get(ctx, handlesPath+url.PathEscape(string(platform))+"?input="+url.QueryEscape(input))
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, decodeAPIError(resp)
	}
	var preview HandlePreview
	if err := resp.DecodeJSON(&preview); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &preview, nil
}
