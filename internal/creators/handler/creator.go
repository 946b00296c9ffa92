package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"creatorverse/internal/creators/service"
	"creatorverse/internal/creators/validator"
	apperrors "creatorverse/pkg/errors"
	httputil "creatorverse/pkg/http"
	"creatorverse/pkg/logger"
	"creatorverse/pkg/model"
	"creatorverse/pkg/sanitizer"
)

type CreatorHandler struct {
	service service.CreatorService
	log     *logger.Logger
}

func NewCreatorHandler(service service.CreatorService, log *logger.Logger) *CreatorHandler {
	return &CreatorHandler{
		service: service,
		log:     log,
	}
}

type ValidateResponse struct {
	Valid  bool                  `json:"valid"`
	Errors validator.FieldErrors `json:"errors"`
}

type HandlePreview struct {
	Platform   model.Platform `json:"platform"`
	Input      string         `json:"input"`
	Handle     string         `json:"handle"`
	Valid      bool           `json:"valid"`
	ProfileURL string         `json:"profile_url,omitempty"`
}

func (h *CreatorHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *CreatorHandler) decode(w http.ResponseWriter, r *http.Request, handler string) (*model.Creator, bool) {
	var c model.Creator
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		h.log.Warn("Invalid request body", "handler", handler, "error", err)
		h.writeError(w, handler, apperrors.InvalidInput("Invalid request body"))
		return nil, false
	}
	return &c, true
}

func (h *CreatorHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c, ok := h.decode(w, r, "Create")
	if !ok {
		return
	}

	if err := h.service.Create(r.Context(), c); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, c); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *CreatorHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	c, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, c); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

// List serves ?q= (name search), ?sort=, ?limit= and ?offset=.
func (h *CreatorHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	query := r.URL.Query()
	sort, err := model.ParseSortOrder(query.Get("sort"))
	if err != nil {
		h.writeError(w, "List", apperrors.InvalidInput(err.Error()))
		return
	}

	creators, total, err := h.service.List(r.Context(), model.ListQuery{
		Search: strings.TrimSpace(query.Get("q")),
		Sort:   sort,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WritePaginated(w, creators, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "operation", "WritePaginated", "error", err)
	}
}

func (h *CreatorHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	c, ok := h.decode(w, r, "Update")
	if !ok {
		return
	}

	updated, err := h.service.Update(r.Context(), ps.ByName("id"), c)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, updated); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CreatorHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	httputil.WriteNoContent(w)
}

// Validate checks a draft without saving it.
func (h *CreatorHandler) Validate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c, ok := h.decode(w, r, "Validate")
	if !ok {
		return
	}

	errs := h.service.Validate(c)
	if err := httputil.WriteJSON(w, http.StatusOK, ValidateResponse{
		Valid:  len(errs) == 0,
		Errors: errs,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Validate", "operation", "WriteJSON", "error", err)
	}
}

// PreviewHandle shows what a raw social input would be stored as.
func (h *CreatorHandler) PreviewHandle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	platform, ok := model.ParsePlatform(ps.ByName("platform"))
	if !ok {
		h.writeError(w, "PreviewHandle", apperrors.InvalidInput("unsupported platform: "+ps.ByName("platform")))
		return
	}

	input := r.URL.Query().Get("input")
	handle := sanitizer.ExtractHandle(platform, input)
	valid := sanitizer.IsValidHandle(platform, input)

	preview := HandlePreview{
		Platform: platform,
		Input:    input,
		Handle:   handle,
		Valid:    valid,
	}
	if valid {
		preview.ProfileURL = platform.ProfileURL(handle)
	}

	if err := httputil.WriteJSON(w, http.StatusOK, preview); err != nil {
		h.log.Error("failed to write JSON response", "handler", "PreviewHandle", "operation", "WriteJSON", "error", err)
	}
}

func (h *CreatorHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/creators", h.Create)
	router.GET("/api/v1/creators", h.List)
	router.POST("/api/v1/creators/validate", h.Validate)
	router.GET("/api/v1/creators/id/:id", h.GetByID)
	router.PUT("/api/v1/creators/id/:id", h.Update)
	router.DELETE("/api/v1/creators/id/:id", h.Delete)
	router.GET("/api/v1/handles/:platform", h.PreviewHandle)
}
