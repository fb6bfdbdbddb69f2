package crud

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finbase/cardbase/internal/domain"
	"github.com/finbase/cardbase/internal/pkg"
)

// FilterRequest is the structured filter/pagination combination accepted by
// the dedicated /filter endpoints. Filter keys combine with AND semantics;
// absent keys impose no constraint. PageSize is a pointer so that an absent
// field (defaulted) can be told apart from an explicit zero (rejected).
type FilterRequest struct {
	Page     int               `json:"page"`
	PageSize *int              `json:"page_size"`
	Sort     string            `json:"sort"`
	Filter   map[string]string `json:"filter"`
}

// Handler provides the gin endpoints for one resource type. C and U are the
// create and update request DTOs, R the response DTO. The mapper functions
// are pure field copiers supplied by the resource module.
type Handler[T any, PT interface {
	*T
	domain.Entity
}, C, U, R any] struct {
	svc        *Service[T, PT]
	fromCreate func(*C) PT
	fromUpdate func(*U) PT
	toResponse func(PT) R
	ownerParam string
	idParam    string
}

// NewHandler creates a Handler. ownerParam names the URL parameter carrying
// the owning resource id (e.g. "cardId"); it is empty for top-level
// resources.
func NewHandler[T any, PT interface {
	*T
	domain.Entity
}, C, U, R any](
	svc *Service[T, PT],
	fromCreate func(*C) PT,
	fromUpdate func(*U) PT,
	toResponse func(PT) R,
	ownerParam string,
) *Handler[T, PT, C, U, R] {
	if svc == nil {
		panic("crud.NewHandler: service must not be nil")
	}
	if fromCreate == nil || fromUpdate == nil || toResponse == nil {
		panic("crud.NewHandler: mapper functions must not be nil")
	}
	return &Handler[T, PT, C, U, R]{
		svc:        svc,
		fromCreate: fromCreate,
		fromUpdate: fromUpdate,
		toResponse: toResponse,
		ownerParam: ownerParam,
		idParam:    "id",
	}
}

// WithIDParam overrides the URL parameter name carrying the resource's own id.
// Gin requires one wildcard name per path position, so a resource whose
// collection also anchors nested routes (e.g. /cards/:cardId/transactions)
// must use that shared name for its own id.
func (h *Handler[T, PT, C, U, R]) WithIDParam(name string) *Handler[T, PT, C, U, R] {
	h.idParam = name
	return h
}

// Create handles POST /{resource}.
func (h *Handler[T, PT, C, U, R]) Create(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	var req C
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	e, err := h.svc.Create(c.Request.Context(), h.fromCreate(&req), ownerID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, h.toResponse(e))
}

// Get handles GET /{resource}/:id.
func (h *Handler[T, PT, C, U, R]) Get(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	id, err := parseID(c, h.idParam)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	e, err := h.svc.Get(c.Request.Context(), id, ownerID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, h.toResponse(e))
}

// List handles GET /{resource}. A client-supplied sort expression must name
// an allowed field; unknown sort fields fail with a validation error rather
// than falling back to the store's natural order. Ad-hoc filter params stay
// tolerant: unknown keys impose no constraint.
func (h *Handler[T, PT, C, U, R]) List(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	req := pkg.ParsePageRequest(c)
	if sort := c.Query("sort"); sort != "" {
		if err := pkg.ValidateSort(sort, h.svc.repo.opts.SortFields); err != nil {
			pkg.Error(c, err)
			return
		}
	}

	result, err := h.svc.List(c.Request.Context(), ownerID, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, h.mapPage(result))
}

// Filter handles POST /{resource}/filter: a structured filter/pagination
// body returning the same page shape as List, with strict validation of
// page size, sort field, and filter keys.
func (h *Handler[T, PT, C, U, R]) Filter(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	var req FilterRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	pageSize := 0
	if req.PageSize != nil {
		if *req.PageSize <= 0 {
			pkg.Error(c, domain.NewAppError(domain.CodeValidation, "page_size must be greater than 0", nil))
			return
		}
		pageSize = *req.PageSize
	}

	result, err := h.svc.Filter(c.Request.Context(), ownerID, domain.PageRequest{
		Page:     req.Page,
		PageSize: pageSize,
		Sort:     req.Sort,
		Filter:   req.Filter,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, h.mapPage(result))
}

// Update handles PUT /{resource}/:id. The stored record's mutable fields are
// replaced wholesale with the request body; identifiers are taken from the
// URL path.
func (h *Handler[T, PT, C, U, R]) Update(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	id, err := parseID(c, h.idParam)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req U
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	e, err := h.svc.Update(c.Request.Context(), id, ownerID, h.fromUpdate(&req))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, h.toResponse(e))
}

// Delete handles DELETE /{resource}/:id. Success is 204 with no body; a
// missing record (or one owned by a different parent) is 404.
func (h *Handler[T, PT, C, U, R]) Delete(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	id, err := parseID(c, h.idParam)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, ownerID); err != nil {
		pkg.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// mapPage converts a page of entities into a page of response DTOs,
// preserving the pagination metadata.
func (h *Handler[T, PT, C, U, R]) mapPage(result *domain.PageResult[T]) *domain.PageResult[R] {
	items := make([]R, len(result.Items))
	for i := range result.Items {
		items[i] = h.toResponse(PT(&result.Items[i]))
	}
	return &domain.PageResult[R]{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}
}

// ownerID resolves the owning resource id from the URL path when the handler
// is owner-scoped. It writes the error response itself and reports false on a
// malformed id.
func (h *Handler[T, PT, C, U, R]) ownerID(c *gin.Context) (uint, bool) {
	if h.ownerParam == "" {
		return 0, true
	}
	id, err := parseID(c, h.ownerParam)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return 0, false
	}
	return id, true
}

// parseID extracts and validates a numeric URL parameter.
func parseID(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s: %s", param, idStr)
	}
	if id > uint64(^uint(0)) {
		return 0, fmt.Errorf("invalid %s: %s", param, idStr)
	}
	return uint(id), nil
}
