package transaction

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finbase/cardbase/internal/domain"
	"github.com/finbase/cardbase/internal/pkg"
)

// Handler provides the endpoints that are specific to transactions: the
// transactional create and the PDF statement export. The remaining operations
// are served by the shared resource handler.
type Handler struct {
	svc *Service
}

// NewHandler creates a Handler. Panics if svc is nil.
func NewHandler(svc *Service) *Handler {
	if svc == nil {
		panic("transaction.NewHandler: service must not be nil")
	}
	return &Handler{svc: svc}
}

// Create handles POST /cards/:cardId/transactions.
func (h *Handler) Create(c *gin.Context) {
	cardID, ok := cardIDParam(c)
	if !ok {
		return
	}

	var req CreateTransactionRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	t, err := h.svc.Create(c.Request.Context(), fromCreate(&req), cardID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, toResponse(t))
}

// Statement handles GET /cards/:cardId/transactions/statement. It responds
// with the rendered PDF as an attachment.
func (h *Handler) Statement(c *gin.Context) {
	cardID, ok := cardIDParam(c)
	if !ok {
		return
	}

	data, err := h.svc.StatementData(c.Request.Context(), cardID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pdf, filename, err := buildStatementPDF(data)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "statement rendering failed", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func cardIDParam(c *gin.Context) (uint, bool) {
	idStr := c.Param("cardId")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, fmt.Sprintf("invalid cardId: %s", idStr), nil))
		return 0, false
	}
	return uint(id), true
}
