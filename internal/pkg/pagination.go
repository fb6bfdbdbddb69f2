package pkg

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/finbase/cardbase/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 20

	// MaxPageSize bounds page_size to prevent unbounded result sets.
	MaxPageSize = 100

	defaultSort = "id:desc"
)

// reservedParams lists query parameter names used for pagination/sorting, not for filtering.
var reservedParams = map[string]bool{
	"page":      true,
	"page_size": true,
	"sort":      true,
}

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParsePageRequest extracts pagination, sorting, and filtering parameters from
// query params. Out-of-range page values are clamped to defaults rather than
// rejected, and unknown ad-hoc filter params are ignored; the sort expression
// is not checked here — callers validate it against the resource's allow-list
// with ValidateSort and reject unknown fields.
func ParsePageRequest(c *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if page < 1 {
		page = defaultPage
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	sort := c.DefaultQuery("sort", defaultSort)

	filter := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] {
			continue
		}
		if len(values) > 0 && values[0] != "" {
			filter[key] = values[0]
		}
	}

	return domain.PageRequest{
		Page:     page,
		PageSize: pageSize,
		Sort:     sort,
		Filter:   filter,
	}
}

// NormalizePageRequest applies defaults and bounds to a client-supplied page
// request (the structured filter endpoint path). Unlike ParsePageRequest it
// rejects a negative page size instead of clamping it; zero means unset and
// takes the default.
func NormalizePageRequest(req *domain.PageRequest) error {
	if req.PageSize < 0 {
		return domain.NewAppError(domain.CodeValidation, "page_size must be greater than 0", nil)
	}
	if req.Page < 1 {
		req.Page = defaultPage
	}
	if req.PageSize == 0 {
		req.PageSize = defaultPageSize
	}
	if req.PageSize > MaxPageSize {
		req.PageSize = MaxPageSize
	}
	if req.Sort == "" {
		req.Sort = defaultSort
	}
	return nil
}

// ValidateSort rejects a sort expression whose field is unknown or whose
// direction is not asc/desc. Unknown sort fields are an error, not silently
// ignored.
func ValidateSort(sort string, allowed []string) error {
	field, direction, ok := splitSort(sort)
	if !ok {
		return domain.NewAppError(domain.CodeValidation, "sort must have the form field:asc or field:desc", nil)
	}
	if !validFieldName.MatchString(field) || !isAllowed(field, allowed) {
		return domain.NewAppError(domain.CodeValidation, "unknown sort field "+strconv.Quote(field), nil)
	}
	if direction != "asc" && direction != "desc" {
		return domain.NewAppError(domain.CodeValidation, "sort direction must be asc or desc", nil)
	}
	return nil
}

// ValidateFilter rejects filter criteria whose keys are not in the allowed
// list. Keys may carry the __like suffix.
func ValidateFilter(filter map[string]string, allowed []string) error {
	for key := range filter {
		field := strings.TrimSuffix(key, "__like")
		if !validFieldName.MatchString(field) || !isAllowed(field, allowed) {
			return domain.NewAppError(domain.CodeValidation, "unknown filter field "+strconv.Quote(key), nil)
		}
	}
	return nil
}

// Paginate returns a GORM scope that applies LIMIT and OFFSET based on the page request.
func Paginate(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (req.Page - 1) * req.PageSize
		return db.Offset(offset).Limit(req.PageSize)
	}
}

// Sort returns a GORM scope that applies ORDER BY based on the page request.
// Only field names present in the allowed list are applied; anything else
// leaves the query unordered. Request surfaces reject unknown sort fields
// before reaching this scope (ValidateSort), so the checks here are the last
// line of defense against SQL injection, not the API contract.
func Sort(req domain.PageRequest, allowed []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		field, direction, ok := splitSort(req.Sort)
		if !ok {
			return db
		}

		if direction != "asc" && direction != "desc" {
			return db
		}

		if !validFieldName.MatchString(field) {
			return db
		}

		if !isAllowed(field, allowed) {
			return db
		}

		return db.Order(field + " " + direction)
	}
}

// Filter returns a GORM scope that applies WHERE conditions based on the page request filters.
// Only filter keys present in the allowed list are applied; others are silently ignored.
// Keys ending with "__like" produce a LIKE '%value%' condition; others use exact match.
// Populated criteria combine with AND semantics.
func Filter(req domain.PageRequest, allowed []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for key, value := range req.Filter {
			// Check for __like suffix.
			if strings.HasSuffix(key, "__like") {
				field := strings.TrimSuffix(key, "__like")
				if !validFieldName.MatchString(field) {
					continue
				}
				if !isAllowed(field, allowed) {
					continue
				}
				db = db.Where(field+" LIKE ?", "%"+value+"%")
			} else {
				if !validFieldName.MatchString(key) {
					continue
				}
				if !isAllowed(key, allowed) {
					continue
				}
				db = db.Where(key+" = ?", value)
			}
		}
		return db
	}
}

// NewPageResult creates a PageResult with computed TotalPages.
func NewPageResult[T any](items []T, total int64, req domain.PageRequest) *domain.PageResult[T] {
	totalPages := 0
	if req.PageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(req.PageSize)))
	}

	if items == nil {
		items = []T{}
	}

	return &domain.PageResult[T]{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}
}

// splitSort splits "field:direction" into its parts.
func splitSort(sort string) (field, direction string, ok bool) {
	parts := strings.SplitN(sort, ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	field = strings.TrimSpace(parts[0])
	direction = strings.TrimSpace(strings.ToLower(parts[1]))
	if field == "" || direction == "" {
		return "", "", false
	}
	return field, direction, true
}

// isAllowed checks if a field name is in the allowed list.
func isAllowed(field string, allowed []string) bool {
	return slices.Contains(allowed, field)
}
