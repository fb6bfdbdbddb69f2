package pkg

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	dbtest "gorm.io/gorm/utils/tests"

	"github.com/finbase/cardbase/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(queryParams url.Values) *gin.Context {
	req := httptest.NewRequest(http.MethodGet, "/?"+queryParams.Encode(), nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(dbtest.DummyDialector{}, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return db
}

func TestParsePageRequest_Defaults(t *testing.T) {
	c := newTestContext(url.Values{})
	pr := ParsePageRequest(c)

	if pr.Page != 1 {
		t.Errorf("expected Page=1, got %d", pr.Page)
	}
	if pr.PageSize != 20 {
		t.Errorf("expected PageSize=20, got %d", pr.PageSize)
	}
	if pr.Sort != "id:desc" {
		t.Errorf("expected Sort=id:desc, got %s", pr.Sort)
	}
	if len(pr.Filter) != 0 {
		t.Errorf("expected empty Filter, got %v", pr.Filter)
	}
}

func TestParsePageRequest_CustomValues(t *testing.T) {
	c := newTestContext(url.Values{
		"page":                {"3"},
		"page_size":           {"50"},
		"sort":                {"status:asc"},
		"status":              {"active"},
		"merchant_name__like": {"coffee"},
	})
	pr := ParsePageRequest(c)

	if pr.Page != 3 {
		t.Errorf("expected Page=3, got %d", pr.Page)
	}
	if pr.PageSize != 50 {
		t.Errorf("expected PageSize=50, got %d", pr.PageSize)
	}
	if pr.Sort != "status:asc" {
		t.Errorf("expected Sort=status:asc, got %s", pr.Sort)
	}
	if pr.Filter["status"] != "active" {
		t.Errorf("expected Filter[status]=active, got %s", pr.Filter["status"])
	}
	if pr.Filter["merchant_name__like"] != "coffee" {
		t.Errorf("expected Filter[merchant_name__like]=coffee, got %s", pr.Filter["merchant_name__like"])
	}
}

func TestParsePageRequest_Clamping(t *testing.T) {
	tests := []struct {
		name         string
		params       url.Values
		wantPage     int
		wantPageSize int
	}{
		{"page below minimum", url.Values{"page": {"0"}}, 1, 20},
		{"negative page", url.Values{"page": {"-5"}}, 1, 20},
		{"page_size zero", url.Values{"page_size": {"0"}}, 1, 20},
		{"negative page_size", url.Values{"page_size": {"-10"}}, 1, 20},
		{"page_size above maximum", url.Values{"page_size": {"500"}}, 1, 100},
		{"non-numeric page_size", url.Values{"page_size": {"abc"}}, 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := ParsePageRequest(newTestContext(tt.params))
			if pr.Page != tt.wantPage {
				t.Errorf("Page: want %d, got %d", tt.wantPage, pr.Page)
			}
			if pr.PageSize != tt.wantPageSize {
				t.Errorf("PageSize: want %d, got %d", tt.wantPageSize, pr.PageSize)
			}
		})
	}
}

func TestParsePageRequest_EmptyFilterValuesIgnored(t *testing.T) {
	c := newTestContext(url.Values{
		"status": {""},
		"brand":  {"visa"},
	})
	pr := ParsePageRequest(c)

	if _, ok := pr.Filter["status"]; ok {
		t.Error("expected empty filter value to be excluded")
	}
	if pr.Filter["brand"] != "visa" {
		t.Errorf("expected Filter[brand]=visa, got %s", pr.Filter["brand"])
	}
}

func TestNormalizePageRequest(t *testing.T) {
	t.Run("defaults applied to zero values", func(t *testing.T) {
		req := domain.PageRequest{}
		if err := NormalizePageRequest(&req); err != nil {
			t.Fatalf("NormalizePageRequest: %v", err)
		}
		if req.Page != 1 || req.PageSize != 20 || req.Sort != "id:desc" {
			t.Errorf("got %+v; want Page=1 PageSize=20 Sort=id:desc", req)
		}
	})

	t.Run("page size clamped to maximum", func(t *testing.T) {
		req := domain.PageRequest{PageSize: 1000}
		if err := NormalizePageRequest(&req); err != nil {
			t.Fatalf("NormalizePageRequest: %v", err)
		}
		if req.PageSize != MaxPageSize {
			t.Errorf("PageSize=%d; want %d", req.PageSize, MaxPageSize)
		}
	})

	t.Run("negative page size rejected", func(t *testing.T) {
		req := domain.PageRequest{PageSize: -1}
		err := NormalizePageRequest(&req)
		if !domain.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("explicit values preserved", func(t *testing.T) {
		req := domain.PageRequest{Page: 4, PageSize: 25, Sort: "amount:asc"}
		if err := NormalizePageRequest(&req); err != nil {
			t.Fatalf("NormalizePageRequest: %v", err)
		}
		if req.Page != 4 || req.PageSize != 25 || req.Sort != "amount:asc" {
			t.Errorf("got %+v; want values unchanged", req)
		}
	})
}

func TestValidateSort(t *testing.T) {
	allowed := []string{"id", "amount", "status"}

	tests := []struct {
		name    string
		sort    string
		wantErr bool
	}{
		{"allowed field asc", "amount:asc", false},
		{"allowed field desc", "id:desc", false},
		{"unknown field", "balance:asc", true},
		{"missing direction", "amount", true},
		{"bad direction", "amount:up", true},
		{"injection attempt", "amount;DROP TABLE cards--:asc", true},
		{"empty field", ":asc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSort(tt.sort, allowed)
			if tt.wantErr && !domain.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateFilter(t *testing.T) {
	allowed := []string{"status", "merchant_name"}

	tests := []struct {
		name    string
		filter  map[string]string
		wantErr bool
	}{
		{"allowed exact key", map[string]string{"status": "posted"}, false},
		{"allowed like key", map[string]string{"merchant_name__like": "coffee"}, false},
		{"empty filter", map[string]string{}, false},
		{"nil filter", nil, false},
		{"unknown key", map[string]string{"amount": "100"}, true},
		{"unknown like key", map[string]string{"amount__like": "1"}, true},
		{"injection key", map[string]string{"status OR 1=1": "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilter(tt.filter, allowed)
			if tt.wantErr && !domain.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name    string
		sort    string
		allowed []string
		applied bool
	}{
		{"valid field asc", "status:asc", []string{"status", "amount"}, true},
		{"valid field desc", "id:desc", []string{"id", "status"}, true},
		{"field not in allowed list", "secret:asc", []string{"status"}, false},
		{"malformed no colon", "status", []string{"status"}, false},
		{"empty direction", "status:", []string{"status"}, false},
		{"invalid direction", "status:up", []string{"status"}, false},
		{"sql injection in field", "status;DROP TABLE cards--:asc", []string{"status"}, false},
		{"empty field", ":asc", []string{"status"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.PageRequest{Sort: tt.sort}
			db := newTestDB(t)
			result := Sort(req, tt.allowed)(db)
			_, hasOrder := result.Statement.Clauses["ORDER BY"]
			if hasOrder != tt.applied {
				t.Errorf("Order clause applied=%v, want %v", hasOrder, tt.applied)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		filter  map[string]string
		allowed []string
		applied bool
	}{
		{"valid exact match", map[string]string{"status": "active"}, []string{"status"}, true},
		{"valid like match", map[string]string{"merchant_name__like": "coffee"}, []string{"merchant_name"}, true},
		{"field not in allowed", map[string]string{"secret": "x"}, []string{"status"}, false},
		{"like field not in allowed", map[string]string{"secret__like": "x"}, []string{"status"}, false},
		{"sql injection in key", map[string]string{"status;DROP TABLE--": "x"}, []string{"status"}, false},
		{"empty filter map", map[string]string{}, []string{"status"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.PageRequest{Filter: tt.filter}
			db := newTestDB(t)
			result := Filter(req, tt.allowed)(db)
			_, hasWhere := result.Statement.Clauses["WHERE"]
			if hasWhere != tt.applied {
				t.Errorf("Where clause applied=%v, want %v", hasWhere, tt.applied)
			}
		})
	}
}

func TestFilter_MixedValidAndInvalid(t *testing.T) {
	req := domain.PageRequest{
		Filter: map[string]string{
			"status": "active",
			"secret": "x",
		},
	}
	db := newTestDB(t)
	result := Filter(req, []string{"status"})(db)
	if _, hasWhere := result.Statement.Clauses["WHERE"]; !hasWhere {
		t.Error("expected Where clause for the valid filter field")
	}
}

func TestPaginate(t *testing.T) {
	req := domain.PageRequest{Page: 3, PageSize: 10}
	db := newTestDB(t)
	result := Paginate(req)(db)
	if _, hasLimit := result.Statement.Clauses["LIMIT"]; !hasLimit {
		t.Error("expected LIMIT clause to be applied")
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name      string
		items     []string
		total     int64
		page      int
		pageSize  int
		wantPages int
		wantItems int
	}{
		{"exact division", []string{"a", "b"}, 10, 1, 5, 2, 2},
		{"with remainder", []string{"a"}, 25, 3, 10, 3, 1},
		{"zero total", nil, 0, 1, 20, 0, 0},
		{"single page", []string{"a", "b", "c"}, 3, 1, 20, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.PageRequest{Page: tt.page, PageSize: tt.pageSize}
			result := NewPageResult(tt.items, tt.total, req)

			if result.TotalPages != tt.wantPages {
				t.Errorf("TotalPages: want %d, got %d", tt.wantPages, result.TotalPages)
			}
			if len(result.Items) != tt.wantItems {
				t.Errorf("Items count: want %d, got %d", tt.wantItems, len(result.Items))
			}
			if result.Total != tt.total {
				t.Errorf("Total: want %d, got %d", tt.total, result.Total)
			}
		})
	}
}

func TestNewPageResult_NilItemsBecomesEmptySlice(t *testing.T) {
	req := domain.PageRequest{Page: 1, PageSize: 10}
	result := NewPageResult[string](nil, 0, req)

	if result.Items == nil {
		t.Error("expected non-nil Items slice")
	}
	if len(result.Items) != 0 {
		t.Errorf("expected empty Items, got %d items", len(result.Items))
	}
}

func TestValidFieldName(t *testing.T) {
	valid := []string{"id", "status", "created_at", "merchant_name", "_private"}
	invalid := []string{"", "1field", "name;DROP", "field name", "a.b", "a-b"}

	for _, f := range valid {
		if !validFieldName.MatchString(f) {
			t.Errorf("expected %q to be valid", f)
		}
	}
	for _, f := range invalid {
		if validFieldName.MatchString(f) {
			t.Errorf("expected %q to be invalid", f)
		}
	}
}
