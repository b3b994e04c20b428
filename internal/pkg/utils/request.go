package utils

import (
	"net"
	"net/http"
	"strconv"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get(constvars.QueryParamPage)
	pageSizeStr := r.URL.Query().Get(constvars.QueryParamPageSize)

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = constvars.DefaultPageSize
	}
	if pageSize > constvars.MaxPageSize {
		pageSize = constvars.MaxPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// DecodeAndValidate parses a JSON body into dst and runs struct validation on it.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

// ClientIP returns the host part of RemoteAddr. chi's RealIP middleware runs
// first, so proxies are already accounted for.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
