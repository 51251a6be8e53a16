package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"streamhub/internal/domain"
	"streamhub/internal/schema"
	"streamhub/pkg/validation"
)

func decodeJSON(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return domain.BadRequest("Invalid request body")
	}
	return nil
}

func parsePathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.Validation(fmt.Sprintf("%s must be an integer", name))
	}

	return id, nil
}

func parsePagination(r *http.Request, validate *validation.Validator) (schema.Pagination, error) {
	page := schema.Pagination{
		Skip:  schema.DefaultSkip,
		Limit: schema.DefaultLimit,
	}

	if raw := r.URL.Query().Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			return page, domain.Validation("skip must be an integer")
		}
		page.Skip = skip
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return page, domain.Validation("limit must be an integer")
		}
		page.Limit = limit
	}

	if err := validate.Struct(&page); err != nil {
		return page, err
	}

	return page, nil
}

func parseOptionalInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.Validation(fmt.Sprintf("%s must be an integer", name))
	}

	return &value, nil
}

func parseOptionalBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.Validation(fmt.Sprintf("%s must be a boolean", name))
	}

	return &value, nil
}
