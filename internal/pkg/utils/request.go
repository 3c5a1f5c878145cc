package utils

import (
	"net/http"
	"net/url"
	"strconv"

	"doorspital-service/internal/pkg/dto/requests"
)

// BuildListQuery lifts the list-shaping query params off an inbound request so
// they can be replayed against the backend unchanged.
func BuildListQuery(r *http.Request) *requests.ListQuery {
	q := r.URL.Query()

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	return &requests.ListQuery{
		Limit:  limit,
		Sort:   q.Get("sort"),
		Status: q.Get("status"),
		Range:  q.Get("range"),
	}
}

// Encode renders the query back into the upstream's expected form, omitting
// anything unset.
func EncodeListQuery(query *requests.ListQuery) string {
	if query == nil {
		return ""
	}
	values := url.Values{}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Sort != "" {
		values.Set("sort", query.Sort)
	}
	if query.Status != "" {
		values.Set("status", query.Status)
	}
	if query.Range != "" {
		values.Set("range", query.Range)
	}
	if encoded := values.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}
