package models

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Sort orders accepted by the model listing endpoint.
const (
	SortRecent  = "recent"
	SortPopular = "popular"
	SortOldest  = "oldest"
	SortRandom  = "random"
)

// ModelListParams is the exhaustive filter configuration for the model
// listing. Unrecognized query keys are ignored; malformed values fall
// back to defaults instead of failing the request.
type ModelListParams struct {
	Page      int
	Limit     int
	Ethnicity string
	HairColor string
	EyeColor  string
	BodyType  string
	Search    string
	MinAge    *int
	MaxAge    *int
	Tags      []string
	SortBy    string
}

func ParseModelListParams(query url.Values) ModelListParams {
	params := ModelListParams{
		Page:      parseIntParam(query, "page", DefaultPage),
		Limit:     parseIntParam(query, "limit", DefaultLimit),
		Ethnicity: query.Get("ethnicity"),
		HairColor: query.Get("hairColor"),
		EyeColor:  query.Get("eyeColor"),
		BodyType:  query.Get("bodyType"),
		Search:    query.Get("search"),
		MinAge:    parseOptionalIntParam(query, "minAge"),
		MaxAge:    parseOptionalIntParam(query, "maxAge"),
		SortBy:    query.Get("sortBy"),
	}

	for _, tag := range query["tags"] {
		if tag != "" {
			params.Tags = append(params.Tags, tag)
		}
	}

	if params.Page < 1 {
		params.Page = DefaultPage
	}
	if params.Limit < 1 {
		params.Limit = DefaultLimit
	}
	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}

	switch params.SortBy {
	case SortRecent, SortPopular, SortOldest, SortRandom:
	default:
		params.SortBy = SortRecent
	}

	return params
}

func (p ModelListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type HistoryListParams struct {
	Page   int
	Limit  int
	Action string
}

func ParseHistoryListParams(query url.Values) HistoryListParams {
	params := HistoryListParams{
		Page:   parseIntParam(query, "page", DefaultPage),
		Limit:  parseIntParam(query, "limit", DefaultLimit),
		Action: query.Get("action"),
	}

	if params.Page < 1 {
		params.Page = DefaultPage
	}
	if params.Limit < 1 {
		params.Limit = DefaultLimit
	}
	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}

	return params
}

func (p HistoryListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type CommentListParams struct {
	Page  int
	Limit int
}

func ParseCommentListParams(query url.Values) CommentListParams {
	params := CommentListParams{
		Page:  parseIntParam(query, "page", DefaultPage),
		Limit: parseIntParam(query, "limit", DefaultLimit),
	}

	if params.Page < 1 {
		params.Page = DefaultPage
	}
	if params.Limit < 1 {
		params.Limit = DefaultLimit
	}
	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}

	return params
}

func (p CommentListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the metadata block returned alongside every list payload.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

func parseIntParam(query url.Values, key string, defaultVal int) int {
	raw := query.Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}

func parseOptionalIntParam(query url.Values, key string) *int {
	raw := query.Get(key)
	if raw == "" {
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}

	return &n
}
