package invidious

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Accepted values of the enumerated search filters.
var (
	SortOptions     = []string{"relevance", "rating", "upload_date", "view_count"}
	DateOptions     = []string{"hour", "today", "week", "month", "year"}
	DurationOptions = []string{"short", "medium", "long"}
	TypeOptions     = []string{"video", "channel", "playlist", "all"}
	FeatureOptions  = []string{"hd", "subtitles", "creative_commons", "3d", "live", "purchased", "4k", "360", "location", "hdr", "vr180"}
)

// SearchParams are the query parameters of /api/v1/search.
type SearchParams struct {
	Query    string
	Page     mo.Option[int]
	SortBy   mo.Option[string]
	Date     mo.Option[string]
	Duration mo.Option[string]
	Type     mo.Option[string]
	Features []string
	Region   mo.Option[string]
}

// Validate rejects filter values the API does not understand.
func (p SearchParams) Validate() error {
	if strings.TrimSpace(p.Query) == "" {
		return fmt.Errorf("search query is empty")
	}
	if page, ok := p.Page.Get(); ok && page < 1 {
		return fmt.Errorf("page must be positive, got %d", page)
	}

	checks := []lo.Tuple3[string, mo.Option[string], []string]{
		{A: "sort", B: p.SortBy, C: SortOptions},
		{A: "date", B: p.Date, C: DateOptions},
		{A: "duration", B: p.Duration, C: DurationOptions},
		{A: "type", B: p.Type, C: TypeOptions},
	}
	for _, check := range checks {
		if value, ok := check.B.Get(); ok && !lo.Contains(check.C, value) {
			return fmt.Errorf("invalid %s %q, expected one of %s", check.A, value, strings.Join(check.C, ", "))
		}
	}

	if unknown := lo.Without(p.Features, FeatureOptions...); len(unknown) > 0 {
		return fmt.Errorf("invalid features %s", strings.Join(unknown, ", "))
	}

	return nil
}

// Encode renders the parameters as a URL query string.
func (p SearchParams) Encode() string {
	values := url.Values{}
	values.Set("q", p.Query)
	if page, ok := p.Page.Get(); ok {
		values.Set("page", strconv.Itoa(page))
	}
	setOption(values, "sort_by", p.SortBy)
	setOption(values, "date", p.Date)
	setOption(values, "duration", p.Duration)
	setOption(values, "type", p.Type)
	if len(p.Features) > 0 {
		values.Set("features", strings.Join(p.Features, ","))
	}
	setOption(values, "region", p.Region)
	return values.Encode()
}

// VideoParams are the query parameters of /api/v1/videos/{id}.
type VideoParams struct {
	Region mo.Option[string]
}

// Encode renders the parameters as a URL query string.
func (p VideoParams) Encode() string {
	values := url.Values{}
	setOption(values, "region", p.Region)
	return values.Encode()
}

func setOption(values url.Values, name string, option mo.Option[string]) {
	if value, ok := option.Get(); ok && value != "" {
		values.Set(name, value)
	}
}
