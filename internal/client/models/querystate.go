package models

import "net/url"

// StatusFilter restricts the visible list to a single status, or All.
type StatusFilter string

const (
	FilterAll         StatusFilter = "All"
	FilterApplied     StatusFilter = StatusFilter(StatusApplied)
	FilterInterviewed StatusFilter = StatusFilter(StatusInterviewed)
	FilterRejected    StatusFilter = StatusFilter(StatusRejected)
)

// SortOrder selects the ordering of the visible list by application date.
// The values are the wire form carried in the navigational address.
type SortOrder string

const (
	SortDateAsc  SortOrder = "date_asc"
	SortDateDesc SortOrder = "date_desc"
)

// Address query parameter names for the query state.
const (
	ParamSearch = "q"
	ParamStatus = "status"
	ParamSort   = "sort"
)

// QueryState is the tuple (search text, status filter, sort order) describing
// what subset and order of jobs the user currently wants to see. The zero
// value is not valid; use DefaultQueryState.
type QueryState struct {
	Search string       `json:"q"`
	Status StatusFilter `json:"status"`
	Sort   SortOrder    `json:"sort"`
}

// DefaultQueryState is the steady-state fallback: no search text, all
// statuses, newest first.
func DefaultQueryState() QueryState {
	return QueryState{Search: "", Status: FilterAll, Sort: SortDateDesc}
}

// QueryStateFromValues derives a QueryState from address query parameters.
// Absent or unrecognized values fall back to the defaults, so the result is
// always well formed.
func QueryStateFromValues(v url.Values) QueryState {
	qs := DefaultQueryState()
	qs.Search = v.Get(ParamSearch)
	switch s := StatusFilter(v.Get(ParamStatus)); s {
	case FilterAll, FilterApplied, FilterInterviewed, FilterRejected:
		qs.Status = s
	}
	switch o := SortOrder(v.Get(ParamSort)); o {
	case SortDateAsc, SortDateDesc:
		qs.Sort = o
	}
	return qs
}

// Values encodes the full query state as address query parameters.
func (qs QueryState) Values() url.Values {
	v := url.Values{}
	v.Set(ParamSearch, qs.Search)
	v.Set(ParamStatus, string(qs.Status))
	v.Set(ParamSort, string(qs.Sort))
	return v
}

// Normalize replaces empty or unrecognized filter/sort values with defaults.
// Used after decoding a persisted snapshot, where the stored form may predate
// the current enumerations.
func (qs QueryState) Normalize() QueryState {
	out := qs
	switch qs.Status {
	case FilterAll, FilterApplied, FilterInterviewed, FilterRejected:
	default:
		out.Status = FilterAll
	}
	switch qs.Sort {
	case SortDateAsc, SortDateDesc:
	default:
		out.Sort = SortDateDesc
	}
	return out
}

// QueryPatch is a partial update of the query state. Nil fields are left
// unchanged by Update.
type QueryPatch struct {
	Search *string
	Status *StatusFilter
	Sort   *SortOrder
}

// Apply merges the patch into qs and returns the result.
func (p QueryPatch) Apply(qs QueryState) QueryState {
	if p.Search != nil {
		qs.Search = *p.Search
	}
	if p.Status != nil {
		qs.Status = *p.Status
	}
	if p.Sort != nil {
		qs.Sort = *p.Sort
	}
	return qs
}
