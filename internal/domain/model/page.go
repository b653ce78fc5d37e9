package model

// PageQuery identifies one page of the order list. Search and Page change
// together: committing a new search resets Page to 1 in the same step.
type PageQuery struct {
	Page     int
	PageSize int
	Search   string
}

// PageResult is one page of orders plus its pagination metadata, supplied by
// the server. When TotalPages > 0, Page is within [1, TotalPages].
type PageResult struct {
	Items      []Order `json:"items"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalCount int     `json:"totalCount"`
	TotalPages int     `json:"totalPages"`
}

// Clone returns a deep copy so consumers never share mutable slices with the
// controller that owns the result.
func (r PageResult) Clone() PageResult {
	out := r
	out.Items = make([]Order, len(r.Items))
	copy(out.Items, r.Items)
	for i, o := range out.Items {
		if o.Notes != nil {
			notes := make([]string, len(o.Notes))
			copy(notes, o.Notes)
			out.Items[i].Notes = notes
		}
		if o.Items != nil {
			items := make([]OrderItem, len(o.Items))
			copy(items, o.Items)
			out.Items[i].Items = items
		}
	}
	return out
}
