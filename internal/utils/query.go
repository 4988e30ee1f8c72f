package utils

type Ordering string

const (
	OrderAsc  Ordering = "asc"
	OrderDesc Ordering = "desc"
)

type Query struct {
	// SortBy is always "id"; the column is never taken from a request.
	SortBy string
	Limit  int
	Offset int
	Order  Ordering
}

type QueryOption interface {
	Apply(*Query)
}

// NewQuery applies opts over the defaults: sort by id ascending, no limit.
func NewQuery(opts []QueryOption) Query {
	q := Query{
		SortBy: "id",
		Limit:  0,
		Offset: 0,
		Order:  OrderAsc,
	}

	for _, opt := range opts {
		opt.Apply(&q)
	}

	return q
}

func WithLimit(limit uint) QueryOption {
	return withLimit(limit)
}

type withLimit uint

func (w withLimit) Apply(q *Query) {
	q.Limit = int(w)
}

func WithOffset(offset uint) QueryOption {
	return withOffset(offset)
}

type withOffset uint

func (w withOffset) Apply(q *Query) {
	q.Offset = int(w)
}

func WithOrder(order Ordering) QueryOption {
	return withOrder(order)
}

type withOrder Ordering

func (w withOrder) Apply(q *Query) {
	q.Order = Ordering(w)
}
