package schema

// Pagination carries skip/limit query parameters; values outside the
// declared bounds are rejected as 422 at the validation boundary.
type Pagination struct {
	Skip  int `validate:"gte=0"`
	Limit int `validate:"gte=1,lte=100"`
}

const (
	DefaultSkip  = 0
	DefaultLimit = 100
)
