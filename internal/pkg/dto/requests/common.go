package requests

// ListQuery carries the list-shaping params the dashboard sections use. They
// pass through to the backend unchanged.
type ListQuery struct {
	Limit  int
	Sort   string
	Status string
	Range  string
}
