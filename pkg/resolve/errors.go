package resolve

import "fmt"

// NotFoundError reports an exhausted template search. Searched holds every
// candidate path that was probed, in probe order.
type NotFoundError struct {
	Reference string
	Searched  []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resolve: template %q not found", e.Reference)
}
