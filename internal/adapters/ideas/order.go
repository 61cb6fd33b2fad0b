package ideas

import "github.com/randomtoy/ideawheel/internal/domain"

// checkOrder reports ErrInvalidOrder unless ids is a permutation of current.
func checkOrder(current, ids []string) error {
	if len(current) != len(ids) {
		return domain.ErrInvalidOrder
	}
	want := make(map[string]bool, len(current))
	for _, id := range current {
		want[id] = true
	}
	for _, id := range ids {
		if !want[id] {
			return domain.ErrInvalidOrder
		}
		delete(want, id)
	}
	return nil
}
