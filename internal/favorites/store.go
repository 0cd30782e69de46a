// Package favorites owns the locally persisted set of starred match ids and
// the reconciliation of that set with freshly fetched match lists.
package favorites

import "context"

// Store defines the contract for persisting favorite match ids.
// Save and Delete are idempotent: saving a present id and deleting an absent
// id are no-ops.
type Store interface {
	SavedIDs(ctx context.Context) (map[int]struct{}, error)
	Save(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}
