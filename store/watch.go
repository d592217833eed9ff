package store

import (
	"context"
	"log"
)

// watch turns a snapshot query into a live view: it emits the current query
// result immediately, then re-runs the query and emits again every time the
// watched table changes. The returned channel is closed when ctx is
// cancelled. Each emission is a complete, consistent snapshot.
func watch[T any](ctx context.Context, n *Notifier, table Table, query func() ([]T, error)) <-chan []T {
	out := make(chan []T, 1)
	signal, cancel := n.Subscribe(table)

	go func() {
		defer close(out)
		defer cancel()

		for {
			rows, err := query()
			if err != nil {
				log.Printf("live view query failed for table %s: %v", table, err)
			} else {
				select {
				case out <- rows:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-signal:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
