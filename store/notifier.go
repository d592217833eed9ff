// Package store contains the per-entity data accessors and the table change
// notifier that drives the live views.
package store

import "sync"

// Table identifies one logical table for change notification purposes.
type Table string

// Tables that emit change notifications.
const (
	TableCategories   Table = "categories"
	TableProducts     Table = "products"
	TableCustomers    Table = "customers"
	TableOrders       Table = "orders"
	TableOrderDetails Table = "order_details"
)

// Notifier provides publish-subscribe change signals per logical table.
// Every write to a table wakes all of that table's subscribers; subscribers
// then re-query and see the latest state. Signal channels are buffered with
// capacity one, so rapid consecutive writes coalesce into a single wakeup —
// a subscriber never misses the final state, it may only skip intermediate
// ones.
type Notifier struct {
	mu   sync.RWMutex
	subs map[Table]map[int]chan struct{}
	next int
}

// NewNotifier creates a Notifier with no subscribers.
func NewNotifier() *Notifier {
	return &Notifier{
		subs: make(map[Table]map[int]chan struct{}),
	}
}

// Subscribe registers interest in writes to table. The returned channel
// receives a signal after every write; the cancel function removes the
// subscription and must be called when the subscriber is done.
func (n *Notifier) Subscribe(table Table) (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs[table] == nil {
		n.subs[table] = make(map[int]chan struct{})
	}
	id := n.next
	n.next++

	ch := make(chan struct{}, 1)
	n.subs[table][id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs[table], id)
	}
	return ch, cancel
}

// Notify signals every subscriber of the given tables. The send is
// non-blocking: a subscriber that already has a pending signal is left as-is.
func (n *Notifier) Notify(tables ...Table) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, table := range tables {
		for _, ch := range n.subs[table] {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
}

// SubscriberCount returns the number of active subscriptions for a table.
func (n *Notifier) SubscriberCount(table Table) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs[table])
}
