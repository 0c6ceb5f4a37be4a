package controllers

import (
	"context"
	"sort"
	"sync"

	"go-stall-management/models"
)

// fakeOrderStore keeps orders in memory but stores the item list in its
// serialized form, mirroring the TEXT column contract of the real store.
// All methods hold the mutex end to end, so read-modify-write operations are
// serialized per store exactly like the row lock in database.OrderStore.
type fakeOrderStore struct {
	mu     sync.Mutex
	nextID int
	orders map[int]*fakeOrderRow

	InsertFunc func(ctx context.Context, order models.Order) (int, error)
}

type fakeOrderRow struct {
	order    models.Order
	itemsRaw string
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[int]*fakeOrderRow)}
}

func (f *fakeOrderStore) Insert(ctx context.Context, order models.Order) (int, error) {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, order)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	itemsRaw, err := models.EncodeItems(order.Items)
	if err != nil {
		return 0, err
	}
	f.nextID++
	order.ID = f.nextID
	order.Items = nil
	f.orders[order.ID] = &fakeOrderRow{order: order, itemsRaw: itemsRaw}
	return order.ID, nil
}

func (f *fakeOrderStore) List(ctx context.Context) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	orders := []models.Order{}
	for _, row := range f.orders {
		o := row.order
		items, err := models.DecodeItems(row.itemsRaw)
		if err != nil {
			return nil, err
		}
		o.Items = items
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].Timestamp != orders[j].Timestamp {
			return orders[i].Timestamp < orders[j].Timestamp
		}
		return orders[i].ID < orders[j].ID
	})
	return orders, nil
}

func (f *fakeOrderStore) ToggleProcessed(ctx context.Context, id int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.orders[id]
	if !ok {
		return false, models.ErrOrderNotFound
	}
	row.order.Processed = !row.order.Processed
	return row.order.Processed, nil
}

func (f *fakeOrderStore) ServeItem(ctx context.Context, id, index int, admin string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.orders[id]
	if !ok {
		return false, models.ErrOrderNotFound
	}
	items, err := models.DecodeItems(row.itemsRaw)
	if err != nil {
		return false, err
	}
	if err := models.ServeItem(items, index, admin); err != nil {
		return false, err
	}
	encoded, err := models.EncodeItems(items)
	if err != nil {
		return false, err
	}
	row.itemsRaw = encoded
	return row.order.Processed, nil
}

func (f *fakeOrderStore) Complete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.orders[id]
	if !ok {
		return models.ErrOrderNotFound
	}
	items, err := models.DecodeItems(row.itemsRaw)
	if err != nil {
		return err
	}
	models.CompleteItems(items)
	encoded, err := models.EncodeItems(items)
	if err != nil {
		return err
	}
	row.itemsRaw = encoded
	row.order.Processed = true
	return nil
}

// seed inserts an order directly, bypassing the handler, and returns its id.
func (f *fakeOrderStore) seed(order models.Order) int {
	id, _ := f.Insert(context.Background(), order)
	return id
}

// corrupt overwrites the stored item blob with an unparseable payload.
func (f *fakeOrderStore) corrupt(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[id].itemsRaw = "{not json"
}

type fakeWaitingStore struct {
	mu      sync.Mutex
	nextID  int
	entries map[int]models.Waiting

	InsertFunc func(ctx context.Context, entry models.Waiting) (models.Waiting, error)
}

func newFakeWaitingStore() *fakeWaitingStore {
	return &fakeWaitingStore{entries: make(map[int]models.Waiting)}
}

func (f *fakeWaitingStore) Insert(ctx context.Context, entry models.Waiting) (models.Waiting, error) {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, entry)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	entry.ID = f.nextID
	f.entries[entry.ID] = entry
	return entry, nil
}

func (f *fakeWaitingStore) List(ctx context.Context) ([]models.Waiting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := []models.Waiting{}
	for _, e := range f.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Timestamp != entries[j].Timestamp {
			return entries[i].Timestamp < entries[j].Timestamp
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

func (f *fakeWaitingStore) Get(ctx context.Context, id int) (models.Waiting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	if !ok {
		return models.Waiting{}, models.ErrEntryNotFound
	}
	return e, nil
}

func (f *fakeWaitingStore) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[id]; !ok {
		return models.ErrEntryNotFound
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeWaitingStore) seed(entry models.Waiting) models.Waiting {
	created, _ := f.Insert(context.Background(), entry)
	return created
}
