package graph

import (
	"sort"

	"git.canoozie.net/riddling/propgraph/pkg/model"
)

// idIndex maps identifiers to items. model.Value is not comparable, so
// entries are bucketed by Value.Hash and resolved with Value.Equal.
type idIndex[T any] struct {
	buckets map[uint64][]indexEntry[T]
	size    int
	nextSeq uint64
}

type indexEntry[T any] struct {
	id   model.Value
	item T
	seq  uint64 // Insertion order, used to make snapshots stable
}

func newIDIndex[T any]() *idIndex[T] {
	return &idIndex[T]{
		buckets: make(map[uint64][]indexEntry[T]),
	}
}

func (ix *idIndex[T]) get(id model.Value) (T, bool) {
	for _, entry := range ix.buckets[id.Hash()] {
		if entry.id.Equal(id) {
			return entry.item, true
		}
	}
	var zero T
	return zero, false
}

func (ix *idIndex[T]) contains(id model.Value) bool {
	_, ok := ix.get(id)
	return ok
}

// put inserts item under id. It returns false if id is already present.
func (ix *idIndex[T]) put(id model.Value, item T) bool {
	h := id.Hash()
	for _, entry := range ix.buckets[h] {
		if entry.id.Equal(id) {
			return false
		}
	}
	ix.buckets[h] = append(ix.buckets[h], indexEntry[T]{id: id, item: item, seq: ix.nextSeq})
	ix.nextSeq++
	ix.size++
	return true
}

func (ix *idIndex[T]) remove(id model.Value) (T, bool) {
	h := id.Hash()
	bucket := ix.buckets[h]
	for i, entry := range bucket {
		if !entry.id.Equal(id) {
			continue
		}
		bucket = append(bucket[:i], bucket[i+1:]...)
		if len(bucket) == 0 {
			delete(ix.buckets, h)
		} else {
			ix.buckets[h] = bucket
		}
		ix.size--
		return entry.item, true
	}
	var zero T
	return zero, false
}

// entries returns all entries in insertion order
func (ix *idIndex[T]) entries() []indexEntry[T] {
	all := make([]indexEntry[T], 0, ix.size)
	for _, bucket := range ix.buckets {
		all = append(all, bucket...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seq < all[j].seq })
	return all
}

func (ix *idIndex[T]) items() []T {
	entries := ix.entries()
	items := make([]T, len(entries))
	for i, entry := range entries {
		items[i] = entry.item
	}
	return items
}
