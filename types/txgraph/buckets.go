package txgraph

// Buckets is an insertion ordered multimap. Keys iterate in the order
// they were first added and every bucket keeps its append order, which
// is what makes mining output reproducible.
type Buckets[K comparable, V any] struct {
	keys    []K
	buckets map[K][]V
}

func NewBuckets[K comparable, V any]() *Buckets[K, V] {
	return &Buckets[K, V]{
		buckets: make(map[K][]V),
	}
}

func (b *Buckets[K, V]) Add(key K, value V) {
	bucket, has := b.buckets[key]
	if !has {
		b.keys = append(b.keys, key)
	}
	b.buckets[key] = append(bucket, value)
}

func (b *Buckets[K, V]) Has(key K) bool {
	_, has := b.buckets[key]
	return has
}

func (b *Buckets[K, V]) Get(key K) []V {
	return b.buckets[key]
}

func (b *Buckets[K, V]) Count(key K) int {
	return len(b.buckets[key])
}

func (b *Buckets[K, V]) Keys() []K {
	return b.keys
}

// Len is the number of distinct keys.
func (b *Buckets[K, V]) Len() int {
	return len(b.keys)
}

// Size is the number of values across all buckets.
func (b *Buckets[K, V]) Size() int {
	size := 0
	for _, bucket := range b.buckets {
		size += len(bucket)
	}
	return size
}

func (b *Buckets[K, V]) Sizes() []int {
	sizes := make([]int, 0, len(b.keys))
	for _, key := range b.keys {
		sizes = append(sizes, len(b.buckets[key]))
	}
	return sizes
}

// Threshold returns the buckets holding at least support values.
func (b *Buckets[K, V]) Threshold(support int) *Buckets[K, V] {
	kept := NewBuckets[K, V]()
	for _, key := range b.keys {
		bucket := b.buckets[key]
		if len(bucket) >= support {
			kept.keys = append(kept.keys, key)
			kept.buckets[key] = bucket
		}
	}
	return kept
}

// Extend appends every bucket of o after the buckets already present.
func (b *Buckets[K, V]) Extend(o *Buckets[K, V]) {
	for _, key := range o.keys {
		for _, value := range o.buckets[key] {
			b.Add(key, value)
		}
	}
}

// Counts is the counter-only variant of Buckets.
type Counts[K comparable] struct {
	keys   []K
	counts map[K]int
}

func NewCounts[K comparable]() *Counts[K] {
	return &Counts[K]{
		counts: make(map[K]int),
	}
}

func (c *Counts[K]) Inc(key K) {
	c.Add(key, 1)
}

func (c *Counts[K]) Add(key K, amt int) {
	count, has := c.counts[key]
	if !has {
		c.keys = append(c.keys, key)
	}
	c.counts[key] = count + amt
}

func (c *Counts[K]) Has(key K) bool {
	_, has := c.counts[key]
	return has
}

func (c *Counts[K]) Get(key K) int {
	return c.counts[key]
}

func (c *Counts[K]) Keys() []K {
	return c.keys
}

func (c *Counts[K]) Len() int {
	return len(c.keys)
}

func (c *Counts[K]) Threshold(support int) *Counts[K] {
	kept := NewCounts[K]()
	for _, key := range c.keys {
		if count := c.counts[key]; count >= support {
			kept.keys = append(kept.keys, key)
			kept.counts[key] = count
		}
	}
	return kept
}

func (c *Counts[K]) Extend(o *Counts[K]) {
	for _, key := range o.keys {
		c.Add(key, o.counts[key])
	}
}
