package bytes_int

import (
	"testing"
)

import (
	"github.com/stretchr/testify/assert"
)

func TestAddFindCount(t *testing.T) {
	x := assert.New(t)
	b, err := AnonBpTree()
	x.Nil(err)
	defer b.Delete()
	x.Nil(b.Add([]byte("chain-01"), 3))
	x.Nil(b.Add([]byte("chain-01"), 4))
	x.Nil(b.Add([]byte("triangle-02"), 10))
	x.Equal(3, b.Size())
	has, err := b.Has([]byte("chain-01"))
	x.Nil(err)
	x.True(has)
	has, err = b.Has([]byte("nope"))
	x.Nil(err)
	x.False(has)
	count, err := b.Count([]byte("chain-01"))
	x.Nil(err)
	x.Equal(2, count)
	var vals []int32
	err = Do(func() (Iterator, error) { return b.Find([]byte("chain-01")) }, func(k []byte, v int32) error {
		x.Equal("chain-01", string(k))
		vals = append(vals, v)
		return nil
	})
	x.Nil(err)
	x.ElementsMatch([]int32{3, 4}, vals)
}

func TestIterateOrdered(t *testing.T) {
	x := assert.New(t)
	b, err := AnonBpTree()
	x.Nil(err)
	defer b.Delete()
	for i, k := range []string{"c", "a", "b"} {
		x.Nil(b.Add([]byte(k), int32(i)))
	}
	var keys []string
	err = DoKey(b.Keys, func(k []byte) error {
		keys = append(keys, string(k))
		return nil
	})
	x.Nil(err)
	x.Equal([]string{"a", "b", "c"}, keys)
	var sum int32
	err = DoValue(b.Values, func(v int32) error {
		sum += v
		return nil
	})
	x.Nil(err)
	x.Equal(int32(3), sum)
}

func TestRemove(t *testing.T) {
	x := assert.New(t)
	b, err := AnonBpTree()
	x.Nil(err)
	defer b.Delete()
	x.Nil(b.Add([]byte("k"), 1))
	x.Nil(b.Add([]byte("k"), 2))
	x.Nil(b.Remove([]byte("k"), func(v int32) bool { return v == 1 }))
	count, err := b.Count([]byte("k"))
	x.Nil(err)
	x.Equal(1, count)
}
