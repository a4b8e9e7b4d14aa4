package bytes_int

// MultiMap maps byte string keys to int32 values. A key may carry more
// than one value.
type MultiMap interface {
	Keys() (KeyIterator, error)
	Values() (ValueIterator, error)
	Iterate() (Iterator, error)
	Find(key []byte) (Iterator, error)
	Has(key []byte) (bool, error)
	Count(key []byte) (int, error)
	Add(key []byte, value int32) error
	Remove(key []byte, where func(int32) bool) error
	Size() int
	Close() error
	Delete() error
}

type Iterator func() ([]byte, int32, error, Iterator)
type KeyIterator func() ([]byte, error, KeyIterator)
type ValueIterator func() (int32, error, ValueIterator)

func Do(run func() (Iterator, error), do func(key []byte, value int32) error) error {
	kvi, err := run()
	if err != nil {
		return err
	}
	var key []byte
	var value int32
	for key, value, err, kvi = kvi(); kvi != nil; key, value, err, kvi = kvi() {
		e := do(key, value)
		if e != nil {
			return e
		}
	}
	return err
}

func DoKey(run func() (KeyIterator, error), do func([]byte) error) error {
	it, err := run()
	if err != nil {
		return err
	}
	var item []byte
	for item, err, it = it(); it != nil; item, err, it = it() {
		e := do(item)
		if e != nil {
			return e
		}
	}
	return err
}

func DoValue(run func() (ValueIterator, error), do func(int32) error) error {
	it, err := run()
	if err != nil {
		return err
	}
	var item int32
	for item, err, it = it(); it != nil; item, err, it = it() {
		e := do(item)
		if e != nil {
			return e
		}
	}
	return err
}
