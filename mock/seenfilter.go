package mock

import "github.com/redlens/redlens"

var _ redlens.SeenFilter = (*SeenFilter)(nil)

// SeenFilter is a mock implementation of redlens.SeenFilter.
type SeenFilter struct {
	AddFn  func(key string)
	TestFn func(key string) bool
}

func (f *SeenFilter) Add(key string) {
	f.AddFn(key)
}

func (f *SeenFilter) Test(key string) bool {
	return f.TestFn(key)
}
