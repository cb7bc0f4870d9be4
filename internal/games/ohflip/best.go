package ohflip

import "github.com/vovakirdan/ohflip/internal/core"

// Keys under which the bests are persisted.
const (
	KeyMaxHeightFt   = "ohflip.maxHeightFt"
	KeyMaxTotalFlips = "ohflip.maxTotalFlips"
)

// BestScores keeps best values over a BestStore. Values are cached after
// the first read so the store is only touched when a best improves.
type BestScores struct {
	store  core.BestStore
	values map[string]int
	loaded map[string]bool
}

// NewBestScores wraps store. A nil store keeps bests in memory.
func NewBestScores(store core.BestStore) *BestScores {
	if store == nil {
		store = core.NewMemoryBestStore()
	}
	return &BestScores{
		store:  store,
		values: make(map[string]int),
		loaded: make(map[string]bool),
	}
}

// Best returns the cached best for key and whether one exists.
func (b *BestScores) Best(key string) (int, bool, error) {
	if err := b.load(key); err != nil {
		return 0, false, err
	}
	v, ok := b.values[key]
	return v, ok, nil
}

// Record offers a new value for key and returns the resulting best.
// An unset best is replaced by any value.
func (b *BestScores) Record(key string, v int) (int, error) {
	loadErr := b.load(key)

	cur, ok := b.values[key]
	if ok && v <= cur {
		return cur, loadErr
	}

	b.values[key] = v
	if err := b.store.SetBest(key, v); err != nil {
		return v, err
	}
	return v, loadErr
}

func (b *BestScores) load(key string) error {
	if b.loaded[key] {
		return nil
	}
	b.loaded[key] = true

	v, ok, err := b.store.Best(key)
	if err != nil {
		return err
	}
	if ok {
		b.values[key] = v
	}
	return nil
}
