package account

// Cache represents a key/value store to use as a read cache. Wait blocks
// until buffered writes have been applied, so that invalidations are visible
// before the next operation starts.
type Cache interface {
	Get(key interface{}) (interface{}, bool)
	Set(key, value interface{}, cost int64) bool
	Del(key interface{})
	Wait()
}
