package repository

// Option applies a configuration option to the PoolStore.
type Option func(*PoolStore)

// WithShardCount sets the number of shards the pool is split across.
func WithShardCount(n int) Option {
	return func(s *PoolStore) {
		if n > 0 {
			s.shardCount = n
		}
	}
}
