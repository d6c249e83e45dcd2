package common

import "sync"

const pairLockShards = 64

// PairLocks serializes mutations scoped to one (startup, mentor) pair.
// Contention stays on the pair; there is no global lock over the queue or
// the message store.
type PairLocks struct {
	shards [pairLockShards]sync.Mutex
}

func NewPairLocks() *PairLocks {
	return &PairLocks{}
}

// Lock acquires the shard covering the pair and returns the unlock func.
func (p *PairLocks) Lock(startupID, mentorID uint64) func() {
	shard := &p.shards[(startupID*31+mentorID)%pairLockShards]
	shard.Lock()
	return shard.Unlock
}
