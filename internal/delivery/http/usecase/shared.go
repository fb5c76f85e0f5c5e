package usecase

import (
	"sync"

	"github.com/spf13/viper"
)

// learnerLocks serializes profile and assignment writes per learner so
// concurrent submissions for the same learner never interleave their
// read-modify-write cycles. Different learners proceed in parallel.
type learnerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLearnerLocks() *learnerLocks {
	return &learnerLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *learnerLocks) Lock(learnerID string) func() {
	l.mu.Lock()
	lock, ok := l.locks[learnerID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[learnerID] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

const (
	defaultSemanticThreshold  = 65.0
	defaultLexicalThreshold   = 30.0
	defaultCharNgramThreshold = 40.0
	defaultMaxPracticeItems   = 3
)

func floatSetting(v *viper.Viper, key string, def float64) float64 {
	if v == nil || !v.IsSet(key) {
		return def
	}
	return v.GetFloat64(key)
}

func intSetting(v *viper.Viper, key string, def int) int {
	if v == nil || !v.IsSet(key) {
		return def
	}
	return v.GetInt(key)
}
