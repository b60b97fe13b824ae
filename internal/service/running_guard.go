package service

import "sync"

// ExportedRunningGuard is an exported alias so _test packages can test the guard.
type ExportedRunningGuard = runningTablesGuard

// ─────────────────────────────────────────────────────────────
// runningTablesGuard: one conversion per output table at a time
// ─────────────────────────────────────────────────────────────

// runningTablesGuard keys running work by output table directory.
type runningTablesGuard struct {
	mu      sync.Mutex
	running map[string]struct{}
}

// TryLock marks key as running. It returns false if key is already running.
func (g *runningTablesGuard) TryLock(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running == nil {
		g.running = make(map[string]struct{})
	}
	if _, ok := g.running[key]; ok {
		return false
	}
	g.running[key] = struct{}{}
	return true
}

// Unlock releases key.
func (g *runningTablesGuard) Unlock(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.running, key)
}
