package adapter

// elapsed is the time from then to now. Counters wrap, so this is modular.
func elapsed(now, then uint64) uint64 {
	return now - then
}

// gate rate-limits an operation to once per interval.
type gate struct {
	interval uint64
	last     uint64
	primed   bool
}

// due reports whether more than interval has passed since the last time it
// returned true. The first call is always due.
func (g *gate) due(now uint64) bool {
	if g.primed && elapsed(now, g.last) <= g.interval {
		return false
	}
	g.primed = true
	g.last = now
	return true
}
