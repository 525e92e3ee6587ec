package engine

import "time"

// Stats provides statistics about frame execution.
type Stats struct {
	Frames   int64
	Restarts int64
	Logic    PhaseStats
	Draw     PhaseStats
}

// PhaseStats provides execution statistics for one phase of a frame.
type PhaseStats struct {
	Count         int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type phaseStatsInternal struct {
	count         int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

func (p *phaseStatsInternal) record(d time.Duration) {
	if p.count == 0 || d < p.minDuration {
		p.minDuration = d
	}
	if d > p.maxDuration {
		p.maxDuration = d
	}
	p.count++
	p.lastDuration = d
	p.totalDuration += d
}

func (p *phaseStatsInternal) snapshot() PhaseStats {
	avg := time.Duration(0)
	if p.count > 0 {
		avg = p.totalDuration / time.Duration(p.count)
	}
	return PhaseStats{
		Count:         p.count,
		MinDuration:   p.minDuration,
		MaxDuration:   p.maxDuration,
		AvgDuration:   avg,
		LastDuration:  p.lastDuration,
		TotalDuration: p.totalDuration,
	}
}
