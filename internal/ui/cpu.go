package ui

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// CPUSampler reports host CPU load at most once per interval. Percent with a
// zero interval compares against the previous call, so sampling never blocks
// the frame.
type CPUSampler struct {
	interval time.Duration
	last     time.Time
	value    float64
	percent  func() (float64, error)
	now      func() time.Time
}

// NewCPUSampler returns a sampler refreshing every interval.
func NewCPUSampler(interval time.Duration) *CPUSampler {
	return &CPUSampler{
		interval: interval,
		value:    -1,
		percent:  hostPercent,
		now:      time.Now,
	}
}

func hostPercent() (float64, error) {
	values, err := cpu.Percent(0, false)
	if err != nil || len(values) == 0 {
		return -1, err
	}
	return values[0], nil
}

// Percent returns the latest load, or -1 when none could be read.
func (c *CPUSampler) Percent() float64 {
	now := c.now()
	if !c.last.IsZero() && now.Sub(c.last) < c.interval {
		return c.value
	}
	c.last = now
	v, err := c.percent()
	if err != nil {
		c.value = -1
		return c.value
	}
	c.value = v
	return c.value
}
