package mission

import (
	"sync"

	"github.com/starshatterwars/missiongen/internal/scatter"
	"github.com/starshatterwars/missiongen/pkg/core"
)

const (
	firstElementID = 1000
	firstMissionID = 1
)

// GenerationContext holds the state shared by every generation run in the
// process: the id counters, the random source and the mission being built.
// Runs are serialized through Do.
type GenerationContext struct {
	run sync.Mutex

	mu            sync.RWMutex
	nextElementID int
	nextMissionID int
	scatter       *scatter.Scatter
	current       *Mission
}

// NewGenerationContext creates a context drawing randomness from src.
func NewGenerationContext(src scatter.Source) *GenerationContext {
	return &GenerationContext{
		nextElementID: firstElementID,
		nextMissionID: firstMissionID,
		scatter:       scatter.New(src),
	}
}

// Do runs fn while holding the generation lock.
func (c *GenerationContext) Do(fn func() error) error {
	c.run.Lock()
	defer c.run.Unlock()
	return fn()
}

// Scatter returns the placement primitives bound to the context's source.
func (c *GenerationContext) Scatter() *scatter.Scatter {
	return c.scatter
}

// NextElementID returns a process-unique element id.
func (c *GenerationContext) NextElementID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextElementID
	c.nextElementID++
	return id
}

// NextMissionID returns a process-unique mission id.
func (c *GenerationContext) NextMissionID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextMissionID
	c.nextMissionID++
	return id
}

// SetCurrent records the mission under construction. nil clears it.
func (c *GenerationContext) SetCurrent(m *Mission) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = m
}

// Current returns the id and type of the mission under construction.
func (c *GenerationContext) Current() (id int, t core.MissionType, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return 0, 0, false
	}
	return c.current.ID, c.current.Type, true
}
