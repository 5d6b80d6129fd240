package element

import "fmt"

var callsigns = map[int][]string{
	1: {"Falcon", "Hawk", "Raptor", "Osprey", "Kestrel", "Harrier", "Condor", "Eagle"},
	2: {"Jackal", "Cobra", "Scorpion", "Mamba", "Adder", "Krait", "Viper", "Asp"},
}

var defaultCallsigns = []string{"Raider", "Bandit", "Corsair", "Reaver"}

// Callsigns hands out package callsigns per allegiance. Names repeat with
// a numeric suffix once a list is exhausted.
type Callsigns struct {
	next map[int]int
}

// NewCallsigns creates an empty allocator.
func NewCallsigns() *Callsigns {
	return &Callsigns{next: make(map[int]int)}
}

// Next returns the next callsign for iff.
func (c *Callsigns) Next(iff int) string {
	list, ok := callsigns[iff]
	if !ok {
		list = defaultCallsigns
	}
	n := c.next[iff]
	c.next[iff] = n + 1

	name := list[n%len(list)]
	if round := n / len(list); round > 0 {
		return fmt.Sprintf("%s %d", name, round+1)
	}
	return name
}
