package depthchart

import "sort"

// TeamChart maps normalized position codes to their buckets for one team.
type TeamChart map[string]Bucket

// Bucket returns a copy of the bucket for position (empty when absent).
func (c TeamChart) Bucket(position string) Bucket {
	b, ok := c[position]
	if !ok {
		return Bucket{}
	}
	return b.clone()
}

// Positions lists positions holding at least one entry, sorted by code.
func (c TeamChart) Positions() []string {
	out := make([]string, 0, len(c))
	for pos, b := range c {
		if len(b) == 0 {
			continue
		}
		out = append(out, pos)
	}
	sort.Strings(out)
	return out
}

// Normalize repairs every bucket and drops empty ones.
func (c TeamChart) Normalize() TeamChart {
	out := make(TeamChart, len(c))
	for pos, b := range c {
		nb := b.Normalize()
		if len(nb) == 0 {
			continue
		}
		out[pos] = nb
	}
	return out
}

// With returns a copy of the chart with position replaced by b. An empty b
// removes the position.
func (c TeamChart) With(position string, b Bucket) TeamChart {
	out := make(TeamChart, len(c)+1)
	for pos, existing := range c {
		out[pos] = existing
	}
	if len(b) == 0 {
		delete(out, position)
		return out
	}
	out[position] = b
	return out
}
