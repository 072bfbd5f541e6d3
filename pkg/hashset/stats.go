package hashset

// Stats describes the current bucket layout.
type Stats struct {
	Size        int
	Capacity    int
	LoadFactor  float64
	UsedBuckets int
	// LongestChain is the length of the longest collision chain.
	LongestChain int
	// ChainLengths maps a chain length to the number of buckets having it.
	ChainLengths map[int]int
}

func (s *HashSet[T]) Stats() Stats {
	st := Stats{
		Size:         s.size,
		Capacity:     len(s.buckets),
		LoadFactor:   s.loadFactor,
		ChainLengths: make(map[int]int),
	}
	for _, head := range s.buckets {
		n := 0
		for e := head; e != nil; e = e.next {
			n++
		}
		st.ChainLengths[n]++
		if n > 0 {
			st.UsedBuckets++
		}
		st.LongestChain = max(st.LongestChain, n)
	}
	return st
}
