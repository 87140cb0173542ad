package vertex

const f32 = 4

// Layout describes interleaved float32 vertex attributes. Components[i]
// is the number of floats of attribute location i.
type Layout struct {
	Components []int32
}

// Floats returns the number of floats of one vertex.
func (l Layout) Floats() int32 {
	var n int32
	for _, c := range l.Components {
		n += c
	}
	return n
}

// Stride returns the size of one vertex in bytes.
func (l Layout) Stride() int32 {
	return l.Floats() * f32
}

// Offset returns the byte offset of attribute i inside a vertex.
func (l Layout) Offset(i int) int {
	offset := 0
	for _, c := range l.Components[:i] {
		offset += int(c) * f32
	}
	return offset
}

// Count returns how many whole vertices are stored in data.
func (l Layout) Count(data []float32) int32 {
	floats := l.Floats()
	if floats == 0 {
		return 0
	}
	return int32(len(data)) / floats
}
