package geometry

// Simplify produces a reduced-resolution copy of the ring by retaining every
// stride-th coordinate in original order. A stride of 1 returns the input
// ring unchanged, vertex for vertex. If sampling breaks closure the first
// retained coordinate is appended again.
//
// Returns ErrBadStride for stride < 1 and ErrShortRing when fewer than
// 4 coordinates remain after sampling and re-closing.
func Simplify(ring Ring, stride int) (Ring, error) {
	if stride < 1 {
		return nil, ErrBadStride
	}
	if stride == 1 {
		return ring, nil
	}

	sampled := make(Ring, 0, len(ring)/stride+2)
	for i := 0; i < len(ring); i += stride {
		sampled = append(sampled, ring[i])
	}
	if len(sampled) > 0 && sampled[0] != sampled[len(sampled)-1] {
		sampled = append(sampled, sampled[0])
	}
	if len(sampled) < 4 {
		return nil, ErrShortRing
	}
	return sampled, nil
}
