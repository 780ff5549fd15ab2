package sim

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrap moves v by at most one period toward [0, size). A step moves the car
// far less than a period, but after the viewport shrinks the car can sit
// several periods out and takes one period per step to come back.
func wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	if v >= size {
		return v - size
	}
	if v < 0 {
		return v + size
	}
	return v
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
