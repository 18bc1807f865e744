package ptree

// Advise picks the axis and cut for splitting the region [cMin, cMax] so that
// the cut lands exactly on the nearest edge of the query [qMin, qMax]. One of
// the two children then lies wholly inside or wholly outside the query.
//
// The left child takes coordinates <= cut on axis, the right child the rest.
// ok is false when the query is aligned with the region on every axis, which
// means the caller should have treated the region as covered.
func Advise(cMin, cMax, qMin, qMax []int, order int) (axis, cut int, ok bool) {
	kMin, kMax := -1, -1
	bestMin, bestMax := 0, 0
	for k := 0; k < order; k++ {
		// Query edges may lie far outside the region; compare before
		// subtracting so the distances cannot overflow.
		if qMin[k] > cMin[k] {
			if d := qMin[k] - cMin[k]; d > bestMin {
				bestMin, kMin = d, k
			}
		}
		if cMax[k] > qMax[k] {
			if d := cMax[k] - qMax[k]; d > bestMax {
				bestMax, kMax = d, k
			}
		}
	}

	switch {
	case kMin < 0 && kMax < 0:
		return -1, 0, false
	case kMax >= 0 && bestMax >= bestMin:
		return kMax, qMax[kMax], true
	default:
		return kMin, qMin[kMin] - 1, true
	}
}
