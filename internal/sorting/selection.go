package sorting

// Selection yields once per outer position after the swap: N steps.
// Not stable, in-place. Unlike the other generators, a single-element
// input still yields one step repeating that element.
func Selection(values []int) (*Generator, error) {
	if err := checkInput(NameSelection, values); err != nil {
		return nil, err
	}
	return newGenerator(NameSelection, values, selection), nil
}

func selection(a []int, yield func(Step) bool) {
	n := len(a)
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			// strict: the first occurrence of the minimum wins
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}
		a[i], a[minIdx] = a[minIdx], a[i]
		if !yield(snapshot(a, map[int]Role{i: RoleSortedBoundary})) {
			return
		}
	}
}
