package sorting

// Merge is a top-down merge sort writing back into the shared array. It
// yields once per element written by each merge, so a full sort produces the
// sum of all merged segment lengths.
func Merge(values []int) (*Generator, error) {
	return MergeRange(values, 0, len(values)-1)
}

// MergeRange sorts only values[left..right] (inclusive).
func MergeRange(values []int, left, right int) (*Generator, error) {
	if err := checkRange(NameMerge, values, left, right); err != nil {
		return nil, err
	}
	return newGenerator(NameMerge, values, func(a []int, yield func(Step) bool) {
		mergeSort(a, left, right, yield)
	}), nil
}

func mergeSort(a []int, left, right int, yield func(Step) bool) bool {
	if left >= right {
		return true
	}

	mid := (left + right) / 2
	return mergeSort(a, left, mid, yield) &&
		mergeSort(a, mid+1, right, yield) &&
		mergeCombine(a, left, mid, right, yield)
}

// mergeCombine takes from the left half only while its head is strictly
// smaller, so equal heads come from the right half.
func mergeCombine(a []int, left, mid, right int, yield func(Step) bool) bool {
	merged := make([]int, 0, right-left+1)
	i, j := left, mid+1

	for i <= mid && j <= right {
		if a[i] < a[j] {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, a[j])
			j++
		}
	}
	merged = append(merged, a[i:mid+1]...)
	merged = append(merged, a[j:right+1]...)

	for k, v := range merged {
		a[left+k] = v
		highlights := make(map[int]Role, k+1)
		for idx := left; idx <= left+k; idx++ {
			highlights[idx] = RoleSettled
		}
		if !yield(snapshot(a, highlights)) {
			return false
		}
	}
	return true
}
