package sorting

// Quick sorts the whole array with Hoare partitioning around the first element.
// It yields after every partition swap and once after every partition.
// Sorted input degrades to O(N^2) comparisons.
func Quick(values []int) (*Generator, error) {
	return QuickRange(values, 0, len(values)-1)
}

// QuickRange sorts only values[low..high] (inclusive).
func QuickRange(values []int, low, high int) (*Generator, error) {
	if err := checkRange(NameQuick, values, low, high); err != nil {
		return nil, err
	}
	return newGenerator(NameQuick, values, func(a []int, yield func(Step) bool) {
		quickSort(a, low, high, yield)
	}), nil
}

func quickSort(a []int, low, high int, yield func(Step) bool) bool {
	if low >= high {
		return true
	}

	p, ok := hoarePartition(a, low, high, yield)
	if !ok {
		return false
	}
	if !yield(snapshot(a, roles(mark{low, RolePivot}, mark{p, RoleSortedBoundary}))) {
		return false
	}

	return quickSort(a, low, p, yield) && quickSort(a, p+1, high, yield)
}

// hoarePartition returns the split point j: a[low..j] <= pivot <= a[j+1..high].
func hoarePartition(a []int, low, high int, yield func(Step) bool) (int, bool) {
	pivot := a[low]
	i := low - 1
	j := high + 1

	for {
		for {
			i++
			if a[i] >= pivot {
				break
			}
		}
		for {
			j--
			if a[j] <= pivot {
				break
			}
		}
		if i >= j {
			return j, true
		}

		a[i], a[j] = a[j], a[i]
		if !yield(snapshot(a, roles(mark{low, RolePivot}, mark{i, RoleActiveLeft}, mark{j, RoleActiveRight}))) {
			return j, false
		}
	}
}

type mark struct {
	index int
	role  Role
}

// roles builds highlights in order; a later mark wins when indices coincide.
func roles(marks ...mark) map[int]Role {
	h := make(map[int]Role, len(marks))
	for _, m := range marks {
		h[m.index] = m.role
	}
	return h
}
