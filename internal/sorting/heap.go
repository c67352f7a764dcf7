package sorting

// Heap builds a max-heap silently, then yields once per extraction: N-1 steps.
// Not stable.
func Heap(values []int) (*Generator, error) {
	if err := checkInput(NameHeap, values); err != nil {
		return nil, err
	}
	return newGenerator(NameHeap, values, heapSort), nil
}

func heapSort(a []int, yield func(Step) bool) {
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, n, i)
	}

	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		node := siftDown(a, end, 0)

		highlights := map[int]Role{end: RoleSortedBoundary, node: RoleRoot}
		if left := 2*node + 1; left < end {
			highlights[left] = RoleActiveLeft
		}
		if right := 2*node + 2; right < end {
			highlights[right] = RoleActiveRight
		}
		if !yield(snapshot(a, highlights)) {
			return
		}
	}
}

// siftDown restores the max-heap property for the subtree rooted at i within
// the first n elements. It returns the index where the sift came to rest.
func siftDown(a []int, n, i int) int {
	largest := i
	left := 2*i + 1
	right := 2*i + 2

	if left < n && a[left] > a[largest] {
		largest = left
	}
	if right < n && a[right] > a[largest] {
		largest = right
	}
	if largest == i {
		return i
	}

	a[i], a[largest] = a[largest], a[i]
	return siftDown(a, n, largest)
}
