package sorting

// Insertion yields once per inserted element: N-1 steps. Stable, in-place.
func Insertion(values []int) (*Generator, error) {
	if err := checkInput(NameInsertion, values); err != nil {
		return nil, err
	}
	return newGenerator(NameInsertion, values, insertion), nil
}

func insertion(a []int, yield func(Step) bool) {
	for i := 1; i < len(a); i++ {
		val := a[i]
		j := i - 1
		for j >= 0 && a[j] > val {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = val
		if !yield(snapshot(a, map[int]Role{i: RoleActive})) {
			return
		}
	}
}
