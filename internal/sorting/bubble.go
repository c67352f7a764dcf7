package sorting

// Bubble yields after every adjacent comparison, swapped or not: N(N-1)/2 steps.
// Stable, in-place.
func Bubble(values []int) (*Generator, error) {
	if err := checkInput(NameBubble, values); err != nil {
		return nil, err
	}
	return newGenerator(NameBubble, values, bubble), nil
}

func bubble(a []int, yield func(Step) bool) {
	n := len(a)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
			}
			if !yield(snapshot(a, map[int]Role{j: RoleCompared, j + 1: RoleCompared})) {
				return
			}
		}
	}
}
