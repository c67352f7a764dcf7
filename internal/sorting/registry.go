package sorting

import "fmt"

const (
	NameBubble    = "bubble"
	NameSelection = "selection"
	NameInsertion = "insertion"
	NameHeap      = "heap"
	NameQuick     = "quick"
	NameMerge     = "merge"
)

// Algorithm describes one registered sort.
type Algorithm struct {
	Name    string
	Title   string
	Summary string
	Stable  bool
	InPlace bool
	Best    string
	Average string
	Worst   string
	Space   string
	New     func(values []int) (*Generator, error)
}

var algorithms = []Algorithm{
	{
		Name:    NameBubble,
		Title:   "Bubble Sort",
		Summary: "bubbles items up to where they need to be in the list",
		Stable:  true,
		InPlace: true,
		Best:    "O(n^2)",
		Average: "O(n^2)",
		Worst:   "O(n^2)",
		Space:   "O(1)",
		New:     Bubble,
	},
	{
		Name:    NameSelection,
		Title:   "Selection Sort",
		Summary: "moves the minimum of the unsorted part to the first unsorted slot",
		Stable:  false,
		InPlace: true,
		Best:    "O(n^2)",
		Average: "O(n^2)",
		Worst:   "O(n^2)",
		Space:   "O(1)",
		New:     Selection,
	},
	{
		Name:    NameInsertion,
		Title:   "Insertion Sort",
		Summary: "shifts larger items right and drops each item into the gap",
		Stable:  true,
		InPlace: true,
		Best:    "O(n)",
		Average: "O(n^2)",
		Worst:   "O(n^2)",
		Space:   "O(1)",
		New:     Insertion,
	},
	{
		Name:    NameHeap,
		Title:   "Heap Sort",
		Summary: "builds a max heap and repeatedly moves the root behind the heap",
		Stable:  false,
		InPlace: true,
		Best:    "O(n log n)",
		Average: "O(n log n)",
		Worst:   "O(n log n)",
		Space:   "O(1)",
		New:     Heap,
	},
	{
		Name:    NameQuick,
		Title:   "Quick Sort",
		Summary: "Hoare partitioning with two converging pointers around the first element",
		Stable:  false,
		InPlace: true,
		Best:    "O(n log n)",
		Average: "O(n log n)",
		Worst:   "O(n^2)",
		Space:   "O(log n)",
		New:     Quick,
	},
	{
		Name:    NameMerge,
		Title:   "Merge Sort",
		Summary: "recursively halves the list and merges the sorted halves",
		Stable:  false,
		InPlace: false,
		Best:    "O(n log n)",
		Average: "O(n log n)",
		Worst:   "O(n log n)",
		Space:   "O(n)",
		New:     Merge,
	},
}

// Names returns the registered algorithms in display order.
func Names() []string {
	names := make([]string, len(algorithms))
	for i, a := range algorithms {
		names[i] = a.Name
	}
	return names
}

func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

func Lookup(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownAlgorithm, name, Names())
}

// New builds the named generator over a copy of values.
func New(name string, values []int) (*Generator, error) {
	a, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return a.New(values)
}
