package sorting_test

import (
	"errors"
	"math/rand"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortvis/internal/array"
	"github.com/san-kum/sortvis/internal/sorting"
)

func permutations(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i + 1
	}
	var out [][]int
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			out = append(out, slices.Clone(base))
			return
		}
		for i := k; i < n; i++ {
			base[k], base[i] = base[i], base[k]
			permute(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	permute(0)
	return out
}

func shuffled(n int, seed int64) []int {
	a, err := array.Generate(n, array.OrderRandom, rand.New(rand.NewSource(seed)))
	Expect(err).NotTo(HaveOccurred())
	return a
}

func run(name string, input []int) []sorting.Step {
	gen, err := sorting.New(name, input)
	Expect(err).NotTo(HaveOccurred())
	return gen.Collect()
}

func finalValues(input []int, steps []sorting.Step) array.Array {
	if len(steps) == 0 {
		return array.Array(input)
	}
	return array.Array(steps[len(steps)-1].Values)
}

func mergeWrites(left, right int) int {
	if left >= right {
		return 0
	}
	mid := (left + right) / 2
	return mergeWrites(left, mid) + mergeWrites(mid+1, right) + right - left + 1
}

var _ = Describe("step generators", func() {
	for _, name := range sorting.Names() {
		Context(name, func() {
			It("sorts every permutation of small arrays", func() {
				for n := 1; n <= 6; n++ {
					for _, input := range permutations(n) {
						original := slices.Clone(input)
						steps := run(name, input)
						final := finalValues(input, steps)

						Expect(final.IsSorted()).To(BeTrue(), "%s on %v ended at %v", name, original, final)
						Expect(final.IsPermutationOf(original)).To(BeTrue())
						Expect(input).To(Equal(original), "input slice was mutated")
					}
				}
			})

			It("sorts shuffled arrays of size 10 and 100", func() {
				for _, n := range []int{10, 100} {
					for seed := int64(0); seed < 5; seed++ {
						input := shuffled(n, seed)
						final := finalValues(input, run(name, input))
						Expect(final.IsSorted()).To(BeTrue())
						Expect(final.IsPermutationOf(input)).To(BeTrue())
					}
				}
			})

			if name != sorting.NameMerge {
				It("keeps every step a permutation of the input", func() {
					input := shuffled(30, 11)
					for _, step := range run(name, input) {
						Expect(array.Array(step.Values).IsPermutationOf(input)).To(BeTrue())
					}
				})
			}

			It("is deterministic", func() {
				input := shuffled(40, 3)
				Expect(run(name, input)).To(Equal(run(name, input)))
			})

			It("rejects empty input", func() {
				_, err := sorting.New(name, []int{})
				Expect(err).To(MatchError(sorting.ErrEmptyInput))

				var pre *sorting.PreconditionError
				Expect(errors.As(err, &pre)).To(BeTrue())
				Expect(pre.Algorithm).To(Equal(name))
			})

			It("only highlights indices inside the array", func() {
				input := shuffled(25, 5)
				for _, step := range run(name, input) {
					for idx := range step.Highlights {
						Expect(idx).To(BeNumerically(">=", 0))
						Expect(idx).To(BeNumerically("<", len(input)))
					}
				}
			})

			It("does not share backing arrays between steps", func() {
				input := shuffled(20, 9)
				steps := run(name, input)
				if len(steps) < 2 {
					Skip("not enough steps")
				}
				first := slices.Clone(steps[0].Values)
				steps[1].Values[0] = -1
				Expect(steps[0].Values).To(Equal(first))
			})
		})
	}

	DescribeTable("step counts",
		func(name string, expected func(n int) int) {
			for _, n := range []int{1, 2, 3, 10, 57} {
				steps := run(name, shuffled(n, int64(n)))
				Expect(steps).To(HaveLen(expected(n)), "%s with n=%d", name, n)
			}
		},
		Entry("bubble yields N(N-1)/2", sorting.NameBubble, func(n int) int { return n * (n - 1) / 2 }),
		Entry("selection yields N", sorting.NameSelection, func(n int) int { return n }),
		Entry("insertion yields N-1", sorting.NameInsertion, func(n int) int { return n - 1 }),
		Entry("heap yields N-1", sorting.NameHeap, func(n int) int { return n - 1 }),
		Entry("merge yields the sum of merged segment lengths", sorting.NameMerge, func(n int) int { return mergeWrites(0, n-1) }),
	)

	Describe("merge write-back", func() {
		It("ends on a permutation of the input", func() {
			input := shuffled(30, 11)
			steps := run(sorting.NameMerge, input)
			Expect(finalValues(input, steps).IsPermutationOf(input)).To(BeTrue())
		})

		It("repeats values in intermediate snapshots", func() {
			steps := run(sorting.NameMerge, []int{2, 1})
			Expect(steps).To(HaveLen(2))
			Expect(steps[0].Values).To(Equal([]int{1, 1}))
			Expect(steps[1].Values).To(Equal([]int{1, 2}))
		})

		It("keeps the settled run of each merge in sorted order", func() {
			input := shuffled(30, 11)
			for i, step := range run(sorting.NameMerge, input) {
				settled := make([]int, 0, len(step.Highlights))
				for idx, role := range step.Highlights {
					Expect(role).To(Equal(sorting.RoleSettled))
					settled = append(settled, idx)
				}
				slices.Sort(settled)
				Expect(settled).NotTo(BeEmpty())
				for k := 1; k < len(settled); k++ {
					Expect(settled[k]).To(Equal(settled[k-1]+1), "step %d: settled run is not contiguous", i)
					Expect(step.Values[settled[k]]).To(BeNumerically(">=", step.Values[settled[k-1]]), "step %d: %v", i, step.Values)
				}
			}
		})
	})

	It("yields nothing for a single element except selection's no-op", func() {
		for _, name := range sorting.Names() {
			steps := run(name, []int{1})
			if name == sorting.NameSelection {
				Expect(steps).To(HaveLen(1))
				Expect(steps[0].Values).To(Equal([]int{1}))
				continue
			}
			Expect(steps).To(BeEmpty(), name)
		}
	})

	It("repeats the input on every selection step for sorted input", func() {
		input := []int{1, 2, 3, 4, 5, 6}
		steps := run(sorting.NameSelection, input)
		Expect(steps).To(HaveLen(len(input)))
		for _, step := range steps {
			Expect(step.Values).To(Equal(input))
		}
	})

	Describe("early abandonment", func() {
		It("stops cleanly and stays exhausted", func() {
			gen, err := sorting.Merge(shuffled(50, 1))
			Expect(err).NotTo(HaveOccurred())

			_, ok := gen.Next()
			Expect(ok).To(BeTrue())
			gen.Stop()
			gen.Stop()

			_, ok = gen.Next()
			Expect(ok).To(BeFalse())
			Expect(gen.Done()).To(BeTrue())
			Expect(gen.Count()).To(Equal(1))
		})

		It("stops when a range loop breaks", func() {
			gen, err := sorting.Quick(shuffled(50, 2))
			Expect(err).NotTo(HaveOccurred())

			seen := 0
			for range gen.All() {
				seen++
				if seen == 3 {
					break
				}
			}
			Expect(gen.Done()).To(BeTrue())
			_, ok := gen.Next()
			Expect(ok).To(BeFalse())
		})
	})

	It("is not restartable", func() {
		gen, err := sorting.Insertion([]int{3, 1, 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(gen.Collect()).To(HaveLen(2))
		Expect(gen.Collect()).To(BeEmpty())
	})
})
