// Package sorting implements comparison sorts as observable step generators.
//
// Each algorithm does not just sort a slice: it produces a deterministic,
// finite sequence of [Step] values (an array snapshot plus advisory
// highlights) that a driver consumes one at a time:
//
//   - [Generator]: lazy, non-restartable sequence of steps with Next/Stop
//   - [Step]: immutable snapshot handed to renderers
//   - [Role]: highlight tag attached to an index (compared, pivot, ...)
//
// # Example
//
//	gen, err := sorting.Quick([]int{4, 3, 2, 1})
//	if err != nil {
//		return err
//	}
//	defer gen.Stop()
//	for step := range gen.All() {
//		render(step.Values, step.Highlights)
//	}
//
// # Ownership
//
// Constructors copy the caller's slice, so the input is never mutated.
// Every yielded Step carries its own copy of the working array; a renderer
// may keep steps around while the generator continues.
//
// Generators are NOT thread-safe. A Generator that is abandoned before it is
// exhausted must be stopped with [Generator.Stop] to release its coroutine.
package sorting
