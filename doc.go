// Package parfold provides parallel reductions (folds) over dense
// multidimensional arrays. A fold combines elements with an associative,
// but not necessarily commutative, function and an optional seed element.
// Elements are always combined in increasing index order, so folds with
// operators such as subtraction or string concatenation yield the same
// result regardless of how many workers participate.
//
// Parfold provides the following subpackages:
//
// parfold/sequential provides the sequential reduction loops that every
// fold kernel is built from, as well as a sequential gang for testing and
// debugging.
//
// parfold/parallel provides the gang that runs stripes of an index range in
// parallel, with static stripe boundaries decided before any worker starts.
//
// parfold/array provides shapes and dense row-major arrays, including
// interoperability with gonum matrices.
//
// parfold/fold provides the strategy selector, the fold kernels, and the
// Fold and FoldAll entry points that dispatch them.
//
// Parfold has been influenced by the data-parallel fold primitives of array
// languages and by the work-splitting style of Cilk and Threading Building
// Blocks. See http://supertech.csail.mit.edu/papers/steal.pdf for some
// theoretical background.
package parfold
