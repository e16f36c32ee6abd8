// Package sort implements selection sort, in place, over int32 slices and
// over any collection that satisfies Sorter.
package sort

import (
	"github.com/sirupsen/logrus"

	"github.com/wjiyu/selsort/src/utils"
)

var logger = utils.GetLogger("sort")

type Int32Slice []int32

type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

func (p Int32Slice) Len() int { return len(p) }

func (p Int32Slice) Less(i, j int) bool { return p[i] < p[j] }

func (p Int32Slice) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

type reverse struct {
	Sorter
}

func (r reverse) Less(i, j int) bool { return r.Sorter.Less(j, i) }

// Reverse returns data with the order of Less flipped.
func Reverse(data Sorter) Sorter {
	return reverse{data}
}

// Selection sorts data in ascending order of Less. For every position it
// selects the least element of the unsorted suffix and swaps it into place.
// Ties keep the leftmost candidate since only a strictly smaller element
// replaces it.
func Selection(data Sorter) {
	n := data.Len()
	if n < 2 {
		return
	}
	for j := 0; j < n; j++ {
		m := j
		for k := j + 1; k < n; k++ {
			if data.Less(k, m) {
				m = k
			}
		}
		data.Swap(j, m)
	}
}

// Sort sorts a in place, ascending when asc is true and descending
// otherwise. It makes n(n-1)/2 comparisons and at most n swaps.
func Sort(a []int32, asc bool) {
	if len(a) < 2 {
		return
	}
	trace := logger.IsLevelEnabled(logrus.TraceLevel)
	for j := 0; j < len(a); j++ {
		m, v := j, a[j]
		for k := j + 1; k < len(a); k++ {
			if asc && a[k] < v || !asc && a[k] > v {
				m, v = k, a[k]
			}
		}
		if trace {
			logger.Tracef("pass %d: swap a[%d]=%d with a[%d]=%d", j, j, a[j], m, v)
		}
		a[j], a[m] = v, a[j]
	}
}

// IsSorted reports whether every adjacent pair of a is in the requested order.
func IsSorted(a []int32, asc bool) bool {
	for i := 1; i < len(a); i++ {
		if asc && a[i-1] > a[i] || !asc && a[i-1] < a[i] {
			return false
		}
	}
	return true
}
