package main

import "github.com/maisem/aoc2020"

// expenses finds n entries summing to target and returns their product, or 0
// if there are none.
func expenses(vals []int, n, target int) int {
	if n == 0 {
		if target == 0 {
			return 1
		}
		return 0
	}
	for i, v := range vals {
		if v > target {
			continue
		}
		if p := expenses(vals[i+1:], n-1, target-v); p != 0 {
			return v * p
		}
	}
	return 0
}

/*
want=514579

1721
979
366
299
675
1456
*/
func (s solver) D1p1() any {
	return expenses(aoc.Ints(s.Lines()...), 2, 2020)
}

// want=241861950
func (s solver) D1p2() any {
	return expenses(aoc.Ints(s.Lines()...), 3, 2020)
}
