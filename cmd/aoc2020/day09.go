package main

import "github.com/maisem/aoc2020"

func (s solver) preamble() int {
	if s.SampleMode {
		return 5
	}
	return 25
}

// firstInvalid returns the first number after the preamble that is not the
// sum of two different numbers among the preamble numbers before it.
func firstInvalid(nums []int, preamble int) int {
	sums := map[int]int{}
	for i := 0; i < preamble; i++ {
		for j := i + 1; j < preamble; j++ {
			sums[nums[i]+nums[j]]++
		}
	}
	for i := preamble; i < len(nums); i++ {
		if sums[nums[i]] == 0 {
			return nums[i]
		}
		// Slide the window: nums[i-preamble] leaves, nums[i] joins.
		out := nums[i-preamble]
		for j := i - preamble + 1; j < i; j++ {
			sums[nums[j]+out]--
			sums[nums[j]+nums[i]]++
		}
	}
	panic("every number is valid")
}

/*
want=127

35
20
15
25
47
40
62
55
65
95
102
117
150
182
127
219
299
277
309
576
*/
func (s solver) D9p1() any {
	return firstInvalid(aoc.Ints(s.Lines()...), s.preamble())
}

// want=62
func (s solver) D9p2() any {
	nums := aoc.Ints(s.Lines()...)
	target := firstInvalid(nums, s.preamble())
	lo, sum := 0, 0
	for hi, n := range nums {
		sum += n
		for sum > target && lo < hi {
			sum -= nums[lo]
			lo++
		}
		if sum == target && hi > lo {
			small, large := aoc.MinMax(nums[lo : hi+1]...)
			return small + large
		}
	}
	panic("no weakness")
}
