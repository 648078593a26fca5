package main

import (
	"slices"
	"strings"

	"github.com/maisem/aoc2020"
	"golang.org/x/exp/maps"
)

type food struct {
	ingredients aoc.Set[string]
	allergens   []string
}

func (s solver) foods() []food {
	var out []food
	s.ForLines(func(line string) {
		ings, alls, ok := strings.Cut(line, " (contains ")
		if !ok {
			panic("no allergens: " + line)
		}
		out = append(out, food{
			ingredients: aoc.NewSet(strings.Fields(ings)...),
			allergens:   strings.Split(strings.TrimSuffix(alls, ")"), ", "),
		})
	})
	return out
}

// suspects returns, for each allergen, the ingredients present in every
// food listing it.
func suspects(foods []food) map[string]aoc.Set[string] {
	out := map[string]aoc.Set[string]{}
	for _, f := range foods {
		for _, a := range f.allergens {
			if cur, ok := out[a]; ok {
				out[a] = cur.Intersect(f.ingredients)
			} else {
				out[a] = f.ingredients.Clone()
			}
		}
	}
	return out
}

/*
want=5

mxmxvkd kfcds sqjhc nhms (contains dairy, fish)
trh fvjkl sbzzf mxmxvkd (contains dairy)
sqjhc fvjkl (contains soy)
sqjhc mxmxvkd sbzzf (contains fish)
*/
func (s solver) D21p1() any {
	foods := s.foods()
	unsafe := aoc.NewSet[string]()
	for _, ings := range suspects(foods) {
		unsafe = unsafe.Union(ings)
	}
	n := 0
	for _, f := range foods {
		n += len(f.ingredients.Minus(unsafe))
	}
	return n
}

// want=mxmxvkd,sqjhc,fvjkl
func (s solver) D21p2() any {
	cands := suspects(s.foods())
	found := map[string]string{}
	for len(cands) > 0 {
		progress := false
		for a, ings := range cands {
			ing, ok := ings.Only()
			if !ok {
				continue
			}
			found[a] = ing
			delete(cands, a)
			for _, other := range cands {
				other.Remove(ing)
			}
			progress = true
		}
		if !progress {
			panic("ambiguous allergens")
		}
	}
	allergens := maps.Keys(found)
	slices.Sort(allergens)
	var list []string
	for _, a := range allergens {
		list = append(list, found[a])
	}
	return strings.Join(list, ",")
}
