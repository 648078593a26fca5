package main

import (
	"regexp"
	"strings"

	"github.com/maisem/aoc2020"
)

var passportFields = map[string]*regexp.Regexp{
	"byr": regexp.MustCompile(`^(19[2-9][0-9]|200[0-2])$`),
	"iyr": regexp.MustCompile(`^(201[0-9]|2020)$`),
	"eyr": regexp.MustCompile(`^(202[0-9]|2030)$`),
	"hgt": regexp.MustCompile(`^(1([5-8][0-9]|9[0-3])cm|(59|6[0-9]|7[0-6])in)$`),
	"hcl": regexp.MustCompile(`^#[0-9a-f]{6}$`),
	"ecl": regexp.MustCompile(`^(amb|blu|brn|gry|grn|hzl|oth)$`),
	"pid": regexp.MustCompile(`^[0-9]{9}$`),
}

type passport map[string]string

func parsePassport(s string) passport {
	p := passport{}
	for _, f := range strings.Fields(s) {
		k, v, ok := strings.Cut(f, ":")
		if !ok {
			panic("bad passport field: " + f)
		}
		p[k] = v
	}
	return p
}

func (p passport) complete() bool {
	for k := range passportFields {
		if _, ok := p[k]; !ok {
			return false
		}
	}
	return true
}

func (p passport) valid() bool {
	for k, rx := range passportFields {
		if !rx.MatchString(p[k]) {
			return false
		}
	}
	return true
}

func (s solver) countPassports(check func(passport) bool) int {
	return aoc.ParallelMapFold(s.Paragraphs(), func(para string) bool {
		return check(parsePassport(para))
	}, func(n int, ok bool) int {
		if ok {
			n++
		}
		return n
	}, 0)
}

/*
want=2

ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
byr:1937 iyr:2017 cid:147 hgt:183cm

iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
hcl:#cfa07d byr:1929

hcl:#ae17e1 iyr:2013
eyr:2024
ecl:brn pid:760753108 byr:1931
hgt:179cm

hcl:#cfa07d eyr:2025 pid:166559648
iyr:2011 ecl:brn hgt:59in
*/
func (s solver) D4p1() any {
	return s.countPassports(passport.complete)
}

/*
want=4

pid:087499704 hgt:74in ecl:grn iyr:2012 eyr:2030 byr:1980
hcl:#623a2f

eyr:2029 ecl:blu cid:129 byr:1989
iyr:2014 pid:896056539 hcl:#a97842 hgt:165cm

hcl:#888785
hgt:164cm byr:2001 iyr:2015 cid:88
pid:545766238 ecl:hzl
eyr:2022

iyr:2010 hgt:158cm hcl:#b6652a ecl:blu byr:1944 eyr:2021 pid:093154719

eyr:1972 cid:100
hcl:#18171d ecl:amb hgt:170 pid:186cm iyr:2018 byr:1926

iyr:2019
hcl:#602927 eyr:1967 hgt:170cm
ecl:grn pid:012533040 byr:1946

hcl:dab227 iyr:2012
ecl:brn hgt:182cm pid:021572410 eyr:2020 byr:1992 cid:277

hgt:59cm ecl:zzz
eyr:2038 hcl:74454a iyr:2023
pid:3556412378 byr:2007
*/
func (s solver) D4p2() any {
	return s.countPassports(passport.valid)
}
