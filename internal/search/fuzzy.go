package search

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// similarity is the longest-common-matching-blocks ratio 2*M/T over
// characters. A query only counts as close when the ratio is strictly
// above FuzzyThreshold.
func similarity(query, key string) float64 {
	m := difflib.NewMatcher(strings.Split(query, ""), strings.Split(key, ""))
	return m.Ratio()
}
