// Package keys provides ready-made comparators compatible with
// redblack.Config, for the key types most containers reach for first:
// ordered integers and strings, ascending or descending, plus a variant
// that normalizes through grapheme segmentation before comparing.
package keys

import (
	"cmp"

	"github.com/npillmayer/redblack"
	"github.com/npillmayer/uax/grapheme"
)

// Ints compares two ints in ascending order.
func Ints(a, b int) redblack.Order {
	return orderOf(cmp.Compare(a, b))
}

// IntsDesc compares two ints in descending order.
func IntsDesc(a, b int) redblack.Order {
	return orderOf(cmp.Compare(b, a))
}

// Strings compares two strings byte-wise in ascending order.
func Strings(a, b string) redblack.Order {
	return orderOf(cmp.Compare(a, b))
}

// StringsDesc compares two strings byte-wise in descending order.
func StringsDesc(a, b string) redblack.Order {
	return orderOf(cmp.Compare(b, a))
}

// GraphemeStrings orders two strings ascending after first running each
// through grapheme.StringFromString, so both sides are grapheme-valid
// text before they are compared. The comparison itself is still a plain
// byte-wise cmp.Compare over the segmented result, not a cluster-by-
// cluster walk — for inputs where segmentation doesn't rewrite the
// underlying bytes, this orders identically to Strings.
func GraphemeStrings(a, b string) redblack.Order {
	ga := grapheme.StringFromString(a).String()
	gb := grapheme.StringFromString(b).String()
	return orderOf(cmp.Compare(ga, gb))
}

func orderOf(c int) redblack.Order {
	switch {
	case c < 0:
		return redblack.BelongsLeft
	case c > 0:
		return redblack.BelongsRight
	default:
		return redblack.Matches
	}
}
