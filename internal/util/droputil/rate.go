package droputil

import (
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

var (
	fractionRateRegex = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?|\.\d+)\s*/\s*(\d[\d,]*(?:\.\d+)?|\.\d+)`)
	oneInRateRegex    = regexp.MustCompile(`(?i)(?:^|[^\d.,])1\s*(?:in|:)\s*(\d[\d,]*(?:\.\d+)?)`)
)

// ParseRate converts a rarity string as published on the wiki into a probability.
//
// Recognized notations are "N/D" and "1 in D" (or "1:D"). Only the earliest
// occurrence of either notation is considered, so "1/128; 1/65" yields 1/128 and
// "1 in 100 (1/50 on task)" yields 1/100. Textual rarities such as "Common" and any
// result outside (0, 1] yield an invalid value.
func ParseRate(raw string) null.Float {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return null.Float{}
	}

	fraction := fractionRateRegex.FindStringSubmatchIndex(raw)
	oneIn := oneInRateRegex.FindStringSubmatchIndex(raw)

	switch {
	case fraction != nil && (oneIn == nil || fraction[0] < oneInStart(raw, oneIn)):
		return ratio(raw[fraction[2]:fraction[3]], raw[fraction[4]:fraction[5]])
	case oneIn != nil:
		return ratio("1", raw[oneIn[2]:oneIn[3]])
	default:
		return null.Float{}
	}
}

// oneInStart is the offset of the leading "1", skipping the boundary character
// the match may begin with.
func oneInStart(raw string, loc []int) int {
	return loc[0] + strings.IndexByte(raw[loc[0]:loc[1]], '1')
}

func ratio(numerator, denominator string) null.Float {
	n, err := parseNumber(numerator)
	if err != nil {
		return null.Float{}
	}
	d, err := parseNumber(denominator)
	if err != nil || d <= 0 {
		return null.Float{}
	}

	r := n / d
	if r <= 0 || r > 1 {
		return null.Float{}
	}
	return null.FloatFrom(r)
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
