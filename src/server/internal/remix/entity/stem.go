package remixentity

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

type StemName string

const (
	NoStem StemName = ""
	Vocals StemName = "vocals"
	Bass   StemName = "bass"
	Drums  StemName = "drums"
	Other  StemName = "other"
	Piano  StemName = "piano"
)

// AllStems is the canonical order, kept stems are mixed in this order
var AllStems = []StemName{Vocals, Bass, Drums, Other, Piano}

func ParseStemName(val string) (StemName, error) {
	for _, stem := range AllStems {
		if string(stem) == val {
			return stem, nil
		}
	}

	return NoStem, errors.Newf("%q is not a known stem", val)
}

type StemCount int

const (
	InvalidStemCount StemCount = 0
	TwoStems         StemCount = 2
	FourStems        StemCount = 4
	FiveStems        StemCount = 5

	DefaultStemCount = FourStems
)

func ParseStemCount(val string) (StemCount, error) {
	trimmed := strings.TrimSpace(val)
	if trimmed == "" {
		return DefaultStemCount, nil
	}

	count, err := strconv.Atoi(trimmed)
	if err != nil {
		return InvalidStemCount, errors.Wrapf(err, "%q is not a number", val)
	}

	switch StemCount(count) {
	case TwoStems, FourStems, FiveStems:
		return StemCount(count), nil
	default:
		return InvalidStemCount, errors.Newf("%d is not a supported stem count", count)
	}
}
