package common

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidLimit is returned for counts DecodeLimit cannot read.
var ErrInvalidLimit = errors.New("invalid limit")

var limitDecoder = regexp.MustCompile(`^([0-9_]+)([KMGTPE]*)$`)

// DecodeLimit reads a count such as `113_373_373_373`, `10G` or `5KM`. Each
// suffix letter multiplies by a power of ten: K=10^3, M=10^6, G=10^9,
// T=10^12, P=10^15 and E=10^18. The result must fit in an int64.
func DecodeLimit(limitString string) (int64, error) {
	pieces := limitDecoder.FindStringSubmatch(strings.TrimSpace(limitString))
	if pieces == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLimit, limitString)
	}
	limit, err := strconv.ParseInt(strings.ReplaceAll(pieces[1], "_", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidLimit, limitString, err)
	}
	for _, s := range pieces[2] {
		var scale int64
		switch s {
		case 'K':
			scale = 1_000
		case 'M':
			scale = 1_000_000
		case 'G':
			scale = 1_000_000_000
		case 'T':
			scale = 1_000_000_000_000
		case 'P':
			scale = 1_000_000_000_000_000
		case 'E':
			scale = 1_000_000_000_000_000_000
		}
		if limit > math.MaxInt64/scale {
			return 0, fmt.Errorf("%w: %q overflows int64", ErrInvalidLimit, limitString)
		}
		limit *= scale
	}
	return limit, nil
}

// FormatLimit is the short form of a count used in progress lines, e.g.
// 113.4G or 10.0M.
func FormatLimit(limit int64) string {
	switch {
	case limit >= 1_000_000_000_000_000:
		return fmt.Sprintf("%.1fP", float64(limit)/1e15)
	case limit >= 1_000_000_000_000:
		return fmt.Sprintf("%.1fT", float64(limit)/1e12)
	case limit >= 1_000_000_000:
		return fmt.Sprintf("%.1fG", float64(limit)/1e9)
	case limit >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(limit)/1e6)
	default:
		return strconv.FormatInt(limit, 10)
	}
}
