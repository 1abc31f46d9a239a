package wallet

import (
	"fmt"
	"math"
	"strings"
)

// One monero is 1e12 atomic units (piconero).
const atomicPerXMR = 1_000_000_000_000

// Largest whole-XMR count whose atomic value fits in a uint64.
const maxWholeXMR = math.MaxUint64 / atomicPerXMR

// AtomicToXMR renders an atomic-unit amount as a decimal XMR string
// with trailing zeros trimmed, e.g. 10000000000000 -> "10", and
// 20141160000 -> "0.02014116". The arithmetic is integral, so no
// floating-point drift.
func AtomicToXMR(atomic uint64) string {
	whole := atomic / atomicPerXMR
	frac := atomic % atomicPerXMR
	if frac == 0 {
		return fmt.Sprintf("%d", whole)
	}
	s := strings.TrimRight(fmt.Sprintf("%012d", frac), "0")
	return fmt.Sprintf("%d.%s", whole, s)
}

// XMRToAtomic parses a decimal XMR string into atomic units. At most 12
// fractional digits are accepted, and amounts whose atomic value would
// not fit in a uint64 (about 18.4M XMR, well past the supply) are
// rejected rather than wrapped.
func XMRToAtomic(amount string) (uint64, error) {
	whole, frac := amount, ""
	if i := strings.IndexByte(amount, '.'); i >= 0 {
		whole, frac = amount[:i], amount[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("empty amount")
	}
	if len(frac) > 12 {
		return 0, fmt.Errorf("amount %q has more than 12 fractional digits", amount)
	}

	var atomic uint64
	parse := func(s string) (uint64, error) {
		var n uint64
		for _, r := range s {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("invalid amount %q", amount)
			}
			d := uint64(r - '0')
			if n > (math.MaxUint64-d)/10 {
				return 0, fmt.Errorf("amount %q is too large", amount)
			}
			n = n*10 + d
		}
		return n, nil
	}

	if whole != "" {
		n, err := parse(whole)
		if err != nil {
			return 0, err
		}
		if n > maxWholeXMR {
			return 0, fmt.Errorf("amount %q is too large", amount)
		}
		atomic = n * atomicPerXMR
	}
	if frac != "" {
		// Right-pad to 12 digits so "0.5" means 5e11 atomic units.
		n, err := parse(frac + strings.Repeat("0", 12-len(frac)))
		if err != nil {
			return 0, err
		}
		if atomic > math.MaxUint64-n {
			return 0, fmt.Errorf("amount %q is too large", amount)
		}
		atomic += n
	}
	return atomic, nil
}
