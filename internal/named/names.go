package named

import (
	"fmt"
	"slices"

	"github.com/born-ml/qmodes/internal/tensor"
)

// normalizeNames converts the accepted names shapes into one list per side:
//
//	string       -> [[s], [s]]         (one axis per side only)
//	[]string     -> [names, names]     (same axis count on both sides)
//	[2][]string  -> as given
//	[][]string   -> as given, must have length 2
//
// The result is validated against dims and never aliases the input.
func normalizeNames(names any, dims tensor.Dims) ([2][]string, error) {
	var out [2][]string
	switch n := names.(type) {
	case nil:
		return out, ErrMissingNames
	case string:
		if len(dims[0]) != 1 || len(dims[1]) != 1 {
			return out, fmt.Errorf("%w: a single name needs one axis per side, dims are %v", ErrNameCount, dims)
		}
		out = [2][]string{{n}, {n}}
	case []string:
		out = [2][]string{slices.Clone(n), slices.Clone(n)}
	case [2][]string:
		out = cloneNames(n)
	case [][]string:
		if len(n) != 2 {
			return out, fmt.Errorf("%w: got %d name lists", ErrNameType, len(n))
		}
		out = [2][]string{slices.Clone(n[0]), slices.Clone(n[1])}
	default:
		return out, fmt.Errorf("%w: got %T", ErrNameType, names)
	}
	if err := validateNames(out, dims); err != nil {
		return [2][]string{}, err
	}
	return out, nil
}

// validateNames checks that names are non-empty, unique per side and one per axis.
func validateNames(names [2][]string, dims tensor.Dims) error {
	for side := range names {
		if len(names[side]) != len(dims[side]) {
			return fmt.Errorf("%w: side %d has %d names for %d axes",
				ErrNameCount, side, len(names[side]), len(dims[side]))
		}
		seen := make(map[string]struct{}, len(names[side]))
		for _, name := range names[side] {
			if name == "" {
				return ErrEmptyName
			}
			if _, ok := seen[name]; ok {
				return fmt.Errorf("%w: %q on side %d", ErrDuplicateName, name, side)
			}
			seen[name] = struct{}{}
		}
	}
	return nil
}

func cloneNames(names [2][]string) [2][]string {
	return [2][]string{slices.Clone(names[0]), slices.Clone(names[1])}
}

// dedup concatenates lists and removes repeats, keeping first occurrences.
func dedup(lists ...[]string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, name := range list {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// missingNames returns, per side, the required names absent from names,
// in required order.
func missingNames(names, required [2][]string) [2][]string {
	var out [2][]string
	for side := range required {
		for _, name := range required[side] {
			if !slices.Contains(names[side], name) {
				out[side] = append(out[side], name)
			}
		}
	}
	return out
}

// sameSet reports whether a and b hold the same names, ignoring order.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, name := range a {
		if !slices.Contains(b, name) {
			return false
		}
	}
	return true
}

// indicesOf resolves names to their positions within side.
func indicesOf(side []string, names []string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		idx := slices.Index(side, name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
		}
		out[i] = idx
	}
	return out, nil
}
