package gaussian

import (
	"math/big"
	"strings"
)

// Parse converts the canonical string form of a Gaussian integer back into
// a value. It accepts every form String produces ("a+bi", "a-bi", "a",
// "bi", "i", "-i"), an explicit "1i" coefficient, and interior whitespace
// such as "3 + 4i". Fails with ErrInvalidArgument on anything else.
func Parse(s string) (*Int, error) {
	compact := strings.Join(strings.Fields(s), "")
	if compact == "" {
		return nil, errorf("Parse", "%w: empty input", ErrInvalidArgument)
	}

	if !strings.HasSuffix(compact, "i") {
		re, ok := parseComponent(compact)
		if !ok {
			return nil, errorf("Parse", "%w: %q", ErrInvalidArgument, s)
		}
		return &Int{re: re, im: big.NewInt(0)}, nil
	}

	body := strings.TrimSuffix(compact, "i")
	// Split on the last sign that is not leading: it separates the real
	// part from the imaginary coefficient. Integer components carry no
	// exponent, so any interior +/- is the separator.
	cut := strings.LastIndexAny(body, "+-")
	var rePart, imPart string
	if cut > 0 {
		rePart, imPart = body[:cut], body[cut:]
	} else {
		rePart, imPart = "", body
	}

	im, ok := parseCoefficient(imPart)
	if !ok {
		return nil, errorf("Parse", "%w: %q", ErrInvalidArgument, s)
	}
	re := big.NewInt(0)
	if rePart != "" {
		re, ok = parseComponent(rePart)
		if !ok {
			return nil, errorf("Parse", "%w: %q", ErrInvalidArgument, s)
		}
	}
	return &Int{re: re, im: im}, nil
}

// MustParse is like Parse but panics on invalid input. It simplifies
// package-level constants and tests.
func MustParse(s string) *Int {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}

func parseComponent(s string) (*big.Int, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	return v, ok
}

// parseCoefficient handles the imaginary coefficient, where a bare sign or
// the empty string means a unit: "i" == 1i, "-i" == -1i.
func parseCoefficient(s string) (*big.Int, bool) {
	switch s {
	case "", "+":
		return big.NewInt(1), true
	case "-":
		return big.NewInt(-1), true
	}
	return parseComponent(s)
}
