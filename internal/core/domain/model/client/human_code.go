package client

import (
	"fmt"
	"strconv"
	"strings"

	"cargo/internal/pkg/errs"
)

const (
	humanCodePrefix    = "A"
	humanCodeMinDigits = 5
	humanCodeMaxLength = 20
)

// FirstHumanCode is issued to the very first registered client and whenever
// the previous code cannot be interpreted.
const FirstHumanCode HumanCode = "A00001"

// HumanCode is the sequential, human-readable client identifier: the letter
// A followed by a zero-padded number of at least five digits.
type HumanCode string

// ParseHumanCode validates s and returns it as a HumanCode.
//
// Example:
//
//	code, err := client.ParseHumanCode("A00042")
//	if err != nil {
//	    return err // not of the form A#####
//	}
func ParseHumanCode(s string) (HumanCode, error) {
	code := HumanCode(strings.TrimSpace(s))
	if err := code.Validate(); err != nil {
		return "", err
	}
	return code, nil
}

// NextHumanCode returns the code that follows last. An empty or malformed
// last code yields FirstHumanCode instead of an error: issuing codes must
// never block registration.
//
// Example:
//
//	client.NextHumanCode("")       // A00001
//	client.NextHumanCode("A00001") // A00002
//	client.NextHumanCode("A99999") // A100000
func NextHumanCode(last string) HumanCode {
	n, err := HumanCode(last).number()
	if err != nil {
		return FirstHumanCode
	}
	return HumanCode(fmt.Sprintf("%s%0*d", humanCodePrefix, humanCodeMinDigits, n+1))
}

// Validate checks the A##### format.
func (c HumanCode) Validate() error {
	if c == "" {
		return errs.NewValueIsRequiredError("humanCode")
	}
	if len(c) > humanCodeMaxLength {
		return errs.NewValueIsOutOfRangeError("humanCode length", len(c), len(humanCodePrefix)+humanCodeMinDigits, humanCodeMaxLength)
	}
	if _, err := c.number(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("humanCode", err)
	}
	return nil
}

// String returns the code as printed on labels.
func (c HumanCode) String() string {
	return string(c)
}

func (c HumanCode) number() (int, error) {
	s := string(c)
	if !strings.HasPrefix(s, humanCodePrefix) {
		return 0, fmt.Errorf("%q does not start with %q", s, humanCodePrefix)
	}
	digits := s[len(humanCodePrefix):]
	if len(digits) < humanCodeMinDigits {
		return 0, fmt.Errorf("%q has fewer than %d digits", s, humanCodeMinDigits)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q contains non-digit characters", s)
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, err
	}
	return n, nil
}
