package compute

import (
	"fmt"
	"strconv"
)

// ParseNumbers converts each token to a float64. The first token that is not
// a valid floating-point literal aborts the whole parse; nothing is averaged
// on a partial read.
func ParseNumbers(tokens []string) ([]float64, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	values := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", tok)
		}
		values = append(values, v)
	}
	return values, nil
}
