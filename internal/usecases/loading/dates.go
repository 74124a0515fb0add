package loading

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
)

// parseDate interpreta qualquer formato reconhecido e devolve apenas a data (UTC)
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("data vazia")
	}

	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "valor %q", value)
	}

	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}

// parseNumber devolve NaN para campos vazios, inválidos ou infinitos
func parseNumber(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}
