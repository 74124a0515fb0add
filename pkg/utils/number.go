package utils

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCurrency formata valores monetários com separador de milhar e duas casas: $1,234.50
func FormatCurrency(f float64) string {
	return "$" + humanize.FormatFloat("#,###.##", RoundWithTwoDecimalPlace(f))
}

// FormatThousands formata quantidades sem casas decimais: 1,235
func FormatThousands(f float64) string {
	if math.IsNaN(f) {
		return "0"
	}
	return humanize.Comma(int64(math.Round(f)))
}

// FormatCount formata contagens inteiras sem separador
func FormatCount(n int) string {
	return strconv.Itoa(n)
}

// FormatBytes formata tamanhos em memória
func FormatBytes(n uint64) string {
	return humanize.Bytes(n)
}
