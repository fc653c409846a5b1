package pricing

import (
	"math"
	"strconv"
	"strings"
)

// CurrencySymbol символ рупии в текстах предложений
const CurrencySymbol = "₹"

// FormatAmount форматирует сумму с индийской группировкой разрядов
// (1,00,000) и не более чем двумя знаками после запятой
func FormatAmount(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		return "0"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	return sign + groupIndian(intPart) + dotted(fracPart)
}

// FormatPercent форматирует процент без лишних нулей (12, 12.5)
func FormatPercent(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}

func dotted(frac string) string {
	if frac == "" {
		return ""
	}
	return "." + frac
}
