// Package money formats integer pence amounts for display. All monetary
// arithmetic in the application is done on integer pence; this package is
// the only place a pound value is ever produced, and only as a string.
package money

import "fmt"

// Format renders integer pence as a sterling string, e.g. 3750 -> "£37.50".
func Format(pence int) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}
	return fmt.Sprintf("%s£%d.%02d", sign, pence/100, pence%100)
}
