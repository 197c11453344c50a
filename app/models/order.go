package models

import "strconv"

// AlexandriaAreas lists every neighbourhood the boutique delivers to.
// Delivery is Alexandria-only; the checkout city field is fixed.
var AlexandriaAreas = []string{
	"Agami", "Asafra", "Azarita", "Bahary", "Borg El Arab", "Camp Caesar",
	"Dekheila", "Gleem", "Ibrahemya", "Kafr Abdo", "King Mariout", "Laurent",
	"Maamoura", "Mahatet El Raml", "Mandara", "Mansheya", "Miami", "Moharam Bek",
	"Montaza", "Roushdy", "San Stefano", "Schutz", "Shatby", "Sidi Beshr",
	"Sidi Gaber", "Smouha", "Sporting", "Stanley", "Victoria", "Zizinia",
}

// ValidArea reports whether area is a known delivery neighbourhood.
func ValidArea(area string) bool {
	for _, a := range AlexandriaAreas {
		if a == area {
			return true
		}
	}
	return false
}

// CheckoutForm is the delivery form submitted at checkout.
type CheckoutForm struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Area    string `json:"area"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// Order statuses.
const (
	OrderStatusPending = "pending"
)

// Order is a confirmed checkout, persisted to the order history.
type Order struct {
	ID       int64        `json:"id"` // Unix milliseconds at placement
	Customer CheckoutForm `json:"customer"`
	Items    []Product    `json:"items"`
	Total    int          `json:"total"` // EGP
	Date     string       `json:"date"`
	Status   string       `json:"status"`
}

// FormatEGP renders an amount with thousands separators: 5000 → "5,000".
func FormatEGP(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
