package domain

// CatalogEntry is one row of the shop's fixed price list. Prices are held
// in integer pence; the per-night rate applies to the first night in full
// and to each additional night at half rate.
type CatalogEntry struct {
	Code       string `json:"code" yaml:"code"`
	Name       string `json:"name" yaml:"name"`
	DailyPence int    `json:"daily_pence" yaml:"daily_pence"`
}
