package domain

// Customer is the validated customer header captured when a hire is entered.
type Customer struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	HouseNo   string `json:"house_no"`
	Postcode  string `json:"postcode"`
	CardLast4 string `json:"card_last4"`
}

// LineItem is one priced equipment line of a hire. All monetary fields are
// integer pence and are derived once from the catalog entry, quantity,
// nights and on-time flag; a line is never recalculated after creation.
type LineItem struct {
	Code                  string `json:"code"`
	Name                  string `json:"name"`
	Quantity              int    `json:"quantity"`
	DailyPence            int    `json:"daily_pence"`
	FirstNightPence       int    `json:"first_night_pence"`
	AdditionalNightsPence int    `json:"additional_nights_pence"`
	LateReturnPence       int    `json:"late_return_pence"`
	LineTotalPence        int    `json:"line_total_pence"`
}

// HireRecord is one finalized hire transaction. Records are immutable once
// saved to the ledger; a saved transaction cannot be altered afterwards.
type HireRecord struct {
	CustomerID       int        `json:"customer_id"`
	Reference        string     `json:"reference"`
	Customer         Customer   `json:"customer"`
	Nights           int        `json:"nights"`
	ReturnedOnTime   bool       `json:"returned_on_time"`
	Lines            []LineItem `json:"lines"`
	TotalPence       int        `json:"total_pence"`
	LateReturnPence  int        `json:"late_return_pence"`
	EquipmentSummary string     `json:"equipment_summary"`
}
