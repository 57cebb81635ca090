package models

// Contract is a single mobile contract record as returned by the carrier.
// Only ID is inspected by the client (to address the consumption endpoint);
// the remaining fields are carried through for display and raw output.
type Contract struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customerId"`
	ContractType string `json:"contractType"`
	Status       string `json:"status"`
	MSISDN       string `json:"msisdn"`
}
