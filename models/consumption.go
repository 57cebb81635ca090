package models

import "encoding/json"

// ConsumptionReport is the data consumption payload for one contract.
//
// Raw holds the exact bytes the server returned. The JSON output mode prints
// Raw rather than re-marshalling the struct, so fields this client does not
// model (and non-ASCII text) survive untouched.
type ConsumptionReport struct {
	Customer                    ConsumptionCustomer `json:"customer"`
	Passes                      []Pass              `json:"passes"`
	BookableDataPassesAvailable bool                `json:"bookableDataPassesAvailable"`

	Raw json.RawMessage `json:"-"`
}

// ConsumptionCustomer identifies the line the report belongs to.
type ConsumptionCustomer struct {
	MSISDN       string `json:"msisdn"`
	ContractType string `json:"contractType"`
}

// Pass is one usage bucket within a consumption report. Volumes come
// pre-formatted by the server in the customer's locale (e.g. "6,47 GB");
// the byte counters are exact.
type Pass struct {
	PassName              string `json:"passName"`
	Type                  string `json:"type"`
	UsedVolume            string `json:"usedVolume"`
	UsedBytes             int64  `json:"usedBytes"`
	InitialVolume         string `json:"initialVolume"`
	InitialVolumeBytes    int64  `json:"initialVolumeBytes"`
	PercentageConsumption int    `json:"percentageConsumption"`

	// ExpiryTimestamp is a millisecond Unix timestamp; 0 means the pass
	// does not expire.
	ExpiryTimestamp int64 `json:"expiryTimestamp"`
}
