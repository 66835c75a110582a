package entity

// SourceAccount is the raw on-disk account record as found under
// accounts/account-<id>.json in the source tree.
type SourceAccount struct {
	Type     string         `json:"type"`
	Fields   map[string]any `json:"fields"`
	Billing  string         `json:"billing"`
	Created  *string        `json:"created"`
	Policies []string       `json:"policies"`
}

// AccountData carries the account fields passed through to the platform.
type AccountData struct {
	ID           string         `json:"id"`
	AccountType  string         `json:"accountType"`
	Data         map[string]any `json:"data"`
	BillingLevel string         `json:"billingLevel"`
	CreatedAt    *string        `json:"createdAt"`
}

// AccountDocument is one element of the migration payload sent to the
// platform: the account itself plus every policy transformed under it.
type AccountDocument struct {
	AccountData      AccountData      `json:"accountData"`
	DefaultCreatedBy string           `json:"defaultCreatedBy"`
	Policies         []PolicyDocument `json:"policies"`
}
