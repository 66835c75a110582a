package entity

// SourcePolicy is the raw policy descriptor (policy.json). The ID is kept
// untyped because source systems emit it either as a number or a string.
type SourcePolicy struct {
	ID          any    `json:"id"`
	ProductName string `json:"productName"`
	Timezone    string `json:"timezone"`
	Currency    string `json:"currency"`
}

// SourceTerm is the raw term descriptor (term.json).
type SourceTerm struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// SourceTransaction is the raw transaction descriptor (tx_<n>.json).
type SourceTransaction struct {
	Type    string  `json:"type"`
	Created *string `json:"created"`
	Issued  *string `json:"issued"`
	Start   *string `json:"start"`
}

// RootElement is the identity shared by every segment of one policy.
// It is generated exactly once per policy, never per transaction.
type RootElement struct {
	ID          string `json:"id"`
	ElementType string `json:"elementType"`
}

// Segment types derived from the transaction type.
const (
	SegmentTypeGap      = "gap"
	SegmentTypeCoverage = "coverage"

	TransactionTypeCancellation = "cancellation"
)

// Fixed values imposed by the target format on every migrated policy.
const (
	BillingLevelInherit = "inherit"
	DurationBasisMonths = "months"
)

// Segment is the derived coverage metadata attached to a transaction.
type Segment struct {
	RootElement RootElement `json:"rootElement"`
	SegmentType string      `json:"segmentType"`
	StartTime   *string     `json:"startTime"`
}

// TransactionDocument is a transformed transaction.
type TransactionDocument struct {
	TransactionType string  `json:"transactionType"`
	CreatedAt       *string `json:"createdAt"`
	IssuedTime      *string `json:"issuedTime"`
	Segment         Segment `json:"segment"`
}

// TermDocument is a transformed coverage term.
type TermDocument struct {
	StartTime    *string               `json:"startTime"`
	EndTime      *string               `json:"endTime"`
	Transactions []TransactionDocument `json:"transactions"`
}

// PolicyDocument is a transformed policy. BillingLevel and DurationBasis are
// fixed by the target format; CreatedAt is the earliest createdAt among the
// policy's transactions, or null when none of them carries one.
type PolicyDocument struct {
	ID            string         `json:"id"`
	ProductName   string         `json:"productName"`
	Timezone      string         `json:"timezone"`
	Currency      string         `json:"currency"`
	BillingLevel  string         `json:"billingLevel"`
	DurationBasis string         `json:"durationBasis"`
	CreatedAt     *string        `json:"createdAt"`
	Terms         []TermDocument `json:"terms"`
}
