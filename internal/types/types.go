package types

// Demand is the coarse desirability tier of an item.
type Demand string

const (
	DemandLow    Demand = "low"
	DemandMedium Demand = "medium"
	DemandHigh   Demand = "high"
	DemandInsane Demand = "insane"
)

// Source tags where a record's effective value/demand came from.
type Source string

const (
	SourceAuto   Source = "auto"
	SourceManual Source = "manual"
)

// ValuationRecord is the effective, currently-displayed state of one item.
// Keyed by lowercased name in the data store.
type ValuationRecord struct {
	Value  int64  `json:"value"`
	Demand Demand `json:"demand"`
	Icon   string `json:"icon"`
	Source Source `json:"source"`
}

// OverrideRecord is a sparse administrator patch. Nil means the field was
// never set, which is distinct from an explicit zero value.
type OverrideRecord struct {
	Value  *int64  `json:"value,omitempty"`
	Demand *Demand `json:"demand,omitempty"`
	Icon   *string `json:"icon,omitempty"`
}

// HasValueOrDemand reports whether the override patches the fields that
// decide a record's source tag.
func (o OverrideRecord) HasValueOrDemand() bool {
	return o.Value != nil || o.Demand != nil
}

// IsEmpty reports whether no field is set at all.
func (o OverrideRecord) IsEmpty() bool {
	return o.Value == nil && o.Demand == nil && o.Icon == nil
}

// AutoCandidate is one scraped item, produced fresh each cycle and never
// persisted directly.
type AutoCandidate struct {
	Value  int64
	Demand Demand
	Icon   string
}

// RawItem is one row as extracted from the external page, before
// normalization.
type RawItem struct {
	Name       string
	ValueText  string
	DemandText string
}

// Change describes one material reconciliation update for notification.
type Change struct {
	Name   string
	Value  int64
	Demand Demand
	Icon   string
	Source Source
}

// ChannelConfig holds the optional notification channel identifiers.
type ChannelConfig struct {
	TradeLogChannel *string `json:"tradeLogChannel"`
	AlertChannel    *string `json:"alertChannel"`
}

// MessageField is one labeled value inside an outbound message embed.
type MessageField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Message is a structured notification or command response embed.
type Message struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Fields      []MessageField `json:"fields,omitempty"`
	Color       int            `json:"color"`
	Footer      string         `json:"footer,omitempty"`
}
