package tip

import "github.com/guitarkeep/hub/internal/category"

// NA is returned for data types without a threshold
const NA = "NA"

const (
	HighRainfallOutside    = "High rainfall, consider closing window"
	HighTemperatureOutside = "High temperature outside, consider lowering temperature inside your rooms"
)

const (
	rainfall    = "rainfall"
	temperature = "temperature"
)

// Outcome labels which rule produced a tip
type Outcome string

const (
	OutcomeNA                 Outcome = "na"
	OutcomeLow                Outcome = "low"
	OutcomeHigh               Outcome = "high"
	OutcomeInRange            Outcome = "in_range"
	OutcomeRainfallOutside    Outcome = "rainfall_outside"
	OutcomeTemperatureOutside Outcome = "temperature_outside"
)

// Verdict is a tip together with the rule that produced it
type Verdict struct {
	Outcome Outcome
	Message string
}

// Classifier turns a reading into a short advice string. It holds no
// mutable state and is safe for concurrent use.
type Classifier struct {
	table Table
}

// NewClassifier creates a classifier over the given threshold table
func NewClassifier(table Table) *Classifier {
	return &Classifier{table: table}
}

// Classify compares value against the range of dataType. roomType and
// dataType are category identifiers.
func (c *Classifier) Classify(roomType, dataType string, value float64) string {
	return c.Evaluate(roomType, dataType, value).Message
}

// Evaluate is Classify with the matching rule attached
func (c *Classifier) Evaluate(roomType, dataType string, value float64) Verdict {
	r, ok := c.table.Lookup(dataType)
	if !ok {
		return Verdict{Outcome: OutcomeNA, Message: NA}
	}

	// Outside overrides win over the generic message.
	if roomType == category.OutsideID {
		if dataType == rainfall && value > 0.5 {
			return Verdict{Outcome: OutcomeRainfallOutside, Message: HighRainfallOutside}
		}
		if dataType == temperature && value > 28 {
			return Verdict{Outcome: OutcomeTemperatureOutside, Message: HighTemperatureOutside}
		}
	}

	switch {
	case value > r.Max:
		return Verdict{Outcome: OutcomeHigh, Message: dataType + " should be lower"}
	case value < r.Min:
		return Verdict{Outcome: OutcomeLow, Message: dataType + " should be higher"}
	default:
		return Verdict{Outcome: OutcomeInRange, Message: dataType + " is in the right range"}
	}
}
