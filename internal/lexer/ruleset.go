package lexer

import (
	"encoding/json"
	"fmt"
)

// RuleSet is an ordered list of (token type, regex) pairs loaded from a
// rules file. Order matters: it is preserved from the JSON array and
// drives Builder's descending-priority registration, so JSON object
// ordering (which Go's map-based unmarshalling would lose) is avoided
// in favor of an explicit array-of-pairs shape.
type RuleSet []RuleEntry

// RuleEntry is one named rule in a RuleSet. A Skip rule's matches are
// consumed by the tokenizer but never emitted.
type RuleEntry struct {
	Type    string `json:"type"`
	Pattern string `json:"pattern"`
	Skip    bool   `json:"skip,omitempty"`
}

// ParseRuleSet decodes a RuleSet from its JSON array-of-objects form,
// e.g. `[{"type":"WS","pattern":" +","skip":true},{"type":"IF","pattern":"if"}]`.
func ParseRuleSet(data []byte) (RuleSet, error) {
	var rules RuleSet
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing rule set: %w", err)
	}
	return rules, nil
}

// Build compiles the rule set into a Tokenizer over the given alphabet,
// registering rules in their declared order.
func (rs RuleSet) Build(alphabet []rune) (*Tokenizer, error) {
	b := NewBuilder(alphabet)
	for _, r := range rs {
		if r.Skip {
			b.Skip(r.Type, r.Pattern)
		} else {
			b.Add(r.Type, r.Pattern)
		}
	}
	return b.Build()
}
