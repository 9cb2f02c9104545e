package valueobject

import (
	"fmt"
	"sort"
	"strings"
)

// ---------------------------------------------------------------------------
// Condition – typed offer condition tag
// ---------------------------------------------------------------------------

// Condition is a named restriction a lender attaches to an offer, used by
// the eligibility filter to exclude borrower/property combinations.
type Condition struct {
	value string
}

const (
	conditionExperiencedOnly = "experienced_only"
	conditionSlowProcessing  = "slow_processing"
	noPropertyPrefix         = "no_"
)

var (
	ConditionExperiencedOnly = Condition{value: conditionExperiencedOnly}
	ConditionSlowProcessing  = Condition{value: conditionSlowProcessing}
)

// NoPropertyType builds the exclusion condition for a property type,
// e.g. NoPropertyType("condo") == "no_condo".
func NoPropertyType(propertyType string) Condition {
	return Condition{value: noPropertyPrefix + strings.ToLower(strings.TrimSpace(propertyType))}
}

// NewCondition creates a Condition from a raw tag string. Known fixed tags
// and "no_<property>" exclusion tags are accepted.
func NewCondition(s string) (Condition, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	switch {
	case tag == conditionExperiencedOnly:
		return ConditionExperiencedOnly, nil
	case tag == conditionSlowProcessing:
		return ConditionSlowProcessing, nil
	case strings.HasPrefix(tag, noPropertyPrefix) && len(tag) > len(noPropertyPrefix):
		return Condition{value: tag}, nil
	default:
		return Condition{}, fmt.Errorf("invalid offer condition: %q", s)
	}
}

// String returns the tag string.
func (c Condition) String() string { return c.value }

// IsZero returns true if the condition has not been initialised.
func (c Condition) IsZero() bool { return c.value == "" }

// ---------------------------------------------------------------------------
// ConditionSet
// ---------------------------------------------------------------------------

// ConditionSet is an immutable set of offer conditions.
type ConditionSet struct {
	tags map[string]struct{}
}

// NewConditionSet builds a set from the given conditions.
func NewConditionSet(conditions ...Condition) ConditionSet {
	tags := make(map[string]struct{}, len(conditions))
	for _, c := range conditions {
		if !c.IsZero() {
			tags[c.value] = struct{}{}
		}
	}
	return ConditionSet{tags: tags}
}

// ParseConditionSet builds a set from raw tag strings, rejecting unknown tags.
func ParseConditionSet(raw []string) (ConditionSet, error) {
	conditions := make([]Condition, 0, len(raw))
	for _, s := range raw {
		c, err := NewCondition(s)
		if err != nil {
			return ConditionSet{}, err
		}
		conditions = append(conditions, c)
	}
	return NewConditionSet(conditions...), nil
}

// Has reports whether the set contains the given condition.
func (s ConditionSet) Has(c Condition) bool {
	_, ok := s.tags[c.value]
	return ok
}

// Len returns the number of conditions in the set.
func (s ConditionSet) Len() int { return len(s.tags) }

// Tags returns the sorted tag strings, for serialization and logging.
func (s ConditionSet) Tags() []string {
	out := make([]string, 0, len(s.tags))
	for tag := range s.tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
