package aggregation

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/aristath/fundfolio/internal/domain"
)

// Entry is one category total.
type Entry struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// ValuesBuilder accumulates a running total per category key. It does no
// weighting of its own; callers add values already scaled by fund weight.
type ValuesBuilder struct {
	index   map[string]int
	entries []Entry
}

// NewValuesBuilder returns an empty builder.
func NewValuesBuilder() *ValuesBuilder {
	return &ValuesBuilder{index: make(map[string]int)}
}

// Add adds v to the total for key, creating the key on first use.
func (b *ValuesBuilder) Add(key string, v float64) {
	if i, ok := b.index[key]; ok {
		b.entries[i].Value += v
		return
	}
	b.index[key] = len(b.entries)
	b.entries = append(b.entries, Entry{Key: key, Value: v})
}

// Build compiles the totals. With rank set, entries are ordered by value
// descending and ties keep insertion order; otherwise insertion order is kept.
// The builder is not affected and may keep accumulating.
func (b *ValuesBuilder) Build(rank bool) *Values {
	entries := make([]Entry, len(b.entries))
	copy(entries, b.entries)

	if rank {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Value > entries[j].Value
		})
	}

	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Key] = i
	}

	return &Values{entries: entries, index: index, ranked: rank}
}

// Values is a compiled, read-only set of category totals.
type Values struct {
	entries []Entry
	index   map[string]int
	ranked  bool
}

// EmptyValues returns a compiled set with no entries.
func EmptyValues() *Values {
	return NewValuesBuilder().Build(false)
}

// Get returns the total for key, or 0 when the key never received a value.
func (v *Values) Get(key string) float64 {
	if i, ok := v.index[key]; ok {
		return v.entries[i].Value
	}
	return 0
}

// Has reports whether key received any value.
func (v *Values) Has(key string) bool {
	_, ok := v.index[key]
	return ok
}

// At returns the i-th entry in compiled order.
func (v *Values) At(i int) (Entry, error) {
	if i < 0 || i >= len(v.entries) {
		return Entry{}, fmt.Errorf("%w: %d of %d", domain.ErrIndexOutOfRange, i, len(v.entries))
	}
	return v.entries[i], nil
}

// Size returns the number of keys.
func (v *Values) Size() int {
	return len(v.entries)
}

// IsEmpty reports whether no key received a value.
func (v *Values) IsEmpty() bool {
	return len(v.entries) == 0
}

// Ranked reports whether entries are ordered by value.
func (v *Values) Ranked() bool {
	return v.ranked
}

// Entries returns a copy of all entries in compiled order.
func (v *Values) Entries() []Entry {
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Keys returns all keys in compiled order.
func (v *Values) Keys() []string {
	keys := make([]string, len(v.entries))
	for i, e := range v.entries {
		keys[i] = e.Key
	}
	return keys
}

// Total returns the sum of all entries.
func (v *Values) Total() float64 {
	var total float64
	for _, e := range v.entries {
		total += e.Value
	}
	return total
}

// MarshalJSON encodes the entries as an ordered array.
func (v *Values) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.entries)
}

// UnmarshalJSON decodes an ordered array of entries. Order is kept as
// given; duplicate keys are summed.
func (v *Values) UnmarshalJSON(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	b := NewValuesBuilder()
	for _, e := range entries {
		b.Add(e.Key, e.Value)
	}
	*v = *b.Build(false)
	return nil
}
