package monetary

import (
	"fmt"
	"sort"
	"time"

	"github.com/govalues/decimal"
	"github.com/hashicorp/go-multierror"
)

// cutover is a rounding that applies to instants strictly after at.
type cutover struct {
	at       time.Time
	rounding Rounding
}

// schedule holds the roundings of one currency in one table.
// Cutovers are sorted by instant in ascending order.
type schedule struct {
	base     Rounding
	cutovers []cutover
}

// resolve returns the rounding of the latest cutover strictly before t,
// falling back to the base rounding.
func (s *schedule) resolve(t time.Time) (Rounding, bool) {
	i := sort.Search(len(s.cutovers), func(i int) bool {
		return !s.cutovers[i].at.Before(t)
	})
	if i > 0 {
		return s.cutovers[i-1].rounding, true
	}
	return s.base, !s.base.IsZero()
}

// RoundingRegistry resolves roundings by currency, by currency and instant,
// or by custom id.
// A missing rounding is reported by a false result, never by an error.
//
// RoundingRegistry is created by [RoundingBuilder.Build], owns its tables
// and is never modified afterwards, so it is safe for concurrent use by
// multiple goroutines.
type RoundingRegistry struct {
	standard map[Currency]*schedule
	cash     map[Currency]*schedule
	custom   map[string]Rounding
	ids      []string
}

// StandardRounding returns the standard rounding of the currency.
func (g *RoundingRegistry) StandardRounding(c Currency) (Rounding, bool) {
	return baseOf(g.standard, c)
}

// StandardRoundingAt returns the standard rounding of the currency in effect at t.
// If a cutover of the currency lies strictly before t, the rounding registered
// for the latest such cutover is returned; otherwise the result is the same
// as for [RoundingRegistry.StandardRounding].
func (g *RoundingRegistry) StandardRoundingAt(c Currency, t time.Time) (Rounding, bool) {
	return resolveAt(g.standard, c, t)
}

// CashRounding returns the cash rounding of the currency.
func (g *RoundingRegistry) CashRounding(c Currency) (Rounding, bool) {
	return baseOf(g.cash, c)
}

// CashRoundingAt returns the cash rounding of the currency in effect at t.
// See [RoundingRegistry.StandardRoundingAt] for the cutover rules.
func (g *RoundingRegistry) CashRoundingAt(c Currency, t time.Time) (Rounding, bool) {
	return resolveAt(g.cash, c, t)
}

// CustomRounding returns the rounding registered under the given id.
func (g *RoundingRegistry) CustomRounding(id string) (Rounding, bool) {
	r, ok := g.custom[id]
	return r, ok
}

// CustomRoundingIDs returns the sorted ids of all custom roundings.
// The returned slice is a copy and may be modified by the caller.
func (g *RoundingRegistry) CustomRoundingIDs() []string {
	ids := make([]string, len(g.ids))
	copy(ids, g.ids)
	return ids
}

func baseOf(table map[Currency]*schedule, c Currency) (Rounding, bool) {
	s, ok := table[c]
	if !ok || s.base.IsZero() {
		return Rounding{}, false
	}
	return s.base, true
}

func resolveAt(table map[Currency]*schedule, c Currency, t time.Time) (Rounding, bool) {
	s, ok := table[c]
	if !ok {
		return Rounding{}, false
	}
	return s.resolve(t)
}

// RoundingBuilder collects roundings for a [RoundingRegistry].
// Registration problems are collected and reported together by
// [RoundingBuilder.Build].
// RoundingBuilder is not safe for concurrent use.
type RoundingBuilder struct {
	standard map[Currency]*schedule
	cash     map[Currency]*schedule
	custom   map[string]Rounding
	errs     *multierror.Error
}

// NewRoundingBuilder returns an empty builder.
func NewRoundingBuilder() *RoundingBuilder {
	return &RoundingBuilder{
		standard: make(map[Currency]*schedule),
		cash:     make(map[Currency]*schedule),
		custom:   make(map[string]Rounding),
	}
}

// Standard registers the base standard rounding of the currency.
func (b *RoundingBuilder) Standard(c Currency, r Rounding) *RoundingBuilder {
	b.setBase(b.standard, StandardRounding, c, r)
	return b
}

// StandardAfter registers the standard rounding of the currency for
// instants strictly after the cutover.
func (b *RoundingBuilder) StandardAfter(c Currency, at time.Time, r Rounding) *RoundingBuilder {
	b.addCutover(b.standard, StandardRounding, c, at, r)
	return b
}

// Cash registers the base cash rounding of the currency.
func (b *RoundingBuilder) Cash(c Currency, r Rounding) *RoundingBuilder {
	b.setBase(b.cash, CashRounding, c, r)
	return b
}

// CashAfter registers the cash rounding of the currency for instants
// strictly after the cutover.
func (b *RoundingBuilder) CashAfter(c Currency, at time.Time, r Rounding) *RoundingBuilder {
	b.addCutover(b.cash, CashRounding, c, at, r)
	return b
}

// Custom registers a rounding under the given id.
func (b *RoundingBuilder) Custom(id string, r Rounding) *RoundingBuilder {
	switch _, dup := b.custom[id]; {
	case id == "":
		b.errs = multierror.Append(b.errs, fmt.Errorf("custom rounding: empty id"))
	case r.IsZero():
		b.errs = multierror.Append(b.errs, fmt.Errorf("custom rounding %q: %w", id, errInvalidRounding))
	case dup:
		b.errs = multierror.Append(b.errs, fmt.Errorf("custom rounding %q: duplicate id", id))
	default:
		b.custom[id] = r.tag(CustomRounding, id)
	}
	return b
}

func (b *RoundingBuilder) scheduleOf(table map[Currency]*schedule, c Currency) *schedule {
	s, ok := table[c]
	if !ok {
		s = &schedule{}
		table[c] = s
	}
	return s
}

func (b *RoundingBuilder) setBase(table map[Currency]*schedule, k RoundingKind, c Currency, r Rounding) {
	if r.IsZero() {
		b.errs = multierror.Append(b.errs, fmt.Errorf("%v rounding of %v: %w", k, c, errInvalidRounding))
		return
	}
	s := b.scheduleOf(table, c)
	if !s.base.IsZero() {
		b.errs = multierror.Append(b.errs, fmt.Errorf("%v rounding of %v: duplicate registration", k, c))
		return
	}
	s.base = r.tag(k, "")
}

func (b *RoundingBuilder) addCutover(table map[Currency]*schedule, k RoundingKind, c Currency, at time.Time, r Rounding) {
	if r.IsZero() {
		b.errs = multierror.Append(b.errs, fmt.Errorf("%v rounding of %v after %v: %w", k, c, at, errInvalidRounding))
		return
	}
	s := b.scheduleOf(table, c)
	for _, co := range s.cutovers {
		if co.at.Equal(at) {
			b.errs = multierror.Append(b.errs, fmt.Errorf("%v rounding of %v after %v: duplicate cutover", k, c, at))
			return
		}
	}
	s.cutovers = append(s.cutovers, cutover{at: at, rounding: r.tag(k, "")})
}

// Build returns a registry holding a copy of the registered roundings.
// Build returns an error listing every invalid registration.
// The builder may be used again afterwards; later registrations do not
// affect registries that were already built.
func (b *RoundingBuilder) Build() (*RoundingRegistry, error) {
	if err := b.errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("building rounding registry: %w", err)
	}
	custom := make(map[string]Rounding, len(b.custom))
	ids := make([]string, 0, len(b.custom))
	for id, r := range b.custom {
		custom[id] = r
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return &RoundingRegistry{
		standard: copyTable(b.standard),
		cash:     copyTable(b.cash),
		custom:   custom,
		ids:      ids,
	}, nil
}

// copyTable returns a deep copy of table with cutovers sorted by instant.
func copyTable(table map[Currency]*schedule) map[Currency]*schedule {
	res := make(map[Currency]*schedule, len(table))
	for c, s := range table {
		cutovers := make([]cutover, len(s.cutovers))
		copy(cutovers, s.cutovers)
		sort.Slice(cutovers, func(i, j int) bool {
			return cutovers[i].at.Before(cutovers[j].at)
		})
		res[c] = &schedule{base: s.base, cutovers: cutovers}
	}
	return res
}

// MustBuild is like [RoundingBuilder.Build] but panics on invalid registrations.
func (b *RoundingBuilder) MustBuild() *RoundingRegistry {
	g, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("Build() failed: %v", err))
	}
	return g
}

// sekCashCutover is the end of 30 September 2010 in Stockholm, after which
// the 50 öre coin was no longer legal tender.
var sekCashCutover = time.Date(2010, time.September, 30, 22, 0, 0, 0, time.UTC)

var defaultRegistry = newDefaultRoundingRegistry()

func newDefaultRoundingRegistry() *RoundingRegistry {
	b := NewRoundingBuilder()
	for c := range codeLookup {
		if Currency(c) == XXX {
			continue
		}
		b.Standard(Currency(c), NewMinorRounding(Currency(c).Scale()))
	}
	b.Cash(CHF, CHFCashRounding())
	b.Cash(SEK, MustNewCashRounding(2, decimal.MustNew(50, 2), decimal.MustNew(25, 2)))
	b.CashAfter(SEK, sekCashCutover, MustNewCashRounding(2, decimal.MustNew(1, 0), decimal.MustNew(50, 2)))
	b.Custom("CHF-cash", CHFCashRounding())
	return b.MustBuild()
}

// DefaultRoundingRegistry returns the shared registry with:
//   - a half-up standard rounding to the minor unit of every known currency
//     except [XXX];
//   - the cash rounding of [CHF] to multiples of 0.05, see [CHFCashRounding];
//   - the cash rounding of [SEK] to multiples of 0.50, replaced by rounding
//     to whole kronor for instants after 30 September 2010 (Stockholm time);
//   - the custom rounding "CHF-cash", equal to the CHF cash rounding.
func DefaultRoundingRegistry() *RoundingRegistry {
	return defaultRegistry
}
