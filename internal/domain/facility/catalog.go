package facility

import (
	"errors"
	"sort"
)

var (
	ErrFacilityNotFound = errors.New("facility not found")
	ErrOverlappingBands = errors.New("rate bands overlap")
	ErrNoBands          = errors.New("banded rate requires at least one band")
)

// PricingRule is either a FlatRate or a BandedRate. The sealed marker keeps
// cost computation exhaustive over the two variants.
type PricingRule interface {
	pricingRule()
}

// FlatRate charges a single hourly rate; partial hours prorate linearly.
type FlatRate struct {
	hourlyRateCents int64
}

func NewFlatRate(hourlyRateCents int64) (FlatRate, error) {
	if hourlyRateCents < 0 {
		return FlatRate{}, ErrNegativeRate
	}
	return FlatRate{hourlyRateCents: hourlyRateCents}, nil
}

func (FlatRate) pricingRule() {}

func (r FlatRate) HourlyRateCents() int64 {
	return r.hourlyRateCents
}

// BandedRate charges per daily time band. Hours outside every band rate zero.
type BandedRate struct {
	bands []Band
}

func NewBandedRate(bands ...Band) (BandedRate, error) {
	if len(bands) == 0 {
		return BandedRate{}, ErrNoBands
	}

	sorted := make([]Band, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].start < sorted[j].start
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].overlaps(sorted[i-1]) {
			return BandedRate{}, ErrOverlappingBands
		}
	}

	return BandedRate{bands: sorted}, nil
}

func (BandedRate) pricingRule() {}

func (r BandedRate) Bands() []Band {
	out := make([]Band, len(r.bands))
	copy(out, r.bands)
	return out
}

// RateForStep returns the hourly rate billed for one stepped hour covering
// [start, end). The step bills at the earliest band it reaches into, or 0
// when it touches no band. A step whose start sits inside a band always
// bills that band.
func (r BandedRate) RateForStep(start, end TimeOfDay) int64 {
	for _, b := range r.bands {
		if b.start < end && start < b.end {
			return b.hourlyRateCents
		}
	}
	return 0
}

type Facility struct {
	name string
	rule PricingRule
}

func NewFacility(name string, rule PricingRule) Facility {
	return Facility{name: name, rule: rule}
}

func (f Facility) Name() string {
	return f.name
}

func (f Facility) Rule() PricingRule {
	return f.rule
}

// Catalog is an immutable name -> pricing rule table, fixed at process start
// and injected into the booking engine.
type Catalog struct {
	facilities map[string]Facility
}

func NewCatalog(facilities ...Facility) Catalog {
	m := make(map[string]Facility, len(facilities))
	for _, f := range facilities {
		m[f.name] = f
	}
	return Catalog{facilities: m}
}

func (c Catalog) Lookup(name string) (Facility, error) {
	f, ok := c.facilities[name]
	if !ok {
		return Facility{}, ErrFacilityNotFound
	}
	return f, nil
}

func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.facilities))
	for name := range c.facilities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDefaultCatalog builds the catalog the service ships with: a banded
// Clubhouse and a flat-rate Tennis Court. Rates are in cents per hour.
func NewDefaultCatalog() Catalog {
	day, _ := NewBand(MustTimeOfDay("10:00"), MustTimeOfDay("16:00"), 10000)
	evening, _ := NewBand(MustTimeOfDay("16:00"), MustTimeOfDay("22:00"), 50000)
	clubhouse, _ := NewBandedRate(day, evening)
	tennis, _ := NewFlatRate(5000)

	return NewCatalog(
		NewFacility("Clubhouse", clubhouse),
		NewFacility("Tennis Court", tennis),
	)
}
