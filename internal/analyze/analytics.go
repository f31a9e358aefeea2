package analyze

import (
	"regexp"
	"strconv"

	"kin/internal/graph"
)

// Report holds the aggregate statistics for one snapshot.
type Report struct {
	TotalPeople int

	WithBirthDate int
	WithDeathDate int
	WithSex       int
	BirthDatePct  float64
	DeathDatePct  float64
	SexPct        float64

	WithParents  int
	WithSpouses  int
	WithChildren int

	// OrphanedPeople counts people with no relationship edge of any kind,
	// incoming or outgoing.
	OrphanedPeople int

	EarliestYear int
	LatestYear   int
	YearSpan     int

	AverageCollectionSize float64
	LargestCollection     int
	SmallestCollection    int

	TopConnections []*Connection
}

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// YearOf extracts the first four-digit year from a free-form date string.
func YearOf(date string) (int, bool) {
	m := yearPattern.FindStringSubmatch(date)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}

// Analytics computes the report over the full node set plus the component,
// collection, and connection analyses. topN caps the cross-collection
// connections included; 0 means all.
func Analytics(g *graph.Graph, components []*Component, collections []*Collection, connections []*Connection, topN int) *Report {
	r := &Report{TotalPeople: g.Len()}

	// A person is connected if they declare any edge or any other person
	// declares an edge to them.
	connected := make(map[string]bool)

	for _, id := range g.IDs() {
		p, _ := g.Person(id)

		if p.Born != "" {
			r.WithBirthDate++
		}
		if p.Died != "" {
			r.WithDeathDate++
		}
		if p.Sex != "" && p.Sex != graph.SexUnknown {
			r.WithSex++
		}
		if len(p.ParentIDs()) > 0 {
			r.WithParents++
		}
		if len(p.Spouses) > 0 {
			r.WithSpouses++
		}
		if len(p.Children) > 0 {
			r.WithChildren++
		}

		if related := p.RelatedIDs(); len(related) > 0 {
			connected[id] = true
			for _, other := range related {
				connected[other] = true
			}
		}

		r.recordYears(p)
	}

	for _, id := range g.IDs() {
		if !connected[id] {
			r.OrphanedPeople++
		}
	}

	if r.TotalPeople > 0 {
		total := float64(r.TotalPeople)
		r.BirthDatePct = 100 * float64(r.WithBirthDate) / total
		r.DeathDatePct = 100 * float64(r.WithDeathDate) / total
		r.SexPct = 100 * float64(r.WithSex) / total
	}
	if r.EarliestYear > 0 && r.LatestYear > 0 {
		r.YearSpan = r.LatestYear - r.EarliestYear
	}

	// Collection-size statistics cover the union of detected components
	// and explicit user collections.
	var sizes []int
	for _, c := range components {
		sizes = append(sizes, c.Size())
	}
	for _, c := range collections {
		sizes = append(sizes, c.Size())
	}
	if len(sizes) > 0 {
		sum := 0
		r.LargestCollection = sizes[0]
		r.SmallestCollection = sizes[0]
		for _, s := range sizes {
			sum += s
			if s > r.LargestCollection {
				r.LargestCollection = s
			}
			if s < r.SmallestCollection {
				r.SmallestCollection = s
			}
		}
		r.AverageCollectionSize = float64(sum) / float64(len(sizes))
	}

	if topN > 0 && len(connections) > topN {
		connections = connections[:topN]
	}
	r.TopConnections = connections

	return r
}

func (r *Report) recordYears(p *graph.Person) {
	dates := []string{p.Born, p.Died}
	for _, s := range p.Spouses {
		dates = append(dates, s.Married, s.Divorced)
	}
	for _, d := range dates {
		year, ok := YearOf(d)
		if !ok {
			continue
		}
		if r.EarliestYear == 0 || year < r.EarliestYear {
			r.EarliestYear = year
		}
		if year > r.LatestYear {
			r.LatestYear = year
		}
	}
}
