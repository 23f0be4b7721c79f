package app

import "tonestats/internal/domain"

// Record is any satisfaction row carrying a group key and a count.
// Both PlatformSatisfaction (keyed by company) and CategorySatisfaction
// (keyed by category) satisfy it.
type Record interface {
	GroupKey() string
	Total() int64
}

// TopPerGroup reduces a flat record list to one record per distinct
// group key: the one with the maximum count. A later record replaces
// the current best only when its count is strictly greater, so on exact
// ties the first-seen record wins. Output order is the order in which
// each group's first winning update happened.
func TopPerGroup[R Record](records []R) []R {
	best := make(map[string]int, len(records))
	out := make([]R, 0, len(records))
	for _, r := range records {
		i, ok := best[r.GroupKey()]
		if !ok {
			best[r.GroupKey()] = len(out)
			out = append(out, r)
			continue
		}
		if r.Total() > out[i].Total() {
			out[i] = r
		}
	}
	return out
}

// BuildDetailMatrix produces a complete company x tone matrix from flat
// platform records. The group phase appends one ToneCount per input
// record to its company bucket without deduplicating, so duplicate
// (company, tone) input pairs pass through as-is. The completion phase
// creates empty buckets for companies absent from the input and appends
// a zero-count entry for every canonical tone a bucket is missing;
// presence is checked by tone only, ignoring counts. Companies come out
// in first-seen input order followed by canonical order for the
// zero-filled ones.
func BuildDetailMatrix(records []domain.PlatformSatisfaction, allCompanies, allTones []string) []domain.PlatformDetail {
	buckets := make(map[string][]domain.ToneCount, len(allCompanies))
	order := make([]string, 0, len(allCompanies))

	for _, r := range records {
		if _, ok := buckets[r.Company]; !ok {
			order = append(order, r.Company)
		}
		buckets[r.Company] = append(buckets[r.Company], domain.ToneCount{Tone: r.Tone, Count: r.Count})
	}

	for _, company := range allCompanies {
		if _, ok := buckets[company]; !ok {
			buckets[company] = nil
			order = append(order, company)
		}
	}

	out := make([]domain.PlatformDetail, 0, len(order))
	for _, company := range order {
		entries := buckets[company]
		for _, tone := range allTones {
			if !hasTone(entries, tone) {
				entries = append(entries, domain.ToneCount{Tone: tone, Count: 0})
			}
		}
		out = append(out, domain.PlatformDetail{Company: company, Tones: entries})
	}
	return out
}

func hasTone(entries []domain.ToneCount, tone string) bool {
	for _, e := range entries {
		if e.Tone == tone {
			return true
		}
	}
	return false
}
