package app_test

import (
	"reflect"
	"testing"

	"tonestats/internal/app"
	"tonestats/internal/domain"
)

func plat(company, tone string, n int64) domain.PlatformSatisfaction {
	return domain.PlatformSatisfaction{Company: company, Tone: tone, Count: n}
}

func TestTopPerGroup_PicksMaxPerGroup(t *testing.T) {
	in := []domain.PlatformSatisfaction{
		plat("acme", "warm", 3),
		plat("acme", "witty", 7),
		plat("globex", "formal", 2),
		plat("acme", "plain", 5),
		plat("globex", "warm", 9),
	}
	got := app.TopPerGroup(in)
	want := []domain.PlatformSatisfaction{
		plat("acme", "witty", 7),
		plat("globex", "warm", 9),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTopPerGroup_TieKeepsFirstSeen(t *testing.T) {
	first := domain.CategorySatisfaction{Category: "shoes", Tone: "warm", Count: 5}
	second := domain.CategorySatisfaction{Category: "shoes", Tone: "witty", Count: 5}
	got := app.TopPerGroup([]domain.CategorySatisfaction{first, second})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0] != first {
		t.Fatalf("tie should keep first-seen record, got %+v", got[0])
	}
}

func TestTopPerGroup_Empty(t *testing.T) {
	if got := app.TopPerGroup([]domain.PlatformSatisfaction{}); len(got) != 0 {
		t.Fatalf("empty input should yield empty output, got %+v", got)
	}
}

func TestTopPerGroup_OneRecordPerGroupAndWinnerDominates(t *testing.T) {
	in := []domain.PlatformSatisfaction{
		plat("a", "x", 1), plat("b", "x", 4), plat("a", "y", 2),
		plat("b", "y", 4), plat("a", "z", 2), plat("c", "x", 0),
	}
	got := app.TopPerGroup(in)

	seen := map[string]int64{}
	for _, r := range got {
		if _, dup := seen[r.Company]; dup {
			t.Fatalf("duplicate group %q in output", r.Company)
		}
		seen[r.Company] = r.Count
	}
	for _, r := range in {
		if best, ok := seen[r.Company]; !ok || best < r.Count {
			t.Fatalf("winner for %q (%d) is below input count %d", r.Company, best, r.Count)
		}
	}
}

func TestBuildDetailMatrix_ZeroFill(t *testing.T) {
	got := app.BuildDetailMatrix(
		[]domain.PlatformSatisfaction{plat("A", "x", 3)},
		[]string{"A", "B"},
		[]string{"x", "y"},
	)
	want := []domain.PlatformDetail{
		{Company: "A", Tones: []domain.ToneCount{{Tone: "x", Count: 3}, {Tone: "y", Count: 0}}},
		{Company: "B", Tones: []domain.ToneCount{{Tone: "x", Count: 0}, {Tone: "y", Count: 0}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestBuildDetailMatrix_EveryCompanyComplete(t *testing.T) {
	companies := []string{"A", "B", "C"}
	tones := []string{"x", "y", "z"}
	in := []domain.PlatformSatisfaction{
		plat("B", "y", 2), plat("A", "x", 1), plat("B", "x", 4),
	}
	got := app.BuildDetailMatrix(in, companies, tones)
	if len(got) != len(companies) {
		t.Fatalf("expected %d rows, got %d", len(companies), len(got))
	}
	for _, d := range got {
		if len(d.Tones) < len(tones) {
			t.Fatalf("company %q has %d entries, want at least %d", d.Company, len(d.Tones), len(tones))
		}
		for _, tone := range tones {
			found := false
			for _, e := range d.Tones {
				if e.Tone == tone {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("company %q missing tone %q", d.Company, tone)
			}
		}
	}
}

// Duplicate (company, tone) input pairs pass through undeduplicated;
// zero-fill still covers genuinely missing tones.
func TestBuildDetailMatrix_DuplicatesPassThrough(t *testing.T) {
	got := app.BuildDetailMatrix(
		[]domain.PlatformSatisfaction{plat("A", "x", 3), plat("A", "x", 1)},
		[]string{"A"},
		[]string{"x", "y"},
	)
	want := []domain.PlatformDetail{
		{Company: "A", Tones: []domain.ToneCount{
			{Tone: "x", Count: 3}, {Tone: "x", Count: 1}, {Tone: "y", Count: 0},
		}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

// Re-running the builder over an already complete, duplicate-free
// result changes nothing. (Under duplicate-group input it appends
// again; that pass-through is the documented limitation.)
func TestBuildDetailMatrix_IdempotentOnCompleteInput(t *testing.T) {
	companies := []string{"A", "B"}
	tones := []string{"x", "y"}
	once := app.BuildDetailMatrix([]domain.PlatformSatisfaction{plat("A", "x", 3)}, companies, tones)

	var flat []domain.PlatformSatisfaction
	for _, d := range once {
		for _, e := range d.Tones {
			flat = append(flat, plat(d.Company, e.Tone, e.Count))
		}
	}
	twice := app.BuildDetailMatrix(flat, companies, tones)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second pass altered complete data:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestBuildDetailMatrix_EmptyInputStillFullMatrix(t *testing.T) {
	got := app.BuildDetailMatrix(nil, []string{"A", "B"}, []string{"x"})
	want := []domain.PlatformDetail{
		{Company: "A", Tones: []domain.ToneCount{{Tone: "x", Count: 0}}},
		{Company: "B", Tones: []domain.ToneCount{{Tone: "x", Count: 0}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
