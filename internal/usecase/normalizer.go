package usecase

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"propdraft/internal/domain/entities"

	"github.com/google/uuid"
)

// Raw payload shapes produced by the analysis collaborator. Counts and
// durations are kept as raw JSON because the model regularly ignores the
// "numbers only" instruction and answers with text like "5 pages".

type RawDeliverable struct {
	ID          string          `json:"id,omitempty"`
	Item        string          `json:"item"`
	Unit        string          `json:"unit"`
	Count       json.RawMessage `json:"count"`
	Description string          `json:"description"`
	UnitPrice   float64         `json:"unitPrice,omitempty"`
}

type RawTask struct {
	ID           string          `json:"id,omitempty"`
	Task         string          `json:"task"`
	Duration     json.RawMessage `json:"duration"`
	Dependencies []string        `json:"dependencies,omitempty"`
}

type RawPhase struct {
	ID        string   `json:"id,omitempty"`
	Phase     string   `json:"phase"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
	Tasks     []string `json:"tasks,omitempty"`
}

type scopeAnalysis struct {
	ScopeOfWork  string           `json:"scopeOfWork"`
	Deliverables []RawDeliverable `json:"deliverables"`
}

type fullProposal struct {
	ExecutiveSummary string     `json:"executiveSummary"`
	Requirements     []string   `json:"requirements"`
	WorkBreakdown    []RawTask  `json:"workBreakdown"`
	Timeline         []RawPhase `json:"timeline"`
}

var firstInt = regexp.MustCompile(`\d+`)

// NormalizeDeliverables coerces collaborator-supplied deliverables into the
// canonical shape: a stable id and a positive integer count.
//
// Count coercion is best-effort and never rejects: a numeric count below 1,
// the literal "multiple", or a string without digits all become 1. Callers
// must treat count=1 as "the model produced an unparseable value", not a
// confident answer. The function is idempotent over clean input.
func NormalizeDeliverables(raw []RawDeliverable) []entities.Deliverable {
	out := make([]entities.Deliverable, 0, len(raw))
	for _, r := range raw {
		d := entities.Deliverable{
			ID:          r.ID,
			Item:        strings.TrimSpace(r.Item),
			Unit:        strings.TrimSpace(r.Unit),
			Count:       coerceCount(r.Count),
			Description: strings.TrimSpace(r.Description),
			UnitPrice:   r.UnitPrice,
		}
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		out = append(out, d)
	}
	return out
}

func coerceCount(raw json.RawMessage) int {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 1 {
			return 1
		}
		return int(n)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 1
	}
	if strings.EqualFold(strings.TrimSpace(s), "multiple") {
		return 1
	}
	return extractInt(s, 1)
}

// NormalizeWorkBreakdown coerces collaborator-supplied tasks: durations like
// "2 weeks" become whole days, every task gets a stable id, and dependency
// strings are remapped onto the generated ids. Dependencies that still do
// not resolve are dropped; rejecting a whole generation pass over one
// hallucinated reference would discard otherwise good output.
func NormalizeWorkBreakdown(raw []RawTask) []entities.Task {
	idMap := make(map[string]string, len(raw))
	out := make([]entities.Task, 0, len(raw))
	for _, r := range raw {
		t := entities.Task{
			ID:       r.ID,
			Task:     strings.TrimSpace(r.Task),
			Duration: coerceDuration(r.Duration),
		}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if r.ID != "" {
			idMap[r.ID] = t.ID
		}
		idMap[t.Task] = t.ID
		t.Dependencies = r.Dependencies
		out = append(out, t)
	}

	known := make(map[string]bool, len(out))
	for _, t := range out {
		known[t.ID] = true
	}
	for i := range out {
		deps := out[i].Dependencies
		out[i].Dependencies = nil
		for _, dep := range deps {
			if mapped, ok := idMap[dep]; ok {
				dep = mapped
			}
			if known[dep] && dep != out[i].ID {
				out[i].Dependencies = append(out[i].Dependencies, dep)
			}
		}
	}
	return out
}

func coerceDuration(raw json.RawMessage) int {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 1 {
			return 1
		}
		return int(n)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 1
	}
	days := extractInt(s, 1)
	if strings.Contains(strings.ToLower(s), "week") {
		days *= 7
	}
	if days < 1 {
		days = 1
	}
	return days
}

// NormalizeTimeline converts collaborator-supplied phases, parsing dates and
// dropping task references that do not resolve against the given breakdown.
func NormalizeTimeline(raw []RawPhase, breakdown []entities.Task) []entities.Phase {
	known := make(map[string]bool, len(breakdown))
	byName := make(map[string]string, len(breakdown))
	for _, t := range breakdown {
		known[t.ID] = true
		byName[t.Task] = t.ID
	}

	out := make([]entities.Phase, 0, len(raw))
	for _, r := range raw {
		p := entities.Phase{
			ID:        r.ID,
			Phase:     strings.TrimSpace(r.Phase),
			StartDate: parseDate(r.StartDate),
			EndDate:   parseDate(r.EndDate),
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		for _, ref := range r.Tasks {
			if id, ok := byName[ref]; ok {
				ref = id
			}
			if known[ref] {
				p.Tasks = append(p.Tasks, ref)
			}
		}
		out = append(out, p)
	}
	return out
}

func extractInt(s string, def int) int {
	m := firstInt.FindString(s)
	if m == "" {
		return def
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// round2 rounds to 2 decimal places, the precision used for all derived
// currency amounts.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
