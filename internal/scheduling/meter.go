package scheduling

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"shiftboard-backend/internal/database/models"
)

// MeterNamePrefix marks interchangeable meter stations. The comparison is
// exact and case-sensitive, trailing space included: "Meter 3" is a meter
// variant, "Meters" and "meter 3" are not.
const MeterNamePrefix = "Meter "

// MeterGroupName is the display name of the grouped catalog entry that
// stands for "any meter".
const MeterGroupName = "Meter"

// MeterGroupSentinel is the legacy placeholder id older clients submit in
// training sets for the grouped meter entry. It never refers to a real job
// function and must be filtered out before use.
const MeterGroupSentinel = "meter-group"

// IsMeterFunction reports whether a job function name denotes a meter
// variant.
func IsMeterFunction(name string) bool {
	return strings.HasPrefix(name, MeterNamePrefix)
}

// MeterNumber extracts the station number from a meter variant name.
// Returns 0, false for non-meter names or unparseable suffixes.
func MeterNumber(name string) (int, bool) {
	if !IsMeterFunction(name) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(name, MeterNamePrefix)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// GroupedJobFunction is a catalog entry for display: either a single job
// function or the one grouped "Meter" entry standing for all meter variants.
type GroupedJobFunction struct {
	models.JobFunction
	IsGroup          bool                 `json:"is_group"`
	IndividualMeters []models.JobFunction `json:"individual_meters,omitempty"`
}

// GroupCatalog collapses all meter variants in a catalog into a single
// grouped "Meter" entry carrying the variants, keeping every other function
// as-is. A standalone function literally named "Meter" is dropped so the
// grouped entry is not duplicated. Output is sorted by sort order.
func GroupCatalog(catalog []models.JobFunction) []GroupedJobFunction {
	var grouped []GroupedJobFunction
	var meters []models.JobFunction

	for _, jf := range catalog {
		switch {
		case IsMeterFunction(jf.Name):
			meters = append(meters, jf)
		case jf.Name == MeterGroupName:
			// superseded by the synthesized group entry
		default:
			grouped = append(grouped, GroupedJobFunction{JobFunction: jf})
		}
	}

	if len(meters) > 0 {
		group := GroupedJobFunction{
			JobFunction:      meters[0],
			IsGroup:          true,
			IndividualMeters: meters,
		}
		group.Name = MeterGroupName
		grouped = append(grouped, group)
	}

	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].SortOrder < grouped[j].SortOrder
	})
	return grouped
}

// MeterVariantIDs returns the ids of all meter variants in the catalog.
func MeterVariantIDs(catalog []models.JobFunction) []uuid.UUID {
	var ids []uuid.UUID
	for _, jf := range catalog {
		if IsMeterFunction(jf.Name) {
			ids = append(ids, jf.ID)
		}
	}
	return ids
}

// SanitizeTrainingIDs filters an incoming training set down to parseable,
// unique, non-sentinel job function ids, preserving first-seen order.
func SanitizeTrainingIDs(raw []string) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(raw))
	var out []uuid.UUID
	for _, s := range raw {
		if s == "" || s == MeterGroupSentinel {
			continue
		}
		id, err := uuid.Parse(s)
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
