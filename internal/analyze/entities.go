package analyze

import (
	"regexp"
	"sort"
	"strings"
)

// maxRecordEntities caps how many named entities a single competitor record
// reports.
const maxRecordEntities = 15

// Entity type labels shared with the aggregation layer.
const (
	EntityTypePerson       = "person"
	EntityTypeOrganization = "organization"
	EntityTypeLocation     = "location"
	EntityTypeOther        = "other"
)

// entityPattern matches runs of capitalized words, the usual shape of proper
// nouns in English prose.
var entityPattern = regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:\s+(?:of|the|and)?\s*[A-Z][a-zA-Z]+)*\b`)

var organizationSuffixes = []string{
	"Inc", "Corp", "Corporation", "LLC", "Ltd", "Company", "Group",
	"Technologies", "Labs", "Institute", "University", "Association",
	"Foundation", "Agency", "Council", "Committee", "Society",
}

var locationMarkers = []string{
	"City", "County", "Valley", "Island", "Lake", "Mountain", "River",
	"Park", "Street", "Avenue", "States", "Republic", "Kingdom", "Coast",
	"Bay", "Beach",
}

type namedEntity struct {
	text      string
	kind      string
	frequency int
}

// extractEntities pulls proper-noun mentions out of page text and classifies
// them heuristically. This is deliberately lightweight pattern matching, not
// a statistical NER model, matching how ranking pages reference people,
// organizations, and places by name.
func extractEntities(text string) []namedEntity {
	counts := make(map[string]int)
	for _, match := range entityPattern.FindAllString(text, -1) {
		match = strings.TrimSpace(match)
		// Single short capitalized words are mostly sentence starts.
		if !strings.Contains(match, " ") && len(match) < 4 {
			continue
		}
		counts[match]++
	}

	entities := make([]namedEntity, 0, len(counts))
	for entityText, freq := range counts {
		if freq < 2 && !strings.Contains(entityText, " ") {
			continue
		}
		entities = append(entities, namedEntity{
			text:      entityText,
			kind:      classifyEntity(entityText),
			frequency: freq,
		})
	}

	sort.Slice(entities, func(i, j int) bool {
		if entities[i].frequency != entities[j].frequency {
			return entities[i].frequency > entities[j].frequency
		}
		return entities[i].text < entities[j].text
	})

	if len(entities) > maxRecordEntities {
		entities = entities[:maxRecordEntities]
	}
	return entities
}

func classifyEntity(text string) string {
	words := strings.Fields(text)

	for _, word := range words {
		for _, suffix := range organizationSuffixes {
			if word == suffix {
				return EntityTypeOrganization
			}
		}
	}
	for _, word := range words {
		for _, marker := range locationMarkers {
			if word == marker {
				return EntityTypeLocation
			}
		}
	}
	// Two or three capitalized words with no organizational or geographic
	// marker most often name a person.
	if len(words) == 2 || len(words) == 3 {
		return EntityTypePerson
	}
	return EntityTypeOther
}
