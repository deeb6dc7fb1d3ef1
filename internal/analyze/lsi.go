package analyze

import "sort"

// maxRecordLSIKeywords caps how many co-occurring terms a single competitor
// record reports.
const maxRecordLSIKeywords = 10

// minLSIFrequency is the minimum number of occurrences for a term to count as
// a semantically related keyword rather than incidental vocabulary.
const minLSIFrequency = 2

// minLSITokenLength filters out short function words the stopword list misses.
const minLSITokenLength = 3

var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "has": true,
	"have": true, "had": true, "was": true, "were": true, "will": true,
	"with": true, "this": true, "that": true, "these": true, "those": true,
	"from": true, "they": true, "their": true, "them": true, "then": true,
	"than": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "who": true, "whom": true, "why": true, "how": true,
	"your": true, "yours": true, "our": true, "ours": true, "its": true,
	"his": true, "her": true, "hers": true, "she": true, "him": true,
	"been": true, "being": true, "does": true, "did": true, "doing": true,
	"would": true, "could": true, "should": true, "might": true, "must": true,
	"shall": true, "may": true, "into": true, "onto": true, "over": true,
	"under": true, "about": true, "above": true, "below": true, "between": true,
	"through": true, "during": true, "before": true, "after": true,
	"more": true, "most": true, "some": true, "such": true, "only": true,
	"other": true, "same": true, "also": true, "just": true, "very": true,
	"each": true, "any": true, "both": true, "few": true, "own": true,
	"out": true, "off": true, "too": true, "here": true, "there": true,
	"again": true, "once": true, "because": true, "against": true,
	"get": true, "got": true, "one": true, "two": true, "like": true,
	"make": true, "made": true, "use": true, "used": true, "using": true,
	"way": true, "well": true, "even": true, "much": true, "many": true,
	"still": true, "back": true, "see": true, "need": true, "want": true,
}

// extractLSIKeywords finds the most frequent content words co-occurring with
// the target keyword in a competitor page. The target keyword's own tokens
// are excluded so the list carries only related vocabulary.
type lsiTerm struct {
	keyword   string
	frequency int
}

func extractLSIKeywords(text, keyword string) []lsiTerm {
	keywordTokens := map[string]bool{}
	for _, token := range tokenize(keyword) {
		keywordTokens[token] = true
	}

	totalWords := CountWords(text)
	if totalWords == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, token := range tokenize(text) {
		if len(token) < minLSITokenLength || stopwords[token] || keywordTokens[token] {
			continue
		}
		counts[token]++
	}

	terms := make([]lsiTerm, 0, len(counts))
	for term, freq := range counts {
		if freq >= minLSIFrequency {
			terms = append(terms, lsiTerm{keyword: term, frequency: freq})
		}
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].frequency != terms[j].frequency {
			return terms[i].frequency > terms[j].frequency
		}
		return terms[i].keyword < terms[j].keyword
	})

	if len(terms) > maxRecordLSIKeywords {
		terms = terms[:maxRecordLSIKeywords]
	}
	return terms
}
