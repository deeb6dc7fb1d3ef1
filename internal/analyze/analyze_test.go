package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const competitorPage = `<!DOCTYPE html>
<html>
<body>
<nav>Home | Products | About</nav>
<article>
<h1>Best Running Shoes of the Year</h1>
<h2>Why Running Shoes Matter</h2>
<p>Running shoes with proper cushioning protect your joints. Good cushioning
also improves comfort over long marathon distances. Marathon runners at
Acme Corp recommend replacing running shoes every few hundred miles.
Acme Corp publishes a yearly durability report.</p>
<h3>Pricing</h3>
<p>Prices vary widely across brands.</p>
</article>
<footer>Copyright 2026</footer>
</body>
</html>`

func TestBuildCompetitorRecord_Success(t *testing.T) {
	record, err := BuildCompetitorRecord(competitorPage, "https://example.com/shoes", "running shoes")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/shoes", record.URL)
	assert.Equal(t, CountWords(record.Content), record.WordCount)
	assert.Greater(t, record.WordCount, 0)
	assert.Greater(t, record.KeywordDensity, 0.0)
	assert.Equal(t, 2, record.OptimizedHeadingCount)

	assert.NotContains(t, record.Content, "Copyright")
	assert.NotContains(t, record.Content, "Products | About")
}

func TestBuildCompetitorRecord_LSIKeywords(t *testing.T) {
	record, err := BuildCompetitorRecord(competitorPage, "https://example.com/shoes", "running shoes")
	require.NoError(t, err)

	keywords := map[string]int{}
	for _, lsi := range record.LSIKeywords {
		keywords[lsi.Keyword] = lsi.Frequency
		assert.NotEqual(t, "running", lsi.Keyword)
		assert.NotEqual(t, "shoes", lsi.Keyword)
		assert.Greater(t, lsi.Density, 0.0)
	}

	assert.Equal(t, 2, keywords["cushioning"])
	assert.Equal(t, 2, keywords["marathon"])
}

func TestBuildCompetitorRecord_Entities(t *testing.T) {
	record, err := BuildCompetitorRecord(competitorPage, "https://example.com/shoes", "running shoes")
	require.NoError(t, err)

	var acme *namedEntity
	for _, e := range record.Entities {
		if e.Text == "Acme Corp" {
			acme = &namedEntity{text: e.Text, kind: e.Type, frequency: e.Frequency}
		}
	}

	require.NotNil(t, acme)
	assert.Equal(t, EntityTypeOrganization, acme.kind)
	assert.Equal(t, 2, acme.frequency)
}

func TestBuildCompetitorRecord_EmptyKeyword(t *testing.T) {
	record, err := BuildCompetitorRecord(competitorPage, "https://example.com/shoes", "  ")

	assert.Nil(t, record)
	var analysisErr *Error
	require.ErrorAs(t, err, &analysisErr)
	assert.Contains(t, analysisErr.Message, "keyword is required")
}

func TestBuildCompetitorRecord_EmptyPage(t *testing.T) {
	record, err := BuildCompetitorRecord("<html><body></body></html>", "https://example.com/empty", "running shoes")

	assert.Nil(t, record)
	var analysisErr *Error
	require.ErrorAs(t, err, &analysisErr)
	assert.Contains(t, analysisErr.Message, "no extractable content")
}

func TestBuildCompetitorRecord_Deterministic(t *testing.T) {
	first, err := BuildCompetitorRecord(competitorPage, "https://example.com/shoes", "running shoes")
	require.NoError(t, err)
	second, err := BuildCompetitorRecord(competitorPage, "https://example.com/shoes", "running shoes")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildCompetitorRecord_DensityPrecision(t *testing.T) {
	// 1 phrase occurrence in a 3-word body must round to exactly 3 decimals.
	html := "<html><body><article><p>buy running shoes</p></article></body></html>"

	record, err := BuildCompetitorRecord(html, "https://example.com/tiny", "running shoes")
	require.NoError(t, err)

	assert.Equal(t, 33.333, record.KeywordDensity)
}
