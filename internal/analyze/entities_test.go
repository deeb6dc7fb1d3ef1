package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyEntity(t *testing.T) {
	assert.Equal(t, EntityTypeOrganization, classifyEntity("Acme Corp"))
	assert.Equal(t, EntityTypeOrganization, classifyEntity("University of Chicago"))
	assert.Equal(t, EntityTypeLocation, classifyEntity("Silicon Valley"))
	assert.Equal(t, EntityTypeLocation, classifyEntity("United States"))
	assert.Equal(t, EntityTypePerson, classifyEntity("John Smith"))
	assert.Equal(t, EntityTypeOther, classifyEntity("Thanksgiving"))
}

func TestExtractEntities_CountsRepeatedMentions(t *testing.T) {
	text := "John Smith reviewed the shoes. John Smith liked them. " +
		"Acme Corp manufactured them in Silicon Valley."

	entities := extractEntities(text)

	byText := map[string]namedEntity{}
	for _, e := range entities {
		byText[e.text] = e
	}

	require.Contains(t, byText, "John Smith")
	assert.Equal(t, 2, byText["John Smith"].frequency)
	assert.Equal(t, EntityTypePerson, byText["John Smith"].kind)

	require.Contains(t, byText, "Acme Corp")
	assert.Equal(t, EntityTypeOrganization, byText["Acme Corp"].kind)

	require.Contains(t, byText, "Silicon Valley")
	assert.Equal(t, EntityTypeLocation, byText["Silicon Valley"].kind)
}

func TestExtractEntities_SkipsSentenceStarts(t *testing.T) {
	text := "The product is good. And so is the service. But not the price."

	entities := extractEntities(text)

	for _, e := range entities {
		assert.NotEqual(t, "The", e.text)
		assert.NotEqual(t, "And", e.text)
		assert.NotEqual(t, "But", e.text)
	}
}

func TestExtractEntities_SortedByFrequency(t *testing.T) {
	text := "Acme Corp leads the market. Acme Corp ships fast. Acme Corp wins. " +
		"John Smith disagrees."

	entities := extractEntities(text)

	require.NotEmpty(t, entities)
	assert.Equal(t, "Acme Corp", entities[0].text)
	for i := 1; i < len(entities); i++ {
		assert.GreaterOrEqual(t, entities[i-1].frequency, entities[i].frequency)
	}
}
