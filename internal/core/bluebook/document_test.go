package bluebook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "year and month", filename: "2023_07.pdf", want: "July 2023, RIDOT Bluebook"},
		{name: "unknown month", filename: "2023_13.pdf", want: "Unknown 2023, RIDOT Bluebook"},
		{name: "no separator", filename: "manual.pdf", want: "manual.pdf"},
		{name: "too many parts", filename: "2023_07_rev.pdf", want: "2023_07_rev.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.filename))
		})
	}
}

func TestDocumentEntry_Label(t *testing.T) {
	assert.Equal(t, "Custom", DocumentEntry{Filename: "2023_07.pdf", Display: "Custom"}.Label())
	assert.Equal(t, "July 2023, RIDOT Bluebook", DocumentEntry{Filename: "2023_07.pdf"}.Label())
}

func TestParseGranularity(t *testing.T) {
	g, err := ParseGranularity(" Section ")
	require.NoError(t, err)
	assert.Equal(t, GranularitySection, g)

	_, err = ParseGranularity("chapter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chapter")
}

func TestGranularity_Depth(t *testing.T) {
	assert.Equal(t, 1, GranularityPart.Depth())
	assert.Equal(t, 2, GranularitySection.Depth())
	assert.Equal(t, 3, GranularitySubsection.Depth())
	assert.Equal(t, 0, Granularity("").Depth())
}

func TestViewPath(t *testing.T) {
	assert.Equal(t, "/view_pdf/manual.pdf?page=10", ViewPath("manual.pdf", 10))
	assert.Equal(t, "/view_pdf/my%20manual.pdf?page=3", ViewPath("my manual.pdf", 3))
}

func TestDocumentStructure_DecodesServerPayload(t *testing.T) {
	payload := `{
		"parts": [{"title": "Part M - Materials", "page": 700}],
		"sections": {
			"Part M - Materials": [
				{"title": "SECTION M19", "page": 872, "subsections": [
					{"title": "M19.01 APPROVED PRODUCTS", "page_number": 873}
				]}
			]
		}
	}`

	var doc DocumentStructure
	require.NoError(t, json.Unmarshal([]byte(payload), &doc))

	require.Len(t, doc.Parts, 1)
	sections := doc.SectionsOf("Part M - Materials")
	require.Len(t, sections, 1)
	assert.Equal(t, 872, sections[0].Page)
	require.Len(t, sections[0].Subsections, 1)
	assert.Equal(t, 873, sections[0].Subsections[0].PageNumber)

	assert.Empty(t, doc.SectionsOf("Part Z"))
	assert.Empty(t, DocumentStructure{}.SectionsOf("anything"))
}
