package docpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationships_NextRelationshipID(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{name: "empty", ids: nil, want: "rId1"},
		{name: "sequential", ids: []string{"rId1", "rId2"}, want: "rId3"},
		{name: "gaps not filled", ids: []string{"rId1", "rId7"}, want: "rId8"},
		{name: "foreign ids ignored", ids: []string{"link3", "rId2"}, want: "rId3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rels := newRelationships()
			for _, id := range tt.ids {
				rels.Relationship = append(rels.Relationship, Relationship{ID: id})
			}
			assert.Equal(t, tt.want, rels.nextRelationshipID())
		})
	}
}

func TestRelationships_Add(t *testing.T) {
	rels := newRelationships()
	rel := rels.Add(RTStyles, "styles.xml")

	assert.Equal(t, "rId1", rel.ID)
	assert.Equal(t, string(RTStyles), rel.Type)
	assert.Equal(t, "styles.xml", rel.Target)

	found := rels.FindByType(RTStyles)
	require.NotNil(t, found)
	assert.Equal(t, rel.ID, found.ID)
	assert.Nil(t, rels.FindByType(RTNumbering))
}

func TestRelationships_MarshalParse(t *testing.T) {
	rels := newRelationships()
	rels.Add(RTStyles, "styles.xml")
	rels.Add(RTFooter, "footer1.xml")

	blob, err := rels.Marshal()
	require.NoError(t, err)

	parsed, err := parseRelationships(blob)
	require.NoError(t, err)
	require.Len(t, parsed.Relationship, 2)
	assert.NotNil(t, parsed.FindByID("rId2"))
	assert.Equal(t, "footer1.xml", parsed.FindByType(RTFooter).Target)
}

func TestResolveTarget(t *testing.T) {
	assert.Equal(t, "word/styles.xml", resolveTarget("word/document.xml", "styles.xml"))
	assert.Equal(t, "word/document.xml", resolveTarget("", "word/document.xml"))
	assert.Equal(t, "docProps/core.xml", resolveTarget("word/document.xml", "../docProps/core.xml"))
	assert.Equal(t, "word/media/image1.png", resolveTarget("word/document.xml", "media/image1.png"))
}

func TestRelativeTarget(t *testing.T) {
	assert.Equal(t, "styles.xml", relativeTarget("word/document.xml", "word/styles.xml"))
	assert.Equal(t, "word/document.xml", relativeTarget("", "word/document.xml"))
	assert.Equal(t, "../docProps/core.xml", relativeTarget("word/document.xml", "docProps/core.xml"))
}

func TestRelsPartName(t *testing.T) {
	assert.Equal(t, "_rels/.rels", relsPartName(""))
	assert.Equal(t, "word/_rels/document.xml.rels", relsPartName("word/document.xml"))
	assert.Equal(t, "_rels/top.xml.rels", relsPartName("top.xml"))

	source, ok := relsSourceName("word/_rels/footer1.xml.rels")
	require.True(t, ok)
	assert.Equal(t, "word/footer1.xml", source)

	source, ok = relsSourceName("_rels/.rels")
	require.True(t, ok)
	assert.Equal(t, "", source)

	_, ok = relsSourceName("word/styles.xml")
	assert.False(t, ok)
}
