package docpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestStyles(t *testing.T) *Styles {
	t.Helper()
	styles, err := parseStyles([]byte(testStylesXML))
	require.NoError(t, err)
	return styles
}

func TestParseStyles(t *testing.T) {
	styles := parseTestStyles(t)
	require.Len(t, styles.Styles, 5)

	heading := styles.ByID("Heading1")
	require.NotNil(t, heading)
	assert.Equal(t, StyleTypeParagraph, heading.Type)
	assert.Equal(t, "Heading 1", heading.Name())
	assert.False(t, heading.IsDefault())

	normal := styles.ByID("Normal")
	require.NotNil(t, normal)
	assert.True(t, normal.IsDefault())
}

func TestStyles_DefaultFor(t *testing.T) {
	styles := parseTestStyles(t)

	def := styles.DefaultFor(StyleTypeParagraph)
	require.NotNil(t, def)
	assert.Equal(t, "Normal", def.StyleID)

	def = styles.DefaultFor(StyleTypeCharacter)
	require.NotNil(t, def)
	assert.Equal(t, "DefaultParagraphFont", def.StyleID)

	assert.Nil(t, styles.DefaultFor(StyleTypeNumbering))
}

func TestStyles_GetByID(t *testing.T) {
	styles := parseTestStyles(t)

	tests := []struct {
		name      string
		styleID   string
		styleType StyleType
		want      string
	}{
		{name: "match", styleID: "Heading1", styleType: StyleTypeParagraph, want: "Heading1"},
		{name: "empty id falls back", styleID: "", styleType: StyleTypeParagraph, want: "Normal"},
		{name: "unknown id falls back", styleID: "bogus-id", styleType: StyleTypeParagraph, want: "Normal"},
		{name: "wrong type falls back", styleID: "Strong", styleType: StyleTypeParagraph, want: "Normal"},
		{name: "character default", styleID: "", styleType: StyleTypeCharacter, want: "DefaultParagraphFont"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := styles.GetByID(tt.styleID, tt.styleType)
			require.NotNil(t, style)
			assert.Equal(t, tt.want, style.StyleID)
		})
	}
}

func TestStyles_GetStyleID(t *testing.T) {
	styles := parseTestStyles(t)

	id, err := styles.GetStyleID("Heading 1", StyleTypeParagraph)
	require.NoError(t, err)
	assert.Equal(t, "Heading1", id)

	id, err = styles.GetStyleID("Strong", StyleTypeCharacter)
	require.NoError(t, err)
	assert.Equal(t, "Strong", id)

	// Resolving to the type default reports "no opinion".
	id, err = styles.GetStyleID("Normal", StyleTypeParagraph)
	require.NoError(t, err)
	assert.Equal(t, "", id)

	id, err = styles.GetStyleID("", StyleTypeParagraph)
	require.NoError(t, err)
	assert.Equal(t, "", id)

	_, err = styles.GetStyleID("Heading 1", StyleTypeCharacter)
	assert.True(t, IsWrongStyleType(err))

	var wrongType *WrongStyleTypeError
	require.ErrorAs(t, err, &wrongType)
	assert.Equal(t, StyleTypeCharacter, wrongType.Wanted)
	assert.Equal(t, StyleTypeParagraph, wrongType.Got)

	_, err = styles.GetStyleID("NoSuchStyle", StyleTypeParagraph)
	assert.True(t, IsStyleNotFound(err))
}

func TestDefaultStylesPart(t *testing.T) {
	pkg := NewPackage()
	part := DefaultStylesPart(pkg)

	assert.Equal(t, stylesPartName, part.PartName())
	assert.Equal(t, ctStyles, part.ContentType())

	styles := part.Styles()
	require.NotNil(t, styles.DefaultFor(StyleTypeParagraph))
	require.NotNil(t, styles.DefaultFor(StyleTypeCharacter))
	require.NotNil(t, styles.DefaultFor(StyleTypeTable))

	blob, err := part.Blob()
	require.NoError(t, err)
	reparsed, err := parseStyles(blob)
	require.NoError(t, err)
	assert.Len(t, reparsed.Styles, len(styles.Styles))
}
