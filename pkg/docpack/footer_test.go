package docpack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFooterPart_NextID verifies that id allocation returns the maximum
// numeric id plus one, silently ignoring malformed values.
func TestFooterPart_NextID(t *testing.T) {
	_, footer, err := openFooterPackage(WithFooter(testFooterXML))
	require.NoError(t, err)

	// ids present: {3, 7, "x", 1} -> max numeric is 7
	assert.Equal(t, 8, footer.NextID())
}

// TestFooterPart_NextID_Empty verifies that a subtree with no id
// attributes allocates 1.
func TestFooterPart_NextID_Empty(t *testing.T) {
	_, footer, err := openFooterPackage(WithFooter(testEmptyFooterXML))
	require.NoError(t, err)

	assert.Equal(t, 1, footer.NextID())
}

// TestFooterPart_NextID_NoReservation verifies the allocator performs no
// bookkeeping: repeated calls return the same value until the subtree
// actually changes.
func TestFooterPart_NextID_NoReservation(t *testing.T) {
	_, footer, err := openFooterPackage(WithFooter(testFooterXML))
	require.NoError(t, err)

	require.Equal(t, 8, footer.NextID())
	require.Equal(t, 8, footer.NextID())

	// Write an element bearing the allocated id; the next call accounts
	// for it.
	footer.Element().AppendChild(&Element{
		Name:  mustXMLName("bookmarkStart"),
		Attrs: mustIDAttr("8"),
	})
	assert.Equal(t, 9, footer.NextID())
}

// TestFooterPart_NextID_ScopedPerPart verifies that ids are unique only
// within one part's subtree: two independent parts may report the same
// next id.
func TestFooterPart_NextID_ScopedPerPart(t *testing.T) {
	pkg, footer, err := openFooterPackage(WithFooter(testEmptyFooterXML))
	require.NoError(t, err)

	docPart, err := pkg.MainDocumentPart()
	require.NoError(t, err)

	assert.Equal(t, 1, footer.NextID())
	assert.Equal(t, 1, docPart.NextID())
}

// TestFooterPart_StylesPart_Idempotent verifies that accessing the styles
// part twice on a part with no pre-existing styles relationship creates
// exactly one relationship and returns the same instance both times.
func TestFooterPart_StylesPart_Idempotent(t *testing.T) {
	pkg, footer, err := openFooterPackage(WithFooter(testEmptyFooterXML))
	require.NoError(t, err)

	first := footer.StylesPart()
	require.NotNil(t, first)
	second := footer.StylesPart()
	require.Same(t, first, second)

	count := 0
	for _, rel := range pkg.RelationshipsOf(footer.PartName()).Relationship {
		if rel.Type == string(RTStyles) {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

// TestFooterPart_DefaultCreation_NeverFails verifies that every
// dependent-part accessor returns a usable default on a package carrying
// none of the dependent parts.
func TestFooterPart_DefaultCreation_NeverFails(t *testing.T) {
	_, footer, err := openFooterPackage(WithFooter(testEmptyFooterXML))
	require.NoError(t, err)

	stylesPart := footer.StylesPart()
	require.NotNil(t, stylesPart)
	assert.NotNil(t, stylesPart.Styles().DefaultFor(StyleTypeParagraph))

	numberingPart := footer.NumberingPart()
	require.NotNil(t, numberingPart)
	assert.Empty(t, numberingPart.Definitions())

	settingsPart := footer.SettingsPart()
	require.NotNil(t, settingsPart)
	assert.False(t, settingsPart.Settings().OddAndEvenPagesHeaderFooter())
}

// TestFooterPart_ExistingParts_Resolved verifies that pre-existing
// dependent parts are returned rather than replaced by defaults.
func TestFooterPart_ExistingParts_Resolved(t *testing.T) {
	pkg, footer, err := openFooterPackage(
		WithFooter(testEmptyFooterXML),
		WithStyles(testStylesXML),
		WithSettings(testSettingsXML),
		WithNumbering(testNumberingXML),
	)
	require.NoError(t, err)

	relCount := len(pkg.RelationshipsOf(footer.PartName()).Relationship)

	heading := footer.Styles().ByID("Heading1")
	require.NotNil(t, heading)
	assert.Equal(t, "Heading 1", heading.Name())

	assert.True(t, footer.Settings().OddAndEvenPagesHeaderFooter())

	defs := footer.NumberingPart().Definitions()
	require.Len(t, defs, 1)
	assert.Equal(t, "1", defs[0].NumID)
	assert.Equal(t, "0", defs[0].AbstractNumID)

	// Resolution of existing parts adds no edges.
	assert.Len(t, pkg.RelationshipsOf(footer.PartName()).Relationship, relCount)
}

// TestFooterPart_GetStyle_Fallback verifies the documented fallback
// policy: an empty or unmatched style id resolves to the type default.
func TestFooterPart_GetStyle_Fallback(t *testing.T) {
	_, footer, err := openFooterPackage(WithFooter(testEmptyFooterXML), WithStyles(testStylesXML))
	require.NoError(t, err)

	def := footer.GetStyle("", StyleTypeParagraph)
	require.NotNil(t, def)
	assert.Equal(t, "Normal", def.StyleID)

	bogus := footer.GetStyle("bogus-id", StyleTypeParagraph)
	require.NotNil(t, bogus)
	assert.Equal(t, "Normal", bogus.StyleID)

	// A defined id of the wrong type also falls back.
	wrongType := footer.GetStyle("Strong", StyleTypeParagraph)
	require.NotNil(t, wrongType)
	assert.Equal(t, "Normal", wrongType.StyleID)

	heading := footer.GetStyle("Heading1", StyleTypeParagraph)
	require.NotNil(t, heading)
	assert.Equal(t, "Heading1", heading.StyleID)
}

// TestFooterPart_GetStyleID_Distinctions verifies that "no opinion" and
// "invalid request" are reported differently.
func TestFooterPart_GetStyleID_Distinctions(t *testing.T) {
	_, footer, err := openFooterPackage(WithFooter(testEmptyFooterXML), WithStyles(testStylesXML))
	require.NoError(t, err)

	// Absent input: absent result, no error.
	id, err := footer.GetStyleID("", StyleTypeParagraph)
	require.NoError(t, err)
	assert.Equal(t, "", id)

	// The type default resolves to absent.
	id, err = footer.GetStyleID("Normal", StyleTypeParagraph)
	require.NoError(t, err)
	assert.Equal(t, "", id)

	// A name of a style of a different type is an error.
	_, err = footer.GetStyleID("Heading 1", StyleTypeCharacter)
	require.Error(t, err)
	assert.True(t, IsWrongStyleType(err))

	// A name not present at all is a different error.
	_, err = footer.GetStyleID("NoSuchStyle", StyleTypeParagraph)
	require.Error(t, err)
	assert.True(t, IsStyleNotFound(err))

	// Both id and name forms resolve.
	id, err = footer.GetStyleID("Heading1", StyleTypeParagraph)
	require.NoError(t, err)
	assert.Equal(t, "Heading1", id)

	id, err = footer.GetStyleID("Heading 1", StyleTypeParagraph)
	require.NoError(t, err)
	assert.Equal(t, "Heading1", id)
}

// TestFooterPart_Footer verifies the content view over the raw subtree.
func TestFooterPart_Footer(t *testing.T) {
	_, footerPart, err := openFooterPackage(WithFooter(testFooterXML))
	require.NoError(t, err)

	footer := footerPart.Footer()
	require.Same(t, footerPart, footer.Part())
	assert.Equal(t, []string{"Page ", "of document"}, footer.Paragraphs())
	assert.Equal(t, "Page \nof document", footer.Text())
}

// TestFooterPart_CoreProperties verifies upward delegation through the
// owning package.
func TestFooterPart_CoreProperties(t *testing.T) {
	pkg, footer, err := openFooterPackage(
		WithFooter(testEmptyFooterXML),
		WithCoreProperties(testCorePropsXML),
	)
	require.NoError(t, err)

	props := footer.CoreProperties()
	require.NotNil(t, props)
	assert.Equal(t, "Quarterly Report", props.Title)
	assert.Equal(t, "Jane Analyst", props.Creator)
	assert.Equal(t, 4, props.Revision)

	// The part delegates to the same object the package exposes.
	assert.Same(t, pkg.CoreProperties(), props)
}

// TestFooterPart_Save verifies that save delegates to the package and the
// lazily created parts survive a round trip.
func TestFooterPart_Save(t *testing.T) {
	_, footer, err := openFooterPackage(WithFooter(testEmptyFooterXML))
	require.NoError(t, err)

	// Force default creation before saving.
	footer.StylesPart()

	var buf bytes.Buffer
	require.NoError(t, footer.Save(&buf))

	reopened, err := OpenPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Contains(t, reopened.PartNames(), "word/styles.xml")

	footers, err := reopened.FooterParts()
	require.NoError(t, err)
	require.Len(t, footers, 1)

	// The persisted edge now resolves without creating anything new.
	stylesPart := footers[0].StylesPart()
	require.NotNil(t, stylesPart)
	assert.NotNil(t, stylesPart.Styles().DefaultFor(StyleTypeParagraph))
}
