package yaml_test

import (
	"testing"

	"github.com/fwojciec/medcorpus"
	medyaml "github.com/fwojciec/medcorpus/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *medcorpus.Document {
	return &medcorpus.Document{
		Title: "Influenza",
		Sections: []medcorpus.Section{
			{
				Heading: "Symptoms",
				Level:   2,
				Content: []medcorpus.Block{
					medcorpus.Paragraph{Text: "Symptoms usually come on suddenly."},
					medcorpus.List{Items: []string{"Fever", "Cough", "Fatigue"}},
				},
				Subsections: []medcorpus.Section{
					{
						Heading: "Emergency Signs",
						Level:   3,
						Content: []medcorpus.Block{
							medcorpus.List{Items: []string{"Trouble breathing", "Chest pain"}, Ordered: true},
						},
					},
				},
			},
			{
				Heading: "Treatment",
				Level:   2,
				Content: []medcorpus.Block{
					medcorpus.Paragraph{Text: "Rest and fluids."},
				},
			},
		},
	}
}

func TestExporter_RoundTrip(t *testing.T) {
	t.Parallel()

	doc := sampleDocument()

	out, err := medyaml.NewExporter().Export(doc)
	require.NoError(t, err)

	got, err := medyaml.NewParser().Parse(out)
	require.NoError(t, err)

	assert.Equal(t, doc, got)
}

func TestExporter_Deterministic(t *testing.T) {
	t.Parallel()

	e := medyaml.NewExporter()

	first, err := e.Export(sampleDocument())
	require.NoError(t, err)
	second, err := e.Export(sampleDocument())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("carries block discriminators", func(t *testing.T) {
		t.Parallel()

		out, err := medyaml.NewExporter().Export(sampleDocument())
		require.NoError(t, err)

		s := string(out)
		assert.Contains(t, s, "title: Influenza")
		assert.Contains(t, s, "type: paragraph")
		assert.Contains(t, s, "type: list")
		assert.Contains(t, s, "ordered: true")
	})

	t.Run("rejects invalid document", func(t *testing.T) {
		t.Parallel()

		_, err := medyaml.NewExporter().Export(&medcorpus.Document{Title: "Empty"})
		assert.Equal(t, medcorpus.EINVALID, medcorpus.ErrorCode(err))
	})
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("parses handwritten export", func(t *testing.T) {
		t.Parallel()

		src := `title: Influenza
sections:
  - heading: Symptoms
    level: 2
    content:
      - type: list
        items:
          - Fever
          - Cough
          - Fatigue
        ordered: false
`
		doc, err := medyaml.NewParser().Parse([]byte(src))
		require.NoError(t, err)

		assert.Equal(t, "Influenza", doc.Title)
		require.Len(t, doc.Sections, 1)
		sec := doc.Sections[0]
		assert.Equal(t, "Symptoms", sec.Heading)
		require.Len(t, sec.Content, 1)
		assert.Equal(t, medcorpus.List{Items: []string{"Fever", "Cough", "Fatigue"}}, sec.Content[0])
	})

	t.Run("rejects unknown block type", func(t *testing.T) {
		t.Parallel()

		src := `title: Influenza
sections:
  - heading: Symptoms
    level: 2
    content:
      - type: table
`
		_, err := medyaml.NewParser().Parse([]byte(src))
		assert.Equal(t, medcorpus.EINVALID, medcorpus.ErrorCode(err))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := medyaml.NewParser().Parse([]byte("\ttitle: {"))
		assert.Equal(t, medcorpus.EINVALID, medcorpus.ErrorCode(err))
	})
}
