package goquery_test

import (
	"testing"

	"github.com/fwojciec/medcorpus"
	medgoquery "github.com/fwojciec/medcorpus/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fluPage = `<!DOCTYPE html>
<html>
<head><title>Influenza | Example Health</title></head>
<body>
<nav><ul><li>Home</li><li>Conditions</li></ul></nav>
<article>
	<h1>Influenza</h1>
	<p>The flu is a contagious respiratory illness.</p>
	<h2>Symptoms</h2>
	<p>Symptoms usually come on suddenly.</p>
	<ul>
		<li>Fever</li>
		<li>Cough</li>
		<li>Fatigue</li>
	</ul>
	<h3>Emergency Signs</h3>
	<ol>
		<li>Trouble breathing</li>
		<li>Chest pain</li>
	</ol>
	<h2>Treatment</h2>
	<p>Rest and fluids help most people recover.</p>
</article>
<footer><p>Footer boilerplate.</p></footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("builds section tree from article", func(t *testing.T) {
		t.Parallel()

		e := medgoquery.NewExtractor()
		doc, err := e.Extract(fluPage)
		require.NoError(t, err)

		assert.Equal(t, "Influenza", doc.Title)
		require.Len(t, doc.Sections, 2)

		symptoms := doc.Sections[0]
		assert.Equal(t, "Symptoms", symptoms.Heading)
		assert.Equal(t, 2, symptoms.Level)
		require.Len(t, symptoms.Content, 2)
		assert.Equal(t, medcorpus.Paragraph{Text: "Symptoms usually come on suddenly."}, symptoms.Content[0])
		assert.Equal(t, medcorpus.List{Items: []string{"Fever", "Cough", "Fatigue"}}, symptoms.Content[1])

		require.Len(t, symptoms.Subsections, 1)
		emergency := symptoms.Subsections[0]
		assert.Equal(t, "Emergency Signs", emergency.Heading)
		assert.Equal(t, 3, emergency.Level)
		require.Len(t, emergency.Content, 1)
		assert.Equal(t, medcorpus.List{Items: []string{"Trouble breathing", "Chest pain"}, Ordered: true}, emergency.Content[0])

		treatment := doc.Sections[1]
		assert.Equal(t, "Treatment", treatment.Heading)
		require.Len(t, treatment.Content, 1)
	})

	t.Run("ignores markup outside the content region", func(t *testing.T) {
		t.Parallel()

		e := medgoquery.NewExtractor()
		doc, err := e.Extract(fluPage)
		require.NoError(t, err)

		for _, sec := range doc.Sections {
			for _, blk := range sec.Content {
				if p, ok := blk.(medcorpus.Paragraph); ok {
					assert.NotContains(t, p.Text, "Footer boilerplate")
				}
			}
		}
	})

	t.Run("normalizes whitespace", func(t *testing.T) {
		t.Parallel()

		html := `<article><h1>Gout</h1><h2>Causes</h2><p>
			Uric   acid
			builds up.
		</p></article>`

		e := medgoquery.NewExtractor()
		doc, err := e.Extract(html)
		require.NoError(t, err)

		assert.Equal(t, medcorpus.Paragraph{Text: "Uric acid builds up."}, doc.Sections[0].Content[0])
	})

	t.Run("falls back to title class when no h1", func(t *testing.T) {
		t.Parallel()

		html := `<main><div class="article-title">Migraine</div><h2>Symptoms</h2><p>Throbbing pain.</p></main>`

		e := medgoquery.NewExtractor()
		doc, err := e.Extract(html)
		require.NoError(t, err)

		assert.Equal(t, "Migraine", doc.Title)
	})

	t.Run("falls back through content selectors", func(t *testing.T) {
		t.Parallel()

		html := `<body><h1>Anemia</h1><div class="article-body"><h2>Diagnosis</h2><p>Blood test.</p></div></body>`

		e := medgoquery.NewExtractor()
		doc, err := e.Extract(html)
		require.NoError(t, err)

		require.Len(t, doc.Sections, 1)
		assert.Equal(t, "Diagnosis", doc.Sections[0].Heading)
	})

	t.Run("no title", func(t *testing.T) {
		t.Parallel()

		e := medgoquery.NewExtractor()
		_, err := e.Extract(`<article><h2>Symptoms</h2><p>Fever.</p></article>`)

		assert.Equal(t, medcorpus.ENOTITLE, medcorpus.ErrorCode(err))
	})

	t.Run("title but no headings", func(t *testing.T) {
		t.Parallel()

		e := medgoquery.NewExtractor()
		_, err := e.Extract(`<article><h1>Influenza</h1><p>Intro only.</p></article>`)

		assert.Equal(t, medcorpus.ENOCONTENT, medcorpus.ErrorCode(err))
	})

	t.Run("no content region", func(t *testing.T) {
		t.Parallel()

		e := medgoquery.NewExtractor()
		_, err := e.Extract(`<body><h1>Influenza</h1><p>Stub page.</p></body>`)

		assert.Equal(t, medcorpus.ENOCONTENT, medcorpus.ErrorCode(err))
	})

	t.Run("skips empty and nested blocks individually", func(t *testing.T) {
		t.Parallel()

		html := `<article>
			<h1>Eczema</h1>
			<h2>Care</h2>
			<p>   </p>
			<ul><li>Moisturize<p>often</p></li><li>  </li></ul>
			<p>See a doctor if it worsens.</p>
		</article>`

		e := medgoquery.NewExtractor()
		doc, err := e.Extract(html)
		require.NoError(t, err)

		require.Len(t, doc.Sections, 1)
		content := doc.Sections[0].Content
		require.Len(t, content, 2)
		assert.Equal(t, medcorpus.List{Items: []string{"Moisturize often"}}, content[0])
		assert.Equal(t, medcorpus.Paragraph{Text: "See a doctor if it worsens."}, content[1])
	})
}
