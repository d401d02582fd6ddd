package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/ChrisTheAbysswalker/animals-web/models"
)

func TestRenderCardWithoutSkinType(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	card, err := RenderCard(tmpl, m.DisplayAnimal{
		Name:      "Fox",
		Diet:      "Omnivore",
		Locations: []string{"North America", "Europe"},
		Type:      "Mammal",
	})
	require.NoError(t, err)

	html := string(card)
	assert.True(t, strings.HasPrefix(html, `<li class="cards__item">`))
	assert.Contains(t, html, `<div class="card__title">Fox</div>`)
	assert.Contains(t, html, `<strong>Diet:</strong> Omnivore<br/>`)
	assert.Contains(t, html, `<strong>Location:</strong> North America, Europe<br/>`)
	assert.Contains(t, html, `<strong>Type:</strong> Mammal<br/>`)
	assert.NotContains(t, html, "Skin Type")
}

func TestRenderCardWithSkinType(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	card, err := RenderCard(tmpl, m.DisplayAnimal{
		Name:        "Gecko",
		Diet:        "Insectivore",
		Locations:   []string{},
		Type:        "Reptilia",
		SkinType:    m.Unknown,
		HasSkinType: true,
	})
	require.NoError(t, err)

	assert.Contains(t, string(card), `<strong>Skin Type:</strong> Unknown<br/>`)
	assert.Contains(t, string(card), `<strong>Location:</strong> <br/>`)
}

func TestRenderCardEscapesAPIText(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	card, err := RenderCard(tmpl, m.DisplayAnimal{
		Name:      `<script>alert("x")</script>`,
		Diet:      "Fish & Chips",
		Locations: []string{"<b>Sea</b>"},
		Type:      "Pisces",
	})
	require.NoError(t, err)

	html := string(card)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "Fish &amp; Chips")
}

func TestRenderCardsKeepsOrder(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	names := []string{"Zebra", "Aardvark", "Moose"}
	records := make([]m.AnimalRecord, 0, len(names))
	for i := range names {
		records = append(records, m.AnimalRecord{Name: &names[i]})
	}

	cards, err := RenderCards(tmpl, records)
	require.NoError(t, err)

	html := string(cards)
	assert.Equal(t, 3, strings.Count(html, `<li class="cards__item">`))
	zebra := strings.Index(html, "Zebra")
	aardvark := strings.Index(html, "Aardvark")
	moose := strings.Index(html, "Moose")
	assert.True(t, zebra < aardvark && aardvark < moose, "cards must follow API order")
}

func TestRenderCardsEmpty(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	cards, err := RenderCards(tmpl, nil)
	require.NoError(t, err)
	assert.Empty(t, cards)
}
