package models

import "html/template"

// MaxAnimalNameLength mirrors the max binding on SearchForm.
const MaxAnimalNameLength = 100

// SearchForm is the POST / body.
type SearchForm struct {
	AnimalName string `form:"animal_name" binding:"max=100"`
}

// PageData is everything the index template needs for one response.
// Cards must already be escaped markup produced by the views package.
type PageData struct {
	AnimalName string
	NotFound   bool
	Cards      template.HTML
}
