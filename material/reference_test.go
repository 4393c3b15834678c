package material_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/optics/material"
)

func fullReference() material.Reference {
	return material.Reference{
		Key:     "saadeh-optik-273-170455",
		Authors: []string{"Qais Saadeh", "Philipp Naujok"},
		Title:   "On the optical constants of cobalt in the M-absorption edge region",
		Journal: "Optik",
		Volume:  "273",
		Pages:   "170455",
		Year:    2023,
		DOI:     "10.1016/j.ijleo.2022.170455",
	}
}

func TestReference_String(t *testing.T) {
	want := "Qais Saadeh, Philipp Naujok: " +
		"On the optical constants of cobalt in the M-absorption edge region. " +
		"Optik 273, 170455 (2023). doi:10.1016/j.ijleo.2022.170455"
	assert.Equal(t, want, fullReference().String())
}

func TestReference_String_KeyOnlyRecord(t *testing.T) {
	ref := material.Reference{Key: "saadeh-optik-273-170455"}
	assert.Equal(t, "saadeh-optik-273-170455", ref.String())
}

func TestReference_BibTeX(t *testing.T) {
	want := `@article{saadeh-optik-273-170455,
    author = {Qais Saadeh AND Philipp Naujok},
    title = {On the optical constants of cobalt in the M-absorption edge region},
    journal = {Optik},
    volume = {273},
    pages = {170455},
    year = {2023},
    doi = {10.1016/j.ijleo.2022.170455},
}`
	assert.Equal(t, want, fullReference().BibTeX())
}

func TestReference_BibTeX_SkipsEmptyFields(t *testing.T) {
	ref := material.Reference{Key: "anon-2020", Title: "Untitled"}
	want := `@article{anon-2020,
    title = {Untitled},
}`
	assert.Equal(t, want, ref.BibTeX())
}
