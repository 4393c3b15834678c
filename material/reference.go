package material

import (
	"fmt"
	"strings"
)

// Reference is one bibliographic record for a dataset: the publication or
// data record users must cite when using the optical constants.
//
// A loader may fill only Key (the citation key of an external bibliography);
// fully populated records render both a human-readable citation and a
// BibTeX entry.
type Reference struct {
	// Key is the citation key, e.g. "saadeh-optik-273-170455".
	Key string

	// Authors in publication order, e.g. "Qais Saadeh".
	Authors []string

	// Title of the publication.
	Title string

	// Journal the publication appeared in.
	Journal string

	// Volume of the journal.
	Volume string

	// Pages or article number.
	Pages string

	// Year of publication.
	Year int

	// DOI of the publication, without resolver prefix.
	DOI string
}

// String renders the reference as it would appear in the reference section
// of a publication. A record holding only a Key renders as that key.
func (r Reference) String() string {
	if r.Title == "" && len(r.Authors) == 0 {
		return r.Key
	}
	var b strings.Builder
	if len(r.Authors) > 0 {
		b.WriteString(strings.Join(r.Authors, ", "))
		b.WriteString(": ")
	}
	b.WriteString(r.Title)
	if r.Journal != "" {
		fmt.Fprintf(&b, ". %s", r.Journal)
		if r.Volume != "" {
			fmt.Fprintf(&b, " %s", r.Volume)
		}
		if r.Pages != "" {
			fmt.Fprintf(&b, ", %s", r.Pages)
		}
	}
	if r.Year != 0 {
		fmt.Fprintf(&b, " (%d)", r.Year)
	}
	if r.DOI != "" {
		fmt.Fprintf(&b, ". doi:%s", r.DOI)
	}

	return b.String()
}

// BibTeX renders the reference as a multiline @article entry for use in own
// publications.
func (r Reference) BibTeX() string {
	var b strings.Builder
	fmt.Fprintf(&b, "@article{%s,\n", r.Key)
	if len(r.Authors) > 0 {
		fmt.Fprintf(&b, "    author = {%s},\n", strings.Join(r.Authors, " AND "))
	}
	if r.Title != "" {
		fmt.Fprintf(&b, "    title = {%s},\n", r.Title)
	}
	if r.Journal != "" {
		fmt.Fprintf(&b, "    journal = {%s},\n", r.Journal)
	}
	if r.Volume != "" {
		fmt.Fprintf(&b, "    volume = {%s},\n", r.Volume)
	}
	if r.Pages != "" {
		fmt.Fprintf(&b, "    pages = {%s},\n", r.Pages)
	}
	if r.Year != 0 {
		fmt.Fprintf(&b, "    year = {%d},\n", r.Year)
	}
	if r.DOI != "" {
		fmt.Fprintf(&b, "    doi = {%s},\n", r.DOI)
	}
	b.WriteString("}")

	return b.String()
}
