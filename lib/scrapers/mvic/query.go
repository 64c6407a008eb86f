package mvic

import "net/url"

// portal-specific form field names
const (
	fieldFirstName   = "ctl00$ContentPlaceHolder1$vsFname"
	fieldLastName    = "ctl00$ContentPlaceHolder1$vsLname"
	fieldBirthMonth1 = "ctl00$ContentPlaceHolder1$vsMOB1"
	fieldBirthMonth2 = "ctl00$ContentPlaceHolder1$vsMOB2"
	fieldBirthYear   = "ctl00$ContentPlaceHolder1$vsYOB2"
	fieldZip         = "ctl00$ContentPlaceHolder1$vsZip"
	fieldSearch      = "ctl00$ContentPlaceHolder1$btnSearchByName"
)

// PersonQuery is what a citizen types into the search-by-name form. None of
// the fields are validated, they are passed to the portal as-is.
type PersonQuery struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	BirthMonth string `json:"birthMonth"`
	BirthYear  string `json:"birthYear"`
	Zip        string `json:"zip"`
}

// FormData returns the search fields of the form. The portal expects the
// birth month in two separate inputs.
func (q PersonQuery) FormData() url.Values {
	return url.Values{
		fieldFirstName:   {q.FirstName},
		fieldLastName:    {q.LastName},
		fieldBirthMonth2: {q.BirthMonth},
		fieldBirthMonth1: {q.BirthMonth},
		fieldBirthYear:   {q.BirthYear},
		fieldZip:         {q.Zip},
		fieldSearch:      {"Search"},
	}
}
