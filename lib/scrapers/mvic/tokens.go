package mvic

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	fieldEventValidation    = "__EVENTVALIDATION"
	fieldViewState          = "__VIEWSTATE"
	fieldViewStateGenerator = "__VIEWSTATEGENERATOR"
	fieldViewStateEncrypted = "__VIEWSTATEENCRYPTED"
)

// TokenSet holds the ASP.NET state fields that must be echoed back for the
// portal to accept a form submission.
type TokenSet struct {
	EventValidation    string
	ViewState          string
	ViewStateGenerator string
	// always empty, the portal leaves it blank on the initial page load
	ViewStateEncrypted string
}

func tokenRegex(id string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`id="%s" value="(.*?)"`, regexp.QuoteMeta(id)))
}

var (
	eventValidationRegex    = tokenRegex(fieldEventValidation)
	viewStateRegex          = tokenRegex(fieldViewState)
	viewStateGeneratorRegex = tokenRegex(fieldViewStateGenerator)
)

// ParseTokens pulls the hidden state fields out of the search form. All three
// of them must be present, otherwise ErrMalformedForm is returned.
func ParseTokens(html string) (TokenSet, error) {
	var missing []string
	find := func(id string, re *regexp.Regexp) string {
		groups := re.FindStringSubmatch(html)
		if len(groups) < 2 {
			missing = append(missing, id)
			return ""
		}
		return groups[1]
	}

	tokens := TokenSet{
		EventValidation:    find(fieldEventValidation, eventValidationRegex),
		ViewState:          find(fieldViewState, viewStateRegex),
		ViewStateGenerator: find(fieldViewStateGenerator, viewStateGeneratorRegex),
	}
	if len(missing) > 0 {
		return TokenSet{}, fmt.Errorf("%w: missing %s", ErrMalformedForm, strings.Join(missing, ", "))
	}
	return tokens, nil
}

func (t TokenSet) FormData() url.Values {
	return url.Values{
		fieldEventValidation:    {t.EventValidation},
		fieldViewState:          {t.ViewState},
		fieldViewStateGenerator: {t.ViewStateGenerator},
		fieldViewStateEncrypted: {t.ViewStateEncrypted},
	}
}

// searchForm merges the person's fields with the form state, tokens win on
// conflicting keys.
func searchForm(query PersonQuery, tokens TokenSet) url.Values {
	form := query.FormData()
	for k, v := range tokens.FormData() {
		form[k] = v
	}
	return form
}
