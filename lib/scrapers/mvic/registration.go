package mvic

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/citizenlabsgr/elections-api/lib/textutil"
)

const registeredPhrase = "Yes, You Are Registered"

// RegistrationResult is the outcome of a lookup. Fields is only populated
// when Registered is true and maps normalized labels (ex. "county",
// "congressional_district") to the value shown next to them.
type RegistrationResult struct {
	Registered bool
	Fields     map[string]string
}

// MarshalJSON flattens the result into a single object, ex.
// {"registered": true, "county": "Wayne"}. The registered flag always wins
// over a label that normalizes to "registered".
func (r RegistrationResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["registered"] = r.Registered
	return json.Marshal(out)
}

func (r *RegistrationResult) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	*r = RegistrationResult{}
	for k, v := range raw {
		if k == "registered" {
			r.Registered, _ = v.(bool)
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		if r.Fields == nil {
			r.Fields = map[string]string{}
		}
		r.Fields[k] = s
	}
	return nil
}

// a label cell followed by its value cell:
//
//	<td class="districtCell"><b>County: </b></td>
//	<td class="districtCell"><span id="...">Wayne</span></td>
var districtCellRegex = regexp.MustCompile(`districtCell">[\s\S]*?<b>(.*?): </b>[\s\S]*?districtCell">[\s\S]*?">(.*?)</span>`)

// ParseRegistration reads the search results page. Anything that doesn't
// contain the registered phrase is treated as not registered.
func ParseRegistration(html string) RegistrationResult {
	if !strings.Contains(html, registeredPhrase) {
		return RegistrationResult{Registered: false}
	}

	result := RegistrationResult{
		Registered: true,
		Fields:     map[string]string{},
	}
	for _, groups := range districtCellRegex.FindAllStringSubmatch(html, -1) {
		result.Fields[textutil.NormalizeLabel(groups[1])] = groups[2]
	}
	return result
}
