package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/citizenlabsgr/elections-api/lib/scrapers/mvic"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeLookuper struct {
	result   mvic.RegistrationResult
	err      error
	received mvic.PersonQuery
	deadline bool
}

func (f *fakeLookuper) Lookup(ctx context.Context, query mvic.PersonQuery) (mvic.RegistrationResult, error) {
	f.received = query
	_, f.deadline = ctx.Deadline()
	return f.result, f.err
}

func serve(t testing.TB, svc Service, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleRegistration(t *testing.T) {
	lookuper := &fakeLookuper{result: mvic.RegistrationResult{
		Registered: true,
		Fields:     map[string]string{"county": "Wayne"},
	}}
	svc := NewService(lookuper, Options{})

	rec := serve(t, svc, http.MethodGet, "/registration?firstName=Rosa&lastName=Parks&birthMonth=2&birthYear=1913&zip=48201")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.JSONEq(t, `{"registered": true, "county": "Wayne"}`, rec.Body.String())

	require.Equal(t, mvic.PersonQuery{
		FirstName:  "Rosa",
		LastName:   "Parks",
		BirthMonth: "2",
		BirthYear:  "1913",
		Zip:        "48201",
	}, lookuper.received)
	require.False(t, lookuper.deadline)
}

func TestHandleRegistrationPassesParamsUntouched(t *testing.T) {
	lookuper := &fakeLookuper{}
	svc := NewService(lookuper, Options{})

	rec := serve(t, svc, http.MethodGet, "/?FirstName=ignored&lastName=%20o%27Brien%20&birthMonth=Feb")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"registered": false}`, rec.Body.String())
	require.Equal(t, mvic.PersonQuery{
		LastName:   " o'Brien ",
		BirthMonth: "Feb",
	}, lookuper.received)
}

func TestHandleRegistrationErrors(t *testing.T) {
	testCases := []struct {
		err    error
		status int
		code   string
	}{
		{
			err:    fmt.Errorf("%w: missing __VIEWSTATE", mvic.ErrMalformedForm),
			status: http.StatusBadGateway,
			code:   "malformed_form",
		},
		{
			err:    fmt.Errorf("%w: status 500", mvic.ErrPortalUnavailable),
			status: http.StatusServiceUnavailable,
			code:   "portal_unavailable",
		},
		{
			err:    fmt.Errorf("%w: fetch form: %w", mvic.ErrTransport, errors.New("connection refused")),
			status: http.StatusBadGateway,
			code:   "portal_unreachable",
		},
		{
			err:    fmt.Errorf("%w: submit search: %w", mvic.ErrTransport, context.DeadlineExceeded),
			status: http.StatusGatewayTimeout,
			code:   "timeout",
		},
		{
			err:    errors.New("something else"),
			status: http.StatusInternalServerError,
			code:   "internal",
		},
	}

	for _, test := range testCases {
		t.Run(test.code, func(t *testing.T) {
			svc := NewService(&fakeLookuper{err: test.err}, Options{})
			rec := serve(t, svc, http.MethodGet, "/registration")

			require.Equal(t, test.status, rec.Code)
			require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

			var body errorBody
			err := json.Unmarshal(rec.Body.Bytes(), &body)
			if err != nil {
				t.Fatal(err)
			}
			require.Equal(t, test.code, body.Error)
			require.Equal(t, test.err.Error(), body.Message)
		})
	}
}

func TestLookupTimeout(t *testing.T) {
	lookuper := &fakeLookuper{}
	svc := NewService(lookuper, Options{LookupTimeout: time.Minute})

	rec := serve(t, svc, http.MethodGet, "/registration")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, lookuper.deadline)
}

func TestPreflight(t *testing.T) {
	svc := NewService(&fakeLookuper{}, Options{})
	rec := serve(t, svc, http.MethodOptions, "/registration")

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "GET")
}

func TestHealth(t *testing.T) {
	svc := NewService(&fakeLookuper{}, Options{})
	rec := serve(t, svc, http.MethodGet, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

// TestEndToEnd runs the router against a fake portal through a real
// mvic.Client.
func TestEndToEnd(t *testing.T) {
	portal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			io.WriteString(w, `<input type="hidden" name="__VIEWSTATE" id="__VIEWSTATE" value="vs" />
<input type="hidden" name="__VIEWSTATEGENERATOR" id="__VIEWSTATEGENERATOR" value="gen" />
<input type="hidden" name="__EVENTVALIDATION" id="__EVENTVALIDATION" value="ev" />`)
			return
		}
		io.WriteString(w, `<h2>Yes, You Are Registered</h2>
<td class="districtCell"><b>County: </b></td>
<td class="districtCell"><span id="lblCounty">Wayne</span></td>`)
	}))
	defer portal.Close()

	client, err := mvic.NewClient(mvic.ClientOptions{BaseUrl: portal.URL + "/MVIC/"})
	if err != nil {
		t.Fatal(err)
	}
	svc := NewService(client, Options{LookupTimeout: 10 * time.Second})

	server := httptest.NewServer(svc.Router())
	defer server.Close()

	res, err := http.Get(server.URL + "/registration?firstName=Rosa&lastName=Parks&birthMonth=2&birthYear=1913&zip=48201")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.JSONEq(t, `{"registered": true, "county": "Wayne"}`, string(body))
}
