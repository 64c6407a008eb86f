package restyutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	lock     sync.Mutex
	messages map[string]string
}

func (o *memoryOutput) Write(id string, contents string) {
	o.lock.Lock()
	defer o.lock.Unlock()
	o.messages[id] = contents
}

func TestInstrumentClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Portal", "mvic")
		io.WriteString(w, "Yes, You Are Registered")
	}))
	defer server.Close()

	out := &memoryOutput{messages: map[string]string{}}
	client := resty.New()
	InstrumentClient(client, out)

	_, err := client.R().
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody("a=1&b=2").
		Post(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	require.Len(t, out.messages, 1)
	message := out.messages["1"]
	require.True(t, strings.HasPrefix(message, "---- REQUEST ----"))
	require.Contains(t, message, "POST "+server.URL)
	require.Contains(t, message, "a=1&b=2")
	require.Contains(t, message, "---- RESPONSE ----")
	require.Contains(t, message, "X-Portal: mvic")
	require.Contains(t, message, "Yes, You Are Registered")
}

func TestInstrumentClientNilOutput(t *testing.T) {
	client := resty.New()
	InstrumentClient(client, nil)
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "resty")
	out, err := NewFilesystemOutput(dir)
	if err != nil {
		t.Fatal(err)
	}

	out.Write("1", "contents")

	written, err := os.ReadFile(filepath.Join(dir, "1"))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "contents", string(written))
}

func TestFormatHeaders(t *testing.T) {
	headers := http.Header{
		"B": {"2", "3"},
		"A": {"1"},
	}
	require.Equal(t, "A: 1\nB: 2\nB: 3", formatHeaders(headers))
	require.Equal(t, "", formatHeaders(http.Header{}))
}
