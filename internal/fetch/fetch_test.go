package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<html>
<head><title>Backend Engineer - Acme</title><style>.x{}</style></head>
<body>
<nav>Home | Jobs | About</nav>
<main>
  <h1>Backend Engineer</h1>
  <div class="job-description">
    <p>We are hiring a Backend Engineer.</p>
    <p>Requirements: Go,    distributed systems, PostgreSQL.</p>
  </div>
</main>
<footer>© Acme Corp</footer>
<script>trackPageView()</script>
</body>
</html>`

func TestExtractJobText(t *testing.T) {
	text, err := ExtractJobText(postingHTML)
	require.NoError(t, err)

	assert.Contains(t, text, "We are hiring a Backend Engineer.")
	assert.Contains(t, text, "Requirements: Go, distributed systems, PostgreSQL.")
	assert.NotContains(t, text, "trackPageView")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "© Acme Corp")
}

func TestCleanWhitespace(t *testing.T) {
	input := "  line one   with \t gaps  \n\n\n\n line two \n"
	assert.Equal(t, "line one with gaps\n\nline two", cleanWhitespace(input))
}

func TestJobDescription_HTTP(t *testing.T) {
	// Pad the posting so it clears the browser-fallback threshold.
	padded := strings.Replace(postingHTML, "</p>\n  </div>",
		"</p><p>"+strings.Repeat("You will build and operate production services. ", 10)+"</p>\n  </div>", 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(padded))
	}))
	defer srv.Close()

	text, err := JobDescription(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "We are hiring a Backend Engineer.")
}

func TestJobDescription_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobDescription(context.Background(), srv.URL, nil)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestJobDescription_ThinPageWithoutBrowser(t *testing.T) {
	// A near-empty page fails outright unless the browser fallback is
	// requested via Options.UseBrowser.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div id="root"></div></body></html>`))
	}))
	defer srv.Close()

	opts := DefaultOptions()
	require.False(t, opts.UseBrowser)

	_, err := JobDescription(context.Background(), srv.URL, opts)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "no usable posting text")
}

func TestJobDescription_InvalidURL(t *testing.T) {
	_, err := JobDescription(context.Background(), "not a url", nil)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
}
