package mvic

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/citizenlabsgr/elections-api/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// checkAvailability catches the two ways the portal says it is down: an
// error status, or the outage banner being made visible.
func checkAvailability(status int, body string) error {
	if status >= 400 {
		slog.Error("portal returned error status", "status", status)
		return fmt.Errorf("%w: status %d", ErrPortalUnavailable, status)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		// the regexes downstream don't need a well formed document
		slog.Warn("failed to parse portal page", "err", err)
		return nil
	}
	banner := doc.Find("#pollingLocationError").First()
	if banner.Length() == 0 {
		return nil
	}
	style, _ := banner.Attr("style")
	if style == "display:none;" {
		return nil
	}

	message := htmlutil.CleanText(htmlutil.GetText(banner.Get(0)))
	slog.Error("portal is showing its outage banner", "message", message)
	return fmt.Errorf("%w: %s", ErrPortalUnavailable, message)
}
