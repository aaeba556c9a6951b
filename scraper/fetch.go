package scraper

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"

	"github.com/crstnhllg/realtor-scraper/config"
	"github.com/crstnhllg/realtor-scraper/utils"
)

// ChromeFetcher renders Realtor.com search-results pages in a real Chrome
// session. One fetcher owns one browser tab for the whole run.
type ChromeFetcher struct {
	tabCtx context.Context
	cfg    config.Config
}

// NewChromeFetcher launches the browser session. The returned cancel func
// tears down the tab and the Chrome process and must run on every exit path.
func NewChromeFetcher(parent context.Context, cfg config.Config) (*ChromeFetcher, context.CancelFunc) {
	allocCtx, cancelAlloc := utils.NewAllocator(parent, cfg)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(log.Printf),
	)
	cancel := func() {
		cancelTab()
		cancelAlloc()
	}
	return &ChromeFetcher{tabCtx: tabCtx, cfg: cfg}, cancel
}

// FetchPage navigates to the given results page for a ZIP code, waits for the
// properties container to become visible, and returns the rendered HTML.
func (f *ChromeFetcher) FetchPage(zip string, page int) (string, error) {
	url := SearchURL(f.cfg.BaseURL, zip, page)

	// Pace navigations the way a human session would.
	time.Sleep(f.cfg.RandomDelay())

	navCtx, cancel := context.WithTimeout(f.tabCtx, f.cfg.NavTimeout)
	defer cancel()

	var html string
	var cards []*cdp.Node
	if err := chromedp.Run(navCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(PropertiesContainerSelector, chromedp.ByQuery),
		chromedp.Nodes(CardSelector, &cards, chromedp.ByQueryAll, chromedp.AtLeast(0)),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	); err != nil {
		return "", fmt.Errorf("navigate %s: %w", url, err)
	}

	log.Printf("[%s] page %d rendered (%d cards visible)", zip, page, len(cards))
	return html, nil
}

// SearchURL builds the search-results URL for one page of a ZIP code search.
func SearchURL(base, zip string, page int) string {
	return fmt.Sprintf("%s/realestateandhomes-search/%s/pg-%d", base, zip, page)
}
