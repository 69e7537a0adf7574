package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages a browser renders before it is
// replaced by a fresh one. Long-lived Chrome processes keep growing their
// memory baseline even when every page is closed.
const DefaultMaxPages = 75

// browserPool owns the headless browser and relaunches it every maxPages
// pages. It is safe for concurrent use.
type browserPool struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	served   int
	maxPages int
}

func newBrowserPool(maxPages int) (*browserPool, error) {
	p := &browserPool{maxPages: maxPages}
	if err := p.launch(); err != nil {
		return nil, err
	}
	return p, nil
}

// acquire returns the browser to open the next page in and counts the page
// toward the relaunch threshold.
func (p *browserPool) acquire() *rod.Browser {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.maxPages > 0 && p.served >= p.maxPages {
		p.relaunch()
	}
	p.served++
	return p.browser
}

func (p *browserPool) pid() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.launcher == nil {
		return 0
	}
	return p.launcher.PID()
}

func (p *browserPool) close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	if p.browser != nil {
		err = p.browser.Close()
		p.browser = nil
	}
	if p.launcher != nil {
		p.launcher.Kill()
		p.launcher = nil
	}
	return err
}

// launch must be called with mu held or before the pool is shared.
func (p *browserPool) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	p.browser = browser
	p.launcher = l
	return nil
}

// relaunch swaps in a fresh browser. The old one keeps serving if the
// launch fails. Must be called with mu held.
func (p *browserPool) relaunch() {
	oldBrowser, oldLauncher := p.browser, p.launcher
	if err := p.launch(); err != nil {
		p.browser, p.launcher = oldBrowser, oldLauncher
		return
	}
	_ = oldBrowser.Close()
	oldLauncher.Kill()
	p.served = 0
}
