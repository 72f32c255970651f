package browser

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"masquerade/domain/by"
	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
)

// PlaywrightDriver drives a chromium page through playwright-go
type PlaywrightDriver struct {
	pw         *playwright.Playwright
	browser    playwright.Browser
	context    playwright.BrowserContext
	page       playwright.Page
	pages      []playwright.Page
	pagesMutex sync.Mutex
	opts       Options
	log        logrus.FieldLogger
}

var _ interfaces.Browser = (*PlaywrightDriver)(nil)

// NewPlaywrightDriver starts playwright and opens a page. A saved storage
// state is restored when opts.State is set.
func NewPlaywrightDriver(opts Options) (*PlaywrightDriver, error) {
	opts = opts.withDefaults()

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	contextOptions := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
		JavaScriptEnabled: playwright.Bool(true),
		IgnoreHttpsErrors: playwright.Bool(true),
	}

	if opts.State != nil && opts.State.HasState() {
		data, err := os.ReadFile(opts.State.StatePath())
		if err == nil {
			var storageState playwright.StorageState
			if err := json.Unmarshal(data, &storageState); err == nil {
				contextOptions.StorageState = storageState.ToOptionalStorageState()
			}
		}
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		SlowMo:   playwright.Float(opts.SlowMo),
		Args: []string{
			"--disable-popup-blocking",
			"--disable-dev-shm-usage",
			"--no-sandbox",
			"--disable-setuid-sandbox",
			"--disable-infobars",
			"--disable-notifications",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	context, err := browser.NewContext(contextOptions)
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}
	context.SetDefaultTimeout(float64(opts.Timeout.Milliseconds()))

	page, err := context.NewPage()
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	d := &PlaywrightDriver{
		pw:      pw,
		browser: browser,
		context: context,
		page:    page,
		pages:   []playwright.Page{page},
		opts:    opts,
		log:     opts.Logger.WithField("driver", "playwright"),
	}

	page.OnDialog(func(dialog playwright.Dialog) {
		dialog.Accept()
	})

	context.OnPage(func(newPage playwright.Page) {
		d.pagesMutex.Lock()
		defer d.pagesMutex.Unlock()

		d.pages = append(d.pages, newPage)
		d.page = newPage

		newPage.OnClose(func(closedPage playwright.Page) {
			d.pagesMutex.Lock()
			defer d.pagesMutex.Unlock()

			for i, p := range d.pages {
				if p == closedPage {
					d.pages = append(d.pages[:i], d.pages[i+1:]...)
					break
				}
			}
			if d.page == closedPage && len(d.pages) > 0 {
				d.page = d.pages[0]
			}
		})
	})

	return d, nil
}

func (d *PlaywrightDriver) currentPage() playwright.Page {
	d.pagesMutex.Lock()
	defer d.pagesMutex.Unlock()
	return d.page
}

// Open navigates the current page to url
func (d *PlaywrightDriver) Open(url string) error {
	d.log.Infof("Opening %s", url)
	_, err := d.currentPage().Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(30000),
	})
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// Find returns a lazy handle for loc
func (d *PlaywrightDriver) Find(loc by.Locator) interfaces.ElementHandle {
	return &playwrightElement{d: d, loc: loc}
}

// FindAll resolves every element matching loc
func (d *PlaywrightDriver) FindAll(loc by.Locator) ([]interfaces.ElementHandle, error) {
	return d.findAll(nil, loc)
}

func (d *PlaywrightDriver) findAll(base playwright.Locator, loc by.Locator) ([]interfaces.ElementHandle, error) {
	l, err := d.resolve(base, loc)
	if err != nil {
		return nil, err
	}
	all, err := l.All()
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", loc, err)
	}

	handles := make([]interfaces.ElementHandle, 0, len(all))
	for _, item := range all {
		el := &playwrightElement{d: d, fixed: item}
		el.loc = by.Target(el)
		handles = append(handles, el)
	}
	return handles, nil
}

// SaveState writes the storage state of the context to the state file
func (d *PlaywrightDriver) SaveState() error {
	if d.context == nil || d.opts.State == nil {
		return nil
	}

	if _, err := d.context.StorageState(d.opts.State.StatePath()); err != nil {
		if isClosed(err) {
			return nil
		}
		return fmt.Errorf("failed to save browser state: %w", err)
	}
	return nil
}

// Close saves the session and shuts the browser down
func (d *PlaywrightDriver) Close() error {
	var closeErr error

	if err := d.SaveState(); err != nil {
		closeErr = err
	}

	if d.context != nil {
		if err := d.context.Close(); err != nil && !isClosed(err) {
			closeErr = joinClose(closeErr, "context", err)
		}
		d.context = nil
	}

	if d.browser != nil {
		if err := d.browser.Close(); err != nil && !isClosed(err) {
			closeErr = joinClose(closeErr, "browser", err)
		}
		d.browser = nil
	}

	if d.pw != nil {
		if err := d.pw.Stop(); err != nil {
			closeErr = joinClose(closeErr, "playwright", err)
		}
		d.pw = nil
	}

	return closeErr
}

func isClosed(err error) bool {
	return strings.Contains(err.Error(), "closed")
}

func joinClose(prev error, what string, err error) error {
	if prev != nil {
		return fmt.Errorf("%v; failed to close %s: %w", prev, what, err)
	}
	return fmt.Errorf("failed to close %s: %w", what, err)
}

// resolve builds the playwright locator of loc below base, or below the
// current page when base is nil.
func (d *PlaywrightDriver) resolve(base playwright.Locator, loc by.Locator) (playwright.Locator, error) {
	switch l := loc.(type) {
	case by.Document:
		if base != nil {
			return base, nil
		}
		return d.currentPage().Locator("body"), nil
	case by.Simple:
		sel := Selector(l)
		if base != nil {
			return base.Locator(sel), nil
		}
		return d.currentPage().Locator(sel), nil
	case by.Chain:
		cur := base
		for _, part := range l.Parts() {
			next, err := d.resolve(cur, part)
			if err != nil {
				return nil, err
			}
			cur = next
		}
		return cur, nil
	case by.Handle:
		if el, ok := l.Target().(*playwrightElement); ok {
			return el.locator()
		}
		return nil, fmt.Errorf("%w: %T", entities.ErrUnsupportedTarget, l.Target())
	}
	return nil, fmt.Errorf("%w: %v", entities.ErrUnsupportedTarget, loc)
}

// Selector renders a simple locator in playwright selector syntax
func Selector(s by.Simple) string {
	switch s.Strategy {
	case by.StrategyCubaID:
		return fmt.Sprintf("[cuba-id=%s]", strconv.Quote(s.Value))
	case by.StrategyCSS:
		return "css=" + s.Value
	case by.StrategyXPath:
		return "xpath=" + s.Value
	case by.StrategyID:
		return fmt.Sprintf("[id=%s]", strconv.Quote(s.Value))
	case by.StrategyClassName:
		return "." + s.Value
	case by.StrategyTagName:
		return "css=" + s.Value
	case by.StrategyName:
		return fmt.Sprintf("[name=%s]", strconv.Quote(s.Value))
	case by.StrategyLinkText:
		return fmt.Sprintf("a:text-is(%s)", strconv.Quote(s.Value))
	case by.StrategyText:
		return "text=" + strconv.Quote(s.Value)
	}
	return s.Value
}

// playwrightElement resolves its locator on every operation unless it was
// produced by FindAll
type playwrightElement struct {
	d     *PlaywrightDriver
	loc   by.Locator
	fixed playwright.Locator
}

var _ interfaces.ElementHandle = (*playwrightElement)(nil)

func (e *playwrightElement) locator() (playwright.Locator, error) {
	if e.fixed != nil {
		return e.fixed, nil
	}
	l, err := e.d.resolve(nil, e.loc)
	if err != nil {
		return nil, err
	}
	return l.First(), nil
}

func (e *playwrightElement) String() string {
	if e.fixed != nil {
		return "playwright element"
	}
	return e.loc.String()
}

func (e *playwrightElement) Locator() by.Locator {
	return e.loc
}

func (e *playwrightElement) Find(loc by.Locator) interfaces.ElementHandle {
	return &playwrightElement{d: e.d, loc: by.Chained(e.loc, loc)}
}

func (e *playwrightElement) FindAll(loc by.Locator) ([]interfaces.ElementHandle, error) {
	base, err := e.locator()
	if err != nil {
		return nil, err
	}
	return e.d.findAll(base, loc)
}

func (e *playwrightElement) Parent() interfaces.ElementHandle {
	return e.Find(by.XPath(".."))
}

func (e *playwrightElement) Click() error {
	l, err := e.locator()
	if err != nil {
		return err
	}
	if err := l.Click(); err != nil {
		return fmt.Errorf("failed to click %s: %w", e, err)
	}
	return nil
}

func (e *playwrightElement) Text() (string, error) {
	l, err := e.locator()
	if err != nil {
		return "", err
	}
	return l.TextContent()
}

func (e *playwrightElement) Value() (string, error) {
	l, err := e.locator()
	if err != nil {
		return "", err
	}
	return l.InputValue()
}

func (e *playwrightElement) SetValue(value string) error {
	l, err := e.locator()
	if err != nil {
		return err
	}
	if err := l.Fill(value); err != nil {
		return fmt.Errorf("failed to type into %s: %w", e, err)
	}
	return nil
}

func (e *playwrightElement) Attribute(name string) (string, error) {
	l, err := e.locator()
	if err != nil {
		return "", err
	}
	return l.GetAttribute(name)
}

func (e *playwrightElement) Visible() (bool, error) {
	l, err := e.locator()
	if err != nil {
		return false, err
	}
	return l.IsVisible()
}

func (e *playwrightElement) Enabled() (bool, error) {
	l, err := e.locator()
	if err != nil {
		return false, err
	}
	return l.IsEnabled()
}

func (e *playwrightElement) Editable() (bool, error) {
	l, err := e.locator()
	if err != nil {
		return false, err
	}
	return l.IsEditable()
}

func (e *playwrightElement) Checked() (bool, error) {
	l, err := e.locator()
	if err != nil {
		return false, err
	}
	return l.IsChecked()
}

func (e *playwrightElement) Matches(c entities.Condition) (bool, error) {
	return Match(e, c)
}

func (e *playwrightElement) WaitFor(c entities.Condition) error {
	return WaitFor(e, c, e.d.opts.Timeout, e.d.opts.PollInterval)
}
