package browser

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"

	"masquerade/domain/by"
	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
)

// SeleniumDriver drives chrome through chromedriver
type SeleniumDriver struct {
	wd      selenium.WebDriver
	service *selenium.Service
	opts    Options
	log     logrus.FieldLogger
}

var _ interfaces.Browser = (*SeleniumDriver)(nil)

// findChromeDriver - finds ChromeDriver executable path
func findChromeDriver(override string) (string, error) {
	for _, path := range []string{override, os.Getenv("BROWSER_DRIVER_PATH")} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	commonPaths := []string{
		"/usr/local/bin/chromedriver",
		"/usr/bin/chromedriver",
		"/opt/homebrew/bin/chromedriver",
		filepath.Join(os.Getenv("HOME"), "bin", "chromedriver"),
	}
	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := exec.LookPath("chromedriver"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("chromedriver not found. Please install it or set BROWSER_DRIVER_PATH environment variable")
}

// findChromeBinary - finds Chrome/Chromium browser executable path
func findChromeBinary(override string) string {
	for _, path := range []string{override, os.Getenv("CHROME_BINARY_PATH")} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	chromePaths := []string{
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
	}
	for _, path := range chromePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

// NewSeleniumDriver starts chromedriver and a chrome session. The chrome
// profile is kept in opts.State when set.
func NewSeleniumDriver(opts Options) (*SeleniumDriver, error) {
	opts = opts.withDefaults()
	log := opts.Logger.WithField("driver", "selenium")

	driverPath, err := findChromeDriver(opts.DriverPath)
	if err != nil {
		return nil, fmt.Errorf("failed to find chromedriver: %w", err)
	}
	log.Infof("Using ChromeDriver at: %s", driverPath)

	chromeBinary := findChromeBinary(opts.ChromeBinary)
	if chromeBinary != "" {
		log.Infof("Using Chrome binary at: %s", chromeBinary)
	}

	args := []string{
		"--disable-blink-features=AutomationControlled",
		"--disable-dev-shm-usage",
		"--no-sandbox",
	}
	if opts.Headless {
		args = append(args, "--headless=new")
	}
	if opts.State != nil {
		userDataDir, err := opts.State.ProfileDir()
		if err != nil {
			return nil, fmt.Errorf("failed to setup user data directory: %w", err)
		}
		log.Infof("Using user data directory: %s", userDataDir)
		args = append(args, fmt.Sprintf("--user-data-dir=%s", userDataDir))
	}

	service, err := selenium.NewChromeDriverService(driverPath, opts.Port)
	if err != nil {
		return nil, fmt.Errorf("failed to start chromedriver: %w", err)
	}

	caps := selenium.Capabilities{
		"browserName": "chrome",
	}
	chromeCaps := chrome.Capabilities{Args: args}
	if chromeBinary != "" {
		chromeCaps.Path = chromeBinary
	}
	caps.AddChrome(chromeCaps)

	wd, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", opts.Port))
	if err != nil {
		service.Stop()
		if strings.Contains(err.Error(), "cannot find Chrome binary") {
			return nil, fmt.Errorf("failed to create webdriver: Chrome browser not found. Please install Google Chrome or set CHROME_BINARY_PATH environment variable. Error: %w", err)
		}
		return nil, fmt.Errorf("failed to create webdriver: %w", err)
	}

	return &SeleniumDriver{
		wd:      wd,
		service: service,
		opts:    opts,
		log:     log,
	}, nil
}

// Open navigates the browser to url
func (s *SeleniumDriver) Open(url string) error {
	s.log.Infof("Opening %s", url)
	if err := s.wd.Get(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// Close quits the browser and stops chromedriver
func (s *SeleniumDriver) Close() error {
	var closeErr error
	if s.wd != nil {
		if err := s.wd.Quit(); err != nil {
			closeErr = fmt.Errorf("failed to quit webdriver: %w", err)
		}
		s.wd = nil
	}
	if s.service != nil {
		if err := s.service.Stop(); err != nil {
			closeErr = joinClose(closeErr, "chromedriver", err)
		}
		s.service = nil
	}
	return closeErr
}

func (s *SeleniumDriver) Find(loc by.Locator) interfaces.ElementHandle {
	return &seleniumElement{s: s, loc: loc}
}

func (s *SeleniumDriver) FindAll(loc by.Locator) ([]interfaces.ElementHandle, error) {
	return s.findAll(nil, loc)
}

// finder is implemented by selenium.WebDriver and selenium.WebElement
type finder interface {
	FindElement(by, value string) (selenium.WebElement, error)
	FindElements(by, value string) ([]selenium.WebElement, error)
}

func (s *SeleniumDriver) findAll(base selenium.WebElement, loc by.Locator) ([]interfaces.ElementHandle, error) {
	var parent finder = s.wd
	if base != nil {
		parent = base
	}

	var (
		found []selenium.WebElement
		err   error
	)
	if chain, ok := loc.(by.Chain); ok {
		parts := chain.Parts()
		prefix := by.Chained(parts[0], parts[1:len(parts)-1]...)
		el, err := s.resolve(base, prefix)
		if err != nil {
			return nil, err
		}
		strategy, value, err := Strategy(chain.Last())
		if err != nil {
			return nil, err
		}
		found, err = el.FindElements(strategy, value)
		if err != nil {
			return nil, fmt.Errorf("failed to find %s: %w", loc, err)
		}
	} else {
		strategy, value, serr := Strategy(loc)
		if serr != nil {
			return nil, serr
		}
		found, err = parent.FindElements(strategy, value)
		if err != nil {
			return nil, fmt.Errorf("failed to find %s: %w", loc, err)
		}
	}

	handles := make([]interfaces.ElementHandle, 0, len(found))
	for _, we := range found {
		el := &seleniumElement{s: s, fixed: we}
		el.loc = by.Target(el)
		handles = append(handles, el)
	}
	return handles, nil
}

// resolve finds the first element of loc below base, or in the document
func (s *SeleniumDriver) resolve(base selenium.WebElement, loc by.Locator) (selenium.WebElement, error) {
	switch l := loc.(type) {
	case by.Chain:
		cur := base
		for _, part := range l.Parts() {
			next, err := s.resolve(cur, part)
			if err != nil {
				return nil, err
			}
			cur = next
		}
		return cur, nil
	case by.Handle:
		if el, ok := l.Target().(*seleniumElement); ok {
			return el.element()
		}
		return nil, fmt.Errorf("%w: %T", entities.ErrUnsupportedTarget, l.Target())
	case by.Document:
		if base != nil {
			return base, nil
		}
	}

	strategy, value, err := Strategy(loc)
	if err != nil {
		return nil, err
	}
	var parent finder = s.wd
	if base != nil {
		parent = base
	}
	el, err := parent.FindElement(strategy, value)
	if err != nil {
		return nil, fmt.Errorf("element %s not found: %w", loc, err)
	}
	return el, nil
}

// Strategy maps a locator to a webdriver strategy and value
func Strategy(loc by.Locator) (string, string, error) {
	switch l := loc.(type) {
	case by.Document:
		return selenium.ByTagName, "body", nil
	case by.Simple:
		switch l.Strategy {
		case by.StrategyCubaID:
			return selenium.ByCSSSelector, fmt.Sprintf("[cuba-id=%q]", l.Value), nil
		case by.StrategyCSS:
			return selenium.ByCSSSelector, l.Value, nil
		case by.StrategyXPath:
			return selenium.ByXPATH, l.Value, nil
		case by.StrategyID:
			return selenium.ByID, l.Value, nil
		case by.StrategyClassName:
			return selenium.ByClassName, l.Value, nil
		case by.StrategyTagName:
			return selenium.ByTagName, l.Value, nil
		case by.StrategyName:
			return selenium.ByName, l.Value, nil
		case by.StrategyLinkText:
			return selenium.ByLinkText, l.Value, nil
		case by.StrategyText:
			return selenium.ByXPATH, fmt.Sprintf(".//*[normalize-space(text())=%s]", xpathLiteral(l.Value)), nil
		}
	}
	return "", "", fmt.Errorf("%w: %v", entities.ErrUnsupportedTarget, loc)
}

// xpathLiteral quotes s for an xpath expression
func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	return "concat('" + strings.Join(parts, `', "'", '`) + "')"
}

type seleniumElement struct {
	s     *SeleniumDriver
	loc   by.Locator
	fixed selenium.WebElement
}

var _ interfaces.ElementHandle = (*seleniumElement)(nil)

func (e *seleniumElement) element() (selenium.WebElement, error) {
	if e.fixed != nil {
		return e.fixed, nil
	}
	return e.s.resolve(nil, e.loc)
}

func (e *seleniumElement) String() string {
	if e.fixed != nil {
		return "selenium element"
	}
	return e.loc.String()
}

func (e *seleniumElement) Locator() by.Locator {
	return e.loc
}

func (e *seleniumElement) Find(loc by.Locator) interfaces.ElementHandle {
	return &seleniumElement{s: e.s, loc: by.Chained(e.loc, loc)}
}

func (e *seleniumElement) FindAll(loc by.Locator) ([]interfaces.ElementHandle, error) {
	base, err := e.element()
	if err != nil {
		return nil, err
	}
	return e.s.findAll(base, loc)
}

func (e *seleniumElement) Parent() interfaces.ElementHandle {
	return e.Find(by.XPath(".."))
}

func (e *seleniumElement) Click() error {
	el, err := e.element()
	if err != nil {
		return err
	}
	if err := el.Click(); err != nil {
		return fmt.Errorf("failed to click %s: %w", e, err)
	}
	return nil
}

func (e *seleniumElement) Text() (string, error) {
	el, err := e.element()
	if err != nil {
		return "", err
	}
	return el.Text()
}

func (e *seleniumElement) Value() (string, error) {
	return e.Attribute("value")
}

func (e *seleniumElement) SetValue(value string) error {
	el, err := e.element()
	if err != nil {
		return err
	}
	if err := el.Clear(); err != nil {
		e.s.log.Warnf("Failed to clear element: %v", err)
	}
	if err := el.SendKeys(value); err != nil {
		return fmt.Errorf("failed to type into %s: %w", e, err)
	}
	return nil
}

func (e *seleniumElement) Attribute(name string) (string, error) {
	el, err := e.element()
	if err != nil {
		return "", err
	}
	return el.GetAttribute(name)
}

func (e *seleniumElement) Visible() (bool, error) {
	el, err := e.element()
	if err != nil {
		if isNoSuchElement(err) {
			return false, nil
		}
		return false, err
	}
	return el.IsDisplayed()
}

func (e *seleniumElement) Enabled() (bool, error) {
	el, err := e.element()
	if err != nil {
		return false, err
	}
	return el.IsEnabled()
}

func (e *seleniumElement) Editable() (bool, error) {
	enabled, err := e.Enabled()
	if err != nil || !enabled {
		return false, err
	}
	readonly, err := e.Attribute("readonly")
	if err != nil {
		return true, nil
	}
	return readonly == "" || readonly == "false", nil
}

func (e *seleniumElement) Checked() (bool, error) {
	el, err := e.element()
	if err != nil {
		return false, err
	}
	return el.IsSelected()
}

func (e *seleniumElement) Matches(c entities.Condition) (bool, error) {
	return Match(e, c)
}

// WaitFor polls through the webdriver wait loop
func (e *seleniumElement) WaitFor(c entities.Condition) error {
	var last error
	err := e.s.wd.WaitWithTimeoutAndInterval(func(selenium.WebDriver) (bool, error) {
		ok, err := Match(e, c)
		last = err
		return err == nil && ok, nil
	}, e.s.opts.Timeout, e.s.opts.PollInterval)
	if err != nil {
		if last != nil {
			return fmt.Errorf("wait for %s: %w: %w", c, ErrConditionNotMet, last)
		}
		return fmt.Errorf("wait for %s: %w", c, ErrConditionNotMet)
	}
	return nil
}

func isNoSuchElement(err error) bool {
	var se *selenium.Error
	if errors.As(err, &se) {
		return se.Err == "no such element"
	}
	return strings.Contains(err.Error(), "no such element")
}
