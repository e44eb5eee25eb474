package domain

// Window is a fixed historical time horizon for fund development.
type Window int

const (
	WindowOneDay Window = iota
	WindowOneMonth
	WindowThreeMonths
	WindowSixMonths
	WindowThisYear
	WindowOneYear
	WindowThreeYears
	WindowFiveYears
)

var windowLabels = [...]string{"1d", "1m", "3m", "6m", "ytd", "1y", "3y", "5y"}

// Windows returns every window in canonical display order.
func Windows() []Window {
	return []Window{
		WindowOneDay,
		WindowOneMonth,
		WindowThreeMonths,
		WindowSixMonths,
		WindowThisYear,
		WindowOneYear,
		WindowThreeYears,
		WindowFiveYears,
	}
}

// String returns the short label of the window, e.g. "1y".
func (w Window) String() string {
	if w < 0 || int(w) >= len(windowLabels) {
		return "unknown"
	}
	return windowLabels[w]
}

// Metric returns the scalar metric that tracks this window.
func (w Window) Metric() Metric {
	return MetricOneDay + Metric(w)
}

// Metric identifies a scalar fund metric that is averaged over the funds
// reporting it.
type Metric int

const (
	MetricSharpe Metric = iota
	MetricOneDay
	MetricOneMonth
	MetricThreeMonths
	MetricSixMonths
	MetricThisYear
	MetricOneYear
	MetricThreeYears
	MetricFiveYears
)

// Window returns the development window a metric tracks, if any.
func (m Metric) Window() (Window, bool) {
	if m < MetricOneDay || m > MetricFiveYears {
		return 0, false
	}
	return Window(m - MetricOneDay), true
}

func (m Metric) String() string {
	if m == MetricSharpe {
		return "sharpe"
	}
	if w, ok := m.Window(); ok {
		return "development_" + w.String()
	}
	return "unknown"
}

// CompanySize is a company-size bucket.
type CompanySize int

const (
	CompanySizeLarge CompanySize = iota
	CompanySizeMedium
	CompanySizeSmall
)

// CompanySizes returns the buckets in canonical order.
func CompanySizes() []CompanySize {
	return []CompanySize{CompanySizeLarge, CompanySizeMedium, CompanySizeSmall}
}

func (c CompanySize) String() string {
	switch c {
	case CompanySizeLarge:
		return "large"
	case CompanySizeMedium:
		return "medium"
	case CompanySizeSmall:
		return "small"
	}
	return "unknown"
}

// DomesticKey is the accumulator key for the bucket restricted to the
// domestic region, e.g. "large_domestic".
func (c CompanySize) DomesticKey() string {
	return c.String() + "_domestic"
}
