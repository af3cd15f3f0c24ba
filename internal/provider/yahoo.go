package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// DefaultBaseURL is the public Yahoo Finance API host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// notFoundCode is the error code Yahoo returns for unknown symbols.
const notFoundCode = "Not Found"

// YahooClient implements MarketProvider against the Yahoo Finance public
// API (chart, quote and quoteSummary endpoints).
//
// The HTTP client is owned by this struct and constructed once at startup;
// its timeout bounds every upstream call so requests never hang past it.
// Identical concurrent chart fetches are collapsed into a single upstream
// call via singleflight (request coalescing, not a cache: nothing is
// retained once the in-flight call completes).
type YahooClient struct {
	client  *http.Client
	baseURL string
	group   singleflight.Group
}

// NewYahooClient builds a client for the given base URL (DefaultBaseURL
// for production, an httptest server in tests) and per-request timeout.
func NewYahooClient(baseURL string, timeout time.Duration) *YahooClient {
	return &YahooClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Ping reports whether the upstream host is reachable. Used by the
// readiness probe.
func (y *YahooClient) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, y.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := y.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	_ = resp.Body.Close()
	return nil
}

// chartResponse is the shape of the v8 chart API payload. Price fields are
// pointers because Yahoo emits nulls for holidays and halted buckets.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"chart"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// FetchSeries returns the OHLCV series for symbol over the window,
// ascending by date. The end date is inclusive: the upstream query spans
// one extra day because Yahoo treats period2 as exclusive.
//
// A successful upstream response with zero usable bars yields an empty
// series, not an error; only an explicit not-found code from Yahoo maps
// to ErrSymbolNotFound.
func (y *YahooClient) FetchSeries(ctx context.Context, symbol string, window models.DateRange) (models.PriceSeries, error) {
	period1 := window.Start.Unix()
	period2 := window.End.AddDate(0, 0, 1).Unix()

	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=%s&includePrePost=false",
		y.baseURL, url.PathEscape(symbol), period1, period2, url.QueryEscape(window.Interval))

	// The collapsed fetch must not die with whichever caller happened to
	// start it: detach from the initiating context so cancelling one
	// request cannot fail every coalesced waiter. The owned client
	// timeout still bounds the upstream call.
	key := fmt.Sprintf("chart|%s|%s|%d|%d", symbol, window.Interval, period1, period2)
	v, err, _ := y.group.Do(key, func() (any, error) {
		return y.fetchChart(context.WithoutCancel(ctx), endpoint)
	})
	if err != nil {
		return nil, err
	}
	return v.(models.PriceSeries), nil
}

func (y *YahooClient) fetchChart(ctx context.Context, endpoint string) (models.PriceSeries, error) {
	body, apiErr, err := y.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if apiErr != nil {
		if apiErr.Code == notFoundCode {
			return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, apiErr.Description)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrUpstreamUnavailable, apiErr.Code, apiErr.Description)
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("%w: decode chart: %v", ErrUpstreamUnavailable, err)
	}
	if chart.Chart.Error != nil {
		if chart.Chart.Error.Code == notFoundCode {
			return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, chart.Chart.Error.Description)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrUpstreamUnavailable, chart.Chart.Error.Code, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return models.PriceSeries{}, nil
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return models.PriceSeries{}, nil
	}
	quote := result.Indicators.Quote[0]

	series := make(models.PriceSeries, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue // null bucket (holiday, halt)
		}
		// Open/high/low can be null even when close is not; backfill them
		// from close so every emitted bar satisfies Low <= Open,Close <= High.
		c := *quote.Close[i]
		bar := models.Bar{
			Date:  time.Unix(ts, 0).UTC(),
			Open:  c,
			High:  c,
			Low:   c,
			Close: c,
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			bar.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			bar.High = *quote.High[i]
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			bar.Low = *quote.Low[i]
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			bar.Volume = *quote.Volume[i]
		}
		series = append(series, bar)
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series, nil
}

// quoteResponse is the shape of the v7 quote API payload.
type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Currency                   string  `json:"currency"`
			RegularMarketPrice         float64 `json:"regularMarketPrice"`
			RegularMarketPreviousClose float64 `json:"regularMarketPreviousClose"`
			RegularMarketOpen          float64 `json:"regularMarketOpen"`
			RegularMarketDayHigh       float64 `json:"regularMarketDayHigh"`
			RegularMarketDayLow        float64 `json:"regularMarketDayLow"`
			RegularMarketVolume        int64   `json:"regularMarketVolume"`
			MarketCap                  int64   `json:"marketCap"`
			FiftyTwoWeekHigh           float64 `json:"fiftyTwoWeekHigh"`
			FiftyTwoWeekLow            float64 `json:"fiftyTwoWeekLow"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"quoteResponse"`
}

// FetchQuote returns current market data for the symbol. An empty result
// set means the symbol is unknown.
func (y *YahooClient) FetchQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	endpoint := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", y.baseURL, url.QueryEscape(symbol))

	body, apiErr, err := y.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if apiErr != nil {
		if apiErr.Code == notFoundCode {
			return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, apiErr.Description)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrUpstreamUnavailable, apiErr.Code, apiErr.Description)
	}

	var out quoteResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode quote: %v", ErrUpstreamUnavailable, err)
	}
	if out.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrUpstreamUnavailable, out.QuoteResponse.Error.Code, out.QuoteResponse.Error.Description)
	}
	if len(out.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}

	r := out.QuoteResponse.Result[0]
	return &models.Quote{
		Symbol:           symbol,
		Currency:         r.Currency,
		LastPrice:        r.RegularMarketPrice,
		PreviousClose:    r.RegularMarketPreviousClose,
		Open:             r.RegularMarketOpen,
		DayHigh:          r.RegularMarketDayHigh,
		DayLow:           r.RegularMarketDayLow,
		Volume:           r.RegularMarketVolume,
		MarketCap:        r.MarketCap,
		FiftyTwoWeekHigh: r.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  r.FiftyTwoWeekLow,
	}, nil
}

// summaryResponse is the shape of the v10 quoteSummary API payload,
// limited to the modules this service requests.
type summaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			QuoteType struct {
				LongName  string `json:"longName"`
				ShortName string `json:"shortName"`
			} `json:"quoteType"`
			AssetProfile struct {
				LongBusinessSummary string `json:"longBusinessSummary"`
				Industry            string `json:"industry"`
				Sector              string `json:"sector"`
				Website             string `json:"website"`
				CompanyOfficers     []struct {
					Name     string `json:"name"`
					Title    string `json:"title"`
					Age      int    `json:"age"`
					YearBorn int    `json:"yearBorn"`
				} `json:"companyOfficers"`
			} `json:"assetProfile"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"quoteSummary"`
}

// FetchProfile returns company profile information for the symbol.
func (y *YahooClient) FetchProfile(ctx context.Context, symbol string) (*models.CompanyProfile, error) {
	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=assetProfile%%2CquoteType",
		y.baseURL, url.PathEscape(symbol))

	body, apiErr, err := y.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if apiErr != nil {
		if apiErr.Code == notFoundCode {
			return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, apiErr.Description)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrUpstreamUnavailable, apiErr.Code, apiErr.Description)
	}

	var out summaryResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode profile: %v", ErrUpstreamUnavailable, err)
	}
	if out.QuoteSummary.Error != nil {
		if out.QuoteSummary.Error.Code == notFoundCode {
			return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, out.QuoteSummary.Error.Description)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrUpstreamUnavailable, out.QuoteSummary.Error.Code, out.QuoteSummary.Error.Description)
	}
	if len(out.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}

	r := out.QuoteSummary.Result[0]
	name := r.QuoteType.LongName
	if name == "" {
		name = r.QuoteType.ShortName
	}

	profile := &models.CompanyProfile{
		Symbol:   symbol,
		Name:     name,
		Summary:  r.AssetProfile.LongBusinessSummary,
		Industry: r.AssetProfile.Industry,
		Sector:   r.AssetProfile.Sector,
		Website:  r.AssetProfile.Website,
	}
	for _, o := range r.AssetProfile.CompanyOfficers {
		profile.Officers = append(profile.Officers, models.Officer{
			Name:     o.Name,
			Title:    o.Title,
			Age:      o.Age,
			YearBorn: o.YearBorn,
		})
	}
	return profile, nil
}

// get performs one GET against the upstream and returns the raw body.
// Network failures, timeouts and non-2xx statuses map to the provider
// error taxonomy; a 404 body is returned for endpoint-specific handling
// since Yahoo embeds the error envelope in it.
func (y *YahooClient) get(ctx context.Context, endpoint string) ([]byte, *apiError, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: build request: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "application/json")

	resp, err := y.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read body: %v", ErrUpstreamUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil, nil
	case resp.StatusCode == http.StatusNotFound:
		// Yahoo answers 404 with the error envelope in the body; let the
		// caller decode it so "Not Found" maps to ErrSymbolNotFound.
		if e := extractError(body); e != nil {
			return nil, e, nil
		}
		return nil, &apiError{Code: notFoundCode, Description: "no data found"}, nil
	default:
		return nil, nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}
}

// extractError pulls the embedded error envelope out of any of the three
// Yahoo payload shapes.
func extractError(body []byte) *apiError {
	var envelope struct {
		Chart struct {
			Error *apiError `json:"error"`
		} `json:"chart"`
		QuoteResponse struct {
			Error *apiError `json:"error"`
		} `json:"quoteResponse"`
		QuoteSummary struct {
			Error *apiError `json:"error"`
		} `json:"quoteSummary"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	if envelope.Chart.Error != nil {
		return envelope.Chart.Error
	}
	if envelope.QuoteResponse.Error != nil {
		return envelope.QuoteResponse.Error
	}
	return envelope.QuoteSummary.Error
}
