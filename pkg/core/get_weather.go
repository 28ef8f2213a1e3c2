package core

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DataSet names a category of weather data returned by the API.
type DataSet string

const (
	DataSetCurrentWeather   DataSet = "currentWeather"
	DataSetForecastDaily    DataSet = "forecastDaily"
	DataSetForecastHourly   DataSet = "forecastHourly"
	DataSetForecastNextHour DataSet = "forecastNextHour"
	DataSetWeatherAlerts    DataSet = "weatherAlerts"
)

const (
	DefaultLanguage = "en"
	DefaultTimezone = "America/Swift_Current"
)

type options struct {
	language string
	timezone string
	dataSets []DataSet
}

// Option customizes a single GetWeather call.
type Option func(*options)

// WithLanguage sets the two letter language code of the response.
func WithLanguage(lang string) Option {
	return func(o *options) {
		o.language = lang
	}
}

// WithTimezone sets the timezone used for the forecast.
func WithTimezone(tz string) Option {
	return func(o *options) {
		o.timezone = tz
	}
}

// WithDataSets sets the data sets to request. Values are passed to the API unchecked.
func WithDataSets(sets ...DataSet) Option {
	return func(o *options) {
		o.dataSets = append([]DataSet(nil), sets...)
	}
}

func defaultOptions() options {
	return options{
		language: DefaultLanguage,
		timezone: DefaultTimezone,
		dataSets: []DataSet{DataSetCurrentWeather, DataSetForecastHourly},
	}
}

// GetWeather requests weather data for the given coordinate and returns the decoded response as is.
// The held credential is renewed first if it is missing or expired.
func (c *Client) GetWeather(ctx context.Context, latitude, longitude float64, opts ...Option) (map[string]any, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cred, err := c.Token(ctx)
	if err != nil {
		return nil, err
	}

	data, err := c.transport.Get(ctx, c.buildRequest(cred, latitude, longitude, &o))
	if err != nil {
		return nil, fmt.Errorf("failed to get weather: %w", err)
	}

	return data, nil
}

// Token returns the held credential, renewing it when necessary.
func (c *Client) Token(ctx context.Context) (*Credential, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cred, err := c.tokens.EnsureValid(ctx, c.id, c.expiry, c.cred, c.now())
	if err != nil {
		return nil, fmt.Errorf("failed to ensure token: %w", err)
	}

	c.cred = cred

	return cred, nil
}

func (c *Client) buildRequest(cred *Credential, latitude, longitude float64, o *options) *Request {
	sets := make([]string, len(o.dataSets))
	for i, ds := range o.dataSets {
		sets[i] = string(ds)
	}

	header := make(http.Header)
	header.Set("Authorization", cred.BearerHeader())

	query := url.Values{}
	query.Set("timezone", o.timezone)
	query.Set("dataSets", strings.Join(sets, ","))

	return &Request{
		URL: fmt.Sprintf("%s/api/v1/weather/%s/%s/%s",
			c.baseURL, o.language, formatCoordinate(latitude), formatCoordinate(longitude)),
		Header: header,
		Query:  query,
	}
}

// formatCoordinate renders v in its shortest decimal form, always keeping a fractional part.
func formatCoordinate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
