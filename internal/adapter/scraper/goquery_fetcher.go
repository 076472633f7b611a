package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"page-quiz/internal/domain"
	"page-quiz/internal/logger"
	"page-quiz/internal/metrics"
	"page-quiz/internal/textproc"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	DefaultTimeout      = 30 * time.Second
	DefaultUserAgent    = "Mozilla/5.0 (compatible; QuizBot/1.0)"
	DefaultMaxBodyBytes = 10 * 1024 * 1024

	untitled = "Untitled"
)

// noiseSelector lists elements whose text never belongs in quiz source material.
const noiseSelector = "script, style, nav, footer, iframe"

// Options configures a GoqueryFetcher. Zero values fall back to the defaults.
type Options struct {
	Timeout          time.Duration
	MaxContentLength int
	MaxBodyBytes     int64
	UserAgent        string
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxContentLength <= 0 {
		o.MaxContentLength = textproc.DefaultMaxContentLength
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	return o
}

// GoqueryFetcher implements domain.PageFetcher with net/http and goquery.
type GoqueryFetcher struct {
	client *http.Client
	opts   Options
}

// NewGoqueryFetcher creates a fetcher. A nil client means http.DefaultClient; the
// per-request deadline comes from opts.Timeout, not from the client.
func NewGoqueryFetcher(client *http.Client, opts Options) *GoqueryFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &GoqueryFetcher{client: client, opts: opts.withDefaults()}
}

// Fetch implements domain.PageFetcher
func (f *GoqueryFetcher) Fetch(ctx context.Context, url string) (*domain.ScrapedContent, error) {
	l := logger.Get()

	ctx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, f.wrapTransportError(ctx, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		l.Warn("Page fetch returned non-success status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
		metrics.RecordPageFetch("http_error")
		return nil, &domain.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, f.opts.MaxBodyBytes))
	if err != nil {
		return nil, f.wrapTransportError(ctx, url, fmt.Errorf("failed to parse HTML: %w", err))
	}

	content := Extract(doc, url, f.opts.MaxContentLength)
	metrics.RecordPageFetch("ok")
	l.Info("Fetched page",
		zap.String("url", url),
		zap.String("title", content.Title),
		zap.Int("content_length", len(content.Content)),
		zap.Duration("duration", time.Since(start)))
	return content, nil
}

func (f *GoqueryFetcher) wrapTransportError(ctx context.Context, url string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		logger.Get().Warn("Page fetch timed out", zap.String("url", url), zap.Duration("timeout", f.opts.Timeout))
		metrics.RecordPageFetch("timeout")
		return &domain.FetchError{
			URL:     url,
			Timeout: true,
			Err:     fmt.Errorf("%w after %s", domain.ErrFetchTimeout, f.opts.Timeout),
		}
	}
	logger.Get().Warn("Page fetch failed", zap.String("url", url), zap.Error(err))
	metrics.RecordPageFetch("error")
	return &domain.FetchError{URL: url, Err: err}
}

// Extract pulls title, description and main text out of a parsed document. It
// removes non-content elements from doc before reading any text.
func Extract(doc *goquery.Document, url string, maxContentLength int) *domain.ScrapedContent {
	doc.Find(noiseSelector).Remove()

	title := firstNonEmpty(
		metaContent(doc, `meta[property="og:title"]`),
		doc.Find("title").Text(),
	)
	if title == "" {
		title = untitled
	}

	description := firstNonEmpty(
		metaContent(doc, `meta[property="og:description"]`),
		metaContent(doc, `meta[name="description"]`),
	)

	mainText := firstNonEmpty(
		doc.Find("article").First().Text(),
		doc.Find("main").First().Text(),
		doc.Find("body").Text(),
	)

	return &domain.ScrapedContent{
		Title:       title,
		Description: description,
		Content:     textproc.CleanPageContent(mainText, maxContentLength),
		URL:         url,
	}
}

func metaContent(doc *goquery.Document, selector string) string {
	return doc.Find(selector).First().AttrOr("content", "")
}

// firstNonEmpty returns the first candidate that is not blank, trimmed.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

var _ domain.PageFetcher = (*GoqueryFetcher)(nil)
