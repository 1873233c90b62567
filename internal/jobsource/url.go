package jobsource

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-advisor/internal/types"
)

// maxConcurrentFetches bounds parallel page downloads so a large URL
// batch does not hammer a single job board.
const maxConcurrentFetches = 4

// URLSource fetches posting pages over HTTP and falls back to headless
// browser rendering when a page looks JavaScript-rendered.
type URLSource struct {
	URLs    []string
	Timeout time.Duration

	// UseBrowser forces headless rendering for every page instead of
	// falling back only when the plain fetch looks thin.
	UseBrowser bool
}

// Postings implements Source. Pages are fetched concurrently, and pages
// that cannot be fetched or parsed are skipped so one dead link does
// not sink the batch.
func (s *URLSource) Postings(ctx context.Context) ([]types.JobPosting, error) {
	timeout := s.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	results := make([]*types.JobPosting, len(s.URLs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, u := range s.URLs {
		g.Go(func() error {
			text, err := s.pageText(gCtx, u, timeout)
			if err != nil {
				return nil
			}
			posting := PostingFromText(u, text)
			if posting.Validate() != nil {
				return nil
			}
			results[i] = &posting
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	postings := make([]types.JobPosting, 0, len(s.URLs))
	for _, p := range results {
		if p != nil {
			postings = append(postings, *p)
		}
	}
	return postings, nil
}

func (s *URLSource) pageText(ctx context.Context, u string, timeout time.Duration) (string, error) {
	if s.UseBrowser {
		rendered, err := renderWithBrowser(ctx, u, timeout)
		if err != nil {
			return "", err
		}
		return ExtractPostingText(rendered)
	}

	html, err := fetchHTML(ctx, u, timeout)
	if err != nil {
		return "", err
	}
	text, err := ExtractPostingText(html)
	if err != nil {
		return "", err
	}
	if needsBrowser(text) {
		rendered, rErr := renderWithBrowser(ctx, u, timeout)
		if rErr == nil {
			if renderedText, tErr := ExtractPostingText(rendered); tErr == nil && len(renderedText) > len(text) {
				text = renderedText
			}
		}
	}
	return text, nil
}

var (
	salaryRangeRe = regexp.MustCompile(`\$(\d{2,3})[,.]?(\d{3})?\s*[-–—]\s*\$(\d{2,3})[,.]?(\d{3})?`)
	requirementRe = regexp.MustCompile(`(?i)^(requirements|qualifications|what you.ll need|must have)`)
)

// PostingFromText builds a posting from extracted page text. The first
// line is the title, a "Company:" line or the second line names the
// employer, and bullet lines under a requirements heading become the
// requirement list.
func PostingFromText(url, text string) types.JobPosting {
	posting := types.JobPosting{URL: url, Source: "web"}

	lines := strings.Split(text, "\n")
	inRequirements := false
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if posting.Title == "" {
			posting.Title = line
			continue
		}
		if after, ok := strings.CutPrefix(line, "Company:"); ok {
			posting.Company = strings.TrimSpace(after)
			continue
		}
		if after, ok := strings.CutPrefix(line, "Location:"); ok {
			posting.Location = strings.TrimSpace(after)
			continue
		}
		if posting.Company == "" && i == 1 {
			posting.Company = line
			continue
		}

		if requirementRe.MatchString(line) {
			inRequirements = true
			continue
		}
		if inRequirements {
			if req, ok := bulletText(line); ok {
				posting.Requirements = append(posting.Requirements, req)
				continue
			}
			// a non-bullet line ends the requirements block
			if len(posting.Requirements) > 0 {
				inRequirements = false
			}
		}
	}

	if strings.Contains(strings.ToLower(text), "remote") {
		posting.Remote = true
	}
	if m := salaryRangeRe.FindStringSubmatch(text); m != nil {
		posting.SalaryMin = parseSalary(m[1], m[2])
		posting.SalaryMax = parseSalary(m[3], m[4])
	}
	return posting
}

func bulletText(line string) (string, bool) {
	for _, marker := range []string{"- ", "• ", "* "} {
		if after, ok := strings.CutPrefix(line, marker); ok {
			return strings.TrimSpace(after), true
		}
	}
	return "", false
}

// parseSalary joins the thousands groups of a salary match. A bare
// two-or-three digit figure is read as thousands, so "$120" means
// 120000.
func parseSalary(head, tail string) int {
	n, err := strconv.Atoi(head + tail)
	if err != nil {
		return 0
	}
	if tail == "" {
		n *= 1000
	}
	return n
}
