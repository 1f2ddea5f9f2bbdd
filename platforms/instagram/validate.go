package instagram

import (
	"net/url"
	"regexp"
	"strings"

	"thinknode/internal/models"
)

// Path shapes, checked in precedence order. A single bare segment is a
// profile; the remaining shapes carry a type prefix.
var pathPatterns = []struct {
	re   *regexp.Regexp
	kind models.ContentKind
}{
	{regexp.MustCompile(`^/[^/]+$`), models.KindProfile},
	{regexp.MustCompile(`^/p/[^/]+$`), models.KindPost},
	{regexp.MustCompile(`^/reel/[^/]+$`), models.KindReel},
	{regexp.MustCompile(`^/stories/[^/]+$`), models.KindStory},
}

// Classify reports the content shape of an Instagram URL based on its path.
// Trailing slashes are tolerated. Anything off-domain, unparseable, or with
// extra path segments is Invalid.
func Classify(rawURL string) models.ContentKind {
	if rawURL == "" {
		return models.KindInvalid
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return models.KindInvalid
	}

	host := strings.ToLower(parsed.Hostname())
	if host != "instagram.com" && !strings.HasSuffix(host, ".instagram.com") {
		return models.KindInvalid
	}

	path := strings.TrimSuffix(parsed.Path, "/")
	for _, p := range pathPatterns {
		if p.re.MatchString(path) {
			return p.kind
		}
	}
	return models.KindInvalid
}

// SearchEntry is one organic result from the search provider
type SearchEntry struct {
	Link    string `json:"link"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// NormalizeResult converts a search entry into a SocialPost, or nil when its
// URL is not recognizable Instagram content. Every non-profile shape is
// collapsed to Post for display; Classify still reports the distinct kinds
// for callers that need them.
func NormalizeResult(entry SearchEntry) *models.SocialPost {
	kind := Classify(entry.Link)
	if kind == models.KindInvalid {
		return nil
	}

	displayKind := models.KindPost
	if kind == models.KindProfile {
		displayKind = models.KindProfile
	}

	return &models.SocialPost{
		URL:     entry.Link,
		Title:   entry.Title,
		Snippet: entry.Snippet,
		Kind:    displayKind,
		Source:  "SerpAPI",
	}
}

// LimitPosts truncates to at most n entries in encounter order
func LimitPosts(posts []*models.SocialPost, n int) []*models.SocialPost {
	if n < 0 {
		n = 0
	}
	if len(posts) <= n {
		return posts
	}
	return posts[:n]
}
