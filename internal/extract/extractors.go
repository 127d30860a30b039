// Package extract derives structured profile, company and post records from
// the raw text returned by the content source. Every extractor is a pure
// function: it never fails and resolves a parse miss to a documented default
// so that empty or garbled input still produces a well-formed record.
package extract

import (
	"regexp"
	"strings"
)

const (
	defaultName    = "Unknown"
	summaryLimit   = 500
	profilePathSeg = "linkedin.com/in/"
)

var (
	companyPattern      = regexp.MustCompile(`(?i)at\s+([^\n|]+)`)
	titlePattern        = regexp.MustCompile(`(?im)^([^\n]+)\s+at\s+`)
	locationPattern     = regexp.MustCompile(`[A-Z][a-z]+(?: [A-Z][a-z]+)*,\s*[A-Z]{2,}`)
	industryPattern     = regexp.MustCompile(`(?i)Industry[:\s]+([^\n]+)`)
	headquartersPattern = regexp.MustCompile(`(?i)Headquarters[:\s]+([^\n]+)`)
	specialtiesPattern  = regexp.MustCompile(`(?i)Specialties[:\s]+([^\n]+)`)
	companySizePattern  = regexp.MustCompile(`(?i)(\d+[-–]\d+|\d+\+)\s+employees`)
	foundedPattern      = regexp.MustCompile(`(?i)Founded[:\s]+(\d{4})`)
	urlPattern          = regexp.MustCompile(`https?://\S+`)
	postIDPattern       = regexp.MustCompile(`activity-(\d+)`)
	hashtagPattern      = regexp.MustCompile(`#\w+`)
	mentionPattern      = regexp.MustCompile(`@\w+`)

	relativeDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d{1,2}\s+(?:hours?|days?|weeks?|months?)\s+ago`),
		regexp.MustCompile(`(?i)\d{1,2}[hd]`),
	}

	likesPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+(?:,\d+)*)\s*(?:likes?|reactions?)`),
		regexp.MustCompile(`(?i)(\d+(?:,\d+)*)\s*people reacted`),
	}
	commentsPattern = regexp.MustCompile(`(?i)(\d+(?:,\d+)*)\s*comments?`)
	sharesPattern   = regexp.MustCompile(`(?i)(\d+(?:,\d+)*)\s*(?:shares?|reposts?)`)
	viewsPattern    = regexp.MustCompile(`(?i)(\d+(?:,\d+)*)\s*views?`)
)

// mediaURLMarkers flag URL tokens that look like media assets.
var mediaURLMarkers = []string{"image", "video", "media", ".jpg", ".png", ".mp4"}

// Name returns the first non-blank line of the text, or "Unknown".
func Name(text string) string {
	if line := nonBlankLine(text, 0); line != "" {
		return line
	}
	return defaultName
}

// Headline returns the second non-blank line of the text.
func Headline(text string) string {
	return nonBlankLine(text, 1)
}

// CompanyName returns the first non-blank line of a company page, or
// "Unknown". Identical heuristic to Name; kept separate because the two
// record shapes evolve independently.
func CompanyName(text string) string {
	return Name(text)
}

// Company returns the employer mentioned after an "at" marker.
func Company(text string) string {
	return firstCapture(companyPattern, text)
}

// Title returns the leading part of a "<title> at <company>" line.
func Title(text string) string {
	return firstCapture(titlePattern, text)
}

// Location returns the first "City, ST"-shaped token in the text.
func Location(text string) string {
	return locationPattern.FindString(text)
}

// Summary returns the first 500 characters of the text. The cut is a plain
// truncation, not sentence-aware.
func Summary(text string) string {
	return truncate(text, summaryLimit)
}

// Description returns the first 500 characters of a company page.
func Description(text string) string {
	return truncate(text, summaryLimit)
}

// Experience is not implemented yet; it always returns an empty list.
// Structured experience parsing needs section-aware splitting that the
// current line heuristics cannot provide.
func Experience(string) []string {
	return []string{}
}

// Education is not implemented yet; it always returns an empty list.
func Education(string) []string {
	return []string{}
}

// Skills is not implemented yet; it always returns an empty string.
func Skills(string) string {
	return ""
}

// Industry returns the value of an "Industry:" labeled field.
func Industry(text string) string {
	return firstCapture(industryPattern, text)
}

// Headquarters returns the value of a "Headquarters:" labeled field.
func Headquarters(text string) string {
	return firstCapture(headquartersPattern, text)
}

// Specialties returns the value of a "Specialties:" labeled field.
func Specialties(text string) string {
	return firstCapture(specialtiesPattern, text)
}

// CompanySize returns an employee-range token such as "51-200" or "10000+".
func CompanySize(text string) string {
	if m := companySizePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// Founded returns the four-digit year of a "Founded:" labeled field.
func Founded(text string) string {
	if m := foundedPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// Website returns the first URL-shaped token in the text.
func Website(text string) string {
	return urlPattern.FindString(text)
}

// Links returns every URL token in the text except personal profile links.
func Links(text string) []string {
	links := []string{}
	for _, u := range urlPattern.FindAllString(text, -1) {
		if strings.Contains(u, profilePathSeg) {
			continue
		}
		links = append(links, u)
	}
	return links
}

// PostID returns the numeric activity suffix of a post URL.
func PostID(postURL string) string {
	if m := postIDPattern.FindStringSubmatch(postURL); m != nil {
		return m[1]
	}
	return ""
}

// PostDate returns the first relative-time phrase found in the text, trying
// the verbose "3 days ago" form before the "3d" shorthand. When nothing
// matches the post is assumed to be recent.
func PostDate(text string) string {
	for _, p := range relativeDatePatterns {
		if m := p.FindString(text); m != "" {
			return m
		}
	}
	return "Recent"
}

// Likes returns the like count as a digit string, trying the
// "N likes/reactions" phrasing before "N people reacted". Defaults to "0".
func Likes(text string) string {
	for _, p := range likesPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.ReplaceAll(m[1], ",", "")
		}
	}
	return "0"
}

// Comments returns the comment count as a digit string, defaulting to "0".
func Comments(text string) string {
	return countToken(commentsPattern, text)
}

// Shares returns the share/repost count as a digit string, defaulting to "0".
func Shares(text string) string {
	return countToken(sharesPattern, text)
}

// Views returns the view count as a digit string, defaulting to "0".
func Views(text string) string {
	return countToken(viewsPattern, text)
}

// Hashtags returns every #word token in order of appearance.
func Hashtags(text string) []string {
	tags := hashtagPattern.FindAllString(text, -1)
	if tags == nil {
		return []string{}
	}
	return tags
}

// Mentions returns every @word token in order of appearance.
func Mentions(text string) []string {
	mentions := mentionPattern.FindAllString(text, -1)
	if mentions == nil {
		return []string{}
	}
	return mentions
}

// MediaURLs returns URL tokens that look like media assets, plus the
// side-channel image URL supplied by the content source, if any.
func MediaURLs(text, imageURL string) []string {
	urls := []string{}
	for _, u := range urlPattern.FindAllString(text, -1) {
		for _, marker := range mediaURLMarkers {
			if strings.Contains(u, marker) {
				urls = append(urls, u)
				break
			}
		}
	}
	if imageURL != "" {
		urls = append(urls, imageURL)
	}
	return urls
}

func countToken(p *regexp.Regexp, text string) string {
	if m := p.FindStringSubmatch(text); m != nil {
		return strings.ReplaceAll(m[1], ",", "")
	}
	return "0"
}

func firstCapture(p *regexp.Regexp, text string) string {
	if m := p.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func nonBlankLine(text string, index int) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if seen == index {
			return trimmed
		}
		seen++
	}
	return ""
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
