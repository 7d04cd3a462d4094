package api

import (
	"net/url"
	"regexp"
	"strings"
)

type refKind int

const (
	refSearch refKind = iota
	refChannelID
	refHandle
	refUsername
	refUnsupported
)

// channelRef is what a user query points at before any API call is made
type channelRef struct {
	kind  refKind
	value string
}

var channelIDPattern = regexp.MustCompile(`^UC[A-Za-z0-9_-]{22}$`)

// parseChannelQuery recognises the channel URL formats YouTube uses, bare
// @handles and raw channel ids. Anything else is a free-text search.
func parseChannelQuery(query string) channelRef {
	query = strings.TrimSpace(query)

	if channelIDPattern.MatchString(query) {
		return channelRef{kind: refChannelID, value: query}
	}
	if strings.HasPrefix(query, "@") && !strings.ContainsAny(query, " /") && len(query) > 1 {
		return channelRef{kind: refHandle, value: strings.TrimPrefix(query, "@")}
	}

	raw := query
	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		if !looksLikeYouTubeHost(lower) {
			return channelRef{kind: refSearch, value: query}
		}
		raw = "https://" + raw
	}

	parsedURL, err := url.Parse(raw)
	if err != nil {
		return channelRef{kind: refSearch, value: query}
	}
	host := strings.ToLower(parsedURL.Host)

	switch {
	case strings.Contains(host, "youtube.com"):
		path := strings.TrimSuffix(parsedURL.Path, "/")
		segment := func(prefix string) string {
			rest := strings.TrimPrefix(path, prefix)
			if i := strings.Index(rest, "/"); i >= 0 {
				rest = rest[:i]
			}
			return rest
		}
		switch {
		case strings.HasPrefix(path, "/channel/"):
			if id := segment("/channel/"); id != "" {
				return channelRef{kind: refChannelID, value: id}
			}
		case strings.HasPrefix(path, "/@"):
			if handle := segment("/@"); handle != "" {
				return channelRef{kind: refHandle, value: handle}
			}
		case strings.HasPrefix(path, "/c/"):
			if name := segment("/c/"); name != "" {
				return channelRef{kind: refUsername, value: name}
			}
		case strings.HasPrefix(path, "/user/"):
			if name := segment("/user/"); name != "" {
				return channelRef{kind: refUsername, value: name}
			}
		}
		return channelRef{kind: refUnsupported, value: query}
	case strings.Contains(host, "youtu.be"):
		// youtu.be links point at videos, not channels
		return channelRef{kind: refUnsupported, value: query}
	}

	return channelRef{kind: refSearch, value: query}
}

func looksLikeYouTubeHost(s string) bool {
	for _, prefix := range []string{"youtube.com/", "www.youtube.com/", "m.youtube.com/", "youtu.be/"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
