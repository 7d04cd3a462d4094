package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChannelQuery(t *testing.T) {
	const id = "UC_x5XG1OV2P6uZZ5FSM9Ttw"

	tests := []struct {
		name  string
		query string
		want  channelRef
	}{
		{"free text", "Google Developers", channelRef{refSearch, "Google Developers"}},
		{"single word", "mkbhd", channelRef{refSearch, "mkbhd"}},
		{"raw channel id", id, channelRef{refChannelID, id}},
		{"bare handle", "@GoogleDevelopers", channelRef{refHandle, "GoogleDevelopers"}},
		{"lone at sign", "@", channelRef{refSearch, "@"}},
		{"channel url", "https://www.youtube.com/channel/" + id, channelRef{refChannelID, id}},
		{"channel url with tab", "https://www.youtube.com/channel/" + id + "/videos", channelRef{refChannelID, id}},
		{"handle url", "https://youtube.com/@mkbhd", channelRef{refHandle, "mkbhd"}},
		{"handle url without scheme", "youtube.com/@mkbhd/", channelRef{refHandle, "mkbhd"}},
		{"custom url", "https://www.youtube.com/c/GoogleDevelopers", channelRef{refUsername, "GoogleDevelopers"}},
		{"legacy user url", "http://m.youtube.com/user/GoogleDevelopers", channelRef{refUsername, "GoogleDevelopers"}},
		{"video url", "https://www.youtube.com/watch?v=abc", channelRef{refUnsupported, "https://www.youtube.com/watch?v=abc"}},
		{"short link", "https://youtu.be/abc", channelRef{refUnsupported, "https://youtu.be/abc"}},
		{"other site", "https://example.com/@someone", channelRef{refSearch, "https://example.com/@someone"}},
		{"padded", "  mkbhd  ", channelRef{refSearch, "mkbhd"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseChannelQuery(tt.query))
		})
	}
}
