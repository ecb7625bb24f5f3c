package render

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"egramseva-backend/internal/models"
)

// VideoKind classifies a video URL by how it must be played.
type VideoKind string

const (
	VideoYouTube VideoKind = "youtube"
	VideoVimeo   VideoKind = "vimeo"
	VideoDirect  VideoKind = "direct"
	VideoInvalid VideoKind = "invalid"
)

// VideoClassification is the declared validation outcome surfaced to the
// editor alongside the embeddable form of the URL.
type VideoClassification struct {
	Kind     VideoKind `json:"kind"`
	VideoID  string    `json:"video_id,omitempty"`
	EmbedURL string    `json:"embed_url,omitempty"`
	Valid    bool      `json:"valid"`
	Reason   string    `json:"reason,omitempty"`
}

var (
	youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/|shorts/)|youtu\.be/)([A-Za-z0-9_-]{11})`)
	vimeoIDPattern   = regexp.MustCompile(`vimeo\.com/(?:video/)?(\d+)`)
)

var directVideoExtensions = []string{".mp4", ".webm", ".ogg", ".ogv", ".mov", ".m4v"}

// ClassifyVideoURL resolves a URL into a YouTube or Vimeo embed, a direct
// file reference for a native player, or an invalid outcome with a reason.
func ClassifyVideoURL(raw string) VideoClassification {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return VideoClassification{Kind: VideoInvalid, Reason: "video URL is empty"}
	}

	if match := youtubeIDPattern.FindStringSubmatch(trimmed); match != nil {
		id := match[1]
		return VideoClassification{
			Kind:     VideoYouTube,
			VideoID:  id,
			EmbedURL: "https://www.youtube.com/embed/" + id,
			Valid:    true,
		}
	}

	if match := vimeoIDPattern.FindStringSubmatch(trimmed); match != nil {
		id := match[1]
		return VideoClassification{
			Kind:     VideoVimeo,
			VideoID:  id,
			EmbedURL: "https://player.vimeo.com/video/" + id,
			Valid:    true,
		}
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return VideoClassification{Kind: VideoInvalid, Reason: "not a recognisable video URL"}
	}

	lowerPath := strings.ToLower(parsed.Path)
	for _, ext := range directVideoExtensions {
		if strings.HasSuffix(lowerPath, ext) {
			return VideoClassification{
				Kind:     VideoDirect,
				EmbedURL: trimmed,
				Valid:    true,
			}
		}
	}

	return VideoClassification{Kind: VideoInvalid, Reason: "URL is neither a YouTube/Vimeo link nor a direct video file"}
}

func renderVideo(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()

	classification := ClassifyVideoURL(getString(cnt, "videoUrl"))
	if !classification.Valid {
		return ""
	}

	videoClass := fmt.Sprintf("%s__video", prefix)
	autoplay := parseBool(cnt["autoplay"], false)

	var sb strings.Builder
	sb.WriteString(`<div class="` + videoClass + `">`)

	switch classification.Kind {
	case VideoDirect:
		sb.WriteString(`<video class="` + videoClass + `-player" controls`)
		if autoplay {
			sb.WriteString(` autoplay muted`)
		}
		sb.WriteString(` src="` + esc(classification.EmbedURL) + `"></video>`)
	default:
		embed := classification.EmbedURL
		if autoplay {
			embed += "?autoplay=1"
		}
		sb.WriteString(fmt.Sprintf(
			`<iframe class="%s-frame" src="%s" allowfullscreen loading="lazy"></iframe>`,
			videoClass, esc(embed),
		))
	}

	if caption := strings.TrimSpace(getString(cnt, "caption")); caption != "" {
		sb.WriteString(`<p class="` + videoClass + `-caption">` + ctx.SanitizeHTML(caption) + `</p>`)
	}

	sb.WriteString(`</div>`)
	return sb.String()
}
