package analytics

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"cat-poster/internal/storage"
)

// DailyStats summarises the posts of one day.
type DailyStats struct {
	Date             string         `json:"date"`
	TotalPosts       int            `json:"total_posts"`
	UniqueImages     int            `json:"unique_images"`
	PostsByProfile   map[string]int `json:"posts_by_profile"`
	Hashtags         map[string]int `json:"hashtags"`
	AvgCaptionLength float64        `json:"avg_caption_length"`
	MaxCaptionLength int            `json:"max_caption_length"`
}

// AnalyzeDailyPosts aggregates the posts whose timestamp falls on targetDate's calendar day.
func AnalyzeDailyPosts(posts []storage.Post, targetDate time.Time) *DailyStats {
	startOfDay := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	stats := &DailyStats{
		Date:           startOfDay.Format("2006-01-02"),
		PostsByProfile: make(map[string]int),
		Hashtags:       make(map[string]int),
	}

	images := make(map[string]bool)
	totalLen := 0
	for _, p := range posts {
		if p.Timestamp.Before(startOfDay) || !p.Timestamp.Before(endOfDay) {
			continue
		}
		stats.TotalPosts++
		if p.ImageID != "" {
			images[p.ImageID] = true
		}
		profile := p.Profile
		if profile == "" {
			profile = "unknown"
		}
		stats.PostsByProfile[profile]++

		for _, word := range strings.Fields(p.Caption) {
			if strings.HasPrefix(word, "#") && len(word) > 1 {
				stats.Hashtags[word]++
			}
		}

		n := utf8.RuneCountInString(p.Caption)
		totalLen += n
		if n > stats.MaxCaptionLength {
			stats.MaxCaptionLength = n
		}
	}

	stats.UniqueImages = len(images)
	if stats.TotalPosts > 0 {
		stats.AvgCaptionLength = float64(totalLen) / float64(stats.TotalPosts)
	}
	return stats
}

// Summary renders a short human-readable report.
func (ds *DailyStats) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Posts on %s: %d (%d unique images)\n", ds.Date, ds.TotalPosts, ds.UniqueImages)
	if ds.TotalPosts == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "Caption length: avg %.1f, max %d\n", ds.AvgCaptionLength, ds.MaxCaptionLength)

	b.WriteString("By profile:\n")
	for _, k := range sortedKeys(ds.PostsByProfile) {
		fmt.Fprintf(&b, "- %s: %d\n", k, ds.PostsByProfile[k])
	}
	if len(ds.Hashtags) > 0 {
		b.WriteString("Hashtags:\n")
		for _, k := range sortedKeys(ds.Hashtags) {
			fmt.Fprintf(&b, "- %s: %d\n", k, ds.Hashtags[k])
		}
	}
	return b.String()
}

// ToJSON serialises the stats for machine consumption.
func (ds *DailyStats) ToJSON() (string, error) {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
