package models

import (
	"fmt"
	"strings"
)

// ThreadConfig represents the structure of the thread_config.json file.
type ThreadConfig struct {
	ThreadChannels        []string        `json:"threadChannels" mapstructure:"threadChannels"`
	ThreadArchiveDuration ArchiveDuration `json:"threadArchiveDuration" mapstructure:"threadArchiveDuration"`
}

// HasChannel reports whether channelID is in the auto-thread allow-list.
func (c *ThreadConfig) HasChannel(channelID string) bool {
	if c == nil {
		return false
	}
	for _, id := range c.ThreadChannels {
		if id == channelID {
			return true
		}
	}
	return false
}

// ArchiveDuration is the auto-archive setting of a created thread, as written in the config.
type ArchiveDuration string

const (
	ArchiveOneHour   ArchiveDuration = "60"
	ArchiveOneDay    ArchiveDuration = "1440"
	ArchiveThreeDays ArchiveDuration = "4320"
	ArchiveOneWeek   ArchiveDuration = "10080"
	ArchiveMax       ArchiveDuration = "MAX"
)

var archiveMinutes = map[ArchiveDuration]int{
	ArchiveOneHour:   60,
	ArchiveOneDay:    1440,
	ArchiveThreeDays: 4320,
	ArchiveOneWeek:   10080,
	// Discord stopped gating the one week duration behind boosts, so MAX is always a week.
	ArchiveMax: 10080,
}

// ParseArchiveDuration validates a raw config value.
func ParseArchiveDuration(raw string) (ArchiveDuration, error) {
	d := ArchiveDuration(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := archiveMinutes[d]; !ok {
		return "", fmt.Errorf("invalid thread archive duration %q (want one of 60, 1440, 4320, 10080, MAX)", raw)
	}
	return d, nil
}

// Minutes returns the duration in the unit the Discord API expects.
func (d ArchiveDuration) Minutes() int {
	return archiveMinutes[d]
}
