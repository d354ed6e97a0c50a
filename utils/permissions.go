package utils

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

var permissionNames = map[int64]string{
	discordgo.PermissionAddReactions:          "ADD_REACTIONS",
	discordgo.PermissionViewChannel:           "VIEW_CHANNEL",
	discordgo.PermissionSendMessages:          "SEND_MESSAGES",
	discordgo.PermissionManageMessages:        "MANAGE_MESSAGES",
	discordgo.PermissionEmbedLinks:            "EMBED_LINKS",
	discordgo.PermissionAttachFiles:           "ATTACH_FILES",
	discordgo.PermissionReadMessageHistory:    "READ_MESSAGE_HISTORY",
	discordgo.PermissionMentionEveryone:       "MENTION_EVERYONE",
	discordgo.PermissionUseExternalEmojis:     "USE_EXTERNAL_EMOJIS",
	discordgo.PermissionManageThreads:         "MANAGE_THREADS",
	discordgo.PermissionCreatePublicThreads:   "CREATE_PUBLIC_THREADS",
	discordgo.PermissionCreatePrivateThreads:  "CREATE_PRIVATE_THREADS",
	discordgo.PermissionSendMessagesInThreads: "SEND_MESSAGES_IN_THREADS",
}

// RequiredPermissions returns the permissions the bot must hold in a channel to auto-create threads there.
func RequiredPermissions() int64 {
	return discordgo.PermissionViewChannel |
		discordgo.PermissionSendMessages |
		discordgo.PermissionReadMessageHistory |
		discordgo.PermissionManageThreads |
		discordgo.PermissionCreatePublicThreads |
		discordgo.PermissionSendMessagesInThreads
}

// PermissionName returns the API name of a single permission flag.
func PermissionName(flag int64) string {
	if name, ok := permissionNames[flag]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_PERMISSION_%d", flag)
}

// MissingPermissions lists the flags of required not present in have, lowest bit first.
// Administrator is not special-cased here; effective permissions already expand it.
func MissingPermissions(have, required int64) []string {
	missing := required &^ have
	var names []string
	for bit := 0; bit < 63; bit++ {
		flag := int64(1) << bit
		if missing&flag != 0 {
			names = append(names, PermissionName(flag))
		}
	}
	return names
}

// FormatMissingPermissions renders the warning posted to a channel where the bot lacks permissions.
func FormatMissingPermissions(missing []string) string {
	header := "Missing permission:"
	if len(missing) > 1 {
		header = "Missing permissions:"
	}
	return header + "\n    - " + strings.Join(missing, "\n    - ")
}
