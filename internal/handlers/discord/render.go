package discord

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/boardslol/staffbot/internal/models"
	"github.com/boardslol/staffbot/internal/services/roles"
	"github.com/bwmarrin/discordgo"
)

// renderLOACard builds the approval card for a pending request. The buttons
// carry the request ID; nothing about the requester is re-derived from the
// rendered fields.
func renderLOACard(request *models.LOARequest) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title: "Leave of Absence Request",
		Color: 0x0099ff, // Blue color
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Duration", Value: request.Duration},
			{Name: "Start Date", Value: request.StartDate},
			{Name: "Reason", Value: request.Reason},
			{Name: "Requested by", Value: request.RequesterTag},
		},
	}

	acceptButton := discordgo.Button{
		Label:    "Accept",
		Style:    discordgo.SuccessButton,
		CustomID: ButtonLOAAccept + request.ID,
	}

	declineButton := discordgo.Button{
		Label:    "Decline",
		Style:    discordgo.DangerButton,
		CustomID: ButtonLOADecline + request.ID,
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{acceptButton, declineButton},
			},
		},
	}
}

// renderResolvedLOACard rewrites the approval card after a decision, dropping
// the buttons so the outcome is visible in the log channel
func renderResolvedLOACard(request *models.LOARequest) *discordgo.MessageEdit {
	status := "Declined ❌"
	color := 0xff0000 // Red color
	if request.Status == models.LOAStatusAccepted {
		status = "Accepted ✅"
		color = 0x00ff00 // Green color
	}

	embed := &discordgo.MessageEmbed{
		Title: "Leave of Absence Request",
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Duration", Value: request.Duration},
			{Name: "Start Date", Value: request.StartDate},
			{Name: "Reason", Value: request.Reason},
			{Name: "Requested by", Value: request.RequesterTag},
			{Name: "Status", Value: status},
			{Name: "Resolved by", Value: fmt.Sprintf("<@%s>", request.ResolvedBy)},
		},
	}

	embeds := []*discordgo.MessageEmbed{embed}
	var emptyComponents []discordgo.MessageComponent

	return &discordgo.MessageEdit{
		Channel:    request.ChannelID,
		ID:         request.MessageID,
		Embeds:     &embeds,
		Components: &emptyComponents,
	}
}

// renderWelcomeEmbed builds the welcome message for a new member
func renderWelcomeEmbed(member *discordgo.Member) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Welcome to boards.lol!",
		Description: fmt.Sprintf("Welcome <@%s>, to boards.lol! 🎉\n\nIf you're here for support please go to our website, https://boards.lol.", member.User.ID),
		Color:       0x0099ff, // Blue color
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: member.User.AvatarURL("1024"),
		},
	}
}

// renderSOTDEmbed builds the song of the day announcement
func renderSOTDEmbed(song models.Song) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎶 Song of the Day",
		Description: fmt.Sprintf("**%s** by **%s**\n[🎧 Listen on Spotify](%s)", song.Name, song.Artist, song.Link),
		Color:       randomPastelColor(),
	}
}

// renderRoleMessageEmbed builds the reaction role instructional embed
func renderRoleMessageEmbed(bindings []roles.Binding) *discordgo.MessageEmbed {
	var lines []string
	for _, b := range bindings {
		lines = append(lines, fmt.Sprintf("%s - %s", b.Emoji, b.Label))
	}

	return &discordgo.MessageEmbed{
		Title: "📢 Reaction Roles",
		Description: "React below to get notified about different events in the server! 🚀\n\n" +
			strings.Join(lines, "\n") +
			"\n\nClick the reaction that corresponds to the role you want!",
		Color: 0x7289da, // Blurple color
	}
}

// renderRoleChangeEmbed builds the DM confirming a reaction role change
func renderRoleChangeEmbed(emoji string, granted bool) *discordgo.MessageEmbed {
	if granted {
		return &discordgo.MessageEmbed{
			Title:       "✅ Role Assigned!",
			Description: fmt.Sprintf("You have been given the **%s** role!", emoji),
			Color:       0x00ff00, // Green color
		}
	}

	return &discordgo.MessageEmbed{
		Title:       "❌ Role Removed!",
		Description: fmt.Sprintf("Your **%s** role has been removed.", emoji),
		Color:       0xff0000, // Red color
	}
}

// renderWarningsEmbed builds the warning list for a user. The displayed IDs
// are positions in the ledger, not stable identifiers.
func renderWarningsEmbed(userTag string, reasons []string) *discordgo.MessageEmbed {
	var lines []string
	for n, reason := range reasons {
		lines = append(lines, fmt.Sprintf("**ID**: %d - %s", n+1, reason))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Warnings for %s", userTag),
		Description: strings.Join(lines, "\n"),
		Color:       0xff0000, // Red color
	}
}

// renderShiftEmbed builds the shift announcement
func renderShiftEmbed(shift models.Shift) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Shift Started",
		Color: 0x0099ff, // Blue color
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Description", Value: shift.Description},
			{Name: "Started by", Value: shift.StartedBy},
		},
	}
}

// renderStaffListEmbed builds the staff member list
func renderStaffListEmbed(memberIDs []string) *discordgo.MessageEmbed {
	var lines []string
	for _, id := range memberIDs {
		lines = append(lines, fmt.Sprintf("<@%s>", id))
	}

	return &discordgo.MessageEmbed{
		Title:       "Staff Members",
		Description: strings.Join(lines, "\n"),
		Color:       0x00ff00, // Green color
	}
}

// randomPastelColor picks a soft random embed color by mixing toward white
func randomPastelColor() int {
	r := (rand.Intn(256) + 255) / 2
	g := (rand.Intn(256) + 255) / 2
	b := (rand.Intn(256) + 255) / 2
	return r<<16 | g<<8 | b
}
