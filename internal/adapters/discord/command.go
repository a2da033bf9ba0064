package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Slash command names. Kept in Korean, matching the server the bot was built
// for.
const (
	commandBind          = "지정"
	commandUnbind        = "해제"
	commandList          = "설정확인"
	commandHealthChannel = "상태채널"
	commandUsage         = "사용량"

	optionLanguage = "언어코드"
)

func commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandBind,
			Description: "현재 채널을 특정 언어로 등록합니다.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionLanguage,
					Description: "번역 언어 코드 (예: ko, en, ja)",
					Required:    true,
				},
			},
		},
		{
			Name:        commandUnbind,
			Description: "현재 채널의 언어 번역 설정을 해제합니다.",
		},
		{
			Name:        commandList,
			Description: "현재 설정된 번역 채널 목록을 확인합니다.",
		},
		{
			Name:        commandHealthChannel,
			Description: "현재 채널을 상태 알림 채널로 지정합니다.",
		},
		{
			Name:        commandUsage,
			Description: "오늘의 번역 사용량을 확인합니다.",
		},
	}
}
