package entities

// ChannelBinding associates a Discord channel with the language its members
// write in. Messages posted there are translated into every other bound
// channel's language.
type ChannelBinding struct {
	ChannelID string
	Language  string
}
