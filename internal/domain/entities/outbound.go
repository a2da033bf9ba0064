package entities

// OutboundFile is an attachment fetched from the source channel, ready to be
// re-uploaded to a destination channel.
type OutboundFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// OutboundItem is one pending delivery on the dispatch queue. Exactly one of
// Text / File is set; each item is consumed once by the dispatcher and then
// discarded.
type OutboundItem struct {
	ChannelID string
	Text      string
	File      *OutboundFile
}
