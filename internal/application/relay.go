package application

import (
	"context"
	"errors"
	"fmt"
	"log"

	"translatorbot/internal/domain"
	"translatorbot/internal/domain/entities"
	"translatorbot/internal/ports/output"
)

// bindingSource is the slice of the registry the relay needs.
type bindingSource interface {
	List() []entities.ChannelBinding
	Language(channelID string) (string, bool)
}

// translator is satisfied by *TranslateGateway.
type translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// enqueuer is satisfied by *Dispatcher.
type enqueuer interface {
	Enqueue(item entities.OutboundItem)
}

// RelayService fans an inbound message out to every other bound channel,
// translated into each destination's language, and hands the results to the
// dispatch queue. Failures on one destination never affect the others.
type RelayService struct {
	registry bindingSource
	gateway  translator
	queue    enqueuer
	fetcher  output.AttachmentFetcher
	t        output.T
}

func NewRelayService(registry bindingSource, gateway translator, queue enqueuer, fetcher output.AttachmentFetcher, t output.T) *RelayService {
	return &RelayService{
		registry: registry,
		gateway:  gateway,
		queue:    queue,
		fetcher:  fetcher,
		t:        t,
	}
}

// Relay processes one inbound message. Messages from bots and messages from
// unbound channels are ignored.
func (s *RelayService) Relay(ctx context.Context, msg entities.Message) {
	if msg.AuthorBot {
		return
	}
	srcLang, ok := s.registry.Language(msg.ChannelID)
	if !ok {
		return
	}

	files := s.fetchImages(ctx, msg)

	// The same destination can show up more than once if storage ever holds
	// duplicate rows; each channel is delivered to at most once per message.
	notified := make(map[string]struct{})
	for _, b := range s.registry.List() {
		if b.ChannelID == msg.ChannelID {
			continue
		}
		if _, seen := notified[b.ChannelID]; seen {
			continue
		}
		notified[b.ChannelID] = struct{}{}
		s.relayTo(ctx, msg, srcLang, b, files)
	}
}

func (s *RelayService) relayTo(ctx context.Context, msg entities.Message, srcLang string, dest entities.ChannelBinding, files []entities.OutboundFile) {
	if msg.Content != "" {
		out, err := s.gateway.Translate(ctx, msg.Content, srcLang, dest.Language)
		switch {
		case err == nil:
			s.enqueueText(dest.ChannelID, msg.AuthorName, out)
		case errors.Is(err, domain.ErrQuotaExceeded):
			// Not an error worth logging; humans see the placeholder.
			s.enqueueText(dest.ChannelID, msg.AuthorName, s.t.T(dest.Language, "quota_exceeded", nil))
		default:
			s.enqueueText(dest.ChannelID, msg.AuthorName, s.t.T(dest.Language, "translate_failed", nil))
		}
	} else if len(files) > 0 {
		// A text-less image post still gets a text notice so the destination
		// is not silent while the files upload.
		s.enqueueText(dest.ChannelID, msg.AuthorName, s.t.T(dest.Language, "photo", nil))
	}

	for i := range files {
		file := files[i]
		s.queue.Enqueue(entities.OutboundItem{ChannelID: dest.ChannelID, File: &file})
	}
}

func (s *RelayService) enqueueText(channelID, author, text string) {
	s.queue.Enqueue(entities.OutboundItem{
		ChannelID: channelID,
		Text:      fmt.Sprintf("[%s] : %s", author, text),
	})
}

// fetchImages downloads the message's image attachments once, up front, so
// they are not re-fetched per destination. A failed download is logged and
// skipped; the rest of the message still relays.
func (s *RelayService) fetchImages(ctx context.Context, msg entities.Message) []entities.OutboundFile {
	var files []entities.OutboundFile
	for _, att := range msg.Attachments {
		if !att.IsImage() {
			continue
		}
		data, err := s.fetcher.Fetch(ctx, att.URL)
		if err != nil {
			log.Printf("⚠️ Attachment download failed (%s): %v", att.Filename, err)
			continue
		}
		files = append(files, entities.OutboundFile{
			Name:        att.Filename,
			ContentType: att.ContentType,
			Data:        data,
		})
	}
	return files
}
