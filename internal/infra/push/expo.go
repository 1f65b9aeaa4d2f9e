package push

import (
	"context"

	"fervo/internal/pkg/errs"
	"fervo/internal/usecase/shared"

	"github.com/9ssi7/exponent"
)

// Publisher is the subset of the Expo client used here.
type Publisher interface {
	Publish(ctx context.Context, msgs []*exponent.Message) ([]*exponent.MessageResponse, error)
}

type ExpoSender struct {
	client Publisher
}

func NewExpoSender(client Publisher) *ExpoSender {
	return &ExpoSender{client: client}
}

func NewExpoClient(accessToken string) *exponent.Client {
	if accessToken == "" {
		return exponent.NewClient()
	}
	return exponent.NewClient(exponent.WithAccessToken(accessToken))
}

// Send fans one message out to every token of a user.
func (s *ExpoSender) Send(ctx context.Context, tokens []string, msg shared.PushMessage) error {
	if len(tokens) == 0 {
		return nil
	}

	msgs := make([]*exponent.Message, 0, len(tokens))
	for _, t := range tokens {
		token := exponent.Token(t)
		msgs = append(msgs, &exponent.Message{
			To:    []*exponent.Token{&token},
			Title: msg.Title,
			Body:  msg.Body,
			Data:  msg.Data,
		})
	}

	if _, err := s.client.Publish(ctx, msgs); err != nil {
		return errs.WrapAs(err, "expo publish", errs.ErrIntegrationFailed)
	}
	return nil
}

type DisabledSender struct{}

func (DisabledSender) Send(context.Context, []string, shared.PushMessage) error {
	return errs.ErrIntegrationDisabled
}
