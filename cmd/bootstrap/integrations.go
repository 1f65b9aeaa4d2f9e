package bootstrap

import (
	"context"
	"log/slog"

	"fervo/internal/infra/billing"
	"fervo/internal/infra/directory"
	"fervo/internal/infra/llm"
	"fervo/internal/infra/media"
	"fervo/internal/infra/push"
	"fervo/internal/pkg/config"
	"fervo/internal/usecase/shared"

	"go.uber.org/fx"
)

// IntegrationModule picks the real adapter when configured and the
// Disabled variant otherwise.
var IntegrationModule = fx.Module("integration",
	fx.Provide(
		NewBillingGateway,
		NewDirectoryMirror,
		NewImageStore,
		NewPushSender,
		NewFeedbackSummarizer,
	),
)

func NewBillingGateway(cfg config.Config, logger *slog.Logger) shared.BillingGateway {
	if !cfg.Stripe.Enabled() {
		logger.Info("stripe disabled")
		return billing.Disabled{}
	}
	return billing.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, cfg.Stripe.SuccessURL, cfg.Stripe.CancelURL)
}

func NewDirectoryMirror(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.DirectoryMirror, error) {
	if !cfg.Firestore.Enabled() {
		logger.Info("firestore mirror disabled")
		return directory.Disabled{}, nil
	}
	client, err := directory.NewFirestoreClient(context.Background(), cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return directory.NewFirestoreMirror(client), nil
}

func NewImageStore(cfg config.Config, logger *slog.Logger) (shared.ImageStore, error) {
	if !cfg.Cloudinary.Enabled() {
		logger.Info("cloudinary disabled")
		return media.Disabled{}, nil
	}
	return media.NewCloudinaryStore(cfg.Cloudinary.URL, cfg.Cloudinary.Folder)
}

func NewPushSender(cfg config.Config, logger *slog.Logger) shared.PushSender {
	if !cfg.Push.Enabled {
		logger.Info("expo push disabled")
		return push.DisabledSender{}
	}
	return push.NewExpoSender(push.NewExpoClient(cfg.Push.ExpoAccessToken))
}

func NewFeedbackSummarizer(cfg config.Config, logger *slog.Logger) shared.FeedbackSummarizer {
	if !cfg.AI.Enabled() {
		logger.Info("feedback summary disabled")
		return llm.Disabled{}
	}
	return llm.NewGenkitSummarizer(context.Background(), cfg.AI.GoogleAPIKey, cfg.AI.Model)
}
