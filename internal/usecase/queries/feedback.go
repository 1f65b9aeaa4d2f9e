package queries

import (
	"context"

	"fervo/internal/pkg/errs"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxFeedbackComments = 50

var (
	ErrNoFeedback = errs.New("no feedback to summarize")
)

type CommentReadStore interface {
	RecentComments(ctx context.Context, eventID uuid.UUID, limit int32) ([]string, error)
}

type FeedbackQueries interface {
	SummarizeFeedback(ctx context.Context, partnerID, eventID uuid.UUID) (*FeedbackSummaryView, error)
}

type feedbackQueriesImpl struct {
	events     EventReadStore
	comments   CommentReadStore
	summarizer shared.FeedbackSummarizer
	limit      int
}

func NewFeedbackQueries(events EventReadStore, comments CommentReadStore, summarizer shared.FeedbackSummarizer, limit int) FeedbackQueries {
	if limit <= 0 || limit > maxFeedbackComments {
		limit = maxFeedbackComments
	}
	return &feedbackQueriesImpl{events: events, comments: comments, summarizer: summarizer, limit: limit}
}

func (q *feedbackQueriesImpl) SummarizeFeedback(ctx context.Context, partnerID, eventID uuid.UUID) (*FeedbackSummaryView, error) {
	ev, _, err := q.events.FindCheckInTarget(ctx, partnerID, eventID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	comments, err := q.comments.RecentComments(ctx, eventID, int32(q.limit))
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, ErrNoFeedback
	}

	summary, err := q.summarizer.Summarize(ctx, ev.Name, comments)
	if err != nil {
		return nil, err
	}
	return &FeedbackSummaryView{EventID: eventID, CommentCount: len(comments), Summary: summary}, nil
}
