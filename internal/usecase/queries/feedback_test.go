//go:build unit

package queries_test

import (
	"context"
	"testing"

	"fervo/internal/infra"
	"fervo/internal/usecase/queries"
	"fervo/tests/common/testutil"
	queriesmock "fervo/tests/mock/queries"
	sharedmock "fervo/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FeedbackQueriesTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	events     *queriesmock.MockEventReadStore
	comments   *queriesmock.MockCommentReadStore
	summarizer *sharedmock.MockFeedbackSummarizer
	partnerID  uuid.UUID
	eventID    uuid.UUID
}

func (s *FeedbackQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.events = queriesmock.NewMockEventReadStore(s.ctrl)
	s.comments = queriesmock.NewMockCommentReadStore(s.ctrl)
	s.summarizer = sharedmock.NewMockFeedbackSummarizer(s.ctrl)
	s.partnerID = uuid.New()
	s.eventID = uuid.New()
}

func (s *FeedbackQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFeedbackQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(FeedbackQueriesTestSuite))
}

func (s *FeedbackQueriesTestSuite) queries(limit int) queries.FeedbackQueries {
	return queries.NewFeedbackQueries(s.events, s.comments, s.summarizer, limit)
}

func (s *FeedbackQueriesTestSuite) TestSummarizeFeedback() {
	ctx := context.Background()
	view := &queries.EventView{ID: s.eventID, PartnerID: s.partnerID, Name: "Friday Techno"}

	s.Run("single generate call over recent comments", func() {
		s.events.EXPECT().FindCheckInTarget(ctx, s.partnerID, s.eventID).Return(view, "tok", nil)
		s.comments.EXPECT().RecentComments(ctx, s.eventID, int32(50)).Return([]string{"great", "too crowded"}, nil)
		s.summarizer.EXPECT().Summarize(ctx, "Friday Techno", []string{"great", "too crowded"}).Return("Guests loved it.", nil).Times(1)

		res, err := s.queries(0).SummarizeFeedback(ctx, s.partnerID, s.eventID)
		s.Require().NoError(err)
		s.Equal(2, res.CommentCount)
		s.Equal("Guests loved it.", res.Summary)
	})

	s.Run("limit is capped", func() {
		s.events.EXPECT().FindCheckInTarget(ctx, s.partnerID, s.eventID).Return(view, "tok", nil)
		s.comments.EXPECT().RecentComments(ctx, s.eventID, int32(50)).Return(nil, nil)

		_, err := s.queries(500).SummarizeFeedback(ctx, s.partnerID, s.eventID)
		testutil.AssertErrorIs(s.T(), err, queries.ErrNoFeedback)
	})

	s.Run("no comments skips the model", func() {
		s.events.EXPECT().FindCheckInTarget(ctx, s.partnerID, s.eventID).Return(view, "tok", nil)
		s.comments.EXPECT().RecentComments(ctx, s.eventID, int32(20)).Return([]string{}, nil)

		_, err := s.queries(20).SummarizeFeedback(ctx, s.partnerID, s.eventID)
		testutil.AssertErrorIs(s.T(), err, queries.ErrNoFeedback)
	})

	s.Run("event of another partner", func() {
		s.events.EXPECT().FindCheckInTarget(ctx, s.partnerID, s.eventID).
			Return(nil, "", infra.WrapRepoErr("event not found", nil, infra.KindNotFound))

		_, err := s.queries(0).SummarizeFeedback(ctx, s.partnerID, s.eventID)
		testutil.AssertErrorIs(s.T(), err, queries.ErrEventNotFound)
	})
}
