package services

import (
	"context"
	"strings"

	"solotrip/internal/models/db_models"
	"solotrip/internal/repositories"
	"solotrip/pkg/logger"
	"solotrip/pkg/utils"
)

const maxCommentLength = 2000

// CommentPublisher fans a stored comment out to everyone watching the trip.
type CommentPublisher interface {
	PublishComment(ctx context.Context, comment *db_models.Comment) error
}

type CommentServiceInterface interface {
	List(ctx context.Context, tripID string) ([]db_models.Comment, error)
	Create(ctx context.Context, tripID, userID, userName, text string) (*db_models.Comment, error)
}

type CommentService struct {
	comments  repositories.CommentRepository
	publisher CommentPublisher
	log       *logger.Logger
}

func NewCommentService(comments repositories.CommentRepository, publisher CommentPublisher, log *logger.Logger) CommentServiceInterface {
	return &CommentService{comments: comments, publisher: publisher, log: log.With("service", "CommentService")}
}

func (s *CommentService) List(ctx context.Context, tripID string) ([]db_models.Comment, error) {
	comments, err := s.comments.ListByTrip(ctx, tripID)
	if err != nil {
		s.log.Error("listing comments", "trip_id", tripID, "error", err)
		return nil, utils.ErrDatabaseError
	}
	return comments, nil
}

// Create persists the comment first; a failed broadcast is logged and does not undo it.
func (s *CommentService) Create(ctx context.Context, tripID, userID, userName, text string) (*db_models.Comment, error) {
	text = strings.TrimSpace(text)
	var problems []string
	if strings.TrimSpace(tripID) == "" {
		problems = append(problems, "Trip id is required")
	}
	if text == "" {
		problems = append(problems, "Comment text is required")
	} else if len([]rune(text)) > maxCommentLength {
		problems = append(problems, "Comment text is too long")
	}
	if len(problems) > 0 {
		return nil, &utils.ValidationError{Errors: problems}
	}
	if userID == "" {
		return nil, utils.ErrUnauthorized
	}

	comment := &db_models.Comment{TripID: tripID, UserID: userID, UserName: userName, Text: text}
	if err := s.comments.Insert(ctx, comment); err != nil {
		s.log.Error("saving comment", "trip_id", tripID, "error", err)
		return nil, utils.ErrDatabaseError
	}

	if s.publisher != nil {
		if err := s.publisher.PublishComment(ctx, comment); err != nil {
			s.log.Warn("publishing comment", "trip_id", tripID, "comment_id", comment.ID, "error", err)
		}
	}
	return comment, nil
}
