package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-studycards/internal/domain"
	"github.com/phrazzld/scry-studycards/internal/extract"
	"github.com/phrazzld/scry-studycards/internal/generation"
	"github.com/phrazzld/scry-studycards/internal/platform/logger"
)

// GenerateOptions carries per-run overrides.
type GenerateOptions struct {
	// PreferredModel is tried before the configured candidates when set.
	PreferredModel string
}

// StudyCardSet is the outcome of one successful pipeline run.
type StudyCardSet struct {
	RunID    uuid.UUID
	Cards    []domain.StudyCard
	Model    string
	Pages    int
	Windowed bool
	Attempts []generation.Attempt
}

// StudyCardService turns an uploaded document into study cards.
type StudyCardService interface {
	// GenerateFromDocument extracts the text of data and generates cards from it.
	// It returns the full card list or a single *generation.Error; never a partial result.
	GenerateFromDocument(ctx context.Context, data []byte, opts GenerateOptions) (*StudyCardSet, error)
}

// studyCardServiceImpl implements StudyCardService
type studyCardServiceImpl struct {
	extractor extract.Extractor
	generator generation.Generator
	logger    *slog.Logger
}

var _ StudyCardService = (*studyCardServiceImpl)(nil)

// NewStudyCardService creates a StudyCardService.
//
// A nil generator is allowed: it stands for a generator that could not be
// built because the API credential is missing, and every run that gets past
// the empty-payload check fails with a configuration error.
func NewStudyCardService(
	extractor extract.Extractor,
	generator generation.Generator,
	logger *slog.Logger,
) (StudyCardService, error) {
	if extractor == nil {
		return nil, fmt.Errorf("%w: extractor cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &studyCardServiceImpl{
		extractor: extractor,
		generator: generator,
		logger:    logger.With(slog.String("component", "study_card_service")),
	}, nil
}

// GenerateFromDocument implements StudyCardService
func (s *studyCardServiceImpl) GenerateFromDocument(
	ctx context.Context,
	data []byte,
	opts GenerateOptions,
) (*StudyCardSet, error) {
	runID := uuid.New()
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("run_id", runID.String()))
	ctx = logger.WithContext(ctx, log)
	start := time.Now()

	log.InfoContext(ctx, "study card run started", slog.Int("document_size", len(data)))

	if len(data) == 0 {
		return nil, s.fail(ctx, log, generation.EmptyDocumentError(extract.ErrEmptyPayload))
	}

	if s.generator == nil {
		return nil, s.fail(ctx, log, generation.MissingCredentialError())
	}

	doc, err := s.extractor.Extract(ctx, data)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.WarnContext(ctx, "study card run stopped during extraction", "error", err)
			return nil, err
		}
		return nil, s.fail(ctx, log, generation.CorruptDocumentError(err))
	}

	log.InfoContext(ctx, "document text extracted",
		slog.Int("text_length", len(doc.Text)),
		slog.Int("pages", doc.Pages))

	if strings.TrimSpace(doc.Text) == "" {
		return nil, s.fail(ctx, log, generation.NoTextError(nil))
	}

	result, err := s.generator.GenerateCards(ctx, generation.Request{
		Text:           doc.Text,
		PageCount:      doc.Pages,
		PreferredModel: opts.PreferredModel,
	})
	if err != nil {
		return nil, s.fail(ctx, log, err)
	}

	log.InfoContext(ctx, "study card run completed",
		slog.String("model", result.Model),
		slog.Int("card_count", len(result.Cards)),
		slog.Bool("windowed", result.Windowed),
		slog.Duration("duration", time.Since(start)))

	return &StudyCardSet{
		RunID:    runID,
		Cards:    result.Cards,
		Model:    result.Model,
		Pages:    doc.Pages,
		Windowed: result.Windowed,
		Attempts: result.Attempts,
	}, nil
}

func (s *studyCardServiceImpl) fail(ctx context.Context, log *slog.Logger, err error) error {
	log.WarnContext(ctx, "study card run failed",
		slog.String("kind", string(generation.KindOf(err))),
		slog.Any("error", err))
	return err
}
