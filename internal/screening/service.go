// Package screening wires normalization, skill matching and similarity ranking
// into the two operations exposed to callers: skill extraction for one
// document and relevance ranking for a batch.
package screening

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/normalize"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	defaultConcurrency = 4
	maxLoggedJobChars  = 80
)

// LexiconLoader returns a freshly loaded lexicon; it never fails
type LexiconLoader interface {
	Load(ctx context.Context) *types.SkillLexicon
}

// DocumentExtractor returns a document's text, degrading parse failures to
// empty text and failing only for unsupported formats
type DocumentExtractor interface {
	ExtractOrEmpty(ctx context.Context, path string, format extraction.Format) (string, error)
}

// File is a stored upload awaiting extraction
type File struct {
	Name string // Original file name, used as the document identifier
	Path string // Location on disk
}

// Service runs pipeline invocations. It holds only read-only collaborators and
// is safe for concurrent use.
type Service struct {
	resource    *normalize.Resource
	lexicons    LexiconLoader
	documents   DocumentExtractor
	skills      *skills.Extractor
	concurrency int
	logger      *zap.Logger
}

// Option configures a Service
type Option func(*Service)

// WithDisplayPolicy sets the policy applied to matched skills
func WithDisplayPolicy(policy skills.DisplayPolicy) Option {
	return func(s *Service) { s.skills = skills.NewExtractor(policy) }
}

// WithConcurrency limits how many documents of a batch are extracted at once
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithLogger sets the service logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service
func New(resource *normalize.Resource, lexicons LexiconLoader, documents DocumentExtractor, opts ...Option) *Service {
	s := &Service{
		resource:    resource,
		lexicons:    lexicons,
		documents:   documents,
		skills:      skills.NewExtractor(nil),
		concurrency: defaultConcurrency,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExtractSkills tags a document's text with the hard and soft skills of the
// current lexicon. An unavailable lexicon yields empty lists.
func (s *Service) ExtractSkills(ctx context.Context, text string) types.SkillsResult {
	var lex *types.SkillLexicon
	if s.lexicons != nil {
		lex = s.lexicons.Load(ctx)
	}
	if lex.IsEmpty() {
		s.logger.Warn("skill lexicon is empty, no skills can match")
	}
	result := s.skills.Extract(text, lex)
	s.logger.Debug("extracted skills",
		zap.Int("hard", len(result.HardSkills)),
		zap.Int("soft", len(result.SoftSkills)),
	)
	return result
}

// RankCandidates orders candidate texts by similarity to the job description.
// The returned indexes refer to candidateTexts; zero candidates yield an empty ranking.
func (s *Service) RankCandidates(_ context.Context, candidateTexts []string, jobDescription string) []types.RankedCandidate {
	if len(candidateTexts) == 0 {
		return []types.RankedCandidate{}
	}

	normalized := make([]string, len(candidateTexts))
	for i, text := range candidateTexts {
		normalized[i] = s.resource.Linguistic(text)
	}
	return ranking.RankDocuments(normalized, s.resource.Linguistic(jobDescription))
}

// ExtractSkillsFromFile extracts a stored document and tags it with skills.
// Unsupported formats fail; unreadable documents yield empty lists.
func (s *Service) ExtractSkillsFromFile(ctx context.Context, file File) (types.SkillsResult, error) {
	text, err := s.documents.ExtractOrEmpty(ctx, file.Path, extraction.DetectFormat(file.Name))
	if err != nil {
		return types.SkillsResult{}, err
	}
	return s.ExtractSkills(ctx, text), nil
}

// RankFiles extracts every file concurrently and ranks the readable ones
// against the job description. Files with unsupported formats are skipped and
// reported; no single file aborts the batch. Only context cancellation is
// returned as an error.
func (s *Service) RankFiles(ctx context.Context, files []File, jobDescription string) (types.RankingResult, error) {
	texts := make([]string, len(files))
	failures := make([]error, len(files))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, file := range files {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			text, err := s.documents.ExtractOrEmpty(gCtx, file.Path, extraction.DetectFormat(file.Name))
			if err != nil {
				failures[i] = err
				return nil
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return types.RankingResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return types.RankingResult{}, err
	}

	result := types.RankingResult{Matched: []types.CandidateMatch{}}
	var docs []types.Document
	for i, file := range files {
		if failures[i] != nil {
			reason := failures[i].Error()
			if errors.Is(failures[i], extraction.ErrUnsupportedFormat) {
				reason = "unsupported file type"
			}
			s.logger.Warn("skipping document", zap.String("name", file.Name), zap.Error(failures[i]))
			result.Skipped = append(result.Skipped, types.SkippedDocument{Name: file.Name, Reason: reason})
			continue
		}
		docs = append(docs, types.Document{ID: file.Name, Text: texts[i]})
	}

	candidates := make([]string, len(docs))
	for i, doc := range docs {
		candidates[i] = doc.Text
	}
	for _, rc := range s.RankCandidates(ctx, candidates, jobDescription) {
		result.Matched = append(result.Matched, types.CandidateMatch{Name: docs[rc.Index].ID, Score: rc.Score})
	}

	s.logger.Info("ranked candidates",
		zap.Int("matched", len(result.Matched)),
		zap.Int("skipped", len(result.Skipped)),
		zap.String("job", logger.TruncateForLog(jobDescription, maxLoggedJobChars)),
	)
	return result, nil
}
