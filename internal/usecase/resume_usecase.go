package usecase

import (
	"context"

	"sitebuilder/internal/domain/resume"
	"sitebuilder/internal/infrastructure/upload"

	"github.com/rs/zerolog"
)

type UploadedFile struct {
	Name string
	Data []byte
}

type ResumeAnalysis struct {
	Parsed resume.ParsedResume `json:"parsed"`
	Score  resume.ScoreResult  `json:"score"`
	// Path is where the upload was stored.
	Path string `json:"-"`
}

type ResumeUsecase interface {
	Analyze(ctx context.Context, file *UploadedFile, desiredSkills string) (ResumeAnalysis, error)
}

type Resume struct {
	parser  *resume.Parser
	scorer  *resume.Scorer
	storage upload.Storage
	logger  zerolog.Logger
}

func NewResumeUsecase(parser *resume.Parser, scorer *resume.Scorer, storage upload.Storage, logger zerolog.Logger) *Resume {
	if parser == nil {
		parser = resume.NewParser(resume.DefaultVocabulary())
	}
	if scorer == nil {
		scorer = resume.NewScorer(resume.DefaultWeights())
	}
	return &Resume{parser: parser, scorer: scorer, storage: storage, logger: logger}
}

// Analyze stores the upload, extracts its text, then parses and scores it
// against the comma separated desired skills.
func (u *Resume) Analyze(ctx context.Context, file *UploadedFile, desiredSkills string) (ResumeAnalysis, error) {
	if file == nil {
		return ResumeAnalysis{}, ErrMissingFile
	}

	path, err := u.store(ctx, file)
	if err != nil {
		return ResumeAnalysis{}, err
	}

	parsed := u.parse(file)
	return ResumeAnalysis{Parsed: parsed, Score: u.score(parsed, desiredSkills), Path: path}, nil
}

func (u *Resume) parse(file *UploadedFile) resume.ParsedResume {
	return u.parser.Parse(upload.ExtractText(file.Data))
}

func (u *Resume) score(parsed resume.ParsedResume, desiredSkills string) resume.ScoreResult {
	return u.scorer.Score(parsed, resume.SplitDesiredSkills(desiredSkills))
}

func (u *Resume) store(ctx context.Context, file *UploadedFile) (string, error) {
	if u.storage == nil {
		return "", nil
	}
	path, err := u.storage.Save(ctx, file.Name, file.Data)
	if err != nil {
		u.logger.Error().Err(err).Str("file", file.Name).Msg("store upload failed")
		return "", ErrInternal
	}
	return path, nil
}
