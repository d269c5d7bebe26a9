package orgguess

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"orgguess/internal/language"
	"orgguess/internal/logging"
	"orgguess/internal/ner"
	"orgguess/internal/textutil"
)

// Options configures a Guesser.
type Options struct {
	// Registry supplies language pipelines. Nil uses ner.NewDefaultRegistry.
	Registry *ner.Registry
	// TiePolicy settles ties between equally frequent organizations.
	TiePolicy TiePolicy
	// OrgLabels lists entity labels counted as organizations. Empty means ORG.
	OrgLabels []string
	// Language is used when a call passes an empty language. Empty means "en".
	Language string
	Logger   *slog.Logger
}

// Guesser picks the most mentioned organization in a batch of texts.
// It is safe for concurrent use.
type Guesser struct {
	registry *ner.Registry
	tie      TiePolicy
	labels   map[string]struct{}
	lang     string
	logger   *slog.Logger
}

// Result explains how a guess was reached.
type Result struct {
	// Organization is the winning organization in slug form.
	Organization string `json:"organization" yaml:"organization"`
	// Raw is the winning entity text as the recognizer reported it.
	Raw      string `json:"raw" yaml:"raw"`
	Count    int    `json:"count" yaml:"count"`
	Language string `json:"language" yaml:"language"`
	// Texts is the number of non-blank texts analyzed.
	Texts int `json:"texts" yaml:"texts"`
	// Tied lists every candidate that shared the winning count when more
	// than one did.
	Tied       []Candidate `json:"tied,omitempty" yaml:"tied,omitempty"`
	Candidates Ranking     `json:"candidates" yaml:"candidates"`
}

// New builds a Guesser from opts.
func New(opts Options) *Guesser {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	registry := opts.Registry
	if registry == nil {
		registry = ner.NewDefaultRegistry(ner.Options{Logger: logger})
	}
	tie := opts.TiePolicy
	if tie == "" {
		tie = TieFirst
	}
	labels := make(map[string]struct{}, len(opts.OrgLabels)+1)
	for _, label := range opts.OrgLabels {
		if label = strings.ToUpper(strings.TrimSpace(label)); label != "" {
			labels[label] = struct{}{}
		}
	}
	if len(labels) == 0 {
		labels[ner.LabelOrganization] = struct{}{}
	}
	lang := strings.TrimSpace(opts.Language)
	if lang == "" {
		lang = "en"
	}
	return &Guesser{
		registry: registry,
		tie:      tie,
		labels:   labels,
		lang:     lang,
		logger:   logging.NewComponentLogger(logger, "guess"),
	}
}

var (
	defaultOnce    sync.Once
	defaultGuesser *Guesser
)

// GuessOrganization guesses the organization texts mention most, using the
// built-in pipelines and first-mention tie breaking.
func GuessOrganization(texts []string, lang string) (string, error) {
	defaultOnce.Do(func() {
		defaultGuesser = New(Options{})
	})
	return defaultGuesser.Guess(context.Background(), texts, lang)
}

// Guess returns the slug of the organization texts mention most. An empty
// lang selects the guesser's default language.
func (g *Guesser) Guess(ctx context.Context, texts []string, lang string) (string, error) {
	result, err := g.Explain(ctx, texts, lang)
	if err != nil {
		return "", err
	}
	return result.Organization, nil
}

// Explain is Guess with the full ranking and tie details.
func (g *Guesser) Explain(ctx context.Context, texts []string, lang string) (Result, error) {
	code, mentions, analyzed, err := g.collect(ctx, texts, lang)
	if err != nil {
		return Result{}, err
	}
	logger := logging.WithContext(ctx, g.logger).With(logging.String(logging.FieldLanguage, code))

	ranking := Tally(mentions)
	if len(ranking) == 0 {
		return Result{}, Wrap(ErrNoOrganization, "guess",
			fmt.Sprintf("%d texts analyzed in %s", analyzed, language.DisplayName(code)), nil)
	}

	tag := language.Tag(code)
	sameOrg := func(a, b string) bool {
		return textutil.NormalizeOrganization(a, tag) == textutil.NormalizeOrganization(b, tag)
	}
	winner, err := ranking.Mode(g.tie, sameOrg)
	if err != nil {
		return Result{}, Wrap(nil, "guess", "", err)
	}

	result := Result{
		Organization: textutil.NormalizeOrganization(winner.Text, tag),
		Raw:          winner.Text,
		Count:        winner.Count,
		Language:     code,
		Texts:        analyzed,
		Candidates:   ranking,
	}
	if leaders := ranking.Leaders(); len(leaders) > 1 {
		result.Tied = leaders
		logging.WarnWithContext(logger, "organization tie settled by policy", "tie_break",
			logging.String("tie_policy", string(g.tie)),
			logging.String("winner", winner.Text),
			logging.Int("tied_candidates", len(leaders)),
			logging.Int("mentions", winner.Count),
			logging.String(logging.FieldErrorHint, "use --tie error to reject ambiguous batches"),
			logging.String(logging.FieldImpact, "another organization had the same number of mentions"),
		)
	}
	logger.Info("organization guessed",
		logging.String("organization", result.Organization),
		logging.Int("mentions", result.Count),
		logging.Int("candidates", len(ranking)),
		logging.Int("texts", analyzed),
	)
	return result, nil
}

// Rank returns every organization mentioned in texts, most frequent first.
// An empty ranking is not an error.
func (g *Guesser) Rank(ctx context.Context, texts []string, lang string) (Ranking, error) {
	_, mentions, _, err := g.collect(ctx, texts, lang)
	if err != nil {
		return nil, err
	}
	return Tally(mentions), nil
}

// Entities returns the raw entities recognized in each text, one slice per
// input text. Blank texts yield a nil slice.
func (g *Guesser) Entities(ctx context.Context, texts []string, lang string) ([][]ner.Entity, error) {
	pipeline, code, err := g.pipeline(lang)
	if err != nil {
		return nil, err
	}
	out := make([][]ner.Entity, len(texts))
	analyzed := 0
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		analyzed++
		ents, err := pipeline.Recognize(text)
		if err != nil {
			return nil, Wrap(nil, "recognize", fmt.Sprintf("text %d (%s)", i, code), err)
		}
		out[i] = ents
	}
	if analyzed == 0 {
		return nil, ErrNoTexts
	}
	return out, nil
}

// collect runs the pipeline over texts and returns the organization mentions
// in order, together with the resolved language and the number of non-blank
// texts.
func (g *Guesser) collect(ctx context.Context, texts []string, lang string) (string, []string, int, error) {
	pipeline, code, err := g.pipeline(lang)
	if err != nil {
		return "", nil, 0, err
	}
	logger := logging.WithContext(ctx, g.logger)
	started := time.Now()

	var mentions []string
	analyzed, silent := 0, 0
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return "", nil, 0, err
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		analyzed++
		ents, err := pipeline.Recognize(text)
		if err != nil {
			return "", nil, 0, Wrap(nil, "recognize", fmt.Sprintf("text %d (%s)", i, code), err)
		}
		found := 0
		for _, ent := range ents {
			if _, ok := g.labels[ent.Label]; !ok {
				continue
			}
			if textutil.CollapseWhitespace(ent.Text) == "" {
				logger.Debug("skipping blank organization entity", logging.Int(logging.FieldTextIndex, i))
				continue
			}
			mentions = append(mentions, ent.Text)
			found++
		}
		if found == 0 {
			silent++
			logger.Debug("no organization in text", logging.Int(logging.FieldTextIndex, i))
		}
	}
	if analyzed == 0 {
		return "", nil, 0, Wrap(ErrNoTexts, "guess", fmt.Sprintf("%d texts given, none with content", len(texts)), nil)
	}
	logger.Debug("texts analyzed",
		logging.String(logging.FieldLanguage, code),
		logging.Int("texts", analyzed),
		logging.Int("texts_without_organization", silent),
		logging.Int("mentions", len(mentions)),
		logging.Duration("elapsed", time.Since(started)),
	)
	return code, mentions, analyzed, nil
}

func (g *Guesser) pipeline(lang string) (*ner.Pipeline, string, error) {
	if strings.TrimSpace(lang) == "" {
		lang = g.lang
	}
	pipeline, err := g.registry.Pipeline(lang)
	if err != nil {
		return nil, "", err
	}
	return pipeline, pipeline.Language(), nil
}
