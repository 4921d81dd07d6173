package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"course_compass_backend/internal/assessment"
	"course_compass_backend/internal/config"
	"course_compass_backend/internal/model"
	"course_compass_backend/internal/repository"
	"course_compass_backend/internal/util"
	"course_compass_backend/pkg/logger"
)

// DefaultTypeQuotas 题型配额：2+2+2+1，与单次评估的 7 题上限对应
var DefaultTypeQuotas = map[string]int{
	assessment.TypeMCQ:         2,
	assessment.TypeMCMS:        2,
	assessment.TypeMCQReorder:  2,
	assessment.TypeShortAnswer: 1,
}

// quotaOrder 配额题型的出题顺序
var quotaOrder = []string{
	assessment.TypeMCQ,
	assessment.TypeMCMS,
	assessment.TypeMCQReorder,
	assessment.TypeShortAnswer,
}

// QuestionView 下发给前端的题目视图，剥除答案与评分关键词
type QuestionView struct {
	ID         string   `json:"id"`
	Tag        string   `json:"tag"`
	Type       string   `json:"type"`
	Text       string   `json:"text"`
	Options    []string `json:"options,omitempty"`
	Difficulty int      `json:"difficulty,omitempty"`
	MinLength  int      `json:"minLength,omitempty"`
	HelpText   string   `json:"helpText,omitempty"`
}

func newQuestionView(q *assessment.Question) *QuestionView {
	if q == nil {
		return nil
	}
	return &QuestionView{
		ID:         q.ID,
		Tag:        q.NormalizedTag(),
		Type:       q.Type,
		Text:       q.Text,
		Options:    q.Options,
		Difficulty: q.NormalizedDifficulty(),
		MinLength:  q.MinLength,
		HelpText:   q.HelpText,
	}
}

// StartResult 会话创建结果
type StartResult struct {
	SessionID     string        `json:"sessionId"`
	Token         string        `json:"token"`
	Question      *QuestionView `json:"question"`
	QuestionLimit int           `json:"questionLimit"`
}

// PendingResult 当前待答题目
type PendingResult struct {
	Completed     bool          `json:"completed"`
	Question      *QuestionView `json:"question,omitempty"`
	AnsweredCount int           `json:"answeredCount"`
}

// SubmitResult 单次作答结果与下一题
type SubmitResult struct {
	Correct       bool                      `json:"correct"`
	Written       *assessment.WrittenResult `json:"written,omitempty"`
	AnsweredCount int                       `json:"answeredCount"`
	CorrectCount  int                       `json:"correctCount"`
	Completed     bool                      `json:"completed"`
	NextQuestion  *QuestionView             `json:"nextQuestion,omitempty"`
	FinalProfile  *assessment.FinalProfile  `json:"finalProfile,omitempty"`
}

// SessionService 自适应评估会话编排：建会话、出题、判题、收卷。
// 题库整本缓存在内存里，题池按会话种子确定性重建
type SessionService struct {
	Bank      *repository.BankRepository
	Sessions  repository.SessionRepository
	JWTSecret string
	TokenTTL  time.Duration
	Limit     int
	Quotas    map[string]int
	BankDocs  []string
	FromStore bool

	mu        sync.RWMutex
	loaded    bool
	raw       []assessment.Question
	questions []assessment.Question
	allTags   []string
}

func NewSessionService(bank *repository.BankRepository, sessions repository.SessionRepository, cfg *config.Config) *SessionService {
	limit := cfg.Assessment.QuestionLimit
	if limit <= 0 {
		limit = 7
	}
	quotas := cfg.Assessment.TypeQuotas
	if len(quotas) == 0 {
		quotas = DefaultTypeQuotas
	}
	return &SessionService{
		Bank:      bank,
		Sessions:  sessions,
		JWTSecret: cfg.JWT.Secret,
		TokenTTL:  cfg.JWT.ExpireTime,
		Limit:     limit,
		Quotas:    quotas,
		BankDocs:  cfg.Content.BankDocuments,
		FromStore: cfg.Content.Source == util.ContentSourceDatabase,
	}
}

// StartSession 新建会话：全标签画像（一律从 5 级起步）、独立种子题池、
// 第一道题与续接令牌
func (s *SessionService) StartSession(ctx context.Context) (*StartResult, error) {
	if err := s.ensureBank(ctx); err != nil {
		return nil, err
	}
	questions, allTags := s.bankSnapshot()
	if len(questions) == 0 {
		return nil, util.ErrEmptyQuestionBank
	}

	now := time.Now()
	session := &model.AssessmentSession{
		ID:         model.GenerateUUID(),
		Seed:       now.UnixNano(),
		Profile:    assessment.NewLearnerProfile(allTags),
		TypeCounts: map[string]int{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	pool := buildPool(questions, session.Seed)
	question, tags := s.pickNext(&session.Profile, pool, session.TypeCounts, stepSeed(session.Seed, 0))
	if question == nil {
		return nil, util.ErrEmptyQuestionBank
	}
	session.Profile.TagsToTest = tags
	session.CurrentQID = question.ID

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	token, err := util.GenerateSessionToken(session.ID, s.JWTSecret, s.TokenTTL)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("assessment session started",
		zap.String("session", session.ID), zap.Int("tags", len(allTags)))

	return &StartResult{
		SessionID:     session.ID,
		Token:         token,
		Question:      newQuestionView(question),
		QuestionLimit: s.Limit,
	}, nil
}

// CurrentQuestion 会话当前待答的题目
func (s *SessionService) CurrentQuestion(ctx context.Context, sessionID string) (*PendingResult, error) {
	if err := s.ensureBank(ctx); err != nil {
		return nil, err
	}
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := &PendingResult{AnsweredCount: session.Profile.AnsweredCount}
	if session.Profile.IsComplete || session.CurrentQID == "" {
		result.Completed = true
		return result, nil
	}

	questions, _ := s.bankSnapshot()
	pool := buildPool(questions, session.Seed)
	question, ok := pool.FindByID(session.CurrentQID)
	if !ok {
		return nil, util.ErrNoPendingQuestion
	}
	result.Question = newQuestionView(&question)
	return result, nil
}

// SubmitAnswer 判题、更新画像、按配额挑下一题并检查收卷条件。
// 收卷条件：答满上限、新手转向后画像题问尽、或题池耗尽
func (s *SessionService) SubmitAnswer(ctx context.Context, sessionID, questionID string, answer assessment.Answer) (*SubmitResult, error) {
	if err := s.ensureBank(ctx); err != nil {
		return nil, err
	}
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Profile.IsComplete {
		return nil, util.ErrSessionComplete
	}
	if session.CurrentQID == "" {
		return nil, util.ErrNoPendingQuestion
	}
	if questionID != session.CurrentQID {
		return nil, util.ErrQuestionMismatch
	}

	questions, _ := s.bankSnapshot()
	pool := buildPool(questions, session.Seed)
	question, ok := pool.FindByID(questionID)
	if !ok {
		return nil, util.ErrNoPendingQuestion
	}

	graded := assessment.Grade(&question, answer)
	updated := assessment.UpdateProfile(session.Profile, &question, answer, graded.Correct, graded.Written)
	session.TypeCounts[question.Type]++

	next, tags := s.pickNext(&updated, pool, session.TypeCounts, stepSeed(session.Seed, updated.AnsweredCount))
	updated.TagsToTest = tags

	result := &SubmitResult{
		Correct:       graded.Correct,
		Written:       graded.Written,
		AnsweredCount: updated.AnsweredCount,
		CorrectCount:  updated.TotalCorrect(),
	}

	if updated.AnsweredCount >= s.Limit || s.profilerExhausted(&updated) || next == nil {
		updated.IsComplete = true
		session.CurrentQID = ""
		result.Completed = true
		final := assessment.GenerateFinalProfile(&updated, questions)
		result.FinalProfile = final
		logger.Log.Info("assessment session completed",
			zap.String("session", session.ID),
			zap.Int("answered", updated.AnsweredCount),
			zap.Int("correct", updated.TotalCorrect()))
	} else {
		session.CurrentQID = next.ID
		result.NextQuestion = newQuestionView(next)
	}

	session.Profile = updated
	session.UpdatedAt = time.Now()
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return result, nil
}

// Results 由当前画像生成最终评估结论，会话未收卷也可调用
func (s *SessionService) Results(ctx context.Context, sessionID string) (*assessment.FinalProfile, error) {
	if err := s.ensureBank(ctx); err != nil {
		return nil, err
	}
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	questions, _ := s.bankSnapshot()
	return assessment.GenerateFinalProfile(&session.Profile, questions), nil
}

// ScoreFixed 对整套固定题库（含主观题）按阶段权重一次性计分，
// 与自适应会话互不相干
func (s *SessionService) ScoreFixed(ctx context.Context, answers map[string]assessment.Answer, statedLevel string) (*assessment.FixedResult, error) {
	if err := s.ensureBank(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	raw := s.raw
	s.mu.RUnlock()
	if len(raw) == 0 {
		return nil, util.ErrEmptyQuestionBank
	}
	result := assessment.ScoreFixedAssessment(raw, answers, nil, statedLevel)
	return &result, nil
}

// Abandon 显式重开：丢弃会话状态
func (s *SessionService) Abandon(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// ReloadBank 清空题库缓存，下次访问时重新加载
func (s *SessionService) ReloadBank() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.raw = nil
	s.questions = nil
	s.allTags = nil
}

func (s *SessionService) findSession(ctx context.Context, id string) (*model.AssessmentSession, error) {
	session, err := s.Sessions.Find(ctx, id)
	if err == repository.ErrSessionNotFound {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if session.TypeCounts == nil {
		session.TypeCounts = map[string]int{}
	}
	return session, nil
}

// ensureBank 惰性加载题库：合并文档后只保留选择题族、多选题与画像题，
// 主观题不进自适应流程
func (s *SessionService) ensureBank(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}

	var (
		raw []assessment.Question
		err error
	)
	if s.FromStore {
		raw, err = s.Bank.LoadQuestionsFromStore(ctx)
	} else {
		raw, err = s.Bank.LoadQuestions(ctx, s.BankDocs)
	}
	if err != nil {
		return err
	}

	var tech, profiler []assessment.Question
	for _, q := range raw {
		switch {
		case q.NormalizedTag() == assessment.ProfilerTag:
			profiler = append(profiler, q)
		case isChoiceType(q.Type):
			tech = append(tech, q)
		}
	}

	seen := map[string]bool{}
	var tags []string
	for _, q := range tech {
		tag := q.NormalizedTag()
		if tag == assessment.DefaultTag || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	s.raw = raw
	s.questions = append(tech, profiler...)
	s.allTags = tags
	s.loaded = true

	logger.Log.Info("question bank loaded",
		zap.Int("questions", len(s.questions)), zap.Int("tags", len(tags)))
	return nil
}

func (s *SessionService) bankSnapshot() ([]assessment.Question, []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.questions, s.allTags
}

// pickNext 出题：未转向时先按题型配额挑题，配额满或挑不到再走自适应选题。
// 转向后一律走画像题流程，配额不再参与
func (s *SessionService) pickNext(profile *assessment.LearnerProfile, pool *assessment.QuestionPool, counts map[string]int, seed int64) (*assessment.Question, []string) {
	_, allTags := s.bankSnapshot()

	if !profile.IsBeginnerPivot {
		if q := s.pickForQuotas(profile, pool, counts); q != nil {
			return q, append([]string(nil), profile.TagsToTest...)
		}
	}

	res := assessment.SelectNext(profile, pool, allTags, assessment.NewRandShuffler(rand.NewSource(seed)))
	return res.Question, res.UpdatedTagsToTest
}

func (s *SessionService) pickForQuotas(profile *assessment.LearnerProfile, pool *assessment.QuestionPool, counts map[string]int) *assessment.Question {
	for _, typ := range quotaOrder {
		if counts[typ] >= s.Quotas[typ] {
			continue
		}
		if q := s.findCandidateByTypes(profile, pool, []string{typ}); q != nil {
			return q
		}
		// 单选配额找不到标准 MCQ 时放宽到同族变体
		if typ == assessment.TypeMCQ {
			variants := []string{assessment.TypeMCQMatching, assessment.TypeMCQScenario, assessment.TypeMCQ}
			if q := s.findCandidateByTypes(profile, pool, variants); q != nil {
				return q
			}
		}
	}
	return nil
}

// findCandidateByTypes 不动题池地找一道指定题型的未出题目：
// 逐标签以难度估计为中心向外扫描
func (s *SessionService) findCandidateByTypes(profile *assessment.LearnerProfile, pool *assessment.QuestionPool, types []string) *assessment.Question {
	_, allTags := s.bankSnapshot()

	for _, tag := range allTags {
		target := assessment.DefaultDifficulty
		if lvl, ok := profile.TagLevels[tag]; ok && lvl != 0 {
			target = clampDifficulty(lvl)
		}
		for offset := 0; offset <= assessment.MaxDifficulty-1; offset++ {
			for _, d := range []int{target + offset, target - offset} {
				if d < assessment.MinDifficulty || d > assessment.MaxDifficulty {
					continue
				}
				for _, q := range pool.Bucket(tag, d) {
					if profile.HasAsked(q.ID) {
						continue
					}
					if matchesType(q.Type, types) {
						candidate := q
						return &candidate
					}
				}
				if offset == 0 {
					break
				}
			}
		}
	}
	return nil
}

// profilerExhausted 新手转向后画像题是否已问尽
func (s *SessionService) profilerExhausted(profile *assessment.LearnerProfile) bool {
	if !profile.IsBeginnerPivot {
		return false
	}
	questions, _ := s.bankSnapshot()
	found := false
	for _, q := range questions {
		if q.NormalizedTag() != assessment.ProfilerTag {
			continue
		}
		found = true
		if !profile.HasAsked(q.ID) {
			return false
		}
	}
	return found
}

func buildPool(questions []assessment.Question, seed int64) *assessment.QuestionPool {
	return assessment.Preprocess(questions, assessment.NewRandShuffler(rand.NewSource(seed)))
}

// stepSeed 每一步选题用独立于建池种子的确定性种子
func stepSeed(seed int64, answered int) int64 {
	return seed + int64(answered) + 1
}

func isChoiceType(typ string) bool {
	switch typ {
	case assessment.TypeMCQ, assessment.TypeMCQMatching, assessment.TypeMCQReorder,
		assessment.TypeMCQScenario, assessment.TypeMCMS:
		return true
	}
	return false
}

func matchesType(typ string, wanted []string) bool {
	for _, w := range wanted {
		if typ == w {
			return true
		}
		// 主观题配额同时接受长答
		if w == assessment.TypeShortAnswer && typ == assessment.TypeLongAnswer {
			return true
		}
	}
	return false
}

func clampDifficulty(d int) int {
	if d < assessment.MinDifficulty {
		return assessment.MinDifficulty
	}
	if d > assessment.MaxDifficulty {
		return assessment.MaxDifficulty
	}
	return d
}
