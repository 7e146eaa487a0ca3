package pool

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/store"
)

type fakeQuestionRepo struct {
	unseen     map[string][]*store.Question // key: qtype/difficulty, "" difficulty = any
	saved      []*store.Question
	nextID     int
	countsByQT map[exam.QuestionType]int
}

func newFakeRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{unseen: make(map[string][]*store.Question), nextID: 1000}
}

func key(qtype exam.QuestionType, difficulty int) string {
	return fmt.Sprintf("%s/%d", qtype, difficulty)
}

func (r *fakeQuestionRepo) SaveQuestions(_ context.Context, qs []*store.Question) error {
	for _, q := range qs {
		r.nextID++
		q.ID = r.nextID
	}
	r.saved = append(r.saved, qs...)
	return nil
}

func (r *fakeQuestionRepo) Get(context.Context, int) (*store.Question, error) { return nil, nil }
func (r *fakeQuestionRepo) ByIDs(context.Context, []int) ([]*store.Question, error) {
	return nil, nil
}

func (r *fakeQuestionRepo) Unseen(_ context.Context, _ int, qtype exam.QuestionType, _ exam.Level, difficulty, limit int) ([]*store.Question, error) {
	qs := r.unseen[key(qtype, difficulty)]
	if len(qs) > limit {
		qs = qs[:limit]
	}
	return qs, nil
}

func (r *fakeQuestionRepo) UnseenAnyDifficulty(_ context.Context, _ int, qtype exam.QuestionType, _ exam.Level, limit int) ([]*store.Question, error) {
	qs := r.unseen[key(qtype, 0)]
	if len(qs) > limit {
		qs = qs[:limit]
	}
	return qs, nil
}

func (r *fakeQuestionRepo) CountUnseen(_ context.Context, _ int, qtype exam.QuestionType, _ exam.Level) (int, error) {
	return r.countsByQT[qtype], nil
}

type fakeGenerator struct {
	questions    []*store.Question
	err          error
	calls        int
	lastCount    int
	lastPassages int
}

func (g *fakeGenerator) GenerateQuestions(_ context.Context, qtype exam.QuestionType, level exam.Level, grade, difficulty, count int) ([]*store.Question, error) {
	g.calls++
	g.lastCount = count
	return g.questions, g.err
}

func (g *fakeGenerator) GenerateReadingComprehension(_ context.Context, level exam.Level, grade, difficulty, passages, perPassage int) ([]*store.Question, error) {
	g.calls++
	g.lastPassages = passages
	return g.questions, g.err
}

func q(id int, qtype exam.QuestionType, stem string) *store.Question {
	return &store.Question{ID: id, QuestionType: qtype, Stem: stem}
}

func testCache(repo *fakeQuestionRepo, gen *fakeGenerator) *Cache {
	return New(repo, gen, exam.DefaultSettings(), nil)
}

func TestGetQuestionsServedFromPool(t *testing.T) {
	repo := newFakeRepo()
	for i := 0; i < 5; i++ {
		repo.unseen[key(exam.TypeSynonym, 3)] = append(repo.unseen[key(exam.TypeSynonym, 3)], q(i+1, exam.TypeSynonym, fmt.Sprintf("stem %d", i)))
	}
	gen := &fakeGenerator{}
	c := testCache(repo, gen)

	got, err := c.GetQuestions(context.Background(), 1, exam.TypeSynonym, exam.LevelElementary, 3, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d questions, want 3", len(got))
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times, want 0", gen.calls)
	}
}

func TestGetQuestionsTopsUpAndGenerates(t *testing.T) {
	// 3 unseen at the exact difficulty, 2 more at other difficulties,
	// generation yields 4 valid plus 1 duplicate stem: final count 9.
	repo := newFakeRepo()
	repo.unseen[key(exam.TypeSynonym, 3)] = []*store.Question{
		q(1, exam.TypeSynonym, "a"), q(2, exam.TypeSynonym, "b"), q(3, exam.TypeSynonym, "c"),
	}
	repo.unseen[key(exam.TypeSynonym, 0)] = []*store.Question{
		q(3, exam.TypeSynonym, "c"), // already selected, dropped by id
		q(4, exam.TypeSynonym, "d"), q(5, exam.TypeSynonym, "e"),
	}
	gen := &fakeGenerator{questions: []*store.Question{
		q(0, exam.TypeSynonym, "new one"),
		q(0, exam.TypeSynonym, "new two"),
		q(0, exam.TypeSynonym, "  NEW TWO "), // duplicate after normalization
		q(0, exam.TypeSynonym, "new three"),
		q(0, exam.TypeSynonym, "new four"),
	}}
	c := testCache(repo, gen)

	got, err := c.GetQuestions(context.Background(), 1, exam.TypeSynonym, exam.LevelElementary, 3, 10, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 9 {
		t.Fatalf("got %d questions, want 9", len(got))
	}
	if len(repo.saved) != 4 {
		t.Errorf("saved %d generated questions, want 4", len(repo.saved))
	}
	for _, sq := range repo.saved {
		if sq.ID == 0 {
			t.Error("saved question missing ID")
		}
	}
	// Generation requests a full batch, not just the shortfall of 5.
	if gen.lastCount != exam.DefaultSettings().QuestionsPerBatch {
		t.Errorf("generation count = %d, want %d", gen.lastCount, exam.DefaultSettings().QuestionsPerBatch)
	}
}

func TestGetQuestionsTruncatesOverfill(t *testing.T) {
	repo := newFakeRepo()
	repo.unseen[key(exam.TypeSynonym, 3)] = []*store.Question{q(1, exam.TypeSynonym, "a")}
	gen := &fakeGenerator{}
	for i := 0; i < 25; i++ {
		gen.questions = append(gen.questions, q(0, exam.TypeSynonym, fmt.Sprintf("gen %d", i)))
	}
	c := testCache(repo, gen)

	got, err := c.GetQuestions(context.Background(), 1, exam.TypeSynonym, exam.LevelElementary, 3, 5, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d questions, want 5", len(got))
	}
	// Overflow is still persisted for future sessions.
	if len(repo.saved) != 25 {
		t.Errorf("saved %d questions, want 25", len(repo.saved))
	}
}

func TestGetQuestionsGenerationFailureReturnsPartial(t *testing.T) {
	repo := newFakeRepo()
	repo.unseen[key(exam.TypeSynonym, 3)] = []*store.Question{q(1, exam.TypeSynonym, "a")}
	gen := &fakeGenerator{err: errors.New("provider down")}

	var warnings []string
	c := New(repo, gen, exam.DefaultSettings(), func(msg, level string) {
		if level == "warning" {
			warnings = append(warnings, msg)
		}
	})

	got, err := c.GetQuestions(context.Background(), 1, exam.TypeSynonym, exam.LevelElementary, 3, 5, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d questions, want 1", len(got))
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
}

func TestGetQuestionsZeroCount(t *testing.T) {
	c := testCache(newFakeRepo(), &fakeGenerator{})
	got, err := c.GetQuestions(context.Background(), 1, exam.TypeSynonym, exam.LevelElementary, 3, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d questions, want 0", len(got))
	}
}

func TestGetQuestionsReadingReshapesToPassages(t *testing.T) {
	repo := newFakeRepo()
	gen := &fakeGenerator{questions: []*store.Question{
		q(0, exam.TypeReadingComprehension, "r1"),
		q(0, exam.TypeReadingComprehension, "r2"),
	}}
	c := testCache(repo, gen)

	if _, err := c.GetQuestions(context.Background(), 1, exam.TypeReadingComprehension, exam.LevelMiddle, 3, 8, 6); err != nil {
		t.Fatal(err)
	}
	if gen.lastPassages != 2 {
		t.Errorf("passages = %d, want 2", gen.lastPassages)
	}
}

func TestSplitCounts(t *testing.T) {
	tests := []struct {
		name    string
		section exam.SectionConfig
		want    []topicCount
	}{
		{
			name: "half split remainder to second",
			section: exam.SectionConfig{
				QuestionCount: 25,
				Topics:        []exam.QuestionType{exam.TypeSynonym, exam.TypeAnalogy},
				Split:         exam.SplitHalf,
			},
			want: []topicCount{{exam.TypeSynonym, 12}, {exam.TypeAnalogy, 13}},
		},
		{
			name: "even split remainder to first",
			section: exam.SectionConfig{
				QuestionCount: 25,
				Topics:        []exam.QuestionType{exam.TypeArithmetic, exam.TypeAlgebra, exam.TypeGeometry},
				Split:         exam.SplitEven,
			},
			want: []topicCount{{exam.TypeArithmetic, 9}, {exam.TypeAlgebra, 8}, {exam.TypeGeometry, 8}},
		},
		{
			name: "single topic",
			section: exam.SectionConfig{
				QuestionCount: 40,
				Topics:        []exam.QuestionType{exam.TypeReadingComprehension},
				Split:         exam.SplitSingle,
			},
			want: []topicCount{{exam.TypeReadingComprehension, 40}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitCounts(tt.section)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d topic counts, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("count[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGetMixedQuestionsUsesDifficultyMap(t *testing.T) {
	repo := newFakeRepo()
	repo.unseen[key(exam.TypeSynonym, 4)] = []*store.Question{
		q(1, exam.TypeSynonym, "a"), q(2, exam.TypeSynonym, "b"),
	}
	repo.unseen[key(exam.TypeAnalogy, 3)] = []*store.Question{
		q(3, exam.TypeAnalogy, "c"), q(4, exam.TypeAnalogy, "d"),
	}
	gen := &fakeGenerator{err: errors.New("unavailable")}
	c := testCache(repo, gen)

	section := exam.SectionConfig{
		QuestionCount: 4,
		Topics:        []exam.QuestionType{exam.TypeSynonym, exam.TypeAnalogy},
		Split:         exam.SplitHalf,
	}
	// Synonyms at difficulty 4, analogies fall back to the default 3.
	got, err := c.GetMixedQuestions(context.Background(), 1, section, exam.LevelElementary,
		map[exam.QuestionType]int{exam.TypeSynonym: 4}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d questions, want 4", len(got))
	}
}

func TestCheckAndReplenishOnlyLowTopics(t *testing.T) {
	repo := newFakeRepo()
	repo.countsByQT = map[exam.QuestionType]int{}
	for _, qt := range exam.TypesForLevel(exam.LevelElementary) {
		repo.countsByQT[qt] = 50
	}
	repo.countsByQT[exam.TypeSynonym] = 2
	gen := &fakeGenerator{questions: []*store.Question{q(0, exam.TypeSynonym, "fresh")}}
	c := testCache(repo, gen)

	if err := c.CheckAndReplenish(context.Background(), 1, exam.LevelElementary, 4); err != nil {
		t.Fatal(err)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
	if len(repo.saved) != 1 {
		t.Errorf("saved %d questions, want 1", len(repo.saved))
	}
}

func TestGenerateBatchReportsPerTopic(t *testing.T) {
	repo := newFakeRepo()
	gen := &fakeGenerator{questions: []*store.Question{
		q(0, exam.TypeSynonym, "one"), q(0, exam.TypeSynonym, "two"),
	}}
	var statuses []string
	c := New(repo, gen, exam.DefaultSettings(), func(msg, level string) {
		statuses = append(statuses, level)
	})

	results := c.GenerateBatch(context.Background(), exam.LevelElementary, 4)
	types := exam.TypesForLevel(exam.LevelElementary)
	if len(results) != len(types) {
		t.Fatalf("got %d topic results, want %d", len(results), len(types))
	}
	for _, qt := range types {
		if results[qt] != 2 {
			t.Errorf("%s: %d generated, want 2", qt, results[qt])
		}
	}
	if len(statuses) != 2*len(types) {
		t.Errorf("got %d status messages, want %d", len(statuses), 2*len(types))
	}
}

func TestPoolStats(t *testing.T) {
	repo := newFakeRepo()
	repo.countsByQT = map[exam.QuestionType]int{exam.TypeSynonym: 7}
	c := testCache(repo, &fakeGenerator{})

	stats, err := c.PoolStats(context.Background(), 1, exam.LevelElementary)
	if err != nil {
		t.Fatal(err)
	}
	if stats[exam.TypeSynonym] != 7 {
		t.Errorf("synonym stat = %d, want 7", stats[exam.TypeSynonym])
	}
	if len(stats) != len(exam.TypesForLevel(exam.LevelElementary)) {
		t.Errorf("got %d topics, want %d", len(stats), len(exam.TypesForLevel(exam.LevelElementary)))
	}
}
