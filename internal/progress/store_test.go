package progress

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"testing"
	"time"
)

// fakeKV is an in-memory KV with switchable failure modes.
type fakeKV struct {
	data   map[string][]byte
	getErr error
	putErr error
	putCnt int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Put(_ context.Context, key string, value []byte) error {
	f.putCnt++
	if f.putErr != nil {
		return f.putErr
	}
	f.data[key] = value
	return nil
}

func testStore(kv KV, date string) *Store {
	s := NewStore(kv, slog.Default())
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		panic(err)
	}
	s.now = func() time.Time { return day }
	return s
}

func TestLoad_NewUser(t *testing.T) {
	kv := newFakeKV()
	s := testStore(kv, "2024-01-01")

	p := s.Load(context.Background(), "Arjun")

	want := Progress{DaysActive: 1, LastActiveDate: "2024-01-01", ExploredChapters: []int{}}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("Load = %+v, want %+v", p, want)
	}
	if _, ok := kv.data[Key("Arjun")]; !ok {
		t.Error("fresh record should be persisted immediately")
	}
}

func TestLoad_DayRollover(t *testing.T) {
	kv := newFakeKV()

	p := testStore(kv, "2024-01-01").Load(context.Background(), "Arjun")
	if p.DaysActive != 1 {
		t.Fatalf("DaysActive = %d, want 1", p.DaysActive)
	}

	// Next day: exactly one increment.
	p = testStore(kv, "2024-01-02").Load(context.Background(), "Arjun")
	if p.DaysActive != 2 {
		t.Errorf("DaysActive = %d, want 2", p.DaysActive)
	}
	if p.LastActiveDate != "2024-01-02" {
		t.Errorf("LastActiveDate = %q, want 2024-01-02", p.LastActiveDate)
	}

	// Same day again: no-op.
	p = testStore(kv, "2024-01-02").Load(context.Background(), "Arjun")
	if p.DaysActive != 2 {
		t.Errorf("second Load on same day: DaysActive = %d, want 2", p.DaysActive)
	}
}

func TestLoad_RolloverPreservesCounters(t *testing.T) {
	kv := newFakeKV()
	kv.data[Key("Mira")] = []byte(`{"daysActive":4,"questionsAsked":9,"versesSaved":3,"lastActiveDate":"2024-03-10","exploredChapters":[2,11]}`)

	p := testStore(kv, "2024-03-12").Load(context.Background(), "Mira")

	want := Progress{
		DaysActive:       5,
		QuestionsAsked:   9,
		VersesSaved:      3,
		LastActiveDate:   "2024-03-12",
		ExploredChapters: []int{2, 11},
	}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("Load = %+v, want %+v", p, want)
	}
}

func TestLoad_MigratesMissingChapters(t *testing.T) {
	kv := newFakeKV()
	// A record serialized before exploredChapters existed.
	kv.data[Key("Ravi")] = []byte(`{"daysActive":7,"questionsAsked":12,"versesSaved":2,"lastActiveDate":"2024-05-05"}`)

	s := testStore(kv, "2024-05-05")
	p := s.Load(context.Background(), "Ravi")

	want := Progress{DaysActive: 7, QuestionsAsked: 12, VersesSaved: 2, LastActiveDate: "2024-05-05", ExploredChapters: []int{}}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("Load = %+v, want %+v", p, want)
	}

	// Idempotent: loading again yields the same record.
	again := s.Load(context.Background(), "Ravi")
	if !reflect.DeepEqual(again, want) {
		t.Errorf("second Load = %+v, want %+v", again, want)
	}
}

func TestLoad_CorruptRecord(t *testing.T) {
	kv := newFakeKV()
	kv.data[Key("Arjun")] = []byte(`{not json`)

	p := testStore(kv, "2024-01-01").Load(context.Background(), "Arjun")

	want := Progress{DaysActive: 1, LastActiveDate: "2024-01-01", ExploredChapters: []int{}}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("Load = %+v, want %+v", p, want)
	}
}

func TestLoad_ReadError(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errors.New("disk on fire")

	p := testStore(kv, "2024-01-01").Load(context.Background(), "Arjun")
	if p.DaysActive != 1 {
		t.Errorf("DaysActive = %d, want 1", p.DaysActive)
	}
}

func TestSave_SwallowsFailure(t *testing.T) {
	kv := newFakeKV()
	kv.putErr = errors.New("quota exceeded")
	s := testStore(kv, "2024-01-01")

	// Must not panic or surface the error.
	s.Save(context.Background(), "Arjun", NewRecord("2024-01-01"))
}

func TestApply_OverlayPreservesUntouchedFields(t *testing.T) {
	kv := newFakeKV()
	s := testStore(kv, "2024-01-01")

	current := Progress{DaysActive: 2, QuestionsAsked: 0, VersesSaved: 0, ExploredChapters: []int{1}}
	merged := s.Apply(context.Background(), "Arjun", current, Update{QuestionsAsked: Int(1)})

	want := Progress{DaysActive: 2, QuestionsAsked: 1, VersesSaved: 0, ExploredChapters: []int{1}}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("Apply = %+v, want %+v", merged, want)
	}
}

func TestApply_Persists(t *testing.T) {
	kv := newFakeKV()
	s := testStore(kv, "2024-01-01")

	before := kv.putCnt
	s.Apply(context.Background(), "Arjun", NewRecord("2024-01-01"), Update{VersesSaved: Int(1)})
	if kv.putCnt != before+1 {
		t.Errorf("Apply should persist exactly once, got %d writes", kv.putCnt-before)
	}

	reloaded := s.Load(context.Background(), "Arjun")
	if reloaded.VersesSaved != 1 {
		t.Errorf("reloaded VersesSaved = %d, want 1", reloaded.VersesSaved)
	}
}

func TestApply_ChapterOverlayReplacesSlice(t *testing.T) {
	kv := newFakeKV()
	s := testStore(kv, "2024-01-01")

	current := Progress{DaysActive: 1, ExploredChapters: []int{2, 5}}
	merged := s.Apply(context.Background(), "Arjun", current, Update{
		ExploredChapters: MergeChapters(current.ExploredChapters, []int{3, 5}),
	})

	if !reflect.DeepEqual(merged.ExploredChapters, []int{2, 3, 5}) {
		t.Errorf("ExploredChapters = %v, want [2 3 5]", merged.ExploredChapters)
	}
}

func TestMergeChapters(t *testing.T) {
	tests := []struct {
		name    string
		current []int
		found   []int
		want    []int
	}{
		{"both empty", nil, nil, []int{}},
		{"new only", nil, []int{4, 2}, []int{2, 4}},
		{"disjoint", []int{1, 9}, []int{3}, []int{1, 3, 9}},
		{"overlap dedups", []int{1, 3}, []int{3, 5}, []int{1, 3, 5}},
		{"found empty", []int{7}, nil, []int{7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeChapters(tt.current, tt.found)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeChapters(%v, %v) = %v, want %v", tt.current, tt.found, got, tt.want)
			}
		})
	}
}

func TestKeyIsolation(t *testing.T) {
	kv := newFakeKV()
	s := testStore(kv, "2024-01-01")
	ctx := context.Background()

	a := s.Load(ctx, "Arjun")
	s.Apply(ctx, "Arjun", a, Update{QuestionsAsked: Int(5)})

	b := s.Load(ctx, "Bhima")
	if b.QuestionsAsked != 0 {
		t.Errorf("Bhima's QuestionsAsked = %d, want 0 (records must not share storage)", b.QuestionsAsked)
	}
}
