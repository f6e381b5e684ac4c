// Package progress tracks per-user engagement with the Gita guide: days
// active, questions asked, verses saved, and which chapters the guide has
// touched on so far. Records are small JSON documents in a key-value store,
// one per user name.
package progress

import "sort"

// DateLayout is the date-only format used for LastActiveDate.
const DateLayout = "2006-01-02"

// KeyPrefix namespaces progress records in the backing store.
const KeyPrefix = "progress-"

// Progress is one user's persisted engagement record.
//
// ExploredChapters is always sorted ascending and holds values in [1,18]
// with no duplicates. Records written before the field existed deserialize
// with a nil slice; Store.Load backfills it to an empty one.
type Progress struct {
	DaysActive       int    `json:"daysActive"`
	QuestionsAsked   int    `json:"questionsAsked"`
	VersesSaved      int    `json:"versesSaved"`
	LastActiveDate   string `json:"lastActiveDate"`
	ExploredChapters []int  `json:"exploredChapters"`
}

// NewRecord returns the initial record for a user first seen on the given date.
func NewRecord(date string) Progress {
	return Progress{
		DaysActive:       1,
		LastActiveDate:   date,
		ExploredChapters: []int{},
	}
}

// Key returns the storage key for a user's record.
func Key(userName string) string {
	return KeyPrefix + userName
}

// Update is a partial overlay applied to a Progress record. Nil fields are
// left untouched. ExploredChapters, when set, replaces the whole slice: the
// caller computes the union (see MergeChapters), the overlay never does.
type Update struct {
	DaysActive       *int
	QuestionsAsked   *int
	VersesSaved      *int
	LastActiveDate   *string
	ExploredChapters []int
}

// overlay returns a copy of p with u's set fields applied.
func (u Update) overlay(p Progress) Progress {
	if u.DaysActive != nil {
		p.DaysActive = *u.DaysActive
	}
	if u.QuestionsAsked != nil {
		p.QuestionsAsked = *u.QuestionsAsked
	}
	if u.VersesSaved != nil {
		p.VersesSaved = *u.VersesSaved
	}
	if u.LastActiveDate != nil {
		p.LastActiveDate = *u.LastActiveDate
	}
	if u.ExploredChapters != nil {
		p.ExploredChapters = u.ExploredChapters
	}
	return p
}

// MergeChapters returns the sorted union of a record's explored chapters and
// a newly extracted set. The inputs are not modified.
func MergeChapters(current, found []int) []int {
	seen := make(map[int]bool, len(current)+len(found))
	for _, c := range current {
		seen[c] = true
	}
	for _, c := range found {
		seen[c] = true
	}
	merged := make([]int, 0, len(seen))
	for c := range seen {
		merged = append(merged, c)
	}
	sort.Ints(merged)
	return merged
}

// Int is a convenience for building Updates.
func Int(v int) *int { return &v }

// String is a convenience for building Updates.
func String(v string) *string { return &v }
