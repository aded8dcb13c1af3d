package wordcount

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/quillnotes/quill/internal/q/health"
)

// FileCount is the word count of one note.
type FileCount struct {
	Path  string // relative to the tracked folder
	Words int
}

// Snapshot is the word counts of all notes in the tracked folder at one moment.
type Snapshot struct {
	Files []FileCount
	Total int
}

// Progress is a Snapshot measured against the start-of-day baseline and goal.
type Progress struct {
	Snapshot
	Baseline int // total words at the start of the day
	Goal     int // daily word goal; 0 means no goal configured
}

// Written returns the words written today. Deleting text never reports
// negative progress.
func (p Progress) Written() int {
	w := p.Total - p.Baseline
	if w < 0 {
		return 0
	}
	return w
}

// Fraction returns Written/Goal clamped to [0, 1]; 0 when no goal is set.
func (p Progress) Fraction() float64 {
	if p.Goal <= 0 {
		return 0
	}
	f := float64(p.Written()) / float64(p.Goal)
	if f > 1 {
		return 1
	}
	return f
}

// stateFileName holds the persisted baseline inside the tracked folder.
const stateFileName = ".quill-progress.json"

type baselineState struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Words int    `json:"words"`
}

// Tracker computes writing progress for the notes in a folder.
type Tracker struct {
	Dir  string
	Goal int
}

// NewTracker returns a Tracker over dir with the given daily goal.
func NewTracker(dir string, goal int) *Tracker {
	return &Tracker{Dir: dir, Goal: goal}
}

// Count walks the folder and counts words in every markdown note.
func (t *Tracker) Count() (Snapshot, error) {
	var snap Snapshot
	err := filepath.WalkDir(t.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != t.Dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(t.Dir, path)
		if err != nil {
			rel = path
		}
		n := CountMarkdownWords(data)
		snap.Files = append(snap.Files, FileCount{Path: rel, Words: n})
		snap.Total += n
		return nil
	})
	if err != nil {
		return Snapshot{}, health.Wrap("wordcount: count folder", err, "dir", t.Dir)
	}
	sort.Slice(snap.Files, func(i, j int) bool { return snap.Files[i].Path < snap.Files[j].Path })
	return snap, nil
}

// Progress counts the folder and reports progress against today's baseline.
// On the first call of a calendar day the current total becomes the baseline
// and is persisted, so later calls measure what was written since.
func (t *Tracker) Progress(now time.Time) (Progress, error) {
	snap, err := t.Count()
	if err != nil {
		return Progress{}, err
	}

	today := now.Format("2006-01-02")
	statePath := filepath.Join(t.Dir, stateFileName)

	state, err := loadBaseline(statePath)
	if err != nil || state.Date != today {
		state = baselineState{Date: today, Words: snap.Total}
		if err := saveBaseline(statePath, state); err != nil {
			return Progress{}, err
		}
	}

	return Progress{Snapshot: snap, Baseline: state.Words, Goal: t.Goal}, nil
}

func loadBaseline(path string) (baselineState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return baselineState{}, err
	}
	var state baselineState
	if err := json.Unmarshal(data, &state); err != nil {
		return baselineState{}, err
	}
	return state, nil
}

func saveBaseline(path string, state baselineState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return health.Wrap("wordcount: marshal baseline", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return health.Wrap("wordcount: save baseline", err, "path", path)
	}
	return nil
}
