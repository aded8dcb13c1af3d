// Package vault is quill's view of the notes directory: file-backed text-edit
// sources and creation of transcript notes.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/quillnotes/quill/internal/q/health"
	"github.com/quillnotes/quill/internal/textedit"
)

// Vault is a directory of markdown notes.
type Vault struct {
	Dir string
}

// New returns a Vault rooted at dir. The directory must already exist.
func New(dir string) (*Vault, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, health.Wrap("vault: open", err, "dir", dir)
	}
	if !info.IsDir() {
		return nil, health.NewErr("vault: not a directory", "dir", dir)
	}
	return &Vault{Dir: dir}, nil
}

// Note returns a file-backed text-edit source for the note at relPath.
func (v *Vault) Note(relPath string) *FileSource {
	return &FileSource{Path: filepath.Join(v.Dir, relPath)}
}

// WriteTranscriptNote creates a new markdown note containing a transcription.
// The note is named after title (slugged) plus the date; an existing note with
// the same name is never overwritten - a numeric suffix is added instead.
// It returns the path of the created note.
func (v *Vault) WriteTranscriptNote(title, transcript string, now time.Time) (string, error) {
	if strings.TrimSpace(title) == "" {
		title = "Recording"
	}

	base := fmt.Sprintf("%s %s", now.Format("2006-01-02"), slug(title))
	path := filepath.Join(v.Dir, base+".md")
	for i := 2; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(v.Dir, fmt.Sprintf("%s %d.md", base, i))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Transcribed %s\n\n", now.Format("2006-01-02 15:04"))
	b.WriteString(strings.TrimSpace(transcript))
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", health.Wrap("vault: write transcript note", err, "path", path)
	}
	return path, nil
}

// slug makes title safe for a filename: letters, digits, and spaces survive;
// everything else becomes a hyphen.
func slug(title string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// FileSource is a textedit.Source over a single file. Reads always hit the
// filesystem so Replace's staleness check observes concurrent external edits.
type FileSource struct {
	Path string
}

var _ textedit.Source = (*FileSource)(nil)

func (f *FileSource) read() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", health.Wrap("vault: read note", err, "path", f.Path)
	}
	return string(data), nil
}

// Selection returns the current content of r.
func (f *FileSource) Selection(r textedit.Range) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	content, err := f.read()
	if err != nil {
		return "", err
	}
	if r.End > len(content) {
		return "", health.NewErr("vault: selection out of bounds", "path", f.Path, "end", r.End, "len", len(content))
	}
	return content[r.Start:r.End], nil
}

// Context returns up to radius bytes before and after r, widened outward so the
// cut points land on rune boundaries.
func (f *FileSource) Context(r textedit.Range, radius int) (before, after string, err error) {
	if err := r.Validate(); err != nil {
		return "", "", err
	}
	content, err := f.read()
	if err != nil {
		return "", "", err
	}
	if r.End > len(content) {
		return "", "", health.NewErr("vault: selection out of bounds", "path", f.Path, "end", r.End, "len", len(content))
	}

	lo := r.Start - radius
	if lo < 0 {
		lo = 0
	}
	for lo > 0 && !utf8.RuneStart(content[lo]) {
		lo--
	}
	hi := r.End + radius
	if hi > len(content) {
		hi = len(content)
	}
	for hi < len(content) && !utf8.RuneStart(content[hi]) {
		hi++
	}
	return content[lo:r.Start], content[r.End:hi], nil
}

// Replace swaps r for revised if and only if r still contains original.
func (f *FileSource) Replace(r textedit.Range, original, revised string) error {
	if err := r.Validate(); err != nil {
		return err
	}
	content, err := f.read()
	if err != nil {
		return err
	}
	if r.End > len(content) || content[r.Start:r.End] != original {
		return textedit.ErrStale
	}

	updated := content[:r.Start] + revised + content[r.End:]
	if err := os.WriteFile(f.Path, []byte(updated), 0o644); err != nil {
		return health.Wrap("vault: write note", err, "path", f.Path)
	}
	return nil
}
