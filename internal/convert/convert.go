// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert walks a note tree and rewrites each file between the Bear
// and Joplin markdown layouts, honoring an overwrite policy.
package convert

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/calfzhou/bear-to-joplin/internal/frontmatter"
	"github.com/calfzhou/bear-to-joplin/internal/fstime"
	"github.com/calfzhou/bear-to-joplin/internal/note"
	"github.com/calfzhou/bear-to-joplin/pkg/types"
)

// errAbort halts the batch when the abort overwrite policy meets an
// existing destination. Already-written files stay in place.
var errAbort = errors.New("destination already exists")

// Task pairs a source file with its destination path.
type Task struct {
	Src string
	Dst string
}

// Converter runs conversion tasks one at a time against the local
// filesystem, reporting per-file status and a final summary to out.
type Converter struct {
	cfg    types.ConvertConfig
	times  fstime.Accessor
	prompt Prompter
	out    io.Writer
}

// New builds a Converter. The timestamp accessor and prompter are injected
// so batches are testable without a real terminal or platform-specific
// filesystem behavior.
func New(cfg types.ConvertConfig, times fstime.Accessor, prompt Prompter, out io.Writer) *Converter {
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".md"}
	}
	return &Converter{cfg: cfg, times: times, prompt: prompt, out: out}
}

// Run converts src into dst. src may be a single file or a directory tree;
// a tree is mirrored under dst in lexical order so runs are deterministic.
// Per-file read and write errors are recorded in the summary without
// stopping the batch; only the abort policy cuts it short.
func (c *Converter) Run(src, dst string) (Summary, error) {
	info, err := os.Stat(src)
	if err != nil {
		return Summary{}, fmt.Errorf("reading source %s: %w", src, err)
	}

	var tasks []Task
	if info.IsDir() {
		if fi, err := os.Stat(dst); err == nil && !fi.IsDir() {
			return Summary{}, fmt.Errorf("destination %s is a file; it must be a directory when the source is one", dst)
		}
		tasks, err = c.walk(src, dst)
		if err != nil {
			return Summary{}, err
		}
	} else {
		if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
			dst = filepath.Join(dst, filepath.Base(src))
		}
		tasks = []Task{{Src: src, Dst: dst}}
	}

	var sum Summary
	for i, t := range tasks {
		if err := c.runTask(t, &sum); err != nil {
			if errors.Is(err, errAbort) {
				sum.Aborted = true
				fmt.Fprintf(c.out, "aborted: %s already exists (%d task(s) left unprocessed)\n",
					t.Dst, len(tasks)-i-1)
				break
			}
			return sum, err
		}
	}

	c.report(sum)
	return sum, nil
}

// walk enumerates every file under src and mirrors its relative path under
// dst. filepath.WalkDir visits entries in lexical order.
func (c *Converter) walk(src, dst string) ([]Task, error) {
	var tasks []Task
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		tasks = append(tasks, Task{Src: path, Dst: filepath.Join(dst, rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", src, err)
	}
	return tasks, nil
}

func (c *Converter) runTask(t Task, sum *Summary) error {
	ok, err := c.shouldWrite(t.Dst)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(c.out, "skipped: %s (already exists)\n", t.Dst)
		sum.Skipped++
		return nil
	}

	if dir := filepath.Dir(t.Dst); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			c.failTask(sum, t.Dst, WriteError, err)
			return nil
		}
	}

	if !c.eligible(t.Src) {
		// Attachments and other non-note files travel along unchanged.
		if err := copyFile(t.Src, t.Dst); err != nil {
			c.failTask(sum, t.Dst, WriteError, err)
			return nil
		}
		fmt.Fprintf(c.out, "copied: %s\n", t.Dst)
		sum.Copied++
		return nil
	}

	if c.cfg.Reverse {
		c.reverse(t, sum)
	} else {
		c.forward(t, sum)
	}
	return nil
}

// shouldWrite checks the destination against the overwrite policy. It
// returns errAbort when the abort policy meets an existing file.
func (c *Converter) shouldWrite(dst string) (bool, error) {
	if _, err := os.Stat(dst); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("checking destination %s: %w", dst, err)
	}

	switch c.cfg.Overwrite {
	case types.OverwriteYes:
		return true, nil
	case types.OverwriteNo:
		return false, nil
	case types.OverwriteAsk:
		return c.prompt.Confirm(fmt.Sprintf("%s exists, overwrite?", dst))
	case types.OverwriteAbort:
		return false, errAbort
	default:
		return false, fmt.Errorf("unknown overwrite policy %q", c.cfg.Overwrite)
	}
}

// forward reads a Bear note, prepends a front-matter block, and mirrors the
// note's timestamps onto the destination.
func (c *Converter) forward(t Task, sum *Summary) {
	data, err := os.ReadFile(t.Src)
	if err != nil {
		c.failTask(sum, t.Src, ReadError, err)
		return
	}
	created, modified, err := c.times.Times(t.Src)
	if err != nil {
		c.failTask(sum, t.Src, ReadError, err)
		return
	}

	text := string(data)
	meta := note.Extract(text, titleStem(t.Src), created, modified, c.cfg.Tags)

	// Re-runs replace a previous block instead of stacking a second one.
	content, err := frontmatter.Render(meta, frontmatter.Body(text))
	if err != nil {
		c.failTask(sum, t.Dst, WriteError, err)
		return
	}
	if err := os.WriteFile(t.Dst, []byte(content), 0o644); err != nil {
		c.failTask(sum, t.Dst, WriteError, err)
		return
	}

	copyPermissions(t.Src, t.Dst)
	if err := c.times.SetTimes(t.Dst, meta.Created, meta.Updated); err != nil && !errors.Is(err, fstime.ErrCreationUnsupported) {
		fmt.Fprintf(c.out, "warning: could not set times on %s: %v\n", t.Dst, err)
	}

	fmt.Fprintf(c.out, "converted: %s\n", t.Dst)
	sum.Converted++
}

// reverse strips the front-matter block, writes the bare body to the
// destination, and restores the source file's timestamps from the block.
func (c *Converter) reverse(t Task, sum *Summary) {
	data, err := os.ReadFile(t.Src)
	if err != nil {
		c.failTask(sum, t.Src, ReadError, err)
		return
	}

	meta, body := frontmatter.Parse(string(data))
	if meta == nil {
		fmt.Fprintf(c.out, "warning: no front matter in %s, copying unchanged\n", t.Src)
		if err := copyFile(t.Src, t.Dst); err != nil {
			c.failTask(sum, t.Dst, WriteError, err)
			return
		}
		fmt.Fprintf(c.out, "copied: %s\n", t.Dst)
		sum.Copied++
		return
	}

	if err := os.WriteFile(t.Dst, []byte(body), 0o644); err != nil {
		c.failTask(sum, t.Dst, WriteError, err)
		return
	}
	copyPermissions(t.Src, t.Dst)

	if err := c.times.SetTimes(t.Src, meta.Created, meta.Updated); err != nil && !errors.Is(err, fstime.ErrCreationUnsupported) {
		fmt.Fprintf(c.out, "warning: could not set times on %s: %v\n", t.Src, err)
	}

	fmt.Fprintf(c.out, "converted: %s\n", t.Dst)
	sum.Converted++
}

func (c *Converter) failTask(sum *Summary, path string, kind ErrorKind, err error) {
	fmt.Fprintf(c.out, "failed:  %s (%v)\n", path, err)
	sum.fail(path, kind, err)
}

func (c *Converter) report(s Summary) {
	fmt.Fprintf(c.out, "\nBatch summary: %d converted, %d copied, %d skipped, %d failed (total: %d)\n",
		s.Converted, s.Copied, s.Skipped, s.Failed, s.Total())
	for _, f := range s.Failures {
		fmt.Fprintf(c.out, "  %s: %s error: %v\n", f.Path, f.Kind, f.Err)
	}
	if s.Aborted {
		fmt.Fprintln(c.out, "Batch aborted before completion.")
	}
}

func (c *Converter) eligible(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range c.cfg.Extensions {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// titleStem is the fallback note title: the filename without its extension.
func titleStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	copyPermissions(src, dst)
	return nil
}

// copyPermissions mirrors the source file mode onto the destination.
// Failures are ignored: permissions are a nicety, not part of the note.
func copyPermissions(src, dst string) {
	if fi, err := os.Stat(src); err == nil {
		_ = os.Chmod(dst, fi.Mode().Perm())
	}
}
