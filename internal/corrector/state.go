package corrector

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"

	"spellkit/internal/contextmodel"
	"spellkit/internal/customdict"
	"spellkit/internal/phoneme"
	"spellkit/internal/symspell"
	"spellkit/pkg/options"
)

// stateVersion tracks the shape of the persisted configuration. Bump it
// whenever SpellOptions changes incompatibly; older snapshots then load
// with default options and a warning instead of failing.
const stateVersion = 2

const stateFileName = "model.gob"

type modelState struct {
	Version  int
	Language string
	Options  *options.SpellOptions
	Symspell *symspell.State
	Phoneme  *phoneme.State
	Context  *contextmodel.State
}

// Save writes the model snapshot into dir, creating it if needed, and
// returns the file path.
func (sc *SpellCorrector) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating model directory: %w", err)
	}

	state := modelState{
		Version:  stateVersion,
		Language: sc.language,
		Options:  &sc.opts,
	}
	if sc.symspell != nil {
		s := sc.symspell.State()
		state.Symspell = &s
	}
	if sc.phoneme != nil {
		p := sc.phoneme.State()
		state.Phoneme = &p
	}
	if sc.contextMdl != nil {
		c := sc.contextMdl.State()
		state.Context = &c
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		return "", fmt.Errorf("encoding model state: %w", err)
	}
	path := filepath.Join(dir, stateFileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing model state: %w", err)
	}
	slog.Info("model saved", "path", path, "bytes", buf.Len())
	return path, nil
}

// Load restores a model from a snapshot file without re-running
// training. The file is mapped read-only rather than copied into
// memory. A snapshot whose configuration shape predates stateVersion
// still loads, with default options substituted and a single warning
// recorded; a malformed payload is a hard error. dict may be nil.
func Load(path string, dict *customdict.CustomDict) (*SpellCorrector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model file: %w", err)
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping model file: %w", err)
	}
	defer data.Unmap()

	var state modelState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return nil, fmt.Errorf("malformed model state: %w", err)
	}
	if state.Language == "" || state.Symspell == nil || state.Phoneme == nil {
		return nil, errors.New("malformed model state: missing language or index data")
	}

	sc, err := New(state.Language, dict)
	if err != nil {
		return nil, err
	}

	if state.Version == stateVersion && state.Options != nil {
		sc.opts = state.Options.Clone()
	} else {
		sc.opts = options.New()
		sc.loadWarning = fmt.Sprintf(
			"model at %s was saved with an incompatible configuration shape; "+
				"default thresholds are in effect; re-apply any customizations and save the model again", path)
		slog.Warn(sc.loadWarning)
	}

	sy, err := symspell.FromState(*state.Symspell, sc.opts)
	if err != nil {
		return nil, fmt.Errorf("malformed model state: %w", err)
	}
	sc.symspell = sy

	ph, err := phoneme.FromState(*state.Phoneme, sc.opts)
	if err != nil {
		return nil, fmt.Errorf("malformed model state: %w", err)
	}
	sc.phoneme = ph

	if state.Context != nil {
		sc.contextMdl = contextmodel.FromState(*state.Context)
	}
	return sc, nil
}

// LoadWarning returns the non-fatal degradation notice from the last
// Load, or "" when the snapshot loaded cleanly.
func (sc *SpellCorrector) LoadWarning() string { return sc.loadWarning }
