package transcriptdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/devpulse-team/devpulse/errors"
	"github.com/devpulse-team/devpulse/pkg/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	base := t.TempDir()

	store, err := NewStore(&config.TranscriptConfig{
		IncomingDir:   filepath.Join(base, "incoming"),
		ProcessingDir: filepath.Join(base, "processing"),
		ArchiveDir:    filepath.Join(base, "archive"),
		TemplateDir:   filepath.Join(base, "templates"),
	}, zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("meeting.txt"))
	assert.True(t, IsSupported("notes.MD"))
	assert.True(t, IsSupported("minutes.docx"))
	assert.False(t, IsSupported("audio.mp3"))
	assert.False(t, IsSupported("noextension"))
}

func TestListPending_FiltersUnsupported(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"b.txt", "a.md", "skip.mp3", "also-skip.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(store.IncomingDir(), name), []byte("x"), 0o644))
	}

	pending, err := store.ListPending()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "b.txt"}, pending)
}

func TestRead_UnsupportedExtension(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Read("audio.mp3")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorCode_TRANSCRIPT_UNSUPPORTED, apperrors.CodeOf(err))
}

func TestMoveLifecycle(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(store.IncomingDir(), "m.txt"), []byte("Alice: hi"), 0o644))

	content, err := store.Read("m.txt")
	require.NoError(t, err)
	assert.Equal(t, "Alice: hi", content)

	require.NoError(t, store.MoveToProcessing("m.txt"))
	pending, err := store.ListPending()
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, store.MoveToArchive("m.txt"))
	_, err = os.Stat(filepath.Join(store.archiveDir, "m.txt"))
	assert.NoError(t, err)
}
