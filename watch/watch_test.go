//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForChange(t *testing.T, w *Watcher, timeout time.Duration) (string, bool) {
	t.Helper()
	select {
	case path := <-w.Changes():
		return path, true
	case <-time.After(timeout):
		return "", false
	}
}

func TestExternalWriteReported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte("before\n"), 0644))

	w, err := New(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(path))

	require.NoError(t, os.WriteFile(path, []byte("after\n"), 0644))

	changed, ok := waitForChange(t, w, 5*time.Second)
	require.True(t, ok, "no change reported")
	abs, _ := filepath.Abs(path)
	assert.Equal(t, abs, changed)
}

// writes to other files in the same directory are not reported
func TestUnwatchedSiblingIgnored(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(watched, []byte("a\n"), 0644))

	w, err := New(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(watched))

	require.NoError(t, os.WriteFile(other, []byte("b\n"), 0644))

	_, ok := waitForChange(t, w, 500*time.Millisecond)
	assert.False(t, ok)
}

// a silenced path drops the editor's own save
func TestSilenceSuppressesOwnSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0644))

	w, err := New(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(path))

	w.Silence(path)
	require.NoError(t, os.WriteFile(path, []byte("b\n"), 0644))

	_, ok := waitForChange(t, w, 500*time.Millisecond)
	assert.False(t, ok)
}

func TestNotifyCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0644))

	notified := make(chan struct{}, 1)
	w, err := New(50*time.Millisecond, func() {
		select {
		case notified <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(path))

	require.NoError(t, os.WriteFile(path, []byte("b\n"), 0644))

	select {
	case <-notified:
	case <-time.After(5 * time.Second):
		t.Fatal("notify callback never ran")
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0644))

	w, err := New(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(path))
	require.NoError(t, w.Remove(path))

	require.NoError(t, os.WriteFile(path, []byte("b\n"), 0644))
	_, ok := waitForChange(t, w, 500*time.Millisecond)
	assert.False(t, ok)
}
