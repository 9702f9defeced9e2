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
package screen

import (
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"

	gott "github.com/jakelongenecker93/notpad/types"
)

// a plain rune arrives with termbox key code 0, which is also the code
// for Ctrl+Space; it must come through as a rune, not as a key
func TestRuneInputIsNotCtrlSpace(t *testing.T) {
	event := translateEvent(termbox.Event{Type: termbox.EventKey, Ch: 'a'})
	assert.Equal(t, gott.EventKey, event.Type)
	assert.Equal(t, gott.KeyUnsupported, event.Key)
	assert.Equal(t, 'a', event.Ch)
}

func TestCtrlSpaceTranslates(t *testing.T) {
	event := translateEvent(termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlSpace})
	assert.Equal(t, gott.KeyCtrlSpace, event.Key)
	assert.Equal(t, rune(0), event.Ch)
}

func TestNamedKeysTranslate(t *testing.T) {
	for _, tc := range []struct {
		in   termbox.Key
		want gott.Key
	}{
		{termbox.KeyEnter, gott.KeyEnter},
		{termbox.KeyEsc, gott.KeyEsc},
		{termbox.KeyTab, gott.KeyTab},
		{termbox.KeyArrowLeft, gott.KeyArrowLeft},
		{termbox.KeyCtrlQ, gott.KeyCtrlQ},
	} {
		event := translateEvent(termbox.Event{Type: termbox.EventKey, Key: tc.in})
		assert.Equal(t, tc.want, event.Key)
	}
}

func TestInterruptTranslates(t *testing.T) {
	event := translateEvent(termbox.Event{Type: termbox.EventInterrupt})
	assert.Equal(t, gott.EventInterrupt, event.Type)
}
