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
package commander

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// FormatBuffer pipes input through an external formatter command and
// returns its output. The formatter reads the buffer on stdin and
// writes the result to stdout; anything on stderr fails the format,
// with "<standard input>" in its output replaced by the file name.
func FormatBuffer(command string, fileName string, input []byte) ([]byte, error) {
	words := strings.Fields(command)
	if len(words) == 0 {
		return nil, fmt.Errorf("empty formatter command")
	}
	cmd := exec.Command(words[0], words[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("running %s: %w", words[0], err)
	}
	stdin.Write(input)
	stdin.Close()

	output, _ := io.ReadAll(stdout)
	failures, _ := io.ReadAll(stderr)
	cmd.Wait()

	if len(failures) > 0 {
		text := strings.ReplaceAll(string(failures), "<standard input>", fileName)
		return nil, fmt.Errorf("%s: %s", words[0], strings.TrimSpace(text))
	}
	return output, nil
}
