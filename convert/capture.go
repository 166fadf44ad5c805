package convert

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Capture runs a command under script(1) so that it sees a pseudo
// terminal on stdout and emits the colors it would print
// interactively. Returns everything the command wrote.
//
// The command's exit status is folded into the returned error; the
// captured output is returned alongside it so a failing command's
// output can still be converted.
func Capture(ctx context.Context, command []string) ([]byte, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("no command given")
	}

	var cmd *exec.Cmd
	if runtime.GOOS == "darwin" {
		// BSD script takes the command as arguments.
		args := append([]string{"-q", "/dev/null"}, command...)
		cmd = exec.CommandContext(ctx, "script", args...)
	} else {
		cmd = exec.CommandContext(ctx, "script", "-qec", shellJoin(command), "/dev/null")
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	return out.Bytes(), err
}

// shellJoin quotes a command line for the shell that script(1) hands
// it to.
func shellJoin(command []string) string {
	quoted := make([]string, len(command))
	for i, arg := range command {
		quoted[i] = shellQuote(arg)
	}
	return strings.Join(quoted, " ")
}

// shellQuote single-quotes an argument unless it is obviously safe.
func shellQuote(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\n\"'`$\\&|;<>(){}[]*?~#") {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'"'"'`) + "'"
}
