package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
)

// hmcShell maintains a single long-lived interactive shell on the HMC over
// one ssh.Session and executes management commands sequentially. Command
// completion is detected through a unique prompt string installed at
// negotiation time; the exit status of each command is retrieved afterwards
// with a separate `echo $?`, because an interactive shell does not expose the
// prior command's status inline with its output.
//
// Lifecycle is Unopened -> Open -> Closed; run is only valid while Open and
// close may be called any number of times.
type hmcShell struct {
	sess    *ssh.Session
	stdin   io.WriteCloser
	pw      *io.PipeWriter
	out     chan string
	mu      sync.Mutex
	prompt  string
	pending string
	closed  bool
}

// negotiation bounds for shell startup and prompt installation, matching the
// long prompt timeout the HMC needs on a busy management network.
const shellNegotiateTimeout = 60 * time.Second

// newHMCShell creates and initializes a remote interactive shell attached to
// a single SSH session. It wires stdout/stderr into a unified stream,
// requests a PTY with echo disabled, replaces whatever login shell the HMC
// hands out with a clean bash (no rc files, no aliases), and installs a
// unique prompt used as the completion marker for every subsequent command.
func newHMCShell(client *ssh.Client) (*hmcShell, error) {
	s, err := client.NewSession()
	if err != nil {
		return nil, err
	}

	// Single combined stream for stdout+stderr.
	pr, pw := io.Pipe()
	s.Stdout = pw
	s.Stderr = pw

	stdin, err := s.StdinPipe()
	if err != nil {
		_ = pw.Close()
		_ = s.Close()
		return nil, err
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          0, // disable echo to avoid command-echo noise
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err := s.RequestPty("vt100", 80, 40, modes); err != nil {
		_ = stdin.Close()
		_ = pw.Close()
		_ = s.Close()
		return nil, err
	}

	if err := s.Shell(); err != nil {
		_ = stdin.Close()
		_ = pw.Close()
		_ = s.Close()
		return nil, err
	}

	sh := &hmcShell{
		sess:   s,
		stdin:  stdin,
		pw:     pw,
		out:    make(chan string, 16),
		prompt: fmt.Sprintf("[SRIOVHMC-%s]# ", makeNonce()),
	}
	go sh.pump(pr)

	// Replace the login shell with a clean, alias-free bash and install the
	// unique prompt. Everything printed before the new prompt (banners, the
	// HMC's own prompt) is discarded.
	if _, err := io.WriteString(stdin, "exec bash --norc --noprofile\n"); err != nil {
		_ = sh.close()
		return nil, err
	}
	if _, err := io.WriteString(stdin, "export PS1="+shellQuote(sh.prompt)+"\n"); err != nil {
		_ = sh.close()
		return nil, err
	}
	if _, err := sh.readUntilPrompt(shellNegotiateTimeout); err != nil {
		_ = sh.close()
		return nil, fmt.Errorf("shell negotiation: %w", err)
	}
	return sh, nil
}

// pump copies the combined PTY stream into the out channel until EOF so that
// readUntilPrompt can apply timeouts with a plain select.
func (sh *hmcShell) pump(pr *io.PipeReader) {
	buf := make([]byte, 4096)
	for {
		n, err := pr.Read(buf)
		if n > 0 {
			sh.out <- string(buf[:n])
		}
		if err != nil {
			close(sh.out)
			return
		}
	}
}

// readUntilPrompt consumes stream chunks until the prompt marker appears and
// returns everything received before it. Text after the marker is retained
// for the next call. The wait is bounded by timeout; expiry surfaces as a
// context.DeadlineExceeded wrap.
func (sh *hmcShell) readUntilPrompt(timeout time.Duration) (string, error) {
	if i := strings.Index(sh.pending, sh.prompt); i >= 0 {
		out := sh.pending[:i]
		sh.pending = sh.pending[i+len(sh.prompt):]
		return out, nil
	}
	var b strings.Builder
	b.WriteString(sh.pending)
	sh.pending = ""

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case chunk, ok := <-sh.out:
			if !ok {
				return b.String(), io.ErrUnexpectedEOF
			}
			b.WriteString(chunk)
			if i := strings.Index(b.String(), sh.prompt); i >= 0 {
				all := b.String()
				sh.pending = all[i+len(sh.prompt):]
				return all[:i], nil
			}
		case <-timer.C:
			return b.String(), fmt.Errorf("no prompt within %s: %w", timeout, context.DeadlineExceeded)
		}
	}
}

// run executes one command line on the HMC and returns its output with
// carriage returns stripped. A nonzero exit status is reported as
// *commandFailedError carrying the command, the captured output, and the
// code. Unparsable status output propagates as an error rather than being
// swallowed.
func (sh *hmcShell) run(command string, timeout time.Duration) (string, error) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if sh.closed {
		return "", errors.New("hmc shell is closed")
	}

	if _, err := io.WriteString(sh.stdin, command+"\n"); err != nil {
		return "", err
	}
	raw, err := sh.readUntilPrompt(timeout)
	output := strings.ReplaceAll(raw, "\r", "")
	if err != nil {
		return output, fmt.Errorf("command %q: %w", command, err)
	}

	// Second step of the protocol: query the exit status of the command we
	// just ran.
	if _, err := io.WriteString(sh.stdin, "echo $?\n"); err != nil {
		return output, err
	}
	statusRaw, err := sh.readUntilPrompt(timeout)
	if err != nil {
		return output, fmt.Errorf("exit status query for %q: %w", command, err)
	}
	status := strings.TrimSpace(strings.ReplaceAll(statusRaw, "\r", ""))
	code, err := strconv.Atoi(status)
	if err != nil {
		return output, fmt.Errorf("cannot parse exit status %q of command %q: %w", status, command, err)
	}
	if code != 0 {
		return output, &commandFailedError{command: command, output: output, exitCode: code}
	}
	return output, nil
}

// close terminates the remote shell and releases resources. It is safe to
// call multiple times; closing an already-closed shell is a no-op.
func (sh *hmcShell) close() error {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if sh.closed {
		return nil
	}
	sh.closed = true
	if sh.pw != nil {
		// Drain the pump so it can observe the pipe closing and exit.
		go func() {
			for range sh.out {
			}
		}()
	}
	// Best effort to terminate the shell; the session may already be gone.
	_, _ = io.WriteString(sh.stdin, "exit\n")
	_ = sh.stdin.Close()
	if sh.pw != nil {
		_ = sh.pw.Close()
	}
	if sh.sess != nil {
		_ = sh.sess.Close()
	}
	return nil
}

// makeNonce returns a short pseudo-random identifier used to build a prompt
// string that cannot collide with command output.
func makeNonce() string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 12)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
