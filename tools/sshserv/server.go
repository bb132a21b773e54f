// Package sshserv provides a minimal in-process SSH server that emulates the
// interactive HMC shell for tests: it accepts a PTY and shell request, tracks
// the PS1 prompt the client installs, answers `echo $?` with the exit status
// of the previous command, and serves canned responses for management
// commands. No authentication is performed.
package sshserv

import (
	"bufio"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"net"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// Response is the canned outcome for one command prefix.
type Response struct {
	Output string
	Exit   int
}

// Start launches the test server on listenAddr (e.g., 127.0.0.1:20422).
// Commands are matched against the responses map by longest prefix;
// unmatched commands answer like a shell that cannot find the binary.
// Returns a stop function that closes the listener and waits for shutdown.
func Start(listenAddr string, responses map[string]Response) (func(), error) {
	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, err
	}

	stopCh := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		priv, _ := rsa.GenerateKey(rand.Reader, 2048)
		signer, _ := ssh.NewSignerFromKey(priv)
		cfg := &ssh.ServerConfig{NoClientAuth: true}
		cfg.AddHostKey(signer)

		for {
			_ = ln.(*net.TCPListener).SetDeadline(time.Now().Add(500 * time.Millisecond))
			conn, err := ln.Accept()
			select {
			case <-stopCh:
				if conn != nil {
					_ = conn.Close()
				}
				return
			default:
			}
			if err != nil {
				if ne, ok := err.(net.Error); ok && ne.Timeout() {
					continue
				}
				continue
			}
			go handleConn(conn, cfg, responses)
		}
	}()

	stop := func() {
		close(stopCh)
		_ = ln.Close()
		<-done
	}
	return stop, nil
}

func handleConn(raw net.Conn, cfg *ssh.ServerConfig, responses map[string]Response) {
	sc, chans, reqs, err := ssh.NewServerConn(raw, cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	_ = sc
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, creqs, err := ch.Accept()
		if err != nil {
			continue
		}
		go handleSession(c, creqs, responses)
	}
}

func handleSession(ch ssh.Channel, in <-chan *ssh.Request, responses map[string]Response) {
	defer func() { _ = ch.Close() }()
	for req := range in {
		switch req.Type {
		case "pty-req":
			_ = req.Reply(true, nil)
		case "shell":
			_ = req.Reply(true, nil)
			emulateShell(ch, responses)
			return
		default:
			_ = req.Reply(false, nil)
		}
	}
}

// emulateShell reads command lines and mimics a clean bash the way the client
// negotiates it: nothing is echoed, the prompt set via PS1 is printed after
// every command, and `echo $?` reports the previous command's status.
func emulateShell(ch ssh.Channel, responses map[string]Response) {
	br := bufio.NewReader(ch)
	prompt := "bash-5.1$ "
	lastExit := 0
	_, _ = fmt.Fprint(ch, prompt)
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.TrimSpace(line)
		switch {
		case cmd == "":
			// empty line reprints the prompt
		case cmd == "exit":
			return
		case strings.HasPrefix(cmd, "exec bash"):
			lastExit = 0
		case strings.HasPrefix(cmd, "export PS1="):
			if p, ok := unquotePS1(cmd); ok {
				prompt = p
			}
			lastExit = 0
		case cmd == "echo $?":
			_, _ = fmt.Fprintf(ch, "%d\r\n", lastExit)
		default:
			resp, ok := matchResponse(responses, cmd)
			if !ok {
				resp = Response{Output: "-bash: " + cmd + ": command not found\r\n", Exit: 127}
			}
			_, _ = fmt.Fprint(ch, resp.Output)
			lastExit = resp.Exit
		}
		_, _ = fmt.Fprint(ch, prompt)
	}
}

// matchResponse picks the longest prefix match for the command.
func matchResponse(responses map[string]Response, cmd string) (Response, bool) {
	best := ""
	var out Response
	for prefix, r := range responses {
		if strings.HasPrefix(cmd, prefix) && len(prefix) > len(best) {
			best = prefix
			out = r
		}
	}
	return out, best != ""
}

// unquotePS1 extracts the prompt string from an `export PS1='...'` line.
func unquotePS1(cmd string) (string, bool) {
	i := strings.Index(cmd, "'")
	j := strings.LastIndex(cmd, "'")
	if i < 0 || j <= i {
		return "", false
	}
	return strings.ReplaceAll(cmd[i+1:j], `'\''`, "'"), true
}
