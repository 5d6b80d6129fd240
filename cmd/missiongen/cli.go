package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/starshatterwars/missiongen/internal/describe"
	"github.com/starshatterwars/missiongen/internal/dispatcher"
	"github.com/starshatterwars/missiongen/internal/worker"
)

// execute runs one CLI command:
//
//	generate key=value...   generate one mission and print its briefing
//	describe ID             print the briefing of a catalogued mission
//	list                    print the catalog
//	batch                   generate one mission per stdin line, then list
//
// No command means batch.
func (a *app) execute(args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := "batch"
	if len(args) > 0 {
		cmd, args = strings.ToLower(args[0]), args[1:]
	}

	switch cmd {
	case "generate":
		result, err := a.dispatch.Dispatch(dispatcher.Event{Command: worker.CmdGenerateSync, Args: args})
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, describe.Briefing(result.(*describe.Info)))
		return nil
	case "describe":
		result, err := a.dispatch.Dispatch(dispatcher.Event{Command: worker.CmdDescribe, Args: args})
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, result)
		return nil
	case "list":
		return a.list(stdout)
	case "batch":
		if err := a.batch(stdin); err != nil {
			return err
		}
		return a.list(stdout)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

// batch queues one generate command per non-empty, non-comment line and
// waits for the queue to drain. Failed requests are logged by the
// dispatcher and do not stop the batch.
func (a *app) batch(stdin io.Reader) error {
	scanner := bufio.NewScanner(stdin)
	queued := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields, err := splitArgs(line)
		if err != nil {
			a.logger.Error("Skipping request", "line", line, "error", err)
			continue
		}
		if _, err := a.dispatch.Dispatch(dispatcher.Event{Command: worker.CmdGenerate, Args: fields}); err != nil {
			return err
		}
		queued++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading requests: %w", err)
	}

	a.dispatch.Close()
	a.logger.Info("Batch complete", "queued", queued)
	return nil
}

func (a *app) list(stdout io.Writer) error {
	result, err := a.dispatch.Dispatch(dispatcher.Event{Command: worker.CmdList})
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, info := range result.([]*describe.Info) {
		ok := "ok"
		if info.Mission != nil && !info.Mission.OK {
			ok = "invalid"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.Type, info.PlayerInfo, ok)
	}
	return w.Flush()
}

// splitArgs splits a request line on whitespace. Double quotes group words
// and are kept for the parser to strip. A line starting with "{" is one
// JSON argument.
func splitArgs(line string) ([]string, error) {
	if strings.HasPrefix(line, "{") {
		return []string{line}, nil
	}

	var (
		out     []string
		cur     strings.Builder
		quoted  bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			cur.WriteRune(r)
			started = true
		case !quoted && (r == ' ' || r == '\t'):
			if started {
				out = append(out, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if quoted {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if started {
		out = append(out, cur.String())
	}
	return out, nil
}
