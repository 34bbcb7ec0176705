// ABOUTME: Word list loading for the static suggestion source
// ABOUTME: Reads files concurrently with errgroup; one word per line, '#' comments

package config

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

// maxParallelReads bounds concurrent file reads.
const maxParallelReads = 4

// LoadWordFiles reads every file in paths and returns their words in path
// order with duplicates removed. Blank lines and lines starting with '#' are
// skipped. The first read error cancels the remaining reads.
func LoadWordFiles(ctx context.Context, paths []string) ([]string, error) {
	lists := make([][]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("reading word file: %w", err)
			}
			lists[i] = parseWords(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var words []string
	for _, list := range lists {
		for _, w := range list {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
	}
	return words, nil
}

func parseWords(data []byte) []string {
	var words []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}
