package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/atomicparade/did-you-just-say/bot"
	"github.com/atomicparade/did-you-just-say/core"
	"github.com/atomicparade/did-you-just-say/logging"
)

// Console is a minimal local connector: each stdin line becomes an inbound
// message, image replies are written to an output directory, and text replies
// are printed. A chat-platform connector would replace this with its own
// message source and delivery.
type Console struct {
	logger    *logging.Logger
	outputDir string
	seq       atomic.Int64
}

// consoleSenderID identifies the local operator. Stdin is treated as a direct
// message channel so the auth command works from the console.
const consoleSenderID = "console"

// NewConsole creates a Console connector. Output files go to OUTPUT_DIR
// (default "out").
func NewConsole(logger *logging.Logger) *Console {
	return &Console{
		logger:    logger.Named("console"),
		outputDir: core.GetEnvOrDefault("OUTPUT_DIR", "out"),
	}
}

// Messages reads stdin lines until EOF or context cancellation and returns
// them as a message channel. The channel is closed when input ends.
func (c *Console) Messages(ctx context.Context) <-chan bot.Message {
	out := make(chan bot.Message)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}

			select {
			case out <- bot.Message{SenderID: consoleSenderID, Content: line, Direct: true}:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			c.logger.Error("stdin read failed", zap.Error(err))
		}
	}()

	return out
}

// Deliver consumes replies until the channel closes, writing images to the
// output directory and printing text replies.
func (c *Console) Deliver(replies <-chan bot.Reply) {
	for reply := range replies {
		if reply.Image != nil {
			path, err := c.writeImage(reply.Image.Bytes)
			if err != nil {
				c.logger.Error("failed to write rendered image", zap.Error(err))
				continue
			}
			fmt.Printf("rendered: %s\n", path)
			continue
		}

		fmt.Println(reply.Text)
	}
}

// writeImage writes PNG bytes to a unique file under the output directory.
func (c *Console) writeImage(data []byte) (string, error) {
	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("render-%d-%d.png", time.Now().Unix(), c.seq.Add(1))
	path := filepath.Join(c.outputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
