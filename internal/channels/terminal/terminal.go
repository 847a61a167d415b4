// Package terminal implements a simple stdin/stdout chat channel.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/foodiespot/foodiebot/internal/gateway"
)

// Channel reads user lines from stdin and prints assistant replies.
type Channel struct{}

func New() *Channel {
	return &Channel{}
}

func (t *Channel) Name() string {
	return "terminal"
}

func (t *Channel) Start(ctx context.Context, ingress chan<- gateway.Message) error {
	fmt.Println("FoodieBot Reservation Assistant (Enter to send, Ctrl+C to exit)")
	fmt.Println()
	fmt.Println("Assistant: Hello! How can I help you with your FoodieSpot reservation today?")
	fmt.Println()

	// Scanner runs in a goroutine so ctx.Done() is respected; stdin reads
	// are not interruptible on their own.
	scanner := bufio.NewScanner(os.Stdin)
	go func() {
		for {
			fmt.Print("You: ")
			if !scanner.Scan() {
				return
			}
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			ingress <- gateway.Message{
				SenderID: "console",
				Content:  text,
				Channel:  t.Name(),
				ThreadID: "terminal:console",
			}
		}
	}()

	<-ctx.Done()
	return nil
}

func (t *Channel) Send(msg gateway.Message) error {
	fmt.Printf("\r\033[K")
	fmt.Printf("Assistant: %s\n\n", msg.Content)
	fmt.Print("You: ")
	return nil
}
