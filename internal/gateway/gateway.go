package gateway

import (
	"context"
	"log"
	"sync"
)

// Message represents a user message flowing through the gateway.
type Message struct {
	SenderID string
	Content  string
	Channel  string // "terminal", "http", ...
	ThreadID string // conversation identifier; history is scoped to it
}

// Channel defines the interface for all delivery surfaces.
type Channel interface {
	// Name returns the unique name of the channel.
	Name() string
	// Start begins listening for messages and blocks until ctx is canceled.
	// Incoming messages are piped into ingress.
	Start(ctx context.Context, ingress chan<- Message) error
	// Send delivers a reply back to the channel.
	Send(msg Message) error
}

// Gateway manages channels and routes messages to the agent. Turns for
// distinct conversations run concurrently; the ledger's transactional store
// is the only shared mutable state behind the handler.
type Gateway struct {
	channels map[string]Channel
	ingress  chan Message
	handler  func(ctx context.Context, msg Message) (string, error)
	mu       sync.RWMutex
}

// New creates a gateway around the agent handler.
func New(handler func(ctx context.Context, msg Message) (string, error)) *Gateway {
	return &Gateway{
		channels: make(map[string]Channel),
		ingress:  make(chan Message, 100),
		handler:  handler,
	}
}

// Register adds a channel to the gateway.
func (g *Gateway) Register(c Channel) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.channels[c.Name()] = c
}

// Handle runs one turn synchronously. Channels that need the reply in-band
// (HTTP) call this instead of going through ingress.
func (g *Gateway) Handle(ctx context.Context, msg Message) (string, error) {
	return g.handler(ctx, msg)
}

// StartAll starts all registered channels and the ingress processor,
// blocking until ctx is canceled.
func (g *Gateway) StartAll(ctx context.Context) error {
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		g.processIngress(ctx)
	}()

	g.mu.RLock()
	for _, c := range g.channels {
		wg.Add(1)
		go func(ch Channel) {
			defer wg.Done()
			if err := ch.Start(ctx, g.ingress); err != nil {
				log.Printf("[GATEWAY] channel %s: %v", ch.Name(), err)
			}
		}(c)
	}
	g.mu.RUnlock()

	<-ctx.Done()
	wg.Wait()
	return nil
}

// processIngress reads messages from channels and hands them to the agent,
// one goroutine per message so conversations don't block each other.
func (g *Gateway) processIngress(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-g.ingress:
			go func(m Message) {
				reply, err := g.handler(ctx, m)
				if err != nil {
					// The agent degrades everything to text; an error here is
					// a wiring fault, not a conversational failure.
					log.Printf("[GATEWAY] handler error for %s: %v", m.Channel, err)
					reply = "Sorry, an unexpected error occurred while processing the response."
				}
				g.routeReply(m, reply)
			}(msg)
		}
	}
}

// routeReply sends the agent's response back to the source channel.
func (g *Gateway) routeReply(original Message, content string) {
	g.mu.RLock()
	ch, ok := g.channels[original.Channel]
	g.mu.RUnlock()
	if !ok {
		log.Printf("[GATEWAY] channel %s not found for reply", original.Channel)
		return
	}
	reply := Message{
		SenderID: "foodiebot",
		Content:  content,
		Channel:  original.Channel,
		ThreadID: original.ThreadID,
	}
	if err := ch.Send(reply); err != nil {
		log.Printf("[GATEWAY] send to %s: %v", ch.Name(), err)
	}
}
