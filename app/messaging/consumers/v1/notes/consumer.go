package notes

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ribgsilva/notes-app/business/v1/note"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// Consume pulls note events from the subscription until the context is
// cancelled, processing at most maxWorkers messages at a time. Create events
// must name the owning user; events without one are dropped as invalid.
func Consume(ctx context.Context, log *zap.SugaredLogger, notes *note.Core, sub *pubsub.Subscription, maxWorkers int) error {
	workers := make(chan int, maxWorkers)

	var recvErr error
	for {
		message, err := sub.Receive(ctx)
		if err != nil {
			recvErr = err
			break
		}

		// take the slot before spawning so goroutines stay bounded and every
		// received message holds a slot before the shutdown drain starts
		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			log.Infof("message received: %s", string(m.Body))
			var e note.Event
			if err := json.Unmarshal(m.Body, &e); err != nil {
				log.Error("failed to parse body: ", err)
				return
			}

			switch e.Type {
			case "create":
				var in note.ImportNote
				marshal, _ := json.Marshal(e.Data)
				_ = json.Unmarshal(marshal, &in)

				if _, err := notes.Create(ctx, in.UserId, note.NewNote{Title: in.Title, Content: in.Content}); err != nil {
					log.Errorf("failed to create note from event %+v: err: %s", e.Data, err)
				}
			default:
				log.Error("unknown event type: ", e.Type)
			}
		}(message)
	}

	// wait for in-flight messages
	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(recvErr, context.Canceled) {
		return recvErr
	}

	return nil
}
