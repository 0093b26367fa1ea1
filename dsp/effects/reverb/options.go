package reverb

import "github.com/cwbudde/algo-roomverb/dsp/room"

// Option configures a Reverb at construction time.
type Option func(*config)

type config struct {
	room room.Room
}

// WithRoom replaces the built-in room model. The room is validated by New.
func WithRoom(r room.Room) Option {
	return func(c *config) {
		c.room = r
	}
}

func applyOptions(opts []Option) config {
	cfg := config{room: room.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
