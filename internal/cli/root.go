package cli

import (
	"io"
	"os"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/surprise/internal/audio"
	"github.com/julianstephens/surprise/internal/config"
	"github.com/julianstephens/surprise/internal/content"
	"github.com/julianstephens/surprise/internal/errors"
	"github.com/julianstephens/surprise/internal/sequencer"
)

// Context is handed to every command's Run method.
type Context struct {
	Config *config.Config
	// Opener opens the audio device. Defaults to the oto backend.
	Opener audio.Opener
	// Processes lists running processes for the sound-server probe.
	Processes func() ([]ps.Process, error)
	Out       io.Writer
}

func NewContext(cfg *config.Config) *Context {
	return &Context{
		Config:    cfg,
		Opener:    audio.OtoOpener(cfg.SampleRate),
		Processes: ps.Processes,
		Out:       os.Stdout,
	}
}

// LoadContent reads the configured content and fills in the names.
func (c *Context) LoadContent() (*content.Content, error) {
	raw, err := content.Load(c.Config.Content)
	if err != nil {
		return nil, errors.Wrap(errors.KindConfig, "load content", err)
	}
	return raw.Personalize(c.Config.Recipient, c.Config.Sender), nil
}

func (c *Context) NewSequencer() *sequencer.Sequencer {
	var opts []sequencer.Option
	if c.Config.StrictTransitions {
		opts = append(opts, sequencer.WithStrictTransitions())
	}
	return sequencer.New(opts...)
}

func (c *Context) NewPlayer(opts ...audio.Option) *audio.Player {
	opts = append([]audio.Option{audio.WithVolume(c.Config.Volume)}, opts...)
	return audio.NewPlayer(c.Opener, opts...)
}
