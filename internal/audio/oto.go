package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

// deviceBuffer is kept well under the scheduling lead-in so a pass always
// starts after the frames already queued to the device.
const deviceBuffer = 50 * time.Millisecond

// OtoBackend feeds a Mixer to the sound card.
type OtoBackend struct {
	*Mixer
	ctx    *oto.Context
	player *oto.Player
}

// OpenOto opens the default output device. The platform allows a single
// device context per process.
func OpenOto(sampleRate int) (*OtoBackend, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: Channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   deviceBuffer,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	<-ready

	mixer := NewMixer(sampleRate)
	player := ctx.NewPlayer(mixer)
	player.Play()

	return &OtoBackend{Mixer: mixer, ctx: ctx, player: player}, nil
}

// OtoOpener adapts OpenOto to the Opener signature.
func OtoOpener(sampleRate int) Opener {
	return func() (Backend, error) {
		b, err := OpenOto(sampleRate)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}

func (b *OtoBackend) Close() error {
	_ = b.Mixer.Close()
	return errors.Join(b.player.Close(), b.ctx.Suspend())
}
